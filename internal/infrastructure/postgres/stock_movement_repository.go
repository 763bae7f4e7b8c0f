package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

var movementColumns = []string{"id", "product_id", "quantity", "source", "note", "created_at"}

type movementRow struct {
	ID        string    `db:"id"`
	ProductID string    `db:"product_id"`
	Quantity  float64   `db:"quantity"`
	Source    string    `db:"source"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

func (r movementRow) toEntity() *entity.StockMovement {
	return &entity.StockMovement{
		ID:        r.ID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Source:    entity.StockMovementSource(r.Source),
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
	}
}

// StockMovementRepo libro de movimientos (solo inserción) sobre PostgreSQL.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

func (r *StockMovementRepo) List(ctx context.Context) ([]*entity.StockMovement, error) {
	return r.list(ctx, nil)
}

func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	if !validID(productID) {
		return []*entity.StockMovement{}, nil
	}
	return r.list(ctx, squirrel.Eq{"product_id": productID})
}

func (r *StockMovementRepo) list(ctx context.Context, where squirrel.Sqlizer) ([]*entity.StockMovement, error) {
	b := psql.Select(movementColumns...).From("stock_movements").OrderBy("created_at", "id")
	if where != nil {
		b = b.Where(where)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list movements: %w", err)
	}
	var rows []movementRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	out := make([]*entity.StockMovement, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	if !validID(id) {
		return nil, nil
	}
	query, args, err := psql.Select(movementColumns...).From("stock_movements").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get movement: %w", err)
	}
	var row movementRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return row.toEntity(), nil
}

// Create inserta el movimiento. Un producto inexistente devuelve domain.ErrNotFound.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) (*entity.StockMovement, error) {
	if !validID(m.ProductID) {
		return nil, domain.ErrNotFound
	}
	query, args, err := psql.Insert("stock_movements").SetMap(map[string]any{
		"id":         uuid.New().String(),
		"product_id": m.ProductID,
		"quantity":   m.Quantity,
		"source":     string(m.Source),
		"note":       m.Note,
		"created_at": time.Now().UTC(),
	}).Suffix(returning(movementColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert movement: %w", err)
	}
	var row movementRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("insert movement: %w", err)
	}
	return row.toEntity(), nil
}
