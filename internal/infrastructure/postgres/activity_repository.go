package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

var activityColumns = []string{"id", "date", "type", "product_id", "quantity", "amount", "note", "created_at"}

type activityRow struct {
	ID        string          `db:"id"`
	Date      time.Time       `db:"date"`
	Type      string          `db:"type"`
	ProductID *string         `db:"product_id"`
	Quantity  float64         `db:"quantity"`
	Amount    decimal.Decimal `db:"amount"`
	Note      string          `db:"note"`
	CreatedAt time.Time       `db:"created_at"`
}

func (r activityRow) toEntity() *entity.Activity {
	return &entity.Activity{
		ID:        r.ID,
		Date:      r.Date.UTC(),
		Type:      entity.ActivityType(r.Type),
		ProductID: deref(r.ProductID),
		Quantity:  r.Quantity,
		Amount:    r.Amount,
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
	}
}

// ActivityRepo diario de actividades sobre PostgreSQL.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// List devuelve todas las actividades por fecha.
func (r *ActivityRepo) List(ctx context.Context) ([]*entity.Activity, error) {
	query, args, err := psql.Select(activityColumns...).From("activities").OrderBy("date", "created_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activities: %w", err)
	}
	var rows []activityRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	out := make([]*entity.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *ActivityRepo) GetByID(ctx context.Context, id string) (*entity.Activity, error) {
	if !validID(id) {
		return nil, nil
	}
	query, args, err := psql.Select(activityColumns...).From("activities").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get activity: %w", err)
	}
	var row activityRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return row.toEntity(), nil
}

func (r *ActivityRepo) Create(ctx context.Context, a *entity.Activity) (*entity.Activity, error) {
	now := time.Now().UTC()
	query, args, err := psql.Insert("activities").SetMap(map[string]any{
		"id":         uuid.New().String(),
		"date":       a.Date,
		"type":       string(a.Type),
		"product_id": nullable(a.ProductID),
		"quantity":   a.Quantity,
		"amount":     a.Amount,
		"note":       a.Note,
		"created_at": now,
		"updated_at": now,
	}).Suffix(returning(activityColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert activity: %w", err)
	}
	var row activityRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}
	return row.toEntity(), nil
}

// Update aplica solo los campos presentes en el parche. domain.ErrNotFound si no existe.
func (r *ActivityRepo) Update(ctx context.Context, id string, patch entity.ActivityPatch) (*entity.Activity, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	values := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Date != nil {
		values["date"] = *patch.Date
	}
	if patch.Type != nil {
		values["type"] = string(*patch.Type)
	}
	if patch.ProductID != nil {
		values["product_id"] = nullable(*patch.ProductID)
	}
	if patch.Quantity != nil {
		values["quantity"] = *patch.Quantity
	}
	if patch.Amount != nil {
		values["amount"] = *patch.Amount
	}
	if patch.Note != nil {
		values["note"] = *patch.Note
	}
	query, args, err := psql.Update("activities").SetMap(values).Where(squirrel.Eq{"id": id}).
		Suffix(returning(activityColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update activity: %w", err)
	}
	var row activityRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update activity: %w", err)
	}
	return row.toEntity(), nil
}
