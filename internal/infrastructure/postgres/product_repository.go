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

var _ repository.ProductRepository = (*ProductRepo)(nil)

var productColumns = []string{
	"id", "name", "type", "coloris", "model_id", "coloris_id",
	"unit_cost", "sale_price", "stock", "weight", "created_at", "updated_at",
}

// productRow fila de products; los cinco campos de nombre son nullable.
type productRow struct {
	ID        string          `db:"id"`
	Name      *string         `db:"name"`
	Type      *string         `db:"type"`
	Coloris   *string         `db:"coloris"`
	ModelID   *string         `db:"model_id"`
	ColorisID *string         `db:"coloris_id"`
	UnitCost  decimal.Decimal `db:"unit_cost"`
	SalePrice decimal.Decimal `db:"sale_price"`
	Stock     float64         `db:"stock"`
	Weight    *float64        `db:"weight"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func (r productRow) toEntity() *entity.Product {
	return &entity.Product{
		ID:        r.ID,
		Naming:    entity.ResolveNaming(deref(r.Name), deref(r.Type), deref(r.Coloris), deref(r.ModelID), deref(r.ColorisID)),
		UnitCost:  r.UnitCost,
		SalePrice: r.SalePrice,
		Stock:     r.Stock,
		Weight:    r.Weight,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// namingValues aplana la unión a las cinco columnas (NULL para el esquema no usado).
func namingValues(n entity.ProductNaming) map[string]any {
	name, productType, coloris, modelID, colorisID := entity.NamingFields(n)
	return map[string]any{
		"name":       nullable(name),
		"type":       nullable(productType),
		"coloris":    nullable(coloris),
		"model_id":   nullable(modelID),
		"coloris_id": nullable(colorisID),
	}
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve los productos en orden de alta.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query, args, err := psql.Select(productColumns...).From("products").OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}
	var rows []productRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate igual que GetByID con SELECT ... FOR UPDATE. Solo tiene efecto dentro de una tx.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, id, true)
}

func (r *ProductRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	b := psql.Select(productColumns...).From("products").Where(squirrel.Eq{"id": id})
	if forUpdate {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get product: %w", err)
	}
	var row productRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.toEntity(), nil
}

// Create persiste un nuevo producto con ID y fechas generados aquí.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	now := time.Now().UTC()
	values := namingValues(product.Naming)
	values["id"] = uuid.New().String()
	values["unit_cost"] = product.UnitCost
	values["sale_price"] = product.SalePrice
	values["stock"] = product.Stock
	values["weight"] = product.Weight
	values["created_at"] = now
	values["updated_at"] = now

	query, args, err := psql.Insert("products").SetMap(values).
		Suffix(returning(productColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert product: %w", err)
	}
	var row productRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return row.toEntity(), nil
}

// Update aplica solo los campos presentes en el parche. domain.ErrNotFound si no existe.
func (r *ProductRepo) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	values := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Naming != nil {
		for k, v := range namingValues(patch.Naming) {
			values[k] = v
		}
	}
	if patch.UnitCost != nil {
		values["unit_cost"] = *patch.UnitCost
	}
	if patch.SalePrice != nil {
		values["sale_price"] = *patch.SalePrice
	}
	if patch.Stock != nil {
		values["stock"] = *patch.Stock
	}
	if patch.Weight != nil {
		values["weight"] = *patch.Weight
	}

	query, args, err := psql.Update("products").SetMap(values).Where(squirrel.Eq{"id": id}).
		Suffix(returning(productColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update product: %w", err)
	}
	var row productRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return row.toEntity(), nil
}
