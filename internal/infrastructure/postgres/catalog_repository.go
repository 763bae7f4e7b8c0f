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

var (
	_ repository.ProductModelRepository   = (*ProductModelRepo)(nil)
	_ repository.ProductColorisRepository = (*ProductColorisRepo)(nil)
)

var (
	modelColumns   = []string{"id", "type", "name", "created_at", "updated_at"}
	colorisColumns = []string{"id", "model_id", "coloris", "created_at", "updated_at"}
)

type modelRow struct {
	ID        string    `db:"id"`
	Type      string    `db:"type"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r modelRow) toEntity() *entity.ProductModel {
	return &entity.ProductModel{
		ID:        r.ID,
		Type:      entity.ProductType(r.Type),
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type colorisRow struct {
	ID        string    `db:"id"`
	ModelID   string    `db:"model_id"`
	Coloris   string    `db:"coloris"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r colorisRow) toEntity() *entity.ProductColoris {
	return &entity.ProductColoris{
		ID:        r.ID,
		ModelID:   r.ModelID,
		Coloris:   r.Coloris,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ProductModelRepo modelos de producto sobre PostgreSQL.
type ProductModelRepo struct {
	q Querier
}

// NewProductModelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductModelRepository(q Querier) *ProductModelRepo {
	return &ProductModelRepo{q: q}
}

func (r *ProductModelRepo) List(ctx context.Context) ([]*entity.ProductModel, error) {
	query, args, err := psql.Select(modelColumns...).From("product_models").OrderBy("type", "name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list models: %w", err)
	}
	var rows []modelRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	out := make([]*entity.ProductModel, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *ProductModelRepo) GetByID(ctx context.Context, id string) (*entity.ProductModel, error) {
	if !validID(id) {
		return nil, nil
	}
	query, args, err := psql.Select(modelColumns...).From("product_models").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get model: %w", err)
	}
	var row modelRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get model: %w", err)
	}
	return row.toEntity(), nil
}

func (r *ProductModelRepo) Create(ctx context.Context, model *entity.ProductModel) (*entity.ProductModel, error) {
	now := time.Now().UTC()
	query, args, err := psql.Insert("product_models").SetMap(map[string]any{
		"id":         uuid.New().String(),
		"type":       string(model.Type),
		"name":       model.Name,
		"created_at": now,
		"updated_at": now,
	}).Suffix(returning(modelColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert model: %w", err)
	}
	var row modelRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert model: %w", err)
	}
	return row.toEntity(), nil
}

func (r *ProductModelRepo) Update(ctx context.Context, id string, patch entity.ProductModelPatch) (*entity.ProductModel, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	values := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Type != nil {
		values["type"] = string(*patch.Type)
	}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	query, args, err := psql.Update("product_models").SetMap(values).Where(squirrel.Eq{"id": id}).
		Suffix(returning(modelColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update model: %w", err)
	}
	var row modelRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update model: %w", err)
	}
	return row.toEntity(), nil
}

// ProductColorisRepo coloris de los modelos sobre PostgreSQL.
// (model_id, coloris) es único: repetirlo devuelve domain.ErrDuplicate.
type ProductColorisRepo struct {
	q Querier
}

// NewProductColorisRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductColorisRepository(q Querier) *ProductColorisRepo {
	return &ProductColorisRepo{q: q}
}

func (r *ProductColorisRepo) List(ctx context.Context) ([]*entity.ProductColoris, error) {
	return r.list(ctx, nil)
}

func (r *ProductColorisRepo) ListByModel(ctx context.Context, modelID string) ([]*entity.ProductColoris, error) {
	if !validID(modelID) {
		return []*entity.ProductColoris{}, nil
	}
	return r.list(ctx, squirrel.Eq{"model_id": modelID})
}

func (r *ProductColorisRepo) list(ctx context.Context, where squirrel.Sqlizer) ([]*entity.ProductColoris, error) {
	b := psql.Select(colorisColumns...).From("product_coloris").OrderBy("coloris")
	if where != nil {
		b = b.Where(where)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list coloris: %w", err)
	}
	var rows []colorisRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list coloris: %w", err)
	}
	out := make([]*entity.ProductColoris, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *ProductColorisRepo) GetByID(ctx context.Context, id string) (*entity.ProductColoris, error) {
	if !validID(id) {
		return nil, nil
	}
	query, args, err := psql.Select(colorisColumns...).From("product_coloris").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get coloris: %w", err)
	}
	var row colorisRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get coloris: %w", err)
	}
	return row.toEntity(), nil
}

func (r *ProductColorisRepo) Create(ctx context.Context, coloris *entity.ProductColoris) (*entity.ProductColoris, error) {
	if !validID(coloris.ModelID) {
		return nil, domain.ErrNotFound
	}
	now := time.Now().UTC()
	query, args, err := psql.Insert("product_coloris").SetMap(map[string]any{
		"id":         uuid.New().String(),
		"model_id":   coloris.ModelID,
		"coloris":    coloris.Coloris,
		"created_at": now,
		"updated_at": now,
	}).Suffix(returning(colorisColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert coloris: %w", err)
	}
	var row colorisRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("insert coloris: %w", err)
	}
	return row.toEntity(), nil
}

func (r *ProductColorisRepo) Update(ctx context.Context, id string, patch entity.ProductColorisPatch) (*entity.ProductColoris, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	values := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Coloris != nil {
		values["coloris"] = *patch.Coloris
	}
	query, args, err := psql.Update("product_coloris").SetMap(values).Where(squirrel.Eq{"id": id}).
		Suffix(returning(colorisColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update coloris: %w", err)
	}
	var row colorisRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		switch {
		case pgxscan.NotFound(err):
			return nil, domain.ErrNotFound
		case isUniqueViolation(err):
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update coloris: %w", err)
	}
	return row.toEntity(), nil
}
