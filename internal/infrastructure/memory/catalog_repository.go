package memory

import (
	"context"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var (
	_ repository.ProductModelRepository   = (*ProductModelRepository)(nil)
	_ repository.ProductColorisRepository = (*ProductColorisRepository)(nil)
)

// ProductModelRepository implementación en memoria de repository.ProductModelRepository.
type ProductModelRepository struct {
	s *Store
}

func (r *ProductModelRepository) List(ctx context.Context) ([]*entity.ProductModel, error) {
	defer r.s.rlock(false)()
	rows := r.s.models.all()
	out := make([]*entity.ProductModel, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out, nil
}

func (r *ProductModelRepository) GetByID(ctx context.Context, id string) (*entity.ProductModel, error) {
	defer r.s.rlock(false)()
	m, ok := r.s.models.get(id)
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *ProductModelRepository) Create(ctx context.Context, model *entity.ProductModel) (*entity.ProductModel, error) {
	defer r.s.lock(false)()
	m := *model
	if m.ID == "" {
		m.ID = r.s.newID()
	}
	if r.s.models.has(m.ID) {
		return nil, domain.ErrDuplicate
	}
	now := r.s.now()
	m.CreatedAt, m.UpdatedAt = now, now
	r.s.models.put(m.ID, m)
	return &m, nil
}

func (r *ProductModelRepository) Update(ctx context.Context, id string, patch entity.ProductModelPatch) (*entity.ProductModel, error) {
	defer r.s.lock(false)()
	m, ok := r.s.models.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	m = m.Apply(patch)
	m.UpdatedAt = r.s.now()
	r.s.models.put(id, m)
	return &m, nil
}

// ProductColorisRepository implementación en memoria de repository.ProductColorisRepository.
type ProductColorisRepository struct {
	s *Store
}

func (r *ProductColorisRepository) List(ctx context.Context) ([]*entity.ProductColoris, error) {
	return r.filter(func(entity.ProductColoris) bool { return true }), nil
}

func (r *ProductColorisRepository) ListByModel(ctx context.Context, modelID string) ([]*entity.ProductColoris, error) {
	return r.filter(func(c entity.ProductColoris) bool { return c.ModelID == modelID }), nil
}

func (r *ProductColorisRepository) filter(keep func(entity.ProductColoris) bool) []*entity.ProductColoris {
	defer r.s.rlock(false)()
	out := make([]*entity.ProductColoris, 0)
	for _, c := range r.s.coloris.all() {
		if keep(c) {
			out = append(out, &c)
		}
	}
	return out
}

func (r *ProductColorisRepository) GetByID(ctx context.Context, id string) (*entity.ProductColoris, error) {
	defer r.s.rlock(false)()
	c, ok := r.s.coloris.get(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ProductColorisRepository) Create(ctx context.Context, coloris *entity.ProductColoris) (*entity.ProductColoris, error) {
	defer r.s.lock(false)()
	c := *coloris
	if c.ID == "" {
		c.ID = r.s.newID()
	}
	if r.s.coloris.has(c.ID) {
		return nil, domain.ErrDuplicate
	}
	for _, existing := range r.s.coloris.all() {
		if existing.ModelID == c.ModelID && existing.Coloris == c.Coloris {
			return nil, domain.ErrDuplicate
		}
	}
	now := r.s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	r.s.coloris.put(c.ID, c)
	return &c, nil
}

func (r *ProductColorisRepository) Update(ctx context.Context, id string, patch entity.ProductColorisPatch) (*entity.ProductColoris, error) {
	defer r.s.lock(false)()
	c, ok := r.s.coloris.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	c = c.Apply(patch)
	c.UpdatedAt = r.s.now()
	r.s.coloris.put(id, c)
	return &c, nil
}
