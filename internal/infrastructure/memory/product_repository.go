package memory

import (
	"context"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación en memoria de repository.ProductRepository.
type ProductRepository struct {
	s    *Store
	inTx bool
}

func (r *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	defer r.s.rlock(r.inTx)()
	rows := r.s.products.all()
	out := make([]*entity.Product, 0, len(rows))
	for _, p := range rows {
		out = append(out, copyProduct(p))
	}
	return out, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	defer r.s.rlock(r.inTx)()
	p, ok := r.s.products.get(id)
	if !ok {
		return nil, nil
	}
	return copyProduct(p), nil
}

// GetByIDForUpdate dentro de Run ya se tiene el lock exclusivo; fuera equivale a GetByID.
func (r *ProductRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	p := *copyProduct(*product)
	if p.ID == "" {
		p.ID = r.s.newID()
	}
	if r.s.products.has(p.ID) {
		return nil, domain.ErrDuplicate
	}
	now := r.s.now()
	p.CreatedAt, p.UpdatedAt = now, now
	r.s.products.put(p.ID, p)
	return copyProduct(p), nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	p, ok := r.s.products.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	p = p.Apply(patch)
	p.UpdatedAt = r.s.now()
	r.s.products.put(id, p)
	return copyProduct(p), nil
}

func copyProduct(p entity.Product) *entity.Product {
	if p.Weight != nil {
		w := *p.Weight
		p.Weight = &w
	}
	return &p
}
