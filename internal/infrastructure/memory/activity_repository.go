package memory

import (
	"context"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var (
	_ repository.ActivityRepository      = (*ActivityRepository)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepository)(nil)
)

// ActivityRepository implementación en memoria de repository.ActivityRepository.
type ActivityRepository struct {
	s *Store
}

func (r *ActivityRepository) List(ctx context.Context) ([]*entity.Activity, error) {
	defer r.s.rlock(false)()
	rows := r.s.activities.all()
	out := make([]*entity.Activity, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out, nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*entity.Activity, error) {
	defer r.s.rlock(false)()
	a, ok := r.s.activities.get(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *ActivityRepository) Create(ctx context.Context, activity *entity.Activity) (*entity.Activity, error) {
	defer r.s.lock(false)()
	a := *activity
	if a.ID == "" {
		a.ID = r.s.newID()
	}
	if r.s.activities.has(a.ID) {
		return nil, domain.ErrDuplicate
	}
	a.CreatedAt = r.s.now()
	r.s.activities.put(a.ID, a)
	return &a, nil
}

func (r *ActivityRepository) Update(ctx context.Context, id string, patch entity.ActivityPatch) (*entity.Activity, error) {
	defer r.s.lock(false)()
	a, ok := r.s.activities.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	a = a.Apply(patch)
	r.s.activities.put(id, a)
	return &a, nil
}

// StockMovementRepository implementación en memoria de repository.StockMovementRepository.
type StockMovementRepository struct {
	s    *Store
	inTx bool
}

func (r *StockMovementRepository) List(ctx context.Context) ([]*entity.StockMovement, error) {
	return r.filter(func(entity.StockMovement) bool { return true }), nil
}

func (r *StockMovementRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	return r.filter(func(m entity.StockMovement) bool { return m.ProductID == productID }), nil
}

func (r *StockMovementRepository) filter(keep func(entity.StockMovement) bool) []*entity.StockMovement {
	defer r.s.rlock(r.inTx)()
	out := make([]*entity.StockMovement, 0)
	for _, m := range r.s.movements.all() {
		if keep(m) {
			out = append(out, &m)
		}
	}
	return out
}

func (r *StockMovementRepository) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	defer r.s.rlock(r.inTx)()
	m, ok := r.s.movements.get(id)
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *StockMovementRepository) Create(ctx context.Context, movement *entity.StockMovement) (*entity.StockMovement, error) {
	defer r.s.lock(r.inTx)()
	m := *movement
	if m.ID == "" {
		m.ID = r.s.newID()
	}
	if r.s.movements.has(m.ID) {
		return nil, domain.ErrDuplicate
	}
	m.CreatedAt = r.s.now()
	r.s.movements.put(m.ID, m)
	return &m, nil
}
