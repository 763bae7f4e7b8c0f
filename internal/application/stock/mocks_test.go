package stock_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

// movementRepoMock StockMovementRepository con expectativas de testify/mock.
type movementRepoMock struct{ mock.Mock }

func (m *movementRepoMock) List(ctx context.Context) ([]*entity.StockMovement, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*entity.StockMovement)
	return out, args.Error(1)
}

func (m *movementRepoMock) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*entity.StockMovement)
	return out, args.Error(1)
}

func (m *movementRepoMock) ListByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	args := m.Called(ctx, productID)
	out, _ := args.Get(0).([]*entity.StockMovement)
	return out, args.Error(1)
}

func (m *movementRepoMock) Create(ctx context.Context, movement *entity.StockMovement) (*entity.StockMovement, error) {
	args := m.Called(ctx, movement)
	out, _ := args.Get(0).(*entity.StockMovement)
	return out, args.Error(1)
}

// fakeLedger productos + movimientos en memoria; Run descarta los cambios si fn falla.
type fakeLedger struct {
	mu        sync.Mutex
	products  map[string]entity.Product
	movements []*entity.StockMovement
}

func newFakeLedger(products ...entity.Product) *fakeLedger {
	l := &fakeLedger{products: map[string]entity.Product{}}
	for _, p := range products {
		l.products[p.ID] = p
	}
	return l
}

func (l *fakeLedger) stock(id string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.products[id].Stock
}

func (l *fakeLedger) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	products := &txProducts{rows: make(map[string]entity.Product, len(l.products))}
	for k, v := range l.products {
		products.rows[k] = v
	}
	movements := &txMovements{offset: len(l.movements)}
	if err := fn(products, movements); err != nil {
		return err
	}
	l.products = products.rows
	l.movements = append(l.movements, movements.created...)
	return nil
}

type txProducts struct {
	rows map[string]entity.Product
}

func (t *txProducts) List(context.Context) ([]*entity.Product, error) { return nil, nil }

func (t *txProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := t.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (t *txProducts) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return t.GetByID(ctx, id)
}

func (t *txProducts) Create(_ context.Context, p *entity.Product) (*entity.Product, error) {
	t.rows[p.ID] = *p
	return p, nil
}

func (t *txProducts) Update(_ context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	p, ok := t.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p = p.Apply(patch)
	t.rows[id] = p
	return &p, nil
}

type txMovements struct {
	offset  int
	created []*entity.StockMovement
}

func (t *txMovements) List(context.Context) ([]*entity.StockMovement, error) { return t.created, nil }

func (t *txMovements) GetByID(context.Context, string) (*entity.StockMovement, error) { return nil, nil }

func (t *txMovements) ListByProduct(context.Context, string) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (t *txMovements) Create(_ context.Context, m *entity.StockMovement) (*entity.StockMovement, error) {
	out := *m
	out.ID = fmt.Sprintf("mov-%d", t.offset+len(t.created)+1)
	t.created = append(t.created, &out)
	return &out, nil
}
