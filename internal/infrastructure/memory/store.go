// Package memory implementa los repositorios sobre mapas protegidos por un sync.RWMutex.
// Se usa con STORAGE_DRIVER=memory y en tests; los datos se pierden al reiniciar.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/atelier-api/internal/application/stock"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ stock.TxRunner = (*Store)(nil)

// Store contiene todas las tablas. Un único mutex serializa las escrituras
// y permite lecturas concurrentes.
type Store struct {
	mu         sync.RWMutex
	products   *table[entity.Product]
	models     *table[entity.ProductModel]
	coloris    *table[entity.ProductColoris]
	activities *table[entity.Activity]
	movements  *table[entity.StockMovement]

	now   func() time.Time
	newID func() string
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:   newTable[entity.Product](),
		models:     newTable[entity.ProductModel](),
		coloris:    newTable[entity.ProductColoris](),
		activities: newTable[entity.Activity](),
		movements:  newTable[entity.StockMovement](),
		now:        func() time.Time { return time.Now().UTC() },
		newID:      func() string { return uuid.New().String() },
	}
}

func (s *Store) Products() *ProductRepository { return &ProductRepository{s: s} }

func (s *Store) ProductModels() *ProductModelRepository { return &ProductModelRepository{s: s} }

func (s *Store) ProductColoris() *ProductColorisRepository { return &ProductColorisRepository{s: s} }

func (s *Store) Activities() *ActivityRepository { return &ActivityRepository{s: s} }

func (s *Store) StockMovements() *StockMovementRepository { return &StockMovementRepository{s: s} }

// Ping siempre responde; solo falla con el contexto cancelado.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// Run ejecuta fn con el almacén bloqueado en escritura. Si fn devuelve error
// se restauran productos y movimientos al estado previo.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	products, movements := s.products.clone(), s.movements.clone()
	err := fn(&ProductRepository{s: s, inTx: true}, &StockMovementRepository{s: s, inTx: true})
	if err != nil {
		s.products, s.movements = products, movements
		return err
	}
	return nil
}

// rlock toma el lock de lectura salvo dentro de Run, donde ya se tiene el de escritura.
func (s *Store) rlock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// table mantiene las filas y su orden de inserción.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) has(id string) bool {
	_, ok := t.rows[id]
	return ok
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id string, v T) {
	if !t.has(id) {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) clone() *table[T] {
	c := &table[T]{rows: make(map[string]T, len(t.rows)), order: append([]string(nil), t.order...)}
	for k, v := range t.rows {
		c.rows[k] = v
	}
	return c
}
