package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/atelier-api/internal/application/stock"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner registra movimientos de stock y actualiza Product.stock en la misma
// transacción. El producto se lee con FOR UPDATE, así que READ COMMITTED alcanza
// para serializar ventas concurrentes del mismo producto.
type TxRunner struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool, opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
}

// Run hace Commit si fn devuelve nil y Rollback en cualquier otro caso.
// El error de fn se devuelve sin envolver para que los sentinels del dominio lleguen al handler.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return pgx.BeginTxFunc(ctx, r.pool, r.opts, func(tx pgx.Tx) error {
		return fn(NewProductRepository(tx), NewStockMovementRepository(tx))
	})
}
