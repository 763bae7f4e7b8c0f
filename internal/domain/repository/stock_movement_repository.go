package repository

import (
	"context"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para el libro de movimientos de stock.
// Los movimientos son inmutables: no hay Update ni Delete.
type StockMovementRepository interface {
	List(ctx context.Context) ([]*entity.StockMovement, error)
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error)
	Create(ctx context.Context, movement *entity.StockMovement) (*entity.StockMovement, error)
}
