package stock

import (
	"context"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// RegisterStockMovement registra el movimiento y actualiza Product.Stock en la misma
// transacción. Bloquea la fila del producto (SELECT FOR UPDATE) antes de calcular el
// nuevo stock; si quedaría negativo devuelve domain.ErrInsufficientStock.
func RegisterStockMovement(ctx context.Context, tx TxRunner, data entity.StockMovement) (*entity.StockMovement, error) {
	movement, err := checkMovement(data)
	if err != nil {
		return nil, err
	}

	var created *entity.StockMovement
	err = tx.Run(ctx, func(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) error {
		created, err = ApplyMovement(ctx, productRepo, movementRepo, movement)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ApplyMovement persiste un movimiento ya validado y ajusta Product.Stock con los
// repositorios de una transacción abierta. Es el único camino que modifica el stock.
func ApplyMovement(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	movement entity.StockMovement,
) (*entity.StockMovement, error) {
	product, err := productRepo.GetByIDForUpdate(ctx, movement.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	newStock := product.Stock + movement.Quantity
	if newStock < 0 {
		return nil, domain.ErrInsufficientStock
	}

	created, err := movementRepo.Create(ctx, &movement)
	if err != nil {
		return nil, err
	}
	if _, err := productRepo.Update(ctx, product.ID, entity.ProductPatch{Stock: &newStock}); err != nil {
		return nil, err
	}
	return created, nil
}

// MovementUseCase agrupa las operaciones de stock para la capa HTTP.
type MovementUseCase struct {
	movementRepo repository.StockMovementRepository
	txRunner     TxRunner
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movementRepo repository.StockMovementRepository, txRunner TxRunner) *MovementUseCase {
	return &MovementUseCase{movementRepo: movementRepo, txRunner: txRunner}
}

// Register valida y registra el movimiento actualizando el stock del producto.
func (uc *MovementUseCase) Register(ctx context.Context, data entity.StockMovement) (*entity.StockMovement, error) {
	return RegisterStockMovement(ctx, uc.txRunner, data)
}

// List devuelve todos los movimientos.
func (uc *MovementUseCase) List(ctx context.Context) ([]*entity.StockMovement, error) {
	return ListStockMovements(ctx, uc.movementRepo)
}

// ListByProduct devuelve los movimientos de un producto.
func (uc *MovementUseCase) ListByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	return ListStockMovementsByProduct(ctx, uc.movementRepo, productID)
}
