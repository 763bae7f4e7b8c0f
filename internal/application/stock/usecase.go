// Package stock contiene los casos de uso del libro de movimientos de stock.
package stock

import (
	"context"
	"math"
	"strings"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
	"github.com/jhoicas/atelier-api/internal/domain/validation"
)

const (
	msgProductRequired = "productId is required for stock movement"
	msgQuantityNaN     = "quantity must be a valid number"
	msgQuantityInf     = "quantity must be a finite number"
	msgQuantityZero    = "quantity must be non-zero"
	msgSourceUnknown   = "source must be one of CREATION, SALE, INVENTORY_ADJUSTMENT"
	msgSignMismatch    = "quantity sign does not match stock movement source"
)

// CreateStockMovement valida el movimiento y lo persiste. Si la validación falla
// el repositorio no se llama. Los errores del repositorio se devuelven sin envolver.
func CreateStockMovement(
	ctx context.Context,
	repo repository.StockMovementRepository,
	data entity.StockMovement,
) (*entity.StockMovement, error) {
	movement, err := checkMovement(data)
	if err != nil {
		return nil, err
	}
	return repo.Create(ctx, &movement)
}

// ListStockMovements devuelve todos los movimientos.
func ListStockMovements(ctx context.Context, repo repository.StockMovementRepository) ([]*entity.StockMovement, error) {
	return repo.List(ctx)
}

// ListStockMovementsByProduct devuelve los movimientos de un producto.
func ListStockMovementsByProduct(
	ctx context.Context,
	repo repository.StockMovementRepository,
	productID string,
) ([]*entity.StockMovement, error) {
	return repo.ListByProduct(ctx, productID)
}

// checkMovement aplica las reglas en orden y devuelve el movimiento normalizado
// (ProductID sin espacios alrededor).
func checkMovement(data entity.StockMovement) (entity.StockMovement, error) {
	data.ProductID = strings.TrimSpace(data.ProductID)
	switch {
	case data.ProductID == "":
		return data, domain.NewValidationError(msgProductRequired)
	case math.IsNaN(data.Quantity):
		return data, domain.NewValidationError(msgQuantityNaN)
	case math.IsInf(data.Quantity, 0):
		return data, domain.NewValidationError(msgQuantityInf)
	case data.Quantity == 0:
		return data, domain.NewValidationError(msgQuantityZero)
	case !validation.IsValidStockMovementSource(string(data.Source)):
		return data, domain.NewValidationError(msgSourceUnknown)
	case !validation.IsValidStockMovement(data):
		return data, domain.NewValidationError(msgSignMismatch)
	}
	return data, nil
}
