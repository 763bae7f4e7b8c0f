// Package catalog contiene los casos de uso de productos, modelos y coloris.
package catalog

import (
	"context"
	"math"

	"github.com/jhoicas/atelier-api/internal/application/stock"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
	"github.com/jhoicas/atelier-api/internal/domain/validation"
)

const (
	msgNamingScheme    = "exactly one naming scheme is required: name/type/coloris or modelId/colorisId"
	msgNamingBlank     = "naming fields must not be blank"
	msgUnitCost        = "unitCost must be positive"
	msgSalePrice       = "salePrice must be positive"
	msgStock           = "stock must be a non-negative number"
	msgWeight          = "weight must be a non-negative number"
	msgStockPatch      = "stock can only change through stock movements"
	msgModelReference  = "modelId does not reference an existing product model"
	msgColorisMismatch = "colorisId does not reference a coloris of the given model"
)

// NamingSchemeError se devuelve cuando el parche trae campos de nombre que no forman
// exactamente un esquema.
func NamingSchemeError() error { return domain.NewValidationError(msgNamingScheme) }

// ProductUseCase casos de uso de productos. Product.Stock es siempre la suma del
// ledger: el stock inicial se registra como movimiento CREATION y el parche no lo toca.
type ProductUseCase struct {
	products repository.ProductRepository
	models   repository.ProductModelRepository
	coloris  repository.ProductColorisRepository
	txRunner stock.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	models repository.ProductModelRepository,
	coloris repository.ProductColorisRepository,
	txRunner stock.TxRunner,
) *ProductUseCase {
	return &ProductUseCase{products: products, models: models, coloris: coloris, txRunner: txRunner}
}

// Create valida el producto (incluidas las referencias al catálogo) y lo persiste.
// Con stock inicial, producto y movimiento CREATION se guardan en la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, data entity.Product) (*entity.Product, error) {
	if err := checkProduct(data); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, data.Naming); err != nil {
		return nil, err
	}
	initial := data.Stock
	data.Stock = 0
	if initial == 0 {
		return uc.products.Create(ctx, &data)
	}

	var created *entity.Product
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) error {
		p, err := productRepo.Create(ctx, &data)
		if err != nil {
			return err
		}
		if _, err := stock.ApplyMovement(ctx, productRepo, movementRepo, entity.StockMovement{
			ProductID: p.ID,
			Quantity:  initial,
			Source:    entity.StockMovementSourceCreation,
			Note:      "stock inicial",
		}); err != nil {
			return err
		}
		created, err = productRepo.GetByID(ctx, p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get devuelve el producto o (nil, nil) si no existe.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	return uc.products.GetByID(ctx, id)
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	return uc.products.List(ctx)
}

// Update aplica el parche, valida el producto resultante y persiste.
// Solo se revisan las referencias al catálogo cuando el parche cambia el nombre.
func (uc *ProductUseCase) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	current, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if patch.Stock != nil {
		return nil, domain.NewValidationError(msgStockPatch)
	}

	merged := current.Apply(patch)
	if err := checkProduct(merged); err != nil {
		return nil, err
	}
	if patch.Naming != nil {
		if err := uc.checkReferences(ctx, merged.Naming); err != nil {
			return nil, err
		}
	}
	return uc.products.Update(ctx, id, patch)
}

func checkProduct(p entity.Product) error {
	switch {
	case p.Naming == nil:
		return domain.NewValidationError(msgNamingScheme)
	case !validation.IsValidProductNaming(p.Naming):
		return domain.NewValidationError(msgNamingBlank)
	case !p.UnitCost.IsPositive():
		return domain.NewValidationError(msgUnitCost)
	case !p.SalePrice.IsPositive():
		return domain.NewValidationError(msgSalePrice)
	case math.IsInf(p.Stock, 0) || !(p.Stock >= 0):
		return domain.NewValidationError(msgStock)
	case p.Weight != nil && !(*p.Weight >= 0):
		return domain.NewValidationError(msgWeight)
	case !validation.IsValidProduct(p):
		return domain.NewValidationError(msgNamingBlank)
	}
	return nil
}

// checkReferences verifica que modelId exista y que colorisId pertenezca a ese modelo.
// El nombre legacy es texto libre y no se contrasta con el catálogo.
func (uc *ProductUseCase) checkReferences(ctx context.Context, naming entity.ProductNaming) error {
	ref, ok := naming.(entity.ModelNaming)
	if !ok {
		return nil
	}
	model, err := uc.models.GetByID(ctx, ref.ModelID)
	if err != nil {
		return err
	}
	if model == nil || !validation.IsValidProductModel(*model) {
		return domain.NewValidationError(msgModelReference)
	}
	coloris, err := uc.coloris.GetByID(ctx, ref.ColorisID)
	if err != nil {
		return err
	}
	if coloris == nil || !validation.IsValidProductColorisForModel(*coloris, model.ID) {
		return domain.NewValidationError(msgColorisMismatch)
	}
	return nil
}
