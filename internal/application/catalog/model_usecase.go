package catalog

import (
	"context"
	"strings"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
	"github.com/jhoicas/atelier-api/internal/domain/validation"
)

const (
	msgProductType = "type must be one of BAG, POUCH, WALLET, ACCESSORY, OTHER"
	msgModelName   = "name is required for product model"
	msgColorisName = "coloris is required"
)

// ModelUseCase casos de uso de modelos y de sus coloris.
type ModelUseCase struct {
	models  repository.ProductModelRepository
	coloris repository.ProductColorisRepository
}

// NewModelUseCase construye el caso de uso.
func NewModelUseCase(models repository.ProductModelRepository, coloris repository.ProductColorisRepository) *ModelUseCase {
	return &ModelUseCase{models: models, coloris: coloris}
}

// CreateModel valida tipo y nombre y persiste el modelo.
func (uc *ModelUseCase) CreateModel(ctx context.Context, data entity.ProductModel) (*entity.ProductModel, error) {
	data.Name = strings.TrimSpace(data.Name)
	if err := checkModelFields(data); err != nil {
		return nil, err
	}
	return uc.models.Create(ctx, &data)
}

func (uc *ModelUseCase) GetModel(ctx context.Context, id string) (*entity.ProductModel, error) {
	return uc.models.GetByID(ctx, id)
}

func (uc *ModelUseCase) ListModels(ctx context.Context) ([]*entity.ProductModel, error) {
	return uc.models.List(ctx)
}

// ListModelsByType devuelve los modelos válidos de una categoría (selector del catálogo).
func (uc *ModelUseCase) ListModelsByType(ctx context.Context, productType string) ([]*entity.ProductModel, error) {
	if !validation.IsValidProductType(productType) {
		return nil, domain.NewValidationError(msgProductType)
	}
	rows, err := uc.models.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ProductModel, 0, len(rows))
	for _, m := range rows {
		if validation.IsValidProductModelForType(*m, entity.ProductType(productType)) {
			out = append(out, m)
		}
	}
	return out, nil
}

// UpdateModel aplica el parche y valida el modelo resultante.
func (uc *ModelUseCase) UpdateModel(ctx context.Context, id string, patch entity.ProductModelPatch) (*entity.ProductModel, error) {
	current, err := uc.models.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	merged := current.Apply(patch)
	if err := checkModelFields(merged); err != nil {
		return nil, err
	}
	if !validation.IsValidProductModel(merged) {
		return nil, domain.NewValidationError(msgModelName)
	}
	return uc.models.Update(ctx, id, patch)
}

// CreateColoris agrega un coloris a un modelo existente.
func (uc *ModelUseCase) CreateColoris(ctx context.Context, modelID, coloris string) (*entity.ProductColoris, error) {
	coloris = strings.TrimSpace(coloris)
	if coloris == "" {
		return nil, domain.NewValidationError(msgColorisName)
	}
	model, err := uc.models.GetByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, domain.ErrNotFound
	}
	return uc.coloris.Create(ctx, &entity.ProductColoris{ModelID: model.ID, Coloris: coloris})
}

// ListColoris lista los coloris de un modelo. Un modelo inexistente devuelve domain.ErrNotFound.
func (uc *ModelUseCase) ListColoris(ctx context.Context, modelID string) ([]*entity.ProductColoris, error) {
	model, err := uc.models.GetByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, domain.ErrNotFound
	}
	return uc.coloris.ListByModel(ctx, model.ID)
}

// UpdateColoris renombra un coloris; el modelo al que pertenece no cambia.
func (uc *ModelUseCase) UpdateColoris(ctx context.Context, id string, patch entity.ProductColorisPatch) (*entity.ProductColoris, error) {
	current, err := uc.coloris.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if patch.Coloris != nil {
		trimmed := strings.TrimSpace(*patch.Coloris)
		patch.Coloris = &trimmed
	}
	if !validation.IsValidProductColoris(current.Apply(patch)) {
		return nil, domain.NewValidationError(msgColorisName)
	}
	return uc.coloris.Update(ctx, id, patch)
}

func checkModelFields(m entity.ProductModel) error {
	if !validation.IsValidProductType(string(m.Type)) {
		return domain.NewValidationError(msgProductType)
	}
	if strings.TrimSpace(m.Name) == "" {
		return domain.NewValidationError(msgModelName)
	}
	return nil
}
