// Package activity contiene los casos de uso del registro de actividades del taller.
package activity

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
	msgTypeUnknown     = "type must be one of CREATION, SALE, STOCK_CORRECTION, OTHER"
	msgProductRequired = "productId is required for SALE and STOCK_CORRECTION activities"
	msgQuantityFinite  = "quantity must be a finite number"
)

// ListActivities devuelve todas las actividades.
func ListActivities(ctx context.Context, repo repository.ActivityRepository) ([]*entity.Activity, error) {
	return repo.List(ctx)
}

// GetActivity devuelve la actividad o (nil, nil) si no existe.
func GetActivity(ctx context.Context, repo repository.ActivityRepository, id string) (*entity.Activity, error) {
	return repo.GetByID(ctx, id)
}

// CreateActivity valida la actividad y la persiste.
func CreateActivity(ctx context.Context, repo repository.ActivityRepository, data entity.Activity) (*entity.Activity, error) {
	a, err := checkActivity(data)
	if err != nil {
		return nil, err
	}
	return repo.Create(ctx, &a)
}

// UpdateActivity aplica el parche sobre el registro actual y valida el resultado
// antes de persistir. Si no existe devuelve domain.ErrNotFound.
func UpdateActivity(
	ctx context.Context,
	repo repository.ActivityRepository,
	id string,
	patch entity.ActivityPatch,
) (*entity.Activity, error) {
	current, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	merged, err := checkActivity(current.Apply(patch))
	if err != nil {
		return nil, err
	}
	if patch.ProductID != nil {
		patch.ProductID = &merged.ProductID
	}
	return repo.Update(ctx, id, patch)
}

func checkActivity(a entity.Activity) (entity.Activity, error) {
	a.ProductID = strings.TrimSpace(a.ProductID)
	if !validation.IsValidActivityType(string(a.Type)) {
		return a, domain.NewValidationError(msgTypeUnknown)
	}
	if !validation.IsValidActivity(a) {
		return a, domain.NewValidationError(msgProductRequired)
	}
	if math.IsNaN(a.Quantity) || math.IsInf(a.Quantity, 0) {
		return a, domain.NewValidationError(msgQuantityFinite)
	}
	return a, nil
}

// ActivityUseCase agrupa las operaciones de actividades para la capa HTTP.
type ActivityUseCase struct {
	repo repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

func (uc *ActivityUseCase) List(ctx context.Context) ([]*entity.Activity, error) {
	return ListActivities(ctx, uc.repo)
}

func (uc *ActivityUseCase) Get(ctx context.Context, id string) (*entity.Activity, error) {
	return GetActivity(ctx, uc.repo, id)
}

func (uc *ActivityUseCase) Create(ctx context.Context, data entity.Activity) (*entity.Activity, error) {
	return CreateActivity(ctx, uc.repo, data)
}

func (uc *ActivityUseCase) Update(ctx context.Context, id string, patch entity.ActivityPatch) (*entity.Activity, error) {
	return UpdateActivity(ctx, uc.repo, id, patch)
}
