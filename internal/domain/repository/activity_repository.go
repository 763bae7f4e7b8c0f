package repository

import (
	"context"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// ActivityRepository define el puerto de persistencia para Activity.
type ActivityRepository interface {
	List(ctx context.Context) ([]*entity.Activity, error)
	GetByID(ctx context.Context, id string) (*entity.Activity, error)
	Create(ctx context.Context, activity *entity.Activity) (*entity.Activity, error)
	Update(ctx context.Context, id string, patch entity.ActivityPatch) (*entity.Activity, error)
}
