package repository

import (
	"context"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// ProductModelRepository define el puerto de persistencia para ProductModel.
type ProductModelRepository interface {
	List(ctx context.Context) ([]*entity.ProductModel, error)
	GetByID(ctx context.Context, id string) (*entity.ProductModel, error)
	Create(ctx context.Context, model *entity.ProductModel) (*entity.ProductModel, error)
	Update(ctx context.Context, id string, patch entity.ProductModelPatch) (*entity.ProductModel, error)
}

// ProductColorisRepository define el puerto de persistencia para ProductColoris.
type ProductColorisRepository interface {
	List(ctx context.Context) ([]*entity.ProductColoris, error)
	ListByModel(ctx context.Context, modelID string) ([]*entity.ProductColoris, error)
	GetByID(ctx context.Context, id string) (*entity.ProductColoris, error)
	Create(ctx context.Context, coloris *entity.ProductColoris) (*entity.ProductColoris, error)
	Update(ctx context.Context, id string, patch entity.ProductColorisPatch) (*entity.ProductColoris, error)
}
