package dto

import (
	"time"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// CreateProductModelRequest entrada para crear un modelo.
type CreateProductModelRequest struct {
	Type string `json:"type"`
	Name string `json:"name" validate:"max=120"`
}

func (r CreateProductModelRequest) ToEntity() entity.ProductModel {
	return entity.ProductModel{Type: entity.ProductType(r.Type), Name: r.Name}
}

// UpdateProductModelRequest actualización parcial de un modelo.
type UpdateProductModelRequest struct {
	Type *string `json:"type"`
	Name *string `json:"name" validate:"omitempty,max=120"`
}

func (r UpdateProductModelRequest) ToPatch() entity.ProductModelPatch {
	var patch entity.ProductModelPatch
	if r.Type != nil {
		t := entity.ProductType(*r.Type)
		patch.Type = &t
	}
	patch.Name = r.Name
	return patch
}

// ProductModelResponse salida de un modelo.
type ProductModelResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToProductModelResponse(m *entity.ProductModel) ProductModelResponse {
	return ProductModelResponse{
		ID:        m.ID,
		Type:      string(m.Type),
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ColorisRequest entrada para crear o renombrar un coloris.
type ColorisRequest struct {
	Coloris string `json:"coloris" validate:"max=100"`
}

// ProductColorisResponse salida de un coloris.
type ProductColorisResponse struct {
	ID        string    `json:"id"`
	ModelID   string    `json:"modelId"`
	Coloris   string    `json:"coloris"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToProductColorisResponse(c *entity.ProductColoris) ProductColorisResponse {
	return ProductColorisResponse{
		ID:        c.ID,
		ModelID:   c.ModelID,
		Coloris:   c.Coloris,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
