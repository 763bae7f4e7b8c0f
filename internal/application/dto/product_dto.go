package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// Esquemas de nombre expuestos en la API.
const (
	NamingLegacy = "legacy"
	NamingModel  = "model"
)

// CreateProductRequest entrada para crear un producto. Se envía el nombre legacy
// (name/type/coloris) o las referencias al catálogo (modelId/colorisId), no ambos.
type CreateProductRequest struct {
	Name      string          `json:"name" validate:"max=200"`
	Type      string          `json:"type" validate:"max=50"`
	Coloris   string          `json:"coloris" validate:"max=100"`
	ModelID   string          `json:"modelId" validate:"max=64"`
	ColorisID string          `json:"colorisId" validate:"max=64"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	SalePrice decimal.Decimal `json:"salePrice"`
	Stock     float64         `json:"stock"`
	Weight    *float64        `json:"weight,omitempty"`
}

// ToEntity arma el Product; la unión de nombre queda nil si no hay exactamente un esquema.
func (r CreateProductRequest) ToEntity() entity.Product {
	return entity.Product{
		Naming:    entity.ResolveNaming(r.Name, r.Type, r.Coloris, r.ModelID, r.ColorisID),
		UnitCost:  r.UnitCost,
		SalePrice: r.SalePrice,
		Stock:     r.Stock,
		Weight:    r.Weight,
	}
}

// UpdateProductRequest actualización parcial. Si llega algún campo de nombre,
// el esquema completo se reemplaza por el enviado.
type UpdateProductRequest struct {
	Name      *string          `json:"name" validate:"omitempty,max=200"`
	Type      *string          `json:"type" validate:"omitempty,max=50"`
	Coloris   *string          `json:"coloris" validate:"omitempty,max=100"`
	ModelID   *string          `json:"modelId" validate:"omitempty,max=64"`
	ColorisID *string          `json:"colorisId" validate:"omitempty,max=64"`
	UnitCost  *decimal.Decimal `json:"unitCost"`
	SalePrice *decimal.Decimal `json:"salePrice"`
	Stock     *float64         `json:"stock"` // se rechaza: el stock cambia solo con movimientos
	Weight    *float64         `json:"weight"`
}

// HasNaming indica si el parche toca el nombre.
func (r UpdateProductRequest) HasNaming() bool {
	return r.Name != nil || r.Type != nil || r.Coloris != nil || r.ModelID != nil || r.ColorisID != nil
}

// ToPatch convierte la petición en entity.ProductPatch. Devuelve ok=false cuando
// se envían campos de nombre que no forman exactamente un esquema.
func (r UpdateProductRequest) ToPatch() (patch entity.ProductPatch, ok bool) {
	patch = entity.ProductPatch{
		UnitCost:  r.UnitCost,
		SalePrice: r.SalePrice,
		Stock:     r.Stock,
		Weight:    r.Weight,
	}
	if !r.HasNaming() {
		return patch, true
	}
	patch.Naming = entity.ResolveNaming(deref(r.Name), deref(r.Type), deref(r.Coloris), deref(r.ModelID), deref(r.ColorisID))
	return patch, patch.Naming != nil
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	NamingScheme string          `json:"namingScheme"`
	Name         string          `json:"name,omitempty"`
	Type         string          `json:"type,omitempty"`
	Coloris      string          `json:"coloris,omitempty"`
	ModelID      string          `json:"modelId,omitempty"`
	ColorisID    string          `json:"colorisId,omitempty"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	SalePrice    decimal.Decimal `json:"salePrice"`
	Stock        float64         `json:"stock"`
	Weight       *float64        `json:"weight,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToProductResponse mapea la entidad a la respuesta.
func ToProductResponse(p *entity.Product) ProductResponse {
	name, productType, coloris, modelID, colorisID := entity.NamingFields(p.Naming)
	scheme := NamingLegacy
	if _, ok := p.Naming.(entity.ModelNaming); ok {
		scheme = NamingModel
	}
	return ProductResponse{
		ID:           p.ID,
		NamingScheme: scheme,
		Name:         name,
		Type:         productType,
		Coloris:      coloris,
		ModelID:      modelID,
		ColorisID:    colorisID,
		UnitCost:     p.UnitCost,
		SalePrice:    p.SalePrice,
		Stock:        p.Stock,
		Weight:       p.Weight,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
