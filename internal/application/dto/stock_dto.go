package dto

import (
	"time"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// CreateStockMovementRequest entrada para registrar un movimiento de stock.
// Quantity con signo: positivo entra, negativo sale.
type CreateStockMovementRequest struct {
	ProductID string  `json:"productId" validate:"max=64"`
	Quantity  float64 `json:"quantity"`
	Source    string  `json:"source"`
	Note      string  `json:"note" validate:"max=500"`
}

func (r CreateStockMovementRequest) ToEntity() entity.StockMovement {
	return entity.StockMovement{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Source:    entity.StockMovementSource(r.Source),
		Note:      r.Note,
	}
}

// StockMovementResponse salida de un movimiento.
type StockMovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Quantity  float64   `json:"quantity"`
	Source    string    `json:"source"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToStockMovementResponse(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Source:    string(m.Source),
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}
