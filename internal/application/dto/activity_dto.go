package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/revenue"
)

const msgActivityDate = "date must be a valid ISO 8601 string"

// CreateActivityRequest entrada para registrar una actividad.
type CreateActivityRequest struct {
	Date      string          `json:"date" validate:"required"`
	Type      string          `json:"type"`
	ProductID string          `json:"productId" validate:"max=64"`
	Quantity  float64         `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note" validate:"max=1000"`
}

// ToEntity convierte la petición; una fecha ilegible es un VALIDATION_ERROR.
func (r CreateActivityRequest) ToEntity() (entity.Activity, error) {
	date, ok := revenue.ParseISODate(r.Date)
	if !ok {
		return entity.Activity{}, domain.NewValidationError(msgActivityDate)
	}
	return entity.Activity{
		Date:      date,
		Type:      entity.ActivityType(r.Type),
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Amount:    r.Amount,
		Note:      r.Note,
	}, nil
}

// UpdateActivityRequest actualización parcial de una actividad.
type UpdateActivityRequest struct {
	Date      *string          `json:"date"`
	Type      *string          `json:"type"`
	ProductID *string          `json:"productId" validate:"omitempty,max=64"`
	Quantity  *float64         `json:"quantity"`
	Amount    *decimal.Decimal `json:"amount"`
	Note      *string          `json:"note" validate:"omitempty,max=1000"`
}

func (r UpdateActivityRequest) ToPatch() (entity.ActivityPatch, error) {
	patch := entity.ActivityPatch{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Amount:    r.Amount,
		Note:      r.Note,
	}
	if r.Date != nil {
		date, ok := revenue.ParseISODate(*r.Date)
		if !ok {
			return patch, domain.NewValidationError(msgActivityDate)
		}
		patch.Date = &date
	}
	if r.Type != nil {
		t := entity.ActivityType(*r.Type)
		patch.Type = &t
	}
	return patch, nil
}

// ActivityResponse salida de una actividad.
type ActivityResponse struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Type      string          `json:"type"`
	ProductID string          `json:"productId,omitempty"`
	Quantity  float64         `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

func ToActivityResponse(a *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        a.ID,
		Date:      a.Date,
		Type:      string(a.Type),
		ProductID: a.ProductID,
		Quantity:  a.Quantity,
		Amount:    a.Amount,
		Note:      a.Note,
		CreatedAt: a.CreatedAt,
	}
}
