package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityType tipo de evento de negocio.
type ActivityType string

const (
	ActivityTypeCreation        ActivityType = "CREATION"         // fabricación de unidades
	ActivityTypeSale            ActivityType = "SALE"             // venta (genera ingreso)
	ActivityTypeStockCorrection ActivityType = "STOCK_CORRECTION" // corrección de inventario
	ActivityTypeOther           ActivityType = "OTHER"
)

// ActivityTypes lista ordenada de tipos.
var ActivityTypes = []ActivityType{
	ActivityTypeCreation, ActivityTypeSale, ActivityTypeStockCorrection, ActivityTypeOther,
}

// Activity evento de negocio registrado. Puede o no mover stock y puede o no generar ingreso.
// ProductID vacío significa "sin producto".
type Activity struct {
	ID        string
	Date      time.Time
	Type      ActivityType
	ProductID string
	Quantity  float64         // con signo
	Amount    decimal.Decimal // importe; para SALE es el ingreso de la venta
	Note      string
	CreatedAt time.Time
}

// ActivityPatch actualización parcial de una actividad.
type ActivityPatch struct {
	Date      *time.Time
	Type      *ActivityType
	ProductID *string
	Quantity  *float64
	Amount    *decimal.Decimal
	Note      *string
}

// Apply devuelve una copia de la actividad con el parche aplicado.
func (a Activity) Apply(patch ActivityPatch) Activity {
	if patch.Date != nil {
		a.Date = *patch.Date
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.ProductID != nil {
		a.ProductID = *patch.ProductID
	}
	if patch.Quantity != nil {
		a.Quantity = *patch.Quantity
	}
	if patch.Amount != nil {
		a.Amount = *patch.Amount
	}
	if patch.Note != nil {
		a.Note = *patch.Note
	}
	return a
}
