package entity

import "time"

// StockMovementSource origen de un movimiento de stock.
type StockMovementSource string

const (
	StockMovementSourceCreation            StockMovementSource = "CREATION"             // entrada, cantidad > 0
	StockMovementSourceSale                StockMovementSource = "SALE"                 // salida, cantidad < 0
	StockMovementSourceInventoryAdjustment StockMovementSource = "INVENTORY_ADJUSTMENT" // ajuste, cualquier signo
)

// StockMovementSources lista ordenada de orígenes.
var StockMovementSources = []StockMovementSource{
	StockMovementSourceCreation, StockMovementSourceSale, StockMovementSourceInventoryAdjustment,
}

// StockMovement asiento atómico del libro de stock. Quantity es el delta con signo
// que se aplica a las existencias del producto.
type StockMovement struct {
	ID        string
	ProductID string
	Quantity  float64
	Source    StockMovementSource
	Note      string
	CreatedAt time.Time
}
