package revenue

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals resultado numérico de la agregación de ventas de un rango.
type Totals struct {
	TotalRevenue    decimal.Decimal
	MaterialCosts   decimal.Decimal
	GrossMargin     decimal.Decimal
	GrossMarginRate decimal.Decimal
}

// InRange indica si t cae en [start, end], ambos extremos incluidos.
func InRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// IsCountedSale filtra las actividades que entran al reporte: solo SALE dentro del rango.
func IsCountedSale(a *entity.Activity, start, end time.Time) bool {
	return a.Type == entity.ActivityTypeSale && InRange(a.Date, start, end)
}

// UnitCosts indexa el costo unitario por id de producto.
func UnitCosts(products []*entity.Product) map[string]decimal.Decimal {
	costs := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		costs[p.ID] = p.UnitCost
	}
	return costs
}

// MaterialCost costo de material de una venta: unitCost × |quantity|.
// Sin producto o con un producto desconocido el costo es cero.
func MaterialCost(a *entity.Activity, unitCosts map[string]decimal.Decimal) decimal.Decimal {
	id := strings.TrimSpace(a.ProductID)
	if id == "" {
		return decimal.Zero
	}
	cost, ok := unitCosts[id]
	if !ok {
		return decimal.Zero
	}
	return cost.Mul(decimal.NewFromFloat(math.Abs(a.Quantity)))
}

// MarginRate margen como porcentaje del ingreso. Con ingreso cero devuelve cero.
func MarginRate(margin, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return margin.Div(revenue).Mul(hundred)
}

// Aggregate calcula ingreso, costo de material, margen y tasa sobre las ventas del rango.
// El costo usa el snapshot de productos recibido (costo actual, no el de la fecha de venta).
func Aggregate(activities []*entity.Activity, products []*entity.Product, start, end time.Time) Totals {
	unitCosts := UnitCosts(products)

	revenue := decimal.Zero
	costs := decimal.Zero
	for _, a := range activities {
		if a == nil || !IsCountedSale(a, start, end) {
			continue
		}
		revenue = revenue.Add(a.Amount)
		costs = costs.Add(MaterialCost(a, unitCosts))
	}

	margin := revenue.Sub(costs)
	return Totals{
		TotalRevenue:    revenue,
		MaterialCosts:   costs,
		GrossMargin:     margin,
		GrossMarginRate: MarginRate(margin, revenue),
	}
}
