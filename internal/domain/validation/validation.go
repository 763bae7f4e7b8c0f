// Package validation contiene los predicados puros que deciden si un Product,
// ProductModel, ProductColoris, Activity o StockMovement es internamente consistente.
//
// Ningún predicado hace I/O ni devuelve error: devuelven bool y es el caso de uso
// quien traduce un false a domain.ValidationError. Los textos se comparan después
// de strings.TrimSpace, así que los espacios alrededor se toleran pero un valor
// solo con espacios se rechaza. Las cantidades se asumen finitas salvo que se indique.
package validation

import (
	"strings"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// IsValidProduct: UnitCost > 0, SalePrice > 0, Stock >= 0 y exactamente un esquema
// de nombre con todos sus campos no vacíos.
func IsValidProduct(p entity.Product) bool {
	if !p.UnitCost.IsPositive() || !p.SalePrice.IsPositive() {
		return false
	}
	if !(p.Stock >= 0) {
		return false
	}
	return IsValidProductNaming(p.Naming)
}

// IsValidProductNaming verifica la unión de nombre del producto.
func IsValidProductNaming(n entity.ProductNaming) bool {
	switch v := n.(type) {
	case entity.LegacyNaming:
		return notBlank(v.Name) && notBlank(v.Type) && notBlank(v.Coloris)
	case entity.ModelNaming:
		return notBlank(v.ModelID) && notBlank(v.ColorisID)
	default:
		return false
	}
}

// IsValidProductModel: id y nombre no vacíos, tipo conocido.
func IsValidProductModel(m entity.ProductModel) bool {
	return notBlank(m.ID) && notBlank(m.Name) && IsValidProductType(string(m.Type))
}

// IsValidProductModelForType: modelo válido y de la categoría indicada.
func IsValidProductModelForType(m entity.ProductModel, t entity.ProductType) bool {
	return IsValidProductModel(m) && m.Type == t
}

// IsValidProductColoris: id, modelId y coloris no vacíos.
func IsValidProductColoris(c entity.ProductColoris) bool {
	return notBlank(c.ID) && notBlank(c.ModelID) && notBlank(c.Coloris)
}

// IsValidProductColorisForModel: coloris válido y perteneciente al modelo indicado.
func IsValidProductColorisForModel(c entity.ProductColoris, modelID string) bool {
	return IsValidProductColoris(c) && c.ModelID == modelID
}

// IsValidActivity exige ProductID para SALE y STOCK_CORRECTION.
// No impone signo a Quantity ni a Amount (ver IsNegativeForSale).
func IsValidActivity(a entity.Activity) bool {
	if RequiresProduct(a.Type) {
		return notBlank(a.ProductID)
	}
	return true
}

// RequiresProduct indica si el tipo de actividad exige un producto asociado.
func RequiresProduct(t entity.ActivityType) bool {
	switch t {
	case entity.ActivityTypeSale, entity.ActivityTypeStockCorrection:
		return true
	case entity.ActivityTypeCreation, entity.ActivityTypeOther:
		return false
	default:
		return false
	}
}

// IsNegativeForSale diagnóstico: true si es una venta con cantidad negativa.
// No es una regla de rechazo.
func IsNegativeForSale(a entity.Activity) bool {
	return a.Type == entity.ActivityTypeSale && a.Quantity < 0
}

// IsValidQuantityForSource aplica la regla de signo por origen.
// Cero nunca es válido.
func IsValidQuantityForSource(q float64, source entity.StockMovementSource) bool {
	switch source {
	case entity.StockMovementSourceCreation:
		return q > 0
	case entity.StockMovementSourceSale:
		return q < 0
	case entity.StockMovementSourceInventoryAdjustment:
		return q != 0
	default:
		return false
	}
}

// IsValidStockMovement: ProductID no vacío y cantidad coherente con el origen.
func IsValidStockMovement(m entity.StockMovement) bool {
	return notBlank(m.ProductID) && IsValidQuantityForSource(m.Quantity, m.Source)
}

// IsValidActivityType pertenencia estricta (sensible a mayúsculas).
func IsValidActivityType(s string) bool {
	switch entity.ActivityType(s) {
	case entity.ActivityTypeCreation, entity.ActivityTypeSale,
		entity.ActivityTypeStockCorrection, entity.ActivityTypeOther:
		return true
	default:
		return false
	}
}

// IsValidStockMovementSource pertenencia estricta (sensible a mayúsculas).
func IsValidStockMovementSource(s string) bool {
	switch entity.StockMovementSource(s) {
	case entity.StockMovementSourceCreation, entity.StockMovementSourceSale,
		entity.StockMovementSourceInventoryAdjustment:
		return true
	default:
		return false
	}
}

// IsValidProductType pertenencia estricta (sensible a mayúsculas).
func IsValidProductType(s string) bool {
	switch entity.ProductType(s) {
	case entity.ProductTypeBag, entity.ProductTypePouch, entity.ProductTypeWallet,
		entity.ProductTypeAccessory, entity.ProductTypeOther:
		return true
	default:
		return false
	}
}

// IsValidReportPeriod pertenencia estricta (sensible a mayúsculas).
func IsValidReportPeriod(s string) bool {
	switch entity.ReportPeriod(s) {
	case entity.ReportPeriodDay, entity.ReportPeriodWeek, entity.ReportPeriodMonth,
		entity.ReportPeriodYear, entity.ReportPeriodCustom:
		return true
	default:
		return false
	}
}

func notBlank(s string) bool { return strings.TrimSpace(s) != "" }
