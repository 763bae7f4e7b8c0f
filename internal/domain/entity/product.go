package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario del taller.
// UnitCost es el costo de material por unidad; Stock se mantiene vía movimientos de stock.
type Product struct {
	ID        string
	Naming    ProductNaming
	UnitCost  decimal.Decimal // costo unitario de material (> 0)
	SalePrice decimal.Decimal // precio de venta (> 0)
	Stock     float64         // existencias disponibles (>= 0)
	Weight    *float64        // opcional, en gramos
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductNaming identifica cómo se nombra un producto. Unión cerrada:
// LegacyNaming (campos libres, en migración) o ModelNaming (referencias al catálogo).
// Cuando termine la migración basta con eliminar LegacyNaming.
type ProductNaming interface {
	isProductNaming()
}

// LegacyNaming nombre libre heredado: nombre, tipo y coloris como texto.
type LegacyNaming struct {
	Name    string
	Type    string
	Coloris string
}

// ModelNaming referencias normalizadas a ProductModel y ProductColoris.
type ModelNaming struct {
	ModelID   string
	ColorisID string
}

func (LegacyNaming) isProductNaming() {}
func (ModelNaming) isProductNaming()  {}

// ResolveNaming construye la unión a partir de los cinco campos planos (JSON o fila de BD).
// Un esquema está presente si alguno de sus campos no está vacío tras TrimSpace.
// Devuelve nil si no hay ninguno o si vienen ambos.
func ResolveNaming(name, productType, coloris, modelID, colorisID string) ProductNaming {
	legacy := notBlank(name) || notBlank(productType) || notBlank(coloris)
	normalized := notBlank(modelID) || notBlank(colorisID)
	switch {
	case legacy && !normalized:
		return LegacyNaming{Name: name, Type: productType, Coloris: coloris}
	case normalized && !legacy:
		return ModelNaming{ModelID: modelID, ColorisID: colorisID}
	default:
		return nil
	}
}

// NamingFields aplana la unión a los cinco campos (para persistencia y respuestas).
func NamingFields(n ProductNaming) (name, productType, coloris, modelID, colorisID string) {
	switch v := n.(type) {
	case LegacyNaming:
		return v.Name, v.Type, v.Coloris, "", ""
	case ModelNaming:
		return "", "", "", v.ModelID, v.ColorisID
	}
	return "", "", "", "", ""
}

// ProductPatch actualización parcial de un producto: solo se aplican los campos no nil.
// Naming reemplaza la unión completa.
type ProductPatch struct {
	Naming    ProductNaming
	UnitCost  *decimal.Decimal
	SalePrice *decimal.Decimal
	Stock     *float64
	Weight    *float64
}

// Apply devuelve una copia del producto con el parche aplicado.
func (p Product) Apply(patch ProductPatch) Product {
	if patch.Naming != nil {
		p.Naming = patch.Naming
	}
	if patch.UnitCost != nil {
		p.UnitCost = *patch.UnitCost
	}
	if patch.SalePrice != nil {
		p.SalePrice = *patch.SalePrice
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Weight != nil {
		w := *patch.Weight
		p.Weight = &w
	}
	return p
}

func notBlank(s string) bool { return strings.TrimSpace(s) != "" }
