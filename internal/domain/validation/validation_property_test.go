package validation_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/validation"
)

func genSource() gopter.Gen {
	return gen.OneConstOf(
		entity.StockMovementSourceCreation,
		entity.StockMovementSourceSale,
		entity.StockMovementSourceInventoryAdjustment,
	)
}

func genQuantity() gopter.Gen {
	// Incluye el cero de forma explícita: es el borde más importante.
	return gen.OneGenOf(gen.Float64Range(-1e6, 1e6), gen.Const(0.0))
}

func genAmount() gopter.Gen {
	return gen.Float64Range(-1000, 1000).Map(func(f float64) decimal.Decimal {
		return decimal.NewFromFloat(f).Round(2)
	})
}

// Propiedad: la regla de signo por origen es exactamente la tabla documentada.
func TestProperty_QuantityForSource(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("isValidQuantityForSource respeta el signo por origen", prop.ForAll(
		func(q float64, source entity.StockMovementSource) bool {
			want := (source == entity.StockMovementSourceCreation && q > 0) ||
				(source == entity.StockMovementSourceSale && q < 0) ||
				(source == entity.StockMovementSourceInventoryAdjustment && q != 0)
			return validation.IsValidQuantityForSource(q, source) == want
		},
		genQuantity(), genSource(),
	))

	properties.TestingRun(t)
}

// Propiedad: isValidProduct ⇔ costo > 0 ∧ precio > 0 ∧ stock ≥ 0 ∧ nombre completo.
func TestProperty_IsValidProduct(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("isValidProduct coincide con la conjunción de invariantes", prop.ForAll(
		func(cost, price decimal.Decimal, stock float64, name, coloris string, legacy bool) bool {
			var naming entity.ProductNaming
			if legacy {
				naming = entity.LegacyNaming{Name: name, Type: "BAG", Coloris: coloris}
			} else {
				naming = entity.ModelNaming{ModelID: name, ColorisID: coloris}
			}
			p := entity.Product{Naming: naming, UnitCost: cost, SalePrice: price, Stock: stock}

			namingOK := name != "" && coloris != ""
			want := cost.IsPositive() && price.IsPositive() && stock >= 0 && namingOK
			return validation.IsValidProduct(p) == want
		},
		genAmount(), genAmount(),
		gen.Float64Range(-50, 50),
		gen.OneGenOf(gen.AlphaString(), gen.Const("")),
		gen.OneGenOf(gen.AlphaString(), gen.Const("")),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// Propiedad: una SALE o STOCK_CORRECTION sin producto nunca es válida.
func TestProperty_ActivityRequiresProduct(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("SALE/STOCK_CORRECTION sin productId es inválida", prop.ForAll(
		func(typ entity.ActivityType, q float64, amount decimal.Decimal) bool {
			a := entity.Activity{Type: typ, Quantity: q, Amount: amount}
			return !validation.IsValidActivity(a)
		},
		gen.OneConstOf(entity.ActivityTypeSale, entity.ActivityTypeStockCorrection),
		genQuantity(), genAmount(),
	))

	properties.Property("CREATION/OTHER no exigen productId", prop.ForAll(
		func(typ entity.ActivityType, q float64) bool {
			return validation.IsValidActivity(entity.Activity{Type: typ, Quantity: q})
		},
		gen.OneConstOf(entity.ActivityTypeCreation, entity.ActivityTypeOther),
		genQuantity(),
	))

	properties.TestingRun(t)
}

// Propiedad: los valores de otro enum o en minúsculas nunca son miembros.
func TestProperty_EnumMembershipIsStrict(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("strings alfabéticos en minúsculas no son tipos de actividad", prop.ForAll(
		func(s string) bool {
			return !validation.IsValidActivityType(s) && !validation.IsValidStockMovementSource(s)
		},
		gen.SliceOf(gen.AlphaLowerChar()).Map(func(r []rune) string { return string(r) }),
	))

	properties.TestingRun(t)
}
