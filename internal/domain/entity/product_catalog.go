package entity

import "time"

// ProductType categoría de producto del catálogo.
type ProductType string

// Categorías conocidas. Agregar una nueva exige actualizar validation.IsValidProductType.
const (
	ProductTypeBag       ProductType = "BAG"
	ProductTypePouch     ProductType = "POUCH"
	ProductTypeWallet    ProductType = "WALLET"
	ProductTypeAccessory ProductType = "ACCESSORY"
	ProductTypeOther     ProductType = "OTHER"
)

// ProductTypes lista ordenada de categorías (para mensajes y documentación).
var ProductTypes = []ProductType{
	ProductTypeBag, ProductTypePouch, ProductTypeWallet, ProductTypeAccessory, ProductTypeOther,
}

// ProductModel diseño con nombre dentro de una categoría.
type ProductModel struct {
	ID        string
	Type      ProductType
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductModelPatch actualización parcial de un modelo.
type ProductModelPatch struct {
	Type *ProductType
	Name *string
}

// Apply devuelve una copia del modelo con el parche aplicado.
func (m ProductModel) Apply(patch ProductModelPatch) ProductModel {
	if patch.Type != nil {
		m.Type = *patch.Type
	}
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	return m
}

// ProductColoris variante de color/acabado de un modelo.
type ProductColoris struct {
	ID        string
	ModelID   string
	Coloris   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductColorisPatch actualización parcial de un coloris. El ModelID no se puede cambiar.
type ProductColorisPatch struct {
	Coloris *string
}

// Apply devuelve una copia del coloris con el parche aplicado.
func (c ProductColoris) Apply(patch ProductColorisPatch) ProductColoris {
	if patch.Coloris != nil {
		c.Coloris = *patch.Coloris
	}
	return c
}
