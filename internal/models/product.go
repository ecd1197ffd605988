package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalizedText contiene las traducciones de un texto.
// mr = idioma primario, en = secundario, hi = terciario.
// Un valor ausente se trata como cadena vacía.
type LocalizedText struct {
	Mr string `json:"mr" bson:"mr"`
	En string `json:"en" bson:"en"`
	Hi string `json:"hi" bson:"hi"`
}

// Variant representa una presentación del producto (peso, envase, etc.)
type Variant struct {
	Title             LocalizedText `json:"title" bson:"title"`
	Price             float64       `json:"price" bson:"price" binding:"gte=0"`
	CompareAtPrice    float64       `json:"compareAtPrice,omitempty" bson:"compareAtPrice,omitempty" binding:"gte=0"`
	InventoryQuantity int64         `json:"inventoryQuantity" bson:"inventoryQuantity" binding:"gte=0"`
	ShowVariant       *bool         `json:"showVariant,omitempty" bson:"showVariant,omitempty"`
}

// Visible indica si la variante debe mostrarse (nil = visible)
func (v Variant) Visible() bool {
	return v.ShowVariant == nil || *v.ShowVariant
}

// Product representa un producto del catálogo
type Product struct {
	ID                  primitive.ObjectID `json:"productId,omitempty" bson:"_id,omitempty"`
	Position            int64              `json:"position" bson:"position"`
	ShowProduct         bool               `json:"showProduct" bson:"showProduct"`
	IsOutOfStock        bool               `json:"isOutOfStock" bson:"isOutOfStock"`
	ProductName         LocalizedText      `json:"productName" bson:"productName"`
	ProductDescription  LocalizedText      `json:"productDescription" bson:"productDescription"`
	ProductType         LocalizedText      `json:"productType" bson:"productType"`
	ChemicalComposition []string           `json:"chemicalComposition,omitempty" bson:"chemicalComposition,omitempty"`
	Vendor              string             `json:"vendor" bson:"vendor"`
	ProductImages       []string           `json:"productImages,omitempty" bson:"productImages,omitempty"`
	MapVariant          []Variant          `json:"mapVariant,omitempty" bson:"mapVariant,omitempty" binding:"dive"`
	CreatedAt           time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt           time.Time          `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
