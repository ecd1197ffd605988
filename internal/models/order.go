package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados posibles de un pedido. No hay progresión forzada:
// el operador puede pasar de cualquier estado a cualquier otro.
const (
	StatusProcessing = "Processing your order"
	StatusPacked     = "Packed"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
)

// OrderStatuses lista los estados aceptados por la API
var OrderStatuses = []string{StatusProcessing, StatusPacked, StatusShipped, StatusDelivered}

// ValidOrderStatus verifica que el estado pertenezca al enum
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// OrderVariant es una copia congelada de la variante al momento de la compra
type OrderVariant struct {
	Title LocalizedText `json:"title" bson:"title"`
	Price float64       `json:"price" bson:"price"`
}

// OrderItem es una línea del pedido
type OrderItem struct {
	ProductID string        `json:"productId" bson:"productId"`
	Variant   *OrderVariant `json:"variant,omitempty" bson:"variant,omitempty"`
	Quantity  int64         `json:"quantity,omitempty" bson:"quantity,omitempty"`
}

// Order representa un pedido dentro del documento del cliente
type Order struct {
	ID            string      `json:"id" bson:"id"`
	CreatedAt     time.Time   `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	TotalAmount   float64     `json:"totalAmount,omitempty" bson:"totalAmount,omitempty"`
	Status        string      `json:"status,omitempty" bson:"status,omitempty"`
	Items         []OrderItem `json:"items,omitempty" bson:"items,omitempty"`
}

// Profile contiene los datos de contacto del cliente
type Profile struct {
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	Pincode string `json:"pincode,omitempty" bson:"pincode,omitempty"`
}

// Customer es un documento de la colección userProfilesAndOrderStatus:
// perfil del cliente más su arreglo de pedidos embebido
type Customer struct {
	ID      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Profile []Profile          `json:"profile,omitempty" bson:"profile,omitempty"`
	Orders  []Order            `json:"orders,omitempty" bson:"orders,omitempty"`
}

// LastOrderAt retorna la fecha del pedido más reciente (cero si no hay pedidos)
func (c Customer) LastOrderAt() time.Time {
	var latest time.Time
	for _, o := range c.Orders {
		if o.CreatedAt.After(latest) {
			latest = o.CreatedAt
		}
	}
	return latest
}
