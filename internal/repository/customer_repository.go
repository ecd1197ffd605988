package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"farmchoice-admin/internal/models"
)

type CustomerRepository struct {
	collection *mongo.Collection
}

func NewCustomerRepository(collection *mongo.Collection) *CustomerRepository {
	return &CustomerRepository{
		collection: collection,
	}
}

// FindAll retorna todos los documentos de clientes con sus pedidos
func (r *CustomerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	customers := make([]models.Customer, 0)
	if err = cursor.All(ctx, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

// FindByID obtiene un cliente por ID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var customer models.Customer
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &customer, nil
}

// UpdateOrderStatus actualiza el estado de UN pedido dentro del arreglo,
// direccionado por su id con un array filter. La escritura es atómica a
// nivel de documento, así que dos operadores editando pedidos distintos
// del mismo cliente no se pisan entre sí.
func (r *CustomerRepository) UpdateOrderStatus(ctx context.Context, customerID, orderID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return ErrInvalidID
	}

	filter := bson.M{"_id": objID, "orders.id": orderID}
	update := bson.M{"$set": bson.M{"orders.$[o].status": status}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"o.id": orderID}},
	})

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return err
	}
	// MatchedCount 0 = no existe el cliente o el pedido.
	// ModifiedCount 0 con match = el estado ya era ese; no es error.
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
