package catalog

import (
	"context"

	"farmchoice-admin/internal/cache"
	"farmchoice-admin/internal/models"
)

const cacheKey = "catalog:products"

// ProductSource es la fuente de datos del catálogo (el repositorio en producción)
type ProductSource interface {
	FindAll(ctx context.Context) ([]models.Product, error)
}

// Store mantiene la copia en memoria del catálogo durante una sesión.
// Se construye y se pasa explícitamente; la base de documentos
// sigue siendo la dueña durable de los datos.
type Store struct {
	source ProductSource
	cache  *cache.Cache
}

func NewStore(source ProductSource, c *cache.Cache) *Store {
	return &Store{
		source: source,
		cache:  c,
	}
}

// Load retorna el catálogo completo, desde caché si está vigente.
// Si la carga falla retorna el error tal cual; el llamador decide
// cómo mostrarlo (la UI ofrece reintento manual).
func (s *Store) Load(ctx context.Context) ([]models.Product, error) {
	if cached, found := s.cache.GetValue(cacheKey); found {
		if products, ok := cached.([]models.Product); ok {
			return products, nil
		}
	}

	products, err := s.source.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, products)
	return products, nil
}

// Invalidate descarta la copia en caché; se llama tras crear,
// editar o borrar un producto
func (s *Store) Invalidate() {
	s.cache.Delete(cacheKey)
}
