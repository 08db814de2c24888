package repositories

import (
	"loja/internal/models"
)

// ProductQuantityUpdate sets a product's stock to Quantity.
type ProductQuantityUpdate struct {
	ID       string
	Quantity int
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	// GetAllByID fetches every product matching the given ids in one batch.
	// Ids with no matching product are silently omitted from the result.
	GetAllByID(ids []string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// UpdateQuantities overwrites the stock of each listed product and
	// returns the updated products.
	UpdateQuantities(updates []ProductQuantityUpdate) ([]models.Product, error)
	Delete(id string) error
}
