package repositories_test

import (
	"fmt"
	"testing"

	"loja/internal/database"
	"loja/internal/models"
	"loja/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a fresh in-memory SQLite database with the full schema. The
// database is named after the test so GORM's connection pool shares one
// store per test without leaking state between tests.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db))
	return db
}

func TestGORMProductRepository_GetAllByID(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	products := []models.Product{
		{ID: "P1", Name: "Product One", Price: 10.0, Quantity: 5},
		{ID: "P2", Name: "Product Two", Price: 20.0, Quantity: 3},
	}
	for i := range products {
		assert.NoError(t, repo.Create(&products[i]))
	}

	// Missing ids are omitted, not errors
	fetched, err := repo.GetAllByID([]string{"P1", "P2", "ghost"})
	assert.NoError(t, err)
	assert.Len(t, fetched, 2)

	fetched, err = repo.GetAllByID([]string{"ghost"})
	assert.NoError(t, err)
	assert.Empty(t, fetched)

	fetched, err = repo.GetAllByID(nil)
	assert.NoError(t, err)
	assert.Empty(t, fetched)
}

func TestGORMProductRepository_UpdateQuantities(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	product := models.Product{ID: "P1", Name: "Product One", Price: 10.0, Quantity: 5}
	assert.NoError(t, repo.Create(&product))

	updated, err := repo.UpdateQuantities([]repositories.ProductQuantityUpdate{{ID: "P1", Quantity: 2}})
	assert.NoError(t, err)
	assert.Len(t, updated, 1)
	assert.Equal(t, 2, updated[0].Quantity)

	// The overwrite is visible on a fresh read
	reread, err := repo.GetByID("P1")
	assert.NoError(t, err)
	assert.Equal(t, 2, reread.Quantity)

	// Updating an unknown product fails with ErrNotFound
	_, err = repo.UpdateQuantities([]repositories.ProductQuantityUpdate{{ID: "ghost", Quantity: 1}})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMOrderRepository_CreateAndGet(t *testing.T) {
	db := setupDB(t)
	customerRepo := repositories.NewGORMCustomerRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	customer := models.Customer{Name: "Test Customer", Email: "c@example.com", Password: "hash"}
	assert.NoError(t, customerRepo.Create(&customer))

	order := models.Order{
		CustomerID: customer.ID,
		Customer:   customer,
		Items: []models.OrderItem{
			{ProductID: "P1", Price: 10.0, Quantity: 3},
		},
	}
	assert.NoError(t, orderRepo.Create(&order))
	assert.NotEmpty(t, order.ID)

	fetched, err := orderRepo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, customer.ID, fetched.CustomerID)
	assert.Len(t, fetched.Items, 1)
	assert.Equal(t, "P1", fetched.Items[0].ProductID)
	assert.Equal(t, 10.0, fetched.Items[0].Price)
	// Line items are linked back to the order through the nullable order_id
	assert.NotNil(t, fetched.Items[0].OrderID)
	assert.Equal(t, order.ID, *fetched.Items[0].OrderID)

	_, err = orderRepo.GetByID("ghost")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMCustomerRepository_GetByID(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMCustomerRepository(db)

	customer := models.Customer{Name: "Test Customer", Email: "c@example.com", Password: "hash"}
	assert.NoError(t, repo.Create(&customer))

	fetched, err := repo.GetByID(customer.ID)
	assert.NoError(t, err)
	assert.Equal(t, customer.Email, fetched.Email)

	_, err = repo.GetByID("ghost")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	fetched, err = repo.GetByEmail("c@example.com")
	assert.NoError(t, err)
	assert.Equal(t, customer.ID, fetched.ID)
}
