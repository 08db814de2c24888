package database_test

import (
	"testing"

	"loja/internal/database"
	"loja/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migrate_test?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	assert.NoError(t, database.Migrate(db))

	m := db.Migrator()
	assert.True(t, m.HasTable(&models.Customer{}))
	assert.True(t, m.HasTable(&models.Product{}))
	assert.True(t, m.HasTable(&models.Order{}))
	assert.True(t, m.HasTable(&models.OrderItem{}))
	assert.True(t, m.HasColumn(&models.OrderItem{}, "order_id"))

	// Each named migration is recorded exactly once
	var count int64
	assert.NoError(t, db.Model(&database.SchemaMigration{}).
		Where("name = ?", "add_order_id_to_order_items").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Running again is a no-op
	assert.NoError(t, database.Migrate(db))
	assert.NoError(t, db.Model(&database.SchemaMigration{}).
		Where("name = ?", "add_order_id_to_order_items").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
