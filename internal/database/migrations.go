package database

import (
	"fmt"
	"log"
	"time"

	"loja/internal/models"

	"gorm.io/gorm"
)

// SchemaMigration records an applied migration so each one runs once.
type SchemaMigration struct {
	Name      string `gorm:"primaryKey;type:varchar(255)"`
	AppliedAt time.Time
}

type migration struct {
	name string
	run  func(db *gorm.DB) error
}

// Migrations run in order and are recorded in schema_migrations. Each run
// function must be safe to call against a schema that already satisfies it.
var migrations = []migration{
	{name: "add_order_id_to_order_items", run: addOrderIDToOrderItems},
}

// Migrate brings the schema up to date: base tables via AutoMigrate, then
// any named migrations not yet recorded.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&SchemaMigration{},
	); err != nil {
		return fmt.Errorf("failed to auto-migrate base tables: %w", err)
	}

	for _, m := range migrations {
		var count int64
		if err := db.Model(&SchemaMigration{}).Where("name = ?", m.name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration %s: %w", m.name, err)
		}
		if count > 0 {
			continue
		}
		log.Printf("Applying migration %s", m.name)
		if err := m.run(db); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}
		record := SchemaMigration{Name: m.name, AppliedAt: time.Now()}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record migration %s: %w", m.name, err)
		}
	}
	return nil
}

// addOrderIDToOrderItems adds the nullable order_id column on order_items
// and its foreign key to orders with ON DELETE SET NULL. AutoMigrate already
// creates both on a fresh database; this covers databases whose order_items
// table predates the column.
func addOrderIDToOrderItems(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasColumn(&models.OrderItem{}, "order_id") {
		if err := m.AddColumn(&models.OrderItem{}, "OrderID"); err != nil {
			return fmt.Errorf("failed to add order_id column: %w", err)
		}
	}
	// SQLite cannot add a foreign key to an existing table; the constraint
	// only matters on postgres.
	if db.Dialector.Name() == "postgres" && !m.HasConstraint(&models.OrderItem{}, "fk_order_items_order") {
		err := db.Exec(
			"ALTER TABLE order_items ADD CONSTRAINT fk_order_items_order " +
				"FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE SET NULL",
		).Error
		if err != nil {
			return fmt.Errorf("failed to add order_items foreign key: %w", err)
		}
	}
	return nil
}
