package repo

import (
	"stocktake/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает соединение с Postgres и прогоняет миграции моделей.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.Inventory{},
		&model.InventoryEntry{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
