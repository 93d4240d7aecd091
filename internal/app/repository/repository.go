package repository

import (
	"fmt"

	"backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.User{},
		&ds.RFQ{},
		&ds.ClusterRequest{},
		&ds.Quote{},
		&ds.QuoteItem{},
		&ds.Order{},
		&ds.Subscription{},
		&ds.HardwareProduct{},
		&ds.HardwareStat{},
		&ds.PricingPlan{},
		&ds.Partner{},
		&ds.GalleryImage{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}
