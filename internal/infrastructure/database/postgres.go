package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/retailworks/pos-billing-api/internal/config"
	"github.com/retailworks/pos-billing-api/internal/domain/entity"
	"github.com/retailworks/pos-billing-api/internal/domain/enum"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Product{},
		&entity.Bill{},
		&entity.BillItem{},
		&entity.ShopSettings{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds an empty database with a starter catalog and the
// default shop profile so the POS is usable out of the box.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var productCount int64
	if err := db.Model(&entity.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount == 0 {
		products := []entity.Product{
			{Name: "Samsung Galaxy S24", HSNCode: "8517", GSTRate: 18, Price: 75000, Category: "Mobile Phone"},
			{Name: "iPhone 15 Pro", HSNCode: "8517", GSTRate: 18, Price: 125000, Category: "Mobile Phone"},
			{Name: "Dell Inspiron Laptop", HSNCode: "8471", GSTRate: 18, Price: 55000, Category: "Laptop"},
			{Name: "HP Pavilion Laptop", HSNCode: "8471", GSTRate: 18, Price: 45000, Category: "Laptop"},
			{Name: "Sony 55\" LED TV", HSNCode: "8528", GSTRate: 18, Price: 65000, Category: "Television"},
			{Name: "LG Refrigerator 190L", HSNCode: "8418", GSTRate: 18, Price: 25000, Category: "Appliance"},
			{Name: "Samsung Washing Machine", HSNCode: "8450", GSTRate: 18, Price: 35000, Category: "Appliance"},
			{Name: "Apple iPad Pro", HSNCode: "8471", GSTRate: 18, Price: 85000, Category: "Tablet"},
			{Name: "JBL Bluetooth Speaker", HSNCode: "8518", GSTRate: 18, Price: 5000, Category: "Audio"},
			{Name: "Canon DSLR Camera", HSNCode: "9006", GSTRate: 18, Price: 45000, Category: "Camera"},
		}
		if err := db.Create(&products).Error; err != nil {
			log.Printf("Warning: failed to seed product catalog: %v", err)
		}
	}

	var settingsCount int64
	if err := db.Model(&entity.ShopSettings{}).Count(&settingsCount).Error; err != nil {
		return err
	}
	if settingsCount == 0 {
		settings := entity.ShopSettings{
			ShopName:       "TechWorld Electronics",
			Address:        "123 Electronics Plaza, Tech City, State - 123456",
			Phone:          "9876543210",
			Email:          "info@techworld.com",
			GSTIN:          "19ABCDE1234F1Z5",
			UPIID:          "techworld@upi",
			ShowUPIOnBill:  true,
			ShowLogoOnBill: true,
			BillFormat:     enum.BillFormatStandard,
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to seed shop settings: %v", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
