package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"

	"subpay/internal/models/db_models"
)

func InitPostgresql(dsn string) *gorm.DB {

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.AutoMigrate(
		&db_models.Plan{},
		&db_models.User{},
		&db_models.Payment{},
	); err != nil {
		log.Fatalf("AutoMigrate error: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed")
	}
}
