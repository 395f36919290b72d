package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"franchise-service/models"
)

var DB *gorm.DB

// ConnectPostgres opens a GORM connection with retries and runs migrations
// for the given models.
func ConnectPostgres(dsn string, logger *zap.Logger, autoMigrateModels ...interface{}) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, poolErr := db.DB()
			if poolErr == nil {
				sqlDB.SetMaxOpenConns(25)
				sqlDB.SetMaxIdleConns(5)
				sqlDB.SetConnMaxLifetime(5 * time.Minute)
			}

			logger.Info("Connected to PostgreSQL successfully")

			if len(autoMigrateModels) > 0 {
				if err := db.AutoMigrate(autoMigrateModels...); err != nil {
					return nil, fmt.Errorf("AutoMigrate failed: %w", err)
				}
			}

			// Invoice numbers come from a dedicated sequence, not a table PK.
			if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS invoice_number_seq START 1000").Error; err != nil {
				logger.Warn("Failed to ensure invoice number sequence", zap.Error(err))
			}

			return db, nil
		}

		logger.Warn("DB connection failed, retrying",
			zap.Int("attempt", i+1),
			zap.Error(err),
		)
		time.Sleep(time.Duration(i+1) * 2 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to PostgreSQL after retries: %w", err)
}

// Connect wires the package-level handle with all service models migrated.
func Connect(dsn string, logger *zap.Logger) error {
	var err error
	DB, err = ConnectPostgres(dsn, logger,
		&models.FranchiseLocation{},
		&models.Product{},
		&models.InventoryRecord{},
		&models.InventoryMovement{},
		&models.Order{},
		&models.OrderItem{},
		&models.Invoice{},
		&models.Shipment{},
		&models.Notification{},
	)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", zap.Error(err))
		return err
	}
	return nil
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
