package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"badum_backend/internal/config"
	"badum_backend/internal/models"
)

// Connect opens the postgres pool with bounded connections.
func Connect(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate applies the schema. Order matters for foreign-key creation.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.City{},
		&models.Instrument{},
		&models.Genre{},
		&models.User{},
		&models.UserInstrument{},
		&models.Band{},
		&models.BandMember{},
		&models.BandGenre{},
		&models.BandMemberInstrument{},
		&models.MusicianAd{},
		&models.MusicianAdGenre{},
		&models.BandAd{},
		&models.MarketAd{},
		&models.MarketImage{},
		&models.Image{},
	)
}
