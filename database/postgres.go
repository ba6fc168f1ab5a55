package database

import (
	"time"

	"khadamat/config"
	"khadamat/utils"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// PostgresDB is the global gorm handle, set when DATABASE_DRIVER=postgres.
var PostgresDB *gorm.DB

// InitPostgres opens the hosted Postgres tables through lib/pq.
func InitPostgres() {
	logger := utils.GetLogger()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        config.AppConfig.PostgresDSN,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Fatal("failed to open Postgres", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get Postgres pool", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("failed to ping Postgres", zap.Error(err))
	}

	PostgresDB = db
	logger.Info("Connected to Postgres successfully!")
}
