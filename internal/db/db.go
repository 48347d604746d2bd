package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.LogLevel == "debug" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         gormLogger,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Fatal("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Collaborator{},
		&models.Appointment{},
		&models.ScheduledService{},
		&models.Commission{},
		&models.AuditLog{},
	); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}

	if err := backfillScheduledServiceStatus(db); err != nil {
		logrus.WithError(err).Error("failed to backfill scheduled_services status")
	}

	return db
}

// linhas antigas sem status explícito
func backfillScheduledServiceStatus(db *gorm.DB) error {
	res := db.Exec(`
        UPDATE scheduled_services
        SET status = 'pending'
        WHERE status IS NULL OR status = ''
    `)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected > 0 {
		logrus.WithField("rows", res.RowsAffected).Info("scheduled_services status backfilled")
	}
	return nil
}
