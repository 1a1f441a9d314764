package repository

import (
	"fmt"

	atolWorker "github.com/kassatech/atolWorker"
	"github.com/kassatech/atolWorker/internal/domain/entities"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresRepository подключается к базе кэша кассиров, при необходимости
// создавая её. База — вспомогательный коллаборатор: недоступность СУБД не
// должна мешать обслуживанию устройств, поэтому при отказе возвращается nil,
// а не паника.
func NewPostgresRepository(cfg *atolWorker.Config, log *zap.SugaredLogger) *gorm.DB {
	dsnRoot := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword)

	rootDB, err := gorm.Open(postgres.Open(dsnRoot), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Warnw("⚠️ БД недоступна, кэш кассиров отключен", "error", err)
		return nil
	}

	var exists bool
	checkQuery := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = '%s')", cfg.DBName)
	if err := rootDB.Raw(checkQuery).Scan(&exists).Error; err != nil {
		log.Warnw("⚠️ не удалось проверить существование БД, кэш кассиров отключен", "error", err)
		return nil
	}

	if !exists {
		log.Infow("создание базы данных", "name", cfg.DBName)
		if err := rootDB.Exec(fmt.Sprintf("CREATE DATABASE %s", cfg.DBName)).Error; err != nil {
			log.Warnw("⚠️ не удалось создать БД, кэш кассиров отключен", "error", err)
			return nil
		}
	}

	sqlDB, _ := rootDB.DB()
	sqlDB.Close()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Warnw("⚠️ не удалось подключиться к БД приложения, кэш кассиров отключен", "error", err)
		return nil
	}

	if err := db.AutoMigrate(&entities.CachedCashier{}); err != nil {
		log.Warnw("⚠️ миграция не прошла, кэш кассиров отключен", "error", err)
		return nil
	}

	return db
}
