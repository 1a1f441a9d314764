package repository

import (
	"errors"
	"time"

	"github.com/kassatech/atolWorker/internal/domain/entities"
	"github.com/kassatech/atolWorker/internal/domain/models"
	"github.com/kassatech/atolWorker/internal/interfaces"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cashierRepository struct {
	db *gorm.DB
}

// NewCashierRepository оборачивает соединение с БД в хранилище кассиров.
// При недоступной БД (db == nil) хранилище отсутствует.
func NewCashierRepository(db *gorm.DB) interfaces.CashierStore {
	if db == nil {
		return nil
	}
	return &cashierRepository{db: db}
}

// GetCashier возвращает (nil, nil), если для устройства кассир не закэширован.
func (r *cashierRepository) GetCashier(deviceID string) (*models.Cashier, error) {
	var row entities.CachedCashier
	err := r.db.First(&row, "device_id = ?", deviceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &models.Cashier{Name: row.Name, INN: row.INN}, nil
}

func (r *cashierRepository) PutCashier(deviceID string, cashier models.Cashier) error {
	// Upsert: создать, если нет, иначе обновить поля
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "inn", "updated_at"}),
	}).Create(&entities.CachedCashier{
		DeviceID:  deviceID,
		Name:      cashier.Name,
		INN:       cashier.INN,
		UpdatedAt: time.Now(),
	}).Error
}
