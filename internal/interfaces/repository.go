package interfaces

import "github.com/kassatech/atolWorker/internal/domain/models"

// CashierStore — внешнее хранилище кассиров по устройствам.
// Отсутствие записи — не ошибка: GetCashier возвращает (nil, nil).
type CashierStore interface {
	GetCashier(deviceID string) (*models.Cashier, error)
	PutCashier(deviceID string, cashier models.Cashier) error
}
