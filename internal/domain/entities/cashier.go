package entities

import "time"

// CachedCashier — кассир, закреплённый за устройством внешним клиентом.
// Вторая ступень приоритета резолвера кассира.
type CachedCashier struct {
	DeviceID  string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"size:255"`
	INN       string `gorm:"size:12"`
	UpdatedAt time.Time
}
