package interfaces

import "github.com/kassatech/atolWorker/internal/domain/models"

// Processor исполняет одну команду на своём устройстве и всегда
// возвращает ровно один Response, в том числе при ошибке.
type Processor interface {
	DeviceID() string
	Execute(cmd models.Command) models.Response
}

// CashierResolver определяет действующего кассира для операции.
type CashierResolver interface {
	Resolve(deviceID string, kwargs models.Kwargs) models.Cashier
}
