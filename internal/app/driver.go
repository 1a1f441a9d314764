package app

import (
	atolWorker "github.com/kassatech/atolWorker"
	"github.com/kassatech/atolWorker/internal/driver"
)

// newFptr создаёт сессию драйвера для устройства. Точка подмены для
// боевого cgo-связывания libfptr10.
var newFptr = func(cfg atolWorker.DeviceConfig) driver.Fptr {
	return driver.NewEmulator()
}

func driverFor(cfg atolWorker.DeviceConfig) *driver.AtolDriver {
	return driver.New(newFptr(cfg), cfg)
}
