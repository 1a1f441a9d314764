package driver

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	atolWorker "github.com/kassatech/atolWorker"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AtolDriver владеет сессией драйвера одной ККТ и применяет к ней
// настройки подключения из конфигурации.
type AtolDriver struct {
	fptr Fptr
	cfg  atolWorker.DeviceConfig
}

func New(fptr Fptr, cfg atolWorker.DeviceConfig) *AtolDriver {
	fptr.ChangeLabel(cfg.ID)
	return &AtolDriver{fptr: fptr, cfg: cfg}
}

// Fptr отдаёт сессию драйвера для прямых вызовов операций.
func (d *AtolDriver) Fptr() Fptr {
	return d.fptr
}

// Configure передаёт драйверу настройки подключения одним JSON-блоком,
// как это делает setSettings в libfptr10.
func (d *AtolDriver) Configure() error {
	settings := map[string]any{
		"ConnectionType": d.cfg.ConnectionType,
	}
	switch d.cfg.ConnectionType {
	case "tcp":
		settings["IPAddress"] = d.cfg.Host
		settings["IPPort"] = d.cfg.Port
	case "serial":
		settings["ComFile"] = d.cfg.SerialPort
		settings["BaudRate"] = d.cfg.BaudRate
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return d.Check(d.fptr.SetSettings(string(raw)), "применения настроек подключения")
}

// ApplySettings передаёт драйверу произвольный блок настроек
// (override из kwargs команды connection_open).
func (d *AtolDriver) ApplySettings(settings map[string]any) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return d.Check(d.fptr.SetSettings(string(raw)), "применения настроек подключения")
}

// Check сверяет код результата операции драйвера. Отрицательный код
// превращается в структурированную ошибку устройства.
func (d *AtolDriver) Check(result int, operation string) error {
	if result >= 0 {
		return nil
	}
	devErr := Translate(d.fptr.ErrorCode(), d.fptr.ErrorDescription())
	return fmt.Errorf("ошибка %s: %w", operation, devErr)
}
