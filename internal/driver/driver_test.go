package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	atolWorker "github.com/kassatech/atolWorker"
	"github.com/kassatech/atolWorker/internal/driver"
)

func deviceConfig(id string) atolWorker.DeviceConfig {
	return atolWorker.DeviceConfig{
		ID:             id,
		ConnectionType: "tcp",
		Host:           "localhost",
		Port:           5555,
	}
}

func Test_Check_NegativeResultBecomesDeviceError(t *testing.T) {
	emu := driver.NewEmulator()
	drv := driver.New(emu, deviceConfig("kkt-1"))

	require.NoError(t, drv.Check(emu.Open(), "открытия соединения"))

	emu.FailNext("open", driver.LIBFPTR_ERROR_NO_CONNECTION)
	err := drv.Check(emu.Open(), "открытия соединения")
	require.Error(t, err)

	var devErr *driver.Error
	require.ErrorAs(t, err, &devErr)
	assert.Equal(t, driver.LIBFPTR_ERROR_NO_CONNECTION, devErr.Code)
	assert.Contains(t, err.Error(), "открытия соединения")
}

func Test_Configure_AppliesConnectionSettings(t *testing.T) {
	emu := driver.NewEmulator()
	drv := driver.New(emu, atolWorker.DeviceConfig{
		ID:             "kkt-serial",
		ConnectionType: "serial",
		SerialPort:     "/dev/ttyS0",
		BaudRate:       115200,
	})

	require.NoError(t, drv.Configure())

	emu.FailNext("setSettings", driver.LIBFPTR_ERROR_INVALID_SETTINGS)
	require.Error(t, drv.Configure())
}
