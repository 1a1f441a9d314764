package usecases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	atolWorker "github.com/kassatech/atolWorker"
	"github.com/kassatech/atolWorker/internal/domain/models"
	"github.com/kassatech/atolWorker/internal/driver"
	"github.com/kassatech/atolWorker/internal/usecases"
)

func newTestProcessor(emu *driver.Emulator) *usecases.CommandProcessor {
	log := zap.NewNop().Sugar()
	cfg := atolWorker.DeviceConfig{ID: "kkt-1", ConnectionType: "tcp", Host: "localhost", Port: 5555}
	drv := driver.New(emu, cfg)
	resolver := usecases.NewCashierResolver(testConfig(), nil, log)
	return usecases.NewCommandProcessor("kkt-1", drv, resolver, log)
}

func command(op models.Op, kwargs models.Kwargs) models.Command {
	return models.Command{
		CommandID: "cmd-" + string(op),
		DeviceID:  "kkt-1",
		Command:   op,
		Kwargs:    kwargs,
	}
}

func Test_Execute_UnknownCommand(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())

	resp := proc.Execute(models.Command{CommandID: "cmd-404", Command: "launch_rocket"})

	assert.Equal(t, "cmd-404", resp.CommandID)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "launch_rocket")
}

func Test_Execute_EchoesCommandID(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())

	resp := proc.Execute(command(models.OpBeep, nil))

	assert.Equal(t, "cmd-beep", resp.CommandID)
	assert.True(t, resp.Success)
}

func Test_ConnectionLifecycle(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())

	resp := proc.Execute(command(models.OpConnectionOpen, nil))
	require.True(t, resp.Success, resp.Message)

	resp = proc.Execute(command(models.OpConnectionIsOpened, nil))
	require.True(t, resp.Success)
	assert.Equal(t, true, resp.Data["is_opened"])

	resp = proc.Execute(command(models.OpConnectionClose, nil))
	require.True(t, resp.Success)

	resp = proc.Execute(command(models.OpConnectionIsOpened, nil))
	require.True(t, resp.Success)
	assert.Equal(t, false, resp.Data["is_opened"])
}

func Test_ShiftOpen(t *testing.T) {
	emu := driver.NewEmulator()
	emu.ShiftCounter = 6
	proc := newTestProcessor(emu)

	resp := proc.Execute(command(models.OpShiftOpen, models.Kwargs{"cashier_name": "Иванова И.И."}))

	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, int64(7), resp.Data["shift_number"])
	assert.Equal(t, true, resp.Data["document_closed"])
}

func Test_ShiftOpen_AlreadyOpened(t *testing.T) {
	emu := driver.NewEmulator()
	proc := newTestProcessor(emu)

	require.True(t, proc.Execute(command(models.OpShiftOpen, nil)).Success)
	resp := proc.Execute(command(models.OpShiftOpen, nil))

	assert.False(t, resp.Success)
	assert.Equal(t, driver.LIBFPTR_ERROR_SHIFT_OPENED, resp.Data["error_code"])
	assert.NotEmpty(t, resp.Message)
}

func Test_ShiftClose(t *testing.T) {
	emu := driver.NewEmulator()
	proc := newTestProcessor(emu)
	require.True(t, proc.Execute(command(models.OpShiftOpen, nil)).Success)

	resp := proc.Execute(command(models.OpShiftClose, nil))

	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, int64(1), resp.Data["shift_number"])
	assert.NotNil(t, resp.Data["fiscal_document_number"])
	assert.Equal(t, true, resp.Data["document_closed"])
}

func Test_ReceiptFlow(t *testing.T) {
	emu := driver.NewEmulator()
	proc := newTestProcessor(emu)
	require.True(t, proc.Execute(command(models.OpShiftOpen, nil)).Success)

	resp := proc.Execute(command(models.OpReceiptOpen, models.Kwargs{
		"receipt_type":     1,
		"customer_contact": "client@example.com",
	}))
	require.True(t, resp.Success, resp.Message)

	resp = proc.Execute(command(models.OpReceiptAddItem, models.Kwargs{
		"name":     "Хлеб",
		"price":    50.0,
		"quantity": 2.0,
		"tax_type": 6,
	}))
	require.True(t, resp.Success, resp.Message)

	resp = proc.Execute(command(models.OpReceiptAddPayment, models.Kwargs{
		"payment_type": 0,
		"amount":       100.0,
	}))
	require.True(t, resp.Success, resp.Message)

	resp = proc.Execute(command(models.OpReceiptClose, nil))
	require.True(t, resp.Success, resp.Message)
	docNumber, ok := resp.Data["fiscal_document_number"].(int64)
	require.True(t, ok)
	assert.Equal(t, int64(2000000000)+docNumber, resp.Data["fiscal_document_sign"])
	assert.Equal(t, int64(1), resp.Data["shift_number"])
}

// Количество — сквозной параметр: переданный ноль доходит до устройства
// нулём, решение об ошибке остаётся за прошивкой.
func Test_ReceiptAddItem_ZeroQuantityPassedThrough(t *testing.T) {
	emu := driver.NewEmulator()
	proc := newTestProcessor(emu)
	require.True(t, proc.Execute(command(models.OpReceiptOpen, models.Kwargs{"receipt_type": 1})).Success)

	resp := proc.Execute(command(models.OpReceiptAddItem, models.Kwargs{
		"name":     "Хлеб",
		"price":    10.0,
		"quantity": 0.0,
	}))

	require.True(t, resp.Success, resp.Message)
	emu.ResetError()
	assert.Equal(t, 0.0, emu.GetParamDouble(driver.LIBFPTR_PARAM_QUANTITY))
	assert.Equal(t, driver.LIBFPTR_OK, emu.ErrorCode())
}

// Непереданное количество не трогает параметр устройства.
func Test_ReceiptAddItem_AbsentQuantityLeavesParamUnset(t *testing.T) {
	emu := driver.NewEmulator()
	proc := newTestProcessor(emu)
	require.True(t, proc.Execute(command(models.OpReceiptOpen, models.Kwargs{"receipt_type": 1})).Success)

	resp := proc.Execute(command(models.OpReceiptAddItem, models.Kwargs{
		"name":  "Хлеб",
		"price": 10.0,
	}))

	require.True(t, resp.Success, resp.Message)
	emu.ResetError()
	emu.GetParamDouble(driver.LIBFPTR_PARAM_QUANTITY)
	assert.Equal(t, driver.LIBFPTR_ERROR_UNSUPPORTED_CAST, emu.ErrorCode())
}

func Test_ReceiptClose_WithoutOpenReceipt(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())

	resp := proc.Execute(command(models.OpReceiptClose, nil))

	assert.False(t, resp.Success)
	assert.Equal(t, driver.LIBFPTR_ERROR_INVALID_MODE, resp.Data["error_code"])
}

func Test_ReceiptCancel(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())
	require.True(t, proc.Execute(command(models.OpReceiptOpen, models.Kwargs{"receipt_type": 1})).Success)

	resp := proc.Execute(command(models.OpReceiptCancel, nil))
	require.True(t, resp.Success)

	// После отмены чек можно открыть заново.
	assert.True(t, proc.Execute(command(models.OpReceiptOpen, models.Kwargs{"receipt_type": 1})).Success)
}

func Test_CashOperationsAndCashSum(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())

	require.True(t, proc.Execute(command(models.OpCashIncome, models.Kwargs{"amount": 1500.50})).Success)
	require.True(t, proc.Execute(command(models.OpCashOutcome, models.Kwargs{"amount": 500.50})).Success)

	resp := proc.Execute(command(models.OpGetCashSum, nil))
	require.True(t, resp.Success)
	assert.InDelta(t, 1000.0, resp.Data["cash_sum"], 0.001)
}

func Test_GetStatus(t *testing.T) {
	emu := driver.NewEmulator()
	proc := newTestProcessor(emu)

	resp := proc.Execute(command(models.OpGetStatus, nil))

	require.True(t, resp.Success)
	assert.Equal(t, emu.ModelName, resp.Data["model_name"])
	assert.Equal(t, emu.SerialNumber, resp.Data["serial_number"])
	assert.Equal(t, int64(driver.LIBFPTR_SS_CLOSED), resp.Data["shift_state"])
	assert.Equal(t, false, resp.Data["cover_opened"])
	assert.Equal(t, true, resp.Data["paper_present"])
}

func Test_GetShiftState_ReflectsOpenShift(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())
	require.True(t, proc.Execute(command(models.OpShiftOpen, nil)).Success)

	resp := proc.Execute(command(models.OpGetShiftState, nil))

	require.True(t, resp.Success)
	assert.Equal(t, int64(driver.LIBFPTR_SS_OPENED), resp.Data["shift_state"])
	assert.Equal(t, int64(1), resp.Data["shift_number"])
	assert.NotEmpty(t, resp.Data["date_time"])
}

func Test_GetUnitVersion_ReleaseVersionOnlyForConfiguration(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())

	resp := proc.Execute(command(models.OpGetUnitVersion, nil))
	require.True(t, resp.Success)
	assert.NotContains(t, resp.Data, "release_version")

	resp = proc.Execute(command(models.OpGetUnitVersion, models.Kwargs{
		"unit_type": driver.LIBFPTR_UT_CONFIGURATION,
	}))
	require.True(t, resp.Success)
	assert.Contains(t, resp.Data, "release_version")
}

func Test_GetFatalStatus(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())

	resp := proc.Execute(command(models.OpGetFatalStatus, nil))

	require.True(t, resp.Success)
	require.Len(t, resp.Data, 15)
	for key, value := range resp.Data {
		assert.Equal(t, false, value, key)
	}
}

func Test_FnInfo(t *testing.T) {
	emu := driver.NewEmulator()
	proc := newTestProcessor(emu)

	resp := proc.Execute(command(models.OpFnInfo, nil))

	require.True(t, resp.Success)
	assert.Equal(t, emu.FNSerial, resp.Data["fn_serial_number"])
	assert.Contains(t, resp.Data, "fn_version")
	assert.Contains(t, resp.Data, "fn_state")
}

// Старые прошивки не отдают часть реквизитов регистрации: поля опускаются,
// запрос проходит.
func Test_FnRegistrationInfo_OptionalFields(t *testing.T) {
	emu := driver.NewEmulator()
	proc := newTestProcessor(emu)

	resp := proc.Execute(command(models.OpFnRegistrationInfo, nil))
	require.True(t, resp.Success)
	assert.Equal(t, emu.INN, resp.Data["inn"])
	assert.Contains(t, resp.Data, "taxation_systems")
	assert.Contains(t, resp.Data, "auto_mode")

	emu.OmitVersionedFields = true
	resp = proc.Execute(command(models.OpFnRegistrationInfo, nil))
	require.True(t, resp.Success)
	assert.Equal(t, emu.INN, resp.Data["inn"])
	assert.NotContains(t, resp.Data, "taxation_systems")
	assert.NotContains(t, resp.Data, "agent_type")
	assert.NotContains(t, resp.Data, "auto_mode")
}

func Test_FnOfdExchangeStatus(t *testing.T) {
	emu := driver.NewEmulator()
	emu.UnsentDocs = 3
	proc := newTestProcessor(emu)

	resp := proc.Execute(command(models.OpFnOfdExchangeStatus, nil))

	require.True(t, resp.Success)
	assert.Equal(t, int64(3), resp.Data["unsent_count"])
	assert.Contains(t, resp.Data, "exchange_status")
	assert.Contains(t, resp.Data, "first_unsent_datetime")
}

func Test_OperatorLogin(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())

	resp := proc.Execute(command(models.OpOperatorLogin, models.Kwargs{
		"operator_name":  "Сидорова С.С.",
		"operator_vatin": "770000000000",
	}))

	require.True(t, resp.Success)
	assert.Contains(t, resp.Message, "Сидорова С.С.")
}

func Test_CheckDocumentClosed(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())

	resp := proc.Execute(command(models.OpCheckDocumentClosed, nil))

	require.True(t, resp.Success)
	assert.Equal(t, true, resp.Data["document_closed"])
	assert.Equal(t, true, resp.Data["document_printed"])
}

func Test_PrintText_DeviceFailureCarriesError(t *testing.T) {
	emu := driver.NewEmulator()
	emu.FailNext("printText", driver.LIBFPTR_ERROR_NO_PAPER)
	proc := newTestProcessor(emu)

	resp := proc.Execute(command(models.OpPrintText, models.Kwargs{"text": "Спасибо за покупку!"}))

	assert.False(t, resp.Success)
	assert.Equal(t, driver.LIBFPTR_ERROR_NO_PAPER, resp.Data["error_code"])
	assert.Equal(t, "Нет бумаги", resp.Data["message"])
}

func Test_DeviceID(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())
	assert.Equal(t, "kkt-1", proc.DeviceID())
}
