package models

import (
	jsoniter "github.com/json-iterator/go"
)

// PingPayload — служебное сообщение проверки живости канала, не команда.
const PingPayload = "ping"

// Op — имя операции ККТ в шине команд.
type Op string

const (
	// Connection
	OpConnectionOpen     Op = "connection_open"
	OpConnectionClose    Op = "connection_close"
	OpConnectionIsOpened Op = "connection_is_opened"

	// Shift
	OpShiftOpen    Op = "shift_open"
	OpShiftClose   Op = "shift_close"
	OpPrintXReport Op = "print_x_report"

	// Receipt
	OpReceiptOpen       Op = "receipt_open"
	OpReceiptAddItem    Op = "receipt_add_item"
	OpReceiptAddPayment Op = "receipt_add_payment"
	OpReceiptClose      Op = "receipt_close"
	OpReceiptCancel     Op = "receipt_cancel"

	// Cash
	OpCashIncome  Op = "cash_income"
	OpCashOutcome Op = "cash_outcome"

	// Sound
	OpBeep Op = "beep"

	// Print
	OpPrintText             Op = "print_text"
	OpPrintFeed             Op = "print_feed"
	OpPrintBarcode          Op = "print_barcode"
	OpPrintPicture          Op = "print_picture"
	OpPrintPictureByNumber  Op = "print_picture_by_number"
	OpOpenNonfiscalDocument Op = "open_nonfiscal_document"
	OpCloseNonfiscalDoc     Op = "close_nonfiscal_document"
	OpCutPaper              Op = "cut_paper"
	OpOpenCashDrawer        Op = "open_cash_drawer"

	// Queries
	OpGetStatus            Op = "get_status"
	OpGetShortStatus       Op = "get_short_status"
	OpGetCashSum           Op = "get_cash_sum"
	OpGetShiftState        Op = "get_shift_state"
	OpGetReceiptState      Op = "get_receipt_state"
	OpGetDateTime          Op = "get_datetime"
	OpGetSerialNumber      Op = "get_serial_number"
	OpGetModelInfo         Op = "get_model_info"
	OpGetReceiptLineLength Op = "get_receipt_line_length"
	OpGetUnitVersion       Op = "get_unit_version"
	OpGetPaymentSum        Op = "get_payment_sum"
	OpGetCashinSum         Op = "get_cashin_sum"
	OpGetCashoutSum        Op = "get_cashout_sum"
	OpGetReceiptCount      Op = "get_receipt_count"
	OpGetNonNullableSum    Op = "get_non_nullable_sum"
	OpGetPowerSourceState  Op = "get_power_source_state"
	OpGetPrinterTemp       Op = "get_printer_temperature"
	OpGetFatalStatus       Op = "get_fatal_status"
	OpGetMacAddress        Op = "get_mac_address"
	OpGetEthernetInfo      Op = "get_ethernet_info"
	OpGetWifiInfo          Op = "get_wifi_info"

	// FN queries
	OpFnInfo              Op = "fn_info"
	OpFnRegistrationInfo  Op = "fn_registration_info"
	OpFnOfdExchangeStatus Op = "fn_ofd_exchange_status"
	OpFnValidity          Op = "fn_validity"
	OpFnShiftState        Op = "fn_shift_state"

	// Record reads
	OpReadFnDocument          Op = "read_fn_document"
	OpReadLicenses            Op = "read_licenses"
	OpReadFnRegistration      Op = "read_fn_registration"
	OpReadSettings            Op = "read_settings"
	OpParseComplexAttribute   Op = "parse_complex_attribute"
	OpReadLastJournalDocument Op = "read_last_journal_document"

	// Operator & document
	OpOperatorLogin       Op = "operator_login"
	OpContinuePrint       Op = "continue_print"
	OpCheckDocumentClosed Op = "check_document_closed"

	// Configuration
	OpChangeDriverLabel Op = "change_driver_label"
)

// Command — команда из шины. Создаётся один раз на входящее сообщение,
// исполняется строго один раз.
type Command struct {
	CommandID string `json:"command_id"`
	DeviceID  string `json:"device_id"`
	Command   Op     `json:"command"`
	Kwargs    Kwargs `json:"kwargs"`
}

// Response — ответ на команду. CommandID всегда равен CommandID команды:
// это единственный механизм корреляции через шину.
type Response struct {
	CommandID string         `json:"command_id"`
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data"`
}

// Kwargs — параметры команды в сыром виде.
type Kwargs map[string]any

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode переносит kwargs в типизированную структуру параметров.
// Отсутствующие ключи оставляют нулевые значения, указательные поля — nil.
func (k Kwargs) Decode(dst any) error {
	if k == nil {
		return nil
	}
	raw, err := json.Marshal(map[string]any(k))
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// Has сообщает, присутствует ли ключ в kwargs.
func (k Kwargs) Has(key string) bool {
	_, ok := k[key]
	return ok
}

// String возвращает строковое значение ключа или "".
func (k Kwargs) String(key string) string {
	if v, ok := k[key].(string); ok {
		return v
	}
	return ""
}
