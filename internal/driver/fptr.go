// Package driver моделирует поверхность драйвера АТОЛ ККТ v.10 (libfptr10).
// Боевое cgo-связывание реализует интерфейс Fptr вне этого репозитория;
// для разработки и тестов есть Emulator.
package driver

import "time"

// Fptr — сессия драйвера одной ККТ. Все операции возвращают числовой код
// результата: отрицательный код означает ошибку, детали — в ErrorCode и
// ErrorDescription. Сессия не рассчитана на конкурентный доступ.
type Fptr interface {
	// Параметры
	SetParam(param int, value any)
	GetParamInt(param int) int64
	GetParamDouble(param int) float64
	GetParamBool(param int) bool
	GetParamString(param int) string
	GetParamByteArray(param int) []byte
	GetParamDateTime(param int) time.Time

	// Ошибки
	ErrorCode() int
	ErrorDescription() string
	ResetError()

	// Соединение
	SetSettings(settings string) int
	Open() int
	Close() int
	IsOpened() bool
	ChangeLabel(label string)

	// Операции
	Beep() int
	OpenShift() int
	CloseShift() int
	Report() int
	OperatorLogin() int
	ContinuePrint() int
	CheckDocumentClosed() int
	OpenReceipt() int
	Registration() int
	Payment() int
	CloseReceipt() int
	CancelReceipt() int
	CashIncome() int
	CashOutcome() int
	PrintText() int
	PrintBarcode() int
	PrintPicture() int
	PrintPictureByNumber() int
	BeginNonfiscalDocument() int
	EndNonfiscalDocument() int
	Cut() int
	OpenCashDrawer() int
	QueryData() int
	FnQueryData() int

	// Итерация записей
	BeginReadRecords() int
	ReadNextRecord() int
	EndReadRecords() int
}

// Идентификаторы параметров драйвера. Нумерация повторяет схему libfptr10:
// служебные параметры от 65536, фискальные реквизиты адресуются номером тега.
const (
	LIBFPTR_PARAM_DATA_TYPE = 65536 + iota
	LIBFPTR_PARAM_FN_DATA_TYPE
	LIBFPTR_PARAM_RECORDS_TYPE
	LIBFPTR_PARAM_REPORT_TYPE

	LIBFPTR_PARAM_OPERATOR_NAME
	LIBFPTR_PARAM_OPERATOR_VATIN

	LIBFPTR_PARAM_RECEIPT_TYPE
	LIBFPTR_PARAM_RECEIPT_ELECTRONICALLY
	LIBFPTR_PARAM_BUYER_EMAIL_OR_PHONE

	LIBFPTR_PARAM_COMMODITY_NAME
	LIBFPTR_PARAM_PRICE
	LIBFPTR_PARAM_QUANTITY
	LIBFPTR_PARAM_TAX_TYPE
	LIBFPTR_PARAM_PAYMENT_TYPE_SIGN
	LIBFPTR_PARAM_COMMODITY_SIGN
	LIBFPTR_PARAM_DEPARTMENT
	LIBFPTR_PARAM_MEASURE_UNIT
	LIBFPTR_PARAM_POSITION_SUM

	LIBFPTR_PARAM_PAYMENT_TYPE
	LIBFPTR_PARAM_PAYMENT_SUM
	LIBFPTR_PARAM_SUM

	LIBFPTR_PARAM_SHIFT_STATE
	LIBFPTR_PARAM_SHIFT_NUMBER
	LIBFPTR_PARAM_FISCAL_DOCUMENT_NUMBER
	LIBFPTR_PARAM_FISCAL_DOCUMENT_SIGN
	LIBFPTR_PARAM_RECEIPT_NUMBER
	LIBFPTR_PARAM_DOCUMENT_NUMBER
	LIBFPTR_PARAM_RECEIPT_SUM
	LIBFPTR_PARAM_REMAINDER
	LIBFPTR_PARAM_CHANGE
	LIBFPTR_PARAM_DOCUMENTS_COUNT
	LIBFPTR_PARAM_DOCUMENT_CLOSED
	LIBFPTR_PARAM_DOCUMENT_PRINTED

	LIBFPTR_PARAM_DATE_TIME
	LIBFPTR_PARAM_SERIAL_NUMBER
	LIBFPTR_PARAM_MODEL
	LIBFPTR_PARAM_MODEL_NAME
	LIBFPTR_PARAM_UNIT_TYPE
	LIBFPTR_PARAM_UNIT_VERSION
	LIBFPTR_PARAM_UNIT_RELEASE_VERSION
	LIBFPTR_PARAM_RECEIPT_LINE_LENGTH
	LIBFPTR_PARAM_RECEIPT_LINE_LENGTH_PIX

	LIBFPTR_PARAM_COVER_OPENED
	LIBFPTR_PARAM_RECEIPT_PAPER_PRESENT
	LIBFPTR_PARAM_PAPER_NEAR_END
	LIBFPTR_PARAM_CASHDRAWER_OPENED

	LIBFPTR_PARAM_POWER_SOURCE_TYPE
	LIBFPTR_PARAM_BATTERY_CHARGE
	LIBFPTR_PARAM_VOLTAGE
	LIBFPTR_PARAM_USE_BATTERY
	LIBFPTR_PARAM_BATTERY_CHARGING
	LIBFPTR_PARAM_CAN_PRINT_WHILE_ON_BATTERY
	LIBFPTR_PARAM_PRINTER_TEMPERATURE

	LIBFPTR_PARAM_NO_SERIAL_NUMBER
	LIBFPTR_PARAM_RTC_FAULT
	LIBFPTR_PARAM_SETTINGS_FAULT
	LIBFPTR_PARAM_COUNTERS_FAULT
	LIBFPTR_PARAM_USER_MEMORY_FAULT
	LIBFPTR_PARAM_SERVICE_COUNTERS_FAULT
	LIBFPTR_PARAM_ATTRIBUTES_FAULT
	LIBFPTR_PARAM_FN_FAULT
	LIBFPTR_PARAM_INVALID_FN
	LIBFPTR_PARAM_HARD_FAULT
	LIBFPTR_PARAM_MEMORY_MANAGER_FAULT
	LIBFPTR_PARAM_SCRIPTS_FAULT
	LIBFPTR_PARAM_WAIT_FOR_REBOOT
	LIBFPTR_PARAM_UNIVERSAL_COUNTERS_FAULT
	LIBFPTR_PARAM_COMMODITIES_TABLE_FAULT

	LIBFPTR_PARAM_MAC_ADDRESS
	LIBFPTR_PARAM_ETHERNET_IP
	LIBFPTR_PARAM_ETHERNET_MASK
	LIBFPTR_PARAM_ETHERNET_GATEWAY
	LIBFPTR_PARAM_ETHERNET_DNS_IP
	LIBFPTR_PARAM_ETHERNET_CONFIG_TIMEOUT
	LIBFPTR_PARAM_ETHERNET_PORT
	LIBFPTR_PARAM_ETHERNET_DHCP
	LIBFPTR_PARAM_ETHERNET_DNS_STATIC
	LIBFPTR_PARAM_WIFI_IP
	LIBFPTR_PARAM_WIFI_MASK
	LIBFPTR_PARAM_WIFI_GATEWAY
	LIBFPTR_PARAM_WIFI_CONFIG_TIMEOUT
	LIBFPTR_PARAM_WIFI_PORT
	LIBFPTR_PARAM_WIFI_DHCP

	LIBFPTR_PARAM_TEXT
	LIBFPTR_PARAM_ALIGNMENT
	LIBFPTR_PARAM_TEXT_WRAP
	LIBFPTR_PARAM_FONT
	LIBFPTR_PARAM_FONT_DOUBLE_WIDTH
	LIBFPTR_PARAM_FONT_DOUBLE_HEIGHT
	LIBFPTR_PARAM_LINESPACING
	LIBFPTR_PARAM_BRIGHTNESS
	LIBFPTR_PARAM_DEFER
	LIBFPTR_PARAM_BARCODE
	LIBFPTR_PARAM_BARCODE_TYPE
	LIBFPTR_PARAM_SCALE
	LIBFPTR_PARAM_LEFT_MARGIN
	LIBFPTR_PARAM_BARCODE_INVERT
	LIBFPTR_PARAM_HEIGHT
	LIBFPTR_PARAM_BARCODE_PRINT_TEXT
	LIBFPTR_PARAM_BARCODE_CORRECTION
	LIBFPTR_PARAM_BARCODE_VERSION
	LIBFPTR_PARAM_BARCODE_COLUMNS
	LIBFPTR_PARAM_FILENAME
	LIBFPTR_PARAM_SCALE_PERCENT
	LIBFPTR_PARAM_PICTURE_NUMBER

	LIBFPTR_PARAM_FREQUENCY
	LIBFPTR_PARAM_DURATION

	LIBFPTR_PARAM_FN_SERIAL_NUMBER
	LIBFPTR_PARAM_FN_VERSION
	LIBFPTR_PARAM_FN_TYPE
	LIBFPTR_PARAM_FN_STATE
	LIBFPTR_PARAM_REGISTRATION_NUMBER
	LIBFPTR_PARAM_REGISTRATIONS_REMAIN
	LIBFPTR_PARAM_REGISTRATIONS_COUNT
	LIBFPTR_PARAM_FFD_VERSION
	LIBFPTR_PARAM_DEVICE_FFD_VERSION
	LIBFPTR_PARAM_FN_FFD_VERSION
	LIBFPTR_PARAM_OFD_EXCHANGE_STATUS
	LIBFPTR_PARAM_OFD_MESSAGE_READ

	LIBFPTR_PARAM_TAG_NUMBER
	LIBFPTR_PARAM_TAG_NAME
	LIBFPTR_PARAM_TAG_TYPE
	LIBFPTR_PARAM_TAG_VALUE
	LIBFPTR_PARAM_TAG_IS_COMPLEX
	LIBFPTR_PARAM_TAG_IS_REPEATABLE
)

// Фискальные реквизиты, адресуемые номером тега (ФФД).
const (
	LIBFPTR_TAG_INN              = 1018
	LIBFPTR_TAG_OPERATOR_NAME    = 1021
	LIBFPTR_TAG_OPERATOR_VATIN   = 1203
	LIBFPTR_TAG_TAXATION_SYSTEMS = 1062
	LIBFPTR_TAG_AGENT_TYPE       = 1057
	LIBFPTR_TAG_AUTO_MODE        = 1001
	LIBFPTR_TAG_OFFLINE_MODE     = 1002
	LIBFPTR_TAG_ENCRYPTION       = 1056
	LIBFPTR_TAG_INTERNET_ONLY    = 1108
)

// Селекторы queryData.
const (
	LIBFPTR_DT_STATUS = iota
	LIBFPTR_DT_SHORT_STATUS
	LIBFPTR_DT_CASH_SUM
	LIBFPTR_DT_SHIFT_STATE
	LIBFPTR_DT_RECEIPT_STATE
	LIBFPTR_DT_DATE_TIME
	LIBFPTR_DT_SERIAL_NUMBER
	LIBFPTR_DT_MODEL_INFO
	LIBFPTR_DT_RECEIPT_LINE_LENGTH
	LIBFPTR_DT_UNIT_VERSION
	LIBFPTR_DT_PAYMENT_SUM
	LIBFPTR_DT_CASHIN_SUM
	LIBFPTR_DT_CASHOUT_SUM
	LIBFPTR_DT_RECEIPT_COUNT
	LIBFPTR_DT_NON_NULLABLE_SUM
	LIBFPTR_DT_POWER_SOURCE_STATE
	LIBFPTR_DT_PRINTER_TEMPERATURE
	LIBFPTR_DT_FATAL_STATUS
	LIBFPTR_DT_MAC_ADDRESS
	LIBFPTR_DT_ETHERNET_INFO
	LIBFPTR_DT_WIFI_INFO
)

// Селекторы fnQueryData — отдельное пространство от queryData.
const (
	LIBFPTR_FNDT_FN_INFO = iota
	LIBFPTR_FNDT_REG_INFO
	LIBFPTR_FNDT_OFD_EXCHANGE_STATUS
	LIBFPTR_FNDT_VALIDITY
	LIBFPTR_FNDT_SHIFT
	LIBFPTR_FNDT_LAST_DOCUMENT
)

// Виды потоков записей для beginReadRecords.
const (
	LIBFPTR_RT_FN_DOCUMENT_TLVS = iota
	LIBFPTR_RT_LICENSES
	LIBFPTR_RT_FN_REGISTRATION_TLVS
	LIBFPTR_RT_SETTINGS
	LIBFPTR_RT_PARSE_COMPLEX_ATTR
)

// Типы значений TLV-реквизитов.
const (
	LIBFPTR_TAG_TYPE_BYTE = iota
	LIBFPTR_TAG_TYPE_UINT_16
	LIBFPTR_TAG_TYPE_UINT_32
	LIBFPTR_TAG_TYPE_VLN
	LIBFPTR_TAG_TYPE_FVLN
	LIBFPTR_TAG_TYPE_STRING
	LIBFPTR_TAG_TYPE_BOOL
	LIBFPTR_TAG_TYPE_BITS
	LIBFPTR_TAG_TYPE_ARRAY
	LIBFPTR_TAG_TYPE_STLV
	LIBFPTR_TAG_TYPE_UNIX_TIME
)

// Прочие перечисления.
const (
	LIBFPTR_RT_X = 0 // тип отчёта для report()

	LIBFPTR_ALIGNMENT_LEFT   = 0
	LIBFPTR_ALIGNMENT_CENTER = 1
	LIBFPTR_ALIGNMENT_RIGHT  = 2

	LIBFPTR_TW_NONE  = 0
	LIBFPTR_TW_WORDS = 1

	LIBFPTR_BT_EAN_13  = 0
	LIBFPTR_BT_CODE_39 = 1
	LIBFPTR_BT_QR      = 3

	LIBFPTR_UT_FIRMWARE      = 0
	LIBFPTR_UT_CONFIGURATION = 1
	LIBFPTR_UT_BOOTLOADER    = 2

	LIBFPTR_PST_POWER_SUPPLY = 0
	LIBFPTR_PST_RTC_BATTERY  = 1
	LIBFPTR_PST_BATTERY      = 2

	LIBFPTR_SS_CLOSED  = 0
	LIBFPTR_SS_OPENED  = 1
	LIBFPTR_SS_EXPIRED = 2
)
