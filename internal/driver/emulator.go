package driver

import (
	"fmt"
	"time"
)

// EmuRecord — запись TLV в фикстурах эмулятора. DeclaredType — тип, который
// устройство заявит при чтении; фактический тип значения может отличаться,
// так эмулируются прошивки с неверно заявленными типами.
type EmuRecord struct {
	Number       int
	Name         string
	DeclaredType int
	Value        any
	Complex      bool
	Repeatable   bool
}

type emuFailure struct {
	code int
	desc string
}

// Emulator — ККТ в памяти процесса: реализация Fptr для разработки без
// железа и для тестов. Состояние намеренно примитивное: счётчики смены и
// документов, денежный ящик, фикстуры записей, программируемые отказы.
type Emulator struct {
	SerialNumber    string
	ModelName       string
	FirmwareVersion string
	INN             string
	RegNumber       string
	FNSerial        string

	// Счётчики; выставляются тестами напрямую.
	ShiftCounter   int64
	DocCounter     int64
	ReceiptCounter int64
	Cash           float64
	UnsentDocs     int64

	// Прошивки до ФФД 1.05 не отдают часть реквизитов регистрации.
	OmitVersionedFields bool

	opened       bool
	label        string
	shiftOpened  bool
	receiptOpen  bool
	receiptSum   float64
	paymentsSum  float64

	params  map[int]any
	errCode int
	errDesc string

	documents     map[uint][]EmuRecord
	registrations map[uint][]EmuRecord
	licenses      []EmuRecord
	settings      []EmuRecord
	journal       []byte

	iterRecs   []EmuRecord
	iterIdx    int
	iterActive bool

	failures map[string]emuFailure
}

func NewEmulator() *Emulator {
	return &Emulator{
		SerialNumber:    "00106900000001",
		ModelName:       "АТОЛ 30Ф (эмулятор)",
		FirmwareVersion: "5.8.100",
		INN:             "7725225244",
		RegNumber:       "0000000001057545",
		FNSerial:        "9999078902003491",
		params:          make(map[int]any),
		documents:       make(map[uint][]EmuRecord),
		registrations:   make(map[uint][]EmuRecord),
		failures:        make(map[string]emuFailure),
	}
}

// --- фикстуры и программируемые отказы ---

func (e *Emulator) SeedDocument(number uint, recs []EmuRecord)     { e.documents[number] = recs }
func (e *Emulator) SeedRegistration(number uint, recs []EmuRecord) { e.registrations[number] = recs }
func (e *Emulator) SeedLicenses(recs []EmuRecord)                  { e.licenses = recs }
func (e *Emulator) SeedSettings(recs []EmuRecord)                  { e.settings = recs }
func (e *Emulator) SetJournal(data []byte)                         { e.journal = data }

// FailNext заставляет следующий вызов операции op завершиться с кодом code.
func (e *Emulator) FailNext(op string, code int) {
	e.failures[op] = emuFailure{code: code, desc: fmt.Sprintf("эмулированный отказ %q", op)}
}

func (e *Emulator) fail(op string) bool {
	f, ok := e.failures[op]
	if !ok {
		return false
	}
	delete(e.failures, op)
	e.errCode = f.code
	e.errDesc = f.desc
	return true
}

func (e *Emulator) setError(code int, desc string) int {
	e.errCode = code
	e.errDesc = desc
	return -1
}

func (e *Emulator) ok() int {
	e.errCode = 0
	e.errDesc = ""
	return 0
}

// --- параметры ---

func (e *Emulator) SetParam(param int, value any) {
	e.params[param] = value
}

func (e *Emulator) GetParamInt(param int) int64 {
	switch v := e.tagAware(param).(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case uint:
		return int64(v)
	}
	e.setError(LIBFPTR_ERROR_UNSUPPORTED_CAST, "параметр не является целым числом")
	return 0
}

func (e *Emulator) GetParamDouble(param int) float64 {
	switch v := e.tagAware(param).(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	e.setError(LIBFPTR_ERROR_UNSUPPORTED_CAST, "параметр не является числом")
	return 0
}

func (e *Emulator) GetParamBool(param int) bool {
	if v, ok := e.tagAware(param).(bool); ok {
		return v
	}
	e.setError(LIBFPTR_ERROR_UNSUPPORTED_CAST, "параметр не является булевым")
	return false
}

func (e *Emulator) GetParamString(param int) string {
	if v, ok := e.tagAware(param).(string); ok {
		return v
	}
	e.setError(LIBFPTR_ERROR_UNSUPPORTED_CAST, "параметр не является строкой")
	return ""
}

func (e *Emulator) GetParamByteArray(param int) []byte {
	switch v := e.tagAware(param).(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	case int64:
		return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	}
	e.setError(LIBFPTR_ERROR_UNSUPPORTED_CAST, "параметр не представим байтами")
	return nil
}

func (e *Emulator) GetParamDateTime(param int) time.Time {
	if v, ok := e.tagAware(param).(time.Time); ok {
		return v
	}
	return time.Now()
}

// tagAware подставляет значение текущей записи итерации для TAG_VALUE.
func (e *Emulator) tagAware(param int) any {
	if param == LIBFPTR_PARAM_TAG_VALUE && e.iterActive && e.iterIdx >= 0 && e.iterIdx < len(e.iterRecs) {
		return e.iterRecs[e.iterIdx].Value
	}
	return e.params[param]
}

func (e *Emulator) ErrorCode() int           { return e.errCode }
func (e *Emulator) ErrorDescription() string { return e.errDesc }
func (e *Emulator) ResetError()              { e.errCode = 0; e.errDesc = "" }

// --- соединение ---

func (e *Emulator) SetSettings(string) int {
	if e.fail("setSettings") {
		return -1
	}
	return e.ok()
}

func (e *Emulator) Open() int {
	if e.fail("open") {
		return -1
	}
	e.opened = true
	return e.ok()
}

func (e *Emulator) Close() int {
	if e.fail("close") {
		return -1
	}
	e.opened = false
	return e.ok()
}

func (e *Emulator) IsOpened() bool           { return e.opened }
func (e *Emulator) ChangeLabel(label string) { e.label = label }

// --- операции ---

func (e *Emulator) Beep() int {
	if e.fail("beep") {
		return -1
	}
	return e.ok()
}

func (e *Emulator) OpenShift() int {
	if e.fail("openShift") {
		return -1
	}
	if e.shiftOpened {
		return e.setError(LIBFPTR_ERROR_SHIFT_OPENED, "смена уже открыта")
	}
	e.shiftOpened = true
	e.ShiftCounter++
	e.DocCounter++
	e.params[LIBFPTR_PARAM_SHIFT_NUMBER] = e.ShiftCounter
	return e.ok()
}

func (e *Emulator) CloseShift() int {
	if e.fail("closeShift") {
		return -1
	}
	if !e.shiftOpened {
		return e.setError(LIBFPTR_ERROR_SHIFT_CLOSED, "смена не открыта")
	}
	e.shiftOpened = false
	e.DocCounter++
	e.params[LIBFPTR_PARAM_SHIFT_NUMBER] = e.ShiftCounter
	e.params[LIBFPTR_PARAM_FISCAL_DOCUMENT_NUMBER] = e.DocCounter
	return e.ok()
}

func (e *Emulator) Report() int {
	if e.fail("report") {
		return -1
	}
	return e.ok()
}

func (e *Emulator) OperatorLogin() int {
	if e.fail("operatorLogin") {
		return -1
	}
	return e.ok()
}

func (e *Emulator) ContinuePrint() int {
	if e.fail("continuePrint") {
		return -1
	}
	return e.ok()
}

func (e *Emulator) CheckDocumentClosed() int {
	if e.fail("checkDocumentClosed") {
		return -1
	}
	e.params[LIBFPTR_PARAM_DOCUMENT_CLOSED] = true
	e.params[LIBFPTR_PARAM_DOCUMENT_PRINTED] = true
	return e.ok()
}

func (e *Emulator) OpenReceipt() int {
	if e.fail("openReceipt") {
		return -1
	}
	if e.receiptOpen {
		return e.setError(LIBFPTR_ERROR_RECEIPT_OPENED, "чек уже открыт")
	}
	e.receiptOpen = true
	e.receiptSum = 0
	e.paymentsSum = 0
	e.ReceiptCounter++
	return e.ok()
}

func (e *Emulator) Registration() int {
	if e.fail("registration") {
		return -1
	}
	if !e.receiptOpen {
		return e.setError(LIBFPTR_ERROR_INVALID_MODE, "чек не открыт")
	}
	price := asFloat(e.params[LIBFPTR_PARAM_PRICE])
	// Умолчание прошивки действует, только если параметр не передан.
	qty := 1.0
	if v, ok := e.params[LIBFPTR_PARAM_QUANTITY]; ok {
		qty = asFloat(v)
	}
	e.receiptSum += price * qty
	return e.ok()
}

func (e *Emulator) Payment() int {
	if e.fail("payment") {
		return -1
	}
	if !e.receiptOpen {
		return e.setError(LIBFPTR_ERROR_INVALID_MODE, "чек не открыт")
	}
	e.paymentsSum += asFloat(e.params[LIBFPTR_PARAM_PAYMENT_SUM])
	return e.ok()
}

func (e *Emulator) CloseReceipt() int {
	if e.fail("closeReceipt") {
		return -1
	}
	if !e.receiptOpen {
		return e.setError(LIBFPTR_ERROR_INVALID_MODE, "чек не открыт")
	}
	e.receiptOpen = false
	e.DocCounter++
	e.params[LIBFPTR_PARAM_FISCAL_DOCUMENT_NUMBER] = e.DocCounter
	e.params[LIBFPTR_PARAM_FISCAL_DOCUMENT_SIGN] = 2000000000 + e.DocCounter
	e.params[LIBFPTR_PARAM_SHIFT_NUMBER] = e.ShiftCounter
	return e.ok()
}

func (e *Emulator) CancelReceipt() int {
	if e.fail("cancelReceipt") {
		return -1
	}
	if !e.receiptOpen {
		return e.setError(LIBFPTR_ERROR_INVALID_MODE, "чек не открыт")
	}
	e.receiptOpen = false
	return e.ok()
}

func (e *Emulator) CashIncome() int {
	if e.fail("cashIncome") {
		return -1
	}
	e.Cash += asFloat(e.params[LIBFPTR_PARAM_SUM])
	return e.ok()
}

func (e *Emulator) CashOutcome() int {
	if e.fail("cashOutcome") {
		return -1
	}
	e.Cash -= asFloat(e.params[LIBFPTR_PARAM_SUM])
	return e.ok()
}

func (e *Emulator) PrintText() int {
	if e.fail("printText") {
		return -1
	}
	return e.ok()
}

func (e *Emulator) PrintBarcode() int {
	if e.fail("printBarcode") {
		return -1
	}
	return e.ok()
}

func (e *Emulator) PrintPicture() int {
	if e.fail("printPicture") {
		return -1
	}
	return e.ok()
}

func (e *Emulator) PrintPictureByNumber() int {
	if e.fail("printPictureByNumber") {
		return -1
	}
	return e.ok()
}

func (e *Emulator) BeginNonfiscalDocument() int {
	if e.fail("beginNonfiscalDocument") {
		return -1
	}
	return e.ok()
}

func (e *Emulator) EndNonfiscalDocument() int {
	if e.fail("endNonfiscalDocument") {
		return -1
	}
	return e.ok()
}

func (e *Emulator) Cut() int {
	if e.fail("cut") {
		return -1
	}
	return e.ok()
}

func (e *Emulator) OpenCashDrawer() int {
	if e.fail("openCashDrawer") {
		return -1
	}
	return e.ok()
}

// --- запросы ---

func (e *Emulator) QueryData() int {
	if e.fail("queryData") {
		return -1
	}
	p := e.params
	switch e.GetParamInt(LIBFPTR_PARAM_DATA_TYPE) {
	case LIBFPTR_DT_STATUS:
		p[LIBFPTR_PARAM_MODEL_NAME] = e.ModelName
		p[LIBFPTR_PARAM_SERIAL_NUMBER] = e.SerialNumber
		p[LIBFPTR_PARAM_SHIFT_STATE] = e.shiftStateCode()
		p[LIBFPTR_PARAM_COVER_OPENED] = false
		p[LIBFPTR_PARAM_RECEIPT_PAPER_PRESENT] = true
	case LIBFPTR_DT_SHORT_STATUS:
		p[LIBFPTR_PARAM_CASHDRAWER_OPENED] = false
		p[LIBFPTR_PARAM_RECEIPT_PAPER_PRESENT] = true
		p[LIBFPTR_PARAM_PAPER_NEAR_END] = false
		p[LIBFPTR_PARAM_COVER_OPENED] = false
	case LIBFPTR_DT_CASH_SUM:
		p[LIBFPTR_PARAM_SUM] = e.Cash
	case LIBFPTR_DT_SHIFT_STATE:
		p[LIBFPTR_PARAM_SHIFT_STATE] = e.shiftStateCode()
		p[LIBFPTR_PARAM_SHIFT_NUMBER] = e.ShiftCounter
		p[LIBFPTR_PARAM_DATE_TIME] = time.Now()
	case LIBFPTR_DT_RECEIPT_STATE:
		p[LIBFPTR_PARAM_RECEIPT_TYPE] = asInt(p[LIBFPTR_PARAM_RECEIPT_TYPE])
		p[LIBFPTR_PARAM_RECEIPT_SUM] = e.receiptSum
		p[LIBFPTR_PARAM_RECEIPT_NUMBER] = e.ReceiptCounter
		p[LIBFPTR_PARAM_DOCUMENT_NUMBER] = e.DocCounter
		p[LIBFPTR_PARAM_REMAINDER] = maxFloat(e.receiptSum-e.paymentsSum, 0)
		p[LIBFPTR_PARAM_CHANGE] = maxFloat(e.paymentsSum-e.receiptSum, 0)
	case LIBFPTR_DT_DATE_TIME:
		p[LIBFPTR_PARAM_DATE_TIME] = time.Now()
	case LIBFPTR_DT_SERIAL_NUMBER:
		p[LIBFPTR_PARAM_SERIAL_NUMBER] = e.SerialNumber
	case LIBFPTR_DT_MODEL_INFO:
		p[LIBFPTR_PARAM_MODEL] = int64(69)
		p[LIBFPTR_PARAM_MODEL_NAME] = e.ModelName
		p[LIBFPTR_PARAM_UNIT_VERSION] = e.FirmwareVersion
	case LIBFPTR_DT_RECEIPT_LINE_LENGTH:
		p[LIBFPTR_PARAM_RECEIPT_LINE_LENGTH] = int64(32)
		p[LIBFPTR_PARAM_RECEIPT_LINE_LENGTH_PIX] = int64(384)
	case LIBFPTR_DT_UNIT_VERSION:
		p[LIBFPTR_PARAM_UNIT_VERSION] = e.FirmwareVersion
		if asInt(p[LIBFPTR_PARAM_UNIT_TYPE]) == LIBFPTR_UT_CONFIGURATION {
			p[LIBFPTR_PARAM_UNIT_RELEASE_VERSION] = "12345"
		}
	case LIBFPTR_DT_PAYMENT_SUM, LIBFPTR_DT_NON_NULLABLE_SUM:
		p[LIBFPTR_PARAM_SUM] = e.receiptSum
	case LIBFPTR_DT_CASHIN_SUM, LIBFPTR_DT_CASHOUT_SUM:
		p[LIBFPTR_PARAM_SUM] = e.Cash
	case LIBFPTR_DT_RECEIPT_COUNT:
		p[LIBFPTR_PARAM_DOCUMENTS_COUNT] = e.ReceiptCounter
	case LIBFPTR_DT_POWER_SOURCE_STATE:
		p[LIBFPTR_PARAM_BATTERY_CHARGE] = int64(100)
		p[LIBFPTR_PARAM_VOLTAGE] = 24.0
		p[LIBFPTR_PARAM_USE_BATTERY] = false
		p[LIBFPTR_PARAM_BATTERY_CHARGING] = false
		p[LIBFPTR_PARAM_CAN_PRINT_WHILE_ON_BATTERY] = true
	case LIBFPTR_DT_PRINTER_TEMPERATURE:
		p[LIBFPTR_PARAM_PRINTER_TEMPERATURE] = 36.6
	case LIBFPTR_DT_FATAL_STATUS:
		for _, param := range fatalStatusParams {
			p[param] = false
		}
	case LIBFPTR_DT_MAC_ADDRESS:
		p[LIBFPTR_PARAM_MAC_ADDRESS] = "00:1A:2B:3C:4D:5E"
	case LIBFPTR_DT_ETHERNET_INFO:
		p[LIBFPTR_PARAM_ETHERNET_IP] = "192.168.1.50"
		p[LIBFPTR_PARAM_ETHERNET_MASK] = "255.255.255.0"
		p[LIBFPTR_PARAM_ETHERNET_GATEWAY] = "192.168.1.1"
		p[LIBFPTR_PARAM_ETHERNET_DNS_IP] = "8.8.8.8"
		p[LIBFPTR_PARAM_ETHERNET_CONFIG_TIMEOUT] = int64(5)
		p[LIBFPTR_PARAM_ETHERNET_PORT] = int64(5555)
		p[LIBFPTR_PARAM_ETHERNET_DHCP] = true
		p[LIBFPTR_PARAM_ETHERNET_DNS_STATIC] = false
	case LIBFPTR_DT_WIFI_INFO:
		p[LIBFPTR_PARAM_WIFI_IP] = "192.168.1.51"
		p[LIBFPTR_PARAM_WIFI_MASK] = "255.255.255.0"
		p[LIBFPTR_PARAM_WIFI_GATEWAY] = "192.168.1.1"
		p[LIBFPTR_PARAM_WIFI_CONFIG_TIMEOUT] = int64(5)
		p[LIBFPTR_PARAM_WIFI_PORT] = int64(5555)
		p[LIBFPTR_PARAM_WIFI_DHCP] = true
	default:
		return e.setError(LIBFPTR_ERROR_INCORRECT_DATA, "неизвестный тип данных")
	}
	return e.ok()
}

var fatalStatusParams = []int{
	LIBFPTR_PARAM_NO_SERIAL_NUMBER,
	LIBFPTR_PARAM_RTC_FAULT,
	LIBFPTR_PARAM_SETTINGS_FAULT,
	LIBFPTR_PARAM_COUNTERS_FAULT,
	LIBFPTR_PARAM_USER_MEMORY_FAULT,
	LIBFPTR_PARAM_SERVICE_COUNTERS_FAULT,
	LIBFPTR_PARAM_ATTRIBUTES_FAULT,
	LIBFPTR_PARAM_FN_FAULT,
	LIBFPTR_PARAM_INVALID_FN,
	LIBFPTR_PARAM_HARD_FAULT,
	LIBFPTR_PARAM_MEMORY_MANAGER_FAULT,
	LIBFPTR_PARAM_SCRIPTS_FAULT,
	LIBFPTR_PARAM_WAIT_FOR_REBOOT,
	LIBFPTR_PARAM_UNIVERSAL_COUNTERS_FAULT,
	LIBFPTR_PARAM_COMMODITIES_TABLE_FAULT,
}

func (e *Emulator) FnQueryData() int {
	if e.fail("fnQueryData") {
		return -1
	}
	p := e.params
	switch e.GetParamInt(LIBFPTR_PARAM_FN_DATA_TYPE) {
	case LIBFPTR_FNDT_FN_INFO:
		p[LIBFPTR_PARAM_FN_SERIAL_NUMBER] = e.FNSerial
		p[LIBFPTR_PARAM_FN_VERSION] = "fn debug v 2.14"
		p[LIBFPTR_PARAM_FN_TYPE] = int64(1)
		p[LIBFPTR_PARAM_FN_STATE] = int64(3)
	case LIBFPTR_FNDT_REG_INFO:
		p[LIBFPTR_TAG_INN] = e.INN
		p[LIBFPTR_PARAM_REGISTRATION_NUMBER] = e.RegNumber
		p[LIBFPTR_PARAM_FFD_VERSION] = int64(2)
		p[LIBFPTR_PARAM_DEVICE_FFD_VERSION] = int64(2)
		p[LIBFPTR_PARAM_FN_FFD_VERSION] = int64(2)
		if e.OmitVersionedFields {
			delete(p, LIBFPTR_TAG_TAXATION_SYSTEMS)
			delete(p, LIBFPTR_TAG_AGENT_TYPE)
			delete(p, LIBFPTR_TAG_AUTO_MODE)
			delete(p, LIBFPTR_TAG_OFFLINE_MODE)
			delete(p, LIBFPTR_TAG_ENCRYPTION)
			delete(p, LIBFPTR_TAG_INTERNET_ONLY)
		} else {
			p[LIBFPTR_TAG_TAXATION_SYSTEMS] = int64(1)
			p[LIBFPTR_TAG_AGENT_TYPE] = int64(0)
			p[LIBFPTR_TAG_AUTO_MODE] = false
			p[LIBFPTR_TAG_OFFLINE_MODE] = false
			p[LIBFPTR_TAG_ENCRYPTION] = false
			p[LIBFPTR_TAG_INTERNET_ONLY] = false
		}
	case LIBFPTR_FNDT_OFD_EXCHANGE_STATUS:
		p[LIBFPTR_PARAM_OFD_EXCHANGE_STATUS] = int64(0)
		p[LIBFPTR_PARAM_DOCUMENTS_COUNT] = e.UnsentDocs
		p[LIBFPTR_PARAM_DOCUMENT_NUMBER] = e.DocCounter
		p[LIBFPTR_PARAM_OFD_MESSAGE_READ] = true
		p[LIBFPTR_PARAM_DATE_TIME] = time.Now()
	case LIBFPTR_FNDT_VALIDITY:
		p[LIBFPTR_PARAM_DATE_TIME] = time.Now().AddDate(1, 0, 0)
		p[LIBFPTR_PARAM_REGISTRATIONS_REMAIN] = int64(28)
		p[LIBFPTR_PARAM_REGISTRATIONS_COUNT] = int64(2)
	case LIBFPTR_FNDT_SHIFT:
		p[LIBFPTR_PARAM_SHIFT_STATE] = e.shiftStateCode()
		p[LIBFPTR_PARAM_SHIFT_NUMBER] = e.ShiftCounter
		p[LIBFPTR_PARAM_RECEIPT_NUMBER] = e.ReceiptCounter
	case LIBFPTR_FNDT_LAST_DOCUMENT:
		p[LIBFPTR_PARAM_TAG_VALUE] = e.journal
	default:
		return e.setError(LIBFPTR_ERROR_INCORRECT_DATA, "неизвестный тип данных ФН")
	}
	return e.ok()
}

// --- итерация записей ---

func (e *Emulator) BeginReadRecords() int {
	if e.fail("beginReadRecords") {
		return -1
	}
	switch e.GetParamInt(LIBFPTR_PARAM_RECORDS_TYPE) {
	case LIBFPTR_RT_FN_DOCUMENT_TLVS:
		num := uint(e.GetParamInt(LIBFPTR_PARAM_DOCUMENT_NUMBER))
		recs, ok := e.documents[num]
		if !ok {
			return e.setError(LIBFPTR_ERROR_INCORRECT_DATA, "документ не найден")
		}
		e.iterRecs = recs
	case LIBFPTR_RT_LICENSES:
		e.iterRecs = e.licenses
	case LIBFPTR_RT_FN_REGISTRATION_TLVS:
		num := uint(e.GetParamInt(LIBFPTR_PARAM_REGISTRATION_NUMBER))
		recs, ok := e.registrations[num]
		if !ok {
			return e.setError(LIBFPTR_ERROR_INCORRECT_DATA, "регистрация не найдена")
		}
		e.iterRecs = recs
	case LIBFPTR_RT_SETTINGS:
		e.iterRecs = e.settings
	case LIBFPTR_RT_PARSE_COMPLEX_ATTR:
		raw, _ := e.params[LIBFPTR_PARAM_TAG_VALUE].([]byte)
		e.iterRecs = flatToEmuRecords(raw)
	default:
		return e.setError(LIBFPTR_ERROR_INCORRECT_DATA, "неизвестный вид записей")
	}
	e.iterIdx = -1
	e.iterActive = true
	return e.ok()
}

func (e *Emulator) ReadNextRecord() int {
	if e.fail("readNextRecord") {
		return -1
	}
	if !e.iterActive {
		return e.setError(LIBFPTR_ERROR_INVALID_MODE, "чтение записей не открыто")
	}
	e.iterIdx++
	if e.iterIdx >= len(e.iterRecs) {
		return e.setError(LIBFPTR_ERROR_NO_MORE_DATA, "записи закончились")
	}
	rec := e.iterRecs[e.iterIdx]
	e.params[LIBFPTR_PARAM_TAG_NUMBER] = int64(rec.Number)
	e.params[LIBFPTR_PARAM_TAG_NAME] = rec.Name
	e.params[LIBFPTR_PARAM_TAG_TYPE] = int64(rec.DeclaredType)
	e.params[LIBFPTR_PARAM_TAG_IS_COMPLEX] = rec.Complex
	e.params[LIBFPTR_PARAM_TAG_IS_REPEATABLE] = rec.Repeatable
	return e.ok()
}

func (e *Emulator) EndReadRecords() int {
	if e.fail("endReadRecords") {
		return -1
	}
	if !e.iterActive {
		return e.setError(LIBFPTR_ERROR_INVALID_MODE, "чтение записей не открыто")
	}
	e.iterActive = false
	e.iterRecs = nil
	return e.ok()
}

// flatToEmuRecords разворачивает плоские TLV-тройки в записи итератора.
func flatToEmuRecords(data []byte) []EmuRecord {
	var recs []EmuRecord
	for off := 0; off+4 <= len(data); {
		tag := int(data[off]) | int(data[off+1])<<8
		length := int(data[off+2]) | int(data[off+3])<<8
		off += 4
		if off+length > len(data) {
			break
		}
		value := make([]byte, length)
		copy(value, data[off:off+length])
		off += length
		recs = append(recs, EmuRecord{Number: tag, DeclaredType: LIBFPTR_TAG_TYPE_STLV, Value: value})
	}
	return recs
}

func (e *Emulator) shiftStateCode() int64 {
	if e.shiftOpened {
		return LIBFPTR_SS_OPENED
	}
	return LIBFPTR_SS_CLOSED
}

func asFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	case int:
		return float64(x)
	}
	return 0
}

func asInt(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	}
	return 0
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
