package usecases

import (
	"github.com/kassatech/atolWorker/internal/domain/models"
	"github.com/kassatech/atolWorker/internal/driver"
)

// Формат даты устройства в ответах шины (локальное время ККТ, без зоны).
const deviceTimeLayout = "2006-01-02T15:04:05"

// queryData выполняет двухшаговый протокол запроса: селектор типа данных,
// затем общий вызов. Набор полей каждого селектора фиксирован и читается
// вызывающим хендлером.
func (p *CommandProcessor) queryData(selector int, operation string) error {
	p.fptr.SetParam(driver.LIBFPTR_PARAM_DATA_TYPE, selector)
	return p.drv.Check(p.fptr.QueryData(), operation)
}

// fnQueryData — тот же протокол против отдельного пространства селекторов
// фискального накопителя.
func (p *CommandProcessor) fnQueryData(selector int, operation string) error {
	p.fptr.SetParam(driver.LIBFPTR_PARAM_FN_DATA_TYPE, selector)
	return p.drv.Check(p.fptr.FnQueryData(), operation)
}

func (p *CommandProcessor) getStatus(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_STATUS, "запроса статуса"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"model_name":    f.GetParamString(driver.LIBFPTR_PARAM_MODEL_NAME),
		"serial_number": f.GetParamString(driver.LIBFPTR_PARAM_SERIAL_NUMBER),
		"shift_state":   f.GetParamInt(driver.LIBFPTR_PARAM_SHIFT_STATE),
		"cover_opened":  f.GetParamBool(driver.LIBFPTR_PARAM_COVER_OPENED),
		"paper_present": f.GetParamBool(driver.LIBFPTR_PARAM_RECEIPT_PAPER_PRESENT),
	}
	return data, "Статус ККТ получен", nil
}

func (p *CommandProcessor) getShortStatus(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_SHORT_STATUS, "короткого запроса статуса"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"cashdrawer_opened": f.GetParamBool(driver.LIBFPTR_PARAM_CASHDRAWER_OPENED),
		"paper_present":     f.GetParamBool(driver.LIBFPTR_PARAM_RECEIPT_PAPER_PRESENT),
		"paper_near_end":    f.GetParamBool(driver.LIBFPTR_PARAM_PAPER_NEAR_END),
		"cover_opened":      f.GetParamBool(driver.LIBFPTR_PARAM_COVER_OPENED),
	}
	return data, "Короткий статус ККТ получен", nil
}

func (p *CommandProcessor) getCashSum(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_CASH_SUM, "запроса суммы наличных"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"cash_sum": p.fptr.GetParamDouble(driver.LIBFPTR_PARAM_SUM),
	}
	return data, "Сумма наличных в ящике получена", nil
}

func (p *CommandProcessor) getShiftState(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_SHIFT_STATE, "запроса состояния смены"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"shift_state":  f.GetParamInt(driver.LIBFPTR_PARAM_SHIFT_STATE),
		"shift_number": f.GetParamInt(driver.LIBFPTR_PARAM_SHIFT_NUMBER),
		"date_time":    f.GetParamDateTime(driver.LIBFPTR_PARAM_DATE_TIME).Format(deviceTimeLayout),
	}
	return data, "Состояние смены получено", nil
}

func (p *CommandProcessor) getReceiptState(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_RECEIPT_STATE, "запроса состояния чека"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"receipt_type":    f.GetParamInt(driver.LIBFPTR_PARAM_RECEIPT_TYPE),
		"receipt_sum":     f.GetParamDouble(driver.LIBFPTR_PARAM_RECEIPT_SUM),
		"receipt_number":  f.GetParamInt(driver.LIBFPTR_PARAM_RECEIPT_NUMBER),
		"document_number": f.GetParamInt(driver.LIBFPTR_PARAM_DOCUMENT_NUMBER),
		"remainder":       f.GetParamDouble(driver.LIBFPTR_PARAM_REMAINDER),
		"change":          f.GetParamDouble(driver.LIBFPTR_PARAM_CHANGE),
	}
	return data, "Состояние чека получено", nil
}

func (p *CommandProcessor) getDateTime(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_DATE_TIME, "запроса даты и времени"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"date_time": p.fptr.GetParamDateTime(driver.LIBFPTR_PARAM_DATE_TIME).Format(deviceTimeLayout),
	}
	return data, "Дата и время ККТ получены", nil
}

func (p *CommandProcessor) getSerialNumber(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_SERIAL_NUMBER, "запроса заводского номера"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"serial_number": p.fptr.GetParamString(driver.LIBFPTR_PARAM_SERIAL_NUMBER),
	}
	return data, "Заводской номер получен", nil
}

func (p *CommandProcessor) getModelInfo(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_MODEL_INFO, "запроса информации о модели"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"model":            f.GetParamInt(driver.LIBFPTR_PARAM_MODEL),
		"model_name":       f.GetParamString(driver.LIBFPTR_PARAM_MODEL_NAME),
		"firmware_version": f.GetParamString(driver.LIBFPTR_PARAM_UNIT_VERSION),
	}
	return data, "Информация о модели получена", nil
}

func (p *CommandProcessor) getReceiptLineLength(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_RECEIPT_LINE_LENGTH, "запроса ширины чековой ленты"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"char_line_length": f.GetParamInt(driver.LIBFPTR_PARAM_RECEIPT_LINE_LENGTH),
		"pix_line_length":  f.GetParamInt(driver.LIBFPTR_PARAM_RECEIPT_LINE_LENGTH_PIX),
	}
	return data, "Ширина чековой ленты получена", nil
}

func (p *CommandProcessor) getUnitVersion(cmd models.Command) (map[string]any, string, error) {
	var params models.UnitVersionParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}
	unitType := intOrDefault(params.UnitType, driver.LIBFPTR_UT_FIRMWARE)

	p.fptr.SetParam(driver.LIBFPTR_PARAM_UNIT_TYPE, unitType)
	if err := p.queryData(driver.LIBFPTR_DT_UNIT_VERSION, "запроса версии модуля"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"unit_version": p.fptr.GetParamString(driver.LIBFPTR_PARAM_UNIT_VERSION),
	}
	// Версия релиза есть только у конфигурации.
	if unitType == driver.LIBFPTR_UT_CONFIGURATION {
		data["release_version"] = p.fptr.GetParamString(driver.LIBFPTR_PARAM_UNIT_RELEASE_VERSION)
	}
	return data, "Версия модуля получена", nil
}

func (p *CommandProcessor) getPaymentSum(cmd models.Command) (map[string]any, string, error) {
	var params models.PaymentSumParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	p.fptr.SetParam(driver.LIBFPTR_PARAM_PAYMENT_TYPE, params.PaymentType)
	p.fptr.SetParam(driver.LIBFPTR_PARAM_RECEIPT_TYPE, params.ReceiptType)
	if err := p.queryData(driver.LIBFPTR_DT_PAYMENT_SUM, "запроса суммы платежей"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"sum": p.fptr.GetParamDouble(driver.LIBFPTR_PARAM_SUM),
	}
	return data, "Сумма платежей получена", nil
}

func (p *CommandProcessor) getCashinSum(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_CASHIN_SUM, "запроса суммы внесений"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"sum": p.fptr.GetParamDouble(driver.LIBFPTR_PARAM_SUM),
	}
	return data, "Сумма внесений получена", nil
}

func (p *CommandProcessor) getCashoutSum(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_CASHOUT_SUM, "запроса суммы выплат"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"sum": p.fptr.GetParamDouble(driver.LIBFPTR_PARAM_SUM),
	}
	return data, "Сумма выплат получена", nil
}

func (p *CommandProcessor) getReceiptCount(cmd models.Command) (map[string]any, string, error) {
	var params models.ReceiptTypeParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	p.fptr.SetParam(driver.LIBFPTR_PARAM_RECEIPT_TYPE, params.ReceiptType)
	if err := p.queryData(driver.LIBFPTR_DT_RECEIPT_COUNT, "запроса количества чеков"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"count": p.fptr.GetParamInt(driver.LIBFPTR_PARAM_DOCUMENTS_COUNT),
	}
	return data, "Количество чеков получено", nil
}

func (p *CommandProcessor) getNonNullableSum(cmd models.Command) (map[string]any, string, error) {
	var params models.ReceiptTypeParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	p.fptr.SetParam(driver.LIBFPTR_PARAM_RECEIPT_TYPE, params.ReceiptType)
	if err := p.queryData(driver.LIBFPTR_DT_NON_NULLABLE_SUM, "запроса необнуляемой суммы"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"sum": p.fptr.GetParamDouble(driver.LIBFPTR_PARAM_SUM),
	}
	return data, "Необнуляемая сумма получена", nil
}

func (p *CommandProcessor) getPowerSourceState(cmd models.Command) (map[string]any, string, error) {
	var params models.PowerSourceParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	p.fptr.SetParam(driver.LIBFPTR_PARAM_POWER_SOURCE_TYPE, intOrDefault(params.PowerSourceType, driver.LIBFPTR_PST_BATTERY))
	if err := p.queryData(driver.LIBFPTR_DT_POWER_SOURCE_STATE, "запроса состояния источника питания"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"battery_charge":             f.GetParamInt(driver.LIBFPTR_PARAM_BATTERY_CHARGE),
		"voltage":                    f.GetParamDouble(driver.LIBFPTR_PARAM_VOLTAGE),
		"use_battery":                f.GetParamBool(driver.LIBFPTR_PARAM_USE_BATTERY),
		"battery_charging":           f.GetParamBool(driver.LIBFPTR_PARAM_BATTERY_CHARGING),
		"can_print_while_on_battery": f.GetParamBool(driver.LIBFPTR_PARAM_CAN_PRINT_WHILE_ON_BATTERY),
	}
	return data, "Состояние источника питания получено", nil
}

func (p *CommandProcessor) getPrinterTemperature(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_PRINTER_TEMPERATURE, "запроса температуры ТПГ"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"printer_temperature": p.fptr.GetParamDouble(driver.LIBFPTR_PARAM_PRINTER_TEMPERATURE),
	}
	return data, "Температура ТПГ получена", nil
}

func (p *CommandProcessor) getFatalStatus(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_FATAL_STATUS, "запроса фатальных ошибок"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"no_serial_number":         f.GetParamBool(driver.LIBFPTR_PARAM_NO_SERIAL_NUMBER),
		"rtc_fault":                f.GetParamBool(driver.LIBFPTR_PARAM_RTC_FAULT),
		"settings_fault":           f.GetParamBool(driver.LIBFPTR_PARAM_SETTINGS_FAULT),
		"counters_fault":           f.GetParamBool(driver.LIBFPTR_PARAM_COUNTERS_FAULT),
		"user_memory_fault":        f.GetParamBool(driver.LIBFPTR_PARAM_USER_MEMORY_FAULT),
		"service_counters_fault":   f.GetParamBool(driver.LIBFPTR_PARAM_SERVICE_COUNTERS_FAULT),
		"attributes_fault":         f.GetParamBool(driver.LIBFPTR_PARAM_ATTRIBUTES_FAULT),
		"fn_fault":                 f.GetParamBool(driver.LIBFPTR_PARAM_FN_FAULT),
		"invalid_fn":               f.GetParamBool(driver.LIBFPTR_PARAM_INVALID_FN),
		"hard_fault":               f.GetParamBool(driver.LIBFPTR_PARAM_HARD_FAULT),
		"memory_manager_fault":     f.GetParamBool(driver.LIBFPTR_PARAM_MEMORY_MANAGER_FAULT),
		"scripts_fault":            f.GetParamBool(driver.LIBFPTR_PARAM_SCRIPTS_FAULT),
		"wait_for_reboot":          f.GetParamBool(driver.LIBFPTR_PARAM_WAIT_FOR_REBOOT),
		"universal_counters_fault": f.GetParamBool(driver.LIBFPTR_PARAM_UNIVERSAL_COUNTERS_FAULT),
		"commodities_table_fault":  f.GetParamBool(driver.LIBFPTR_PARAM_COMMODITIES_TABLE_FAULT),
	}
	return data, "Статус фатальных ошибок получен", nil
}

func (p *CommandProcessor) getMacAddress(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_MAC_ADDRESS, "запроса MAC-адреса"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"mac_address": p.fptr.GetParamString(driver.LIBFPTR_PARAM_MAC_ADDRESS),
	}
	return data, "MAC-адрес получен", nil
}

func (p *CommandProcessor) getEthernetInfo(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_ETHERNET_INFO, "запроса конфигурации Ethernet"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"ip":         f.GetParamString(driver.LIBFPTR_PARAM_ETHERNET_IP),
		"mask":       f.GetParamString(driver.LIBFPTR_PARAM_ETHERNET_MASK),
		"gateway":    f.GetParamString(driver.LIBFPTR_PARAM_ETHERNET_GATEWAY),
		"dns":        f.GetParamString(driver.LIBFPTR_PARAM_ETHERNET_DNS_IP),
		"timeout":    f.GetParamInt(driver.LIBFPTR_PARAM_ETHERNET_CONFIG_TIMEOUT),
		"port":       f.GetParamInt(driver.LIBFPTR_PARAM_ETHERNET_PORT),
		"dhcp":       f.GetParamBool(driver.LIBFPTR_PARAM_ETHERNET_DHCP),
		"dns_static": f.GetParamBool(driver.LIBFPTR_PARAM_ETHERNET_DNS_STATIC),
	}
	return data, "Конфигурация Ethernet получена", nil
}

func (p *CommandProcessor) getWifiInfo(models.Command) (map[string]any, string, error) {
	if err := p.queryData(driver.LIBFPTR_DT_WIFI_INFO, "запроса конфигурации Wi-Fi"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"ip":      f.GetParamString(driver.LIBFPTR_PARAM_WIFI_IP),
		"mask":    f.GetParamString(driver.LIBFPTR_PARAM_WIFI_MASK),
		"gateway": f.GetParamString(driver.LIBFPTR_PARAM_WIFI_GATEWAY),
		"timeout": f.GetParamInt(driver.LIBFPTR_PARAM_WIFI_CONFIG_TIMEOUT),
		"port":    f.GetParamInt(driver.LIBFPTR_PARAM_WIFI_PORT),
		"dhcp":    f.GetParamBool(driver.LIBFPTR_PARAM_WIFI_DHCP),
	}
	return data, "Конфигурация Wi-Fi получена", nil
}

// ======================================================================
// Запросы фискального накопителя
// ======================================================================

func (p *CommandProcessor) fnInfo(models.Command) (map[string]any, string, error) {
	if err := p.fnQueryData(driver.LIBFPTR_FNDT_FN_INFO, "запроса информации о ФН"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"fn_serial_number": f.GetParamString(driver.LIBFPTR_PARAM_FN_SERIAL_NUMBER),
		"fn_version":       f.GetParamString(driver.LIBFPTR_PARAM_FN_VERSION),
		"fn_type":          f.GetParamInt(driver.LIBFPTR_PARAM_FN_TYPE),
		"fn_state":         f.GetParamInt(driver.LIBFPTR_PARAM_FN_STATE),
	}
	return data, "Информация о ФН получена", nil
}

// fnRegistrationInfo: битовые поля и флаги регистрации зависят от версии
// ФФД, их отсутствие — норма: поле опускается, запрос не падает.
func (p *CommandProcessor) fnRegistrationInfo(models.Command) (map[string]any, string, error) {
	if err := p.fnQueryData(driver.LIBFPTR_FNDT_REG_INFO, "запроса параметров регистрации"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"inn":                 f.GetParamString(driver.LIBFPTR_TAG_INN),
		"registration_number": f.GetParamString(driver.LIBFPTR_PARAM_REGISTRATION_NUMBER),
		"ffd_version":         f.GetParamInt(driver.LIBFPTR_PARAM_FFD_VERSION),
		"device_ffd_version":  f.GetParamInt(driver.LIBFPTR_PARAM_DEVICE_FFD_VERSION),
		"fn_ffd_version":      f.GetParamInt(driver.LIBFPTR_PARAM_FN_FFD_VERSION),
	}
	putOptInt(f, data, "taxation_systems", driver.LIBFPTR_TAG_TAXATION_SYSTEMS)
	putOptInt(f, data, "agent_type", driver.LIBFPTR_TAG_AGENT_TYPE)
	putOptBool(f, data, "auto_mode", driver.LIBFPTR_TAG_AUTO_MODE)
	putOptBool(f, data, "offline_mode", driver.LIBFPTR_TAG_OFFLINE_MODE)
	putOptBool(f, data, "encryption", driver.LIBFPTR_TAG_ENCRYPTION)
	putOptBool(f, data, "internet_only", driver.LIBFPTR_TAG_INTERNET_ONLY)
	return data, "Параметры регистрации получены", nil
}

func (p *CommandProcessor) fnOfdExchangeStatus(models.Command) (map[string]any, string, error) {
	if err := p.fnQueryData(driver.LIBFPTR_FNDT_OFD_EXCHANGE_STATUS, "запроса статуса обмена с ОФД"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"exchange_status":       f.GetParamInt(driver.LIBFPTR_PARAM_OFD_EXCHANGE_STATUS),
		"unsent_count":          f.GetParamInt(driver.LIBFPTR_PARAM_DOCUMENTS_COUNT),
		"first_unsent_number":   f.GetParamInt(driver.LIBFPTR_PARAM_DOCUMENT_NUMBER),
		"ofd_message_read":      f.GetParamBool(driver.LIBFPTR_PARAM_OFD_MESSAGE_READ),
		"first_unsent_datetime": f.GetParamDateTime(driver.LIBFPTR_PARAM_DATE_TIME).Format(deviceTimeLayout),
	}
	return data, "Статус обмена с ОФД получен", nil
}

func (p *CommandProcessor) fnValidity(models.Command) (map[string]any, string, error) {
	if err := p.fnQueryData(driver.LIBFPTR_FNDT_VALIDITY, "запроса срока действия ФН"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"valid_until":          f.GetParamDateTime(driver.LIBFPTR_PARAM_DATE_TIME).Format(deviceTimeLayout),
		"registrations_remain": f.GetParamInt(driver.LIBFPTR_PARAM_REGISTRATIONS_REMAIN),
		"registrations_count":  f.GetParamInt(driver.LIBFPTR_PARAM_REGISTRATIONS_COUNT),
	}
	return data, "Срок действия ФН получен", nil
}

func (p *CommandProcessor) fnShiftState(models.Command) (map[string]any, string, error) {
	if err := p.fnQueryData(driver.LIBFPTR_FNDT_SHIFT, "запроса состояния смены в ФН"); err != nil {
		return nil, "", err
	}
	f := p.fptr
	data := map[string]any{
		"shift_state":    f.GetParamInt(driver.LIBFPTR_PARAM_SHIFT_STATE),
		"shift_number":   f.GetParamInt(driver.LIBFPTR_PARAM_SHIFT_NUMBER),
		"receipt_number": f.GetParamInt(driver.LIBFPTR_PARAM_RECEIPT_NUMBER),
	}
	return data, "Состояние смены в ФН получено", nil
}

// putOptInt читает необязательный параметр и кладёт его в data только при
// успешном чтении.
func putOptInt(f driver.Fptr, data map[string]any, key string, param int) {
	f.ResetError()
	if v := f.GetParamInt(param); f.ErrorCode() == driver.LIBFPTR_OK {
		data[key] = v
	}
}

func putOptBool(f driver.Fptr, data map[string]any, key string, param int) {
	f.ResetError()
	if v := f.GetParamBool(param); f.ErrorCode() == driver.LIBFPTR_OK {
		data[key] = v
	}
}
