package usecases

import (
	"errors"
	"fmt"

	"github.com/kassatech/atolWorker/internal/domain/models"
	"github.com/kassatech/atolWorker/internal/driver"
	"github.com/kassatech/atolWorker/internal/interfaces"
	"go.uber.org/zap"
)

// handlerFunc исполняет одну команду и возвращает данные ответа,
// человекочитаемое сообщение и ошибку.
type handlerFunc func(cmd models.Command) (map[string]any, string, error)

// CommandProcessor исполняет команды на сессии одного устройства.
// Любой исход — ровно один Response; ошибка одной команды никогда
// не роняет процесс.
type CommandProcessor struct {
	deviceID string
	drv      *driver.AtolDriver
	fptr     driver.Fptr
	resolver interfaces.CashierResolver
	log      *zap.SugaredLogger
	handlers map[models.Op]handlerFunc
}

func NewCommandProcessor(deviceID string, drv *driver.AtolDriver, resolver interfaces.CashierResolver, log *zap.SugaredLogger) *CommandProcessor {
	p := &CommandProcessor{
		deviceID: deviceID,
		drv:      drv,
		fptr:     drv.Fptr(),
		resolver: resolver,
		log:      log.With("device", deviceID),
	}
	p.registerHandlers()
	return p
}

func (p *CommandProcessor) DeviceID() string {
	return p.deviceID
}

// Execute выполняет команду. Неизвестная команда — обычный неуспешный
// ответ, не ошибка; ошибка устройства уходит в Response.Data.
func (p *CommandProcessor) Execute(cmd models.Command) models.Response {
	resp := models.Response{CommandID: cmd.CommandID}

	handler, ok := p.handlers[cmd.Command]
	if !ok {
		resp.Message = fmt.Sprintf("Неизвестная команда: %s", cmd.Command)
		return resp
	}

	data, message, err := handler(cmd)
	if err != nil {
		p.log.Errorw("ошибка выполнения команды", "command", cmd.Command, "error", err)
		resp.Message = fmt.Sprintf("Ошибка при выполнении команды '%s': %s", cmd.Command, err)
		var devErr *driver.Error
		if errors.As(err, &devErr) {
			resp.Data = devErr.ToMap()
		}
		return resp
	}

	resp.Success = true
	resp.Message = message
	resp.Data = data
	return resp
}

// registerHandlers строит закрытую таблицу диспетчеризации.
func (p *CommandProcessor) registerHandlers() {
	p.handlers = map[models.Op]handlerFunc{
		// Connection
		models.OpConnectionOpen:     p.connectionOpen,
		models.OpConnectionClose:    p.connectionClose,
		models.OpConnectionIsOpened: p.connectionIsOpened,

		// Shift
		models.OpShiftOpen:    p.shiftOpen,
		models.OpShiftClose:   p.shiftClose,
		models.OpPrintXReport: p.printXReport,

		// Receipt
		models.OpReceiptOpen:       p.receiptOpen,
		models.OpReceiptAddItem:    p.receiptAddItem,
		models.OpReceiptAddPayment: p.receiptAddPayment,
		models.OpReceiptClose:      p.receiptClose,
		models.OpReceiptCancel:     p.receiptCancel,

		// Cash
		models.OpCashIncome:  p.cashIncome,
		models.OpCashOutcome: p.cashOutcome,

		// Sound
		models.OpBeep: p.beep,

		// Print
		models.OpPrintText:             p.printText,
		models.OpPrintFeed:             p.printFeed,
		models.OpPrintBarcode:          p.printBarcode,
		models.OpPrintPicture:          p.printPicture,
		models.OpPrintPictureByNumber:  p.printPictureByNumber,
		models.OpOpenNonfiscalDocument: p.openNonfiscalDocument,
		models.OpCloseNonfiscalDoc:     p.closeNonfiscalDocument,
		models.OpCutPaper:              p.cutPaper,
		models.OpOpenCashDrawer:        p.openCashDrawer,

		// Queries
		models.OpGetStatus:            p.getStatus,
		models.OpGetShortStatus:       p.getShortStatus,
		models.OpGetCashSum:           p.getCashSum,
		models.OpGetShiftState:        p.getShiftState,
		models.OpGetReceiptState:      p.getReceiptState,
		models.OpGetDateTime:          p.getDateTime,
		models.OpGetSerialNumber:      p.getSerialNumber,
		models.OpGetModelInfo:         p.getModelInfo,
		models.OpGetReceiptLineLength: p.getReceiptLineLength,
		models.OpGetUnitVersion:       p.getUnitVersion,
		models.OpGetPaymentSum:        p.getPaymentSum,
		models.OpGetCashinSum:         p.getCashinSum,
		models.OpGetCashoutSum:        p.getCashoutSum,
		models.OpGetReceiptCount:      p.getReceiptCount,
		models.OpGetNonNullableSum:    p.getNonNullableSum,
		models.OpGetPowerSourceState:  p.getPowerSourceState,
		models.OpGetPrinterTemp:       p.getPrinterTemperature,
		models.OpGetFatalStatus:       p.getFatalStatus,
		models.OpGetMacAddress:        p.getMacAddress,
		models.OpGetEthernetInfo:      p.getEthernetInfo,
		models.OpGetWifiInfo:          p.getWifiInfo,

		// FN queries
		models.OpFnInfo:              p.fnInfo,
		models.OpFnRegistrationInfo:  p.fnRegistrationInfo,
		models.OpFnOfdExchangeStatus: p.fnOfdExchangeStatus,
		models.OpFnValidity:          p.fnValidity,
		models.OpFnShiftState:        p.fnShiftState,

		// Record reads
		models.OpReadFnDocument:          p.readFnDocument,
		models.OpReadLicenses:            p.readLicenses,
		models.OpReadFnRegistration:      p.readFnRegistration,
		models.OpReadSettings:            p.readSettings,
		models.OpParseComplexAttribute:   p.parseComplexAttribute,
		models.OpReadLastJournalDocument: p.readLastJournalDocument,

		// Operator & document
		models.OpOperatorLogin:       p.operatorLogin,
		models.OpContinuePrint:       p.continuePrint,
		models.OpCheckDocumentClosed: p.checkDocumentClosed,

		// Configuration
		models.OpChangeDriverLabel: p.changeDriverLabel,
	}
}

// ======================================================================
// Connection
// ======================================================================

func (p *CommandProcessor) connectionOpen(cmd models.Command) (map[string]any, string, error) {
	var params models.ConnectionOpenParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	var err error
	if params.Settings != nil {
		err = p.drv.ApplySettings(params.Settings)
	} else {
		err = p.drv.Configure()
	}
	if err != nil {
		return nil, "", err
	}

	if err := p.drv.Check(p.fptr.Open(), "открытия соединения"); err != nil {
		return nil, "", err
	}
	return nil, "Соединение с ККТ успешно установлено", nil
}

func (p *CommandProcessor) connectionClose(models.Command) (map[string]any, string, error) {
	if err := p.drv.Check(p.fptr.Close(), "закрытия соединения"); err != nil {
		return nil, "", err
	}
	return nil, "Соединение с ККТ закрыто", nil
}

func (p *CommandProcessor) connectionIsOpened(models.Command) (map[string]any, string, error) {
	isOpened := p.fptr.IsOpened()
	message := "Соединение не установлено"
	if isOpened {
		message = "Соединение активно"
	}
	data := map[string]any{
		"is_opened": isOpened,
		"message":   message,
	}
	return data, message, nil
}

// ======================================================================
// Shift
// ======================================================================

func (p *CommandProcessor) setOperator(cashier models.Cashier) {
	p.fptr.SetParam(driver.LIBFPTR_PARAM_OPERATOR_NAME, cashier.Name)
	if cashier.INN != "" {
		p.fptr.SetParam(driver.LIBFPTR_PARAM_OPERATOR_VATIN, cashier.INN)
	}
}

// confirmDocumentClosed опрашивает устройство после фискальной операции:
// на части прошивок документ смены финализируется не с первого раза.
func (p *CommandProcessor) confirmDocumentClosed() (bool, error) {
	if err := p.drv.Check(p.fptr.CheckDocumentClosed(), "проверки закрытия документа"); err != nil {
		return false, err
	}
	return p.fptr.GetParamBool(driver.LIBFPTR_PARAM_DOCUMENT_CLOSED), nil
}

func (p *CommandProcessor) shiftOpen(cmd models.Command) (map[string]any, string, error) {
	cashier := p.resolver.Resolve(p.deviceID, cmd.Kwargs)
	p.setOperator(cashier)

	if err := p.drv.Check(p.fptr.OpenShift(), "открытия смены"); err != nil {
		return nil, "", err
	}
	shiftNumber := p.fptr.GetParamInt(driver.LIBFPTR_PARAM_SHIFT_NUMBER)

	closed, err := p.confirmDocumentClosed()
	if err != nil {
		return nil, "", err
	}

	data := map[string]any{
		"shift_number":    shiftNumber,
		"document_closed": closed,
	}
	return data, fmt.Sprintf("Смена #%d успешно открыта", shiftNumber), nil
}

func (p *CommandProcessor) shiftClose(cmd models.Command) (map[string]any, string, error) {
	cashier := p.resolver.Resolve(p.deviceID, cmd.Kwargs)
	p.setOperator(cashier)

	if err := p.drv.Check(p.fptr.CloseShift(), "закрытия смены"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"shift_number":           p.fptr.GetParamInt(driver.LIBFPTR_PARAM_SHIFT_NUMBER),
		"fiscal_document_number": p.fptr.GetParamInt(driver.LIBFPTR_PARAM_FISCAL_DOCUMENT_NUMBER),
	}

	closed, err := p.confirmDocumentClosed()
	if err != nil {
		return nil, "", err
	}
	data["document_closed"] = closed

	return data, "Смена успешно закрыта, Z-отчет напечатан", nil
}

func (p *CommandProcessor) printXReport(cmd models.Command) (map[string]any, string, error) {
	cashier := p.resolver.Resolve(p.deviceID, cmd.Kwargs)
	p.setOperator(cashier)

	p.fptr.SetParam(driver.LIBFPTR_PARAM_REPORT_TYPE, driver.LIBFPTR_RT_X)
	if err := p.drv.Check(p.fptr.Report(), "печати X-отчета"); err != nil {
		return nil, "", err
	}
	return nil, "X-отчет напечатан", nil
}

// ======================================================================
// Receipt
// ======================================================================

func (p *CommandProcessor) receiptOpen(cmd models.Command) (map[string]any, string, error) {
	var params models.ReceiptOpenParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	cashier := p.resolver.Resolve(p.deviceID, cmd.Kwargs)
	p.fptr.SetParam(driver.LIBFPTR_PARAM_RECEIPT_TYPE, params.ReceiptType)
	p.setOperator(cashier)
	if params.CustomerContact != "" {
		p.fptr.SetParam(driver.LIBFPTR_PARAM_RECEIPT_ELECTRONICALLY, true)
		p.fptr.SetParam(driver.LIBFPTR_PARAM_BUYER_EMAIL_OR_PHONE, params.CustomerContact)
	}

	if err := p.drv.Check(p.fptr.OpenReceipt(), "открытия чека"); err != nil {
		return nil, "", err
	}
	return nil, fmt.Sprintf("Чек типа %d успешно открыт", params.ReceiptType), nil
}

func (p *CommandProcessor) receiptAddItem(cmd models.Command) (map[string]any, string, error) {
	var params models.ReceiptItemParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	f := p.fptr
	f.SetParam(driver.LIBFPTR_PARAM_COMMODITY_NAME, params.Name)
	f.SetParam(driver.LIBFPTR_PARAM_PRICE, params.Price)
	// Количество уходит в устройство как есть, в том числе ноль; отсутствующий
	// параметр оставляет умолчание прошивки.
	if params.Quantity != nil {
		f.SetParam(driver.LIBFPTR_PARAM_QUANTITY, *params.Quantity)
	}
	setOptInt(f, driver.LIBFPTR_PARAM_TAX_TYPE, params.TaxType)
	setOptInt(f, driver.LIBFPTR_PARAM_PAYMENT_TYPE_SIGN, params.PaymentMethod)
	setOptInt(f, driver.LIBFPTR_PARAM_COMMODITY_SIGN, params.PaymentObject)
	setOptInt(f, driver.LIBFPTR_PARAM_DEPARTMENT, params.Department)
	if params.MeasureUnit != nil {
		f.SetParam(driver.LIBFPTR_PARAM_MEASURE_UNIT, *params.MeasureUnit)
	}
	if params.Sum != nil {
		f.SetParam(driver.LIBFPTR_PARAM_POSITION_SUM, *params.Sum)
	}

	if err := p.drv.Check(f.Registration(), "регистрации позиции"); err != nil {
		return nil, "", err
	}
	return nil, fmt.Sprintf("Позиция '%s' добавлена", params.Name), nil
}

func (p *CommandProcessor) receiptAddPayment(cmd models.Command) (map[string]any, string, error) {
	var params models.ReceiptPaymentParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	p.fptr.SetParam(driver.LIBFPTR_PARAM_PAYMENT_TYPE, params.PaymentType)
	p.fptr.SetParam(driver.LIBFPTR_PARAM_PAYMENT_SUM, params.Amount)
	if err := p.drv.Check(p.fptr.Payment(), "регистрации оплаты"); err != nil {
		return nil, "", err
	}
	return nil, fmt.Sprintf("Оплата %.2f добавлена", params.Amount), nil
}

func (p *CommandProcessor) receiptClose(models.Command) (map[string]any, string, error) {
	if err := p.drv.Check(p.fptr.CloseReceipt(), "закрытия чека"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"fiscal_document_number": p.fptr.GetParamInt(driver.LIBFPTR_PARAM_FISCAL_DOCUMENT_NUMBER),
		"fiscal_document_sign":   p.fptr.GetParamInt(driver.LIBFPTR_PARAM_FISCAL_DOCUMENT_SIGN),
		"shift_number":           p.fptr.GetParamInt(driver.LIBFPTR_PARAM_SHIFT_NUMBER),
	}
	return data, "Чек успешно закрыт и напечатан", nil
}

func (p *CommandProcessor) receiptCancel(models.Command) (map[string]any, string, error) {
	if err := p.drv.Check(p.fptr.CancelReceipt(), "отмены чека"); err != nil {
		return nil, "", err
	}
	return nil, "Чек отменен", nil
}

// ======================================================================
// Cash
// ======================================================================

func (p *CommandProcessor) cashIncome(cmd models.Command) (map[string]any, string, error) {
	var params models.CashParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	p.fptr.SetParam(driver.LIBFPTR_PARAM_SUM, params.Amount)
	if err := p.drv.Check(p.fptr.CashIncome(), "внесения наличных"); err != nil {
		return nil, "", err
	}
	return nil, fmt.Sprintf("Внесено наличных: %.2f", params.Amount), nil
}

func (p *CommandProcessor) cashOutcome(cmd models.Command) (map[string]any, string, error) {
	var params models.CashParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	p.fptr.SetParam(driver.LIBFPTR_PARAM_SUM, params.Amount)
	if err := p.drv.Check(p.fptr.CashOutcome(), "выплаты наличных"); err != nil {
		return nil, "", err
	}
	return nil, fmt.Sprintf("Выплачено наличных: %.2f", params.Amount), nil
}

// ======================================================================
// Sound
// ======================================================================

func (p *CommandProcessor) beep(cmd models.Command) (map[string]any, string, error) {
	var params models.BeepParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	frequency := intOrDefault(params.Frequency, 2000)
	duration := intOrDefault(params.Duration, 100)
	p.fptr.SetParam(driver.LIBFPTR_PARAM_FREQUENCY, frequency)
	p.fptr.SetParam(driver.LIBFPTR_PARAM_DURATION, duration)
	if err := p.drv.Check(p.fptr.Beep(), "подачи звукового сигнала"); err != nil {
		return nil, "", err
	}
	return nil, fmt.Sprintf("Звуковой сигнал воспроизведен (частота: %d Гц, длительность: %d мс)", frequency, duration), nil
}

// ======================================================================
// Print
// ======================================================================

func (p *CommandProcessor) printText(cmd models.Command) (map[string]any, string, error) {
	var params models.PrintTextParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	f := p.fptr
	f.SetParam(driver.LIBFPTR_PARAM_TEXT, params.Text)
	f.SetParam(driver.LIBFPTR_PARAM_ALIGNMENT, intOrDefault(params.Alignment, driver.LIBFPTR_ALIGNMENT_LEFT))
	f.SetParam(driver.LIBFPTR_PARAM_TEXT_WRAP, intOrDefault(params.Wrap, driver.LIBFPTR_TW_NONE))

	// Отсутствующий необязательный параметр не трогает настройку устройства:
	// умолчания определяются прошивкой.
	setOptInt(f, driver.LIBFPTR_PARAM_FONT, params.Font)
	setOptBool(f, driver.LIBFPTR_PARAM_FONT_DOUBLE_WIDTH, params.DoubleWidth)
	setOptBool(f, driver.LIBFPTR_PARAM_FONT_DOUBLE_HEIGHT, params.DoubleHeight)
	setOptInt(f, driver.LIBFPTR_PARAM_LINESPACING, params.LineSpacing)
	setOptInt(f, driver.LIBFPTR_PARAM_BRIGHTNESS, params.Brightness)
	if params.Defer != nil && *params.Defer != 0 {
		f.SetParam(driver.LIBFPTR_PARAM_DEFER, *params.Defer)
	}

	if err := p.drv.Check(f.PrintText(), "печати текста"); err != nil {
		return nil, "", err
	}
	return nil, fmt.Sprintf("Текст напечатан: '%s'", params.Text), nil
}

func (p *CommandProcessor) printFeed(cmd models.Command) (map[string]any, string, error) {
	var params models.PrintFeedParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	lines := intOrDefault(params.Lines, 1)
	for i := 0; i < lines; i++ {
		if err := p.drv.Check(p.fptr.PrintText(), "промотки ленты"); err != nil {
			return nil, "", err
		}
	}
	return nil, fmt.Sprintf("Промотано строк: %d", lines), nil
}

func (p *CommandProcessor) printBarcode(cmd models.Command) (map[string]any, string, error) {
	var params models.PrintBarcodeParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	f := p.fptr
	f.SetParam(driver.LIBFPTR_PARAM_BARCODE, params.Barcode)
	f.SetParam(driver.LIBFPTR_PARAM_BARCODE_TYPE, intOrDefault(params.BarcodeType, driver.LIBFPTR_BT_QR))
	f.SetParam(driver.LIBFPTR_PARAM_ALIGNMENT, intOrDefault(params.Alignment, driver.LIBFPTR_ALIGNMENT_LEFT))
	f.SetParam(driver.LIBFPTR_PARAM_SCALE, intOrDefault(params.Scale, 2))

	setOptInt(f, driver.LIBFPTR_PARAM_LEFT_MARGIN, params.LeftMargin)
	setOptBool(f, driver.LIBFPTR_PARAM_BARCODE_INVERT, params.Invert)
	setOptInt(f, driver.LIBFPTR_PARAM_HEIGHT, params.Height)
	setOptBool(f, driver.LIBFPTR_PARAM_BARCODE_PRINT_TEXT, params.PrintText)
	setOptInt(f, driver.LIBFPTR_PARAM_BARCODE_CORRECTION, params.Correction)
	setOptInt(f, driver.LIBFPTR_PARAM_BARCODE_VERSION, params.Version)
	setOptInt(f, driver.LIBFPTR_PARAM_BARCODE_COLUMNS, params.Columns)
	if params.Defer != nil && *params.Defer != 0 {
		f.SetParam(driver.LIBFPTR_PARAM_DEFER, *params.Defer)
	}

	if err := p.drv.Check(f.PrintBarcode(), "печати штрихкода"); err != nil {
		return nil, "", err
	}
	return nil, fmt.Sprintf("Штрихкод напечатан: '%s'", params.Barcode), nil
}

func (p *CommandProcessor) printPicture(cmd models.Command) (map[string]any, string, error) {
	var params models.PrintPictureParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	f := p.fptr
	f.SetParam(driver.LIBFPTR_PARAM_FILENAME, params.Filename)
	f.SetParam(driver.LIBFPTR_PARAM_ALIGNMENT, intOrDefault(params.Alignment, driver.LIBFPTR_ALIGNMENT_LEFT))
	f.SetParam(driver.LIBFPTR_PARAM_SCALE_PERCENT, intOrDefault(params.ScalePercent, 100))
	setOptInt(f, driver.LIBFPTR_PARAM_LEFT_MARGIN, params.LeftMargin)

	if err := p.drv.Check(f.PrintPicture(), "печати картинки"); err != nil {
		return nil, "", err
	}
	return nil, fmt.Sprintf("Картинка напечатана: '%s'", params.Filename), nil
}

func (p *CommandProcessor) printPictureByNumber(cmd models.Command) (map[string]any, string, error) {
	var params models.PrintPictureByNumberParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	f := p.fptr
	f.SetParam(driver.LIBFPTR_PARAM_PICTURE_NUMBER, params.PictureNumber)
	f.SetParam(driver.LIBFPTR_PARAM_ALIGNMENT, intOrDefault(params.Alignment, driver.LIBFPTR_ALIGNMENT_LEFT))
	setOptInt(f, driver.LIBFPTR_PARAM_LEFT_MARGIN, params.LeftMargin)
	if params.Defer != nil && *params.Defer != 0 {
		f.SetParam(driver.LIBFPTR_PARAM_DEFER, *params.Defer)
	}

	if err := p.drv.Check(f.PrintPictureByNumber(), "печати картинки из памяти"); err != nil {
		return nil, "", err
	}
	return nil, fmt.Sprintf("Картинка №%d напечатана", params.PictureNumber), nil
}

func (p *CommandProcessor) openNonfiscalDocument(models.Command) (map[string]any, string, error) {
	if err := p.drv.Check(p.fptr.BeginNonfiscalDocument(), "открытия нефискального документа"); err != nil {
		return nil, "", err
	}
	return nil, "Нефискальный документ открыт", nil
}

func (p *CommandProcessor) closeNonfiscalDocument(models.Command) (map[string]any, string, error) {
	if err := p.drv.Check(p.fptr.EndNonfiscalDocument(), "закрытия нефискального документа"); err != nil {
		return nil, "", err
	}
	return nil, "Нефискальный документ закрыт", nil
}

func (p *CommandProcessor) cutPaper(models.Command) (map[string]any, string, error) {
	if err := p.drv.Check(p.fptr.Cut(), "отрезания чека"); err != nil {
		return nil, "", err
	}
	return nil, "Чек отрезан", nil
}

func (p *CommandProcessor) openCashDrawer(models.Command) (map[string]any, string, error) {
	if err := p.drv.Check(p.fptr.OpenCashDrawer(), "открытия денежного ящика"); err != nil {
		return nil, "", err
	}
	return nil, "Денежный ящик открыт", nil
}

// ======================================================================
// Operator & document
// ======================================================================

func (p *CommandProcessor) operatorLogin(cmd models.Command) (map[string]any, string, error) {
	var params models.OperatorLoginParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	p.fptr.SetParam(driver.LIBFPTR_TAG_OPERATOR_NAME, params.OperatorName)
	if params.OperatorVatin != "" {
		p.fptr.SetParam(driver.LIBFPTR_TAG_OPERATOR_VATIN, params.OperatorVatin)
	}
	if err := p.drv.Check(p.fptr.OperatorLogin(), "регистрации кассира"); err != nil {
		return nil, "", err
	}
	return nil, fmt.Sprintf("Кассир '%s' зарегистрирован", params.OperatorName), nil
}

func (p *CommandProcessor) continuePrint(models.Command) (map[string]any, string, error) {
	if err := p.drv.Check(p.fptr.ContinuePrint(), "допечатывания документа"); err != nil {
		return nil, "", err
	}
	return nil, "Документ допечатан", nil
}

func (p *CommandProcessor) checkDocumentClosed(models.Command) (map[string]any, string, error) {
	if err := p.drv.Check(p.fptr.CheckDocumentClosed(), "проверки закрытия документа"); err != nil {
		return nil, "", err
	}
	data := map[string]any{
		"document_closed":  p.fptr.GetParamBool(driver.LIBFPTR_PARAM_DOCUMENT_CLOSED),
		"document_printed": p.fptr.GetParamBool(driver.LIBFPTR_PARAM_DOCUMENT_PRINTED),
	}
	return data, "Состояние документа проверено", nil
}

// ======================================================================
// Configuration
// ======================================================================

func (p *CommandProcessor) changeDriverLabel(cmd models.Command) (map[string]any, string, error) {
	var params models.ChangeLabelParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	p.fptr.ChangeLabel(params.Label)
	return nil, fmt.Sprintf("Метка драйвера изменена на: %s", params.Label), nil
}

// --- helpers ---

func setOptInt(f driver.Fptr, param int, v *int) {
	if v != nil {
		f.SetParam(param, *v)
	}
}

func setOptBool(f driver.Fptr, param int, v *bool) {
	if v != nil {
		f.SetParam(param, *v)
	}
}

func intOrDefault(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}
