package models

// Типизированные параметры команд. Заполняются из kwargs через Kwargs.Decode;
// указательные поля различают «не передан» и «передан ноль» — отсутствующий
// необязательный параметр не должен трогать настройку устройства.

type ConnectionOpenParams struct {
	Settings map[string]any `json:"settings"`
}

type ShiftParams struct {
	CashierName string `json:"cashier_name"`
	CashierINN  string `json:"cashier_inn"`
}

type ReceiptOpenParams struct {
	ReceiptType     int    `json:"receipt_type"`
	CashierName     string `json:"cashier_name"`
	CashierINN      string `json:"cashier_inn"`
	CustomerContact string `json:"customer_contact"`
}

type ReceiptItemParams struct {
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Quantity      *float64 `json:"quantity"`
	TaxType       *int     `json:"tax_type"`
	PaymentMethod *int     `json:"payment_method"`
	PaymentObject *int     `json:"payment_object"`
	Department    *int     `json:"department"`
	MeasureUnit   *string  `json:"measure_unit"`
	Sum           *float64 `json:"sum"`
}

type ReceiptPaymentParams struct {
	PaymentType int     `json:"payment_type"`
	Amount      float64 `json:"amount"`
}

type CashParams struct {
	Amount float64 `json:"amount"`
}

type BeepParams struct {
	Frequency *int `json:"frequency"`
	Duration  *int `json:"duration"`
}

type PrintTextParams struct {
	Text         string `json:"text"`
	Alignment    *int   `json:"alignment"`
	Wrap         *int   `json:"wrap"`
	Font         *int   `json:"font"`
	DoubleWidth  *bool  `json:"double_width"`
	DoubleHeight *bool  `json:"double_height"`
	LineSpacing  *int   `json:"linespacing"`
	Brightness   *int   `json:"brightness"`
	Defer        *int   `json:"defer"`
}

type PrintFeedParams struct {
	Lines *int `json:"lines"`
}

type PrintBarcodeParams struct {
	Barcode     string `json:"barcode"`
	BarcodeType *int   `json:"barcode_type"`
	Alignment   *int   `json:"alignment"`
	Scale       *int   `json:"scale"`
	LeftMargin  *int   `json:"left_margin"`
	Invert      *bool  `json:"invert"`
	Height      *int   `json:"height"`
	PrintText   *bool  `json:"print_text"`
	Correction  *int   `json:"correction"`
	Version     *int   `json:"version"`
	Columns     *int   `json:"columns"`
	Defer       *int   `json:"defer"`
}

type PrintPictureParams struct {
	Filename     string `json:"filename"`
	Alignment    *int   `json:"alignment"`
	ScalePercent *int   `json:"scale_percent"`
	LeftMargin   *int   `json:"left_margin"`
}

type PrintPictureByNumberParams struct {
	PictureNumber int  `json:"picture_number"`
	Alignment     *int `json:"alignment"`
	LeftMargin    *int `json:"left_margin"`
	Defer         *int `json:"defer"`
}

type UnitVersionParams struct {
	UnitType *int `json:"unit_type"`
}

type PaymentSumParams struct {
	PaymentType int `json:"payment_type"`
	ReceiptType int `json:"receipt_type"`
}

type ReceiptTypeParams struct {
	ReceiptType int `json:"receipt_type"`
}

type PowerSourceParams struct {
	PowerSourceType *int `json:"power_source_type"`
}

type OperatorLoginParams struct {
	OperatorName  string `json:"operator_name"`
	OperatorVatin string `json:"operator_vatin"`
}

type ReadDocumentParams struct {
	DocumentNumber uint `json:"document_number"`
}

type ReadRegistrationParams struct {
	RegistrationNumber uint `json:"registration_number"`
}

type ParseComplexAttributeParams struct {
	// TagValue передаётся по шине в base64 (стандартное JSON-представление байтов).
	TagValue []byte `json:"tag_value"`
}

type ChangeLabelParams struct {
	Label string `json:"label"`
}
