package models

// Cashier — действующий оператор для смен, чеков и X-отчётов.
type Cashier struct {
	Name string `json:"name"`
	INN  string `json:"inn,omitempty"`
}
