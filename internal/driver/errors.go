package driver

import "fmt"

// Коды ошибок драйвера.
const (
	LIBFPTR_OK                           = 0
	LIBFPTR_ERROR_CONNECTION_DISABLED    = 1
	LIBFPTR_ERROR_NO_CONNECTION          = 2
	LIBFPTR_ERROR_PORT_BUSY              = 3
	LIBFPTR_ERROR_PORT_NOT_AVAILABLE     = 4
	LIBFPTR_ERROR_INCORRECT_DATA         = 5
	LIBFPTR_ERROR_INTERNAL               = 6
	LIBFPTR_ERROR_UNSUPPORTED_CAST       = 7
	LIBFPTR_ERROR_NO_REQUIRED_PARAM      = 8
	LIBFPTR_ERROR_INVALID_SETTINGS       = 9
	LIBFPTR_ERROR_NOT_CONFIGURED         = 10
	LIBFPTR_ERROR_NOT_SUPPORTED          = 11
	LIBFPTR_ERROR_INVALID_MODE           = 12
	LIBFPTR_ERROR_INVALID_PASSWORD       = 13
	LIBFPTR_ERROR_NOT_LOADED             = 14
	LIBFPTR_ERROR_UNKNOWN                = 15
	LIBFPTR_ERROR_INVALID_SUM            = 16
	LIBFPTR_ERROR_INVALID_QUANTITY       = 17
	LIBFPTR_ERROR_NO_MORE_DATA           = 18
	LIBFPTR_ERROR_SHIFT_EXPIRED          = 19
	LIBFPTR_ERROR_SHIFT_OPENED           = 20
	LIBFPTR_ERROR_SHIFT_CLOSED           = 21
	LIBFPTR_ERROR_RECEIPT_OPENED         = 22
	LIBFPTR_ERROR_RECEIPT_CLOSED         = 23
	LIBFPTR_ERROR_DENIED_IN_CLOSED_SHIFT = 24
	LIBFPTR_ERROR_NO_PAPER               = 25
	LIBFPTR_ERROR_COVER_OPENED           = 26
	LIBFPTR_ERROR_CUTTER_FAULT           = 27
	LIBFPTR_ERROR_FN_FAULT               = 28
	LIBFPTR_ERROR_FN_TIMEOUT             = 29
	LIBFPTR_ERROR_FN_EXHAUSTED           = 30
)

// errorMessages — статическая таблица локализованных описаний.
var errorMessages = map[int]string{
	LIBFPTR_OK:                           "Ошибок нет",
	LIBFPTR_ERROR_CONNECTION_DISABLED:    "Соединение не установлено",
	LIBFPTR_ERROR_NO_CONNECTION:          "Нет связи с ККТ",
	LIBFPTR_ERROR_PORT_BUSY:              "Порт занят",
	LIBFPTR_ERROR_PORT_NOT_AVAILABLE:     "Порт недоступен",
	LIBFPTR_ERROR_INCORRECT_DATA:         "Некорректные данные",
	LIBFPTR_ERROR_INTERNAL:               "Внутренняя ошибка драйвера",
	LIBFPTR_ERROR_UNSUPPORTED_CAST:       "Неподдерживаемое преобразование типа параметра",
	LIBFPTR_ERROR_NO_REQUIRED_PARAM:      "Не найден обязательный параметр",
	LIBFPTR_ERROR_INVALID_SETTINGS:       "Некорректные настройки подключения",
	LIBFPTR_ERROR_NOT_CONFIGURED:         "Драйвер не настроен",
	LIBFPTR_ERROR_NOT_SUPPORTED:          "Операция не поддерживается устройством",
	LIBFPTR_ERROR_INVALID_MODE:           "Недопустимый режим для операции",
	LIBFPTR_ERROR_INVALID_PASSWORD:       "Неверный пароль",
	LIBFPTR_ERROR_NOT_LOADED:             "Библиотека драйвера не загружена",
	LIBFPTR_ERROR_UNKNOWN:                "Неизвестная ошибка устройства",
	LIBFPTR_ERROR_INVALID_SUM:            "Некорректная сумма",
	LIBFPTR_ERROR_INVALID_QUANTITY:       "Некорректное количество",
	LIBFPTR_ERROR_NO_MORE_DATA:           "Данные закончились",
	LIBFPTR_ERROR_SHIFT_EXPIRED:          "Смена превысила 24 часа",
	LIBFPTR_ERROR_SHIFT_OPENED:           "Смена уже открыта",
	LIBFPTR_ERROR_SHIFT_CLOSED:           "Смена закрыта",
	LIBFPTR_ERROR_RECEIPT_OPENED:         "Чек уже открыт",
	LIBFPTR_ERROR_RECEIPT_CLOSED:         "Чек закрыт, операция невозможна",
	LIBFPTR_ERROR_DENIED_IN_CLOSED_SHIFT: "Операция недоступна при закрытой смене",
	LIBFPTR_ERROR_NO_PAPER:               "Нет бумаги",
	LIBFPTR_ERROR_COVER_OPENED:           "Открыта крышка",
	LIBFPTR_ERROR_CUTTER_FAULT:           "Ошибка отрезчика",
	LIBFPTR_ERROR_FN_FAULT:               "Ошибка фискального накопителя",
	LIBFPTR_ERROR_FN_TIMEOUT:             "Таймаут обмена с фискальным накопителем",
	LIBFPTR_ERROR_FN_EXHAUSTED:           "Ресурс фискального накопителя исчерпан",
}

const unknownErrorMessage = "Неизвестная ошибка"

// Error — структурированная ошибка устройства: код драйвера, сырое описание
// и локализованное сообщение из статической таблицы.
type Error struct {
	Code        int    `json:"error_code"`
	Description string `json:"error_description"`
	Localized   string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("[Код %d] %s: %s", e.Code, e.Localized, e.Description)
}

// ToMap готовит ошибку для Response.Data.
func (e *Error) ToMap() map[string]any {
	return map[string]any{
		"error_code":        e.Code,
		"error_description": e.Description,
		"message":           e.Localized,
	}
}

// Translate строит Error по коду и сырому описанию драйвера.
// Тотальна: неизвестный код получает общее сообщение.
func Translate(code int, description string) *Error {
	msg, ok := errorMessages[code]
	if !ok {
		msg = unknownErrorMessage
	}
	return &Error{
		Code:        code,
		Description: description,
		Localized:   msg,
	}
}
