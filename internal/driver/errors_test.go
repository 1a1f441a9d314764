package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kassatech/atolWorker/internal/driver"
)

func Test_Translate_KnownCode(t *testing.T) {
	err := driver.Translate(driver.LIBFPTR_ERROR_NO_PAPER, "out of paper")

	require.NotNil(t, err)
	assert.Equal(t, driver.LIBFPTR_ERROR_NO_PAPER, err.Code)
	assert.Equal(t, "out of paper", err.Description)
	assert.Equal(t, "Нет бумаги", err.Localized)
}

// Перевод тотален: незнакомый код не роняет обработку.
func Test_Translate_UnknownCodeStillTranslates(t *testing.T) {
	for _, code := range []int{-1, 31, 9999} {
		err := driver.Translate(code, "что-то пошло не так")
		require.NotNil(t, err)
		assert.Equal(t, code, err.Code)
		assert.NotEmpty(t, err.Localized)
	}
}

func Test_Error_ToMap(t *testing.T) {
	err := driver.Translate(driver.LIBFPTR_ERROR_SHIFT_OPENED, "shift already opened")

	assert.Equal(t, map[string]any{
		"error_code":        driver.LIBFPTR_ERROR_SHIFT_OPENED,
		"error_description": "shift already opened",
		"message":           "Смена уже открыта",
	}, err.ToMap())
}
