package models_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kassatech/atolWorker/internal/domain/models"
)

func Test_Kwargs_Decode_PointerFieldsDistinguishMissingFromZero(t *testing.T) {
	kwargs := models.Kwargs{
		"text":      "строка 1",
		"alignment": 0,
	}

	var params models.PrintTextParams
	require.NoError(t, kwargs.Decode(&params))

	assert.Equal(t, "строка 1", params.Text)
	require.NotNil(t, params.Alignment)
	assert.Equal(t, 0, *params.Alignment)
	assert.Nil(t, params.Font)
	assert.Nil(t, params.Brightness)
}

func Test_Kwargs_Decode_NilKwargs(t *testing.T) {
	var kwargs models.Kwargs

	var params models.BeepParams
	require.NoError(t, kwargs.Decode(&params))
	assert.Nil(t, params.Frequency)
	assert.Nil(t, params.Duration)
}

func Test_Kwargs_Decode_Base64Bytes(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03}
	kwargs := models.Kwargs{
		"tag_value": base64.StdEncoding.EncodeToString(raw),
	}

	var params models.ParseComplexAttributeParams
	require.NoError(t, kwargs.Decode(&params))
	assert.Equal(t, raw, params.TagValue)
}

func Test_Kwargs_StringAndHas(t *testing.T) {
	kwargs := models.Kwargs{
		"cashier_name": "Иванова И.И.",
		"quantity":     2,
	}

	assert.Equal(t, "Иванова И.И.", kwargs.String("cashier_name"))
	assert.Equal(t, "", kwargs.String("quantity"))
	assert.Equal(t, "", kwargs.String("missing"))
	assert.True(t, kwargs.Has("quantity"))
	assert.False(t, kwargs.Has("missing"))
}
