package usecases_test

import (
	"encoding/base64"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kassatech/atolWorker/internal/domain/models"
	"github.com/kassatech/atolWorker/internal/driver"
)

func tlvBytes(tag int, value []byte) []byte {
	out := make([]byte, 4, 4+len(value))
	binary.LittleEndian.PutUint16(out[0:], uint16(tag))
	binary.LittleEndian.PutUint16(out[2:], uint16(len(value)))
	return append(out, value...)
}

func Test_ReadFnDocument(t *testing.T) {
	emu := driver.NewEmulator()
	emu.SeedDocument(15, []driver.EmuRecord{
		{Number: 1018, Name: "ИНН пользователя", DeclaredType: driver.LIBFPTR_TAG_TYPE_STRING, Value: "7725225244"},
		{Number: 1038, Name: "номер смены", DeclaredType: driver.LIBFPTR_TAG_TYPE_UINT_32, Value: int64(3)},
	})
	proc := newTestProcessor(emu)

	resp := proc.Execute(command(models.OpReadFnDocument, models.Kwargs{"document_number": 15}))

	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, uint(15), resp.Data["document_number"])
	assert.Equal(t, 2, resp.Data["count"])

	records, ok := resp.Data["records"].([]models.TagRecord)
	require.True(t, ok)
	assert.Equal(t, 1018, records[0].TagNumber)
	assert.Equal(t, "7725225244", records[0].TagValue)
}

func Test_ReadFnDocument_UnknownNumber(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())

	resp := proc.Execute(command(models.OpReadFnDocument, models.Kwargs{"document_number": 404}))

	assert.False(t, resp.Success)
	assert.Equal(t, driver.LIBFPTR_ERROR_INCORRECT_DATA, resp.Data["error_code"])
}

func Test_ReadLicenses_EmptyList(t *testing.T) {
	proc := newTestProcessor(driver.NewEmulator())

	resp := proc.Execute(command(models.OpReadLicenses, nil))

	require.True(t, resp.Success)
	assert.Equal(t, 0, resp.Data["count"])
}

func Test_ReadFnRegistration(t *testing.T) {
	emu := driver.NewEmulator()
	emu.SeedRegistration(2, []driver.EmuRecord{
		{Number: 1037, Name: "регистрационный номер ККТ", DeclaredType: driver.LIBFPTR_TAG_TYPE_STRING, Value: "0000000001057545"},
	})
	proc := newTestProcessor(emu)

	resp := proc.Execute(command(models.OpReadFnRegistration, models.Kwargs{"registration_number": 2}))

	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, uint(2), resp.Data["registration_number"])
	assert.Equal(t, 1, resp.Data["count"])
}

func Test_ReadSettings(t *testing.T) {
	emu := driver.NewEmulator()
	emu.SeedSettings([]driver.EmuRecord{
		{Number: 1, Name: "яркость печати", DeclaredType: driver.LIBFPTR_TAG_TYPE_UINT_16, Value: int64(50)},
		{Number: 2, Name: "звук при ошибке", DeclaredType: driver.LIBFPTR_TAG_TYPE_BOOL, Value: true},
	})
	proc := newTestProcessor(emu)

	resp := proc.Execute(command(models.OpReadSettings, nil))

	require.True(t, resp.Success)
	assert.Equal(t, 2, resp.Data["count"])
}

// tag_value приходит по шине как base64-строка — стандартное JSON-представление
// байтов.
func Test_ParseComplexAttribute(t *testing.T) {
	raw := append(
		tlvBytes(1224, []byte("ООО Поставщик")),
		tlvBytes(1171, []byte("+79990000000"))...,
	)
	proc := newTestProcessor(driver.NewEmulator())

	resp := proc.Execute(command(models.OpParseComplexAttribute, models.Kwargs{
		"tag_value": base64.StdEncoding.EncodeToString(raw),
	}))

	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, 2, resp.Data["count"])

	records, ok := resp.Data["records"].([]models.TagRecord)
	require.True(t, ok)
	assert.Equal(t, 1224, records[0].TagNumber)
	assert.Equal(t, []byte("ООО Поставщик"), records[0].TagValue)
}

func Test_ReadLastJournalDocument(t *testing.T) {
	journal := append(
		tlvBytes(1018, []byte("7725225244")),
		tlvBytes(1042, []byte{0x05, 0x00})...,
	)
	emu := driver.NewEmulator()
	emu.SetJournal(journal)
	proc := newTestProcessor(emu)

	resp := proc.Execute(command(models.OpReadLastJournalDocument, nil))

	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, 2, resp.Data["count"])

	records, ok := resp.Data["records"].([]models.TagRecord)
	require.True(t, ok)
	assert.Equal(t, 1018, records[0].TagNumber)
	assert.Equal(t, models.TagTypeBytes, records[0].TagType)
	assert.Equal(t, 1042, records[1].TagNumber)
}
