package driver

import (
	"encoding/binary"

	"github.com/kassatech/atolWorker/internal/domain/models"
)

// RecordsSelector — параметры открытия потока записей.
// Заполняется поле, соответствующее виду потока.
type RecordsSelector struct {
	DocumentNumber     uint   // LIBFPTR_RT_FN_DOCUMENT_TLVS
	RegistrationNumber uint   // LIBFPTR_RT_FN_REGISTRATION_TLVS
	Raw                []byte // LIBFPTR_RT_PARSE_COMPLEX_ATTR
}

// ReadRecords открывает итерацию записей заданного вида. Устройство читает
// записи строго по порядку без перемотки; вызывающий обязан закрыть поток
// на любом пути выхода, иначе курсор устройства останется в неопределённом
// состоянии для следующих команд.
func (d *AtolDriver) ReadRecords(kind int, sel RecordsSelector) (*RecordStream, error) {
	f := d.fptr
	f.SetParam(LIBFPTR_PARAM_RECORDS_TYPE, kind)
	switch kind {
	case LIBFPTR_RT_FN_DOCUMENT_TLVS:
		f.SetParam(LIBFPTR_PARAM_DOCUMENT_NUMBER, sel.DocumentNumber)
	case LIBFPTR_RT_FN_REGISTRATION_TLVS:
		f.SetParam(LIBFPTR_PARAM_REGISTRATION_NUMBER, sel.RegistrationNumber)
	case LIBFPTR_RT_PARSE_COMPLEX_ATTR:
		f.SetParam(LIBFPTR_PARAM_TAG_VALUE, sel.Raw)
	}

	if err := d.Check(f.BeginReadRecords(), "открытия чтения записей"); err != nil {
		return nil, err
	}
	return &RecordStream{fptr: f}, nil
}

// RecordStream — ленивый конечный поток TagRecord поверх итератора
// устройства. Протокол как у sql.Rows: Next / Record / Err / Close.
type RecordStream struct {
	fptr   Fptr
	cur    models.TagRecord
	err    error
	done   bool
	closed bool
}

// Next читает следующую запись. false — конец потока или ошибка (см. Err).
func (s *RecordStream) Next() bool {
	if s.done || s.closed || s.err != nil {
		return false
	}
	if s.fptr.ReadNextRecord() < 0 {
		code := s.fptr.ErrorCode()
		if code == LIBFPTR_ERROR_NO_MORE_DATA {
			s.done = true
			return false
		}
		s.err = Translate(code, s.fptr.ErrorDescription())
		return false
	}
	s.cur = decodeTagRecord(s.fptr)
	return true
}

// Record возвращает запись, прочитанную последним Next.
func (s *RecordStream) Record() models.TagRecord {
	return s.cur
}

func (s *RecordStream) Err() error {
	return s.err
}

// Close освобождает итератор на стороне устройства. Идемпотентен;
// обязателен и на успешном, и на ошибочном пути.
func (s *RecordStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.fptr.EndReadRecords() < 0 {
		return Translate(s.fptr.ErrorCode(), s.fptr.ErrorDescription())
	}
	return nil
}

func decodeTagRecord(f Fptr) models.TagRecord {
	rec := models.TagRecord{
		TagNumber:    int(f.GetParamInt(LIBFPTR_PARAM_TAG_NUMBER)),
		TagName:      f.GetParamString(LIBFPTR_PARAM_TAG_NAME),
		IsComplex:    f.GetParamBool(LIBFPTR_PARAM_TAG_IS_COMPLEX),
		IsRepeatable: f.GetParamBool(LIBFPTR_PARAM_TAG_IS_REPEATABLE),
	}
	rec.TagType, rec.TagValue = decodeTagValue(f, int(f.GetParamInt(LIBFPTR_PARAM_TAG_TYPE)))
	return rec
}

// decodeTagValue читает значение реквизита типизированным аксессором по
// заявленному типу. Прошивки встречаются с неверно заявленными типами,
// поэтому отказ аксессора обязан уводить значение в сырые байты, а не
// ронять весь поток.
func decodeTagValue(f Fptr, declared int) (models.TagType, any) {
	f.ResetError()
	switch declared {
	case LIBFPTR_TAG_TYPE_BYTE, LIBFPTR_TAG_TYPE_UINT_16, LIBFPTR_TAG_TYPE_UINT_32, LIBFPTR_TAG_TYPE_VLN:
		if v := f.GetParamInt(LIBFPTR_PARAM_TAG_VALUE); f.ErrorCode() == LIBFPTR_OK {
			return models.TagTypeInt, v
		}
	case LIBFPTR_TAG_TYPE_FVLN:
		if v := f.GetParamDouble(LIBFPTR_PARAM_TAG_VALUE); f.ErrorCode() == LIBFPTR_OK {
			return models.TagTypeFixed, v
		}
	case LIBFPTR_TAG_TYPE_STRING:
		if v := f.GetParamString(LIBFPTR_PARAM_TAG_VALUE); f.ErrorCode() == LIBFPTR_OK {
			return models.TagTypeString, v
		}
	case LIBFPTR_TAG_TYPE_BOOL:
		if v := f.GetParamBool(LIBFPTR_PARAM_TAG_VALUE); f.ErrorCode() == LIBFPTR_OK {
			return models.TagTypeBool, v
		}
	}

	// Вложенные TLV, массивы, битовые поля, даты и отказавшие типизированные
	// чтения: сырые байты, при необходимости разбираются повторно через
	// parse_complex_attribute.
	f.ResetError()
	return models.TagTypeBytes, f.GetParamByteArray(LIBFPTR_PARAM_TAG_VALUE)
}

// ParseFlatTLV разбирает самоописывающийся формат последнего документа
// электронного журнала: плоскую конкатенацию троек
// (тег: 2 байта LE, длина: 2 байта LE, значение: длина байт) без протокола
// открытия/итерации. Обрезанная хвостовая запись молча отбрасывается.
func ParseFlatTLV(data []byte) []models.TagRecord {
	var records []models.TagRecord

	for off := 0; off+4 <= len(data); {
		tag := binary.LittleEndian.Uint16(data[off:])
		length := int(binary.LittleEndian.Uint16(data[off+2:]))
		off += 4

		if off+length > len(data) {
			break
		}
		value := make([]byte, length)
		copy(value, data[off:off+length])
		off += length

		records = append(records, models.TagRecord{
			TagNumber: int(tag),
			TagType:   models.TagTypeBytes,
			TagValue:  value,
		})
	}

	return records
}
