package usecases

import (
	"github.com/kassatech/atolWorker/internal/domain/models"
	"github.com/kassatech/atolWorker/internal/driver"
)

// drainRecords вычитывает поток записей целиком в упорядоченный список.
// Поток закрывается на любом пути выхода, включая ошибку посреди чтения.
func (p *CommandProcessor) drainRecords(kind int, sel driver.RecordsSelector) ([]models.TagRecord, error) {
	stream, err := p.drv.ReadRecords(kind, sel)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	records := make([]models.TagRecord, 0)
	for stream.Next() {
		records = append(records, stream.Record())
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func recordsData(records []models.TagRecord) map[string]any {
	return map[string]any{
		"records": records,
		"count":   len(records),
	}
}

func (p *CommandProcessor) readFnDocument(cmd models.Command) (map[string]any, string, error) {
	var params models.ReadDocumentParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	records, err := p.drainRecords(driver.LIBFPTR_RT_FN_DOCUMENT_TLVS, driver.RecordsSelector{
		DocumentNumber: params.DocumentNumber,
	})
	if err != nil {
		return nil, "", err
	}

	data := recordsData(records)
	data["document_number"] = params.DocumentNumber
	return data, "Реквизиты фискального документа прочитаны", nil
}

func (p *CommandProcessor) readLicenses(models.Command) (map[string]any, string, error) {
	records, err := p.drainRecords(driver.LIBFPTR_RT_LICENSES, driver.RecordsSelector{})
	if err != nil {
		return nil, "", err
	}
	return recordsData(records), "Лицензии прочитаны", nil
}

func (p *CommandProcessor) readFnRegistration(cmd models.Command) (map[string]any, string, error) {
	var params models.ReadRegistrationParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	records, err := p.drainRecords(driver.LIBFPTR_RT_FN_REGISTRATION_TLVS, driver.RecordsSelector{
		RegistrationNumber: params.RegistrationNumber,
	})
	if err != nil {
		return nil, "", err
	}

	data := recordsData(records)
	data["registration_number"] = params.RegistrationNumber
	return data, "Реквизиты регистрации прочитаны", nil
}

func (p *CommandProcessor) readSettings(models.Command) (map[string]any, string, error) {
	records, err := p.drainRecords(driver.LIBFPTR_RT_SETTINGS, driver.RecordsSelector{})
	if err != nil {
		return nil, "", err
	}
	return recordsData(records), "Настройки ККТ прочитаны", nil
}

// parseComplexAttribute разворачивает значение составного реквизита
// (вложенный STLV, полученный ранее как сырые байты) тем же протоколом
// итерации записей.
func (p *CommandProcessor) parseComplexAttribute(cmd models.Command) (map[string]any, string, error) {
	var params models.ParseComplexAttributeParams
	if err := cmd.Kwargs.Decode(&params); err != nil {
		return nil, "", err
	}

	records, err := p.drainRecords(driver.LIBFPTR_RT_PARSE_COMPLEX_ATTR, driver.RecordsSelector{
		Raw: params.TagValue,
	})
	if err != nil {
		return nil, "", err
	}
	return recordsData(records), "Составной реквизит разобран", nil
}

// readLastJournalDocument — особый случай: последний документ электронного
// журнала отдаётся одним самоописывающимся TLV-блоком без протокола
// итерации.
func (p *CommandProcessor) readLastJournalDocument(models.Command) (map[string]any, string, error) {
	if err := p.fnQueryData(driver.LIBFPTR_FNDT_LAST_DOCUMENT, "запроса последнего документа журнала"); err != nil {
		return nil, "", err
	}

	raw := p.fptr.GetParamByteArray(driver.LIBFPTR_PARAM_TAG_VALUE)
	records := driver.ParseFlatTLV(raw)
	return recordsData(records), "Последний документ журнала прочитан", nil
}
