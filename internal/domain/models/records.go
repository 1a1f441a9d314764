package models

// TagType — тип значения TLV-реквизита, как его декларирует устройство.
type TagType string

const (
	TagTypeInt    TagType = "int"
	TagTypeFixed  TagType = "fixed_point" // денежные и дробные величины
	TagTypeString TagType = "string"
	TagTypeBool   TagType = "bool"
	TagTypeBytes  TagType = "bytes" // вложенные TLV, массивы, битовые поля, даты
)

// TagRecord — один декодированный реквизит из фискального накопителя.
// Живёт только на время итерации, не сохраняется.
type TagRecord struct {
	TagNumber    int     `json:"tag_number"`
	TagName      string  `json:"tag_name"`
	TagType      TagType `json:"tag_type"`
	TagValue     any     `json:"tag_value"`
	IsComplex    bool    `json:"is_complex"`
	IsRepeatable bool    `json:"is_repeatable"`
}
