package render

import (
	"strings"

	"github.com/contentkit/modelreport/internal/schema"
)

// CSV renders one row per field. Content types with zero fields still emit
// one placeholder row, so every content type is accounted for in the row
// count. Text cells are always double-quote-wrapped with internal quotes
// doubled; flag cells carry the literal tokens YES/NO.
//
// The escaping is written out here instead of going through encoding/csv
// because the stdlib writer only quotes cells that need it, and the report
// contract is that text cells are quoted unconditionally.
type CSV struct{}

func (CSV) Format() Format { return FormatCSV }
func (CSV) Extension() string { return "csv" }

var csvColumns = []string{
	"Content Type ID",
	"Content Type Name",
	"Description",
	"Display Field",
	"Created",
	"Updated",
	"Field ID",
	"Field Name",
	"Type",
	"Required",
	"Localized",
	"Disabled",
	"Omitted",
	"Default",
	"Validations",
	"Item Type",
	"Item Validations",
}

func (CSV) Render(rep Report) (string, error) {
	var b strings.Builder

	header := make([]string, 0, len(csvColumns))
	for _, col := range csvColumns {
		header = append(header, csvQuote(col))
	}
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\n")

	for _, ct := range rep.Decoded {
		if len(ct.Fields) == 0 {
			b.WriteString(placeholderRow(ct))
			b.WriteString("\n")
			continue
		}
		for _, f := range ct.Fields {
			b.WriteString(renderFieldSafe(f.ID, func() string { return csvRow(ct, f) }))
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

func csvRow(ct schema.DecodedContentType, f schema.DecodedField) string {
	cells := []string{
		csvQuote(ct.ID),
		csvQuote(ct.Name),
		csvQuote(ct.Description),
		csvQuote(ct.DisplayField),
		csvQuote(ct.CreatedAt),
		csvQuote(ct.UpdatedAt),
		csvQuote(f.ID),
		csvQuote(f.Name),
		csvQuote(f.TypeLabel),
		yesNo(f.Required),
		yesNo(f.Localized),
		yesNo(f.Disabled),
		yesNo(f.Omitted),
		csvQuote(f.Default),
		csvQuote(f.Validations),
		csvQuote(f.ItemType),
		csvQuote(f.ItemValidations),
	}
	return strings.Join(cells, ",")
}

// placeholderRow keeps a zero-field content type visible in the output. Flag
// cells stay empty since there is no field for them to describe.
func placeholderRow(ct schema.DecodedContentType) string {
	cells := []string{
		csvQuote(ct.ID),
		csvQuote(ct.Name),
		csvQuote(ct.Description),
		csvQuote(ct.DisplayField),
		csvQuote(ct.CreatedAt),
		csvQuote(ct.UpdatedAt),
		csvQuote(""),
		csvQuote("(no fields)"),
		csvQuote(""),
		"", "", "", "",
		csvQuote(""),
		csvQuote(""),
		csvQuote(""),
		csvQuote(""),
	}
	return strings.Join(cells, ",")
}

func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
