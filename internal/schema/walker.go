package schema

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"github.com/contentkit/modelreport/internal/contentful"
)

// DecodedField is the format-independent projection of one field. It is
// produced fresh per render and never cached across formats; decoding is pure
// and cheap, so regenerating is safer than sharing.
type DecodedField struct {
	ID        string
	Name      string
	BaseType  string
	TypeLabel string

	Required  bool
	Localized bool
	Disabled  bool
	Omitted   bool

	// Default is the rendered default value; empty when the field has none.
	Default string

	// Validations is the decoded validation text, NoValidations when empty.
	Validations string

	// ItemType and ItemValidations are set for Array fields only.
	ItemType        string
	ItemValidations string
}

// DecodedContentType is one content type with all fields decoded, in stored
// order.
type DecodedContentType struct {
	ID           string
	Name         string
	Description  string
	DisplayField string
	CreatedAt    string
	UpdatedAt    string
	Fields       []DecodedField
}

// DecodeContentTypes walks the schema and decodes every field of every
// content type. Input order is preserved exactly; disabled and omitted fields
// are decoded like any other, with their flags surfaced rather than filtered.
func DecodeContentTypes(types []contentful.ContentType) []DecodedContentType {
	decoded := make([]DecodedContentType, 0, len(types))
	for _, ct := range types {
		decoded = append(decoded, decodeContentType(ct))
	}
	return decoded
}

func decodeContentType(ct contentful.ContentType) DecodedContentType {
	fields := make([]DecodedField, 0, len(ct.Fields))
	for _, f := range ct.Fields {
		fields = append(fields, decodeField(f))
	}
	return DecodedContentType{
		ID:           ct.Sys.ID,
		Name:         ct.Name,
		Description:  ct.Description,
		DisplayField: ct.DisplayField,
		CreatedAt:    ct.Sys.CreatedAt,
		UpdatedAt:    ct.Sys.UpdatedAt,
		Fields:       fields,
	}
}

// decodeField builds one DecodedField. A panic while decoding a single field
// is contained here: the field still appears in the output with whatever
// could be derived, so one malformed descriptor cannot take down the run.
func decodeField(f contentful.Field) (df DecodedField) {
	defer func() {
		if r := recover(); r != nil {
			df = DecodedField{
				ID:          f.ID,
				Name:        f.Name,
				BaseType:    f.Type,
				TypeLabel:   f.Type,
				Required:    f.Required,
				Localized:   f.Localized,
				Disabled:    f.Disabled,
				Omitted:     f.Omitted,
				Validations: fmt.Sprintf("(decode failed: %v)", r),
			}
		}
	}()

	df = DecodedField{
		ID:          f.ID,
		Name:        f.Name,
		BaseType:    f.Type,
		TypeLabel:   ResolveType(f),
		Required:    f.Required,
		Localized:   f.Localized,
		Disabled:    f.Disabled,
		Omitted:     f.Omitted,
		Default:     renderDefault(f.DefaultValue),
		Validations: Decode(f.Validations, &f),
	}

	if f.Type == contentful.TypeArray && f.Items != nil {
		df.ItemType = itemTypeLabel(*f.Items)
		df.ItemValidations = Decode(f.Items.Validations, nil)
	}
	return df
}

// itemTypeLabel renders the raw item descriptor shape, e.g. "Symbol" or
// "Link (Asset)". The resolved reference label lives in TypeLabel; this keeps
// the unresolved shape visible alongside it.
func itemTypeLabel(items contentful.FieldItems) string {
	if items.LinkType != "" {
		return items.Type + " (" + items.LinkType + ")"
	}
	return items.Type
}

// renderDefault turns a default value into display text. Scalars pass
// through, structured defaults (the API stores them per locale) serialize as
// JSON, absent defaults render empty.
func renderDefault(v any) string {
	switch v.(type) {
	case nil:
		return ""
	case string, bool, float64, float32, int, int32, int64:
		return cast.ToString(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
