// Package contentful provides the wire model and a minimal read-only client
// for the Contentful Content Management API. Only the pieces needed to fetch
// a space's content model are implemented.
package contentful

// Sys carries the identity and lifecycle metadata attached to every
// management API resource.
type Sys struct {
	ID        string `json:"id"`
	Type      string `json:"type,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ContentType is one schema definition: an ordered list of typed fields.
// Instances are read-only snapshots; nothing in this module mutates them.
type ContentType struct {
	Sys          Sys     `json:"sys"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	DisplayField string  `json:"displayField,omitempty"`
	Fields       []Field `json:"fields"`
}

// Field is one typed, independently validated slot within a content type.
// LinkType is only meaningful when Type is "Link"; Items only when Type is
// "Array".
type Field struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	LinkType     string           `json:"linkType,omitempty"`
	Items        *FieldItems      `json:"items,omitempty"`
	Required     bool             `json:"required"`
	Localized    bool             `json:"localized"`
	Disabled     bool             `json:"disabled"`
	Omitted      bool             `json:"omitted"`
	DefaultValue any              `json:"defaultValue,omitempty"`
	Validations  []ValidationRule `json:"validations,omitempty"`
}

// FieldItems describes the element shape of an Array field, one level down.
type FieldItems struct {
	Type        string           `json:"type"`
	LinkType    string           `json:"linkType,omitempty"`
	Validations []ValidationRule `json:"validations,omitempty"`
}

// ValidationRule is an open record. The management API models validations as
// objects whose recognized keys are mutually non-exclusive, so a closed
// struct would silently drop constraints; keeping the raw map lets the JSON
// report preserve every rule verbatim and lets the decoder inspect keys one
// by one.
type ValidationRule map[string]any

// Base type tags the management API assigns to fields.
const (
	TypeSymbol   = "Symbol"
	TypeText     = "Text"
	TypeRichText = "RichText"
	TypeInteger  = "Integer"
	TypeNumber   = "Number"
	TypeDate     = "Date"
	TypeBoolean  = "Boolean"
	TypeObject   = "Object"
	TypeLink     = "Link"
	TypeArray    = "Array"
	TypeLocation = "Location"
)

// Link target kinds.
const (
	LinkEntry = "Entry"
	LinkAsset = "Asset"
)
