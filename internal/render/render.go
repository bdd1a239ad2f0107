// Package render projects a decoded content model into the supported report
// encodings. All renderers consume the same decoded record and are
// information-equivalent: every fact visible in one format is recoverable,
// possibly under a different encoding, from every other.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/contentkit/modelreport/internal/contentful"
	"github.com/contentkit/modelreport/internal/schema"
)

// Format identifies one report encoding.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// Meta is the header metadata stamped into every report. It labels the
// report only; nothing in it influences decoding.
type Meta struct {
	GeneratedAt time.Time
	SpaceID     string
	Environment string
}

// Report bundles the raw schema snapshot with its decoded projection. The
// raw content types are kept alongside the decoded record because the JSON
// format preserves validation objects verbatim.
type Report struct {
	Meta         Meta
	ContentTypes []contentful.ContentType
	Decoded      []schema.DecodedContentType
}

// NewReport decodes the given content types into a renderable report.
func NewReport(meta Meta, types []contentful.ContentType) Report {
	return Report{
		Meta:         meta,
		ContentTypes: types,
		Decoded:      schema.DecodeContentTypes(types),
	}
}

// Renderer turns a report into one textual encoding.
type Renderer interface {
	Format() Format
	// Extension is the output file extension, without the dot.
	Extension() string
	Render(rep Report) (string, error)
}

// Selectors lists every recognized format selector, in display order.
func Selectors() []string {
	return []string{"table", "json", "csv", "markdown", "md"}
}

// ForSelector maps a format selector to its renderer. Unrecognized selectors
// fall back to the table renderer rather than erroring.
func ForSelector(selector string) Renderer {
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case "json":
		return JSON{}
	case "csv":
		return CSV{}
	case "markdown", "md":
		return Markdown{}
	default:
		return Table{}
	}
}

// renderFieldSafe runs one field's formatter, containing panics so a single
// bad field cannot abort the remaining fields and content types.
func renderFieldSafe(fieldID string, fn func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("(failed to render field %s: %v)", fieldID, r)
		}
	}()
	return fn()
}

// fieldValidationText folds a field's own validation text with its array
// item validations so single-line formats keep both visible.
func fieldValidationText(f schema.DecodedField) string {
	if f.ItemValidations == "" || f.ItemValidations == schema.NoValidations {
		return f.Validations
	}
	return f.Validations + "; Array items: " + f.ItemValidations
}
