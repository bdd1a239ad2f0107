package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/contentkit/modelreport/internal/schema"
)

// Table renders one pipe-delimited section per content type. This is the
// default format.
type Table struct{}

func (Table) Format() Format { return FormatTable }
func (Table) Extension() string { return "txt" }

const tableHeader = "| Field ID | Name | Type | Required | Localized | Status | Validations |"

func (Table) Render(rep Report) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Content Model Report\n")
	fmt.Fprintf(&b, "Generated: %s\n", rep.Meta.GeneratedAt.UTC().Format(time.RFC3339))
	if rep.Meta.SpaceID != "" {
		fmt.Fprintf(&b, "Space: %s\n", rep.Meta.SpaceID)
	}
	if rep.Meta.Environment != "" {
		fmt.Fprintf(&b, "Environment: %s\n", rep.Meta.Environment)
	}
	fmt.Fprintf(&b, "Content Types: %d\n", len(rep.Decoded))

	for _, ct := range rep.Decoded {
		b.WriteString("\n")
		fmt.Fprintf(&b, "=== %s (%s) ===\n", ct.Name, ct.ID)
		if ct.Description != "" {
			fmt.Fprintf(&b, "Description: %s\n", ct.Description)
		}
		if ct.DisplayField != "" {
			fmt.Fprintf(&b, "Display Field: %s\n", ct.DisplayField)
		}
		if ct.CreatedAt != "" {
			fmt.Fprintf(&b, "Created: %s\n", ct.CreatedAt)
		}
		if ct.UpdatedAt != "" {
			fmt.Fprintf(&b, "Updated: %s\n", ct.UpdatedAt)
		}

		if len(ct.Fields) == 0 {
			b.WriteString("(no fields)\n")
			continue
		}

		b.WriteString(tableHeader + "\n")
		for _, f := range ct.Fields {
			b.WriteString(renderFieldSafe(f.ID, func() string { return tableRow(f) }))
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

func tableRow(f schema.DecodedField) string {
	name := f.Name
	if f.Default != "" {
		name = fmt.Sprintf("%s (default: %s)", f.Name, f.Default)
	}

	return fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s |",
		f.ID,
		name,
		f.TypeLabel,
		presenceMark(f.Required),
		presenceMark(f.Localized),
		statusMarks(f),
		fieldValidationText(f),
	)
}

// presenceMark renders a boolean flag as a marker or an empty cell.
func presenceMark(set bool) string {
	if set {
		return "*"
	}
	return ""
}

// statusMarks renders the disabled/omitted flags as two independent markers
// joined by a space when both are present.
func statusMarks(f schema.DecodedField) string {
	var marks []string
	if f.Disabled {
		marks = append(marks, "disabled")
	}
	if f.Omitted {
		marks = append(marks, "omitted")
	}
	return strings.Join(marks, " ")
}
