package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/contentkit/modelreport/internal/schema"
)

// Markdown renders the report as a document with a table of contents and one
// subsection per field.
type Markdown struct{}

func (Markdown) Format() Format { return FormatMarkdown }
func (Markdown) Extension() string { return "md" }

func (Markdown) Render(rep Report) (string, error) {
	var b strings.Builder

	b.WriteString("# Content Model\n\n")
	fmt.Fprintf(&b, "Generated %s", rep.Meta.GeneratedAt.UTC().Format(time.RFC3339))
	if rep.Meta.SpaceID != "" {
		fmt.Fprintf(&b, " for space `%s`", rep.Meta.SpaceID)
	}
	if rep.Meta.Environment != "" {
		fmt.Fprintf(&b, ", environment `%s`", rep.Meta.Environment)
	}
	fmt.Fprintf(&b, ". %d content types.\n", len(rep.Decoded))

	// Slugs are not deduplicated: two content types whose names normalize to
	// the same anchor collide, and the last section wins when a reader
	// follows the link.
	b.WriteString("\n## Table of Contents\n\n")
	for _, ct := range rep.Decoded {
		fmt.Fprintf(&b, "- [%s](#%s)\n", linkTextEscaper.Replace(ct.Name), Slug(ct.Name))
	}

	for _, ct := range rep.Decoded {
		b.WriteString("\n")
		fmt.Fprintf(&b, "## %s\n\n", ct.Name)
		fmt.Fprintf(&b, "- **ID:** `%s`\n", ct.ID)
		if ct.Description != "" {
			fmt.Fprintf(&b, "- **Description:** %s\n", ct.Description)
		}
		if ct.DisplayField != "" {
			fmt.Fprintf(&b, "- **Display Field:** `%s`\n", ct.DisplayField)
		}
		if ct.CreatedAt != "" {
			fmt.Fprintf(&b, "- **Created:** %s\n", ct.CreatedAt)
		}
		if ct.UpdatedAt != "" {
			fmt.Fprintf(&b, "- **Updated:** %s\n", ct.UpdatedAt)
		}

		if len(ct.Fields) == 0 {
			b.WriteString("\n_No fields._\n")
			continue
		}

		for _, f := range ct.Fields {
			b.WriteString("\n")
			b.WriteString(renderFieldSafe(f.ID, func() string { return markdownField(f) }))
		}
	}

	return b.String(), nil
}

func markdownField(f schema.DecodedField) string {
	var b strings.Builder

	fmt.Fprintf(&b, "### %s\n\n", f.Name)
	fmt.Fprintf(&b, "- **Field ID:** `%s`\n", f.ID)
	fmt.Fprintf(&b, "- **Type:** %s\n", f.TypeLabel)
	fmt.Fprintf(&b, "- **Required:** %s\n", yesOrNo(f.Required))
	fmt.Fprintf(&b, "- **Localized:** %s\n", yesOrNo(f.Localized))
	if f.Disabled {
		b.WriteString("- **Disabled:** Yes\n")
	}
	if f.Omitted {
		b.WriteString("- **Omitted:** Yes\n")
	}
	if f.Default != "" {
		fmt.Fprintf(&b, "- **Default:** `%s`\n", f.Default)
	}
	fmt.Fprintf(&b, "- **Validations:** %s\n", f.Validations)

	if f.ItemType != "" {
		fmt.Fprintf(&b, "- **Array Item Type:** %s\n", f.ItemType)
		fmt.Fprintf(&b, "- **Array Item Validations:** %s\n", f.ItemValidations)
	}

	return b.String()
}

func yesOrNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// linkTextEscaper escapes the characters that would terminate a Markdown
// link label early.
var linkTextEscaper = strings.NewReplacer(`[`, `\[`, `]`, `\]`)

// Slug derives a heading anchor from a display name: lower-cased, whitespace
// runs collapsed to one hyphen, anything outside [a-z0-9-] removed.
func Slug(name string) string {
	lowered := strings.ToLower(name)
	hyphenated := strings.Join(strings.Fields(lowered), "-")

	var b strings.Builder
	for _, r := range hyphenated {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
