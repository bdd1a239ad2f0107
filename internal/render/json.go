package render

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/contentkit/modelreport/internal/contentful"
	"github.com/contentkit/modelreport/internal/schema"
)

// JSON renders the report as one JSON document. Unlike the text formats it
// preserves the untransformed validation objects verbatim, so downstream
// consumers can re-derive anything the clause decoder does not surface.
type JSON struct{}

func (JSON) Format() Format { return FormatJSON }
func (JSON) Extension() string { return "json" }

type jsonMeta struct {
	GeneratedAt      string `json:"generatedAt"`
	Space            string `json:"space,omitempty"`
	Environment      string `json:"environment,omitempty"`
	ContentTypeCount int    `json:"contentTypeCount"`
}

// jsonField is the raw field plus the derived type label.
type jsonField struct {
	contentful.Field
	ResolvedType string `json:"resolvedType"`
}

type jsonContentType struct {
	Sys          contentful.Sys `json:"sys"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	DisplayField string         `json:"displayField,omitempty"`
	Fields       []jsonField    `json:"fields"`
}

type jsonReport struct {
	Meta         jsonMeta          `json:"meta"`
	ContentTypes []jsonContentType `json:"contentTypes"`
}

func (JSON) Render(rep Report) (string, error) {
	out := jsonReport{
		Meta: jsonMeta{
			GeneratedAt:      rep.Meta.GeneratedAt.UTC().Format(time.RFC3339),
			Space:            rep.Meta.SpaceID,
			Environment:      rep.Meta.Environment,
			ContentTypeCount: len(rep.ContentTypes),
		},
		ContentTypes: make([]jsonContentType, 0, len(rep.ContentTypes)),
	}

	for _, ct := range rep.ContentTypes {
		jct := jsonContentType{
			Sys:          ct.Sys,
			Name:         ct.Name,
			Description:  ct.Description,
			DisplayField: ct.DisplayField,
			Fields:       make([]jsonField, 0, len(ct.Fields)),
		}
		for _, f := range ct.Fields {
			jct.Fields = append(jct.Fields, jsonField{
				Field:        f,
				ResolvedType: schema.ResolveType(f),
			})
		}
		out.ContentTypes = append(out.ContentTypes, jct)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding JSON report: %w", err)
	}
	return string(data) + "\n", nil
}
