// Package testutil provides content-model fixture builders for tests.
package testutil

import (
	"github.com/contentkit/modelreport/internal/contentful"
)

// ContentType builds a content type with the given fields.
func ContentType(id, name string, fields ...contentful.Field) contentful.ContentType {
	return contentful.ContentType{
		Sys: contentful.Sys{
			ID:        id,
			Type:      "ContentType",
			CreatedAt: "2024-01-01T00:00:00Z",
			UpdatedAt: "2024-06-01T00:00:00Z",
		},
		Name:   name,
		Fields: fields,
	}
}

// TextField builds a required Symbol field.
func TextField(id, name string, rules ...contentful.ValidationRule) contentful.Field {
	return contentful.Field{
		ID:          id,
		Name:        name,
		Type:        contentful.TypeSymbol,
		Required:    true,
		Validations: rules,
	}
}

// EntryLinkField builds a Link field targeting entries.
func EntryLinkField(id, name string, rules ...contentful.ValidationRule) contentful.Field {
	return contentful.Field{
		ID:          id,
		Name:        name,
		Type:        contentful.TypeLink,
		LinkType:    contentful.LinkEntry,
		Validations: rules,
	}
}

// AssetArrayField builds an Array field of asset links.
func AssetArrayField(id, name string) contentful.Field {
	return contentful.Field{
		ID:   id,
		Name: name,
		Type: contentful.TypeArray,
		Items: &contentful.FieldItems{
			Type:     contentful.TypeLink,
			LinkType: contentful.LinkAsset,
		},
	}
}

// SampleSchema is a small model exercising links, arrays, rich text, and an
// empty content type.
func SampleSchema() []contentful.ContentType {
	return []contentful.ContentType{
		ContentType("blogPost", "Blog Post",
			TextField("title", "Title", contentful.ValidationRule{
				"size": map[string]any{"min": float64(5), "max": float64(120)},
			}),
			EntryLinkField("author", "Author", contentful.ValidationRule{
				"linkContentType": []any{"author"},
			}),
			AssetArrayField("gallery", "Gallery"),
			contentful.Field{
				ID:   "body",
				Name: "Body",
				Type: contentful.TypeRichText,
				Validations: []contentful.ValidationRule{
					{"enabledMarks": []any{"bold", "italic"}},
				},
			},
		),
		ContentType("emptyType", "Empty Type"),
	}
}
