package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/contentkit/modelreport/internal/contentful"
)

func TestResolveType(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		field contentful.Field
		want  string
	}{
		"symbol passes through": {
			field: contentful.Field{Type: contentful.TypeSymbol},
			want:  "Symbol",
		},
		"rich text passes through": {
			field: contentful.Field{Type: contentful.TypeRichText},
			want:  "RichText",
		},
		"entry link with targets": {
			field: contentful.Field{
				Type:     contentful.TypeLink,
				LinkType: contentful.LinkEntry,
				Validations: []contentful.ValidationRule{
					{"linkContentType": []any{"post", "page"}},
				},
			},
			want: "Reference to [post, page]",
		},
		"entry link without targets": {
			field: contentful.Field{Type: contentful.TypeLink, LinkType: contentful.LinkEntry},
			want:  "Reference to Entry",
		},
		"asset link": {
			field: contentful.Field{Type: contentful.TypeLink, LinkType: contentful.LinkAsset},
			want:  "Reference to Asset",
		},
		"other link type": {
			field: contentful.Field{Type: contentful.TypeLink, LinkType: "Space"},
			want:  "Link to Space",
		},
		"link without linkType degrades": {
			field: contentful.Field{Type: contentful.TypeLink},
			want:  "Link",
		},
		"array of symbols": {
			field: contentful.Field{
				Type:  contentful.TypeArray,
				Items: &contentful.FieldItems{Type: contentful.TypeSymbol},
			},
			want: "Array<Symbol>",
		},
		"array of asset links": {
			field: contentful.Field{
				Type:  contentful.TypeArray,
				Items: &contentful.FieldItems{Type: contentful.TypeLink, LinkType: contentful.LinkAsset},
			},
			want: "Array<Reference to Asset>",
		},
		"array of entry links with targets": {
			field: contentful.Field{
				Type: contentful.TypeArray,
				Items: &contentful.FieldItems{
					Type:     contentful.TypeLink,
					LinkType: contentful.LinkEntry,
					Validations: []contentful.ValidationRule{
						{"linkContentType": []any{"tag"}},
					},
				},
			},
			want: "Array<Reference to [tag]>",
		},
		"array of other links": {
			field: contentful.Field{
				Type:  contentful.TypeArray,
				Items: &contentful.FieldItems{Type: contentful.TypeLink, LinkType: "Space"},
			},
			want: "Array<Link to Space>",
		},
		"array without items degrades": {
			field: contentful.Field{Type: contentful.TypeArray},
			want:  "Array",
		},
		"missing base type degrades": {
			field: contentful.Field{},
			want:  "Unknown",
		},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveType(tt.field))
		})
	}
}

func TestResolveType_DoesNotMutate(t *testing.T) {
	t.Parallel()

	field := contentful.Field{
		Type:     contentful.TypeLink,
		LinkType: contentful.LinkEntry,
		Validations: []contentful.ValidationRule{
			{"linkContentType": []any{"post"}},
		},
	}

	first := ResolveType(field)
	second := ResolveType(field)

	assert.Equal(t, first, second)
	assert.Equal(t, []any{"post"}, field.Validations[0]["linkContentType"])
}
