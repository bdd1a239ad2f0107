package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentkit/modelreport/internal/contentful"
)

func TestAudit_CollectsCoverage(t *testing.T) {
	t.Parallel()

	types := []contentful.ContentType{
		{
			Sys: contentful.Sys{ID: "post"},
			Fields: []contentful.Field{
				{
					ID:   "title",
					Type: contentful.TypeSymbol,
					Validations: []contentful.ValidationRule{
						{"unique": true},
						{"size": map[string]any{"max": float64(80)}},
					},
				},
				{
					ID:   "body",
					Type: contentful.TypeRichText,
					Validations: []contentful.ValidationRule{
						{"enabledNodeTypes": []any{"heading-1", "paragraph"}},
						{"enabledMarks": []any{"bold"}},
						{"nodes": map[string]any{"embedded-asset-block": []any{}}},
					},
				},
				{
					ID:    "tags",
					Type:  contentful.TypeArray,
					Items: &contentful.FieldItems{Type: contentful.TypeSymbol},
				},
			},
		},
	}

	audit := Audit(types)

	assert.True(t, audit.Clean())
	assert.Equal(t, []string{"enabledMarks", "enabledNodeTypes", "nodes", "size", "unique"}, audit.RuleKeys)
	assert.Equal(t, []string{"Array", "RichText", "Symbol"}, audit.BaseTypes)
	assert.Equal(t, []string{"embedded-asset-block", "heading-1", "paragraph"}, audit.NodeTypes)
	assert.Equal(t, []string{"bold"}, audit.Marks)
}

func TestAudit_RecordsUnclassifiedRules(t *testing.T) {
	t.Parallel()

	types := []contentful.ContentType{
		{
			Sys: contentful.Sys{ID: "post"},
			Fields: []contentful.Field{
				{
					ID:          "weird",
					Type:        contentful.TypeSymbol,
					Validations: []contentful.ValidationRule{{"fooBar": 1}},
				},
			},
		},
	}

	audit := Audit(types)

	assert.False(t, audit.Clean())
	require.Len(t, audit.Unclassified, 1)
	assert.Equal(t, "post", audit.Unclassified[0].ContentTypeID)
	assert.Equal(t, "weird", audit.Unclassified[0].FieldID)
	assert.Contains(t, audit.Unclassified[0].Raw, "fooBar")
}

func TestAudit_NeverAltersDecodeOutput(t *testing.T) {
	t.Parallel()

	rules := []contentful.ValidationRule{{"fooBar": 1}}
	before := Decode(rules, nil)

	Audit([]contentful.ContentType{{
		Sys:    contentful.Sys{ID: "x"},
		Fields: []contentful.Field{{ID: "f", Type: contentful.TypeSymbol, Validations: rules}},
	}})

	assert.Equal(t, before, Decode(rules, nil))
}

func TestAudit_EmptySchema(t *testing.T) {
	t.Parallel()

	audit := Audit(nil)
	assert.True(t, audit.Clean())
	assert.Empty(t, audit.RuleKeys)
	assert.Empty(t, audit.BaseTypes)
}
