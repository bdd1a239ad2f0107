package render

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentkit/modelreport/internal/testutil"
)

// parsedReport mirrors the JSON document shape for round-tripping in tests.
type parsedReport struct {
	Meta struct {
		GeneratedAt      string `json:"generatedAt"`
		Space            string `json:"space"`
		Environment      string `json:"environment"`
		ContentTypeCount int    `json:"contentTypeCount"`
	} `json:"meta"`
	ContentTypes []struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
		Name   string `json:"name"`
		Fields []struct {
			ID           string           `json:"id"`
			Type         string           `json:"type"`
			ResolvedType string           `json:"resolvedType"`
			Validations  []map[string]any `json:"validations"`
		} `json:"fields"`
	} `json:"contentTypes"`
}

func TestJSON_Render(t *testing.T) {
	t.Parallel()

	out, err := JSON{}.Render(NewReport(testMeta(), testutil.SampleSchema()))
	require.NoError(t, err)

	var parsed parsedReport
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))

	assert.Equal(t, "2024-06-01T12:00:00Z", parsed.Meta.GeneratedAt)
	assert.Equal(t, "space1", parsed.Meta.Space)
	assert.Equal(t, "master", parsed.Meta.Environment)
	assert.Equal(t, 2, parsed.Meta.ContentTypeCount)
	require.Len(t, parsed.ContentTypes, 2)
}

func TestJSON_PreservesRawValidations(t *testing.T) {
	t.Parallel()

	out, err := JSON{}.Render(NewReport(testMeta(), testutil.SampleSchema()))
	require.NoError(t, err)

	var parsed parsedReport
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))

	title := parsed.ContentTypes[0].Fields[0]
	require.Equal(t, "title", title.ID)
	require.Len(t, title.Validations, 1)

	// The raw rule object survives untransformed alongside the derived label.
	size, ok := title.Validations[0]["size"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(5), size["min"])
	assert.Equal(t, float64(120), size["max"])
	assert.Equal(t, "Symbol", title.ResolvedType)
}

func TestJSON_TableEquivalence(t *testing.T) {
	t.Parallel()

	rep := NewReport(testMeta(), testutil.SampleSchema())

	jsonOut, err := JSON{}.Render(rep)
	require.NoError(t, err)
	tableOut, err := Table{}.Render(rep)
	require.NoError(t, err)

	var parsed parsedReport
	require.NoError(t, json.Unmarshal([]byte(jsonOut), &parsed))

	fromJSON := map[[3]string]bool{}
	for _, ct := range parsed.ContentTypes {
		for _, f := range ct.Fields {
			fromJSON[[3]string{ct.Sys.ID, f.ID, f.ResolvedType}] = true
		}
	}

	assert.Equal(t, fromJSON, tableTriples(t, tableOut))
}
