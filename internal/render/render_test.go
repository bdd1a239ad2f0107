package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/contentkit/modelreport/internal/testutil"
)

func testMeta() Meta {
	return Meta{
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		SpaceID:     "space1",
		Environment: "master",
	}
}

func TestForSelector(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		selector string
		want     Format
	}{
		"table":              {selector: "table", want: FormatTable},
		"json":               {selector: "json", want: FormatJSON},
		"csv":                {selector: "csv", want: FormatCSV},
		"markdown":           {selector: "markdown", want: FormatMarkdown},
		"md alias":           {selector: "md", want: FormatMarkdown},
		"case insensitive":   {selector: "JSON", want: FormatJSON},
		"padded":             {selector: " csv ", want: FormatCSV},
		"unknown falls back": {selector: "xml", want: FormatTable},
		"empty falls back":   {selector: "", want: FormatTable},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ForSelector(tt.selector).Format())
		})
	}
}

func TestNewReport_DecodesEverything(t *testing.T) {
	t.Parallel()

	rep := NewReport(testMeta(), testutil.SampleSchema())

	assert.Len(t, rep.Decoded, 2)
	assert.Len(t, rep.ContentTypes, 2)
	assert.Equal(t, "blogPost", rep.Decoded[0].ID)
	assert.Equal(t, "emptyType", rep.Decoded[1].ID)
}

func TestRenderers_DeterministicForFixedInput(t *testing.T) {
	t.Parallel()

	rep := NewReport(testMeta(), testutil.SampleSchema())

	for _, sel := range Selectors() {
		r := ForSelector(sel)
		first, err := r.Render(rep)
		assert.NoError(t, err)
		second, err := r.Render(rep)
		assert.NoError(t, err)
		assert.Equal(t, first, second, "format %s not deterministic", sel)
	}
}
