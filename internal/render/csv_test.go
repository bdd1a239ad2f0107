package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentkit/modelreport/internal/contentful"
	"github.com/contentkit/modelreport/internal/testutil"
)

func csvLines(t *testing.T, out string) []string {
	t.Helper()
	require.True(t, strings.HasSuffix(out, "\n"))
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestCSV_OneRowPerField(t *testing.T) {
	t.Parallel()

	out, err := CSV{}.Render(NewReport(testMeta(), testutil.SampleSchema()))
	require.NoError(t, err)

	lines := csvLines(t, out)

	// Header + four blogPost fields + one placeholder for the empty type.
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], `"Content Type ID","Content Type Name","Description","Display Field","Created","Updated"`))
	assert.True(t, strings.HasPrefix(lines[5], `"emptyType","Empty Type","","","2024-01-01T00:00:00Z","2024-06-01T00:00:00Z","","(no fields)"`))
}

func TestCSV_CarriesContentTypeMetadata(t *testing.T) {
	t.Parallel()

	ct := contentful.ContentType{
		Sys: contentful.Sys{
			ID:        "landing",
			CreatedAt: "2024-01-01T00:00:00Z",
			UpdatedAt: "2024-03-01T00:00:00Z",
		},
		Name:         "Landing",
		Description:  "Landing page description",
		DisplayField: "title",
		Fields: []contentful.Field{
			{ID: "title", Name: "Title", Type: contentful.TypeSymbol},
		},
	}

	out, err := CSV{}.Render(NewReport(testMeta(), []contentful.ContentType{ct}))
	require.NoError(t, err)

	lines := csvLines(t, out)
	require.Len(t, lines, 2)

	// The content-type facts the other formats show in their section
	// headers must be recoverable from each field row too.
	for _, cell := range []string{
		`"Landing page description"`,
		`"title"`,
		`"2024-01-01T00:00:00Z"`,
		`"2024-03-01T00:00:00Z"`,
	} {
		assert.Contains(t, lines[1], cell)
	}
}

func TestCSV_ZeroFieldTypeKeepsItsRow(t *testing.T) {
	t.Parallel()

	types := []contentful.ContentType{
		testutil.ContentType("a", "A", testutil.TextField("f1", "F1")),
		testutil.ContentType("b", "B"),
		testutil.ContentType("c", "C", testutil.TextField("f2", "F2"), testutil.TextField("f3", "F3")),
	}

	out, err := CSV{}.Render(NewReport(testMeta(), types))
	require.NoError(t, err)

	lines := csvLines(t, out)
	require.Len(t, lines, 5)

	counts := map[string]int{}
	for _, line := range lines[1:] {
		id := strings.Trim(strings.SplitN(line, ",", 2)[0], `"`)
		counts[id]++
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 2}, counts)
}

func TestCSV_QuotingAndFlags(t *testing.T) {
	t.Parallel()

	ct := testutil.ContentType("ct", `Say "Hello"`,
		contentful.Field{
			ID:        "f",
			Name:      `Field, with "quotes"`,
			Type:      contentful.TypeSymbol,
			Required:  true,
			Localized: false,
		},
	)

	out, err := CSV{}.Render(NewReport(testMeta(), []contentful.ContentType{ct}))
	require.NoError(t, err)

	lines := csvLines(t, out)
	require.Len(t, lines, 2)

	row := lines[1]
	assert.Contains(t, row, `"Say ""Hello"""`)
	assert.Contains(t, row, `"Field, with ""quotes"""`)
	assert.Contains(t, row, `YES,NO,NO,NO`)
	assert.NotContains(t, row, "*")
}
