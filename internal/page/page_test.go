package page

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/bestiary/internal/animal"
	"github.com/arcanaland/bestiary/internal/render"
)

func TestAssembleReplacesEveryMarker(t *testing.T) {
	template := "<ul>" + Marker + "</ul><ol>" + Marker + "</ol>"

	got := Assemble(template, "<li>x</li>")
	assert.Equal(t, "<ul><li>x</li></ul><ol><li>x</li></ol>", got)
	assert.NotContains(t, got, Marker)
}

func TestAssembleIsLiteral(t *testing.T) {
	template := "{{ .Animals }} $1 " + Marker
	assert.Equal(t, "{{ .Animals }} $1 <b>$0</b>", Assemble(template, "<b>$0</b>"))
}

func TestBuildNotFound(t *testing.T) {
	template := "<body>" + Marker + "</body>"

	assert.Equal(t, "<body>"+NotFound+"</body>", Build(template, nil))
	assert.Equal(t, "<body>"+NotFound+"</body>", Build(template, []animal.Record{}))
}

func TestBuildRecords(t *testing.T) {
	records := []animal.Record{{Name: "Fox"}, {Name: "Wolf"}}
	template := "<ul>" + Marker + "</ul>"

	got := Build(template, records)
	assert.Equal(t, "<ul>"+render.Animals(records)+"</ul>", got)
	assert.NotContains(t, got, NotFound)
}

func TestDefaultTemplateHasOneMarker(t *testing.T) {
	assert.Equal(t, 1, strings.Count(DefaultTemplate, Marker))
}

func TestLoadTemplateMissing(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals.html")

	require.NoError(t, WriteFile(path, "first version, longer"))
	require.NoError(t, WriteFile(path, "second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	text, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, "second", text)
}
