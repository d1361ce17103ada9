package page

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/bestiary/internal/animal"
	"github.com/arcanaland/bestiary/internal/render"
)

// Marker is the placeholder replaced with the rendered animals
const Marker = "__REPLACE_ANIMALS_INFO__"

// NotFound is substituted when there is nothing to render
const NotFound = "<h2>The animal you searched for does not exist.</h2>"

//go:embed animals_template.html
var DefaultTemplate string

// Assemble replaces every occurrence of Marker in template with fragment.
// This is a literal substring replace, not template evaluation.
func Assemble(template, fragment string) string {
	return strings.ReplaceAll(template, Marker, fragment)
}

// Build renders records into template, falling back to NotFound when the
// rendered fragment is empty.
func Build(template string, records []animal.Record) string {
	fragment := render.Animals(records)
	if fragment == "" {
		fragment = NotFound
	}
	return Assemble(template, fragment)
}

// LoadTemplate reads a template file
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading template: %v", err)
	}
	return string(data), nil
}

// WriteFile writes the generated page, overwriting any existing file
func WriteFile(path, contents string) error {
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return fmt.Errorf("error writing page: %v", err)
	}
	return nil
}
