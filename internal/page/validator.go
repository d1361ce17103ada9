package page

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	TemplatePath string
	Results      ValidationResults
}

func NewValidator(templatePath string) *Validator {
	return &Validator{
		TemplatePath: templatePath,
		Results:      ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.TemplatePath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("template not found: %s", v.TemplatePath)
	}

	text, err := LoadTemplate(v.TemplatePath)
	if err != nil {
		return v.Results, err
	}

	v.validateMarker(text)
	if err := v.validateStructure(text); err != nil {
		return v.Results, err
	}

	return v.Results, nil
}

// validateMarker checks how often the placeholder occurs
func (v *Validator) validateMarker(text string) {
	switch n := strings.Count(text, Marker); {
	case n == 0:
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("marker %s not found in template", Marker))
	case n > 1:
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("marker %s occurs %d times; every occurrence will be replaced", Marker, n))
	}
}

// validateStructure parses the template as HTML and checks where the
// placeholder sits. Rendered animals are <li> items, so it belongs in a list.
func (v *Validator) validateStructure(text string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return fmt.Errorf("error parsing template: %v", err)
	}

	if doc.Find("title").Length() == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "template has no <title> element")
	}

	if !strings.Contains(text, Marker) {
		return nil
	}

	lists := doc.Find("ul, ol").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), Marker)
	})
	if lists.Length() == 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("marker %s is not inside a <ul> or <ol> element", Marker))
	}

	return nil
}
