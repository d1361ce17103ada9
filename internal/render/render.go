package render

import (
	"html"
	"strings"

	"github.com/arcanaland/bestiary/internal/animal"
)

// detail is one labelled line in an animal card
type detail struct {
	label string
	value func(r animal.Record) (string, bool)
}

func characteristic(key string) func(r animal.Record) (string, bool) {
	return func(r animal.Record) (string, bool) {
		return r.Characteristics.Get(key)
	}
}

// details lists the card lines in display order
var details = []detail{
	{"Diet", characteristic(animal.KeyDiet)},
	{"Location", animal.Record.FirstLocation},
	{"Type", characteristic(animal.KeyType)},
	{"Skin-type", characteristic(animal.KeySkinType)},
	{"Lifespan", characteristic(animal.KeyLifespan)},
	{"Top Speed", characteristic(animal.KeyTopSpeed)},
	{"Slogan", characteristic(animal.KeySlogan)},
}

// Animal renders one record as a cards__item list entry
func Animal(r animal.Record) string {
	var b strings.Builder
	writeAnimal(&b, r)
	return b.String()
}

// Animals renders records in order with no separator.
// An empty slice yields an empty string.
func Animals(records []animal.Record) string {
	var b strings.Builder
	for _, r := range records {
		writeAnimal(&b, r)
	}
	return b.String()
}

func writeAnimal(b *strings.Builder, r animal.Record) {
	b.WriteString("<li class=\"cards__item\">\n")
	b.WriteString("<div class=\"card__title\">")
	b.WriteString(html.EscapeString(r.Name))
	b.WriteString("</div>\n")
	b.WriteString("<div class=\"card__text\">\n<ul>\n")

	for _, d := range details {
		v, ok := d.value(r)
		if !ok {
			continue
		}
		b.WriteString("<li><strong>")
		b.WriteString(d.label)
		b.WriteString(":</strong> ")
		b.WriteString(html.EscapeString(v))
		b.WriteString("</li>\n")
	}

	b.WriteString("</ul>\n</div>\n</li>\n")
}
