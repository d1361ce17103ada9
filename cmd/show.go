package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/bestiary/internal/animal"
)

var showCmd = &cobra.Command{
	Use:   "show [animal_name]",
	Short: "Display the animals matching a name in the terminal",
	Long: `Show fetches animals by name and prints everything the API knows about them,
including taxonomy and characteristics the HTML page leaves out.

Examples:
  bestiary show fox
  bestiary show "red fox" --all`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		records, err := newFetcher(cfg).FetchAnimals(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No animals found for %q.\n", args[0])
			return nil
		}

		all, _ := cmd.Flags().GetBool("all")
		width := terminalWidth()
		for _, r := range records {
			displayAnimal(cmd.OutOrStdout(), r, width, all)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolP("all", "a", false, "Also list characteristics that are not rendered into the page")
}

// terminalWidth returns the width of stdout, or 80 if it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// showFields are the rendered characteristics, in page order
var showFields = []struct {
	label string
	key   string
}{
	{"Diet", animal.KeyDiet},
	{"Type", animal.KeyType},
	{"Skin-type", animal.KeySkinType},
	{"Lifespan", animal.KeyLifespan},
	{"Top Speed", animal.KeyTopSpeed},
	{"Slogan", animal.KeySlogan},
}

// displayAnimal prints one record with labels aligned in a column
func displayAnimal(out io.Writer, r animal.Record, width int, all bool) {
	const labelWidth = 12
	textWidth := width - labelWidth - 4
	if textWidth < 20 {
		textWidth = 20
	}

	line := func(label, value string) {
		for i, part := range wrapText(value, textWidth) {
			if i == 0 {
				fmt.Fprintf(out, "  %s%s\n", colorize.CyanString("%-*s", labelWidth, label+":"), part)
			} else {
				fmt.Fprintf(out, "  %s%s\n", strings.Repeat(" ", labelWidth), part)
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", colorize.HiWhiteString("%s", r.Name))

	if len(r.Taxonomy) > 0 {
		ranks := []string{"kingdom", "phylum", "class", "order", "family", "genus", "scientific_name"}
		var parts []string
		for _, rank := range ranks {
			if v, ok := r.Taxonomy[rank]; ok {
				parts = append(parts, v)
			}
		}
		if len(parts) > 0 {
			line("Taxonomy", strings.Join(parts, " › "))
		}
	}

	if len(r.Locations) > 0 {
		line("Locations", strings.Join(r.Locations, ", "))
	}

	for _, f := range showFields {
		if v, ok := r.Characteristics.Get(f.key); ok {
			line(f.label, v)
		}
	}

	if all && len(r.Characteristics.Extra) > 0 {
		keys := make([]string, 0, len(r.Characteristics.Extra))
		for k := range r.Characteristics.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			line(k, r.Characteristics.Extra[k])
		}
	}
}
