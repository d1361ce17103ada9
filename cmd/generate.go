package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/bestiary/internal/animal"
	"github.com/arcanaland/bestiary/internal/page"
)

// animalFetcher is satisfied by *fetch.Client
type animalFetcher interface {
	FetchAnimals(ctx context.Context, name string) ([]animal.Record, error)
}

type generateOptions struct {
	Name         string
	FilterKey    string
	Filter       string
	FilterSet    bool
	TemplatePath string
	OutputPath   string
	Interactive  bool
}

var generateCmd = &cobra.Command{
	Use:   "generate [animal_name]",
	Short: "Fetch animals and write them into the HTML template",
	Long: `Generate looks up animals by name, shows the values the filter characteristic
takes, optionally filters by one of them and writes the page.

When no name is given it is asked for interactively. When --filter is not set
and stdin is a terminal the filter value is asked for as well. An empty or
unknown filter value means no filtering.

Examples:
  bestiary generate fox
  bestiary generate fox --filter fur
  bestiary generate bear --by diet --filter omnivore --output bears.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		opts := generateOptions{
			FilterKey:    cfg.FilterKey,
			TemplatePath: cfg.TemplatePath,
			OutputPath:   cfg.OutputPath,
			Interactive:  stdinIsTerminal(),
		}
		if len(args) == 1 {
			opts.Name = args[0]
		}
		if by, _ := cmd.Flags().GetString("by"); by != "" {
			opts.FilterKey = by
		}
		if tpl, _ := cmd.Flags().GetString("template"); tpl != "" {
			opts.TemplatePath = tpl
		}
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			opts.OutputPath = out
		}
		if cmd.Flags().Changed("filter") {
			opts.Filter, _ = cmd.Flags().GetString("filter")
			opts.FilterSet = true
		}

		p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		return generate(cmd.Context(), newFetcher(cfg), p, opts)
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("by", "", "Characteristic to filter by (default from config, skin_type)")
	generateCmd.Flags().StringP("filter", "f", "", "Value of the characteristic to keep")
	generateCmd.Flags().StringP("template", "t", "", "Template file containing "+page.Marker)
	generateCmd.Flags().StringP("output", "o", "", "Output HTML file")
}

func generate(ctx context.Context, f animalFetcher, p *prompter, opts generateOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	name := opts.Name
	if name == "" {
		if !opts.Interactive {
			return fmt.Errorf("an animal name is required")
		}
		answer, err := p.Ask("Enter a name of an animal: ")
		if err != nil {
			return fmt.Errorf("error reading animal name: %v", err)
		}
		name = answer
	}

	records, err := f.FetchAnimals(ctx, name)
	if err != nil {
		return err
	}

	facets := animal.Facets(records, opts.FilterKey)
	printFacets(p.out, opts.FilterKey, facets)

	input := opts.Filter
	if !opts.FilterSet && opts.Interactive {
		input, err = p.Ask(fmt.Sprintf("Please enter %s to filter (if no or wrong, no filtering): ", opts.FilterKey))
		if err != nil {
			return fmt.Errorf("error reading filter: %v", err)
		}
	}

	if value, ok := animal.ChooseFacet(facets, input); ok {
		records = animal.Filter(records, opts.FilterKey, value)
		fmt.Fprintf(p.out, "Filtering animals with %s: %s\n", opts.FilterKey, value)
	} else {
		fmt.Fprintf(p.out, "No filtering applied or invalid %s entered.\n", opts.FilterKey)
	}

	template, err := page.LoadTemplate(opts.TemplatePath)
	if err != nil {
		return err
	}

	if err := page.WriteFile(opts.OutputPath, page.Build(template, records)); err != nil {
		return err
	}

	logger.Debug("page written",
		zap.String("path", opts.OutputPath),
		zap.Int("animals", len(records)))
	fmt.Fprintf(p.out, "Generated '%s' successfully.\n", opts.OutputPath)
	return nil
}

func printFacets(out io.Writer, key string, facets animal.FacetSet) {
	values := facets.Sorted()
	label := colorize.New(colorize.FgCyan).Sprintf("Available %s values:", key)
	if len(values) == 0 {
		fmt.Fprintf(out, "%s none\n", label)
		return
	}
	fmt.Fprintf(out, "%s %s\n", label, strings.Join(values, ", "))
}
