package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/bestiary/internal/page"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [template]",
	Short: "Validate an HTML template",
	Long: `Validate checks that a template contains the ` + page.Marker + ` marker
inside a list element, so that generated animal cards land in the right place.
Without an argument the template from the config file is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var templatePath string
		if len(args) == 1 {
			templatePath = args[0]
		} else {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			templatePath = cfg.TemplatePath
		}

		if _, err := os.Stat(templatePath); os.IsNotExist(err) {
			return fmt.Errorf("template not found: %s", templatePath)
		}

		v := page.NewValidator(templatePath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Template '%s' is valid.\n", templatePath)
		} else {
			fmt.Fprintf(out, "❌ Template '%s' has %d validation errors:\n", templatePath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
