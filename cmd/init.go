package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/bestiary/internal/config"
	"github.com/arcanaland/bestiary/internal/page"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file and a default template",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}
		if configPath != "" {
			fmt.Fprintln(out, "Using config file:", configPath)
		} else {
			fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		}

		if _, err := os.Stat(cfg.TemplatePath); err == nil {
			fmt.Fprintln(out, "Template already exists at:", cfg.TemplatePath)
			return nil
		}

		if err := page.WriteFile(cfg.TemplatePath, page.DefaultTemplate); err != nil {
			return err
		}
		fmt.Fprintln(out, "Template written to:", cfg.TemplatePath)

		if cfg.APIKey == "" {
			fmt.Fprintf(out, "Set api_key in the config file or the %s environment variable before generating.\n", config.APIKeyEnv)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
