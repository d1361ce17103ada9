package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arcanaland/bestiary/internal/config"
	"github.com/arcanaland/bestiary/internal/fetch"
)

var (
	configPath string
	verbose    bool

	logger = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bestiary",
	Short: "Generate an HTML page about animals",
	Long: `Bestiary looks up animals by name through the API Ninjas animals endpoint,
optionally filters them by a characteristic such as skin type, and writes the
result into an HTML template.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default $XDG_CONFIG_HOME/bestiary/config.toml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig reads the --config file if given, otherwise the XDG config
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.LoadConfig()
}

func newFetcher(cfg *config.Config) *fetch.Client {
	return fetch.NewClient(fetch.Options{
		BaseURL: cfg.APIURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout(),
	}, logger)
}
