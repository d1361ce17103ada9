package cmd

import (
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/bestiary/internal/page"
	"github.com/arcanaland/bestiary/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve generated pages over HTTP",
	Long: `Serve starts a preview server. Pages are built on each request:

  GET /animals?name=fox
  GET /animals?name=fox&filter=fur
  GET /animals?name=bear&by=diet&filter=omnivore`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		templatePath := cfg.TemplatePath
		if tpl, _ := cmd.Flags().GetString("template"); tpl != "" {
			templatePath = tpl
		}
		template, err := page.LoadTemplate(templatePath)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		srv := &http.Server{
			Addr: addr,
			Handler: server.NewRouter(server.Options{
				Fetcher:   newFetcher(cfg),
				Template:  template,
				FilterKey: cfg.FilterKey,
				Logger:    logger,
			}),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: cfg.Timeout() + 5*time.Second,
		}

		logger.Info("starting server", zap.String("addr", addr), zap.String("template", templatePath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().StringP("template", "t", "", "Template file containing "+page.Marker)
}
