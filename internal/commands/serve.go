package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/tickmark-dev/tickmark/internal/server"
	"github.com/tickmark-dev/tickmark/internal/verify"
)

func newServeCommand() *cobra.Command {
	var cfgPath string
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the verification engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if listen == "" {
				listen = cfg.Server.Listen
			}

			logger := newLogger()
			verifier := verify.New(
				verify.WithThresholds(cfg.SeverityThresholds()),
				verify.WithLogger(logger),
			)

			opts := []server.Option{server.WithDefaultSymbol(cfg.Currency.DefaultSymbol)}
			if cfg.RunLog.Enabled {
				opts = append(opts, server.WithRunLog(cfg.RunLog.Path))
			}
			svc := server.NewService(verifier, logger, opts...)

			logger.Info("listening", "addr", listen)
			if err := http.ListenAndServe(listen, svc.Router()); err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to tickmark.yaml (defaults apply if omitted)")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")

	return cmd
}
