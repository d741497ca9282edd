package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tickmark-dev/tickmark/internal/config"
	"github.com/tickmark-dev/tickmark/internal/extract"
	"github.com/tickmark-dev/tickmark/internal/report"
	"github.com/tickmark-dev/tickmark/internal/runlog"
	"github.com/tickmark-dev/tickmark/internal/verify"
)

func newVerifyCommand() *cobra.Command {
	var cfgPath string
	var input string
	var output string
	var pretty bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an extracted financial statement document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd.Context(), cfgPath, input, output, pretty, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "extraction result JSON file (required)")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to tickmark.yaml (defaults apply if omitted)")
	cmd.Flags().StringVar(&output, "output", "", "write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the report JSON")

	return cmd
}

func runVerify(ctx context.Context, cfgPath, input, output string, pretty bool, stdout io.Writer) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	logger := newLogger()

	registry := extract.DefaultRegistry()
	producer := registry.Get(cfg.Extraction.Producer)
	if producer == nil {
		return fmt.Errorf("unknown extraction producer %q (have: %s)",
			cfg.Extraction.Producer, strings.Join(registry.Names(), ", "))
	}

	doc, err := producer.Extract(ctx, input)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", input, err)
	}
	if doc.Currency == "" {
		doc.Currency = cfg.Currency.DefaultSymbol
	}

	verifier := verify.New(
		verify.WithThresholds(cfg.SeverityThresholds()),
		verify.WithLogger(logger),
	)
	res := verifier.Run(ctx, doc)

	if cfg.RunLog.Enabled {
		if err := runlog.Append(cfg.RunLog.Path, runlog.FromResult(time.Now().UTC(), res)); err != nil {
			logger.Warn("run log append failed", "error", err)
		}
	}

	rep := report.Build(res)
	var data []byte
	if pretty {
		data, err = json.MarshalIndent(rep, "", "  ")
	} else {
		data, err = json.Marshal(rep)
	}
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if output != "" {
		if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		return nil
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
