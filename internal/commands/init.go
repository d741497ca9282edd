package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tickmark-dev/tickmark/internal/config"
)

func newInitCommand() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default tickmark.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, currency, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "RM", "default currency symbol")

	return cmd
}

func runInit(dir, currency string, stdout io.Writer) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	cfgPath := filepath.Join(dir, "tickmark.yaml")
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default()
	cfg.Currency.DefaultSymbol = currency
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Initialized %s\n", cfgPath)
	return nil
}
