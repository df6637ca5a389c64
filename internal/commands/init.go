package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vypis-dev/vypis/internal/config"
	"github.com/vypis-dev/vypis/internal/rules"
)

func newInitCommand(logger *log.Logger) *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Scaffold a config file and starter rules",
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

			return runInit(absDir, currency, logger)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "Kč", "currency label used in reports")

	return cmd
}

func runInit(dir, currency string, logger *log.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	cfg := config.Default()
	cfg.Currency = currency
	if err := config.Save(configPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	rulesPath := filepath.Join(dir, cfg.RulesPath)
	if err := rules.Save(rulesPath, rules.Default()); err != nil {
		return err
	}

	logger.Info("initialized", "dir", dir, "rules", len(rules.Default()))
	return nil
}
