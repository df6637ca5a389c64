package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vypis-dev/vypis/internal/report"
)

func newChartCommand(logger *log.Logger) *cobra.Command {
	var opts loadOptions
	var output string

	cmd := &cobra.Command{
		Use:   "chart <statement>",
		Short: "Render a pie chart of expenses by category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := opts.load(args[0], logger)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = cfg.ChartPath
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating chart file: %w", err)
			}
			defer f.Close()

			if err := report.RenderExpensePie(f, s.ExpenseSummary(), cfg.Currency); err != nil {
				return err
			}

			logger.Info("chart written", "path", path)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default from config)")
	return cmd
}
