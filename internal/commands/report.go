package commands

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vypis-dev/vypis/internal/config"
	"github.com/vypis-dev/vypis/internal/report"
	"github.com/vypis-dev/vypis/internal/statement"
)

// loadOptions are the flags shared by the statement report commands.
type loadOptions struct {
	configPath string
	rulesPath  string
}

func (o *loadOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", config.FileName, "path to vypis.yaml")
	cmd.Flags().StringVar(&o.rulesPath, "rules", "", "path to the rules JSON (default from config)")
}

// load resolves config and rules paths and builds the statement table.
func (o *loadOptions) load(statementPath string, logger *log.Logger) (*statement.Statement, *config.Config, error) {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	rulesPath := o.rulesPath
	if rulesPath == "" {
		rulesPath = cfg.RulesPath
	}

	s, err := statement.Load(statementPath, rulesPath, logger)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

func newUnmatchedCommand(logger *log.Logger) *cobra.Command {
	var opts loadOptions

	cmd := &cobra.Command{
		Use:   "unmatched <statement>",
		Short: "List rows no rule matched, so new rules can be authored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := opts.load(args[0], logger)
			if err != nil {
				return err
			}
			return report.WriteUnmatched(cmd.OutOrStdout(), s.UnmatchedRows())
		},
	}

	opts.register(cmd)
	return cmd
}

func newSummaryCommand(logger *log.Logger) *cobra.Command {
	var opts loadOptions

	cmd := &cobra.Command{
		Use:   "summary <statement>",
		Short: "Print per-category expense totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := opts.load(args[0], logger)
			if err != nil {
				return err
			}
			return report.WriteSummary(cmd.OutOrStdout(), s.ExpenseSummary(), cfg.Currency)
		},
	}

	opts.register(cmd)
	return cmd
}
