// Package cli builds the traindesk command tree.
//
// Command structure:
//
//	traindesk                 # root command
//	├── run                   # one interactive console session
//	├── status                # record store summary, non-interactive
//	├── seed                  # write record stores from a YAML fixture
//	│   └── --file, -f
//	├── --version
//	└── --help
//
// Configuration comes from the environment (FILE_PATH, PASSWORD) with an
// optional YAML file; see internal/config.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AshishBinoy/traindesk/internal/config"
	"github.com/AshishBinoy/traindesk/internal/metrics"
	"github.com/AshishBinoy/traindesk/internal/store"
)

// BuildCLI assembles the root command.
func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "traindesk",
		Short: "traindesk: internal training-enrollment console",
		Long: `traindesk is the company-internal training enrollment console:
employees browse trainings matching their skills and apply, managers
review pending course requests and approve or reject them.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(buildRunCommand())
	rootCmd.AddCommand(buildStatusCommand())
	rootCmd.AddCommand(buildSeedCommand())

	return rootCmd
}

func buildRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start an interactive enrollment session",
		Long:  "Log in as an employee (emp@...) to apply for a training, or as a manager (mgr@...) to review pending course requests.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession()
		},
	}
}

func runSession() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	collector := metrics.NewCollector()
	if cfg.Metrics.Enabled {
		go func() {
			logger.Info("metrics server starting", zap.Int("port", cfg.Metrics.Port))
			if err := metrics.StartServer(cfg.Metrics.Port); err != nil {
				logger.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	session := NewSession(cfg, logger, collector, os.Stdin, os.Stdout)
	return session.Run()
}

func buildStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show record store status",
		Long:  "Display the configured store locations and per-store record counts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return showStatus(cmd.OutOrStdout(), cfg)
		},
	}
}

func showStatus(out io.Writer, cfg *config.Config) error {
	fmt.Fprintln(out, "traindesk status")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "  base directory:  %s\n", cfg.BaseDir)
	fmt.Fprintf(out, "  employees file:  %s\n", cfg.EmployeesPath())
	fmt.Fprintf(out, "  trainings file:  %s\n", cfg.TrainingsPath())
	fmt.Fprintf(out, "  requests file:   %s\n", cfg.RequestsPath())
	fmt.Fprintln(out)

	employees, empErr := store.LoadEmployees(cfg.EmployeesPath())
	trainings, trErr := store.LoadTrainings(cfg.TrainingsPath())
	ledger, ledErr := store.LoadLedger(cfg.RequestsPath())

	fmt.Fprintln(out, "Stores:")
	fmt.Fprintf(out, "  employees:  %s\n", countOrError(employees.Len(), empErr))
	fmt.Fprintf(out, "  trainings:  %s\n", countOrError(trainings.Len(), trErr))
	fmt.Fprintf(out, "  requests:   %s\n", countOrError(ledger.Len(), ledErr))

	if ledErr == nil {
		var pending, approved, rejected int
		for _, req := range ledger.All() {
			switch {
			case req.Status.IsPending():
				pending++
			case req.Status.IsRejected():
				rejected++
			default:
				approved++
			}
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Requests:")
		fmt.Fprintf(out, "  pending:   %d\n", pending)
		fmt.Fprintf(out, "  approved:  %d\n", approved)
		fmt.Fprintf(out, "  rejected:  %d\n", rejected)
	}

	return nil
}

func countOrError(n int, err error) string {
	if err != nil {
		return "unreadable"
	}
	return fmt.Sprintf("%d records", n)
}
