// Command update-icons rewrites every HTML page of the website in place so
// navigation and capability links show their icon.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/thesavant42/iconkit/internal/config"
	"github.com/thesavant42/iconkit/internal/db"
	"github.com/thesavant42/iconkit/internal/inject"
	"github.com/thesavant42/iconkit/internal/models"
	"github.com/thesavant42/iconkit/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		ui.NewPrinter(os.Stderr).PrintError(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:           "update-icons",
		Short:         "Insert icon images into the website's navigation and capability links",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if root != "" {
				cfg.SetSiteDir(root)
			}
			return run(cfg, ui.NewPrinter(cmd.OutOrStdout()))
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "website root directory (default $ICONKIT_SITE_DIR)")
	return cmd
}

// ledgerReporter prints each result and mirrors it into the run ledger
type ledgerReporter struct {
	*ui.Printer
	ledger *db.DB
	runID  int64
	logger *log.Logger
}

func (r *ledgerReporter) Result(res models.FileResult) {
	r.Printer.Result(res)
	if r.ledger == nil {
		return
	}
	if err := r.ledger.RecordFileResult(r.runID, res); err != nil {
		r.logger.Warn("ledger write failed", "err", err)
	}
}

func run(cfg config.Config, printer *ui.Printer) error {
	logger := config.NewLogger(os.Stderr, cfg, "inject")

	iconURLDir, err := cfg.IconURLDir()
	if err != nil {
		return err
	}

	rules, err := inject.DefaultRules()
	if err != nil {
		return err
	}

	files, err := inject.Discover(cfg.SiteDir, logger)
	if err != nil {
		return err
	}
	printer.PrintInfo(fmt.Sprintf("Found %d HTML files to update...", len(files)))

	ledger, runID := openLedger(cfg, logger)
	if ledger != nil {
		defer ledger.Close()
	}

	rep := &ledgerReporter{Printer: printer, ledger: ledger, runID: runID, logger: logger}
	summary := inject.NewInjector(cfg.SiteDir, iconURLDir, rules, logger, rep).RunFiles(files)

	if ledger != nil {
		if err := ledger.FinishRun(runID, summary); err != nil {
			logger.Warn("ledger write failed", "err", err)
		}
	}

	printer.PrintSummary(summary)
	printer.PrintSuccess("Icon implementation completed!")
	return nil
}

// openLedger opens the optional run ledger. Failures disable it.
func openLedger(cfg config.Config, logger *log.Logger) (*db.DB, int64) {
	if cfg.Ledger == "" {
		return nil, 0
	}
	ledger, runID, err := db.OpenRun(cfg.Ledger, db.KindInject, cfg.SiteDir)
	if err != nil {
		logger.Warn("run ledger disabled", "path", cfg.Ledger, "err", err)
		return nil, 0
	}
	return ledger, runID
}
