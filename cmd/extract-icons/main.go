// Command extract-icons slices the generated icon grid images into
// individual PNG files under the website's icon directory.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/thesavant42/iconkit/internal/config"
	"github.com/thesavant42/iconkit/internal/db"
	"github.com/thesavant42/iconkit/internal/icons"
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
	var outDir string

	cmd := &cobra.Command{
		Use:           "extract-icons",
		Short:         "Slice the cybersecurity and navigation grid images into icon files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.IconDir = outDir
			}
			return run(cfg, ui.NewPrinter(cmd.OutOrStdout()))
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default $ICONKIT_ICON_DIR)")
	return cmd
}

func run(cfg config.Config, printer *ui.Printer) error {
	logger := config.NewLogger(os.Stderr, cfg, "extract")

	ledger, runID := openLedger(cfg, logger)
	if ledger != nil {
		defer ledger.Close()
	}

	ex := icons.NewExtractor(cfg.IconDir, logger)
	ex.Notify = func(r models.ExtractResult) {
		printer.PrintExtracted(r)
		if ledger != nil {
			if err := ledger.RecordOutcome(runID, r.Path, "extracted", r.Grid); err != nil {
				logger.Warn("ledger write failed", "err", err)
			}
		}
	}

	results, err := ex.Extract(icons.DefaultGrids(cfg.CyberGrid, cfg.NavGrid))
	if ledger != nil {
		if ferr := ledger.FinishExtractRun(runID, len(results)); ferr != nil {
			logger.Warn("ledger write failed", "err", ferr)
		}
	}
	if err != nil {
		return err
	}

	printer.PrintSuccess("Icon extraction completed!")
	return nil
}

// openLedger opens the optional run ledger. Failures disable it.
func openLedger(cfg config.Config, logger *log.Logger) (*db.DB, int64) {
	if cfg.Ledger == "" {
		return nil, 0
	}
	ledger, runID, err := db.OpenRun(cfg.Ledger, db.KindExtract, cfg.IconDir)
	if err != nil {
		logger.Warn("run ledger disabled", "path", cfg.Ledger, "err", err)
		return nil, 0
	}
	return ledger, runID
}
