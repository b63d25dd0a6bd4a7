package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/rustyeddy/swingtrader/backtest"
	"github.com/rustyeddy/swingtrader/catalog"
	"github.com/rustyeddy/swingtrader/chart"
	"github.com/rustyeddy/swingtrader/config"
	"github.com/rustyeddy/swingtrader/journal"
	"github.com/rustyeddy/swingtrader/pkg/id"
	"github.com/rustyeddy/swingtrader/portfolio"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <small|large>",
	Short: "Run the simulation in the given mode",
	Long: `Load every instrument in the data directory and replay the whole date
range, trading in the given mode:

  small  intraday trades need a spread of at least 100, no cash reserve
  large  intraday trades need a spread of at least 1, keep 10% after swing buys

Writes <mode>.txt and <mode>_valuation.txt into the output directory.

Example:
  swingtrader run large -f swingtrader.yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.ModeNames(),
	RunE:      runRun,
}

var (
	runQuiet bool
	runWithChart bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "do not log every transaction")
	runCmd.Flags().BoolVar(&runWithChart, "chart", false, "also render <mode>_valuation.png")
}

func runRun(cmd *cobra.Command, args []string) error {
	start := time.Now()

	mode := strings.ToLower(args[0])
	strategy, err := config.ForMode(mode)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}

	minProfit := cfg.Profit()
	cat, err := catalog.Load(cfg.DataDir, catalog.Options{MinProfit: &minProfit, Logger: stdout})
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	fmt.Printf("Loaded %d instrument(s) from %s, %s to %s\n",
		cat.Len(), cfg.DataDir, cat.Start().Format("2006-01-02"), cat.End().Format("2006-01-02"))

	runID := id.New()
	engine := backtest.NewEngine(cat, portfolio.NewAccount(cfg.Balance()), strategy)
	if !runQuiet {
		engine.Subscribe(backtest.LogObserver{Logger: stdout})
	}

	text := journal.NewText(
		filepath.Join(cfg.OutputDir, mode+".txt"),
		filepath.Join(cfg.OutputDir, mode+"_valuation.txt"),
	)
	engine.Subscribe(text)

	var db *journal.SQLiteJournal
	if cfg.Journal.Type == "sqlite" {
		db, err = journal.NewSQLite(cfg.Journal.DBPath, runID)
		if err != nil {
			return fmt.Errorf("create journal: %w", err)
		}
		defer db.Close()
		engine.Subscribe(db)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Println("\nMaking money...")
	res, runErr := engine.Run(ctx)

	// Whatever completed is still written out.
	if err := text.Close(); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	if runErr != nil {
		return runErr
	}

	sum := journal.Summarize(runID, mode, cfg.DataDir, cat.Len(), strategy, res)
	if runWithChart {
		png, err := chart.RenderValuation(engine.History().Entries(), title(mode), chart.DefaultSince)
		if err != nil {
			return fmt.Errorf("chart: %w", err)
		}
		sum.ValuationPNG = filepath.Join(cfg.OutputDir, mode+"_valuation.png")
		if err := os.WriteFile(sum.ValuationPNG, png, 0644); err != nil {
			return fmt.Errorf("chart: %w", err)
		}
	}
	if db != nil {
		if err := db.RecordRun(sum); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
	}
	if cfg.Journal.Org {
		sum.OrgPath = filepath.Join(cfg.OutputDir, mode+".org")
		if err := sum.WriteOrg(); err != nil {
			return fmt.Errorf("write org: %w", err)
		}
	}

	fmt.Printf("\nAfter %d transaction(s), your profit is %s dollars.\n", res.Transactions, res.EndBalance.String())
	fmt.Printf("Run ID: %s\n", runID)
	fmt.Printf("Total time to run script: %s\n", elapsed(time.Since(start)))
	return nil
}

// title is the chart subtitle, "Large Sequence" for mode large.
func title(mode string) string {
	if mode == "" {
		return ""
	}
	return strings.ToUpper(mode[:1]) + mode[1:] + " Sequence"
}

// elapsed formats d as HH:MM:SS.
func elapsed(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}
