package cmd

import (
	"fmt"

	"github.com/rustyeddy/swingtrader/backtest"
	"github.com/rustyeddy/swingtrader/journal"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query runs stored in the SQLite journal",
	Long: `Query and display runs recorded with journal.type: sqlite.

Subcommands:
  runs          - List recorded runs
  show <run-id> - Print the org summary of a run
  tx <run-id>   - List the transactions of a run

Examples:
  swingtrader journal runs -d runs.db
  swingtrader journal tx 01J0000000000000000000000 -d runs.db`,
}

var journalRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	RunE:  runJournalRuns,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print the summary of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalTxCmd = &cobra.Command{
	Use:   "tx <run-id>",
	Short: "List the transactions of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalTx,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalRunsCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalTxCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./swingtrader.sqlite", "path to SQLite journal DB")
}

func openJournal(runID string) (*journal.SQLiteJournal, error) {
	j, err := journal.NewSQLite(journalDBPath, runID)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalRuns(cmd *cobra.Command, args []string) error {
	j, err := openJournal("-")
	if err != nil {
		return err
	}
	defer j.Close()

	runs, err := j.ListRuns()
	if err != nil {
		return fmt.Errorf("query runs: %w", err)
	}
	for _, r := range runs {
		fmt.Printf("%s  %-5s  %s..%s  %4d tx  balance %s\n",
			r.RunID, r.Mode, r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"),
			r.Transactions, r.EndBalance.StringFixed(2))
	}
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal(args[0])
	if err != nil {
		return err
	}
	defer j.Close()

	r, err := j.GetRun(args[0])
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}
	s, err := r.FormatOrg()
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func runJournalTx(cmd *cobra.Command, args []string) error {
	j, err := openJournal(args[0])
	if err != nil {
		return err
	}
	defer j.Close()

	txs, err := j.ListTransactions(args[0])
	if err != nil {
		return fmt.Errorf("query transactions: %w", err)
	}
	obs := backtest.LogObserver{Logger: stdout}
	for _, tx := range txs {
		if err := obs.RecordTransaction(tx); err != nil {
			return err
		}
	}
	return nil
}
