package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/swingtrader/market"
	"github.com/rustyeddy/swingtrader/portfolio"
)

// SQLiteJournal records the events of one run, keyed by its run id. Several
// runs can share a database file.
type SQLiteJournal struct {
	db    *sql.DB
	runID string
}

// NewSQLite opens (or creates) the database at path and prepares it for
// the run runID.
func NewSQLite(path, runID string) (*SQLiteJournal, error) {
	if runID == "" {
		return nil, fmt.Errorf("sqlite journal: run id is required")
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?_journal_mode=WAL&_synchronous=OFF&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite journal: schema: %w", err)
	}

	return &SQLiteJournal{db: db, runID: runID}, nil
}

func (j *SQLiteJournal) RunID() string { return j.runID }

func (j *SQLiteJournal) RecordTransaction(tx portfolio.Transaction) error {
	_, err := j.db.Exec(`
		INSERT INTO transactions
		(run_id, seq, day, action, instrument, quantity, price, balance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.runID, tx.Seq, tx.Day.Format(market.DayFormat), string(tx.Action),
		tx.Instrument, tx.Quantity, tx.Price, tx.Balance,
	)
	return err
}

// RecordValuation upserts the valuation of a day.
func (j *SQLiteJournal) RecordValuation(v portfolio.Valuation) error {
	_, err := j.db.Exec(`
		INSERT OR REPLACE INTO valuations
		(run_id, day, balance, portfolio)
		VALUES (?, ?, ?, ?)`,
		j.runID, v.Day.Format(market.DayFormat), v.Balance, v.Portfolio,
	)
	return err
}

// RecordRun stores a run summary under r.RunID, or under the journal's run
// id when r.RunID is empty.
func (j *SQLiteJournal) RecordRun(r RunSummary) error {
	if r.RunID == "" {
		r.RunID = j.runID
	}
	_, err := j.db.Exec(`
		INSERT OR REPLACE INTO runs
		(run_id, created, mode, dataset, instruments, start_day, end_day, days,
		 transactions, swing_buys, swing_sells, intraday_buys, intraday_sells,
		 min_intraday_profit, min_balance_fraction, start_balance, end_balance, end_portfolio)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.Mode, r.Dataset, r.Instruments,
		r.Start.Format(market.DayFormat), r.End.Format(market.DayFormat), r.Days,
		r.Transactions, r.SwingBuys, r.SwingSells, r.IntradayBuys, r.IntradaySells,
		r.MinIntradayProfit, r.MinBalanceFraction, r.StartBalance, r.EndBalance, r.EndPortfolio,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
