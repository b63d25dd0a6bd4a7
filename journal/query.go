package journal

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rustyeddy/swingtrader/market"
	"github.com/rustyeddy/swingtrader/portfolio"
)

// ErrNotFound is returned when a run id has no record.
var ErrNotFound = errors.New("not found")

const runColumns = `
	run_id, created, mode, dataset, instruments, start_day, end_day, days,
	transactions, swing_buys, swing_sells, intraday_buys, intraday_sells,
	min_intraday_profit, min_balance_fraction, start_balance, end_balance, end_portfolio`

type scanner interface {
	Scan(dest ...any) error
}

// GetRun reads back a run summary.
func (j *SQLiteJournal) GetRun(runID string) (RunSummary, error) {
	r, err := scanRun(j.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID))
	if errors.Is(err, sql.ErrNoRows) {
		return RunSummary{}, fmt.Errorf("run %q: %w", runID, ErrNotFound)
	}
	return r, err
}

// ListRuns returns every recorded run, oldest first.
func (j *SQLiteJournal) ListRuns() ([]RunSummary, error) {
	rows, err := j.db.Query(`SELECT ` + runColumns + ` FROM runs ORDER BY run_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRun(row scanner) (RunSummary, error) {
	var (
		r          RunSummary
		start, end string
	)
	err := row.Scan(
		&r.RunID, &r.Created, &r.Mode, &r.Dataset, &r.Instruments, &start, &end, &r.Days,
		&r.Transactions, &r.SwingBuys, &r.SwingSells, &r.IntradayBuys, &r.IntradaySells,
		&r.MinIntradayProfit, &r.MinBalanceFraction, &r.StartBalance, &r.EndBalance, &r.EndPortfolio,
	)
	if err != nil {
		return RunSummary{}, err
	}
	if r.Start, err = market.ParseDay(start); err != nil {
		return RunSummary{}, err
	}
	if r.End, err = market.ParseDay(end); err != nil {
		return RunSummary{}, err
	}
	return r, nil
}

// ListTransactions returns the transactions of a run in sequence order.
func (j *SQLiteJournal) ListTransactions(runID string) ([]portfolio.Transaction, error) {
	rows, err := j.db.Query(`
		SELECT seq, day, action, instrument, quantity, price, balance
		FROM transactions
		WHERE run_id = ?
		ORDER BY seq ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []portfolio.Transaction
	for rows.Next() {
		var (
			tx     portfolio.Transaction
			day    string
			action string
		)
		if err := rows.Scan(&tx.Seq, &day, &action, &tx.Instrument, &tx.Quantity, &tx.Price, &tx.Balance); err != nil {
			return nil, err
		}
		if tx.Day, err = market.ParseDay(day); err != nil {
			return nil, err
		}
		tx.Action = portfolio.Action(action)
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListValuations returns the valuation history of a run in day order.
func (j *SQLiteJournal) ListValuations(runID string) ([]portfolio.Valuation, error) {
	rows, err := j.db.Query(`
		SELECT day, balance, portfolio
		FROM valuations
		WHERE run_id = ?
		ORDER BY day ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []portfolio.Valuation
	for rows.Next() {
		var (
			v   portfolio.Valuation
			day string
		)
		if err := rows.Scan(&day, &v.Balance, &v.Portfolio); err != nil {
			return nil, err
		}
		if v.Day, err = market.ParseDay(day); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
