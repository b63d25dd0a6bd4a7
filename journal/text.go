package journal

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rustyeddy/swingtrader/market"
	"github.com/rustyeddy/swingtrader/portfolio"
	"github.com/shopspring/decimal"
)

var valuationHeader = []string{"Date", "Balance", "Portfolio"}

// TextJournal collects a run in memory and writes the sequence file and the
// valuation file when closed. The sequence file starts with its line count,
// so nothing is written before the run ends.
type TextJournal struct {
	sequencePath  string
	valuationPath string

	txs  []portfolio.Transaction
	vals []portfolio.Valuation
}

func NewText(sequencePath, valuationPath string) *TextJournal {
	return &TextJournal{
		sequencePath:  sequencePath,
		valuationPath: valuationPath,
	}
}

func (j *TextJournal) RecordTransaction(tx portfolio.Transaction) error {
	j.txs = append(j.txs, tx)
	return nil
}

// RecordValuation keeps one row per day; a second valuation of the same day
// replaces the first.
func (j *TextJournal) RecordValuation(v portfolio.Valuation) error {
	if n := len(j.vals); n > 0 && j.vals[n-1].Day.Equal(v.Day) {
		j.vals[n-1] = v
		return nil
	}
	j.vals = append(j.vals, v)
	return nil
}

func (j *TextJournal) Close() error {
	if err := writeFile(j.sequencePath, func(w io.Writer) error {
		return WriteSequence(w, j.txs)
	}); err != nil {
		return fmt.Errorf("sequence: %w", err)
	}
	if err := writeFile(j.valuationPath, func(w io.Writer) error {
		return WriteValuation(w, j.vals)
	}); err != nil {
		return fmt.Errorf("valuation: %w", err)
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteSequence writes the transaction count on the first line and then one
// "day action instrument quantity" line per transaction.
func WriteSequence(w io.Writer, txs []portfolio.Transaction) error {
	if _, err := fmt.Fprintln(w, len(txs)); err != nil {
		return err
	}
	for _, tx := range txs {
		if _, err := fmt.Fprintln(w, tx.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteValuation writes the history as CSV with a Date,Balance,Portfolio header.
func WriteValuation(w io.Writer, vals []portfolio.Valuation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(valuationHeader); err != nil {
		return err
	}
	for _, v := range vals {
		if err := cw.Write([]string{
			v.Day.Format(market.DayFormat),
			v.Balance.String(),
			v.Portfolio.String(),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadValuation parses what WriteValuation produced.
func ReadValuation(r io.Reader) ([]portfolio.Valuation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(valuationHeader)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	for i, h := range valuationHeader {
		if rows[0][i] != h {
			return nil, fmt.Errorf("bad valuation header %v", rows[0])
		}
	}

	out := make([]portfolio.Valuation, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := strconv.Itoa(i + 2)
		day, err := market.ParseDay(row[0])
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", line, err)
		}
		bal, err := decimal.NewFromString(row[1])
		if err != nil {
			return nil, fmt.Errorf("line %s: balance: %w", line, err)
		}
		pf, err := decimal.NewFromString(row[2])
		if err != nil {
			return nil, fmt.Errorf("line %s: portfolio: %w", line, err)
		}
		out = append(out, portfolio.Valuation{Day: day, Balance: bal, Portfolio: pf})
	}
	return out, nil
}
