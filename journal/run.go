package journal

import (
	"bytes"
	"os"
	"text/template"
	"time"

	"github.com/rustyeddy/swingtrader/backtest"
	"github.com/rustyeddy/swingtrader/market"
	"github.com/shopspring/decimal"
)

// RunSummary mirrors the runs table.
type RunSummary struct {
	RunID   string
	Created time.Time
	Mode    string
	Dataset string

	Instruments int
	Start       time.Time
	End         time.Time
	Days        int

	Transactions  int
	SwingBuys     int
	SwingSells    int
	IntradayBuys  int
	IntradaySells int

	MinIntradayProfit  decimal.Decimal
	MinBalanceFraction decimal.Decimal

	StartBalance decimal.Decimal
	EndBalance   decimal.Decimal
	EndPortfolio decimal.Decimal

	OrgPath      string
	ValuationPNG string
}

// Summarize builds the summary of a finished run.
func Summarize(runID, mode, dataset string, instruments int, cfg backtest.Config, res backtest.Result) RunSummary {
	return RunSummary{
		RunID:              runID,
		Created:            time.Now().UTC(),
		Mode:               mode,
		Dataset:            dataset,
		Instruments:        instruments,
		Start:              res.Start,
		End:                res.End,
		Days:               res.Days,
		Transactions:       res.Transactions,
		SwingBuys:          res.SwingBuys,
		SwingSells:         res.SwingSells,
		IntradayBuys:       res.IntradayBuys,
		IntradaySells:      res.IntradaySells,
		MinIntradayProfit:  cfg.MinIntradayProfit,
		MinBalanceFraction: cfg.MinBalanceFraction,
		StartBalance:       res.StartBalance,
		EndBalance:         res.EndBalance,
		EndPortfolio:       res.EndPortfolio,
	}
}

// Total is the end balance plus the value of what is still held.
func (r RunSummary) Total() decimal.Decimal {
	return r.EndBalance.Add(r.EndPortfolio)
}

// Profit is the end balance less the start balance.
func (r RunSummary) Profit() decimal.Decimal {
	return r.EndBalance.Sub(r.StartBalance)
}

var runOrgFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"day":   func(t time.Time) string { return t.Format(market.DayFormat) },
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

var runOrg = template.Must(template.New("run").Funcs(runOrgFuncs).Parse(RunOrgTemplate))

// FormatOrg renders r as an org-mode entry.
func (r RunSummary) FormatOrg() (string, error) {
	buf := new(bytes.Buffer)
	if err := runOrg.Execute(buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteOrg writes the org-mode entry to r.OrgPath.
func (r RunSummary) WriteOrg() error {
	s, err := r.FormatOrg()
	if err != nil {
		return err
	}
	return os.WriteFile(r.OrgPath, []byte(s), 0644)
}

const RunOrgTemplate = `
* RUN: {{.Mode}} {{if .Dataset}}{{.Dataset}}{{else}}(dataset?){{end}}
:PROPERTIES:
:RUN_ID:      {{if .RunID}}{{.RunID}}{{else}}(run-id?){{end}}
:MODE:        {{.Mode}}
:DATASET:     {{if .Dataset}}{{.Dataset}}{{else}}(dataset?){{end}}
:INSTRUMENTS: {{.Instruments}}
:START_DATE:  {{day .Start}}
:END_DATE:    {{day .End}}
:DAYS:        {{.Days}}
:START_BAL:   {{money .StartBalance}}
:END_BAL:     {{money .EndBalance}}
:PORTFOLIO:   {{money .EndPortfolio}}
:PROFIT:      {{money .Profit}}
:TRANSACTIONS: {{.Transactions}}
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Parameters
| Parameter            | Value |
|----------------------+-------|
| Min intraday profit  | {{.MinIntradayProfit}} |
| Min balance fraction | {{.MinBalanceFraction}} |

** Activity
| Leg            | Count |
|----------------+-------|
| Swing buys     | {{.SwingBuys}} |
| Swing sells    | {{.SwingSells}} |
| Intraday buys  | {{.IntradayBuys}} |
| Intraday sells | {{.IntradaySells}} |
| Total          | {{.Transactions}} |

** Valuation
{{- if .ValuationPNG }}
[[file:{{.ValuationPNG}}]]
{{- else }}
# (optional) render with: swingtrader chart <valuation-file>
{{- end }}
`
