// Package chart renders the valuation history of a run.
package chart

import (
	"errors"
	"time"

	"github.com/rustyeddy/swingtrader/market"
	"github.com/rustyeddy/swingtrader/portfolio"
	charts "github.com/vicanso/go-charts/v2"
)

// DefaultSince is the default cut-off: only days after it are drawn.
var DefaultSince = time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC)

// ErrNotEnoughData is returned when fewer than two days survive the cut-off.
var ErrNotEnoughData = errors.New("not enough data points")

const (
	width  = 800
	height = 500
)

// Filter keeps the entries strictly after since.
func Filter(entries []portfolio.Valuation, since time.Time) []portfolio.Valuation {
	var out []portfolio.Valuation
	for _, v := range entries {
		if v.Day.After(since) {
			out = append(out, v)
		}
	}
	return out
}

// RenderValuation draws Balance and Portfolio against the day as a PNG.
func RenderValuation(entries []portfolio.Valuation, title string, since time.Time) ([]byte, error) {
	entries = Filter(entries, since)
	if len(entries) < 2 {
		return nil, ErrNotEnoughData
	}

	x := make([]string, len(entries))
	bal := make([]float64, len(entries))
	pf := make([]float64, len(entries))
	yMin, yMax := 0.0, 0.0
	for i, v := range entries {
		x[i] = v.Day.Format(market.DayFormat)
		bal[i] = v.Balance.InexactFloat64()
		pf[i] = v.Portfolio.InexactFloat64()
		for _, y := range []float64{bal[i], pf[i]} {
			if y > yMax {
				yMax = y
			}
			if y < yMin {
				yMin = y
			}
		}
	}
	if yMax == yMin {
		yMax = yMin + 1
	}
	yMax += (yMax - yMin) * 0.05

	split := 12
	if len(entries) < split {
		split = len(entries)
	}

	painter, err := charts.LineRender([][]float64{bal, pf},
		charts.TitleTextOptionFunc("Valuation", title),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: x, BoundaryGap: charts.FalseFlag(), SplitNumber: split}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"Balance", "Portfolio"}, Left: charts.PositionRight}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(width),
		charts.HeightOptionFunc(height),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
