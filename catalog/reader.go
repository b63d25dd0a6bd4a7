package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rustyeddy/swingtrader/market"
	"github.com/shopspring/decimal"
	"github.com/ulikunitz/xz"
)

var requiredColumns = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

// ReadSeries parses daily OHLCV rows. The first row must be a header naming
// at least Date, Open, High, Low, Close and Volume; other columns are ignored.
// A header with no rows yields an empty slice.
func ReadSeries(r io.Reader) ([]market.Candle, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	idx := make([]int, len(requiredColumns))
	for i, name := range requiredColumns {
		j, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("header missing column %q", name)
		}
		idx[i] = j
	}

	var out []market.Candle
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		c, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, c)
	}
}

func parseRow(row []string, idx []int) (market.Candle, error) {
	var c market.Candle
	field := func(i int) (string, error) {
		if idx[i] >= len(row) {
			return "", fmt.Errorf("missing %s", requiredColumns[i])
		}
		return strings.TrimSpace(row[idx[i]]), nil
	}

	s, err := field(0)
	if err != nil {
		return c, err
	}
	if c.Date, err = market.ParseDay(s); err != nil {
		return c, err
	}

	prices := []*decimal.Decimal{&c.Open, &c.High, &c.Low, &c.Close}
	for i, p := range prices {
		s, err := field(i + 1)
		if err != nil {
			return c, err
		}
		if *p, err = decimal.NewFromString(s); err != nil {
			return c, fmt.Errorf("bad %s %q: %w", requiredColumns[i+1], s, err)
		}
	}

	s, err = field(5)
	if err != nil {
		return c, err
	}
	if c.Volume, err = parseVolume(s); err != nil {
		return c, fmt.Errorf("bad Volume %q: %w", s, err)
	}
	return c, nil
}

// parseVolume accepts integer volumes and integral floats ("1200.0").
func parseVolume(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, errors.New("negative volume")
	}
	return d.Floor().IntPart(), nil
}

// instrumentName derives the instrument id from a file name: the base name
// up to its first dot, upper-cased ("aapl.us.txt" -> "AAPL").
func instrumentName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return strings.ToUpper(base)
}

// readFile loads one instrument file. Files ending in .xz are decompressed on
// the fly.
func readFile(path string) ([]market.Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xz: %w", err)
		}
		r = xr
	}
	return ReadSeries(r)
}
