package catalog

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rustyeddy/swingtrader/market"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyCatalog is returned when no instrument passes the inclusion filter.
	ErrEmptyCatalog = errors.New("catalog: no eligible instrument")

	// ErrDuplicateInstrument is returned when two files map to the same name.
	ErrDuplicateInstrument = errors.New("catalog: duplicate instrument")

	// ErrNoData is returned for an instrument without a single candle.
	ErrNoData = errors.New("no data")
)

// DefaultMinProfit is the smallest high-low distance an instrument needs to
// be kept.
var DefaultMinProfit = decimal.NewFromInt(1)

// Options control how a directory is turned into a Catalog.
type Options struct {
	MinProfit *decimal.Decimal // nil means DefaultMinProfit
	Logger    *log.Logger // nil discards load messages
}

// Catalog is the read-only set of instruments a simulation trades. The
// iteration order of Instruments is fixed at construction and is the
// tie-break order everywhere a "first match" is needed.
type Catalog struct {
	instruments []*Instrument
	byName      map[string]*Instrument
	start, end  time.Time
}

// New builds a Catalog from already filtered instruments, keeping their order.
func New(instruments []*Instrument) (*Catalog, error) {
	if len(instruments) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		instruments: instruments,
		byName:      make(map[string]*Instrument, len(instruments)),
	}
	for _, inst := range instruments {
		if _, dup := c.byName[inst.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateInstrument, inst.Name)
		}
		c.byName[inst.Name] = inst

		if c.start.IsZero() || inst.Series.First().Before(c.start) {
			c.start = inst.Series.First()
		}
		if c.end.IsZero() || inst.Series.Last().After(c.end) {
			c.end = inst.Series.Last()
		}
	}
	return c, nil
}

// Load reads every *.txt and *.txt.xz file in dir, in file name order. Empty
// files are skipped, malformed files fail the load, and instruments that are
// not Eligible are dropped.
func Load(dir string, opts Options) (*Catalog, error) {
	minProfit := DefaultMinProfit
	if opts.MinProfit != nil {
		minProfit = *opts.MinProfit
	}
	logf := func(format string, args ...any) {
		if opts.Logger != nil {
			opts.Logger.Printf(format, args...)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !(strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".txt.xz")) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)

	var kept []*Instrument
	seen := make(map[string]string)
	for _, path := range files {
		name := instrumentName(path)
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %s (%s, %s)", ErrDuplicateInstrument, name, prev, path)
		}
		seen[name] = path

		candles, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", path, err)
		}
		if len(candles) == 0 {
			logf("skip-instrument name=%q reason=empty", name)
			continue
		}

		inst, err := NewInstrument(name, candles)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", path, err)
		}
		if !inst.Eligible(minProfit) {
			logf("skip-instrument name=%q reason=ineligible min_date=%s max_date=%s profit=%s",
				name, inst.Extremum.MinDate.Format(market.DayFormat),
				inst.Extremum.MaxDate.Format(market.DayFormat), inst.Extremum.Profit)
			continue
		}
		kept = append(kept, inst)
	}

	c, err := New(kept)
	if err != nil {
		return nil, err
	}
	logf("catalog-loaded instruments=%d start=%s end=%s",
		len(kept), c.start.Format(market.DayFormat), c.end.Format(market.DayFormat))
	return c, nil
}

// Instruments returns the catalog in its fixed iteration order.
func (c *Catalog) Instruments() []*Instrument { return c.instruments }

// Get looks an instrument up by name.
func (c *Catalog) Get(name string) (*Instrument, bool) {
	inst, ok := c.byName[name]
	return inst, ok
}

func (c *Catalog) Len() int { return len(c.instruments) }

// Start is the earliest day any instrument has data.
func (c *Catalog) Start() time.Time { return c.start }

// End is the latest day any instrument has data.
func (c *Catalog) End() time.Time { return c.end }

// Days is the dense calendar from Start to End, weekends and holidays included.
func (c *Catalog) Days() []time.Time { return market.DateRange(c.start, c.end) }
