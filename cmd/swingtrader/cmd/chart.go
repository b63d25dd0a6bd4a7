package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rustyeddy/swingtrader/chart"
	"github.com/rustyeddy/swingtrader/journal"
	"github.com/rustyeddy/swingtrader/market"
	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart <valuation-file>",
	Short: "Render a valuation file as a PNG chart",
	Long: `Plot the Balance and Portfolio columns of a valuation file written by
"swingtrader run". Only days after --since are drawn.

Example:
  swingtrader chart large_valuation.txt --out large_valuation.png`,
	Args: cobra.ExactArgs(1),
	RunE: runChart,
}

var (
	chartOut   string
	chartSince string
	chartTitle string
)

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "", "output PNG path (default: input name with .png)")
	chartCmd.Flags().StringVar(&chartSince, "since", chart.DefaultSince.Format(market.DayFormat), "draw only days after this date")
	chartCmd.Flags().StringVar(&chartTitle, "title", "", "chart subtitle (default: from the file name)")
}

func runChart(cmd *cobra.Command, args []string) error {
	in := args[0]
	since, err := market.ParseDay(chartSince)
	if err != nil {
		return fmt.Errorf("since: %w", err)
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := journal.ReadValuation(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}

	base := strings.TrimSuffix(in, filepath.Ext(in))
	if chartTitle == "" {
		chartTitle = title(strings.TrimSuffix(filepath.Base(base), "_valuation"))
	}
	out := chartOut
	if out == "" {
		out = base + ".png"
	}

	png, err := chart.RenderValuation(entries, chartTitle, since)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, png, 0644); err != nil {
		return err
	}

	fmt.Printf("✓ Wrote %s (%d days)\n", out, len(chart.Filter(entries, since)))
	return nil
}
