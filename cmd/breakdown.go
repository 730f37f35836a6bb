package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/donors"
	"github.com/etnz/donors/renderer"
	"github.com/google/subcommands"
)

type breakdownCmd struct {
	source
	kind    string
	key     string
	chart   bool
	share   bool
	width   int
	palette string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "aggregate one kind of records by one attribute" }
func (*breakdownCmd) Usage() string {
	return `dms breakdown -k <kind> -by <key> [-chart [-share] [-w <width>] [-palette <file>]]

  Groups the records of a kind by an attribute, and displays each group's
  total, count and share. Amounts are totalled per currency, records without
  amounts are counted.

  Kinds: ` + kindNames() + `
  Keys:  ` + keyNames() + `
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	c.source.SetFlags(f)
	f.StringVar(&c.kind, "k", "donation", "record `kind` to break down")
	f.StringVar(&c.key, "by", "status", "attribute to group the records by")
	f.BoolVar(&c.chart, "chart", false, "draw a bar chart instead of a table")
	f.BoolVar(&c.share, "share", false, "chart the shares instead of the totals")
	f.IntVar(&c.width, "w", renderer.DefaultChartWidth, "chart `width` in cells")
	f.StringVar(&c.palette, "palette", c.app.cfg.Palette, "YAML palette `file` for the chart colors")
}

func (c *breakdownCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := donors.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	key, err := donors.ParseGroupKey(c.key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	palette, err := loadPalette(c.palette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading palette %q: %v\n", c.palette, err)
		return subcommands.ExitFailure
	}

	ds, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}
	b, err := donors.NewBreakdown(ds, kind, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.chart {
		c.print(renderer.BreakdownMarkdown(b))
		return subcommands.ExitSuccess
	}
	for _, cb := range b.Currencies {
		series := donors.ToSeries(cb.Buckets, palette)
		if c.share {
			series = donors.ToShareSeries(cb.Buckets, palette)
		}
		if b.Monetary {
			title := cb.Currency
			if title == "" {
				title = donors.Unspecified
			}
			fmt.Fprintf(c.app.out, "%s %s by %s\n", title, kind, key)
		} else {
			fmt.Fprintf(c.app.out, "%s by %s\n", kind, key)
		}
		fmt.Fprintln(c.app.out, renderer.BarChart(series, c.width))
	}
	return subcommands.ExitSuccess
}

// loadPalette reads a palette file, or returns nil for the default palette.
func loadPalette(name string) (*donors.Palette, error) {
	if name == "" {
		return nil, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return donors.DecodePalette(f)
}

func kindNames() string {
	var names []string
	for _, k := range donors.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

func keyNames() string {
	var names []string
	for _, k := range donors.GroupKeys() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
