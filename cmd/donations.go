package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/donors"
	"github.com/etnz/donors/renderer"
	"github.com/google/subcommands"
)

type donationsCmd struct {
	source
}

func (*donationsCmd) Name() string     { return "donations" }
func (*donationsCmd) Synopsis() string { return "display donation statistics and monthly trend" }
func (*donationsCmd) Usage() string {
	return `dms donations [-currency <code>] [-live]

  Displays, per currency, the donation total, count, mean, median and
  largest amount, the monthly trend and the split by donation type.
`
}

func (c *donationsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}
	c.print(renderer.DonationMarkdown(donors.NewDonationReport(ds)))
	return subcommands.ExitSuccess
}
