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

type campaignsCmd struct {
	source
	top int
}

func (*campaignsCmd) Name() string     { return "campaigns" }
func (*campaignsCmd) Synopsis() string { return "display campaign fundraising efficiency" }
func (*campaignsCmd) Usage() string {
	return `dms campaigns [-n <count>] [-currency <code>] [-live]

  Displays, per currency, the campaign targets and raised amounts, and the
  campaigns with the best efficiency.
`
}

func (c *campaignsCmd) SetFlags(f *flag.FlagSet) {
	c.source.SetFlags(f)
	f.IntVar(&c.top, "n", 5, "number of top campaigns to list, 0 lists them all")
}

func (c *campaignsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}
	c.print(renderer.CampaignMarkdown(donors.NewCampaignReport(ds, c.top)))
	return subcommands.ExitSuccess
}
