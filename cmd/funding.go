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

type fundingCmd struct {
	source
}

func (*fundingCmd) Name() string     { return "funding" }
func (*fundingCmd) Synopsis() string { return "display grants, expenses and the net funding position" }
func (*fundingCmd) Usage() string {
	return `dms funding [-currency <code>] [-live]

  Displays grants by funding source and status, expenses by category, and
  per currency the net position of grants minus expenses.
`
}

func (c *fundingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}
	c.print(renderer.FundingMarkdown(donors.NewFundingReport(ds)))
	return subcommands.ExitSuccess
}
