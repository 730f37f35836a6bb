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

type budgetsCmd struct {
	source
}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "display budget utilization and health" }
func (*budgetsCmd) Usage() string {
	return `dms budgets [-d <date>] [-period <period>] [-currency <code>] [-live]

  Displays, per currency, the budgeted, spent and remaining amounts, and for
  each budget its utilization, burn rate and health tier on the report date.
`
}

func (c *budgetsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := c.on()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	ds, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}
	c.print(renderer.BudgetMarkdown(donors.NewBudgetReport(ds, on)))
	return subcommands.ExitSuccess
}
