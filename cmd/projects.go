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

type projectsCmd struct {
	source
}

func (*projectsCmd) Name() string     { return "projects" }
func (*projectsCmd) Synopsis() string { return "display project completion and updates" }
func (*projectsCmd) Usage() string {
	return `dms projects [-live]

  Displays the projects ranked by milestone completion, and the project
  updates by type and month.
`
}

func (c *projectsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}
	c.print(renderer.ProjectMarkdown(donors.NewProjectReport(ds)))
	return subcommands.ExitSuccess
}
