package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/donors/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	app *app
	raw bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `dms topic [<topic>...]

Show documentation for the given topics, "*" shows them all.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "md", false, "print raw markdown instead of rendering it")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	c.app.printMarkdown(doc, c.raw)

	return subcommands.ExitSuccess
}
