package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/donors"
	"github.com/google/subcommands"
)

type pullCmd struct {
	app    *app
	output string
}

func (*pullCmd) Name() string     { return "pull" }
func (*pullCmd) Synopsis() string { return "fetch all records from the API into a snapshot file" }
func (*pullCmd) Usage() string {
	return `dms pull [-o <file>]

  Fetches budgets, campaigns, donations, expenses, grants, projects and
  project updates from the API at DMS_API_URL, and writes them into a JSONL
  snapshot file. Invalid records are reported and skipped.
`
}

func (c *pullCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", c.app.cfg.Dataset, "snapshot `file` to write")
}

func (c *pullCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := c.app.fetch(ctx)
	if err := c.app.warnInvalid(err); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching records: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := writeSnapshot(c.output, ds); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	c.app.log.Info().Str("file", c.output).Int("records", ds.Len()).Msg("snapshot written")
	fmt.Fprintf(c.app.out, "Pulled %d records into %s\n", ds.Len(), c.output)
	return subcommands.ExitSuccess
}

// writeSnapshot replaces the file with the dataset, through a temporary file
// so that a failure never leaves a truncated snapshot.
func writeSnapshot(name string, ds *donors.Dataset) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := donors.EncodeDataset(tmp, ds); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}
