// Package cmd implements the dms CLI application, reporting on donor and
// finance records.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/donors"
	"github.com/etnz/donors/api"
	"github.com/etnz/donors/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// app is the state shared by all the commands. As a CLI application it is
// short lived, a single instance is created by Register.
type app struct {
	cfg Config
	log zerolog.Logger
	out io.Writer
}

func newApp(cfg Config) *app {
	return &app{
		cfg: cfg,
		log: logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty}),
		out: os.Stdout,
	}
}

// command is a subcommand with the group it is listed in.
type command struct {
	subcommands.Command
	group string
}

func commands(a *app) []command {
	return []command{
		{&pullCmd{app: a}, "data"},
		{&budgetsCmd{source: source{app: a}}, "reports"},
		{&campaignsCmd{source: source{app: a}}, "reports"},
		{&donationsCmd{source: source{app: a}}, "reports"},
		{&fundingCmd{source: source{app: a}}, "reports"},
		{&projectsCmd{source: source{app: a}}, "reports"},
		{&breakdownCmd{source: source{app: a}}, "reports"},
		{&topicCmd{app: a}, "help"},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg Config) {
	for _, cmd := range commands(newApp(cfg)) {
		c.Register(cmd.Command, cmd.group)
	}
}

// client returns an API client configured from the environment.
func (a *app) client() (*api.Client, error) {
	if a.cfg.APIURL == "" {
		return nil, errors.New("DMS_API_URL is not set")
	}
	return api.New(api.Config{
		BaseURL:  a.cfg.APIURL,
		Token:    a.cfg.APIToken,
		CacheDir: a.cfg.CacheDir,
		Logger:   a.log,
	})
}

// fetch pulls a fresh dataset from the API.
func (a *app) fetch(ctx context.Context) (*donors.Dataset, error) {
	client, err := a.client()
	if err != nil {
		return nil, err
	}
	return client.Dataset(ctx)
}

// decodeSnapshot reads a JSONL snapshot file.
func (a *app) decodeSnapshot(name string) (*donors.Dataset, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return donors.DecodeDataset(f)
}

// warnInvalid logs the records dropped by a validation error, and clears it.
// Other errors are returned unchanged.
func (a *app) warnInvalid(err error) error {
	var verr *donors.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	for _, e := range verr.Errors {
		a.log.Warn().Str("kind", string(e.Kind)).Int("index", e.Index).Strs("issues", e.Issues).Msg("dropped invalid record")
	}
	return nil
}

// termRenderer is built on first use, it probes the terminal.
var termRenderer = sync.OnceValues(func() (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
})

// printMarkdown prints a markdown document, rendered for the terminal unless
// raw is set.
func (a *app) printMarkdown(doc string, raw bool) {
	if raw {
		fmt.Fprint(a.out, doc)
		return
	}
	r, err := termRenderer()
	if err != nil {
		a.log.Debug().Err(err).Msg("cannot create the terminal renderer, printing raw markdown")
		fmt.Fprint(a.out, doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		a.log.Debug().Err(err).Msg("cannot render markdown, printing raw markdown")
		fmt.Fprint(a.out, doc)
		return
	}
	fmt.Fprint(a.out, out)
}
