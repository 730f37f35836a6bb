// Package api fetches dashboard records from the remote REST API.
//
// The API returns either a plain JSON array or a paginated envelope:
//
//	{"count": 120, "next": "https://.../donations/?page=2", "results": [...]}
//
// Errors come back as a JSON object carrying a human readable message in
// "detail", "message" or "data.detail"/"data.message".
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/donors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Endpoints maps each record kind to its path, relative to the API base URL.
var Endpoints = map[donors.Kind]string{
	donors.KindBudget:        "budgets/",
	donors.KindCampaign:      "campaigns/",
	donors.KindDonation:      "donations/",
	donors.KindExpense:       "expenses/",
	donors.KindGrant:         "grants/",
	donors.KindProjectUpdate: "project-updates/",
	donors.KindProject:       "projects/",
}

// maxPages bounds the number of pages followed for a single list, in case
// the server keeps returning a next link.
const maxPages = 1000

// Config configures a Client.
type Config struct {
	BaseURL  string
	Token    string        // bearer token, optional
	CacheDir string        // when set, responses are cached there for the day
	Timeout  time.Duration // per request, 30s by default
	Logger   zerolog.Logger
}

// Client is a REST client for the dashboard API. It is safe for concurrent use.
type Client struct {
	base  *url.URL
	token string
	http  *http.Client
	log   zerolog.Logger
}

// New returns a client for the API at cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("missing API base URL")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid API base URL %q: want an http(s) URL", cfg.BaseURL)
	}
	// relative endpoints resolve under the base path only with a trailing slash.
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	client := &http.Client{Timeout: timeout}
	if cfg.CacheDir != "" {
		client.Transport = &diskCache{base: http.DefaultTransport, dir: cfg.CacheDir, log: cfg.Logger}
	}
	return &Client{base: base, token: cfg.Token, http: client, log: cfg.Logger}, nil
}

func (c *Client) Budgets(ctx context.Context) ([]donors.Budget, error) {
	return fetch[donors.Budget](ctx, c, donors.KindBudget)
}

func (c *Client) Campaigns(ctx context.Context) ([]donors.Campaign, error) {
	return fetch[donors.Campaign](ctx, c, donors.KindCampaign)
}

func (c *Client) Donations(ctx context.Context) ([]donors.Donation, error) {
	return fetch[donors.Donation](ctx, c, donors.KindDonation)
}

func (c *Client) Expenses(ctx context.Context) ([]donors.Expense, error) {
	return fetch[donors.Expense](ctx, c, donors.KindExpense)
}

func (c *Client) Grants(ctx context.Context) ([]donors.Grant, error) {
	return fetch[donors.Grant](ctx, c, donors.KindGrant)
}

func (c *Client) ProjectUpdates(ctx context.Context) ([]donors.ProjectUpdate, error) {
	return fetch[donors.ProjectUpdate](ctx, c, donors.KindProjectUpdate)
}

func (c *Client) Projects(ctx context.Context) ([]donors.Project, error) {
	return fetch[donors.Project](ctx, c, donors.KindProject)
}

// fetch lists all the records of a kind. Invalid records are skipped and
// reported in a *donors.ValidationError, along with the valid ones.
func fetch[T any](ctx context.Context, c *Client, kind donors.Kind) ([]T, error) {
	raws, err := c.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	return donors.Decode[T](kind, raws)
}

// Dataset fetches the records of every kind concurrently.
//
// The first transport or API error cancels the other requests and is
// returned. Invalid records do not fail the fetch: they are reported in a
// *donors.ValidationError returned along with the dataset.
func (c *Client) Dataset(ctx context.Context) (*donors.Dataset, error) {
	kinds := donors.Kinds()
	raws := make([][]json.RawMessage, len(kinds))

	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			list, err := c.List(ctx, kind)
			raws[i] = list
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := &donors.Dataset{FetchedAt: time.Now()}
	verr := new(donors.ValidationError)
	for i, kind := range kinds {
		for j, raw := range raws[i] {
			if err := ds.Append(kind, raw); err != nil {
				verr.Errors = append(verr.Errors, donors.RecordError{Kind: kind, Index: j + 1, Issues: []string{err.Error()}})
			}
		}
	}
	if len(verr.Errors) > 0 {
		return ds, verr
	}
	return ds, nil
}

// List returns the raw records of a kind, following pagination links.
func (c *Client) List(ctx context.Context, kind donors.Kind) ([]json.RawMessage, error) {
	path, ok := Endpoints[kind]
	if !ok {
		return nil, fmt.Errorf("no endpoint for record kind %q", kind)
	}
	next := c.base.ResolveReference(&url.URL{Path: path}).String()

	items := make([]json.RawMessage, 0)
	seen := make(map[string]bool)
	for page := 0; next != ""; page++ {
		if page >= maxPages || seen[next] {
			return nil, fmt.Errorf("cannot list %s: pagination does not end at %s", kind, next)
		}
		seen[next] = true

		body, err := c.get(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("cannot list %s: %w", kind, err)
		}
		list, nextURL, err := parsePage(body)
		if err != nil {
			return nil, fmt.Errorf("cannot list %s from %s: %w", kind, next, err)
		}
		items = append(items, list...)
		next = nextURL
	}
	c.log.Debug().Str("kind", string(kind)).Int("records", len(items)).Msg("listed records")
	return items, nil
}

// get performs an authenticated GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, addr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("cannot read response of %s: %w", addr, err)
	}
	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Status: resp.StatusCode, URL: addr, Message: errorMessage(buf.Bytes())}
	}
	return buf.Bytes(), nil
}

// parsePage extracts the records and the next page link of a list response.
func parsePage(body []byte) (items []json.RawMessage, next string, err error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &items)
		return items, "", err
	}

	doc, err := decodeDocument(trimmed)
	if err != nil {
		return nil, "", err
	}
	var list []any
	for _, path := range []string{"$.results", "$.data"} {
		v, err := jsonpath.Get(path, doc)
		if err != nil {
			continue
		}
		if l, ok := v.([]any); ok {
			list = l
			break
		}
	}
	if list == nil {
		return nil, "", fmt.Errorf("response is neither a list nor a paginated envelope")
	}
	items = make([]json.RawMessage, 0, len(list))
	for _, item := range list {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, "", err
		}
		items = append(items, raw)
	}
	if v, err := jsonpath.Get("$.next", doc); err == nil {
		next, _ = v.(string)
	}
	return items, next, nil
}

// decodeDocument decodes a generic JSON document, keeping numbers verbatim.
func decodeDocument(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
