package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/donors"
	"github.com/etnz/donors/date"
)

// source holds the flags shared by the report commands, selecting the
// records to report on.
type source struct {
	app      *app
	dataset  string
	live     bool
	currency string
	date     string
	period   string
	raw      bool
}

func (s *source) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.dataset, "dataset", s.app.cfg.Dataset, "JSONL snapshot `file` to report on")
	f.BoolVar(&s.live, "live", false, "fetch the records from the API instead of reading the snapshot")
	f.StringVar(&s.currency, "currency", s.app.cfg.Currency, "only report on the records in this currency `code`")
	f.StringVar(&s.date, "d", date.Today().String(), "report `date`")
	f.StringVar(&s.period, "period", "", "only report on the records of the day, week, month, quarter or year of the report date")
	f.BoolVar(&s.raw, "md", false, "print raw markdown instead of rendering it")
}

// on returns the report date.
func (s *source) on() (date.Date, error) { return date.Parse(s.date) }

// load returns the records to report on. Invalid records are logged and
// skipped.
func (s *source) load(ctx context.Context) (*donors.Dataset, error) {
	var within *date.Range
	if s.period != "" {
		on, err := s.on()
		if err != nil {
			return nil, err
		}
		p, err := date.ParsePeriod(s.period)
		if err != nil {
			return nil, err
		}
		r := date.NewRange(on, p)
		within = &r
	}

	var ds *donors.Dataset
	var err error
	if s.live {
		ds, err = s.app.fetch(ctx)
	} else {
		ds, err = s.app.decodeSnapshot(s.dataset)
	}
	if err := s.app.warnInvalid(err); err != nil {
		if s.live {
			return nil, fmt.Errorf("cannot fetch records: %w", err)
		}
		return nil, fmt.Errorf("cannot read snapshot %q: %w", s.dataset, err)
	}
	s.app.log.Debug().Int("records", ds.Len()).Str("currency", s.currency).Str("period", s.period).Msg("loaded records")

	ds = ds.Filter(s.currency)
	if within != nil {
		ds = ds.Within(*within)
	}
	return ds, nil
}

func (s *source) print(doc string) { s.app.printMarkdown(doc, s.raw) }
