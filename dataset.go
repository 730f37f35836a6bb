package donors

import (
	"encoding/json"
	"time"

	"github.com/etnz/donors/date"
)

// Dataset is a snapshot of all the records of the remote API. Reports are
// computed from a Dataset and never modify it.
type Dataset struct {
	FetchedAt time.Time

	Budgets        []Budget
	Campaigns      []Campaign
	Donations      []Donation
	Expenses       []Expense
	Grants         []Grant
	ProjectUpdates []ProjectUpdate
	Projects       []Project
}

// Len returns the total number of records.
func (ds *Dataset) Len() int {
	return len(ds.Budgets) + len(ds.Campaigns) + len(ds.Donations) + len(ds.Expenses) +
		len(ds.Grants) + len(ds.ProjectUpdates) + len(ds.Projects)
}

// Count returns the number of records of a kind.
func (ds *Dataset) Count(kind Kind) int {
	switch kind {
	case KindBudget:
		return len(ds.Budgets)
	case KindCampaign:
		return len(ds.Campaigns)
	case KindDonation:
		return len(ds.Donations)
	case KindExpense:
		return len(ds.Expenses)
	case KindGrant:
		return len(ds.Grants)
	case KindProjectUpdate:
		return len(ds.ProjectUpdates)
	case KindProject:
		return len(ds.Projects)
	}
	return 0
}

// Append validates and decodes a raw record of a kind into the dataset.
func (ds *Dataset) Append(kind Kind, raw json.RawMessage) error {
	switch kind {
	case KindBudget:
		return appendRecord(kind, raw, &ds.Budgets)
	case KindCampaign:
		return appendRecord(kind, raw, &ds.Campaigns)
	case KindDonation:
		return appendRecord(kind, raw, &ds.Donations)
	case KindExpense:
		return appendRecord(kind, raw, &ds.Expenses)
	case KindGrant:
		return appendRecord(kind, raw, &ds.Grants)
	case KindProjectUpdate:
		return appendRecord(kind, raw, &ds.ProjectUpdates)
	case KindProject:
		return appendRecord(kind, raw, &ds.Projects)
	}
	return &RecordError{Kind: kind, Issues: []string{"unknown record kind"}}
}

func appendRecord[T any](kind Kind, raw []byte, dst *[]T) error {
	var v T
	if err := decodeRecord(kind, raw, &v); err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

// Filter returns a copy of the dataset whose monetary records are all in the
// given currency. Projects and project updates are kept as is. An empty
// currency returns the whole dataset.
func (ds *Dataset) Filter(currency string) *Dataset {
	if currency == "" {
		return ds
	}
	code := Currency{Code: currency}.String()
	return &Dataset{
		FetchedAt:      ds.FetchedAt,
		Budgets:        inCurrency(ds.Budgets, code),
		Campaigns:      inCurrency(ds.Campaigns, code),
		Donations:      inCurrency(ds.Donations, code),
		Expenses:       inCurrency(ds.Expenses, code),
		Grants:         inCurrency(ds.Grants, code),
		ProjectUpdates: ds.ProjectUpdates,
		Projects:       ds.Projects,
	}
}

func inCurrency[R Priced](records []R, code string) []R {
	var res []R
	for _, r := range records {
		if r.CurrencyCode() == code {
			res = append(res, r)
		}
	}
	return res
}

// Within returns a copy of the dataset restricted to the records of a date
// range. Donations, expenses, grants and project updates must be dated within
// the range, undated ones are dropped. Budgets and campaigns must overlap the
// range, an unknown start or end is open ended. Projects are kept as is.
func (ds *Dataset) Within(r date.Range) *Dataset {
	return &Dataset{
		FetchedAt:      ds.FetchedAt,
		Budgets:        overlapping(ds.Budgets, r, func(b Budget) (date.Date, date.Date) { return b.StartDate, b.EndDate }),
		Campaigns:      overlapping(ds.Campaigns, r, func(c Campaign) (date.Date, date.Date) { return c.StartDate, c.EndDate }),
		Donations:      dated(ds.Donations, r, func(d Donation) date.Date { return d.DonatedAt }),
		Expenses:       dated(ds.Expenses, r, func(e Expense) date.Date { return e.IncurredAt }),
		Grants:         dated(ds.Grants, r, func(g Grant) date.Date { return g.AwardedAt }),
		ProjectUpdates: dated(ds.ProjectUpdates, r, func(u ProjectUpdate) date.Date { return u.CreatedAt }),
		Projects:       ds.Projects,
	}
}

func dated[R any](records []R, r date.Range, on func(R) date.Date) []R {
	var res []R
	for _, rec := range records {
		if d := on(rec); !d.IsZero() && r.Contains(d) {
			res = append(res, rec)
		}
	}
	return res
}

func overlapping[R any](records []R, r date.Range, span func(R) (date.Date, date.Date)) []R {
	var res []R
	for _, rec := range records {
		start, end := span(rec)
		if (start.IsZero() || !start.After(r.To)) && (end.IsZero() || !end.Before(r.From)) {
			res = append(res, rec)
		}
	}
	return res
}

// Currencies returns the currency codes used by the monetary records, in
// first seen order.
func (ds *Dataset) Currencies() []string {
	var codes []string
	seen := make(map[string]bool)
	add := func(code string) {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	for _, r := range ds.Budgets {
		add(r.CurrencyCode())
	}
	for _, r := range ds.Campaigns {
		add(r.CurrencyCode())
	}
	for _, r := range ds.Donations {
		add(r.CurrencyCode())
	}
	for _, r := range ds.Expenses {
		add(r.CurrencyCode())
	}
	for _, r := range ds.Grants {
		add(r.CurrencyCode())
	}
	return codes
}
