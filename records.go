package donors

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/etnz/donors/date"
	"github.com/shopspring/decimal"
)

// ID identifies a record on the remote API. The API uses both integer and
// string identifiers, both decode into an ID. Any other value decodes to the
// empty ID.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*id = ""
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(n.String())
	}
	return nil
}

// Currency is the currency of a record. The API nests it as {"code": "USD"}
// but older endpoints send the bare code, both are accepted. Anything else
// decodes to no currency.
type Currency struct {
	Code string `json:"code"`
}

// C is a shortcut to create a Currency.
func C(code string) Currency { return Currency{Code: code} }

func (c *Currency) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		c.Code = ""
	case len(data) > 0 && data[0] == '"':
		return json.Unmarshal(data, &c.Code)
	default:
		var v struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			c.Code = ""
			return nil
		}
		c.Code = v.Code
	}
	return nil
}

// String returns the upper-cased currency code.
func (c Currency) String() string { return strings.ToUpper(strings.TrimSpace(c.Code)) }

// Priced is implemented by records that carry a monetary amount.
type Priced interface {
	Grouped
	// CurrencyCode returns the upper-cased currency code of the record amount.
	CurrencyCode() string
}

// Budget is an allocation of money to spend over a period.
type Budget struct {
	ID                ID        `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Status            string    `json:"status"`
	TotalAmount       Amount    `json:"total_amount"`
	SpentAmount       Amount    `json:"spent_amount"`
	Currency          Currency  `json:"currency"`
	FundingSourceType string    `json:"funding_source_type"`
	StartDate         date.Date `json:"start_date"`
	EndDate           date.Date `json:"end_date"`
}

func (b Budget) CurrencyCode() string { return b.Currency.String() }

// Period returns the range of days the budget covers.
func (b Budget) Period() date.Range { return date.Range{From: b.StartDate, To: b.EndDate} }

func (b Budget) GroupValue(k GroupKey) string {
	switch k {
	case ByStatus:
		return label(b.Status)
	case ByCategory:
		return label(b.Category)
	case ByCurrency:
		return label(b.Currency.Code)
	case ByFundingSourceType:
		return label(b.FundingSourceType)
	case ByMonth:
		return label(b.StartDate.MonthKey())
	}
	return Unspecified
}

// Campaign is a fundraising campaign with a target amount.
type Campaign struct {
	ID             ID        `json:"id"`
	Title          string    `json:"title"`
	Type           string    `json:"campaign_type"`
	Status         string    `json:"status"`
	TargetAmount   Amount    `json:"target_amount"`
	RaisedAmount   Amount    `json:"raised_amount"`
	TargetCurrency Currency  `json:"target_currency"`
	StartDate      date.Date `json:"start_date"`
	EndDate        date.Date `json:"end_date"`
}

func (c Campaign) CurrencyCode() string { return c.TargetCurrency.String() }

func (c Campaign) GroupValue(k GroupKey) string {
	switch k {
	case ByStatus:
		return label(c.Status)
	case ByType:
		return label(c.Type)
	case ByCurrency:
		return label(c.TargetCurrency.Code)
	case ByMonth:
		return label(c.StartDate.MonthKey())
	}
	return Unspecified
}

// Donation is a single contribution, possibly attached to a campaign.
type Donation struct {
	ID        ID        `json:"id"`
	DonorName string    `json:"donor_name"`
	Amount    Amount    `json:"amount"`
	Currency  Currency  `json:"currency"`
	Status    string    `json:"status"`
	Type      string    `json:"donation_type"`
	Campaign  ID        `json:"campaign"`
	DonatedAt date.Date `json:"donated_at"`
}

func (d Donation) CurrencyCode() string { return d.Currency.String() }

func (d Donation) GroupValue(k GroupKey) string {
	switch k {
	case ByStatus:
		return label(d.Status)
	case ByType:
		return label(d.Type)
	case ByCurrency:
		return label(d.Currency.Code)
	case ByMonth:
		return label(d.DonatedAt.MonthKey())
	}
	return Unspecified
}

// Expense is money spent, usually against a budget.
type Expense struct {
	ID          ID        `json:"id"`
	Description string    `json:"description"`
	Amount      Amount    `json:"amount"`
	Currency    Currency  `json:"currency"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Budget      ID        `json:"budget"`
	IncurredAt  date.Date `json:"incurred_at"`
}

func (e Expense) CurrencyCode() string { return e.Currency.String() }

func (e Expense) GroupValue(k GroupKey) string {
	switch k {
	case ByStatus:
		return label(e.Status)
	case ByCategory:
		return label(e.Category)
	case ByCurrency:
		return label(e.Currency.Code)
	case ByMonth:
		return label(e.IncurredAt.MonthKey())
	}
	return Unspecified
}

// Grant is funding awarded by an institution.
type Grant struct {
	ID                ID        `json:"id"`
	Title             string    `json:"title"`
	Amount            Amount    `json:"amount"`
	Currency          Currency  `json:"currency"`
	Status            string    `json:"status"`
	FundingSourceType string    `json:"funding_source_type"`
	AwardedAt         date.Date `json:"awarded_at"`
}

func (g Grant) CurrencyCode() string { return g.Currency.String() }

func (g Grant) GroupValue(k GroupKey) string {
	switch k {
	case ByStatus:
		return label(g.Status)
	case ByCurrency:
		return label(g.Currency.Code)
	case ByFundingSourceType:
		return label(g.FundingSourceType)
	case ByMonth:
		return label(g.AwardedAt.MonthKey())
	}
	return Unspecified
}

// ProjectUpdate is a progress report posted on a project.
type ProjectUpdate struct {
	ID                 ID        `json:"id"`
	Project            ID        `json:"project"`
	Title              string    `json:"title"`
	Type               string    `json:"update_type"`
	ProgressPercentage Amount    `json:"progress_percentage"`
	CreatedAt          date.Date `json:"created_at"`
}

func (u ProjectUpdate) GroupValue(k GroupKey) string {
	switch k {
	case ByType:
		return label(u.Type)
	case ByMonth:
		return label(u.CreatedAt.MonthKey())
	}
	return Unspecified
}

// Project is a funded project tracked through milestones.
type Project struct {
	ID                  ID     `json:"id"`
	Name                string `json:"name"`
	Status              string `json:"status"`
	MilestonesCompleted Amount `json:"milestones_completed"`
	MilestonesTotal     Amount `json:"milestones_total"`
	ProgressPercentage  Amount `json:"progress_percentage"`
}

func (p Project) GroupValue(k GroupKey) string {
	if k == ByStatus {
		return label(p.Status)
	}
	return Unspecified
}

// value selectors for the monetary field of each record kind.

func budgetTotal(b Budget) decimal.Decimal      { return b.TotalAmount.Decimal }
func budgetSpent(b Budget) decimal.Decimal      { return b.SpentAmount.Decimal }
func campaignTarget(c Campaign) decimal.Decimal { return c.TargetAmount.Decimal }
func campaignRaised(c Campaign) decimal.Decimal { return c.RaisedAmount.Decimal }
func donationAmount(d Donation) decimal.Decimal { return d.Amount.Decimal }
func expenseAmount(e Expense) decimal.Decimal   { return e.Amount.Decimal }
func grantAmount(g Grant) decimal.Decimal       { return g.Amount.Decimal }
