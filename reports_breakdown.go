package donors

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Breakdown is the aggregation of one record kind by one group key.
//
// Monetary kinds are broken down per currency, and their totals are amounts.
// Other kinds have a single breakdown whose totals are record counts.
type Breakdown struct {
	Kind       Kind
	Key        GroupKey
	Monetary   bool
	Currencies []CurrencyBreakdown
}

// NewBreakdown aggregates the records of a kind by key.
func NewBreakdown(ds *Dataset, kind Kind, key GroupKey) (*Breakdown, error) {
	b := &Breakdown{Kind: kind, Key: key, Monetary: kind.Monetary()}
	switch kind {
	case KindBudget:
		b.Currencies = AggregateByCurrency(ds.Budgets, KeyFunc[Budget](key), budgetTotal)
	case KindCampaign:
		b.Currencies = AggregateByCurrency(ds.Campaigns, KeyFunc[Campaign](key), campaignRaised)
	case KindDonation:
		b.Currencies = AggregateByCurrency(ds.Donations, KeyFunc[Donation](key), donationAmount)
	case KindExpense:
		b.Currencies = AggregateByCurrency(ds.Expenses, KeyFunc[Expense](key), expenseAmount)
	case KindGrant:
		b.Currencies = AggregateByCurrency(ds.Grants, KeyFunc[Grant](key), grantAmount)
	case KindProjectUpdate:
		b.Currencies = counted(GroupBy(ds.ProjectUpdates, key, nil))
	case KindProject:
		b.Currencies = counted(GroupBy(ds.Projects, key, nil))
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
	if key == ByMonth {
		for _, c := range b.Currencies {
			sortMonths(c.Buckets)
		}
	}
	return b, nil
}

// counted wraps count buckets of non monetary records.
func counted(buckets []Bucket) []CurrencyBreakdown {
	if len(buckets) == 0 {
		return []CurrencyBreakdown{}
	}
	return []CurrencyBreakdown{{Count: Count(buckets), Total: M(decimal.Zero, ""), Buckets: buckets}}
}

// sortMonths sorts month buckets chronologically.
func sortMonths(buckets []Bucket) {
	slices.SortStableFunc(buckets, func(a, b Bucket) int { return compareMonths(a.Key, b.Key) })
}
