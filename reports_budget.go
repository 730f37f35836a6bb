package donors

import (
	"github.com/etnz/donors/date"
	"github.com/shopspring/decimal"
)

// BudgetReport is the budget analytics page: how much was allocated, how much
// was spent, and how healthy each budget is on a given day.
type BudgetReport struct {
	On         date.Date
	Currencies []BudgetTotals
	Lines      []BudgetLine
	ByCategory []CurrencyBreakdown // budgeted amounts
	Spending   []CurrencyBreakdown // spent amounts per category
	ByStatus   []Bucket            // budget counts
	ByHealth   []Bucket            // budget counts, one bucket per tier in severity order
}

// BudgetTotals sums the budgets of one currency.
type BudgetTotals struct {
	Currency    string
	Budgeted    Money
	Spent       Money
	Remaining   Money
	Utilization Percent
	Health      HealthTier
}

// BudgetLine holds the indicators of a single budget.
type BudgetLine struct {
	ID          ID
	Name        string
	Category    string
	Budgeted    Money
	Spent       Money
	Remaining   Money
	Utilization Percent
	Elapsed     float64 // fraction of the budget period elapsed.
	BurnRate    Money   // average spending per day.
	Projected   Money   // spending at the end of the period at the current pace.
	Health      HealthTier
}

// NewBudgetReport computes the budget analytics on a given day.
func NewBudgetReport(ds *Dataset, on date.Date) *BudgetReport {
	r := &BudgetReport{On: on}

	for _, b := range ds.Budgets {
		cur := b.CurrencyCode()
		elapsed := ElapsedFraction(b.StartDate, b.EndDate, on)
		spent, total := b.SpentAmount.Decimal, b.TotalAmount.Decimal
		r.Lines = append(r.Lines, BudgetLine{
			ID:          b.ID,
			Name:        b.Name,
			Category:    b.GroupValue(ByCategory),
			Budgeted:    M(total, cur),
			Spent:       M(spent, cur),
			Remaining:   M(total.Sub(spent), cur),
			Utilization: Utilization(spent, total),
			Elapsed:     elapsed,
			BurnRate:    M(BurnRate(spent, b.StartDate, on), cur),
			Projected:   M(ProjectedSpend(spent, elapsed), cur),
			Health:      ClassifyHealth(spent, total, elapsed),
		})
	}

	for _, p := range Partition(ds.Budgets, Budget.CurrencyCode) {
		budgeted, spent := M(0, p.Key), M(0, p.Key)
		for _, b := range p.Records {
			budgeted = budgeted.Add(M(b.TotalAmount.Decimal, b.CurrencyCode()))
			spent = spent.Add(M(b.SpentAmount.Decimal, b.CurrencyCode()))
		}
		r.Currencies = append(r.Currencies, BudgetTotals{
			Currency:    p.Key,
			Budgeted:    budgeted,
			Spent:       spent,
			Remaining:   budgeted.Sub(spent),
			Utilization: Utilization(spent.Decimal(), budgeted.Decimal()),
			// the elapsed time of a currency as a whole is meaningless.
			Health: ClassifyHealth(spent.Decimal(), budgeted.Decimal(), 0),
		})
	}

	r.ByCategory = AggregateByCurrency(ds.Budgets, KeyFunc[Budget](ByCategory), budgetTotal)
	r.Spending = AggregateByCurrency(ds.Budgets, KeyFunc[Budget](ByCategory), budgetSpent)
	r.ByStatus = GroupBy(ds.Budgets, ByStatus, nil)
	r.ByHealth = healthBuckets(r.Lines)
	return r
}

// healthBuckets counts lines per tier, listing every tier even when empty so
// that a chart of it keeps the same layout.
func healthBuckets(lines []BudgetLine) []Bucket {
	tiers := HealthTiers()
	counts := Aggregate(lines, func(l BudgetLine) string { return l.Health.String() }, nil)
	res := make([]Bucket, 0, len(tiers))
	for _, h := range tiers {
		b, ok := Find(counts, h.String())
		if !ok {
			b = Bucket{Key: h.String(), Total: decimal.Zero}
		}
		res = append(res, b)
	}
	return res
}
