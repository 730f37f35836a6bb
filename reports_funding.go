package donors

// FundingReport puts grants awarded against expenses incurred.
type FundingReport struct {
	GrantsBySource     []CurrencyBreakdown
	GrantsByStatus     []Bucket // grant counts
	ExpensesByCategory []CurrencyBreakdown
	Positions          []FundingPosition
}

// FundingPosition is the net position of one currency.
type FundingPosition struct {
	Currency string
	Granted  Money
	Spent    Money
	Net      Money
	// Coverage is the share of expenses covered by grants.
	Coverage Percent
}

// NewFundingReport computes the funding analytics.
func NewFundingReport(ds *Dataset) *FundingReport {
	r := &FundingReport{
		GrantsBySource:     AggregateByCurrency(ds.Grants, KeyFunc[Grant](ByFundingSourceType), grantAmount),
		GrantsByStatus:     GroupBy(ds.Grants, ByStatus, nil),
		ExpensesByCategory: AggregateByCurrency(ds.Expenses, KeyFunc[Expense](ByCategory), expenseAmount),
	}

	granted := make(map[string]Money)
	spent := make(map[string]Money)
	var codes []string
	seen := func(code string) {
		if _, ok := granted[code]; !ok {
			granted[code] = M(0, code)
			spent[code] = M(0, code)
			codes = append(codes, code)
		}
	}
	for _, g := range ds.Grants {
		code := g.CurrencyCode()
		seen(code)
		granted[code] = granted[code].Add(M(grantAmount(g), code))
	}
	for _, e := range ds.Expenses {
		code := e.CurrencyCode()
		seen(code)
		spent[code] = spent[code].Add(M(expenseAmount(e), code))
	}
	for _, code := range codes {
		r.Positions = append(r.Positions, FundingPosition{
			Currency: code,
			Granted:  granted[code],
			Spent:    spent[code],
			Net:      granted[code].Sub(spent[code]),
			Coverage: ratio(granted[code].Decimal(), spent[code].Decimal()),
		})
	}
	return r
}
