package donors

import "slices"

// Completion returns the share of completed milestones of a project, 0 when
// the project has no milestones.
func Completion(p Project) Percent {
	return ratio(p.MilestonesCompleted.Decimal, p.MilestonesTotal.Decimal)
}

// RankByCompletion returns projects sorted by completion, most completed
// first. Projects without milestones are kept and rank as 0% complete. Ties
// keep their input order, and the input is not modified.
func RankByCompletion(projects []Project) []Project {
	ranked := slices.Clone(projects)
	slices.SortStableFunc(ranked, func(a, b Project) int {
		return cmpDesc(Completion(a), Completion(b))
	})
	return ranked
}

// TopCampaigns returns the n campaigns that raised the largest share of their
// target, best first. n <= 0 returns them all.
func TopCampaigns(campaigns []Campaign, n int) []Campaign {
	ranked := slices.Clone(campaigns)
	slices.SortStableFunc(ranked, func(a, b Campaign) int {
		return cmpDesc(
			Efficiency(a.RaisedAmount.Decimal, a.TargetAmount.Decimal),
			Efficiency(b.RaisedAmount.Decimal, b.TargetAmount.Decimal),
		)
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// LargestDonations returns the n largest donations, n <= 0 returns them all.
// Amounts are compared regardless of their currency, callers should filter
// by currency first.
func LargestDonations(donations []Donation, n int) []Donation {
	ranked := slices.Clone(donations)
	slices.SortStableFunc(ranked, func(a, b Donation) int {
		return b.Amount.Decimal.Cmp(a.Amount.Decimal)
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

func cmpDesc(a, b Percent) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
