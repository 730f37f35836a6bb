package donors

import (
	"fmt"
	"strings"

	"github.com/etnz/donors/date"
	"github.com/shopspring/decimal"
)

// HealthTier is a coarse judgment of how a budget is being spent. Tiers are
// ordered by severity.
type HealthTier int

const (
	Healthy HealthTier = iota
	Underutilized
	Warning
	Critical
)

func (h HealthTier) String() string {
	switch h {
	case Healthy:
		return "HEALTHY"
	case Underutilized:
		return "UNDERUTILIZED"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("HealthTier(%d)", int(h))
	}
}

// ParseHealthTier parses a tier name, case insensitive.
func ParseHealthTier(s string) (HealthTier, error) {
	for _, h := range HealthTiers() {
		if strings.EqualFold(s, h.String()) {
			return h, nil
		}
	}
	return Healthy, fmt.Errorf("unknown health tier %q", s)
}

// HealthTiers returns all tiers from the least to the most severe.
func HealthTiers() []HealthTier { return []HealthTier{Healthy, Underutilized, Warning, Critical} }

// Thresholds on the utilization percentage.
const (
	criticalAbove = 100 // over budget
	warningAbove  = 90
	// spending may lag behind the elapsed time by this many points before
	// being underutilized.
	underutilizedSlack = 10
)

// Utilization returns spent over budgeted in percent, 0 if nothing is budgeted.
func Utilization(spent, budgeted decimal.Decimal) Percent { return ratio(spent, budgeted) }

// ClassifyHealth assigns a tier from the money spent, the money budgeted, and
// the fraction of the budget period that has elapsed (in [0,1]).
//
// The most severe matching tier wins: over 100% utilization is Critical, over
// 90% is Warning, and lagging more than 10 points behind the elapsed time is
// Underutilized. Nothing budgeted is Healthy, there is nothing to lag behind.
func ClassifyHealth(spent, budgeted decimal.Decimal, elapsed float64) HealthTier {
	if !budgeted.IsPositive() {
		return Healthy
	}
	u := float64(Utilization(spent, budgeted))
	switch {
	case u > criticalAbove:
		return Critical
	case u > warningAbove:
		return Warning
	case u < elapsed*100-underutilizedSlack:
		return Underutilized
	}
	return Healthy
}

// ElapsedFraction returns how much of [start, end] has passed on a given day,
// in [0,1]. An unknown or inverted period has not started.
func ElapsedFraction(start, end, on date.Date) float64 {
	return date.Range{From: start, To: end}.Elapsed(on)
}

// BurnRate returns the average spending per day since start, 0 before start
// or when start is unknown.
func BurnRate(spent decimal.Decimal, start, on date.Date) decimal.Decimal {
	if start.IsZero() {
		return decimal.Zero
	}
	days := start.DaysUntil(on) + 1
	if days <= 0 {
		return decimal.Zero
	}
	return spent.Div(decimal.NewFromInt(int64(days)))
}

// ProjectedSpend extrapolates spent to the end of the period at the current
// pace, 0 if no time has elapsed.
func ProjectedSpend(spent decimal.Decimal, elapsed float64) decimal.Decimal {
	if elapsed <= 0 {
		return decimal.Zero
	}
	return spent.Div(decimal.NewFromFloat(elapsed))
}

// Efficiency returns how much of a campaign target was raised, in percent.
func Efficiency(raised, target decimal.Decimal) Percent { return ratio(raised, target) }
