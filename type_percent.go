package donors

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// ratio returns num/den*100, or 0 when den is not positive.
func ratio(num, den decimal.Decimal) Percent {
	if !den.IsPositive() {
		return 0
	}
	return Percent(num.Mul(hundred).Div(den).InexactFloat64())
}

var hundred = decimal.NewFromInt(100)
