package donors

import (
	"slices"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// DonationReport summarizes donations, per currency.
type DonationReport struct {
	Currencies []DonationStats
	ByStatus   []Bucket // donation counts
}

// DonationStats holds the statistics of the donations in one currency.
type DonationStats struct {
	Currency string
	Total    Money
	Count    int
	Mean     Money
	Median   Money
	Largest  Money
	ByMonth  []Bucket // amounts, chronological
	ByType   []Bucket // amounts
}

// NewDonationReport computes the donation analytics.
func NewDonationReport(ds *Dataset) *DonationReport {
	r := &DonationReport{ByStatus: GroupBy(ds.Donations, ByStatus, nil)}
	for _, p := range Partition(ds.Donations, Donation.CurrencyCode) {
		cur := p.Key
		amounts := make([]float64, 0, len(p.Records))
		total := M(0, cur)
		for _, d := range p.Records {
			v := donationAmount(d)
			total = total.Add(M(v, d.CurrencyCode()))
			amounts = append(amounts, v.InexactFloat64())
		}
		slices.Sort(amounts)

		byMonth := GroupBy(p.Records, ByMonth, donationAmount)
		sortMonths(byMonth)

		r.Currencies = append(r.Currencies, DonationStats{
			Currency: cur,
			Total:    total,
			Count:    len(p.Records),
			Mean:     M(roundTo(stat.Mean(amounts, nil), cur), cur),
			Median:   M(roundTo(stat.Quantile(0.5, stat.Empirical, amounts, nil), cur), cur),
			Largest:  M(donationAmount(LargestDonations(p.Records, 1)[0]), cur),
			ByMonth:  byMonth,
			ByType:   GroupBy(p.Records, ByType, donationAmount),
		})
	}
	return r
}

// compareMonths orders "YYYY-MM" keys, with Unspecified last.
func compareMonths(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == Unspecified:
		return 1
	case b == Unspecified:
		return -1
	case a < b:
		return -1
	}
	return 1
}

// roundTo rounds a float statistic to the currency fraction digits.
func roundTo(v float64, currency string) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(int32(M(0, currency).currency().Fraction))
}
