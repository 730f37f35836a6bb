package donors

import (
	"github.com/shopspring/decimal"
)

// Bucket is one group's aggregated total, count and share of the whole.
type Bucket struct {
	Key   string
	Total decimal.Decimal
	Count int
	Share Percent // Total over the sum of all the bucket totals, in percent.
}

// Aggregate groups records by key and sums value over each group.
//
// Buckets are returned in the order their key is first seen. When value is
// nil each record counts for 1. The Share of every bucket is 0 when the grand
// total is 0. It never returns nil.
func Aggregate[R any](records []R, key func(R) string, value func(R) decimal.Decimal) []Bucket {
	buckets := make([]Bucket, 0)
	index := make(map[string]int)
	grand := decimal.Zero
	for _, r := range records {
		k := key(r)
		v := decimal.NewFromInt(1)
		if value != nil {
			v = value(r)
		}
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket{Key: k, Total: decimal.Zero})
		}
		buckets[i].Total = buckets[i].Total.Add(v)
		buckets[i].Count++
		grand = grand.Add(v)
	}
	if grand.IsZero() {
		return buckets
	}
	for i := range buckets {
		buckets[i].Share = Percent(buckets[i].Total.Mul(hundred).Div(grand).InexactFloat64())
	}
	return buckets
}

// GroupBy aggregates records by one of their GroupKey.
func GroupBy[R Grouped](records []R, key GroupKey, value func(R) decimal.Decimal) []Bucket {
	return Aggregate(records, KeyFunc[R](key), value)
}

// Total returns the sum of the bucket totals.
func Total(buckets []Bucket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.Total)
	}
	return total
}

// Count returns the number of records aggregated into buckets.
func Count(buckets []Bucket) int {
	n := 0
	for _, b := range buckets {
		n += b.Count
	}
	return n
}

// Find returns the bucket for key, and whether it exists.
func Find(buckets []Bucket, key string) (Bucket, bool) {
	for _, b := range buckets {
		if b.Key == key {
			return b, true
		}
	}
	return Bucket{}, false
}

// CurrencyBreakdown holds the aggregation of the records of a single currency.
type CurrencyBreakdown struct {
	Currency string
	Total    Money
	Count    int
	Buckets  []Bucket
}

// AggregateByCurrency partitions records by currency, then aggregates each
// partition by key. Amounts in different currencies are never added together.
// Partitions are returned in the order their currency is first seen.
func AggregateByCurrency[R Priced](records []R, key func(R) string, value func(R) decimal.Decimal) []CurrencyBreakdown {
	parts := Partition(records, func(r R) string { return r.CurrencyCode() })
	res := make([]CurrencyBreakdown, 0, len(parts))
	for _, p := range parts {
		buckets := Aggregate(p.Records, key, value)
		res = append(res, CurrencyBreakdown{
			Currency: p.Key,
			Total:    M(Total(buckets), p.Key),
			Count:    Count(buckets),
			Buckets:  buckets,
		})
	}
	return res
}

// Group is a subset of records sharing the same key.
type Group[R any] struct {
	Key     string
	Records []R
}

// Partition splits records by key, in first seen order.
func Partition[R any](records []R, key func(R) string) []Group[R] {
	groups := make([]Group[R], 0)
	index := make(map[string]int)
	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[R]{Key: k})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}
