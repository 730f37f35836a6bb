package donors

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAggregate(t *testing.T) {
	donations := []Donation{
		{ID: "1", Amount: A(100), Currency: C("USD"), Status: "received"},
		{ID: "2", Amount: A(50), Currency: C("USD"), Status: "pending"},
		{ID: "3", Amount: A(25.5), Currency: C("USD"), Status: "received"},
		{ID: "4", Amount: A(24.5), Currency: C("USD"), Status: ""},
	}

	got := GroupBy(donations, ByStatus, donationAmount)
	want := []Bucket{
		{Key: "RECEIVED", Total: D(125.5), Count: 2, Share: 62.75},
		{Key: "PENDING", Total: D(50), Count: 1, Share: 25},
		{Key: Unspecified, Total: D(24.5), Count: 1, Share: 12.25},
	}
	assertBuckets(t, got, want)
}

func TestAggregateCountsWhenValueIsNil(t *testing.T) {
	records := []string{"a", "b", "a", "c", "a"}
	got := Aggregate(records, func(s string) string { return s }, nil)
	want := []Bucket{
		{Key: "a", Total: D(3), Count: 3, Share: 60},
		{Key: "b", Total: D(1), Count: 1, Share: 20},
		{Key: "c", Total: D(1), Count: 1, Share: 20},
	}
	assertBuckets(t, got, want)
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate([]Donation(nil), KeyFunc[Donation](ByStatus), donationAmount)
	if got == nil {
		t.Fatalf("Aggregate(nil) = nil, want an empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Aggregate(nil) = %v, want no buckets", got)
	}
}

func TestAggregateZeroGrandTotal(t *testing.T) {
	budgets := []Budget{
		{ID: "1", Status: "active", TotalAmount: A(0)},
		{ID: "2", Status: "draft"}, // missing amount
		{ID: "3", Status: "active", TotalAmount: A(0)},
	}
	got := GroupBy(budgets, ByStatus, budgetTotal)
	for _, b := range got {
		if b.Share != 0 {
			t.Errorf("bucket %q share = %v, want 0 when the grand total is 0", b.Key, b.Share)
		}
	}
	if len(got) != 2 || got[0].Count != 2 {
		t.Errorf("GroupBy() = %v, want ACTIVE(2) and DRAFT(1)", got)
	}
}

// TestAggregateConservesTotals checks that aggregation neither loses nor
// creates money, whatever the grouping.
func TestAggregateConservesTotals(t *testing.T) {
	expenses := []Expense{
		{ID: "1", Amount: A(10.10), Category: "travel", IncurredAt: day("2025-01-03")},
		{ID: "2", Amount: A(0.20), Category: "food", IncurredAt: day("2025-02-03")},
		{ID: "3", Amount: A(1000), Category: "travel", IncurredAt: day("2025-01-13")},
		{ID: "4", Amount: A(-5), Category: "refund"},
		{ID: "5", Amount: A(33.33), Category: "", IncurredAt: day("2025-03-01")},
	}
	want := decimal.Zero
	for _, e := range expenses {
		want = want.Add(expenseAmount(e))
	}
	for _, key := range GroupKeys() {
		t.Run(key.String(), func(t *testing.T) {
			buckets := GroupBy(expenses, key, expenseAmount)
			if got := Total(buckets); !got.Equal(want) {
				t.Errorf("Total() = %v, want %v", got, want)
			}
			if got := Count(buckets); got != len(expenses) {
				t.Errorf("Count() = %d, want %d", got, len(expenses))
			}
			var shares Percent
			for _, b := range buckets {
				shares += b.Share
			}
			if !shares.Equal(100) {
				t.Errorf("sum of shares = %v, want 100%%", shares)
			}
		})
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	grants := []Grant{
		{ID: "1", Amount: A(1), FundingSourceType: "government"},
		{ID: "2", Amount: A(2), FundingSourceType: "foundation"},
		{ID: "3", Amount: A(3), FundingSourceType: "government"},
	}
	first := GroupBy(grants, ByFundingSourceType, grantAmount)
	second := GroupBy(grants, ByFundingSourceType, grantAmount)
	assertBuckets(t, second, first)
}

func TestAggregateByCurrency(t *testing.T) {
	campaigns := []Campaign{
		{ID: "1", Status: "active", RaisedAmount: A(100), TargetCurrency: C("usd")},
		{ID: "2", Status: "active", RaisedAmount: A(80), TargetCurrency: C("EUR")},
		{ID: "3", Status: "completed", RaisedAmount: A(300), TargetCurrency: C("USD")},
	}
	got := AggregateByCurrency(campaigns, KeyFunc[Campaign](ByStatus), campaignRaised)
	if len(got) != 2 {
		t.Fatalf("AggregateByCurrency() returned %d currencies, want 2", len(got))
	}
	if got[0].Currency != "USD" || !got[0].Total.Equal(USD(400)) || got[0].Count != 2 {
		t.Errorf("USD breakdown = %+v, want total 400 over 2 campaigns", got[0])
	}
	assertBuckets(t, got[0].Buckets, []Bucket{
		{Key: "ACTIVE", Total: D(100), Count: 1, Share: 25},
		{Key: "COMPLETED", Total: D(300), Count: 1, Share: 75},
	})
	if got[1].Currency != "EUR" || !got[1].Total.Equal(EUR(80)) {
		t.Errorf("EUR breakdown = %+v, want total 80", got[1])
	}
}

func TestPartition(t *testing.T) {
	groups := Partition([]int{1, 2, 3, 4, 5, 6}, func(i int) string {
		if i%2 == 0 {
			return "even"
		}
		return "odd"
	})
	if len(groups) != 2 || groups[0].Key != "odd" || groups[1].Key != "even" {
		t.Fatalf("Partition() = %v, want odd then even", groups)
	}
	if len(groups[0].Records) != 3 || groups[0].Records[2] != 5 {
		t.Errorf("odd group = %v, want [1 3 5]", groups[0].Records)
	}
}

func TestParseGroupKey(t *testing.T) {
	for _, k := range GroupKeys() {
		got, err := ParseGroupKey(k.String())
		if err != nil || got != k {
			t.Errorf("ParseGroupKey(%q) = %v, %v, want %v", k.String(), got, err, k)
		}
	}
	if got, _ := ParseGroupKey("funding_source_type"); got != ByFundingSourceType {
		t.Errorf("ParseGroupKey(funding_source_type) = %v", got)
	}
	if _, err := ParseGroupKey("colour"); err == nil {
		t.Errorf("ParseGroupKey(colour) expected an error")
	}
}
