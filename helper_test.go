package donors

import (
	"testing"

	"github.com/etnz/donors/date"
	"github.com/shopspring/decimal"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// D is a helper for test to create a decimal from const
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// day is a helper for test to create a date.
func day(s string) date.Date { return date.MustParse(s) }

func assertBuckets(t *testing.T, got []Bucket, want []Bucket) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d buckets %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i].Key != want[i].Key {
			t.Errorf("bucket[%d].Key = %q, want %q", i, got[i].Key, want[i].Key)
		}
		if !got[i].Total.Equal(want[i].Total) {
			t.Errorf("bucket[%d].Total = %v, want %v", i, got[i].Total, want[i].Total)
		}
		if got[i].Count != want[i].Count {
			t.Errorf("bucket[%d].Count = %d, want %d", i, got[i].Count, want[i].Count)
		}
		if !got[i].Share.Equal(want[i].Share) {
			t.Errorf("bucket[%d].Share = %v, want %v", i, got[i].Share, want[i].Share)
		}
	}
}
