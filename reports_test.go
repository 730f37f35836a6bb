package donors

import (
	"testing"
)

func testDataset() *Dataset {
	return &Dataset{
		Budgets: []Budget{
			{ID: "b1", Name: "Ops", Category: "operations", Status: "active", TotalAmount: A(1000), SpentAmount: A(1200), Currency: C("USD"), StartDate: day("2025-01-01"), EndDate: day("2025-12-31")},
			{ID: "b2", Name: "Outreach", Category: "programs", Status: "active", TotalAmount: A(1000), SpentAmount: A(100), Currency: C("USD"), StartDate: day("2025-01-01"), EndDate: day("2025-01-10")},
			{ID: "b3", Name: "Salaries", Category: "operations", Status: "draft", TotalAmount: A(500), SpentAmount: A(250), Currency: C("EUR"), StartDate: day("2025-01-01"), EndDate: day("2025-01-19")},
		},
		Campaigns: []Campaign{
			{ID: "c1", Title: "Winter", Type: "seasonal", Status: "active", TargetAmount: A(1000), RaisedAmount: A(250), TargetCurrency: C("USD")},
			{ID: "c2", Title: "Water", Type: "emergency", Status: "completed", TargetAmount: A(1000), RaisedAmount: A(1000), TargetCurrency: C("USD")},
			{ID: "c3", Title: "Books", Type: "seasonal", Status: "active", TargetAmount: A(100), RaisedAmount: A(50), TargetCurrency: C("EUR")},
		},
		Donations: []Donation{
			{ID: "d1", Amount: A(10), Currency: C("USD"), Status: "received", Type: "one_time", DonatedAt: day("2025-02-10")},
			{ID: "d2", Amount: A(30), Currency: C("USD"), Status: "received", Type: "recurring", DonatedAt: day("2025-01-05")},
			{ID: "d3", Amount: A(20), Currency: C("USD"), Status: "pending", Type: "one_time", DonatedAt: day("2025-02-01")},
			{ID: "d4", Amount: A(99), Currency: C("EUR"), Status: "received", Type: "one_time"},
		},
		Expenses: []Expense{
			{ID: "e1", Amount: A(300), Currency: C("USD"), Category: "travel"},
			{ID: "e2", Amount: A(100), Currency: C("USD"), Category: "supplies"},
			{ID: "e3", Amount: A(50), Currency: C("GBP"), Category: "travel"},
		},
		Grants: []Grant{
			{ID: "g1", Amount: A(800), Currency: C("USD"), Status: "approved", FundingSourceType: "government"},
			{ID: "g2", Amount: A(200), Currency: C("USD"), Status: "pending", FundingSourceType: "foundation"},
		},
		ProjectUpdates: []ProjectUpdate{
			{ID: "u1", Project: "p1", Type: "milestone", ProgressPercentage: A(40), CreatedAt: day("2025-03-01")},
			{ID: "u2", Project: "p1", Type: "general", ProgressPercentage: A(60), CreatedAt: day("2025-02-01")},
		},
		Projects: []Project{
			{ID: "p1", Name: "Well", Status: "active", MilestonesCompleted: A(3), MilestonesTotal: A(5)},
			{ID: "p2", Name: "School", Status: "planned"},
			{ID: "p3", Name: "Clinic", Status: "completed", MilestonesCompleted: A(4), MilestonesTotal: A(4)},
		},
	}
}

func TestNewBudgetReport(t *testing.T) {
	r := NewBudgetReport(testDataset(), day("2025-01-10"))

	if len(r.Lines) != 3 {
		t.Fatalf("got %d budget lines, want 3", len(r.Lines))
	}
	wantHealth := []HealthTier{Critical, Underutilized, Healthy}
	for i, l := range r.Lines {
		if l.Health != wantHealth[i] {
			t.Errorf("line %s health = %v, want %v", l.ID, l.Health, wantHealth[i])
		}
	}
	if l := r.Lines[1]; !l.Utilization.Equal(10) || l.Elapsed != 1 || !l.BurnRate.Equal(USD(10)) || !l.Remaining.Equal(USD(900)) {
		t.Errorf("Outreach line = %+v", l)
	}

	if len(r.Currencies) != 2 {
		t.Fatalf("got %d currencies, want USD and EUR", len(r.Currencies))
	}
	usd := r.Currencies[0]
	if usd.Currency != "USD" || !usd.Budgeted.Equal(USD(2000)) || !usd.Spent.Equal(USD(1300)) || !usd.Utilization.Equal(65) {
		t.Errorf("USD totals = %+v", usd)
	}
	if eur := r.Currencies[1]; !eur.Budgeted.Equal(EUR(500)) {
		t.Errorf("EUR totals = %+v, budgets in EUR must not be mixed with USD", eur)
	}

	assertBuckets(t, r.ByHealth, []Bucket{
		{Key: "HEALTHY", Total: D(1), Count: 1, Share: 100.0 / 3},
		{Key: "UNDERUTILIZED", Total: D(1), Count: 1, Share: 100.0 / 3},
		{Key: "WARNING", Total: D(0), Count: 0, Share: 0},
		{Key: "CRITICAL", Total: D(1), Count: 1, Share: 100.0 / 3},
	})
	assertBuckets(t, r.ByStatus, []Bucket{
		{Key: "ACTIVE", Total: D(2), Count: 2, Share: 200.0 / 3},
		{Key: "DRAFT", Total: D(1), Count: 1, Share: 100.0 / 3},
	})
	if len(r.Spending) != 2 || !r.Spending[0].Total.Equal(USD(1300)) {
		t.Errorf("Spending = %+v", r.Spending)
	}
}

func TestNewCampaignReport(t *testing.T) {
	r := NewCampaignReport(testDataset(), 2)
	if len(r.Currencies) != 2 {
		t.Fatalf("got %d currencies, want 2", len(r.Currencies))
	}
	if usd := r.Currencies[0]; !usd.Raised.Equal(USD(1250)) || !usd.Efficiency.Equal(62.5) || usd.Campaigns != 2 {
		t.Errorf("USD totals = %+v", usd)
	}
	if len(r.Top) != 2 || r.Top[0].ID != "c2" || r.Top[1].ID != "c3" {
		t.Errorf("Top = %+v, want c2 then c3", r.Top)
	}
	assertBuckets(t, r.ByType, []Bucket{
		{Key: "SEASONAL", Total: D(2), Count: 2, Share: 200.0 / 3},
		{Key: "EMERGENCY", Total: D(1), Count: 1, Share: 100.0 / 3},
	})
}

func TestNewDonationReport(t *testing.T) {
	r := NewDonationReport(testDataset())
	if len(r.Currencies) != 2 {
		t.Fatalf("got %d currencies, want 2", len(r.Currencies))
	}
	usd := r.Currencies[0]
	if !usd.Total.Equal(USD(60)) || usd.Count != 3 || !usd.Mean.Equal(USD(20)) || !usd.Median.Equal(USD(20)) || !usd.Largest.Equal(USD(30)) {
		t.Errorf("USD stats = %+v", usd)
	}
	assertBuckets(t, usd.ByMonth, []Bucket{
		{Key: "2025-01", Total: D(30), Count: 1, Share: 50},
		{Key: "2025-02", Total: D(30), Count: 2, Share: 50},
	})
	if eur := r.Currencies[1]; len(eur.ByMonth) != 1 || eur.ByMonth[0].Key != Unspecified {
		t.Errorf("EUR by month = %v, want a single unspecified month", eur.ByMonth)
	}
}

func TestNewFundingReport(t *testing.T) {
	r := NewFundingReport(testDataset())
	if len(r.Positions) != 2 {
		t.Fatalf("got %d positions, want USD and GBP", len(r.Positions))
	}
	usd := r.Positions[0]
	if !usd.Net.Equal(USD(600)) || !usd.Coverage.Equal(250) {
		t.Errorf("USD position = %+v", usd)
	}
	gbp := r.Positions[1]
	if !gbp.Net.Equal(M(-50, "GBP")) || gbp.Coverage != 0 {
		t.Errorf("GBP position = %+v", gbp)
	}
	if len(r.GrantsBySource) != 1 || len(r.GrantsBySource[0].Buckets) != 2 {
		t.Errorf("GrantsBySource = %+v", r.GrantsBySource)
	}
}

func TestNewProjectReport(t *testing.T) {
	r := NewProjectReport(testDataset())
	if r.Projects != 3 || r.Updates != 2 || !r.MeanProgress.Equal(50) {
		t.Errorf("report = %+v", r)
	}
	want := []ID{"p3", "p1", "p2"}
	for i, l := range r.Ranking {
		if l.ID != want[i] {
			t.Errorf("Ranking[%d] = %s, want %s", i, l.ID, want[i])
		}
	}
	if r.UpdatesByMonth[0].Key != "2025-02" {
		t.Errorf("UpdatesByMonth = %v, want chronological order", r.UpdatesByMonth)
	}
}

func TestNewProjectReportEmpty(t *testing.T) {
	r := NewProjectReport(&Dataset{})
	if r.MeanProgress != 0 || len(r.Ranking) != 0 || r.ByStatus == nil {
		t.Errorf("empty report = %+v", r)
	}
}

func TestNewBreakdown(t *testing.T) {
	ds := testDataset()
	b, err := NewBreakdown(ds, KindExpense, ByCategory)
	if err != nil {
		t.Fatalf("NewBreakdown() error = %v", err)
	}
	if !b.Monetary || len(b.Currencies) != 2 {
		t.Fatalf("breakdown = %+v, want USD and GBP", b)
	}
	assertBuckets(t, b.Currencies[0].Buckets, []Bucket{
		{Key: "TRAVEL", Total: D(300), Count: 1, Share: 75},
		{Key: "SUPPLIES", Total: D(100), Count: 1, Share: 25},
	})

	b, err = NewBreakdown(ds, KindProject, ByStatus)
	if err != nil {
		t.Fatalf("NewBreakdown() error = %v", err)
	}
	if b.Monetary || len(b.Currencies) != 1 || b.Currencies[0].Count != 3 {
		t.Errorf("project breakdown = %+v", b)
	}

	if _, err := NewBreakdown(ds, "pledge", ByStatus); err == nil {
		t.Errorf("NewBreakdown(pledge) expected an error")
	}
}
