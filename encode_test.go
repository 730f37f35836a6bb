package donors

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const snapshot = `{"kind":"budget","id":1,"name":"Field ops","category":"operations","status":"active","total_amount":"1000.00","spent_amount":250,"currency":{"code":"USD"},"start_date":"2025-01-01","end_date":"2025-12-31"}
{"kind":"campaign","id":"c1","title":"Winter","campaign_type":"seasonal","status":"active","target_amount":5000,"raised_amount":"1250","target_currency":"EUR"}

{"kind":"donation","id":7,"amount":"50","currency":{"code":"eur"},"status":"received","donation_type":"one_time","campaign":"c1","donated_at":"2025-02-03T10:00:00Z"}
{"kind":"expenses","id":8,"amount":12.5,"currency":null,"category":"travel","budget":1,"incurred_at":null}
{"kind":"grant","id":9,"title":"State grant","amount":"20000","currency":{"code":"USD"},"status":"approved","funding_source_type":"government","awarded_at":"2025-01-15"}
{"kind":"project_update","id":10,"project":3,"update_type":"milestone","progress_percentage":"40","created_at":"2025-03-01"}
{"kind":"project","id":3,"name":"Well","status":"active","milestones_completed":2,"milestones_total":5}
`

func TestDecodeDataset(t *testing.T) {
	ds, err := DecodeDataset(strings.NewReader(snapshot))
	if err != nil {
		t.Fatalf("DecodeDataset() error = %v", err)
	}
	if ds.Len() != 7 {
		t.Fatalf("DecodeDataset() decoded %d records, want 7", ds.Len())
	}
	for _, k := range Kinds() {
		if ds.Count(k) != 1 {
			t.Errorf("Count(%s) = %d, want 1", k, ds.Count(k))
		}
	}

	b := ds.Budgets[0]
	if b.ID != "1" || !b.TotalAmount.Equal(D(1000)) || !b.SpentAmount.Equal(D(250)) || b.CurrencyCode() != "USD" {
		t.Errorf("budget = %+v", b)
	}
	if c := ds.Campaigns[0]; c.CurrencyCode() != "EUR" || !c.RaisedAmount.Equal(D(1250)) {
		t.Errorf("campaign = %+v", c)
	}
	if d := ds.Donations[0]; d.CurrencyCode() != "EUR" || d.DonatedAt.String() != "2025-02-03" || d.Campaign != "c1" {
		t.Errorf("donation = %+v", d)
	}
	if e := ds.Expenses[0]; e.CurrencyCode() != "" || !e.IncurredAt.IsZero() {
		t.Errorf("expense = %+v", e)
	}
	if got := ds.Currencies(); strings.Join(got, ",") != "USD,EUR," {
		t.Errorf("Currencies() = %q, want USD, EUR and the unknown one", got)
	}
}

func TestDecodeDatasetSkipsInvalidRecords(t *testing.T) {
	in := `{"kind":"donation","id":1,"amount":10}
not json
{"kind":"pledge","id":2}
{"kind":"donation","amount":10}
{"kind":"donation","id":3,"amount":{"value":10}}
{"kind":"donation","id":4,"amount":"ten","donated_at":"2025-01-01"}
{"kind":"donation","id":5,"amount":10,"donated_at":"last tuesday"}
`
	ds, err := DecodeDataset(strings.NewReader(in))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("DecodeDataset() error = %v, want a *ValidationError", err)
	}
	wantLines := []int{2, 3, 4, 7}
	if len(verr.Errors) != len(wantLines) {
		t.Errorf("got %d record errors, want %d: %v", len(verr.Errors), len(wantLines), verr.Errors)
	}
	for i, e := range verr.Errors {
		if i < len(wantLines) && e.Index != wantLines[i] {
			t.Errorf("error %d on line %d, want line %d", i, e.Index, wantLines[i])
		}
	}
	if ds == nil || len(ds.Donations) != 3 {
		t.Fatalf("valid donations must still be decoded, got %v", ds)
	}
	for _, d := range ds.Donations[1:] {
		if !d.Amount.IsZero() {
			t.Errorf("donation %s amount = %v, want 0", d.ID, d.Amount)
		}
	}
}

func TestDecodeDatasetCoercesFields(t *testing.T) {
	in := `{"kind":"budget","id":1,"total_amount":true,"spent_amount":{"v":3},"currency":"USD"}
{"kind":"budget","id":2,"total_amount":100,"spent_amount":40,"currency":"USD","category":["ops"]}
{"kind":"donation","id":3,"amount":5,"currency":7,"status":7,"donation_type":false,"campaign":{"id":1}}
`
	ds, err := DecodeDataset(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeDataset() error = %v", err)
	}
	if len(ds.Budgets) != 2 || len(ds.Donations) != 1 {
		t.Fatalf("DecodeDataset() kept %d budgets and %d donations, want 2 and 1", len(ds.Budgets), len(ds.Donations))
	}

	b := ds.Budgets[0]
	if !b.TotalAmount.IsZero() || !b.SpentAmount.IsZero() {
		t.Errorf("budget amounts = %v, %v, want 0", b.TotalAmount, b.SpentAmount)
	}
	if got := ds.Budgets[1].GroupValue(ByCategory); got != Unspecified {
		t.Errorf("array category grouped as %q, want %q", got, Unspecified)
	}
	totals := NewBudgetReport(ds, day("2025-01-01")).Currencies
	if len(totals) != 1 || !totals[0].Budgeted.Equal(USD(100)) {
		t.Errorf("budget totals = %v, want 100 USD budgeted", totals)
	}

	d := ds.Donations[0]
	if d.Status != "7" || d.Type != "false" {
		t.Errorf("donation status, type = %q, %q, want \"7\", \"false\"", d.Status, d.Type)
	}
	if d.Currency.Code != "" || d.Campaign != "" {
		t.Errorf("donation currency, campaign = %q, %q, want empty", d.Currency.Code, d.Campaign)
	}
	if got := GroupBy(ds.Donations, ByStatus, nil); len(got) != 1 || got[0].Key != "7" || got[0].Count != 1 {
		t.Errorf("GroupBy(status) = %v, want one donation in 7", got)
	}
}

func TestEncodeDatasetRoundTrip(t *testing.T) {
	ds, err := DecodeDataset(strings.NewReader(snapshot))
	if err != nil {
		t.Fatalf("DecodeDataset() error = %v", err)
	}
	var buf bytes.Buffer
	if err := EncodeDataset(&buf, ds); err != nil {
		t.Fatalf("EncodeDataset() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("EncodeDataset() wrote %d lines, want 7", len(lines))
	}
	for i, k := range Kinds() {
		if want := `{"kind":"` + string(k) + `",`; !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %s, want prefix %s", i, lines[i], want)
		}
	}

	again, err := DecodeDataset(&buf)
	if err != nil {
		t.Fatalf("DecodeDataset(encoded) error = %v", err)
	}
	if again.Len() != ds.Len() {
		t.Errorf("round trip lost records: %d, want %d", again.Len(), ds.Len())
	}
	if !again.Budgets[0].TotalAmount.Equal(ds.Budgets[0].TotalAmount.Decimal) || again.Budgets[0].EndDate != ds.Budgets[0].EndDate {
		t.Errorf("round trip budget = %+v, want %+v", again.Budgets[0], ds.Budgets[0])
	}
}

func TestDecode(t *testing.T) {
	raws := []json.RawMessage{
		json.RawMessage(`{"id": 1, "name": "ok", "milestones_total": 3}`),
		json.RawMessage(`[1, 2]`),
		json.RawMessage(`{"id": 2, "name": 12}`),
	}
	projects, err := Decode[Project](KindProject, raws)
	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Errors) != 2 {
		t.Fatalf("Decode() error = %v, want 2 record errors", err)
	}
	if verr.Errors[0].Index != 2 || verr.Errors[1].Index != 3 {
		t.Errorf("record errors = %v, want records #2 and #3", verr.Errors)
	}
	if len(projects) != 1 || projects[0].Name != "ok" {
		t.Errorf("Decode() = %v, want the valid project", projects)
	}
}

func TestSchema(t *testing.T) {
	for _, k := range Kinds() {
		s, err := Schema(k)
		if err != nil {
			t.Fatalf("Schema(%s) error = %v", k, err)
		}
		props := s["properties"].(map[string]any)
		if _, ok := props["id"]; !ok {
			t.Errorf("Schema(%s) has no id property", k)
		}
	}
	s, _ := Schema(KindBudget)
	props := s["properties"].(map[string]any)
	for _, field := range []string{"total_amount", "spent_amount", "status", "category", "currency"} {
		if _, ok := props[field]; !ok {
			t.Errorf("budget schema misses %q", field)
		}
	}
	if _, err := Schema("pledge"); err == nil {
		t.Errorf("Schema(pledge) expected an error")
	}
}

func TestFilter(t *testing.T) {
	ds, _ := DecodeDataset(strings.NewReader(snapshot))
	eur := ds.Filter("eur")
	if len(eur.Budgets) != 0 || len(eur.Campaigns) != 1 || len(eur.Donations) != 1 || len(eur.Grants) != 0 {
		t.Errorf("Filter(eur) = %+v", eur)
	}
	if len(eur.Projects) != 1 || len(eur.ProjectUpdates) != 1 {
		t.Errorf("Filter must keep non monetary records")
	}
	if ds.Filter("") != ds {
		t.Errorf("Filter(\"\") must return the dataset itself")
	}
}
