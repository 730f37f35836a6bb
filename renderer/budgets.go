package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/donors"
	md "github.com/nao1215/markdown"
)

func BudgetMarkdown(r *donors.BudgetReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budgets on %s", r.On))

	if len(r.Currencies) == 0 {
		doc.PlainText("No budgets.")
		return doc.String()
	}

	doc.H2("Totals")
	totals := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Currency", "Budgeted", "Spent", "Remaining", "Utilization", "Health"},
	}
	for _, t := range r.Currencies {
		totals.Rows = append(totals.Rows, []string{
			currencyLabel(t.Currency),
			t.Budgeted.String(),
			t.Spent.String(),
			t.Remaining.String(),
			t.Utilization.String(),
			t.Health.String(),
		})
	}
	doc.Table(totals)

	doc.H2("Budgets")
	lines := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Budget", "Category", "Budgeted", "Spent", "Utilization", "Elapsed", "Burn Rate", "Projected", "Health"},
	}
	for _, l := range r.Lines {
		lines.Rows = append(lines.Rows, []string{
			l.Name,
			l.Category,
			l.Budgeted.String(),
			l.Spent.String(),
			l.Utilization.String(),
			fmt.Sprintf("%.0f%%", l.Elapsed*100),
			l.BurnRate.String() + "/day",
			l.Projected.String(),
			healthLabel(l.Health),
		})
	}
	doc.Table(lines)

	doc.H2("Health")
	countTable(doc, "Tier", r.ByHealth)

	doc.H2("Budgeted by Category")
	breakdownTables(doc, "Category", r.ByCategory)

	doc.H2("Spent by Category")
	breakdownTables(doc, "Category", r.Spending)

	doc.H2("Budgets by Status")
	countTable(doc, "Status", r.ByStatus)

	return doc.String()
}

// healthLabel emphasizes the tiers needing attention.
func healthLabel(h donors.HealthTier) string {
	switch h {
	case donors.Warning, donors.Critical:
		return md.Bold(h.String())
	}
	return h.String()
}
