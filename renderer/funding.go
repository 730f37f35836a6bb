package renderer

import (
	"bytes"

	"github.com/etnz/donors"
	md "github.com/nao1215/markdown"
)

func FundingMarkdown(r *donors.FundingReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Funding")

	if len(r.Positions) > 0 {
		doc.H2("Net Position")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Currency", "Granted", "Spent", "Net", "Coverage"},
		}
		for _, p := range r.Positions {
			net := p.Net.String()
			if p.Net.IsNegative() {
				net = md.Bold(net)
			}
			table.Rows = append(table.Rows, []string{
				currencyLabel(p.Currency),
				p.Granted.String(),
				p.Spent.String(),
				net,
				p.Coverage.String(),
			})
		}
		doc.Table(table)
	}

	doc.H2("Grants by Funding Source")
	breakdownTables(doc, "Funding Source", r.GrantsBySource)

	doc.H2("Grants by Status")
	countTable(doc, "Status", r.GrantsByStatus)

	doc.H2("Expenses by Category")
	breakdownTables(doc, "Category", r.ExpensesByCategory)

	return doc.String()
}
