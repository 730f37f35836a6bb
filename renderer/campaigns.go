package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/donors"
	md "github.com/nao1215/markdown"
)

func CampaignMarkdown(r *donors.CampaignReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Campaigns")

	if len(r.Currencies) == 0 {
		doc.PlainText("No campaigns.")
		return doc.String()
	}

	doc.H2("Totals")
	totals := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Currency", "Campaigns", "Target", "Raised", "Efficiency"},
	}
	for _, t := range r.Currencies {
		totals.Rows = append(totals.Rows, []string{
			currencyLabel(t.Currency),
			fmt.Sprint(t.Campaigns),
			t.Target.String(),
			t.Raised.String(),
			t.Efficiency.String(),
		})
	}
	doc.Table(totals)

	if len(r.Top) > 0 {
		doc.H2("Top Campaigns")
		top := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Campaign", "Status", "Target", "Raised", "Efficiency"},
		}
		for _, c := range r.Top {
			top.Rows = append(top.Rows, []string{c.Title, c.Status, c.Target.String(), c.Raised.String(), c.Efficiency.String()})
		}
		doc.Table(top)
	}

	doc.H2("Raised by Status")
	breakdownTables(doc, "Status", r.Raised)

	doc.H2("Campaigns by Status")
	countTable(doc, "Status", r.ByStatus)

	doc.H2("Campaigns by Type")
	countTable(doc, "Type", r.ByType)

	return doc.String()
}
