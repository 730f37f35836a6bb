package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/donors"
	md "github.com/nao1215/markdown"
)

func DonationMarkdown(r *donors.DonationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Donations")

	if len(r.Currencies) == 0 {
		doc.PlainText("No donations.")
		return doc.String()
	}

	doc.H2("Statistics")
	stats := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Currency", "Total", "Count", "Mean", "Median", "Largest"},
	}
	for _, s := range r.Currencies {
		stats.Rows = append(stats.Rows, []string{
			currencyLabel(s.Currency),
			s.Total.String(),
			fmt.Sprint(s.Count),
			s.Mean.String(),
			s.Median.String(),
			s.Largest.String(),
		})
	}
	doc.Table(stats)

	for _, s := range r.Currencies {
		doc.H2(fmt.Sprintf("Donations in %s", currencyLabel(s.Currency)))
		doc.H3("Monthly Trend")
		amountTable(doc, "Month", s.Currency, s.ByMonth)
		doc.H3("By Type")
		amountTable(doc, "Type", s.Currency, s.ByType)
	}

	doc.H2("Donations by Status")
	countTable(doc, "Status", r.ByStatus)

	return doc.String()
}
