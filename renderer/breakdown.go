package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/donors"
	md "github.com/nao1215/markdown"
)

func BreakdownMarkdown(b *donors.Breakdown) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Breakdown of %s records by %s", b.Kind, b.Key))

	if len(b.Currencies) == 0 {
		doc.PlainText("No records.")
		return doc.String()
	}
	if !b.Monetary {
		countTable(doc, b.Key.String(), b.Currencies[0].Buckets)
		return doc.String()
	}
	for _, c := range b.Currencies {
		doc.H2(fmt.Sprintf("%s: %s in %d records", currencyLabel(c.Currency), c.Total, c.Count))
		amountTable(doc, b.Key.String(), c.Currency, c.Buckets)
	}
	return doc.String()
}
