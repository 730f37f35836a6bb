// Package renderer turns reports into markdown documents and series into
// terminal bar charts.
package renderer

import (
	"fmt"

	"github.com/etnz/donors"
	md "github.com/nao1215/markdown"
)

// currencyLabel names a currency partition. Records without a currency are
// grouped under donors.Unspecified.
func currencyLabel(code string) string {
	if code == "" {
		return donors.Unspecified
	}
	return code
}

// amountTable writes buckets whose totals are amounts in currency.
func amountTable(doc *md.Markdown, keyHeader, currency string, buckets []donors.Bucket) {
	if len(buckets) == 0 {
		doc.PlainText("No records.")
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{keyHeader, "Amount", "Count", "Share"},
	}
	for _, b := range buckets {
		table.Rows = append(table.Rows, []string{
			b.Key,
			donors.M(b.Total, currency).String(),
			fmt.Sprint(b.Count),
			b.Share.String(),
		})
	}
	doc.Table(table)
}

// countTable writes buckets whose totals are record counts.
func countTable(doc *md.Markdown, keyHeader string, buckets []donors.Bucket) {
	if len(buckets) == 0 {
		doc.PlainText("No records.")
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{keyHeader, "Count", "Share"},
	}
	for _, b := range buckets {
		table.Rows = append(table.Rows, []string{b.Key, fmt.Sprint(b.Count), b.Share.String()})
	}
	doc.Table(table)
}

// breakdownTables writes one amount table per currency, under a level 3
// heading.
func breakdownTables(doc *md.Markdown, keyHeader string, breakdowns []donors.CurrencyBreakdown) {
	if len(breakdowns) == 0 {
		doc.PlainText("No records.")
		return
	}
	for _, c := range breakdowns {
		doc.H3(fmt.Sprintf("%s (%s)", currencyLabel(c.Currency), c.Total))
		amountTable(doc, keyHeader, c.Currency, c.Buckets)
	}
}
