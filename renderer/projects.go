package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/donors"
	md "github.com/nao1215/markdown"
)

func ProjectMarkdown(r *donors.ProjectReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Projects")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Projects", fmt.Sprint(r.Projects)},
		Rows: [][]string{
			{"Updates", fmt.Sprint(r.Updates)},
			{"Mean Progress", r.MeanProgress.String()},
		},
	})

	if len(r.Ranking) > 0 {
		doc.H2("Completion")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"#", "Project", "Status", "Milestones", "Completion"},
		}
		for i, p := range r.Ranking {
			table.Rows = append(table.Rows, []string{
				fmt.Sprint(i + 1),
				p.Name,
				p.Status,
				fmt.Sprintf("%d/%d", p.Completed, p.Total),
				p.Completion.String(),
			})
		}
		doc.Table(table)
	}

	doc.H2("Projects by Status")
	countTable(doc, "Status", r.ByStatus)

	doc.H2("Updates by Type")
	countTable(doc, "Type", r.ByUpdateType)

	doc.H2("Updates by Month")
	countTable(doc, "Month", r.UpdatesByMonth)

	return doc.String()
}
