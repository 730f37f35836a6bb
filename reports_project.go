package donors

import "gonum.org/v1/gonum/stat"

// ProjectReport summarizes project progress and the updates posted on them.
type ProjectReport struct {
	Projects       int
	Updates        int
	MeanProgress   Percent  // average progress_percentage over all updates.
	ByUpdateType   []Bucket // update counts
	ByStatus       []Bucket // project counts
	UpdatesByMonth []Bucket // update counts, chronological
	Ranking        []ProjectLine
}

// ProjectLine is a project in the completion ranking.
type ProjectLine struct {
	ID         ID
	Name       string
	Status     string
	Completed  int
	Total      int
	Completion Percent
}

// NewProjectReport computes the project analytics.
func NewProjectReport(ds *Dataset) *ProjectReport {
	r := &ProjectReport{
		Projects:       len(ds.Projects),
		Updates:        len(ds.ProjectUpdates),
		ByUpdateType:   GroupBy(ds.ProjectUpdates, ByType, nil),
		ByStatus:       GroupBy(ds.Projects, ByStatus, nil),
		UpdatesByMonth: GroupBy(ds.ProjectUpdates, ByMonth, nil),
	}
	sortMonths(r.UpdatesByMonth)

	if len(ds.ProjectUpdates) > 0 {
		progress := make([]float64, 0, len(ds.ProjectUpdates))
		for _, u := range ds.ProjectUpdates {
			progress = append(progress, u.ProgressPercentage.InexactFloat64())
		}
		r.MeanProgress = Percent(stat.Mean(progress, nil))
	}

	for _, p := range RankByCompletion(ds.Projects) {
		r.Ranking = append(r.Ranking, ProjectLine{
			ID:         p.ID,
			Name:       p.Name,
			Status:     p.GroupValue(ByStatus),
			Completed:  int(p.MilestonesCompleted.IntPart()),
			Total:      int(p.MilestonesTotal.IntPart()),
			Completion: Completion(p),
		})
	}
	return r
}
