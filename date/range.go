package date

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange return a well known period
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsEmpty reports whether the range has an unknown boundary or ends before it starts.
func (r Range) IsEmpty() bool {
	return r.From.IsZero() || r.To.IsZero() || r.To.Before(r.From)
}

// Days returns the number of days in the range, 0 when it is empty.
func (r Range) Days() int {
	if r.IsEmpty() {
		return 0
	}
	return r.From.DaysUntil(r.To) + 1
}

// Elapsed returns the fraction of the range that has passed on a given day,
// clamped to [0, 1]. The whole day 'on' counts as elapsed.
func (r Range) Elapsed(on Date) float64 {
	days := r.Days()
	if days == 0 {
		return 0
	}
	passed := r.From.DaysUntil(on) + 1
	switch {
	case passed <= 0:
		return 0
	case passed >= days:
		return 1
	}
	return float64(passed) / float64(days)
}
