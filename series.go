package donors

// Series is what a chart renders: one label, value and color per bucket.
type Series struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors"`
}

// SeriesPoint is a single entry of a Series.
type SeriesPoint struct {
	Label string
	Value float64
	Color string
}

// ToSeries converts buckets into a chart series, coloring each bucket with
// palette. A nil palette means DefaultPalette.
//
// Colors only depend on the bucket key and position, so the same buckets
// always get the same colors. Empty buckets give an empty (non nil) series.
func ToSeries(buckets []Bucket, palette *Palette) Series {
	if palette == nil {
		palette = DefaultPalette
	}
	s := Series{
		Labels: make([]string, 0, len(buckets)),
		Data:   make([]float64, 0, len(buckets)),
		Colors: make([]string, 0, len(buckets)),
	}
	for i, b := range buckets {
		s.Labels = append(s.Labels, b.Key)
		s.Data = append(s.Data, b.Total.InexactFloat64())
		s.Colors = append(s.Colors, palette.Color(b.Key, i))
	}
	return s
}

// ToShareSeries is like ToSeries but plots the bucket shares instead of totals.
func ToShareSeries(buckets []Bucket, palette *Palette) Series {
	s := ToSeries(buckets, palette)
	for i, b := range buckets {
		s.Data[i] = float64(b.Share)
	}
	return s
}

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s.Labels) }

// Points returns the series as a list of points.
func (s Series) Points() []SeriesPoint {
	points := make([]SeriesPoint, 0, s.Len())
	for i := range s.Labels {
		points = append(points, SeriesPoint{Label: s.Labels[i], Value: s.Data[i], Color: s.Colors[i]})
	}
	return points
}
