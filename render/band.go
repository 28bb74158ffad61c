package render

// Band is a half-open column interval [Start, End) owned by one worker
type Band struct {
	Start int
	End   int
}

// Width returns the number of columns in the band
func (b Band) Width() int {
	return b.End - b.Start
}

// Contains reports whether column x belongs to the band
func (b Band) Contains(x int) bool {
	return x >= b.Start && x < b.End
}

// Partition splits [0, width) into n contiguous bands; the last absorbs the remainder.
// n is clamped to [1, width] so no band is empty. Width 0 yields no bands.
func Partition(width, n int) []Band {
	if width <= 0 {
		return nil
	}
	n = min(max(n, 1), width)

	size := width / n
	bands := make([]Band, n)
	for i := range bands {
		bands[i] = Band{Start: i * size, End: (i + 1) * size}
	}
	bands[n-1].End = width
	return bands
}
