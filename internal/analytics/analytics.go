// Package analytics reduces a game's shot log and box-score counters into read-only statistics.
// Nothing here mutates its input, and every ratio is zero when its denominator is.
package analytics

// pct returns 100*n/d, or 0 when there is nothing to divide by.
func pct(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return 100 * float64(n) / float64(d)
}

// avg returns sum/n, or 0 for an empty set.
func avg(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
