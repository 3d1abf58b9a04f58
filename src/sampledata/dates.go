package sampledata

import "time"

// Dates returns n consecutive daily date labels starting at start,
// formatted YYYY-MM-DD for use as a time axis.
func Dates(start time.Time, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i).Format("2006-01-02")
	}
	return out
}
