package attendance

import (
	"math"
	"time"
)

// ExpectedWorkDays counts the weekdays (Monday through Friday) in the given
// calendar month by walking every date from the first to the last day.
func ExpectedWorkDays(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	workDays := 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			workDays++
		}
	}
	return workDays
}

// Percentage returns the attendance ratio as a percentage rounded to two
// decimal places on the scaled integer. Zero expected days yields zero
// rather than a division by zero.
func Percentage(presentCount int64, expectedWorkDays int) float64 {
	if expectedWorkDays == 0 {
		return 0
	}
	return math.Round(float64(presentCount)/float64(expectedWorkDays)*10000) / 100
}
