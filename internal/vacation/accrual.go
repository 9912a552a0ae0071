package vacation

import (
	"math"
	"time"
)

// AccrualRatePerMonth is 15 vacation days per year of tenure.
const AccrualRatePerMonth = 1.25

// MonthsBetween counts whole calendar months elapsed from start to now,
// never partial ones: Jan 15 to Mar 10 is one month, Jan 15 to Mar 15 is
// two. Anniversaries of month-end start dates clamp to shorter months, so
// Jan 31 to Feb 28 is already a whole month.
func MonthsBetween(start, now time.Time) int {
	months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month())
	if addMonthsClamped(start, months).After(now) {
		months--
	}
	return months
}

// addMonthsClamped shifts a date by n months the way calendar anniversaries
// work: the day clamps to the last day of the target month instead of
// rolling over, so Jan 31 plus one month is Feb 28 (or 29), not Mar 3.
func addMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	day := t.Day()
	if lastDay := first.AddDate(0, 1, -1).Day(); day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Balance is accrued days minus days used by approved requests. The result
// may be fractional, and may go negative when usage exceeds accrual; no
// clamping happens here.
func Balance(startDate, now time.Time, requests []*Request) float64 {
	accrued := float64(MonthsBetween(startDate, now)) * AccrualRatePerMonth

	used := 0
	for _, r := range requests {
		if r.Status == StatusApproved {
			used += r.DaysRequested
		}
	}

	return accrued - float64(used)
}

// DaysRequested is the inclusive span of [start, end]: the ceiling of the
// difference in days, plus one. Midnight-aligned dates give exact spans;
// any time-of-day component rounds the span up before the +1.
func DaysRequested(start, end time.Time) int {
	diff := end.Sub(start)
	return int(math.Ceil(diff.Hours()/24)) + 1
}
