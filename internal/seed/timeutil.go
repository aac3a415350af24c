package seed

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// daysAgo returns the calendar date n days before now; n=0 is today.
func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(dateLayout)
}

// datetimeAgo returns a full timestamp n days before now, at the current
// time of day.
func datetimeAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

type hourWindow struct {
	start int
	end   int
}

var mealHourWindows = map[string]hourWindow{
	"breakfast": {6, 9},
	"lunch":     {11, 13},
	"dinner":    {17, 20},
	"snack":     {14, 16},
}

// mealTimeOfDay places a timestamp on the given date with an hour drawn from
// the meal type's window. Unknown meal types fall back to 8-20.
func (g *RNG) mealTimeOfDay(date, mealType string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse meal date %q: %w", date, err)
	}
	w, ok := mealHourWindows[mealType]
	if !ok {
		w = hourWindow{8, 20}
	}
	hour := g.Int(w.start, w.end)
	minute := g.Int(0, 59)
	second := g.Int(0, 59)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, time.Local), nil
}

// datesBetween lists calendar dates between two day-offsets from today,
// inclusive on both ends, oldest first.
func datesBetween(startOffset, endOffset int) []string {
	if startOffset < endOffset {
		startOffset, endOffset = endOffset, startOffset
	}
	dates := make([]string, 0, startOffset-endOffset+1)
	for n := startOffset; n >= endOffset; n-- {
		dates = append(dates, daysAgo(n))
	}
	return dates
}

// generateID produces a {prefix}-{base36 timestamp}-{base36 random} id.
// Unique in practice, not collision-proof; fine for seed data.
func (g *RNG) generateID(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strconv.FormatInt(int64(g.r.Intn(36*36*36*36)), 36)
	return prefix + "-" + ts + "-" + suffix
}

// dateID produces the deterministic {prefix}-{date} form used by tables
// keyed one-row-per-day, which keeps re-seeding without a clear idempotent.
func dateID(prefix, date string) string {
	return prefix + "-" + date
}
