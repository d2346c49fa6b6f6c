package progress

import (
	"slices"
	"time"

	"github.com/limbo/fitrank/pkg/entity"
)

const oneDay = 24 * time.Hour

func day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func distinctDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		d = day(d)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return b.Compare(a) })
	return days
}

// CurrentStreak counts consecutive training days back from today.
// A streak whose latest day is yesterday is still alive; days in the future are ignored.
func CurrentStreak(dates []time.Time, now time.Time) int {
	today := day(now)
	days := distinctDays(dates)
	for len(days) > 0 && days[0].After(today) {
		days = days[1:]
	}
	if len(days) == 0 || today.Sub(days[0]) > oneDay {
		return 0
	}
	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) != oneDay {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak is the longest run of consecutive training days.
func LongestStreak(dates []time.Time) int {
	days := distinctDays(dates)
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) == oneDay {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// AggregateAt is Aggregate with the streak fields filled in as of now.
func AggregateAt(records []entity.WorkoutRecord, now time.Time) entity.CumulativeStats {
	stats := Aggregate(records)
	dates := startDates(records)
	stats.CurrentStreak = CurrentStreak(dates, now)
	stats.LongestStreak = LongestStreak(dates)
	return stats
}
