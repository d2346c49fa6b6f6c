package progress

import (
	"time"

	"github.com/limbo/fitrank/pkg/entity"
)

const week = 7 * 24 * time.Hour

// WeekStart returns Monday 00:00 UTC of the week containing t.
func WeekStart(t time.Time) time.Time {
	d := day(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// Weekly buckets records into the given number of weeks ending with the week of now.
// Empty weeks are kept so the result always has exactly weeks entries, oldest first.
func Weekly(records []entity.WorkoutRecord, weeks int, now time.Time) []entity.WeeklyAggregate {
	if weeks <= 0 {
		return []entity.WeeklyAggregate{}
	}
	current := WeekStart(now)
	first := current.AddDate(0, 0, -7*(weeks-1))
	result := make([]entity.WeeklyAggregate, weeks)
	for i := range result {
		result[i].WeekStart = first.AddDate(0, 0, 7*i)
	}
	for _, r := range records {
		ws := WeekStart(r.StartTime)
		if ws.Before(first) || ws.After(current) {
			continue
		}
		bucket := &result[int(ws.Sub(first)/week)]
		bucket.Workouts++
		sets, volume := completedWork(r)
		bucket.CompletedSets += sets
		bucket.Volume += volume
		if minutes, ok := durationMinutes(r); ok {
			bucket.DurationMinutes += minutes
		}
	}
	return result
}
