// Package progress turns already-fetched workout records into stats,
// per-exercise progress, achievements, leaderboards and challenge standings.
// Nothing here touches storage or the clock; callers pass "now" in.
package progress

import (
	"math"

	"github.com/limbo/fitrank/pkg/entity"
)

// Aggregate folds records into cumulative stats. Empty input yields zero stats.
// Streak fields are left for the caller since they depend on the clock.
func Aggregate(records []entity.WorkoutRecord) entity.CumulativeStats {
	var stats entity.CumulativeStats
	timed := 0
	for _, r := range records {
		stats.TotalWorkouts++
		sets, volume := completedWork(r)
		stats.TotalSets += sets
		stats.TotalVolume += volume
		if minutes, ok := durationMinutes(r); ok {
			stats.TotalDurationMinutes += minutes
			timed++
		}
	}
	if timed > 0 {
		stats.AvgDurationMinutes = stats.TotalDurationMinutes / float64(timed)
	}
	return stats
}

// completedWork returns the number of completed sets and their volume.
// Malformed sets (negative or non-finite values) are skipped.
func completedWork(r entity.WorkoutRecord) (int, float64) {
	sets := 0
	volume := 0.0
	for _, ex := range r.Exercises {
		for _, s := range ex.Sets {
			if !countable(s) {
				continue
			}
			sets++
			volume += s.Weight * float64(s.Reps)
		}
	}
	return sets, volume
}

func countable(s entity.SetEntry) bool {
	return s.Completed && s.Reps >= 0 && s.Weight >= 0 && !math.IsInf(s.Weight, 0) && !math.IsNaN(s.Weight)
}

// qualifying sets are the ones that count towards exercise progress.
func qualifying(s entity.SetEntry) bool {
	return countable(s) && s.Reps > 0 && s.Weight > 0
}

// durationMinutes is false for records without an end time or with an end before the start.
func durationMinutes(r entity.WorkoutRecord) (float64, bool) {
	if r.EndTime == nil || r.EndTime.Before(r.StartTime) {
		return 0, false
	}
	return r.EndTime.Sub(r.StartTime).Minutes(), true
}
