package progress

import (
	"slices"
	"time"

	"github.com/limbo/fitrank/pkg/entity"
)

type achievementRule int

const (
	ruleWorkoutCount achievementRule = iota
	ruleVolume
	ruleProgressiveOverload
)

type achievementDef struct {
	id          string
	title       string
	description string
	icon        string
	category    entity.AchievementCategory
	rule        achievementRule
	threshold   float64
}

var catalog = []achievementDef{
	{"first_workout", "First Steps", "Complete your first workout", "footprints", entity.CategoryMilestone, ruleWorkoutCount, 1},
	{"week_warrior", "Week Warrior", "Complete 7 workouts", "calendar", entity.CategoryConsistency, ruleWorkoutCount, 7},
	{"monthly_master", "Monthly Master", "Complete 30 workouts", "calendar-check", entity.CategoryConsistency, ruleWorkoutCount, 30},
	{"century_club", "Century Club", "Complete 100 workouts", "trophy", entity.CategoryMilestone, ruleWorkoutCount, 100},
	{"volume_1k", "Ton Lifter", "Lift a total volume of 1,000", "dumbbell", entity.CategoryStrength, ruleVolume, 1_000},
	{"volume_10k", "Heavy Lifter", "Lift a total volume of 10,000", "weight", entity.CategoryStrength, ruleVolume, 10_000},
	{"volume_100k", "Iron Legend", "Lift a total volume of 100,000", "crown", entity.CategoryStrength, ruleVolume, 100_000},
	{"progressive_overload", "Progressive Overload", "Lift more than your first recorded weight on any exercise", "trending-up", entity.CategoryProgress, ruleProgressiveOverload, 0},
}

// Achievements evaluates the fixed catalog against stats and the record history.
// opts decides which exercise names count as the same exercise.
func Achievements(stats entity.CumulativeStats, records []entity.WorkoutRecord, opts ProgressOptions) []entity.Achievement {
	chrono := chronological(records)
	result := make([]entity.Achievement, 0, len(catalog))
	for _, def := range catalog {
		a := entity.Achievement{
			ID:          def.id,
			Title:       def.title,
			Description: def.description,
			Icon:        def.icon,
			Category:    def.category,
		}
		switch def.rule {
		case ruleWorkoutCount:
			value := float64(stats.TotalWorkouts)
			a.Earned = value >= def.threshold
			a.Progress = ptr(percentOf(value, def.threshold))
			a.Target = ptr(def.threshold)
			if a.Earned {
				a.EarnedDate = nthWorkoutDate(chrono, int(def.threshold))
			}
		case ruleVolume:
			a.Earned = stats.TotalVolume >= def.threshold
			a.Progress = ptr(percentOf(stats.TotalVolume, def.threshold))
			a.Target = ptr(def.threshold)
			if a.Earned {
				a.EarnedDate = volumeCrossedDate(chrono, def.threshold)
			}
		case ruleProgressiveOverload:
			date, ok := progressiveOverload(chrono, opts)
			a.Earned = ok
			if ok {
				a.EarnedDate = &date
				a.Progress = ptr(100)
			} else {
				a.Progress = ptr(0)
			}
		}
		result = append(result, a)
	}
	return result
}

func ptr(v float64) *float64 {
	return &v
}

func percentOf(value, threshold float64) float64 {
	if threshold <= 0 {
		return 100
	}
	return min(value/threshold*100, 100)
}

// chronological returns a copy of records ordered oldest first.
func chronological(records []entity.WorkoutRecord) []entity.WorkoutRecord {
	chrono := slices.Clone(records)
	slices.SortStableFunc(chrono, func(a, b entity.WorkoutRecord) int { return a.StartTime.Compare(b.StartTime) })
	return chrono
}

// nthWorkoutDate is the start of the n-th oldest record. When the fetched window
// holds fewer records, the oldest one is the best available answer.
func nthWorkoutDate(chrono []entity.WorkoutRecord, n int) *time.Time {
	if len(chrono) == 0 {
		return nil
	}
	idx := min(max(n, 1), len(chrono)) - 1
	date := chrono[idx].StartTime
	return &date
}

func volumeCrossedDate(chrono []entity.WorkoutRecord, threshold float64) *time.Time {
	if len(chrono) == 0 {
		return nil
	}
	total := 0.0
	for _, r := range chrono {
		_, volume := completedWork(r)
		total += volume
		if total >= threshold {
			date := r.StartTime
			return &date
		}
	}
	date := chrono[0].StartTime
	return &date
}

// progressiveOverload reports the earliest workout in which some exercise was
// performed with more weight than in its first recorded qualifying set.
// Only sets from later workouts count; ramping up within the first session does not.
func progressiveOverload(chrono []entity.WorkoutRecord, opts ProgressOptions) (time.Time, bool) {
	type baseline struct {
		weight float64
		at     time.Time
	}
	first := make(map[string]baseline)
	for _, r := range chrono {
		for _, ex := range r.Exercises {
			for _, s := range ex.Sets {
				if !qualifying(s) {
					continue
				}
				key := opts.key(ex.Name)
				b, ok := first[key]
				if !ok {
					first[key] = baseline{weight: s.Weight, at: r.StartTime}
					continue
				}
				if r.StartTime.After(b.at) && s.Weight > b.weight {
					return r.StartTime, true
				}
			}
		}
	}
	return time.Time{}, false
}
