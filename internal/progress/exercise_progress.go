package progress

import (
	"slices"
	"strings"

	"github.com/limbo/fitrank/pkg/entity"
)

type ProgressOptions struct {
	// NormalizeNames groups "Squats" and " squats" together. Off by default,
	// in which case names are matched exactly.
	NormalizeNames bool
}

func (o ProgressOptions) key(name string) string {
	if o.NormalizeNames {
		return strings.ToLower(strings.TrimSpace(name))
	}
	return name
}

type exerciseGroup struct {
	name   string
	points []entity.ProgressPoint
}

// ExerciseProgress builds one summary per exercise that has at least one
// completed set with positive weight and reps. Most tracked exercises come first.
func ExerciseProgress(records []entity.WorkoutRecord, opts ProgressOptions) []entity.ExerciseProgress {
	groups := make(map[string]*exerciseGroup)
	for _, r := range records {
		for _, ex := range r.Exercises {
			key := opts.key(ex.Name)
			for _, s := range ex.Sets {
				if !qualifying(s) {
					continue
				}
				g, ok := groups[key]
				if !ok {
					g = &exerciseGroup{name: ex.Name}
					groups[key] = g
				}
				g.points = append(g.points, entity.ProgressPoint{
					Date:   r.StartTime,
					Weight: s.Weight,
					Reps:   s.Reps,
				})
			}
		}
	}

	result := make([]entity.ExerciseProgress, 0, len(groups))
	for _, g := range groups {
		result = append(result, summarize(g))
	}
	slices.SortFunc(result, func(a, b entity.ExerciseProgress) int {
		if a.TotalSets != b.TotalSets {
			return b.TotalSets - a.TotalSets
		}
		return strings.Compare(a.Name, b.Name)
	})
	return result
}

func summarize(g *exerciseGroup) entity.ExerciseProgress {
	points := g.points
	slices.SortStableFunc(points, func(a, b entity.ProgressPoint) int { return a.Date.Compare(b.Date) })

	p := entity.ExerciseProgress{
		Name:          g.name,
		TotalSets:     len(points),
		LastPerformed: points[len(points)-1].Date,
		Progression:   points,
	}
	sum := 0.0
	for _, pt := range points {
		p.BestWeight = max(p.BestWeight, pt.Weight)
		p.BestReps = max(p.BestReps, pt.Reps)
		sum += pt.Weight
	}
	p.AverageWeight = sum / float64(len(points))
	p.Improvement = improvement(points)
	return p
}

// improvement is the percentage change from the first to the last point.
// Zero when there is nothing to compare or the baseline is zero.
func improvement(points []entity.ProgressPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	first := points[0].Weight
	if first == 0 {
		return 0
	}
	return (points[len(points)-1].Weight - first) / first * 100
}
