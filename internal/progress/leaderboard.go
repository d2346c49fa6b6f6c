package progress

import (
	"bytes"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitrank/internal/error_values"
	"github.com/limbo/fitrank/pkg/entity"
)

// LeaderboardSize is how many entries are shown.
const LeaderboardSize = 50

// Burn estimate used for the calories metric.
const caloriesPerMinute = 8.0

var metricTitles = map[entity.LeaderboardMetric]string{
	entity.MetricWorkoutCount:   "Most Workouts",
	entity.MetricTotalWeight:    "Total Weight Lifted",
	entity.MetricWorkoutStreak:  "Longest Streak",
	entity.MetricCaloriesBurned: "Calories Burned",
	entity.MetricWeeklyVolume:   "Weekly Volume",
}

var periodTitles = map[entity.LeaderboardPeriod]string{
	entity.PeriodWeekly:  "This Week",
	entity.PeriodMonthly: "This Month",
	entity.PeriodAllTime: "All Time",
}

func ParseMetric(s string) (entity.LeaderboardMetric, error) {
	m := entity.LeaderboardMetric(s)
	if _, ok := metricTitles[m]; !ok {
		return "", errorvalues.ErrUnknownMetric
	}
	return m, nil
}

// ParsePeriod defaults to weekly on an empty string.
func ParsePeriod(s string) (entity.LeaderboardPeriod, error) {
	if s == "" {
		return entity.PeriodWeekly, nil
	}
	p := entity.LeaderboardPeriod(s)
	if _, ok := periodTitles[p]; !ok {
		return "", errorvalues.ErrUnknownPeriod
	}
	return p, nil
}

// WindowStart is the earliest record time a period covers. All time is the zero time.
func WindowStart(period entity.LeaderboardPeriod, now time.Time) time.Time {
	switch period {
	case entity.PeriodWeekly:
		return WeekStart(now)
	case entity.PeriodMonthly:
		n := now.UTC()
		return time.Date(n.Year(), n.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}

// Rank orders values by value descending and assigns ranks 1..N.
// Equal values are ordered by user ID so the result does not depend on input order.
func Rank(values []entity.MetricValue) []*entity.LeaderboardEntry {
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b entity.MetricValue) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		}
		return bytes.Compare(a.UserID[:], b.UserID[:])
	})
	entries := make([]*entity.LeaderboardEntry, 0, len(sorted))
	for i, v := range sorted {
		entries = append(entries, &entity.LeaderboardEntry{
			UserID:      v.UserID,
			DisplayName: v.DisplayName,
			AvatarURL:   v.AvatarURL,
			Value:       v.Value,
			Rank:        i + 1,
			Trend:       entity.TrendSame,
		})
	}
	return entries
}

// BuildLeaderboard ranks values, keeps the top LeaderboardSize entries and
// reports the requester's rank even when it falls outside of them.
func BuildLeaderboard(metric entity.LeaderboardMetric, period entity.LeaderboardPeriod, values []entity.MetricValue, requester uuid.UUID) entity.Leaderboard {
	return FromRanking(metric, period, Rank(values), requester)
}

// FromRanking builds the leaderboard view of an already ranked list.
func FromRanking(metric entity.LeaderboardMetric, period entity.LeaderboardPeriod, ranked []*entity.LeaderboardEntry, requester uuid.UUID) entity.Leaderboard {
	lb := entity.Leaderboard{
		Title:             fmt.Sprintf("%s (%s)", metricTitles[metric], periodTitles[period]),
		Metric:            metric,
		Period:            period,
		TotalParticipants: len(ranked),
	}
	for _, e := range ranked {
		if e.UserID == requester {
			lb.UserRank = e.Rank
			break
		}
	}
	if len(ranked) > LeaderboardSize {
		ranked = ranked[:LeaderboardSize]
	}
	lb.Entries = ranked
	return lb
}

// MetricValues computes one value per user found in records, which are
// expected to be already limited to the window starting at windowStart.
// Display names are left for the caller. Output is ordered by user ID.
func MetricValues(metric entity.LeaderboardMetric, records []entity.WorkoutRecord, windowStart, now time.Time) []entity.MetricValue {
	byUser := make(map[uuid.UUID][]entity.WorkoutRecord)
	for _, r := range records {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}
	values := make([]entity.MetricValue, 0, len(byUser))
	for uid, userRecords := range byUser {
		values = append(values, entity.MetricValue{
			UserID: uid,
			Value:  metricValue(metric, userRecords, windowStart, now),
		})
	}
	slices.SortFunc(values, func(a, b entity.MetricValue) int { return bytes.Compare(a.UserID[:], b.UserID[:]) })
	return values
}

func metricValue(metric entity.LeaderboardMetric, records []entity.WorkoutRecord, windowStart, now time.Time) float64 {
	switch metric {
	case entity.MetricWorkoutCount:
		return float64(len(records))
	case entity.MetricTotalWeight:
		return Aggregate(records).TotalVolume
	case entity.MetricWorkoutStreak:
		return float64(CurrentStreak(startDates(records), now))
	case entity.MetricCaloriesBurned:
		return Aggregate(records).TotalDurationMinutes * caloriesPerMinute
	case entity.MetricWeeklyVolume:
		return Aggregate(records).TotalVolume / float64(weeksSpanned(records, windowStart, now))
	}
	return 0
}

// weeksSpanned counts calendar weeks from the window start (or the oldest
// record for an open window) through the week of now. Never less than one.
func weeksSpanned(records []entity.WorkoutRecord, windowStart, now time.Time) int {
	start := windowStart
	if start.IsZero() {
		start = now
		for _, r := range records {
			if r.StartTime.Before(start) {
				start = r.StartTime
			}
		}
	}
	weeks := int(WeekStart(now).Sub(WeekStart(start))/week) + 1
	return max(weeks, 1)
}

func startDates(records []entity.WorkoutRecord) []time.Time {
	dates := make([]time.Time, 0, len(records))
	for _, r := range records {
		dates = append(dates, r.StartTime)
	}
	return dates
}
