package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	AvatarURL    string
	PasswordHash string
}

// SetEntry is a single performed set. Weight is unit-less.
type SetEntry struct {
	Reps      int      `json:"reps"`
	Weight    float64  `json:"weight"`
	Completed bool     `json:"completed"`
	RPE       *float64 `json:"rpe,omitempty"`
}

type ExerciseEntry struct {
	Name       string     `json:"name"`
	Sets       []SetEntry `json:"sets"`
	TargetReps *int       `json:"target_reps,omitempty"`
	RestTime   *int       `json:"rest_time,omitempty"`
}

type WorkoutRecord struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"uid"`
	Name      string          `json:"name"`
	StartTime time.Time       `json:"start_time"`
	EndTime   *time.Time      `json:"end_time,omitempty"`
	Exercises []ExerciseEntry `json:"exercises"`
	CreatedAt time.Time       `json:"created_at"`
}

type CumulativeStats struct {
	TotalWorkouts        int     `json:"total_workouts"`
	TotalSets            int     `json:"total_sets"`
	TotalVolume          float64 `json:"total_volume"`
	AvgDurationMinutes   float64 `json:"avg_duration_minutes"`
	TotalDurationMinutes float64 `json:"total_duration_minutes"`
	CurrentStreak        int     `json:"current_streak"`
	LongestStreak        int     `json:"longest_streak"`
}

type WeeklyAggregate struct {
	WeekStart       time.Time `json:"week_start"`
	Workouts        int       `json:"workouts"`
	CompletedSets   int       `json:"completed_sets"`
	Volume          float64   `json:"volume"`
	DurationMinutes float64   `json:"duration_minutes"`
}

type AchievementCategory string

const (
	CategoryStrength    AchievementCategory = "strength"
	CategoryConsistency AchievementCategory = "consistency"
	CategoryMilestone   AchievementCategory = "milestone"
	CategoryProgress    AchievementCategory = "progress"
)

type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	Earned      bool                `json:"earned"`
	EarnedDate  *time.Time          `json:"earned_date,omitempty"`
	Progress    *float64            `json:"progress,omitempty"`
	Target      *float64            `json:"target,omitempty"`
}

type ProgressPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
}

type ExerciseProgress struct {
	Name          string          `json:"name"`
	BestWeight    float64         `json:"best_weight"`
	BestReps      int             `json:"best_reps"`
	TotalSets     int             `json:"total_sets"`
	AverageWeight float64         `json:"average_weight"`
	Improvement   float64         `json:"improvement"`
	LastPerformed time.Time       `json:"last_performed"`
	Progression   []ProgressPoint `json:"progression"`
}

type LeaderboardMetric string

const (
	MetricWorkoutCount   LeaderboardMetric = "workout_count"
	MetricTotalWeight    LeaderboardMetric = "total_weight"
	MetricWorkoutStreak  LeaderboardMetric = "workout_streak"
	MetricCaloriesBurned LeaderboardMetric = "calories_burned"
	MetricWeeklyVolume   LeaderboardMetric = "weekly_volume"
)

type LeaderboardPeriod string

const (
	PeriodWeekly  LeaderboardPeriod = "weekly"
	PeriodMonthly LeaderboardPeriod = "monthly"
	PeriodAllTime LeaderboardPeriod = "all_time"
)

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendSame Trend = "same"
)

// MetricValue is one user's aggregate for a leaderboard metric.
type MetricValue struct {
	UserID      uuid.UUID `json:"uid"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Value       float64   `json:"value"`
}

type LeaderboardEntry struct {
	UserID      uuid.UUID `json:"uid"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Value       float64   `json:"value"`
	Rank        int       `json:"rank"`
	Trend       Trend     `json:"trend"`
}

type Leaderboard struct {
	Title             string              `json:"title"`
	Metric            LeaderboardMetric   `json:"metric"`
	Period            LeaderboardPeriod   `json:"period"`
	Entries           []*LeaderboardEntry `json:"entries"`
	UserRank          int                 `json:"user_rank"`
	TotalParticipants int                 `json:"total_participants"`
}

type ChallengeType string

const (
	ChallengeWorkoutCount     ChallengeType = "workout_count"
	ChallengeTotalWeight      ChallengeType = "total_weight"
	ChallengeDuration         ChallengeType = "duration"
	ChallengeStreak           ChallengeType = "streak"
	ChallengeExerciseSpecific ChallengeType = "exercise_specific"
)

type ChallengeStatus string

const (
	StatusActive    ChallengeStatus = "active"
	StatusCompleted ChallengeStatus = "completed"
	StatusUpcoming  ChallengeStatus = "upcoming"
)

type ChallengeParticipant struct {
	UserID      uuid.UUID  `json:"uid"`
	Progress    float64    `json:"progress"`
	Rank        int        `json:"rank"`
	JoinedAt    time.Time  `json:"joined_at"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Challenge struct {
	ID           uuid.UUID               `json:"id"`
	Title        string                  `json:"title"`
	Description  string                  `json:"desc"`
	Type         ChallengeType           `json:"type"`
	Exercise     string                  `json:"exercise,omitempty"`
	Target       float64                 `json:"target"`
	Unit         string                  `json:"unit"`
	StartDate    time.Time               `json:"start_date"`
	EndDate      time.Time               `json:"end_date"`
	CreatedBy    uuid.UUID               `json:"created_by"`
	IsPublic     bool                    `json:"is_public"`
	Participants []*ChallengeParticipant `json:"participants"`
	Status       ChallengeStatus         `json:"status"`
	Version      int                     `json:"-"`
	CreatedAt    time.Time               `json:"created_at"`
}
