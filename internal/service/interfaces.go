package service

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fitrank/pkg/entity"
)

type RegisterRequest struct {
	Name      string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password  string `validate:"required,min=8,max=72"`
	AvatarURL string `validate:"omitempty,url,max=500"`
}

// UpdateProfileRequest changes only the fields that are set.
type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,alphanum_underscore,min=3,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url,max=500"`
}

type PaginationOpts struct {
	Limit  int `validate:"gte=1,lte=100"`
	Offset int `validate:"gte=0"`
}

type SetInput struct {
	Reps      int      `json:"reps" validate:"gte=0"`
	Weight    float64  `json:"weight" validate:"gte=0"`
	Completed bool     `json:"completed"`
	RPE       *float64 `json:"rpe,omitempty" validate:"omitempty,gte=1,lte=10"`
}

type ExerciseInput struct {
	Name       string     `json:"name" validate:"required,max=200"`
	Sets       []SetInput `json:"sets" validate:"dive"`
	TargetReps *int       `json:"target_reps,omitempty" validate:"omitempty,gte=0"`
	RestTime   *int       `json:"rest_time,omitempty" validate:"omitempty,gte=0"`
}

type LogWorkoutRequest struct {
	Name      string          `json:"name" validate:"required,max=200"`
	StartTime time.Time       `json:"start_time" validate:"required"`
	EndTime   *time.Time      `json:"end_time,omitempty"`
	Exercises []ExerciseInput `json:"exercises" validate:"required,min=1,dive"`
}

type CreateChallengeRequest struct {
	Title       string               `json:"title" validate:"required,max=200"`
	Description string               `json:"desc" validate:"max=2000"`
	Type        entity.ChallengeType `json:"type" validate:"required,oneof=workout_count total_weight duration streak exercise_specific"`
	Exercise    string               `json:"exercise" validate:"required_if=Type exercise_specific,max=200"`
	Target      float64              `json:"target" validate:"gt=0"`
	Unit        string               `json:"unit" validate:"max=32"`
	StartDate   time.Time            `json:"start_date" validate:"required"`
	EndDate     time.Time            `json:"end_date" validate:"required"`
	IsPublic    bool                 `json:"is_public"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type WorkoutsServiceI interface {
	// Validates and stores a finished or running workout owned by uid
	LogWorkout(ctx context.Context, uid uuid.UUID, req *LogWorkoutRequest) (*entity.WorkoutRecord, error)
	GetWorkout(ctx context.Context, workoutID, uid uuid.UUID) (*entity.WorkoutRecord, error)
	ListWorkouts(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.WorkoutRecord, error)
	DeleteWorkout(ctx context.Context, workoutID, uid uuid.UUID) error
}

type ProgressServiceI interface {
	GetStats(ctx context.Context, uid uuid.UUID) (*entity.CumulativeStats, error)
	GetExerciseProgress(ctx context.Context, uid uuid.UUID) ([]entity.ExerciseProgress, error)
	GetAchievements(ctx context.Context, uid uuid.UUID) ([]entity.Achievement, error)
	// Returns the given number of most recent weeks, oldest first
	GetWeekly(ctx context.Context, uid uuid.UUID, weeks int) ([]entity.WeeklyAggregate, error)
}

type LeaderboardServiceI interface {
	// Builds the ranking for metric and period and places the requester in it
	GetLeaderboard(ctx context.Context, uid uuid.UUID, metric, period string) (*entity.Leaderboard, error)
}

type ChallengesServiceI interface {
	CreateChallenge(ctx context.Context, uid uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error)
	GetChallenge(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error)
	ListChallenges(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Challenge, error)
	Join(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error)
	Leave(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error)
	UpdateProgress(ctx context.Context, id, uid uuid.UUID, value float64) (*entity.Challenge, error)
	// Recomputes the user's progress from their workouts inside the challenge window
	SyncProgress(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error)
}
