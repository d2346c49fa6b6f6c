package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitrank/internal/error_values"
	"github.com/limbo/fitrank/internal/progress"
	"github.com/limbo/fitrank/internal/repository"
	"github.com/limbo/fitrank/pkg/entity"
)

const (
	DefaultHistoryLimit = 500
	maxWeeklyWeeks      = 52
)

type ProgressOpts struct {
	// Number of most recent workouts the statistics are computed over
	HistoryLimit int
	// Group exercises whose names differ only in case or surrounding spaces
	NormalizeNames bool
}

// ProgressService recomputes a user's statistics from their recent history
// on every call. Nothing is stored.
type ProgressService struct {
	repo  repository.WorkoutsRepositoryI
	opts  ProgressOpts
	clock Clock
}

func NewProgressService(workoutsRepo repository.WorkoutsRepositoryI, opts ProgressOpts) *ProgressService {
	if workoutsRepo == nil {
		log.Fatal("provided nil workoutsRepo")
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = DefaultHistoryLimit
	}
	return &ProgressService{
		repo:  workoutsRepo,
		opts:  opts,
		clock: systemClock,
	}
}

func (ps *ProgressService) WithClock(c Clock) *ProgressService {
	ps.clock = c
	return ps
}

func (ps *ProgressService) history(ctx context.Context, uid uuid.UUID) ([]entity.WorkoutRecord, error) {
	records, err := ps.repo.GetByUserID(ctx, uid, ps.opts.HistoryLimit, 0)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return records, nil
}

func (ps *ProgressService) GetStats(ctx context.Context, uid uuid.UUID) (*entity.CumulativeStats, error) {
	records, err := ps.history(ctx, uid)
	if err != nil {
		return nil, err
	}
	stats := progress.AggregateAt(records, ps.clock())
	return &stats, nil
}

func (ps *ProgressService) GetExerciseProgress(ctx context.Context, uid uuid.UUID) ([]entity.ExerciseProgress, error) {
	records, err := ps.history(ctx, uid)
	if err != nil {
		return nil, err
	}
	return progress.ExerciseProgress(records, progress.ProgressOptions{NormalizeNames: ps.opts.NormalizeNames}), nil
}

func (ps *ProgressService) GetAchievements(ctx context.Context, uid uuid.UUID) ([]entity.Achievement, error) {
	records, err := ps.history(ctx, uid)
	if err != nil {
		return nil, err
	}
	stats := progress.AggregateAt(records, ps.clock())
	return progress.Achievements(stats, records, progress.ProgressOptions{NormalizeNames: ps.opts.NormalizeNames}), nil
}

func (ps *ProgressService) GetWeekly(ctx context.Context, uid uuid.UUID, weeks int) ([]entity.WeeklyAggregate, error) {
	if weeks < 1 || weeks > maxWeeklyWeeks {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("weeks must be between 1 and 52"))
	}
	now := ps.clock()
	from := progress.WeekStart(now).AddDate(0, 0, -7*(weeks-1))
	records, err := ps.repo.GetByUserInRange(ctx, uid, from, now)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return progress.Weekly(records, weeks, now), nil
}
