package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitrank/internal/error_values"
	"github.com/limbo/fitrank/internal/repository"
	"github.com/limbo/fitrank/pkg/entity"
)

type WorkoutsService struct {
	repo repository.WorkoutsRepositoryI
}

func NewWorkoutsService(workoutsRepo repository.WorkoutsRepositoryI) *WorkoutsService {
	if workoutsRepo == nil {
		log.Fatal("provided nil workoutsRepo")
	}
	return &WorkoutsService{
		repo: workoutsRepo,
	}
}

func (ws *WorkoutsService) LogWorkout(ctx context.Context, uid uuid.UUID, req *LogWorkoutRequest) (*entity.WorkoutRecord, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := validateRange(req.StartTime, req.EndTime, "end_time"); err != nil {
		return nil, err
	}
	w := entity.WorkoutRecord{
		UserID:    uid,
		Name:      req.Name,
		StartTime: req.StartTime.UTC(),
		Exercises: toExerciseEntries(req.Exercises),
	}
	if req.EndTime != nil {
		end := req.EndTime.UTC()
		w.EndTime = &end
	}
	id, err := ws.repo.Create(ctx, &w)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	workout, err := ws.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workout, nil
}

func (ws *WorkoutsService) GetWorkout(ctx context.Context, workoutID, uid uuid.UUID) (*entity.WorkoutRecord, error) {
	workout, err := ws.repo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	if workout.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return workout, nil
}

func (ws *WorkoutsService) ListWorkouts(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.WorkoutRecord, error) {
	if err := validateStruct(pagination); err != nil {
		return nil, err
	}
	workouts, err := ws.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workouts, nil
}

func (ws *WorkoutsService) DeleteWorkout(ctx context.Context, workoutID, uid uuid.UUID) error {
	if _, err := ws.GetWorkout(ctx, workoutID, uid); err != nil {
		return err
	}
	err := ws.repo.Delete(ctx, workoutID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return err
		}
		return errors.New("workouts repository error: " + err.Error())
	}
	return nil
}

func toExerciseEntries(inputs []ExerciseInput) []entity.ExerciseEntry {
	exercises := make([]entity.ExerciseEntry, 0, len(inputs))
	for _, in := range inputs {
		sets := make([]entity.SetEntry, 0, len(in.Sets))
		for _, s := range in.Sets {
			sets = append(sets, entity.SetEntry{
				Reps:      s.Reps,
				Weight:    s.Weight,
				Completed: s.Completed,
				RPE:       s.RPE,
			})
		}
		exercises = append(exercises, entity.ExerciseEntry{
			Name:       in.Name,
			Sets:       sets,
			TargetReps: in.TargetReps,
			RestTime:   in.RestTime,
		})
	}
	return exercises
}
