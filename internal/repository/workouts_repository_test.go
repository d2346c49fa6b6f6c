package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitrank/internal/error_values"
	"github.com/limbo/fitrank/internal/repository"
	"github.com/limbo/fitrank/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workoutRowColumns = []string{"id", "user_id", "name", "start_time", "end_time", "exercises", "created_at"}

const selectWorkout = `SELECT id, user_id, name, start_time, end_time, exercises, created_at FROM workouts`

func sampleWorkout() entity.WorkoutRecord {
	start := time.Date(2026, time.March, 2, 18, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	return entity.WorkoutRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Push day",
		StartTime: start,
		EndTime:   &end,
		Exercises: []entity.ExerciseEntry{
			{Name: "Bench Press", Sets: []entity.SetEntry{{Reps: 8, Weight: 60, Completed: true}}},
		},
		CreatedAt: end,
	}
}

func workoutRow(t *testing.T, rows *pgxmock.Rows, w entity.WorkoutRecord) *pgxmock.Rows {
	doc, err := sonic.Marshal(w.Exercises)
	require.NoError(t, err)
	return rows.AddRow(w.ID, w.UserID, w.Name, w.StartTime, w.EndTime, doc, w.CreatedAt)
}

func TestCreateWorkout(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWorkoutsRepoWithConn(mock)
	w := sampleWorkout()
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO workouts (user_id, name, start_time, end_time, exercises)`)
	t.Run("created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(w.UserID, w.Name, w.StartTime, w.EndTime, pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(w.ID))
		id, err := repo.Create(ctx, &w)
		assert.NoError(t, err)
		assert.Equal(t, w.ID, id)
	})
	t.Run("unknown owner", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(w.UserID, w.Name, w.StartTime, w.EndTime, pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &w)
		assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(w.UserID, w.Name, w.StartTime, w.EndTime, pgxmock.AnyArg()).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &w)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWorkoutByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWorkoutsRepoWithConn(mock)
	w := sampleWorkout()
	ctx := context.Background()
	query := regexp.QuoteMeta(selectWorkout + ` WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(w.ID).
			WillReturnRows(workoutRow(t, pgxmock.NewRows(workoutRowColumns), w))
		result, err := repo.GetByID(ctx, w.ID)
		require.NoError(t, err)
		assert.Equal(t, w, *result)
	})
	t.Run("unknown fields are ignored", func(t *testing.T) {
		doc := []byte(`[{"name":"Row","sets":[{"reps":10,"weight":50,"completed":true,"tempo":"3010"}],"notes":"slow"}]`)
		mock.ExpectQuery(query).
			WithArgs(w.ID).
			WillReturnRows(pgxmock.NewRows(workoutRowColumns).
				AddRow(w.ID, w.UserID, w.Name, w.StartTime, w.EndTime, doc, w.CreatedAt))
		result, err := repo.GetByID(ctx, w.ID)
		require.NoError(t, err)
		require.Len(t, result.Exercises, 1)
		assert.Equal(t, "Row", result.Exercises[0].Name)
		assert.Equal(t, 50.0, result.Exercises[0].Sets[0].Weight)
	})
	t.Run("malformed document", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(w.ID).
			WillReturnRows(pgxmock.NewRows(workoutRowColumns).
				AddRow(w.ID, w.UserID, w.Name, w.StartTime, w.EndTime, []byte(`{"name":"not a list"}`), w.CreatedAt))
		_, err := repo.GetByID(ctx, w.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrWorkoutNotFound)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(w.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, w.ID)
		assert.ErrorIs(t, err, errorvalues.ErrWorkoutNotFound)
	})
}

func TestGetWorkoutsByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWorkoutsRepoWithConn(mock)
	newer, older := sampleWorkout(), sampleWorkout()
	older.StartTime = older.StartTime.AddDate(0, 0, -2)
	older.EndTime = nil
	ctx := context.Background()
	query := regexp.QuoteMeta(`WHERE user_id = $1 ORDER BY start_time DESC LIMIT $2 OFFSET $3;`)
	t.Run("listed", func(t *testing.T) {
		rows := pgxmock.NewRows(workoutRowColumns)
		workoutRow(t, rows, newer)
		workoutRow(t, rows, older)
		mock.ExpectQuery(query).WithArgs(userID, 10, 0).WillReturnRows(rows)
		result, err := repo.GetByUserID(ctx, userID, 10, 0)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, newer, result[0])
		assert.Nil(t, result[1].EndTime)
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, 10, 0).WillReturnRows(pgxmock.NewRows(workoutRowColumns))
		result, err := repo.GetByUserID(ctx, userID, 10, 0)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, 10, 0).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, userID, 10, 0)
		assert.Error(t, err)
	})
}

func TestGetWorkoutsInRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWorkoutsRepoWithConn(mock)
	w := sampleWorkout()
	from, to := w.StartTime.AddDate(0, 0, -7), w.StartTime.AddDate(0, 0, 1)
	ctx := context.Background()

	t.Run("all users", func(t *testing.T) {
		query := regexp.QuoteMeta(`WHERE start_time >= $1 AND start_time <= $2 ORDER BY start_time DESC;`)
		mock.ExpectQuery(query).WithArgs(from, to).WillReturnRows(workoutRow(t, pgxmock.NewRows(workoutRowColumns), w))
		result, err := repo.GetInRange(ctx, from, to)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})
	t.Run("single user", func(t *testing.T) {
		query := regexp.QuoteMeta(`WHERE user_id = $1 AND start_time >= $2 AND start_time <= $3 ORDER BY start_time DESC;`)
		mock.ExpectQuery(query).WithArgs(userID, from, to).WillReturnRows(workoutRow(t, pgxmock.NewRows(workoutRowColumns), w))
		result, err := repo.GetByUserInRange(ctx, userID, from, to)
		require.NoError(t, err)
		assert.Equal(t, []entity.WorkoutRecord{w}, result)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWorkout(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWorkoutsRepoWithConn(mock)
	id := uuid.New()
	ctx := context.Background()
	query := regexp.QuoteMeta(`DELETE FROM workouts WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, id))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, id), errorvalues.ErrWorkoutNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Delete(ctx, id))
	})
}
