package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitrank/internal/error_values"
	"github.com/limbo/fitrank/pkg/entity"
)

const workoutColumns = `id, user_id, name, start_time, end_time, exercises, created_at`

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepo(cfg DBConfig) *WorkoutsRepository {
	return &WorkoutsRepository{
		conn: NewPool(cfg),
	}
}

func NewWorkoutsRepoWithConn(conn PgConnection) *WorkoutsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	return &WorkoutsRepository{
		conn: conn,
	}
}

func (wr *WorkoutsRepository) Create(ctx context.Context, workout *entity.WorkoutRecord) (uuid.UUID, error) {
	if workout == nil {
		return uuid.Nil, errors.New("workout is nil")
	}
	exercises, err := encodeExercises(workout.Exercises)
	if err != nil {
		return uuid.Nil, err
	}
	var id uuid.UUID
	row := wr.conn.QueryRow(ctx, `INSERT INTO workouts (user_id, name, start_time, end_time, exercises) 
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		workout.UserID,
		workout.Name,
		workout.StartTime,
		workout.EndTime,
		exercises,
	)
	if err = row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.Nil, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.Nil, errors.New("creating workout db error: " + err.Error())
	}
	return id, nil
}

func (wr *WorkoutsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutRecord, error) {
	row := wr.conn.QueryRow(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE id = $1;`, id)
	w, err := scanWorkout(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWorkoutNotFound
		}
		return nil, errors.New("getting workout by id error: " + err.Error())
	}
	return &w, nil
}

func (wr *WorkoutsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.WorkoutRecord, error) {
	rows, err := wr.conn.Query(ctx, `SELECT `+workoutColumns+` FROM workouts 
		WHERE user_id = $1 ORDER BY start_time DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting workouts by uid error: " + err.Error())
	}
	return collectWorkouts(rows)
}

func (wr *WorkoutsRepository) GetByUserInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WorkoutRecord, error) {
	rows, err := wr.conn.Query(ctx, `SELECT `+workoutColumns+` FROM workouts 
		WHERE user_id = $1 AND start_time >= $2 AND start_time <= $3 ORDER BY start_time DESC;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting user workouts in range error: " + err.Error())
	}
	return collectWorkouts(rows)
}

func (wr *WorkoutsRepository) GetInRange(ctx context.Context, from, to time.Time) ([]entity.WorkoutRecord, error) {
	rows, err := wr.conn.Query(ctx, `SELECT `+workoutColumns+` FROM workouts 
		WHERE start_time >= $1 AND start_time <= $2 ORDER BY start_time DESC;`, from, to)
	if err != nil {
		return nil, errors.New("getting workouts in range error: " + err.Error())
	}
	return collectWorkouts(rows)
}

func (wr *WorkoutsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := wr.conn.Exec(ctx, `DELETE FROM workouts WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting workout: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutNotFound
	}
	return nil
}

func collectWorkouts(rows pgx.Rows) ([]entity.WorkoutRecord, error) {
	defer rows.Close()
	workouts := make([]entity.WorkoutRecord, 0)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, errors.New("unmarshalling workout error: " + err.Error())
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return workouts, nil
}

func scanWorkout(row pgx.Row) (entity.WorkoutRecord, error) {
	var (
		w         entity.WorkoutRecord
		exercises []byte
	)
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.StartTime, &w.EndTime, &exercises, &w.CreatedAt)
	if err != nil {
		return w, err
	}
	w.Exercises, err = decodeExercises(exercises)
	return w, err
}

func encodeExercises(exercises []entity.ExerciseEntry) ([]byte, error) {
	if exercises == nil {
		exercises = []entity.ExerciseEntry{}
	}
	data, err := sonic.Marshal(exercises)
	if err != nil {
		return nil, errors.New("encoding exercises error: " + err.Error())
	}
	return data, nil
}

// decodeExercises turns the stored document into typed entries. Unknown
// fields are ignored, a document of the wrong shape is an error.
func decodeExercises(data []byte) ([]entity.ExerciseEntry, error) {
	exercises := make([]entity.ExerciseEntry, 0)
	if len(data) == 0 {
		return exercises, nil
	}
	if err := sonic.Unmarshal(data, &exercises); err != nil {
		return nil, errors.New("decoding exercises error: " + err.Error())
	}
	return exercises, nil
}
