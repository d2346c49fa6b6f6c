package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fitrank/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Looks up several users at once. Unknown ids are skipped
	FindByIDs(ctx context.Context, uids []uuid.UUID) ([]*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type WorkoutsRepositoryI interface {
	// Stores a workout record with its exercises. UserID, Name and StartTime are necessary
	Create(ctx context.Context, workout *entity.WorkoutRecord) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutRecord, error)
	// Lists user's workouts newest first
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.WorkoutRecord, error)
	// Lists user's workouts started within [from, to], newest first
	GetByUserInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WorkoutRecord, error)
	// Lists workouts of every user started within [from, to]
	GetInRange(ctx context.Context, from, to time.Time) ([]entity.WorkoutRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ChallengesRepositoryI interface {
	// Stores a challenge without participants
	Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error)
	// Returns the challenge with participants ordered by rank
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// Lists public challenges and the ones created by uid, without participants
	List(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Challenge, error)
	// Replaces participants if the stored version still equals challenge.Version.
	// Returns ErrConcurrentUpdate otherwise
	SaveParticipants(ctx context.Context, challenge *entity.Challenge) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	conn := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		conn += "?sslmode=" + pgcfg.SSLMode
	}
	return conn
}
