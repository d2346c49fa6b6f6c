package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitrank/internal/error_values"
	"github.com/limbo/fitrank/pkg/entity"
)

const challengeColumns = `id, title, description, type, exercise, target, unit, start_date, end_date, created_by, is_public, version, created_at`

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(cfg DBConfig) *ChallengesRepository {
	return &ChallengesRepository{
		conn: NewPool(cfg),
	}
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) Create(ctx context.Context, ch *entity.Challenge) (uuid.UUID, error) {
	if ch == nil {
		return uuid.Nil, errors.New("challenge is nil")
	}
	var id uuid.UUID
	row := cr.conn.QueryRow(ctx, `INSERT INTO challenges 
		(title, description, type, exercise, target, unit, start_date, end_date, created_by, is_public) 
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id;`,
		ch.Title,
		ch.Description,
		string(ch.Type),
		ch.Exercise,
		ch.Target,
		ch.Unit,
		ch.StartDate,
		ch.EndDate,
		ch.CreatedBy,
		ch.IsPublic,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.Nil, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.Nil, errors.New("creating challenge db error: " + err.Error())
	}
	return id, nil
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE id = $1;`, id)
	ch, err := scanChallenge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge by id error: " + err.Error())
	}
	rows, err := cr.conn.Query(ctx, `SELECT user_id, progress, rank, joined_at, completed, completed_at 
		FROM challenge_participants WHERE challenge_id = $1 ORDER BY rank;`, id)
	if err != nil {
		return nil, errors.New("getting challenge participants error: " + err.Error())
	}
	defer rows.Close()
	ch.Participants = make([]*entity.ChallengeParticipant, 0)
	for rows.Next() {
		p := entity.ChallengeParticipant{}
		err = rows.Scan(&p.UserID, &p.Progress, &p.Rank, &p.JoinedAt, &p.Completed, &p.CompletedAt)
		if err != nil {
			return nil, errors.New("unmarshalling participant error: " + err.Error())
		}
		ch.Participants = append(ch.Participants, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return ch, nil
}

func (cr *ChallengesRepository) List(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Challenge, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+challengeColumns+` FROM challenges c
		WHERE is_public OR created_by = $1
			OR EXISTS (SELECT 1 FROM challenge_participants cp WHERE cp.challenge_id = c.id AND cp.user_id = $1)
		ORDER BY start_date DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("listing challenges error: " + err.Error())
	}
	defer rows.Close()
	challenges := make([]*entity.Challenge, 0)
	for rows.Next() {
		ch, err := scanChallenge(rows)
		if err != nil {
			return nil, errors.New("unmarshalling challenge error: " + err.Error())
		}
		// participants are loaded by GetByID only
		ch.Participants = make([]*entity.ChallengeParticipant, 0)
		challenges = append(challenges, ch)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return challenges, nil
}

func (cr *ChallengesRepository) SaveParticipants(ctx context.Context, ch *entity.Challenge) error {
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	if err = saveParticipants(ctx, tx, ch); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			err = errors.Join(err, rbErr)
		}
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing participants error: " + err.Error())
	}
	ch.Version++
	return nil
}

func saveParticipants(ctx context.Context, tx pgx.Tx, ch *entity.Challenge) error {
	ct, err := tx.Exec(ctx, `UPDATE challenges SET version = version + 1 WHERE id = $1 AND version = $2;`, ch.ID, ch.Version)
	if err != nil {
		return errors.New("bumping challenge version error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		var exists bool
		err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM challenges WHERE id = $1);`, ch.ID).Scan(&exists)
		if err != nil {
			return errors.New("checking challenge existence error: " + err.Error())
		}
		if !exists {
			return errorvalues.ErrChallengeNotFound
		}
		return errorvalues.ErrConcurrentUpdate
	}
	_, err = tx.Exec(ctx, `DELETE FROM challenge_participants WHERE challenge_id = $1;`, ch.ID)
	if err != nil {
		return errors.New("clearing participants error: " + err.Error())
	}
	for _, p := range ch.Participants {
		_, err = tx.Exec(ctx, `INSERT INTO challenge_participants 
			(challenge_id, user_id, progress, rank, joined_at, completed, completed_at) 
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			ch.ID, p.UserID, p.Progress, p.Rank, p.JoinedAt, p.Completed, p.CompletedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return errorvalues.ErrUserNotFound
			}
			return errors.New("inserting participant error: " + err.Error())
		}
	}
	return nil
}

func scanChallenge(row pgx.Row) (*entity.Challenge, error) {
	var (
		ch     entity.Challenge
		chType string
	)
	err := row.Scan(&ch.ID, &ch.Title, &ch.Description, &chType, &ch.Exercise, &ch.Target, &ch.Unit,
		&ch.StartDate, &ch.EndDate, &ch.CreatedBy, &ch.IsPublic, &ch.Version, &ch.CreatedAt)
	if err != nil {
		return nil, err
	}
	ch.Type = entity.ChallengeType(chType)
	return &ch, nil
}
