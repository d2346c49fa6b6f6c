package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitrank/internal/error_values"
	"github.com/limbo/fitrank/internal/observability"
	"github.com/limbo/fitrank/internal/progress"
	"github.com/limbo/fitrank/internal/repository"
	"github.com/limbo/fitrank/pkg/entity"
)

// Attempts per challenge mutation before a concurrent update is reported.
const maxChallengeAttempts = 3

type ChallengesService struct {
	challenges repository.ChallengesRepositoryI
	workouts   repository.WorkoutsRepositoryI
	metrics    *observability.Manager
	clock      Clock
}

func NewChallengesService(challengesRepo repository.ChallengesRepositoryI, workoutsRepo repository.WorkoutsRepositoryI, metrics *observability.Manager) *ChallengesService {
	if challengesRepo == nil || workoutsRepo == nil {
		log.Fatal("provided nil repository for challenges service")
	}
	return &ChallengesService{
		challenges: challengesRepo,
		workouts:   workoutsRepo,
		metrics:    metrics,
		clock:      systemClock,
	}
}

func (cs *ChallengesService) WithClock(c Clock) *ChallengesService {
	cs.clock = c
	return cs
}

func (cs *ChallengesService) CreateChallenge(ctx context.Context, uid uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("end_date must be after start_date"))
	}
	ch := entity.Challenge{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Exercise:    req.Exercise,
		Target:      req.Target,
		Unit:        req.Unit,
		StartDate:   req.StartDate.UTC(),
		EndDate:     req.EndDate.UTC(),
		CreatedBy:   uid,
		IsPublic:    req.IsPublic,
	}
	id, err := cs.challenges.Create(ctx, &ch)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return cs.GetChallenge(ctx, id, uid)
}

func (cs *ChallengesService) GetChallenge(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error) {
	ch, err := cs.load(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	ch.Status = progress.Status(ch, cs.clock())
	return ch, nil
}

func (cs *ChallengesService) ListChallenges(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Challenge, error) {
	if err := validateStruct(pagination); err != nil {
		return nil, err
	}
	challenges, err := cs.challenges.List(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	now := cs.clock()
	for _, ch := range challenges {
		ch.Status = progress.Status(ch, now)
	}
	return challenges, nil
}

// Join resolves the challenge by id alone, so a private challenge is joinable
// by anyone its id was shared with. It stays out of their listing until then.
func (cs *ChallengesService) Join(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error) {
	return cs.mutate(ctx, id, cs.fetch, func(ch *entity.Challenge) error {
		return progress.Join(ch, uid, cs.clock())
	})
}

func (cs *ChallengesService) Leave(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error) {
	return cs.mutate(ctx, id, cs.visibleTo(uid), func(ch *entity.Challenge) error {
		return progress.Leave(ch, uid)
	})
}

func (cs *ChallengesService) UpdateProgress(ctx context.Context, id, uid uuid.UUID, value float64) (*entity.Challenge, error) {
	return cs.mutate(ctx, id, cs.visibleTo(uid), func(ch *entity.Challenge) error {
		return progress.UpdateProgress(ch, uid, value, cs.clock())
	})
}

func (cs *ChallengesService) SyncProgress(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error) {
	ch, err := cs.load(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	if progress.Participant(ch, uid) == nil {
		return nil, errorvalues.ErrNotParticipating
	}
	records, err := cs.workouts.GetByUserInRange(ctx, uid, ch.StartDate, ch.EndDate)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return cs.mutate(ctx, id, cs.visibleTo(uid), func(ch *entity.Challenge) error {
		now := cs.clock()
		return progress.UpdateProgress(ch, uid, progress.ChallengeValue(ch, records, now), now)
	})
}

type challengeLoader func(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)

// mutate loads the challenge, applies change and saves the participants
// guarded by the challenge version. A lost race reloads and reapplies.
func (cs *ChallengesService) mutate(ctx context.Context, id uuid.UUID, load challengeLoader, change func(ch *entity.Challenge) error) (*entity.Challenge, error) {
	for range maxChallengeAttempts {
		ch, err := load(ctx, id)
		if err != nil {
			return nil, err
		}
		if err = change(ch); err != nil {
			return nil, err
		}
		err = cs.challenges.SaveParticipants(ctx, ch)
		switch {
		case err == nil:
			ch.Status = progress.Status(ch, cs.clock())
			return ch, nil
		case errors.Is(err, errorvalues.ErrConcurrentUpdate):
			cs.metrics.ChallengeConflict()
			continue
		case errors.Is(err, errorvalues.ErrChallengeNotFound), errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return nil, errorvalues.ErrConcurrentUpdate
}

func (cs *ChallengesService) fetch(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	ch, err := cs.challenges.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return ch, nil
}

func (cs *ChallengesService) visibleTo(uid uuid.UUID) challengeLoader {
	return func(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
		return cs.load(ctx, id, uid)
	}
}

// load returns the challenge if uid may see it. Private challenges are
// visible to their creator and participants only.
func (cs *ChallengesService) load(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error) {
	ch, err := cs.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ch.IsPublic && ch.CreatedBy != uid && progress.Participant(ch, uid) == nil {
		return nil, errorvalues.ErrChallengeNotFound
	}
	return ch, nil
}
