package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrWorkoutNotFound = errors.New("workout not found")
	ErrOwnerNotFound   = errors.New("owner doesn't exists")
	ErrWrongOwner      = errors.New("resource belongs to another user")

	ErrChallengeNotFound    = errors.New("challenge not found")
	ErrAlreadyParticipating = errors.New("already participating")
	ErrNotParticipating     = errors.New("not participating")
	ErrChallengeEnded       = errors.New("challenge has ended")
	ErrInvalidProgress      = errors.New("progress must not be negative")
	ErrConcurrentUpdate     = errors.New("challenge was modified concurrently")

	ErrUnknownMetric = errors.New("unknown leaderboard metric")
	ErrUnknownPeriod = errors.New("unknown leaderboard period")
	ErrValidation    = errors.New("validation error")
)

// Kind groups errors the way callers report them.
type Kind int

const (
	KindInternal Kind = iota
	KindNotAuthenticated
	KindNotFound
	KindInvalidState
	KindValidation
)

func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrNotAuthenticated), errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrWrongCredentials):
		return KindNotAuthenticated
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrWorkoutNotFound),
		errors.Is(err, ErrChallengeNotFound), errors.Is(err, ErrOwnerNotFound),
		errors.Is(err, ErrWrongOwner):
		return KindNotFound
	case errors.Is(err, ErrAlreadyParticipating), errors.Is(err, ErrNotParticipating),
		errors.Is(err, ErrChallengeEnded), errors.Is(err, ErrConcurrentUpdate),
		errors.Is(err, ErrUserExists):
		return KindInvalidState
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidProgress),
		errors.Is(err, ErrUnknownMetric), errors.Is(err, ErrUnknownPeriod):
		return KindValidation
	}
	return KindInternal
}
