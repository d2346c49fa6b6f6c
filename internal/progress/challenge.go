package progress

import (
	"bytes"
	"slices"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitrank/internal/error_values"
	"github.com/limbo/fitrank/pkg/entity"
)

// Status derives the challenge status from its dates.
func Status(ch *entity.Challenge, now time.Time) entity.ChallengeStatus {
	switch {
	case now.Before(ch.StartDate):
		return entity.StatusUpcoming
	case now.After(ch.EndDate):
		return entity.StatusCompleted
	}
	return entity.StatusActive
}

func Participant(ch *entity.Challenge, uid uuid.UUID) *entity.ChallengeParticipant {
	for _, p := range ch.Participants {
		if p.UserID == uid {
			return p
		}
	}
	return nil
}

// Join adds uid with zero progress and re-ranks everyone, so a new joiner
// lands after every participant with more progress and after earlier joiners.
func Join(ch *entity.Challenge, uid uuid.UUID, now time.Time) error {
	if Participant(ch, uid) != nil {
		return errorvalues.ErrAlreadyParticipating
	}
	if now.After(ch.EndDate) {
		return errorvalues.ErrChallengeEnded
	}
	ch.Participants = append(ch.Participants, &entity.ChallengeParticipant{
		UserID:   uid,
		JoinedAt: now,
	})
	Rerank(ch)
	return nil
}

func Leave(ch *entity.Challenge, uid uuid.UUID) error {
	idx := slices.IndexFunc(ch.Participants, func(p *entity.ChallengeParticipant) bool { return p.UserID == uid })
	if idx < 0 {
		return errorvalues.ErrNotParticipating
	}
	ch.Participants = slices.Delete(ch.Participants, idx, idx+1)
	Rerank(ch)
	return nil
}

// UpdateProgress sets the participant's progress, flips completion against
// the target and re-ranks the whole participant list.
func UpdateProgress(ch *entity.Challenge, uid uuid.UUID, value float64, now time.Time) error {
	if value < 0 {
		return errorvalues.ErrInvalidProgress
	}
	p := Participant(ch, uid)
	if p == nil {
		return errorvalues.ErrNotParticipating
	}
	p.Progress = value
	if value >= ch.Target {
		if !p.Completed {
			completedAt := now
			p.CompletedAt = &completedAt
		}
		p.Completed = true
	} else {
		p.Completed = false
		p.CompletedAt = nil
	}
	Rerank(ch)
	return nil
}

// Rerank sorts participants by progress descending and assigns ranks 1..N.
// Ties go to the earlier joiner, then to the lower user ID.
func Rerank(ch *entity.Challenge) {
	slices.SortStableFunc(ch.Participants, func(a, b *entity.ChallengeParticipant) int {
		switch {
		case a.Progress > b.Progress:
			return -1
		case a.Progress < b.Progress:
			return 1
		}
		if c := a.JoinedAt.Compare(b.JoinedAt); c != 0 {
			return c
		}
		return bytes.Compare(a.UserID[:], b.UserID[:])
	})
	for i, p := range ch.Participants {
		p.Rank = i + 1
	}
}

// ChallengeValue is the progress the given user's records produce for the
// challenge, counting only workouts started inside the challenge window.
func ChallengeValue(ch *entity.Challenge, records []entity.WorkoutRecord, now time.Time) float64 {
	inWindow := make([]entity.WorkoutRecord, 0, len(records))
	for _, r := range records {
		if r.StartTime.Before(ch.StartDate) || r.StartTime.After(ch.EndDate) {
			continue
		}
		inWindow = append(inWindow, r)
	}
	switch ch.Type {
	case entity.ChallengeWorkoutCount:
		return float64(len(inWindow))
	case entity.ChallengeTotalWeight:
		return Aggregate(inWindow).TotalVolume
	case entity.ChallengeDuration:
		return Aggregate(inWindow).TotalDurationMinutes
	case entity.ChallengeStreak:
		ref := now
		if ref.After(ch.EndDate) {
			ref = ch.EndDate
		}
		return float64(CurrentStreak(startDates(inWindow), ref))
	case entity.ChallengeExerciseSpecific:
		return exerciseVolume(inWindow, ch.Exercise)
	}
	return 0
}

func exerciseVolume(records []entity.WorkoutRecord, name string) float64 {
	volume := 0.0
	for _, r := range records {
		for _, ex := range r.Exercises {
			if ex.Name != name {
				continue
			}
			for _, s := range ex.Sets {
				if countable(s) {
					volume += s.Weight * float64(s.Reps)
				}
			}
		}
	}
	return volume
}
