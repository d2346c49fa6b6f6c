package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/coocood/freecache"
	"github.com/google/uuid"
	"github.com/limbo/fitrank/internal/observability"
	"github.com/limbo/fitrank/internal/progress"
	"github.com/limbo/fitrank/internal/repository"
	"github.com/limbo/fitrank/pkg/entity"
	"golang.org/x/sync/singleflight"
)

const (
	megabyte              = 1024 * 1024
	leaderboardCacheSize  = 16 * megabyte
	DefaultLeaderboardTTL = time.Minute
	// Bound for a shared ranking computation, independent of the caller that started it.
	rankingTimeout = 30 * time.Second
)

// LeaderboardService ranks every user with workouts in the period window.
// Full rankings are cached per metric, period and window so each request only
// locates the requester in an already sorted list.
type LeaderboardService struct {
	workouts repository.WorkoutsRepositoryI
	users    repository.UsersRepositoryI
	cache    *freecache.Cache
	ttl      time.Duration
	group    singleflight.Group
	metrics  *observability.Manager
	clock    Clock
}

func NewLeaderboardService(workoutsRepo repository.WorkoutsRepositoryI, usersRepo repository.UsersRepositoryI, ttl time.Duration, metrics *observability.Manager) *LeaderboardService {
	if workoutsRepo == nil || usersRepo == nil {
		log.Fatal("provided nil repository for leaderboard service")
	}
	if ttl <= 0 {
		ttl = DefaultLeaderboardTTL
	}
	return &LeaderboardService{
		workouts: workoutsRepo,
		users:    usersRepo,
		cache:    freecache.NewCache(leaderboardCacheSize),
		ttl:      ttl,
		metrics:  metrics,
		clock:    systemClock,
	}
}

func (ls *LeaderboardService) WithClock(c Clock) *LeaderboardService {
	ls.clock = c
	return ls
}

func (ls *LeaderboardService) GetLeaderboard(ctx context.Context, uid uuid.UUID, metric, period string) (*entity.Leaderboard, error) {
	m, err := progress.ParseMetric(metric)
	if err != nil {
		return nil, err
	}
	p, err := progress.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	now := ls.clock()
	ranked, err := ls.ranking(ctx, m, p, now)
	if err != nil {
		return nil, err
	}
	lb := progress.FromRanking(m, p, ranked, uid)
	return &lb, nil
}

func (ls *LeaderboardService) ranking(ctx context.Context, m entity.LeaderboardMetric, p entity.LeaderboardPeriod, now time.Time) ([]*entity.LeaderboardEntry, error) {
	from := progress.WindowStart(p, now)
	key := fmt.Sprintf("ranking::%s::%s::%d", m, p, from.Unix())
	if data, err := ls.cache.Get([]byte(key)); err == nil {
		var ranked []*entity.LeaderboardEntry
		if err = sonic.Unmarshal(data, &ranked); err == nil {
			ls.metrics.CacheHit()
			return ranked, nil
		}
		slog.Error("failed to decode cached ranking", slog.String("key", key), slog.String("error", err.Error()))
	}
	ls.metrics.CacheMiss()

	flight := ls.group.DoChan(key, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rankingTimeout)
		defer cancel()
		began := time.Now()
		ranked, err := ls.computeRanking(flightCtx, m, from, now)
		if err != nil {
			return nil, err
		}
		if ls.metrics != nil {
			ls.metrics.HistLeaderboardDuration.Observe(time.Since(began).Seconds())
		}
		data, err := sonic.Marshal(ranked)
		if err != nil {
			slog.Error("failed to encode ranking", slog.String("key", key), slog.String("error", err.Error()))
			return ranked, nil
		}
		if err = ls.cache.Set([]byte(key), data, expireSeconds(ls.ttl)); err != nil {
			slog.Error("failed to cache ranking", slog.String("key", key), slog.String("error", err.Error()))
		}
		return ranked, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]*entity.LeaderboardEntry), nil
	}
}

// expireSeconds converts ttl for freecache, where 0 means the entry never expires.
func expireSeconds(ttl time.Duration) int {
	return max(int(ttl.Seconds()), 1)
}

func (ls *LeaderboardService) computeRanking(ctx context.Context, m entity.LeaderboardMetric, from, now time.Time) ([]*entity.LeaderboardEntry, error) {
	records, err := ls.workouts.GetInRange(ctx, from, now)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	values := progress.MetricValues(m, records, from, now)
	if len(values) == 0 {
		return []*entity.LeaderboardEntry{}, nil
	}
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		ids = append(ids, v.UserID)
	}
	users, err := ls.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	byID := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for i := range values {
		if u, ok := byID[values[i].UserID]; ok {
			values[i].DisplayName = u.Name
			values[i].AvatarURL = u.AvatarURL
		}
	}
	return progress.Rank(values), nil
}
