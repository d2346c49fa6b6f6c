package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/limbo/fitrank/internal/service"
	"github.com/limbo/fitrank/pkg/entity"
	"github.com/limbo/fitrank/pkg/httputil"
)

type UpdateProgressRequest struct {
	Value *float64 `json:"value"`
}

type GetChallengesResponse struct {
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	Challenges []*entity.Challenge `json:"challenges"`
}

func (s *Server) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "create challenge")
	if !ok {
		return
	}
	var req service.CreateChallengeRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("create challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	ch, err := s.challengesService.CreateChallenge(ctx, uid, &req)
	if err != nil {
		code := httputil.WriteServiceError(w, err, "couldn't create challenge")
		logger.Error("create challenge error", slog.Int("code", code), slog.String("error", err.Error()))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, ch)
	logger.Info("challenge created", slog.String("challenge_id", ch.ID.String()))
}

func (s *Server) ListChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "list challenges")
	if !ok {
		return
	}
	opts, page := pagination(r)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	challenges, err := s.challengesService.ListChallenges(ctx, uid, opts)
	if err != nil {
		code := httputil.WriteServiceError(w, err, "error while getting challenges list")
		logger.Error("list challenges error", slog.Int("code", code), slog.String("error", err.Error()))
		return
	}
	if challenges == nil {
		challenges = []*entity.Challenge{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetChallengesResponse{
		Page:       page,
		Limit:      opts.Limit,
		Challenges: challenges,
	})
}

func (s *Server) GetChallenge(w http.ResponseWriter, r *http.Request) {
	s.challengeAction(w, r, "get challenge", s.challengesService.GetChallenge)
}

func (s *Server) JoinChallenge(w http.ResponseWriter, r *http.Request) {
	s.challengeAction(w, r, "join challenge", s.challengesService.Join)
}

func (s *Server) LeaveChallenge(w http.ResponseWriter, r *http.Request) {
	s.challengeAction(w, r, "leave challenge", s.challengesService.Leave)
}

func (s *Server) SyncChallengeProgress(w http.ResponseWriter, r *http.Request) {
	s.challengeAction(w, r, "sync challenge progress", s.challengesService.SyncProgress)
}

func (s *Server) UpdateChallengeProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req UpdateProgressRequest
	if err := decodeBody(r, &req); err != nil || req.Value == nil {
		logger.Error("update challenge progress error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	s.challengeAction(w, r, "update challenge progress", func(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error) {
		return s.challengesService.UpdateProgress(ctx, id, uid, *req.Value)
	})
}

// challengeAction runs op for the authenticated user against the {id} challenge
// and writes the resulting challenge.
func (s *Server) challengeAction(w http.ResponseWriter, r *http.Request, name string,
	op func(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, name)
	if !ok {
		return
	}
	id, ok := pathID(w, r, name)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	ch, err := op(ctx, id, uid)
	if err != nil {
		code := httputil.WriteServiceError(w, err, "couldn't "+name)
		logger.Error(name+" error", slog.String("challenge_id", id.String()), slog.Int("code", code), slog.String("error", err.Error()))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ch)
	logger.Info(name+" done", slog.String("challenge_id", id.String()))
}
