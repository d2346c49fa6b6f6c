package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/fitrank/internal/service"
	"github.com/limbo/fitrank/pkg/entity"
	"github.com/limbo/fitrank/pkg/httputil"
)

type GetWorkoutsResponse struct {
	UserID   string                 `json:"uid"`
	Page     int                    `json:"page"`
	Limit    int                    `json:"limit"`
	Workouts []entity.WorkoutRecord `json:"workouts"`
}

func (s *Server) LogWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "log workout")
	if !ok {
		return
	}
	var req service.LogWorkoutRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("log workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	workout, err := s.workoutsService.LogWorkout(ctx, uid, &req)
	if err != nil {
		code := httputil.WriteServiceError(w, err, "couldn't log workout")
		logger.Error("log workout error", slog.Int("code", code), slog.String("error", err.Error()))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, workout)
	logger.Info("workout logged", slog.String("workout_id", workout.ID.String()))
}

func (s *Server) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "list workouts")
	if !ok {
		return
	}
	opts, page := pagination(r)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	workouts, err := s.workoutsService.ListWorkouts(ctx, uid, opts)
	if err != nil {
		code := httputil.WriteServiceError(w, err, "error while getting workouts list")
		logger.Error("list workouts error", slog.Int("code", code), slog.String("error", err.Error()))
		return
	}
	if workouts == nil {
		workouts = []entity.WorkoutRecord{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetWorkoutsResponse{
		UserID:   uid.String(),
		Page:     page,
		Limit:    opts.Limit,
		Workouts: workouts,
	})
	logger.Info("workouts provided")
}

func (s *Server) GetWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get workout")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "get workout")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	workout, err := s.workoutsService.GetWorkout(ctx, id, uid)
	if err != nil {
		// foreign workouts are reported as missing
		code := httputil.WriteServiceError(w, err, "workout doesn't exist")
		logger.Error("get workout error", slog.Int("code", code), slog.String("error", err.Error()))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workout)
}

func (s *Server) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "workout deletion")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "workout deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := s.workoutsService.DeleteWorkout(ctx, id, uid); err != nil {
		code := httputil.WriteServiceError(w, err, "workout doesn't exist")
		logger.Error("workout deletion error", slog.Int("code", code), slog.String("error", err.Error()))
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("workout deleted")
}
