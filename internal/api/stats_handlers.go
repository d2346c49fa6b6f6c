package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/limbo/fitrank/pkg/httputil"
)

const defaultWeeks = 8

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get stats")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	stats, err := s.progressService.GetStats(ctx, uid)
	if err != nil {
		code := httputil.WriteServiceError(w, err, "error while computing stats")
		logger.Error("get stats error", slog.Int("code", code), slog.String("error", err.Error()))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetExerciseProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get exercise progress")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	result, err := s.progressService.GetExerciseProgress(ctx, uid)
	if err != nil {
		code := httputil.WriteServiceError(w, err, "error while computing exercise progress")
		logger.Error("get exercise progress error", slog.Int("code", code), slog.String("error", err.Error()))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"exercises": result})
}

func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get achievements")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	achievements, err := s.progressService.GetAchievements(ctx, uid)
	if err != nil {
		code := httputil.WriteServiceError(w, err, "error while evaluating achievements")
		logger.Error("get achievements error", slog.Int("code", code), slog.String("error", err.Error()))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"achievements": achievements})
}

func (s *Server) GetWeekly(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get weekly")
	if !ok {
		return
	}
	weeks := defaultWeeks
	if raw := r.URL.Query().Get("weeks"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			logger.Error("get weekly error: invalid weeks value")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "weeks must be a number", nil)
			return
		}
		weeks = n
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	result, err := s.progressService.GetWeekly(ctx, uid, weeks)
	if err != nil {
		code := httputil.WriteServiceError(w, err, "error while computing weekly summary")
		logger.Error("get weekly error", slog.Int("code", code), slog.String("error", err.Error()))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"weeks": result})
}
