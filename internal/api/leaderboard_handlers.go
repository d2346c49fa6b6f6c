package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/fitrank/pkg/httputil"
)

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get leaderboard")
	if !ok {
		return
	}
	metric := r.PathValue("metric")
	period := r.URL.Query().Get("period")
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	lb, err := s.leaderboardService.GetLeaderboard(ctx, uid, metric, period)
	if err != nil {
		code := httputil.WriteServiceError(w, err, "couldn't build leaderboard")
		logger.Error("get leaderboard error", slog.String("metric", metric), slog.Int("code", code), slog.String("error", err.Error()))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, lb)
}
