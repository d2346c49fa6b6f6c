package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/fitrank/internal/observability"
	"github.com/limbo/fitrank/internal/service"
	"github.com/limbo/fitrank/pkg/cleanup"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	requestTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	workoutsService    service.WorkoutsServiceI
	progressService    service.ProgressServiceI
	leaderboardService service.LeaderboardServiceI
	challengesService  service.ChallengesServiceI
	jwtService         JWTServiceI
	metrics            *observability.Manager
	gatherer           prometheus.Gatherer
}

type ServicesList struct {
	UserService        service.UserServiceI
	WorkoutsService    service.WorkoutsServiceI
	ProgressService    service.ProgressServiceI
	LeaderboardService service.LeaderboardServiceI
	ChallengesService  service.ChallengesServiceI
	JwtService         JWTServiceI
	Metrics            *observability.Manager
	// Source for /metrics. Defaults to prometheus.DefaultGatherer
	Gatherer prometheus.Gatherer
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		workoutsService:    servicesOptions.WorkoutsService,
		progressService:    servicesOptions.ProgressService,
		leaderboardService: servicesOptions.LeaderboardService,
		challengesService:  servicesOptions.ChallengesService,
		jwtService:         servicesOptions.JwtService,
		metrics:            servicesOptions.Metrics,
		gatherer:           servicesOptions.Gatherer,
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	s.MountEndpoints()
	return s
}

func (s *Server) MountEndpoints() {
	s.mx.Use(s.PanicRecoveryMiddleware)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.RequestMetricsMiddleware)

	s.mx.Get("/healthz", s.Healthz)
	s.mx.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/users/{name}", s.GetProfile)
			r.Patch("/users/me", s.UpdateProfile)
			r.Delete("/users/me", s.DeleteAccount)

			r.Post("/workouts", s.LogWorkout)
			r.Get("/workouts", s.ListWorkouts)
			r.Get("/workouts/{id}", s.GetWorkout)
			r.Delete("/workouts/{id}", s.DeleteWorkout)

			r.Get("/stats", s.GetStats)
			r.Get("/stats/progress", s.GetExerciseProgress)
			r.Get("/stats/achievements", s.GetAchievements)
			r.Get("/stats/weekly", s.GetWeekly)

			r.Get("/leaderboards/{metric}", s.GetLeaderboard)

			r.Post("/challenges", s.CreateChallenge)
			r.Get("/challenges", s.ListChallenges)
			r.Get("/challenges/{id}", s.GetChallenge)
			r.Post("/challenges/{id}/join", s.JoinChallenge)
			r.Post("/challenges/{id}/leave", s.LeaveChallenge)
			r.Put("/challenges/{id}/progress", s.UpdateChallengeProgress)
			r.Post("/challenges/{id}/sync", s.SyncChallengeProgress)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until the listener fails. Shutdown is registered as a cleanup job.
func (s *Server) Run(address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	slog.Info("server started", slog.String("address", address))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
