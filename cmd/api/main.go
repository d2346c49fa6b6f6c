package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/fitrank/internal/api"
	"github.com/limbo/fitrank/internal/observability"
	"github.com/limbo/fitrank/internal/repository"
	"github.com/limbo/fitrank/internal/service"
	"github.com/limbo/fitrank/pkg/cleanup"
	"github.com/limbo/fitrank/pkg/config"
	jwtservice "github.com/limbo/fitrank/pkg/jwt_service"
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
	if err := repository.Migrate(&dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
		log.Fatal(err)
	}
	pool := repository.NewPool(&dbCfg)
	usersRepo := repository.NewUsersRepoWithConn(pool)
	workoutsRepo := repository.NewWorkoutsRepoWithConn(pool)
	challengesRepo := repository.NewChallengesRepoWithConn(pool)

	metrics := observability.NewManager("fitrank", "api", prometheus.DefaultRegisterer)

	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(usersRepo),
		WorkoutsService: service.NewWorkoutsService(workoutsRepo),
		ProgressService: service.NewProgressService(workoutsRepo, service.ProgressOpts{
			HistoryLimit:   cfg.GetInt("HISTORY_LIMIT", service.DefaultHistoryLimit),
			NormalizeNames: cfg.GetBool("NORMALIZE_EXERCISE_NAMES", false),
		}),
		LeaderboardService: service.NewLeaderboardService(workoutsRepo, usersRepo,
			cfg.GetDuration("LEADERBOARD_CACHE_TTL", service.DefaultLeaderboardTTL), metrics),
		ChallengesService: service.NewChallengesService(challengesRepo, workoutsRepo, metrics),
		JwtService:        jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", jwtservice.DefaultTokenTTL)),
		Metrics:           metrics,
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-stop:
		slog.Info("shutting down", slog.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil {
			log.Println("Server error: " + err.Error())
		}
	}
	cleanup.CleanUp()
}
