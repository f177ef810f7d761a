package app

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/epicorifa/rifa-api/internal/api"
	"github.com/epicorifa/rifa-api/internal/config"
	"github.com/epicorifa/rifa-api/internal/db"
	"github.com/epicorifa/rifa-api/internal/logger"
	"github.com/epicorifa/rifa-api/internal/ratelimit"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	limiters, err := buildLimiters(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize rate limiters -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, limiters)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// buildLimiters picks the limiter backend. A Redis address means counters are
// shared across instances; otherwise counters are process-local, which is only
// correct for single-instance deployments.
func buildLimiters(conf *config.AppConfig) (*api.Limiters, error) {
	var newLimiter func(cfg ratelimit.Config) ratelimit.Limiter

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" && conf.Redis != nil {
		redisURL = conf.Redis.URL
	}

	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("redis.ParseURL -> %w", err)
		}
		client := redis.NewClient(opts)
		newLimiter = func(cfg ratelimit.Config) ratelimit.Limiter {
			return ratelimit.NewRedisLimiter(client, cfg)
		}
	} else {
		newLimiter = func(cfg ratelimit.Config) ratelimit.Limiter {
			return ratelimit.NewMemoryLimiter(cfg)
		}
	}

	return &api.Limiters{
		Auth:        newLimiter(conf.RateLimit.Auth.ToLimiterConfig("auth_api")),
		Admin:       newLimiter(conf.RateLimit.Admin.ToLimiterConfig("admin_api")),
		Integration: newLimiter(conf.RateLimit.Integration.ToLimiterConfig("epico_api")),
	}, nil
}
