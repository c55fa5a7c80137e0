package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	_ "github.com/lib/pq"
	"github.com/riskibarqy/matchday-standings/internal/config"
	"github.com/riskibarqy/matchday-standings/internal/domain/competition"
	"github.com/riskibarqy/matchday-standings/internal/domain/match"
	"github.com/riskibarqy/matchday-standings/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/matchday-standings/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday-standings/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/matchday-standings/internal/infrastructure/repository/resilient"
	"github.com/riskibarqy/matchday-standings/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/matchday-standings/internal/platform/cache"
	"github.com/riskibarqy/matchday-standings/internal/platform/logging"
	"github.com/riskibarqy/matchday-standings/internal/platform/resilience"
	"github.com/riskibarqy/matchday-standings/internal/usecase"
)

type repositories struct {
	competitions competition.Repository
	matches      match.Repository
	invalidator  httpapi.CacheInvalidator
}

// NewHTTPServer wires storage, services and the router. The returned cleanup
// releases the database pool and must run after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func() error { return nil }
	var (
		competitionRepo competition.Repository
		matchRepo       match.Repository
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup = db.Close

		if cfg.DBBootstrapSeed {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return nil, nil, fmt.Errorf("bootstrap seed: %w", err)
			}
			logger.Info("database seed applied")
		}

		breaker := resilience.NewBreaker(resilience.BreakerConfig{
			Name:             "postgres",
			Enabled:          cfg.DBCircuitEnabled,
			FailureThreshold: cfg.DBCircuitFailureCount,
			OpenTimeout:      cfg.DBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
		}, logBreakerTransition(logger))
		competitionRepo = resilient.NewCompetitionRepository(postgres.NewCompetitionRepository(db), breaker)
		matchRepo = resilient.NewMatchRepository(postgres.NewMatchRepository(db), breaker)
	default:
		competitionRepo = memory.NewCompetitionRepository(memory.SeedCompetitions())
		matchRepo = memory.NewMatchRepository(memory.SeedMatches())
	}

	repos := withCache(cfg, competitionRepo, matchRepo)
	logger.Info("storage configured",
		"driver", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"cache_ttl", cfg.CacheTTL.String(),
	)

	competitionSvc := usecase.NewCompetitionService(repos.competitions)
	standingsSvc := usecase.NewStandingsService(
		repos.competitions,
		repos.matches,
		usecase.StandingsOptions{
			FormLimit:    cfg.StandingsFormLimit,
			FormLength:   cfg.StandingsFormLength,
			TableWorkers: cfg.StandingsTableWorkers,
		},
		logger.Named("standings"),
	)

	handler := httpapi.NewHandler(competitionSvc, standingsSvc, repos.invalidator, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		InternalToken:      cfg.InternalAPIToken,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func withCache(cfg config.Config, competitionRepo competition.Repository, matchRepo match.Repository) repositories {
	if !cfg.CacheEnabled {
		return repositories{competitions: competitionRepo, matches: matchRepo}
	}

	cachedCompetitions := cache.NewCompetitionRepository(competitionRepo, basecache.NewStore[cache.CompetitionEntry](cfg.CacheTTL))
	cachedMatches := cache.NewMatchRepository(matchRepo, basecache.NewStore[cache.MatchEntry](cfg.CacheTTL))

	return repositories{
		competitions: cachedCompetitions,
		matches:      cachedMatches,
		invalidator:  cacheInvalidators{cachedCompetitions, cachedMatches},
	}
}

func logBreakerTransition(logger *logging.Logger) resilience.StateChangeFunc {
	return func(name string, from, to resilience.State) {
		if to == resilience.StateOpen {
			logger.Warn("circuit breaker opened", "dependency", name, "from", string(from))
			return
		}
		logger.Info("circuit breaker state changed", "dependency", name, "from", string(from), "to", string(to))
	}
}

type cacheInvalidators []httpapi.CacheInvalidator

func (c cacheInvalidators) InvalidateCompetition(ctx context.Context, competitionID string) {
	for _, item := range c {
		item.InvalidateCompetition(ctx, competitionID)
	}
}
