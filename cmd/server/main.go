package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"golang.org/x/sync/errgroup"

	"pratyaksh/internal/audit"
	"pratyaksh/internal/clientrisk"
	clientriskhandler "pratyaksh/internal/clientrisk/handler"
	"pratyaksh/internal/compliance"
	compliancehandler "pratyaksh/internal/compliance/handler"
	evidencehandler "pratyaksh/internal/evidence/handler"
	evidenceservice "pratyaksh/internal/evidence/service"
	evidencestore "pratyaksh/internal/evidence/store"
	governancehandler "pratyaksh/internal/governance/handler"
	governanceservice "pratyaksh/internal/governance/service"
	directorstore "pratyaksh/internal/governance/store/director"
	resolutionstore "pratyaksh/internal/governance/store/resolution"
	jwttoken "pratyaksh/internal/jwt_token"
	"pratyaksh/internal/platform/config"
	"pratyaksh/internal/platform/httpserver"
	"pratyaksh/internal/platform/logger"
	"pratyaksh/internal/platform/metrics"
	"pratyaksh/internal/platform/postgres"
	"pratyaksh/internal/platform/redis"
	sentryutil "pratyaksh/internal/platform/sentry"
	"pratyaksh/internal/ratelimit"
	"pratyaksh/internal/regional"
	regionalhandler "pratyaksh/internal/regional/handler"
	"pratyaksh/internal/rulebook"
	httptransport "pratyaksh/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Env, cfg.LogLevel)

	sentryutil.Init(cfg.Sentry, log)
	defer sentryutil.Flush()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		sentryutil.CaptureError(err, map[string]string{"component": "main"})
		sentryutil.Flush()
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	if cfg.IsProduction() && cfg.UsesDevSigningKey() {
		return errors.New("JWT_SIGNING_KEY must be set in production")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rules, err := rulebook.Load(cfg.RulesFile)
	if err != nil {
		return err
	}
	loc, err := time.LoadLocation(cfg.CalendarTZ)
	if err != nil {
		return fmt.Errorf("load CALENDAR_TZ %q: %w", cfg.CalendarTZ, err)
	}

	m := metrics.New()
	checks := map[string]httptransport.HealthCheck{}

	db, err := openDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
		checks["postgres"] = db.PingContext
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	if redisClient != nil {
		checks["redis"] = redisClient.Health
	}

	auditPublisher := audit.NewPublisher(audit.NewInMemoryStore(audit.DefaultCapacity), 0)
	tokens := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)

	var (
		directors   governanceservice.DirectorStore
		resolutions governanceservice.ResolutionStore
		evidence    evidenceservice.Store
	)
	if db != nil {
		directors = directorstore.NewPostgres(db)
		resolutions = resolutionstore.NewPostgres(db)
		evidence = evidencestore.NewPostgres(db)
	} else {
		directors = directorstore.NewInMemory()
		resolutions = resolutionstore.NewInMemory()
		evidence = evidencestore.NewInMemory()
	}

	governanceSvc := governanceservice.New(directors, resolutions,
		governanceservice.WithLogger(log),
		governanceservice.WithMetrics(m),
		governanceservice.WithAuditPublisher(auditPublisher),
		governanceservice.WithResolutionRules(rules.ResolutionRules),
	)
	evidenceSvc := evidenceservice.New(evidence,
		evidenceservice.WithLogger(log),
		evidenceservice.WithAuditPublisher(auditPublisher),
	)

	limiter := ratelimit.New(rateLimitStore(redisClient, log), cfg.RateLimit.Requests, cfg.RateLimit.Window, log,
		ratelimit.WithDisabled(!cfg.RateLimit.Enabled),
		ratelimit.WithMetrics(m),
	)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:    log,
		Metrics:   m,
		Validator: tokens,
		RateLimit: limiter.Handler,
		Audit:     auditPublisher,
		Checks:    checks,
		Handlers: []httptransport.Registrar{
			compliancehandler.New(compliance.NewCalculator(rules.Compliance), log, m, compliancehandler.WithLocation(loc)),
			governancehandler.New(governanceSvc, log, m, tokens),
			clientriskhandler.New(clientrisk.NewScorer(rules.ClientRisk), log, m),
			regionalhandler.New(regional.NewEngine(rules.StampDuty), log, m),
			evidencehandler.New(evidenceSvc, log, tokens),
		},
	})
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return auditPublisher.Worker().Run(gctx)
	})
	g.Go(func() error {
		log.Info("starting pratyaksh cs suite", "addr", cfg.Addr, "env", cfg.Env, "calendar_tz", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openDatabase returns nil when DATABASE_URL is empty.
func openDatabase(ctx context.Context, cfg config.Server, log *slog.Logger) (*sql.DB, error) {
	if cfg.Database.URL == "" {
		log.Info("DATABASE_URL not set, using in-memory registries")
		return nil, nil
	}
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info("postgres connected, migrations applied")
	return db, nil
}

func rateLimitStore(client *redis.Client, log *slog.Logger) ratelimit.Store {
	if client == nil {
		return ratelimit.NewMemoryStore()
	}
	return ratelimit.NewFailoverStore(ratelimit.NewRedisStore(client.Client), ratelimit.NewMemoryStore(), log)
}
