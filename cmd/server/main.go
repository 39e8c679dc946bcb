package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"regledger/internal/audit"
	auditmemory "regledger/internal/audit/store/memory"
	auditpostgres "regledger/internal/audit/store/postgres"
	"regledger/internal/compliance"
	"regledger/internal/events/kafka"
	eventsmemory "regledger/internal/events/memory"
	"regledger/internal/events/natspub"
	"regledger/internal/events/redisstream"
	"regledger/internal/platform/config"
	"regledger/internal/platform/httpserver"
	"regledger/internal/platform/logger"
	"regledger/internal/platform/middleware"
	"regledger/internal/regulatory/handler"
	regmetrics "regledger/internal/regulatory/metrics"
	"regledger/internal/regulatory/ports"
	"regledger/internal/regulatory/service"
	"regledger/internal/regulatory/store"
	rulestore "regledger/internal/regulatory/store/rule"
)

// main wires dependencies explicitly and keeps the server lifecycle small.
// Business logic lives in internal/regulatory.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Stores: Postgres when a DSN is configured, in-memory otherwise.
	var (
		rules      ports.RuleStore
		auditStore audit.Store
	)
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("open postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		rules = rulestore.NewPostgres(db)
		auditStore = auditpostgres.New(db)
	} else {
		mem := rulestore.NewInMemory()
		if cfg.Seed {
			store.SeedRules(mem)
		}
		rules = mem
		auditStore = auditmemory.NewInMemoryStore()
	}

	publisher, closePublisher, err := buildPublisher(cfg)
	if err != nil {
		log.Error("event publisher init", "error", err)
		os.Exit(1)
	}
	defer closePublisher()

	// Audit writes run off the request path through a worker.
	inbox := make(chan audit.Event, 256)
	worker := audit.NewWorker(auditStore, inbox)
	auditTrail := audit.NewPublisher(auditStore)

	facade, err := compliance.New(rules,
		service.WithLogger(log),
		service.WithPublisher(publisher),
		service.WithAuditPublisher(audit.NewChannelPublisher(inbox)),
		service.WithMetrics(regmetrics.New()),
		service.WithTopic(cfg.EventTopic),
	)
	if err != nil {
		log.Error("service init", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestMetadata)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdminToken(cfg.AdminToken, log))
		handler.New(facade, auditTrail, log).Register(r)
	})

	srv := httpserver.New(cfg.Addr, r)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("starting regledger", "addr", cfg.Addr, "event_backend", cfg.EventBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		err := worker.Run(groupCtx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// buildPublisher selects the event transport from configuration. The memory
// backend keeps local development free of external brokers.
func buildPublisher(cfg config.Server) (ports.EventPublisher, func(), error) {
	switch cfg.EventBackend {
	case "kafka":
		p, err := kafka.New(cfg.KafkaBrokers)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	case "nats":
		p, err := natspub.New(cfg.NATSURL)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		p := redisstream.New(client)
		return p, func() { _ = client.Close() }, nil
	default:
		return eventsmemory.New(), func() {}, nil
	}
}
