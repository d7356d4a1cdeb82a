package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"meetspace/config"
	"meetspace/internal/adapters/auth"
	"meetspace/internal/adapters/email"
	"meetspace/internal/adapters/ids"
	"meetspace/internal/clock"
	httpdelivery "meetspace/internal/delivery/http"
	"meetspace/internal/delivery/http/controllers"
	"meetspace/internal/domain"
	"meetspace/internal/repository/memory"
	"meetspace/internal/repository/postgres"
	"meetspace/internal/services"
	"meetspace/migrations"
)

// application is the fully wired HTTP handler plus the resources it owns.
type application struct {
	Handler http.Handler
	db      *sql.DB
}

// Close releases the database pool, if any.
func (a *application) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (*application, error) {
	app := &application{}

	var (
		identities domain.IdentityRepository
		events     domain.EventRepository
		store      controllers.Pinger
	)
	switch cfg.StorageBackend {
	case config.StorageMemory:
		if migrate {
			logger.Warn("--migrate ignored for the memory backend")
		}
		identities = memory.NewIdentityStore()
		events = memory.NewEventStore()
	default:
		db, err := openDB(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := migrations.Apply(ctx, db, logger); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("apply migrations: %w", err)
			}
		}
		app.db = db
		identities = postgres.NewIdentityRepository(db)
		events = postgres.NewEventRepository(db, logger)
		store = db
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("create mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("load email templates: %w", err)
	}

	clk := clock.NewSystem()
	hasher := auth.NewArgon2Hasher(auth.Argon2Params{
		MemoryKiB: cfg.Argon2MemoryKiB,
		Time:      cfg.Argon2Time,
		Threads:   cfg.Argon2Threads,
	})
	credentials := services.NewCredentialService(
		identities,
		hasher,
		auth.NewKeyGenerator(cfg.APIKeyPrefix),
		services.NewEmailService(mailer, renderer, logger),
		clk,
		logger,
	)
	eventService := services.NewEventService(events, ids.NewULIDGenerator(), clk)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app.Handler = httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Logger:      logger,
		Auth:        controllers.NewAuthController(logger, credentials),
		Events:      controllers.NewEventController(logger, eventService),
		Health:      controllers.NewHealthController(logger, store),
		Credentials: credentials,
		Registry:    registry,
		CORSOrigins: cfg.CORSOrigins,
	})
	return app, nil
}
