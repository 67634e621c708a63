package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/langswitch/modules/language"
	"github.com/dmitrymomot/langswitch/pkg/clientip"
	"github.com/dmitrymomot/langswitch/pkg/httpserver"
	"github.com/dmitrymomot/langswitch/pkg/logger"
	"github.com/dmitrymomot/langswitch/pkg/messages"
	"github.com/dmitrymomot/langswitch/pkg/ratelimit"
	"github.com/dmitrymomot/langswitch/pkg/redis"
	"github.com/dmitrymomot/langswitch/pkg/session"
	"github.com/dmitrymomot/langswitch/pkg/switcher"
)

const healthTimeout = 2 * time.Second

func cmdServe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", "", "listen address, overrides HTTP_ADDR")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if *addr != "" {
		app.HTTP.Addr = *addr
	}

	logOpts, err := app.Log.Options()
	if err != nil {
		return err
	}
	log := logger.New(append([]logger.Option{
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(requestIDFromContext),
	}, logOpts...)...)
	logger.SetAsDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svcOpts := []switcher.Option{switcher.WithLogger(log), switcher.WithRegisterer(reg)}
	var (
		sessionOpts []session.Option
		checks      []httpserver.Check
		hooks       []httpserver.Option
	)

	if app.Redis.Enabled() {
		client, err := redis.Connect(ctx, app.Redis)
		if err != nil {
			return err
		}
		log.InfoContext(ctx, "using redis for sessions and rate limit counters")

		sessionOpts = append(sessionOpts, session.WithStore(
			session.NewRedisStore(client, session.WithKeyPrefix(app.Session.RedisKeyPrefix)),
		))
		svcOpts = append(svcOpts, switcher.WithRateLimitStore(ratelimit.NewRedisStore(client)))
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
		hooks = append(hooks, httpserver.WithShutdownHook(func(context.Context) error {
			return client.Close()
		}))
	}

	sessions := session.NewFromConfig(app.Session, sessionOpts...)
	svc, err := switcher.New(&cfg, switcher.NewSessionStore(sessions, cfg.SessionKey), svcOpts...)
	if err != nil {
		_ = sessions.Close()
		return err
	}

	msgs, err := messages.New()
	if err != nil {
		_ = svc.Close()
		_ = sessions.Close()
		return err
	}

	ipResolver := clientip.New(clientip.WithHeaders(app.TrustedIPHeaders...))

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, ipResolver.Middleware)

	r.Get("/health", httpserver.HealthCheckHandler(log, healthTimeout))
	r.Get("/ready", httpserver.HealthCheckHandler(log, healthTimeout, checks...))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Group(func(r chi.Router) {
		r.Use(sessions.Middleware, svc.Middleware)
		r.Mount("/", language.Router(svc, language.Options{
			Sessions: sessions,
			Messages: msgs,
			Logger:   log,
		}))
	})

	// hooks run in order: stop dispatching events before the stores go away
	srvOpts := append([]httpserver.Option{
		httpserver.WithLogger(log),
		httpserver.WithShutdownHook(func(context.Context) error { return svc.Close() }),
		httpserver.WithShutdownHook(func(context.Context) error { return sessions.Close() }),
	}, hooks...)

	log.InfoContext(ctx, "language switcher configured",
		slog.Int("languages", svc.Registry().Len()),
		slog.String("default_language", svc.Registry().Default()),
		slog.String("detection_method", string(cfg.DetectionMethod)),
		slog.Bool("api_enabled", cfg.API.Enabled),
		slog.Bool("rate_limiting", svc.RateLimited()),
	)

	return httpserver.NewFromConfig(app.HTTP, srvOpts...).Run(ctx, r)
}

func requestIDFromContext(ctx context.Context) (slog.Attr, bool) {
	id := middleware.GetReqID(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return logger.RequestID(id), true
}
