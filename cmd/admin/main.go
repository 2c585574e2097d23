package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"adminconsole/internal/adapter/repository"
	"adminconsole/internal/infrastructure/httpclient"
	"adminconsole/internal/infrastructure/metrics"
	"adminconsole/internal/infrastructure/ratelimit"
	"adminconsole/internal/infrastructure/session"
	"adminconsole/internal/slice"
	"adminconsole/pkg/config"
	"adminconsole/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	logger.SetOutput(os.Stderr)
	logger.Configure(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg, os.Stdout)
	if err != nil {
		logger.Error("Failed to start: %v", err)
		os.Exit(1)
	}

	if err := a.run(ctx, os.Args[1:]); err != nil {
		a.flushNotifications()
		logger.Debug("Command failed: %v", err)
		os.Exit(1)
	}
	a.flushNotifications()
}

type app struct {
	cfg     *config.Config
	store   *slice.Store
	session *session.Session
	metrics *metrics.Metrics
	out     io.Writer
}

func newApp(cfg *config.Config, out io.Writer) (*app, error) {
	sess, err := session.New(session.NewFileStore(cfg.TokenFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	a := &app{
		cfg:     cfg,
		session: sess,
		metrics: metrics.New(),
		out:     out,
	}

	client, err := httpclient.New(httpclient.Config{
		BaseURL:     cfg.APIBaseURL,
		Timeout:     cfg.APITimeout,
		RateLimiter: ratelimit.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Metrics:     a.metrics,
		OnUnauthorized: func() {
			a.store.HandleUnauthorized()
		},
	}, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	a.store = slice.NewStore(slice.Repositories{
		Auth:       repository.NewRestAuthRepository(client),
		Products:   repository.NewRestProductRepository(client),
		Categories: repository.NewRestCategoryRepository(client),
		Orders:     repository.NewRestOrderRepository(client),
		Users:      repository.NewRestUserRepository(client),
		Banners:    repository.NewRestBannerRepository(client),
		Legal:      repository.NewRestLegalRepository(client),
	}, sess, slice.AuthOptions{DemoMode: cfg.DemoMode})

	return a, nil
}

// flushNotifications prints and drops the queued toasts.
func (a *app) flushNotifications() {
	for _, n := range a.store.UI.State().Notifications {
		fmt.Fprintf(a.out, "[%s] %s\n", n.Type, n.Message)
	}
	a.store.UI.ClearNotifications()
}
