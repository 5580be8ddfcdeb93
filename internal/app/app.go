// Package app wires configuration, the provider and the HTTP surface together.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cesargomez89/saavnsource/internal/catalog"
	"github.com/cesargomez89/saavnsource/internal/codec"
	"github.com/cesargomez89/saavnsource/internal/config"
	"github.com/cesargomez89/saavnsource/internal/constants"
	httpapp "github.com/cesargomez89/saavnsource/internal/http"
	"github.com/cesargomez89/saavnsource/internal/httpclient"
	"github.com/cesargomez89/saavnsource/internal/logger"
	"github.com/cesargomez89/saavnsource/internal/metrics"
)

type App struct {
	Config  *config.Config
	Logger  *logger.Logger
	Codec   *codec.Codec
	Metrics *metrics.Metrics
	Manager *catalog.Manager
}

// New builds the application around a pooled HTTP client that reports to
// the application's metrics.
func New(cfg *config.Config, log *logger.Logger) *App {
	return NewWithRequester(cfg, log, nil)
}

// NewWithRequester is New with the outbound client replaced. A nil requester
// selects the default client.
func NewWithRequester(cfg *config.Config, log *logger.Logger, req httpclient.Requester) *App {
	if log == nil {
		log = logger.Default()
	}

	m := metrics.New()
	if req == nil {
		req = httpclient.NewClient(nil, cfg.HTTPTimeout, cfg.RequestInterval).WithObserver(m)
	}

	c := codec.New()
	source := catalog.NewJioSaavnProvider(Options(cfg), req, c, log)
	provider := catalog.NewInstrumentedProvider(source, m)

	return &App{
		Config:  cfg,
		Logger:  log,
		Codec:   c,
		Metrics: m,
		Manager: catalog.NewManager(provider, log),
	}
}

// Options extracts the provider options from cfg.
func Options(cfg *config.Config) catalog.Options {
	return catalog.Options{
		Enabled:          cfg.Enabled,
		APIBaseURL:       cfg.APIBaseURL,
		MaxSearchResults: cfg.MaxSearchResults,
		Quality:          cfg.Quality,
	}
}

func (a *App) Handler() http.Handler {
	h := httpapp.NewHandler(a.Manager, a.Codec, a.Metrics.Handler(), a.Logger)
	h.SourceEnabled = a.Config.Enabled
	return h.Router()
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.Logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.Logger.Info("Server exiting")
	return nil
}
