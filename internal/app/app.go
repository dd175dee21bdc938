package app

import (
	"context"
	"time"

	"resumatic/internal/config"
	"resumatic/internal/services"
	"resumatic/internal/standards"
	"resumatic/internal/store"
	"resumatic/internal/store/history"

	log "github.com/sirupsen/logrus"
)

// App wires configuration, the history store and the optimizer facade.
type App struct {
	Config   *config.Config
	RunStore store.RunStore

	OptimizerService *services.OptimizerService
}

// NewApp initializes the application. A broken history store degrades to
// running without history rather than failing startup; the pipeline has
// no hard dependency on persistence.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	app.initRunStore(context.Background())
	app.initOptimizerService()

	log.Debugln("application initialization complete")
	return app, nil
}

func (a *App) initRunStore(ctx context.Context) {
	if a.Config.History.DSN == "" {
		log.Debugln("history disabled (empty DSN)")
		return
	}
	runStore, err := history.NewStore(ctx, a.Config.History.DSN)
	if err != nil {
		log.Warnf("history store unavailable, continuing without run history: %v", err)
		return
	}
	a.RunStore = runStore
}

func (a *App) initOptimizerService() {
	cfg := a.Config
	a.OptimizerService = services.NewOptimizerService(services.OptimizerServiceDeps{
		NewProvider: func() *standards.Provider {
			return standards.NewProvider(standards.ProviderOptions{
				Endpoint: cfg.Standards.Endpoint,
				ClientID: cfg.Standards.ClientID,
				Timeout:  time.Duration(cfg.Standards.TimeoutSeconds) * time.Second,
			})
		},
		RunStore: a.RunStore,
	})
}

// Close releases resources held by the app.
func (a *App) Close() {
	if a.RunStore != nil {
		if err := a.RunStore.Close(); err != nil {
			log.Warnf("error closing history store: %v", err)
		}
	}
}
