package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	reportadapter "github.com/milefashell/nostrstats/internal/adapters/render/report"
	relayadapter "github.com/milefashell/nostrstats/internal/adapters/relay"
	tomlrepo "github.com/milefashell/nostrstats/internal/adapters/repo/toml"
	"github.com/milefashell/nostrstats/internal/application"
	"github.com/milefashell/nostrstats/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	relayRepo      *tomlrepo.Repository
	reportRenderer func(application.Report, reportadapter.RenderOptions) (string, error)
	logger         *slog.Logger
	now            func() time.Time
}

func wireApp() (*app, error) {
	relayRepo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire relay repository: %w", err)
	}

	return &app{
		relayRepo:      relayRepo,
		reportRenderer: reportadapter.Render,
		logger:         slog.Default(),
		now:            time.Now,
	}, nil
}

// statsService builds a service backed by the configured bootstrap relays.
// Built per invocation so a relays-add in one command is visible to the next.
func (a *app) statsService(ctx context.Context) (*application.StatsService, error) {
	bootstrap, err := a.relayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bootstrap relays: %w", err)
	}

	client := relayadapter.NewClient(bootstrap, a.logger)

	return application.NewStatsService(client, ports.SystemClock{}), nil
}
