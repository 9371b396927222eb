package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/service"
	"github.com/MKhiriev/go-pod-sync/internal/workers"
	"github.com/MKhiriev/go-pod-sync/models"
)

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	account  config.ClientAccount
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, workers *workers.Workers, account config.ClientAccount, logger *logger.Logger) (*App, error) {
	if services == nil || workers == nil {
		return nil, errors.New("client app needs services and workers")
	}
	return &App{services: services, workers: workers, account: account, logger: logger}, nil
}

// Run syncs until SIGTERM or SIGINT arrives. SIGUSR1 requests an
// immediate cycle.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	trigger := make(chan os.Signal, 1)
	signal.Notify(trigger, syscall.SIGUSR1)
	defer signal.Stop(trigger)

	return a.run(ctx, trigger)
}

func (a *App) run(ctx context.Context, trigger <-chan os.Signal) error {
	ctx = a.logger.WithContext(ctx)

	if err := a.signIn(ctx); err != nil {
		return err
	}

	res := a.services.SyncService.Sync(ctx)
	a.logger.Info().
		Str("status", res.Status.String()).
		Strs("failed_domains", domainNames(res)).
		Msg("initial sync finished")

	a.workers.Run(ctx)
	defer a.workers.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info().Msg("client shutting down")
			return nil
		case <-trigger:
			a.logger.Info().Msg("sync requested")
			a.services.SyncJob.TriggerNow()
		}
	}
}

// signIn replaces the stored credential when startup credentials are
// configured. Without them the stored session is used as is.
func (a *App) signIn(ctx context.Context) error {
	if a.account.Login == "" {
		return nil
	}

	err := a.services.SyncService.SignIn(ctx, a.account.Login, a.account.Password)
	if err == nil {
		a.logger.Info().Str("login", a.account.Login).Msg("signed in")
		return nil
	}
	if service.IsRetryable(err) {
		a.logger.Warn().Err(err).Msg("sign in failed, using the stored session")
		return nil
	}
	return fmt.Errorf("sign in: %w", err)
}

func domainNames(res models.SyncResult) []string {
	failed := res.FailedDomains()
	names := make([]string, 0, len(failed))
	for _, d := range failed {
		names = append(names, string(d))
	}
	return names
}
