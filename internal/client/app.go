package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/session-wallet/internal/config"
	"github.com/MKhiriev/session-wallet/internal/logger"
	"github.com/MKhiriev/session-wallet/internal/service"
)

type App struct {
	services *service.ClientServices
	ui       UI
	store    io.Closer
	session  config.ClientSession
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, store io.Closer, session config.ClientSession, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}

	return &App{
		services: services,
		ui:       ui,
		store:    store,
		session:  session,
		logger:   log.WithComponent("client"),
	}, nil
}

// Run starts the idle job, blocks in the UI and tears the session down on
// exit.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if a.store == nil {
			return
		}
		if closeErr := a.store.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("failed to close session store")
			err = errors.Join(err, fmt.Errorf("close session store: %w", closeErr))
		}
	}()

	if job := a.services.SessionJob; job != nil && a.session.IdleTimeout > 0 {
		job.Start(ctx, a.session.IdleTimeout)
		defer job.Stop()
		a.logger.Info().Dur("idle_timeout", a.session.IdleTimeout).Msg("session idle job started")
	}

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	// The vault is dropped together with the store, but clear it first so
	// persistent backends do not keep rows when Close fails.
	if clearErr := a.services.AccountManager.EndSession(context.WithoutCancel(ctx)); clearErr != nil {
		a.logger.Warn().Err(clearErr).Msg("failed to clear session on exit")
	}

	return nil
}
