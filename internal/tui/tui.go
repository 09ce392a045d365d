package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/session-wallet/internal/logger"
	"github.com/MKhiriev/session-wallet/internal/service"
	"github.com/MKhiriev/session-wallet/models"
)

// TUI runs the terminal client on top of the client services.
type TUI struct {
	services  *service.ClientServices
	secrets   SecretHolder
	bridge    *Bridge
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates the terminal client. bridge must be the same value the
// services were built with as collaborators.
func New(services *service.ClientServices, secrets SecretHolder, bridge *Bridge, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.AccountManager == nil {
		return nil, errors.New("tui: account manager is required")
	}
	if secrets == nil || bridge == nil {
		return nil, errors.New("tui: secret holder and bridge are required")
	}

	return &TUI{
		services:  services,
		secrets:   secrets,
		bridge:    bridge,
		buildInfo: buildInfo,
		logger:    log.WithComponent("tui"),
	}, nil
}

// Run blocks until the user quits or ctx is cancelled. Quitting is not an
// error.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	manager := t.services.AccountManager
	pages := map[models.Route]tea.Model{
		models.RouteUnlock:   NewUnlockModel(ctx, t.secrets, manager),
		models.RouteAccounts: NewAccountsModel(ctx, manager),
		models.RouteSend:     NewTransferModel(ctx, manager, models.RouteSend),
		models.RouteReceive:  NewTransferModel(ctx, manager, models.RouteReceive),
	}

	root := NewRootModel(pages, models.RouteUnlock, t.services.SessionJob, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.bridge.Attach(program)
	defer t.bridge.attach(nil)

	_, err := program.Run()
	switch {
	case err == nil:
		t.logger.Info().Msg("tui closed by user")
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		t.logger.Info().Msg("tui stopped by context")
		return nil
	default:
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui program failed")
		return err
	}
}
