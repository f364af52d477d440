package tui

import (
	"context"
	"errors"
	"os"

	"github.com/DehanLUO/modern-go-template/internal/logger"
	"github.com/DehanLUO/modern-go-template/internal/service"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrNotATerminal is returned by [TUI.Run] when the input is not an
// interactive terminal.
var ErrNotATerminal = errors.New("interactive mode requires a terminal")

// TUI runs the interactive build information viewer.
type TUI struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.BuildInfoService == nil {
		return nil, errNoBuildInfoService
	}
	return &TUI{services: services, logger: logger.GetChildLogger()}, nil
}

// Run opens the viewer on in/out and blocks until the user quits or ctx is
// cancelled.
func (t *TUI) Run(ctx context.Context, in, out *os.File) error {
	if !term.IsTerminal(int(in.Fd())) {
		return ErrNotATerminal
	}

	model := newBuildInfoModel(ctx, t.services.BuildInfoService, clipboard.WriteAll)
	t.logger.Debug().Msg("starting build information viewer")

	_, err := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	).Run()
	// a cancelled context kills the program; that is a normal exit
	if err != nil && ctx.Err() == nil {
		return err
	}

	return nil
}
