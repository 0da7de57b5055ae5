// Package demo is a small item list that exercises every popup kind.
package demo

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/popup/pkg/popup"
)

// App is the root Bubble Tea model. It owns the popup Provider and hands
// the list only the popup.Service side of it.
type App struct {
	popup  *popup.Provider
	list   *List
	logger *slog.Logger

	width  int
	height int
}

var _ tea.Model = (*App)(nil)

// New builds the app over items. popupOpts configure the Provider.
func New(items Items, logger *slog.Logger, popupOpts ...popup.Option) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := popup.New(append([]popup.Option{popup.WithLogger(logger)}, popupOpts...)...)

	list, err := NewList(p, items, logger)
	if err != nil {
		return nil, err
	}
	return &App{popup: p, list: list, logger: logger}, nil
}

// Popup exposes the provider, mainly for tests and embedding.
func (a *App) Popup() *popup.Provider {
	return a.popup
}

// List returns the list component.
func (a *App) List() *List {
	return a.list
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		return a, a.shutdown()
	}

	// Requests from other goroutines never replace a dialog the user is
	// answering; they resolve as aborted instead.
	if rm, ok := msg.(popup.RequestMsg); ok && a.popup.Open() && rm.Request != nil {
		a.logger.Debug("background dialog skipped", "kind", rm.Request.Kind().String())
		popup.Dismiss(rm.Request)
		return a, nil
	}

	cmd, handled := a.popup.Update(msg)
	if handled {
		return a, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height

	case popup.ResolvedMsg:
		a.logger.Debug("dialog resolved", "kind", msg.Kind.String(), "confirmed", msg.Confirmed)
		if a.list.QuitRequested() {
			return a, a.shutdown()
		}

	case tea.KeyMsg:
		return a, a.list.HandleKey(msg)
	}

	return a, nil
}

func (a *App) View() string {
	return a.popup.View(a.list.View(a.width, a.height))
}

func (a *App) shutdown() tea.Cmd {
	a.popup.Close()
	a.logger.Info("demo exiting")
	return tea.Quit
}
