package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/play"
	"github.com/rs/zerolog"
)

// App connects a tcell screen to a session: key events become actions and
// every frame is rendered to the screen.
type App struct {
	screen  tcell.Screen
	session *play.Session
	logger  zerolog.Logger
}

// NewScreen creates and initializes the terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// New registers a Renderer on session. screen must already be initialized.
func New(screen tcell.Screen, session *play.Session, logger zerolog.Logger) *App {
	session.AddSystem(NewRenderer(screen))
	return &App{
		screen:  screen,
		session: session,
		logger:  logger,
	}
}

// Run blocks until ctx is cancelled or the player quits. The caller finalizes
// the screen afterwards.
func (a *App) Run(ctx context.Context) {
	go a.pollEvents()
	a.session.Run(ctx)
	a.logger.Info().Uint64("ticks", a.session.Ticks()).Msg("session stopped")
}

// pollEvents exits when the screen is finalized.
func (a *App) pollEvents() {
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if action, ok := ActionForKey(ev); ok {
				a.session.Push(action)
			}
		case *tcell.EventResize:
			a.screen.Sync()
		}
	}
}
