package play

import (
	"github.com/plus3/blockfall/game"
	"github.com/rs/zerolog"
)

// Listener receives game events after each frame.
type Listener interface {
	Handle(e game.Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(e game.Event)

// Handle calls fn(e).
func (fn ListenerFunc) Handle(e game.Event) {
	fn(e)
}

// LogListener writes every event to a zerolog logger.
type LogListener struct {
	logger zerolog.Logger
}

// NewLogListener returns a listener logging to logger.
func NewLogListener(logger zerolog.Logger) *LogListener {
	return &LogListener{logger: logger}
}

func (l *LogListener) Handle(e game.Event) {
	switch e.Kind {
	case game.EventSpawned:
		l.logger.Debug().
			Str("event", e.Kind.String()).
			Stringer("kind", e.Piece.Kind).
			Stringer("orientation", e.Piece.Orientation).
			Int("x", e.Piece.X).
			Int("y", e.Piece.Y).
			Msg("piece spawned")
	case game.EventLocked:
		l.logger.Debug().
			Str("event", e.Kind.String()).
			Stringer("piece", e.Piece).
			Msg("piece locked")
	case game.EventLinesCleared:
		l.logger.Info().
			Str("event", e.Kind.String()).
			Int("lines", e.Lines).
			Int("points", e.Points).
			Int("score", e.Score).
			Msg("lines cleared")
	case game.EventGameOver:
		l.logger.Info().
			Str("event", e.Kind.String()).
			Stringer("reason", e.Reason).
			Int("score", e.Score).
			Msg("game over")
	case game.EventReset:
		l.logger.Info().
			Str("event", e.Kind.String()).
			Msg("game reset")
	}
}
