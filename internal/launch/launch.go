// Package launch does the startup work shared by the frontends: settings,
// logging, the session and its sound.
package launch

import (
	"io"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/play"
	"github.com/rs/zerolog"
)

// Env is a ready-to-run session plus everything that must be torn down with
// it.
type Env struct {
	Config  config.Config
	Logger  zerolog.Logger
	Session *play.Session
	Sound   *audio.SoundManager

	closeLog func() error
}

// Setup loads settings from args and the environment and builds the session.
// Log lines go to console unless a log file is configured. A missing audio
// device only produces a warning.
func Setup(args []string, console io.Writer) (*Env, error) {
	cfg, err := config.Load(args)
	if err != nil {
		return nil, err
	}
	return New(cfg, console)
}

// New is Setup with already resolved settings.
func New(cfg config.Config, console io.Writer) (*Env, error) {
	logger, closeLog, err := config.NewLogger(cfg, console)
	if err != nil {
		return nil, err
	}

	seed := cfg.GameSeed()
	session := play.NewSession(game.NewSeeded(seed), play.NewLogListener(logger))
	session.SetTPS(cfg.TPS)

	env := &Env{
		Config:   cfg,
		Logger:   logger,
		Session:  session,
		closeLog: closeLog,
	}

	if cfg.Sound {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio disabled")
		} else {
			env.Sound = sound
			session.AddListener(sound)
		}
	}

	logger.Info().
		Int64("seed", seed).
		Int("tps", cfg.TPS).
		Bool("sound", env.Sound != nil).
		Msg("session ready")
	return env, nil
}

// Close stops sound and flushes the log.
func (e *Env) Close() error {
	if e.Sound != nil {
		e.Sound.Close()
	}
	stats := e.Session.Stats()
	e.Logger.Info().
		Int("games", stats.Games).
		Int("best_score", stats.BestScore).
		Int("pieces", stats.Pieces).
		Int("lines", stats.Lines).
		Msg("shutdown")
	return e.closeLog()
}
