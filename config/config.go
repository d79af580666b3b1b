// Package config resolves runtime settings from defaults, an optional .env
// file, BLOCKFALL_* environment variables and command line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds everything a frontend needs to start a game. A zero Seed picks
// a random one; a non-empty LogFile receives JSON log lines instead of the
// console.
type Config struct {
	Seed     int64
	LogLevel string
	LogFile  string
	Sound    bool
	Debug    bool
	CellSize int
	TPS      int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Sound:    true,
		CellSize: 30,
		TPS:      60,
	}
}

// Load reads ./.env if present, then the environment, then args.
func Load(args []string) (Config, error) {
	return LoadFile(".env", args)
}

// LoadFile is Load with an explicit .env path. A missing file is not an
// error.
func LoadFile(envFile string, args []string) (Config, error) {
	dotenv, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
		dotenv = map[string]string{}
	}

	cfg := Default()
	if err := cfg.applyEnv(lookup(dotenv)); err != nil {
		return Config{}, err
	}

	flags := flag.NewFlagSet("blockfall", flag.ContinueOnError)
	cfg.bind(flags)
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// lookup prefers the process environment over the .env values.
func lookup(dotenv map[string]string) func(string) string {
	return func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
}

func (c *Config) applyEnv(getEnv func(string) string) error {
	if v := getEnv("BLOCKFALL_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("BLOCKFALL_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := getEnv("BLOCKFALL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getEnv("BLOCKFALL_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := getEnv("BLOCKFALL_SOUND"); v != "" {
		sound, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("BLOCKFALL_SOUND: %w", err)
		}
		c.Sound = sound
	}
	if v := getEnv("BLOCKFALL_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("BLOCKFALL_DEBUG: %w", err)
		}
		c.Debug = debug
	}
	if v := getEnv("BLOCKFALL_CELL_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BLOCKFALL_CELL_SIZE: %w", err)
		}
		c.CellSize = size
	}
	if v := getEnv("BLOCKFALL_TPS"); v != "" {
		tps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BLOCKFALL_TPS: %w", err)
		}
		c.TPS = tps
	}
	return nil
}

func (c *Config) bind(flags *flag.FlagSet) {
	flags.Int64Var(&c.Seed, "seed", c.Seed, "Seed for the piece sequence (0 picks one at random).")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Minimum log level (trace, debug, info, warn, error).")
	flags.StringVar(&c.LogFile, "log-file", c.LogFile, "Write logs to this file instead of stderr.")
	flags.BoolVar(&c.Sound, "sound", c.Sound, "Play sound cues.")
	flags.BoolVar(&c.Debug, "debug", c.Debug, "Show the debug overlay.")
	flags.IntVar(&c.CellSize, "cell-size", c.CellSize, "Size of one grid cell in pixels.")
	flags.IntVar(&c.TPS, "tps", c.TPS, "Game ticks per second.")
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// GameSeed returns Seed, or a random non-zero seed when Seed is zero.
func (c Config) GameSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	for {
		if seed := rand.Int64(); seed != 0 {
			return seed
		}
	}
}
