package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/internal/launch"
	"github.com/plus3/blockfall/tui"
)

// The screen owns the terminal, so logs always go to a file.
const defaultLogFile = "blockfall-term.log"

func main() {
	if err := run(); err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "blockfall-term:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile
	}

	env, err := launch.New(cfg, nil)
	if err != nil {
		return err
	}
	defer env.Close()

	screen, err := tui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui.New(screen, env.Session, env.Logger).Run(ctx)
	return nil
}
