package main

import (
	"errors"
	"flag"
	"os"

	"github.com/plus3/blockfall/internal/launch"
	"github.com/plus3/blockfall/rlgui"
	"github.com/rs/zerolog/log"
)

func main() {
	env, err := launch.Setup(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	log.Logger = env.Logger

	rlgui.New(env.Session, env.Config.CellSize).Run("Blockfall")

	if err := env.Close(); err != nil {
		log.Error().Err(err).Msg("close log")
	}
}
