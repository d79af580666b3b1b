package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/play"
	"github.com/rs/zerolog"
)

// moves are the actions the autoplayer picks from each frame.
var moves = []play.Action{
	play.MoveLeft,
	play.MoveRight,
	play.SoftDrop,
	play.Rotate,
	play.HardDrop,
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "How long to run the autoplayer.")
	seed := flag.Int64("seed", 1, "Seed for both the piece sequence and the autoplayer.")
	actionRate := flag.Float64("action-rate", 0.3, "Probability of pushing an action each frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Include GC pause totals in the report.")
	verbose := flag.Bool("v", false, "Log every game event.")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	session := play.NewSession(game.NewSeeded(*seed), play.NewLogListener(logger))
	player := rand.New(rand.NewPCG(uint64(*seed), 0))

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		ActionRate:     *actionRate,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info().Dur("duration", *duration).Int64("seed", *seed).Msg("running autoplayer")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			snap := session.Snapshot()
			switch {
			case snap.Status == game.Ended:
				session.Push(play.Restart)
			case player.Float64() < *actionRate:
				session.Push(moves[player.IntN(len(moves))])
			}

			stepStart := time.Now()
			session.Step()
			report.StepTime.Samples = append(report.StepTime.Samples, time.Since(stepStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Frames = session.Ticks()
	report.StepTime.Finalize()
	report.Collect(session)
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info().Uint64("frames", report.Frames).Msg("autoplayer finished")

	fmt.Println()
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("generate report")
	}
}
