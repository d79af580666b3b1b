package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/play"
)

type Report struct {
	Duration       time.Duration
	Seed           int64
	ActionRate     float64
	GCPauseMetrics bool

	Frames    uint64
	TotalTime time.Duration
	StepTime  Stats

	Games     int
	BestScore int
	Pieces    int
	Lines     int
	Kinds     []KindCount
	Clears    []ClearCount
	Systems   []frame.SystemStats

	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type KindCount struct {
	Kind  game.Kind
	Count int
}

type ClearCount struct {
	Lines int
	Count int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Collect copies the session's cross-game counters and system timings.
func (r *Report) Collect(session *play.Session) {
	stats := session.Stats()
	r.Games = stats.Games
	r.BestScore = stats.BestScore
	r.Pieces = stats.Pieces
	r.Lines = stats.Lines

	r.Kinds = r.Kinds[:0]
	for _, k := range game.Kinds() {
		r.Kinds = append(r.Kinds, KindCount{Kind: k, Count: stats.Spawns(k)})
	}
	r.Clears = r.Clears[:0]
	for n := 1; n <= 4; n++ {
		r.Clears = append(r.Clears, ClearCount{Lines: n, Count: stats.Clears(n)})
	}
	r.Systems = session.SchedulerStats().Systems
}

// FramesPerSecond is the simulated frame rate achieved.
func (r *Report) FramesPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.Frames) / r.TotalTime.Seconds()
}

const reportTemplate = `# Blockfall Autoplay Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Action Rate:** {{printf "%.2f" .ActionRate}}

## Games
- **Finished Games:** {{.Games}}
- **Best Score:** {{.BestScore}}
- **Pieces Spawned:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}}

| Kind | Spawns |
|------|--------|
{{- range .Kinds}}
| {{.Kind}} | {{.Count}} |
{{- end}}

| Lines | Clears |
|-------|--------|
{{- range .Clears}}
| {{.Lines}} | {{.Count}} |
{{- end}}

## Performance
- **Frames:** {{.Frames}}
- **Total Time:** {{.TotalTime}}
- **Frames/s:** {{printf "%.0f" .FramesPerSecond}}
- **Step Time:** avg {{.StepTime.Avg}}, min {{.StepTime.Min}}, max {{.StepTime.Max}}

| System | Runs | Avg | Max |
|--------|------|-----|-----|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory (bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}} (delta {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}})
- Total Alloc: {{.MemStatsStart.TotalAlloc}} -> {{.MemStatsEnd.TotalAlloc}} (delta {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}})
- Num GC:      {{.MemStatsStart.NumGC}} -> {{.MemStatsEnd.NumGC}} (delta {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}})
{{if .GCPauseMetrics}}
## GC Pauses
- **Total GC Pause:** {{ns .MemStatsEnd.PauseTotalNs}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
