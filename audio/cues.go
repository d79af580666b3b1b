// Package audio plays short synthesized cues for game events through the beep
// speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Cue names one of the sounds the game can play.
type Cue int

const (
	CueLock Cue = iota
	CueClear
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueLock:
		return "lock"
	case CueClear:
		return "clear"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

const (
	lockDuration     = 45 * time.Millisecond
	clearNote        = 90 * time.Millisecond
	gameOverDuration = 900 * time.Millisecond
)

// chord notes for line clears, C major stacked up to the octave
var chordFreqs = [...]float64{523.25, 659.25, 783.99, 1046.50}

// NewCue builds the streamer for cue. lines scales the line-clear chord and
// is ignored by the other cues. It returns nil for an unknown cue.
func NewCue(cue Cue, lines int, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueLock:
		return lockSound(rate)
	case CueClear:
		return clearSound(lines, rate)
	case CueGameOver:
		return gameOverSound(rate)
	default:
		return nil
	}
}

func lockSound(rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SquareTone(rate, 196)
	if err != nil {
		return beep.Silence(rate.N(lockDuration))
	}
	shaped := newEnvelope(beep.Take(rate.N(lockDuration), tone), rate.N(lockDuration), rate.N(2*time.Millisecond), rate.N(30*time.Millisecond))
	return newVolume(shaped, 0.15)
}

// clearSound plays an arpeggio of the first lines chord notes followed by the
// full chord.
func clearSound(lines int, rate beep.SampleRate) beep.Streamer {
	if lines < 1 {
		lines = 1
	}
	if lines > len(chordFreqs) {
		lines = len(chordFreqs)
	}

	var notes []beep.Streamer
	var chord []beep.Streamer
	for _, freq := range chordFreqs[:lines] {
		notes = append(notes, sineNote(freq, clearNote, rate))
		chord = append(chord, newVolume(sineNote(freq, 2*clearNote, rate), 1/float64(lines)))
	}
	notes = append(notes, beep.Mix(chord...))

	return newVolume(beep.Seq(notes...), 0.3)
}

func sineNote(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(n)
	}
	return newEnvelope(beep.Take(n, tone), n, rate.N(5*time.Millisecond), n/2)
}

func gameOverSound(rate beep.SampleRate) beep.Streamer {
	n := rate.N(gameOverDuration)
	sweep := &sweepGenerator{rate: rate, from: 440, to: 110, total: n}
	return newVolume(newEnvelope(sweep, n, rate.N(10*time.Millisecond), n/3), 0.3)
}

// sweepGenerator glides a sine wave from one frequency to another.
type sweepGenerator struct {
	rate     beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from * math.Pow(g.to/g.from, progress)

		v := math.Sin(2 * math.Pi * g.phase)
		samples[i][0] = v
		samples[i][1] = v

		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }

// envelope fades a stream in over attack samples and out over its last
// release samples.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; effects.Volume works in powers of Base.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
