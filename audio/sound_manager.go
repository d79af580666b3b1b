package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/game"
)

// SoundManager turns game events into cues. It does nothing until Initialize
// succeeds, so a game without an audio device simply runs muted.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      [3]int
}

// NewSoundManager returns a muted manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences everything queued and mutes the manager.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues cue on the mixer.
func (sm *SoundManager) Play(cue Cue, lines int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := NewCue(cue, lines, sampleRate)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()

	if int(cue) < len(sm.played) {
		sm.played[cue]++
	}
}

// Played returns how many times cue has been queued.
func (sm *SoundManager) Played(cue Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if cue < 0 || int(cue) >= len(sm.played) {
		return 0
	}
	return sm.played[cue]
}

// Handle maps game events to cues.
func (sm *SoundManager) Handle(e game.Event) {
	switch e.Kind {
	case game.EventLocked:
		sm.Play(CueLock, 0)
	case game.EventLinesCleared:
		sm.Play(CueClear, e.Lines)
	case game.EventGameOver:
		sm.Play(CueGameOver, 0)
	}
}
