// Package audio turns simulation events into synthesized tone cues.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
)

const (
	sampleRate = beep.SampleRate(48000)

	// DefaultVolume is the linear cue volume.
	DefaultVolume = 0.3
)

// SoundBoard plays one cue per event through the speaker. It implements
// sim.EventSink and is safe for use from several goroutines.
type SoundBoard struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	logger      *log.Logger
	initialized bool
}

// NewSoundBoard creates a sound board. Nothing plays until Init succeeds.
func NewSoundBoard(volume float64, logger *log.Logger) *SoundBoard {
	return &SoundBoard{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the speaker.
func (b *SoundBoard) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Notify queues the cue for e. Events without a cue are ignored.
func (b *SoundBoard) Notify(e sim.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	s := Synthesize(e, sampleRate, b.volume)
	if s == nil {
		return
	}
	// The speaker goroutine reads the mixer under its own lock.
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
	if b.logger != nil {
		b.logger.Debug("cue", "event", e)
	}
}

// Close silences pending cues and releases the speaker.
func (b *SoundBoard) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.initialized = false
}

var _ sim.EventSink = (*SoundBoard)(nil)
