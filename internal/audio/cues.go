package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
)

// cues maps simulation events to the notes played for them, in order.
var cues = map[sim.Event][]tone{
	sim.EventNeedleFired:        {{800, 50 * time.Millisecond, WaveSquare}},
	sim.EventMoxaPlaced:         {{150, 80 * time.Millisecond, WaveSine}},
	sim.EventExplosionTriggered: {{80, 200 * time.Millisecond, WaveSaw}},
	sim.EventEnemyDefeated: {
		{523, 80 * time.Millisecond, WaveSine},
		{659, 80 * time.Millisecond, WaveSine},
		{784, 120 * time.Millisecond, WaveSine},
	},
	sim.EventItemCollected: {{1200, 150 * time.Millisecond, WaveSine}},
	sim.EventNodeOpened: {
		{1047, 100 * time.Millisecond, WaveSine},
		{1319, 150 * time.Millisecond, WaveSine},
	},
	sim.EventStageCleared: {
		{523, 150 * time.Millisecond, WaveSine},
		{659, 150 * time.Millisecond, WaveSine},
		{784, 150 * time.Millisecond, WaveSine},
		{1047, 300 * time.Millisecond, WaveSine},
	},
	sim.EventRunFailed: {
		{523, 200 * time.Millisecond, WaveSine},
		{392, 200 * time.Millisecond, WaveSine},
		{294, 300 * time.Millisecond, WaveSine},
	},
}

// CueDuration returns how long the cue for e plays, or zero if e has none.
func CueDuration(e sim.Event) time.Duration {
	var d time.Duration
	for _, t := range cues[e] {
		d += t.duration
	}
	return d
}

// Synthesize renders the cue for e at the given volume. It returns nil
// for events without a cue.
func Synthesize(e sim.Event, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cues[e]
	if !ok {
		return nil
	}
	streams := make([]beep.Streamer, len(notes))
	for i, t := range notes {
		streams[i] = t.streamer(rate)
	}
	return withVolume(beep.Seq(streams...), volume)
}
