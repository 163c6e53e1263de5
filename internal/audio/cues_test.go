package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
)

func drain(t *testing.T, s beep.Streamer) (samples int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		samples += n
		if !ok {
			return samples, peak
		}
		if samples > int(sampleRate)*10 {
			t.Fatal("cue never ended")
		}
	}
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		event sim.Event
		want  time.Duration
	}{
		{sim.EventNeedleFired, 50 * time.Millisecond},
		{sim.EventMoxaPlaced, 80 * time.Millisecond},
		{sim.EventExplosionTriggered, 200 * time.Millisecond},
		{sim.EventEnemyDefeated, 280 * time.Millisecond},
		{sim.EventItemCollected, 150 * time.Millisecond},
		{sim.EventNodeOpened, 250 * time.Millisecond},
		{sim.EventStageCleared, 750 * time.Millisecond},
		{sim.EventRunFailed, 700 * time.Millisecond},
	}

	rate := beep.SampleRate(44100)
	for _, tt := range tests {
		t.Run(string(tt.event), func(t *testing.T) {
			if got := CueDuration(tt.event); got != tt.want {
				t.Errorf("CueDuration = %v, want %v", got, tt.want)
			}

			var want int
			for _, n := range cues[tt.event] {
				want += rate.N(n.duration)
			}
			got, peak := drain(t, Synthesize(tt.event, rate, 1))
			if got != want {
				t.Errorf("streamed %d samples, want %d", got, want)
			}
			if peak <= 0 || peak > 1.0001 {
				t.Errorf("peak amplitude %f out of range", peak)
			}
		})
	}
}

func TestSynthesizeUnknownEvent(t *testing.T) {
	if s := Synthesize(sim.Event("unknown"), sampleRate, 1); s != nil {
		t.Error("expected no cue for an unknown event")
	}
	if CueDuration(sim.Event("unknown")) != 0 {
		t.Error("unknown event has a duration")
	}
}

func TestVolumeScales(t *testing.T) {
	rate := beep.SampleRate(8000)
	_, loud := drain(t, Synthesize(sim.EventItemCollected, rate, 1))
	_, quiet := drain(t, Synthesize(sim.EventItemCollected, rate, 0.25))
	if quiet >= loud {
		t.Errorf("quiet peak %f not below loud peak %f", quiet, loud)
	}

	_, silent := drain(t, Synthesize(sim.EventItemCollected, rate, 0))
	if silent != 0 {
		t.Errorf("silent cue peaked at %f", silent)
	}
}

func TestBoardIgnoresEventsBeforeInit(t *testing.T) {
	b := NewSoundBoard(DefaultVolume, nil)
	b.Notify(sim.EventMoxaPlaced)
	b.Close()
}
