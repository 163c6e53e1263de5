package sim

import "github.com/vovakirdan/keiraku-bomber/internal/config"

// Herb is the payload of a reward container or dropped item.
type Herb uint8

const (
	HerbMugwort Herb = iota
	HerbGinger
	HerbSalt
	HerbAconite
	HerbEphedra
	HerbAngelica
	HerbFullPower
)

var herbNames = [...]string{"Mugwort", "Ginger", "Salt", "Aconite", "Ephedra", "Angelica", "Hidden Herb"}

var herbEffects = [...]string{
	"explosion pattern up",
	"explosion pattern up",
	"explosion pattern up",
	"blast distance +2",
	"speed up",
	"moxa capacity +1",
	"all powers MAX",
}

func (h Herb) String() string {
	if int(h) < len(herbNames) {
		return herbNames[h]
	}
	return "unknown"
}

// Effect describes what picking up h does.
func (h Herb) Effect() string {
	if int(h) < len(herbEffects) {
		return herbEffects[h]
	}
	return ""
}

// drawContainerHerb picks a container payload: one weighted draw over the
// regular herbs, then an independent full-power override.
func drawContainerHerb(herbs config.HerbsConfig, rng Rand) Herb {
	ordered := herbs.Ordered()
	weights := make([]float64, len(ordered))
	for i, e := range ordered {
		weights[i] = e.Weight
	}
	h := Herb(pickWeighted(weights, rng.Float64()))
	if rng.Float64() < herbs.FullPowerOverride {
		h = HerbFullPower
	}
	return h
}

// drawDropHerb picks the regular herb a node sheds.
func drawDropHerb(herbs config.HerbsConfig, rng Rand) Herb {
	ordered := herbs.Ordered()
	weights := make([]float64, len(ordered))
	for i, e := range ordered {
		weights[i] = e.Drop
	}
	return Herb(pickWeighted(weights, rng.Float64()))
}

// herbScore returns the score for collecting h. Containers and dropped
// items only differ for the full-power herb.
func herbScore(herbs config.HerbsConfig, h Herb, fromContainer bool) int {
	if h == HerbFullPower {
		if fromContainer {
			return herbs.FullPowerContainerScore
		}
		return herbs.FullPowerItemScore
	}
	ordered := herbs.Ordered()
	if int(h) < len(ordered) {
		return ordered[h].Score
	}
	return 0
}
