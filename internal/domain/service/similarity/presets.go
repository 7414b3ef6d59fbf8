package similarity

import (
	"errors"
	"fmt"
	"strings"
)

const (
	PresetDefault = "default"
	// PresetDetail backs the detail report, which tolerates typos in the
	// feature names returned by vision APIs.
	PresetDetail = "detail"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named scoring configuration.
type Preset struct {
	Name    string
	Weights Weights
	Policy  MatchPolicy
}

func (p Preset) Options() Options {
	return Options{
		Weights: p.Weights,
		Policy:  p.Policy,
	}
}

func Presets() []Preset {
	return []Preset{
		{Name: PresetDefault, Weights: DefaultWeights(), Policy: ContainmentOverlap},
		{Name: PresetDetail, Weights: DefaultWeights(), Policy: LevenshteinThreshold},
	}
}

func PresetByName(name string) (Preset, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for _, p := range Presets() {
		if p.Name == name {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
