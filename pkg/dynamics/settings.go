package dynamics

import (
	"errors"
	"fmt"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings carries the tunables of one simulation. Each world owns its own
// copy so that differently tuned simulations can run side by side.
type Settings struct {
	// Epsilon is the tolerance used when deciding whether a clipped point is
	// behind the reference face, and below which friction is skipped.
	Epsilon float64 `yaml:"epsilon" json:"epsilon"`
	// BiasRelative and BiasAbsolute bias reference face selection towards the
	// first polygon of a pair on near ties.
	BiasRelative float64 `yaml:"bias_relative" json:"bias_relative"`
	BiasAbsolute float64 `yaml:"bias_absolute" json:"bias_absolute"`

	PenetrationAllowance  float64 `yaml:"penetration_allowance" json:"penetration_allowance"`
	PenetrationCorrection float64 `yaml:"penetration_correction" json:"penetration_correction"`

	Hertz      float64 `yaml:"hertz" json:"hertz"`
	Iterations int     `yaml:"iterations" json:"iterations"`

	Friction            bool    `yaml:"friction" json:"friction"`
	ParallelNarrowPhase bool    `yaml:"parallel_narrow_phase" json:"parallel_narrow_phase"`
	BroadPhaseCellSize  float64 `yaml:"broad_phase_cell_size" json:"broad_phase_cell_size"`
}

func DefaultSettings() Settings {
	return Settings{
		Epsilon:               1e-12,
		BiasRelative:          1.001,
		BiasAbsolute:          0.001,
		PenetrationAllowance:  0.01,
		PenetrationCorrection: 0.5,
		Hertz:                 60,
		Iterations:            100,
	}
}

// TimeStep is the fixed step length implied by Hertz.
func (s Settings) TimeStep() float64 {
	return 1 / s.Hertz
}

func (s Settings) Validate() error {
	switch {
	case s.Epsilon < 0:
		return fmt.Errorf("%w: epsilon must not be negative", ErrInvalidSettings)
	case s.BiasRelative <= 0:
		return fmt.Errorf("%w: bias_relative must be positive", ErrInvalidSettings)
	case s.BiasAbsolute < 0 || s.BiasAbsolute >= 1:
		return fmt.Errorf("%w: bias_absolute must be in [0, 1)", ErrInvalidSettings)
	case s.PenetrationAllowance < 0:
		return fmt.Errorf("%w: penetration_allowance must not be negative", ErrInvalidSettings)
	case s.PenetrationCorrection < 0 || s.PenetrationCorrection > 1:
		return fmt.Errorf("%w: penetration_correction must be in [0, 1]", ErrInvalidSettings)
	case s.Hertz <= 0:
		return fmt.Errorf("%w: hertz must be positive", ErrInvalidSettings)
	case s.Iterations < 1:
		return fmt.Errorf("%w: iterations must be at least 1", ErrInvalidSettings)
	case s.BroadPhaseCellSize < 0:
		return fmt.Errorf("%w: broad_phase_cell_size must not be negative", ErrInvalidSettings)
	}
	return nil
}
