package lights

import (
	"fmt"
	"strings"
)

// Attenuation selects how light intensity falls off with distance. The
// zero value means unset and leaves intensity untouched.
type Attenuation int

const (
	AttenuationNone Attenuation = iota + 1
	AttenuationLinear
	AttenuationQuadratic
)

// Factor returns the intensity multiplier for a light at distance, given
// the light reach maxDistance. Linear and quadratic models reach zero at
// maxDistance and stay clamped there beyond it.
func (a Attenuation) Factor(distance, maxDistance float64) float64 {
	if a != AttenuationLinear && a != AttenuationQuadratic {
		return 1.0
	}
	if maxDistance <= 0 {
		return 0
	}

	ratio := distance / maxDistance
	var f float64
	switch a {
	case AttenuationLinear:
		f = 1.0 - ratio
	default:
		f = 1.0 - ratio*ratio
	}
	return max(0, f)
}

func (a Attenuation) String() string {
	switch a {
	case AttenuationNone:
		return "none"
	case AttenuationLinear:
		return "linear"
	case AttenuationQuadratic:
		return "quadratic"
	default:
		return fmt.Sprintf("Attenuation(%d)", int(a))
	}
}

// ParseAttenuation parses a model name as accepted on the command line
// and in scene files
func ParseAttenuation(s string) (Attenuation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return AttenuationNone, nil
	case "linear":
		return AttenuationLinear, nil
	case "quadratic", "":
		return AttenuationQuadratic, nil
	default:
		return 0, fmt.Errorf("unknown attenuation model %q (want none, linear or quadratic)", s)
	}
}
