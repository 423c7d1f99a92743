package renderer

import (
	"errors"
	"fmt"
)

// Limits accepted for user-supplied render settings. The renderer itself
// trusts its Config; callers validate with Validate first.
const (
	MinWidth, MaxWidth     = 320, 6400
	MinHeight, MaxHeight   = 240, 4800
	MinDepth, MaxDepth     = 0, 10
	MinWorkers, MaxWorkers = 0, 64
	MinFOV, MaxFOV         = 50.0, 170.0
)

// ErrConfigRange reports a render setting outside the accepted limits
var ErrConfigRange = errors.New("render setting out of range")

// Validate checks a complete config against the accepted limits
func (c Config) Validate() error {
	switch {
	case c.Width < MinWidth || c.Width > MaxWidth:
		return fmt.Errorf("%w: width %d not in [%d, %d]", ErrConfigRange, c.Width, MinWidth, MaxWidth)
	case c.Height < MinHeight || c.Height > MaxHeight:
		return fmt.Errorf("%w: height %d not in [%d, %d]", ErrConfigRange, c.Height, MinHeight, MaxHeight)
	case c.MaxDepth < MinDepth || c.MaxDepth > MaxDepth:
		return fmt.Errorf("%w: depth %d not in [%d, %d]", ErrConfigRange, c.MaxDepth, MinDepth, MaxDepth)
	case c.NumWorkers < MinWorkers || c.NumWorkers > MaxWorkers:
		return fmt.Errorf("%w: threads %d not in [%d, %d]", ErrConfigRange, c.NumWorkers, MinWorkers, MaxWorkers)
	case !(c.FOV >= MinFOV && c.FOV <= MaxFOV):
		return fmt.Errorf("%w: fov %g not in [%g, %g]", ErrConfigRange, c.FOV, MinFOV, MaxFOV)
	case !(c.ShadowFactor > 0 && c.ShadowFactor <= 1):
		return fmt.Errorf("%w: shadow %g not in (0, 1]", ErrConfigRange, c.ShadowFactor)
	case !(c.MaxDistance > 0):
		return fmt.Errorf("%w: distance %g must be positive", ErrConfigRange, c.MaxDistance)
	}
	return nil
}
