package field

import (
	"fmt"
	"math"
)

// Defaults used by the command line front end.
const (
	DefaultSeed             int64   = 0
	DefaultWidth                    = 1000
	DefaultHeight                   = 1000
	DefaultAliveProbability float64 = 0.1
)

// Config fully determines a generated field. Two runs with equal Configs
// produce byte-identical output.
type Config struct {
	Seed             int64
	Width            int
	Height           int
	AliveProbability float64
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Seed:             DefaultSeed,
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		AliveProbability: DefaultAliveProbability,
	}
}

// Validate rejects non-positive dimensions. The probability is not checked:
// anything at or below 0 yields an all-dead field and anything at
// or above 1 an all-alive one.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidArgument, c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidArgument, c.Height)
	}
	return nil
}

// Cells returns Width*Height.
func (c Config) Cells() int64 {
	return int64(c.Width) * int64(c.Height)
}

// ProbabilityInRange reports whether AliveProbability lies in [0, 1].
func (c Config) ProbabilityInRange() bool {
	p := c.AliveProbability
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
