package tabulatedfunction

import (
	"fmt"
	"math"
)

// Epsilon is the default tolerance under which two x values are the same.
const Epsilon = 1e-10

const (
	pointsSlack = 10
	gridSlack   = 5
)

type config struct {
	slack   int
	epsilon float64
}

// Option configures a TabulatedFunction at construction time.
type Option func(*config) error

// WithSlack sets the number of spare slots allocated beyond the initial
// point count.
func WithSlack(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: negative slack %d", ErrInvalidArgument, n)
		}
		c.slack = n
		return nil
	}
}

// WithEpsilon sets the tolerance used for duplicate-x rejection and for
// exact matches in ValueAt.
func WithEpsilon(e float64) Option {
	return func(c *config) error {
		if !(e > 0) || math.IsInf(e, 1) {
			return fmt.Errorf("%w: epsilon must be positive and finite, got %v", ErrInvalidArgument, e)
		}
		c.epsilon = e
		return nil
	}
}

func newConfig(slack int, opts []Option) (config, error) {
	c := config{slack: slack, epsilon: Epsilon}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return config{}, err
		}
	}
	return c, nil
}
