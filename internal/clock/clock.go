// Package clock implements the shared animation clock: an integer triangle
// wave that counts 0 → cycleLength → 0 one step per frame.
package clock

import "github.com/pkg/errors"

// DefaultCycleLength is the period used when a scene does not set one.
const DefaultCycleLength = 500

// Clock is owned by one scene and advanced once per frame.
//
// The reversal target is compared with exact integer equality. Because the
// tick moves by exactly one per Advance, every target inside
// [0, cycleLength] is visited; targets outside that range are rejected.
type Clock struct {
	tick           int
	direction      int
	cycleLength    int
	reversalTarget int
}

// New returns a clock at tick 0 counting up, reversing at cycleLength/2.
func New(cycleLength int) (*Clock, error) {
	return NewWithTarget(cycleLength, cycleLength/2)
}

func NewWithTarget(cycleLength, reversalTarget int) (*Clock, error) {
	if cycleLength <= 0 {
		return nil, errors.Errorf("clock: cycle length must be positive, got %d", cycleLength)
	}
	if reversalTarget < 0 || reversalTarget > cycleLength {
		return nil, errors.Errorf("clock: reversal target %d outside [0, %d]", reversalTarget, cycleLength)
	}
	return &Clock{
		direction:      1,
		cycleLength:    cycleLength,
		reversalTarget: reversalTarget,
	}, nil
}

func (c *Clock) Tick() int           { return c.tick }
func (c *Clock) Direction() int      { return c.direction }
func (c *Clock) CycleLength() int    { return c.cycleLength }
func (c *Clock) ReversalTarget() int { return c.reversalTarget }

// AtReversal reports whether reversible records flip before this frame's application.
func (c *Clock) AtReversal() bool {
	return c.tick == c.reversalTarget
}

// Advance moves the tick one step and flips direction at either boundary.
func (c *Clock) Advance() {
	c.tick += c.direction
	if c.tick == c.cycleLength {
		c.direction = -1
	} else if c.tick == 0 {
		c.direction = 1
	}
}

// Reset returns the clock to tick 0 counting up.
func (c *Clock) Reset() {
	c.tick = 0
	c.direction = 1
}
