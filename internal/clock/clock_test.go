package clock

import "testing"

func TestNewDefaults(t *testing.T) {
	c, err := New(DefaultCycleLength)
	if err != nil {
		t.Fatal(err)
	}
	if c.Tick() != 0 || c.Direction() != 1 {
		t.Errorf("start = (%d, %d), want (0, 1)", c.Tick(), c.Direction())
	}
	if c.ReversalTarget() != 250 {
		t.Errorf("ReversalTarget = %d, want 250", c.ReversalTarget())
	}
}

func TestNewRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name          string
		cycle, target int
	}{
		{"zero cycle", 0, 0},
		{"negative cycle", -4, 0},
		{"target above cycle", 10, 11},
		{"negative target", 10, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewWithTarget(tt.cycle, tt.target); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAdvanceBoundedTriangleWave(t *testing.T) {
	for _, cycle := range []int{1, 2, 3, 7, 10, 500} {
		c, err := New(cycle)
		if err != nil {
			t.Fatal(err)
		}
		prevDir := c.Direction()
		for i := 0; i < cycle*6+3; i++ {
			c.Advance()
			tick := c.Tick()
			if tick < 0 || tick > cycle {
				t.Fatalf("cycle %d: tick %d out of range", cycle, tick)
			}
			if c.Direction() != prevDir && tick != 0 && tick != cycle {
				t.Fatalf("cycle %d: direction flipped at interior tick %d", cycle, tick)
			}
			if tick == cycle && c.Direction() != -1 {
				t.Fatalf("cycle %d: direction %d at top", cycle, c.Direction())
			}
			if tick == 0 && c.Direction() != 1 {
				t.Fatalf("cycle %d: direction %d at bottom", cycle, c.Direction())
			}
			prevDir = c.Direction()
		}
	}
}

func TestAdvanceSequence(t *testing.T) {
	c, _ := New(3)
	want := []int{1, 2, 3, 2, 1, 0, 1, 2, 3, 2}
	for i, w := range want {
		c.Advance()
		if c.Tick() != w {
			t.Fatalf("step %d: tick = %d, want %d", i+1, c.Tick(), w)
		}
	}
}

func TestAtReversalVisitedTwicePerCycle(t *testing.T) {
	for _, cycle := range []int{4, 5, 9, 10} {
		c, _ := New(cycle)
		hits := 0
		for i := 0; i < cycle*2; i++ {
			if c.AtReversal() {
				hits++
			}
			c.Advance()
		}
		if hits != 2 {
			t.Errorf("cycle %d: reversal hit %d times, want 2", cycle, hits)
		}
	}
}

func TestReset(t *testing.T) {
	c, _ := New(4)
	for i := 0; i < 5; i++ {
		c.Advance()
	}
	c.Reset()
	if c.Tick() != 0 || c.Direction() != 1 {
		t.Errorf("after reset = (%d, %d), want (0, 1)", c.Tick(), c.Direction())
	}
}
