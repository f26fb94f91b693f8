package weather

import (
	"testing"

	"stormgrid/internal/scene"
)

type cueCounter struct{ n int }

func (c *cueCounter) Thunder() { c.n++ }

func stepTo(l *Lightning, c *scene.Node, zones []Zone, chance float64, frames int) {
	for i := 0; i < frames; i++ {
		l.Update(0.1, zones, chance, c)
	}
}

func TestLightningStrikesOnSampleTick(t *testing.T) {
	c := scene.NewContainer("fx")
	cue := &cueCounter{}
	l := NewLightning(1, cue)
	zones := testZones(1)

	stepTo(l, c, zones, 1, 4)
	if l.Phase() != FlashOut {
		t.Fatalf("struck before the sample interval elapsed: %v", l.Phase())
	}
	stepTo(l, c, zones, 1, 1)
	if l.Phase() != FlashFirst {
		t.Fatalf("after 0.5s with certain chance: got %v, want first", l.Phase())
	}
	if cue.n != 1 {
		t.Fatalf("thunder cue fired %d times, want 1", cue.n)
	}
	if len(c.Children()) != 1 {
		t.Fatalf("container has %d nodes, want 1 flash", len(c.Children()))
	}
}

func TestLightningPhaseOrder(t *testing.T) {
	c := scene.NewContainer("fx")
	l := NewLightning(1, nil)
	zones := testZones(1)

	stepTo(l, c, zones, 1, 5)
	if l.Phase() != FlashFirst {
		t.Fatalf("setup: got %v, want first", l.Phase())
	}

	// Feed no storm zones from here so the flash plays out untouched.
	var seq []FlashPhase
	last := l.Phase()
	seq = append(seq, last)
	for i := 0; i < 30; i++ {
		l.Update(0.1, nil, 1, c)
		if p := l.Phase(); p != last {
			seq = append(seq, p)
			last = p
		}
	}
	want := []FlashPhase{FlashFirst, FlashDim, FlashSecond, FlashOut}
	if len(seq) != len(want) {
		t.Fatalf("phase trace %v, want %v", seq, want)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("phase trace %v, want %v", seq, want)
		}
	}
	if len(c.Children()) != 0 {
		t.Fatal("flash node survived the cycle end")
	}
}

func TestLightningSecondFlashPopsBack(t *testing.T) {
	c := scene.NewContainer("fx")
	l := NewLightning(1, nil)
	stepTo(l, c, testZones(1), 1, 5)
	for i := 0; i < 30; i++ {
		l.Update(0.1, nil, 1, c)
		if l.Phase() == FlashSecond {
			if l.node.Alpha != FlashSecondAlpha {
				t.Fatalf("second flash alpha %f, want %f", l.node.Alpha, FlashSecondAlpha)
			}
			return
		}
	}
	t.Fatal("never reached the second flash")
}

func TestLightningNeedsStormZones(t *testing.T) {
	c := scene.NewContainer("fx")
	l := NewLightning(1, nil)
	stepTo(l, c, nil, 1, 20)
	if l.Phase() != FlashOut || len(c.Children()) != 0 {
		t.Fatalf("struck with no storm zones: %v", l.Phase())
	}
}

func TestLightningZeroChanceNeverStrikes(t *testing.T) {
	c := scene.NewContainer("fx")
	l := NewLightning(1, nil)
	stepTo(l, c, testZones(3), 0, 40)
	if l.Phase() != FlashOut {
		t.Fatalf("struck at zero chance: %v", l.Phase())
	}
}

func TestLightningRestrikeReplacesFlash(t *testing.T) {
	c := scene.NewContainer("fx")
	cue := &cueCounter{}
	l := NewLightning(1, cue)
	stepTo(l, c, testZones(1), 1, 10)
	if cue.n != 2 {
		t.Fatalf("thunder cue fired %d times over two sample ticks, want 2", cue.n)
	}
	if len(c.Children()) != 1 {
		t.Fatalf("restrike left %d flash nodes, want 1", len(c.Children()))
	}
	if l.Phase() != FlashFirst {
		t.Fatalf("restrike phase %v, want first", l.Phase())
	}
}

func TestLightningFlashCoversZonePlusMargin(t *testing.T) {
	c := scene.NewContainer("fx")
	l := NewLightning(1, nil)
	stepTo(l, c, testZones(1), 1, 5)
	n := l.node
	if n == nil {
		t.Fatal("no flash node after strike")
	}
	if n.X != -FlashMargin || n.Y != -FlashMargin {
		t.Errorf("flash corner (%f,%f), want (%f,%f)", n.X, n.Y, -FlashMargin, -FlashMargin)
	}
	want := float64(ZonePx) + 2*FlashMargin
	if n.W != want || n.H != want {
		t.Errorf("flash size %fx%f, want %fx%f", n.W, n.H, want, want)
	}
}

func TestLightningFlashLimitedToMaxZones(t *testing.T) {
	c := scene.NewContainer("fx")
	l := NewLightning(1, nil)
	stepTo(l, c, testZones(6), 1, 5)
	n := l.node
	if n == nil {
		t.Fatal("no flash node after strike")
	}
	// Six zones side by side: the flash covers the anchor and at most
	// one horizontal neighbor.
	one := float64(ZonePx) + 2*FlashMargin
	two := float64(2*ZonePx) + 2*FlashMargin
	if n.W != one && n.W != two {
		t.Fatalf("flash width %f, want %f or %f", n.W, one, two)
	}
	if n.H != one {
		t.Fatalf("flash height %f, want %f", n.H, one)
	}
}

func TestLightningReset(t *testing.T) {
	c := scene.NewContainer("fx")
	l := NewLightning(1, nil)
	zones := testZones(1)
	stepTo(l, c, zones, 1, 5)
	l.Reset()
	if l.Phase() != FlashOut || len(c.Children()) != 0 {
		t.Fatalf("reset left phase %v with %d nodes", l.Phase(), len(c.Children()))
	}
	stepTo(l, c, zones, 1, 4)
	if l.Phase() != FlashOut {
		t.Fatal("sample clock not rewound by reset")
	}
}

func TestLightningDeterministicRolls(t *testing.T) {
	run := func() []FlashPhase {
		c := scene.NewContainer("fx")
		l := NewLightning(42, nil)
		zones := testZones(2)
		var trace []FlashPhase
		for i := 0; i < 60; i++ {
			l.Update(0.1, zones, 0.5, c)
			trace = append(trace, l.Phase())
		}
		return trace
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d diverged: %v vs %v", i, a[i], b[i])
		}
	}
}
