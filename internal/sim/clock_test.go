package sim

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-frames/astro"
)

func TestClockAdvance(t *testing.T) {
	c := NewClock(Config{StartTDB: astro.J2000, Scale: 86400})

	// At 86400x, one real second is one simulated day.
	c.Advance(time.Second)
	if got := c.TDB(); math.Abs(got-(astro.J2000+1)) > 1e-9 {
		t.Errorf("TDB after advance = %f, want %f", got, astro.J2000+1)
	}

	c.TogglePause()
	c.Advance(time.Hour)
	if got := c.TDB(); math.Abs(got-(astro.J2000+1)) > 1e-9 {
		t.Error("paused clock should not advance")
	}

	// Manual stepping works while paused.
	c.Step(-0.5)
	if got := c.TDB(); math.Abs(got-(astro.J2000+0.5)) > 1e-9 {
		t.Errorf("TDB after step = %f, want %f", got, astro.J2000+0.5)
	}
}

func TestClockScaleClamping(t *testing.T) {
	c := NewClock(Config{StartTDB: astro.J2000, Scale: 1})

	c.SetScale(1e12)
	if got := c.Scale(); got != MaxScale {
		t.Errorf("Scale = %g, want clamped to %g", got, MaxScale)
	}

	c.SetScale(0)
	if got := c.Scale(); got != MinScale {
		t.Errorf("Scale = %g, want clamped to %g", got, MinScale)
	}

	c.SetScale(1)
	c.ScaleBy(10)
	c.ScaleBy(10)
	if got := c.Scale(); got != 100 {
		t.Errorf("Scale after two x10 = %g, want 100", got)
	}
}

func TestClockDefaultsToNow(t *testing.T) {
	c := NewClock(DefaultConfig())
	now := astro.TimeToJD(time.Now())
	if diff := math.Abs(c.TDB() - now); diff > 1.0/86400 {
		t.Errorf("default clock is %g days away from now", diff)
	}
}

func TestClockSnapshot(t *testing.T) {
	c := NewClock(Config{StartTDB: astro.J2000, Scale: 50})
	c.TogglePause()

	snap := c.Snapshot()
	if snap.TDB != astro.J2000 || snap.Scale != 50 || !snap.Paused {
		t.Errorf("snapshot = %+v", snap)
	}
	if got := astro.TimeToJD(snap.Time); math.Abs(got-snap.TDB) > 1e-6 {
		t.Error("snapshot wall time disagrees with its TDB")
	}
}
