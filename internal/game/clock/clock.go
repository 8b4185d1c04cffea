package clock

import (
	"math"
	"time"
)

// Tick is one indivisible unit of simulated time.
// Ticks are totally ordered and all arithmetic on them saturates:
// extreme values clamp instead of wrapping.
type Tick uint64

// Add returns t advanced by n ticks, saturating at the maximum.
func (t Tick) Add(n uint64) Tick {
	if uint64(t) > math.MaxUint64-n {
		return Tick(math.MaxUint64)
	}
	return t + Tick(n)
}

// Sub returns t-other, or 0 if other is in the future.
func (t Tick) Sub(other Tick) uint64 {
	if other > t {
		return 0
	}
	return uint64(t - other)
}

// GameClock is the monotonic discrete time source for the simulation.
// It never reads wall-clock time; whoever owns the tick loop advances it.
type GameClock struct {
	tickLength time.Duration
	tick       Tick
}

// New creates a clock with the given tick length.
// A zero tick length is coerced to 1ms so duration conversion stays defined.
func New(tickLength time.Duration) *GameClock {
	if tickLength <= 0 {
		tickLength = time.Millisecond
	}
	return &GameClock{tickLength: tickLength}
}

// TickLength returns the real-time span of one tick.
func (c *GameClock) TickLength() time.Duration {
	return c.tickLength
}

// Now returns the current tick.
func (c *GameClock) Now() Tick {
	return c.tick
}

// Advance moves the clock forward by n ticks and returns the new value.
func (c *GameClock) Advance(n uint64) Tick {
	c.tick = c.tick.Add(n)
	return c.tick
}

// AdvanceDuration moves the clock forward by d rounded up to whole ticks.
func (c *GameClock) AdvanceDuration(d time.Duration) Tick {
	return c.Advance(c.TicksFromDurationRoundUp(d))
}

// TicksFromDurationRoundUp converts a duration to ticks, rounding up so a
// partial tick still costs a full one. Zero duration converts to zero ticks.
func (c *GameClock) TicksFromDurationRoundUp(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	tickNanos := c.tickLength.Nanoseconds()
	if tickNanos < 1 {
		tickNanos = 1
	}
	durNanos := d.Nanoseconds()
	return uint64((durNanos + tickNanos - 1) / tickNanos)
}

// DurationForTicks converts ticks back to a real-time duration, saturating
// at the maximum representable duration.
func (c *GameClock) DurationForTicks(ticks uint64) time.Duration {
	tickNanos := uint64(c.tickLength.Nanoseconds())
	if ticks != 0 && tickNanos > math.MaxInt64/ticks {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ticks * tickNanos)
}

// Cooldown gates reuse of a spell or spell-group behind a single readiness
// timestamp. The zero value is ready immediately.
type Cooldown struct {
	readyAt Tick
}

// NewCooldown creates a cooldown that becomes ready at the given tick.
func NewCooldown(readyAt Tick) Cooldown {
	return Cooldown{readyAt: readyAt}
}

// CooldownFromTicks creates a cooldown expiring n ticks from the clock's now.
func CooldownFromTicks(c *GameClock, n uint64) Cooldown {
	return Cooldown{readyAt: c.Now().Add(n)}
}

// CooldownFromDuration creates a cooldown expiring d (rounded up to whole
// ticks) from the clock's now.
func CooldownFromDuration(c *GameClock, d time.Duration) Cooldown {
	return CooldownFromTicks(c, c.TicksFromDurationRoundUp(d))
}

// ReadyAt returns the tick at which the cooldown expires.
func (cd Cooldown) ReadyAt() Tick {
	return cd.readyAt
}

// IsReady reports whether the cooldown has expired.
func (cd Cooldown) IsReady(c *GameClock) bool {
	return c.Now() >= cd.readyAt
}

// RemainingTicks returns how many ticks remain, 0 when ready.
func (cd Cooldown) RemainingTicks(c *GameClock) uint64 {
	return cd.readyAt.Sub(c.Now())
}

// RemainingDuration returns the remaining time as a real-time duration.
func (cd Cooldown) RemainingDuration(c *GameClock) time.Duration {
	return c.DurationForTicks(cd.RemainingTicks(c))
}

// ResetFromTicks re-arms the cooldown n ticks from the clock's now.
func (cd *Cooldown) ResetFromTicks(c *GameClock, n uint64) {
	cd.readyAt = c.Now().Add(n)
}

// ResetFromDuration re-arms the cooldown d from the clock's now.
func (cd *Cooldown) ResetFromDuration(c *GameClock, d time.Duration) {
	cd.ResetFromTicks(c, c.TicksFromDurationRoundUp(d))
}
