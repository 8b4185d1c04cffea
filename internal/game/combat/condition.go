package combat

import (
	"math"

	"github.com/ravenor/mistvale/internal/game/clock"
)

// ConditionKind identifies a damage-over-time status effect.
type ConditionKind uint8

const (
	ConditionPoison ConditionKind = iota
	ConditionFire
	ConditionEnergy
	ConditionDrown
	ConditionFreeze
	ConditionCurse
)

func (k ConditionKind) String() string {
	switch k {
	case ConditionPoison:
		return "poison"
	case ConditionFire:
		return "fire"
	case ConditionEnergy:
		return "energy"
	case ConditionDrown:
		return "drown"
	case ConditionFreeze:
		return "freeze"
	case ConditionCurse:
		return "curse"
	}
	return "unknown"
}

// ConditionTick reports one resolved damage pulse of a condition.
// Attempted is what the condition computed; Applied is what actually
// reduced health after shield absorption. The two differ exactly when a
// magic shield or resistance intervened.
type ConditionTick struct {
	Kind       ConditionKind
	DamageType DamageType
	Attempted  uint32
	Applied    uint32
}

// ConditionInstance is one active damage-over-time effect on a creature.
// NextTick only ever advances forward by whole multiples of Interval;
// ExpiresAt never decreases across merges.
type ConditionInstance struct {
	Kind       ConditionKind
	DamageType DamageType
	TickDamage uint32
	Interval   uint64
	NextTick   clock.Tick
	ExpiresAt  clock.Tick
}

// NewCondition creates a condition starting at startTick.
// Interval and duration are floored to 1 so a malformed definition still
// terminates.
func NewCondition(kind ConditionKind, damageType DamageType, tickDamage uint32, intervalTicks uint64, startTick clock.Tick, durationTicks uint64) ConditionInstance {
	if intervalTicks < 1 {
		intervalTicks = 1
	}
	if durationTicks < 1 {
		durationTicks = 1
	}
	return ConditionInstance{
		Kind:       kind,
		DamageType: damageType,
		TickDamage: tickDamage,
		Interval:   intervalTicks,
		NextTick:   startTick,
		ExpiresAt:  startTick.Add(durationTicks),
	}
}

// ApplyUntil advances the condition to now and returns the accumulated
// damage of every interval that became due, or false when nothing fired.
// A creature left unticked for many steps receives the full backlog in one
// call: ticks = (last-next)/interval + 1, where the +1 guarantees the tick
// that just became due fires even with zero elapsed slack. NextTick then
// advances by interval*ticks, so re-invoking with the same now is a no-op.
func (c *ConditionInstance) ApplyUntil(now clock.Tick) (uint32, bool) {
	if now < c.NextTick {
		return 0, false
	}
	last := now
	if last >= c.ExpiresAt {
		last = c.ExpiresAt
	}
	if last < c.NextTick {
		return 0, false
	}
	ticks := last.Sub(c.NextTick) / c.Interval
	if ticks < math.MaxUint64 {
		ticks++
	}
	capped := ticks
	if capped > math.MaxUint32 {
		capped = math.MaxUint32
	}
	damage := satMulU32(c.TickDamage, uint32(capped))
	c.NextTick = c.NextTick.Add(satMulU64(c.Interval, ticks))
	return damage, true
}

// IsExpired reports whether the condition has run out at now.
func (c *ConditionInstance) IsExpired(now clock.Tick) bool {
	return now >= c.ExpiresAt
}

// MergeFrom folds a re-application of the same kind into the receiver:
// the effect refreshes and strengthens, never weakens or shortens. Expiry
// takes the later of the two, the next pulse the earlier, tick damage the
// larger, interval the smaller. The newer damage type wins so display and
// resistance follow the most recent cast. Differing kinds are a no-op; the
// caller routes by kind.
func (c *ConditionInstance) MergeFrom(other ConditionInstance) {
	if c.Kind != other.Kind {
		return
	}
	if other.ExpiresAt > c.ExpiresAt {
		c.ExpiresAt = other.ExpiresAt
	}
	if other.NextTick < c.NextTick {
		c.NextTick = other.NextTick
	}
	if other.TickDamage > c.TickDamage {
		c.TickDamage = other.TickDamage
	}
	otherInterval := other.Interval
	if otherInterval < 1 {
		otherInterval = 1
	}
	if otherInterval < c.Interval {
		c.Interval = otherInterval
	}
	c.DamageType = other.DamageType
}

func satMulU32(a, b uint32) uint32 {
	product := uint64(a) * uint64(b)
	if product > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(product)
}

func satMulU64(a, b uint64) uint64 {
	if a != 0 && b > math.MaxUint64/a {
		return math.MaxUint64
	}
	return a * b
}
