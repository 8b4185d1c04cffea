package combat

import (
	"math"
	"testing"

	"github.com/ravenor/mistvale/internal/game/clock"
)

func TestConditionCatchUpAccumulatesSkippedTicks(t *testing.T) {
	c := NewCondition(ConditionPoison, DamageEarth, 3, 2, clock.Tick(10), 5)

	damage, fired := c.ApplyUntil(clock.Tick(14))
	if !fired || damage != 9 {
		t.Fatalf("ApplyUntil(14) = %d, %v; want 9, true", damage, fired)
	}

	// Replaying the same now must not duplicate ticks.
	if _, fired := c.ApplyUntil(clock.Tick(14)); fired {
		t.Fatal("second ApplyUntil(14) fired again")
	}

	if !c.IsExpired(clock.Tick(15)) {
		t.Fatal("condition not expired at 15")
	}
}

func TestConditionFollowsInterval(t *testing.T) {
	c := NewCondition(ConditionFire, DamageFire, 4, 2, clock.Tick(10), 5)

	steps := []struct {
		now    uint64
		damage uint32
		fired  bool
	}{
		{10, 4, true},
		{11, 0, false},
		{12, 4, true},
		{14, 4, true},
	}
	for _, step := range steps {
		damage, fired := c.ApplyUntil(clock.Tick(step.now))
		if fired != step.fired || damage != step.damage {
			t.Fatalf("ApplyUntil(%d) = %d, %v; want %d, %v",
				step.now, damage, fired, step.damage, step.fired)
		}
	}
	if !c.IsExpired(clock.Tick(15)) {
		t.Fatal("condition not expired at 15")
	}
}

func TestConditionNotDueBeforeStart(t *testing.T) {
	c := NewCondition(ConditionCurse, DamageDeath, 5, 3, clock.Tick(100), 30)
	if _, fired := c.ApplyUntil(clock.Tick(99)); fired {
		t.Fatal("fired before start tick")
	}
}

func TestConditionFloorsIntervalAndDuration(t *testing.T) {
	c := NewCondition(ConditionDrown, DamageDrown, 1, 0, clock.Tick(5), 0)
	if c.Interval != 1 {
		t.Fatalf("interval = %d, want 1", c.Interval)
	}
	if c.ExpiresAt != clock.Tick(6) {
		t.Fatalf("expires at %d, want 6", c.ExpiresAt)
	}
}

func TestConditionDamageSaturates(t *testing.T) {
	c := NewCondition(ConditionEnergy, DamageEnergy, math.MaxUint32, 1, clock.Tick(0), math.MaxUint64)
	damage, fired := c.ApplyUntil(clock.Tick(math.MaxUint64))
	if !fired || damage != math.MaxUint32 {
		t.Fatalf("saturating tick damage = %d, %v", damage, fired)
	}
}

func TestMergeNeverShortens(t *testing.T) {
	strong := NewCondition(ConditionPoison, DamageEarth, 10, 2, clock.Tick(0), 100)
	weak := NewCondition(ConditionPoison, DamageEarth, 2, 5, clock.Tick(10), 5)

	strong.MergeFrom(weak)

	if strong.ExpiresAt != clock.Tick(100) {
		t.Fatalf("merge shortened expiry to %d", strong.ExpiresAt)
	}
	if strong.TickDamage != 10 {
		t.Fatalf("merge weakened tick damage to %d", strong.TickDamage)
	}
	if strong.Interval != 2 {
		t.Fatalf("merge slowed interval to %d", strong.Interval)
	}
}

func TestMergeRefreshesAndStrengthens(t *testing.T) {
	old := NewCondition(ConditionPoison, DamageEarth, 2, 5, clock.Tick(0), 10)
	old.NextTick = clock.Tick(8)
	fresh := NewCondition(ConditionPoison, DamageFire, 6, 3, clock.Tick(5), 50)

	old.MergeFrom(fresh)

	if old.ExpiresAt != clock.Tick(55) {
		t.Fatalf("expiry = %d, want 55", old.ExpiresAt)
	}
	if old.NextTick != clock.Tick(5) {
		t.Fatalf("next tick = %d, want 5 (fresh cast may fire sooner)", old.NextTick)
	}
	if old.TickDamage != 6 {
		t.Fatalf("tick damage = %d, want 6", old.TickDamage)
	}
	if old.Interval != 3 {
		t.Fatalf("interval = %d, want 3", old.Interval)
	}
	if old.DamageType != DamageFire {
		t.Fatalf("damage type = %v, want most recent (fire)", old.DamageType)
	}
}

func TestMergeIgnoresDifferentKind(t *testing.T) {
	poison := NewCondition(ConditionPoison, DamageEarth, 3, 2, clock.Tick(0), 10)
	before := poison
	fire := NewCondition(ConditionFire, DamageFire, 9, 1, clock.Tick(0), 99)

	poison.MergeFrom(fire)

	if poison != before {
		t.Fatal("merge of a different kind mutated the condition")
	}
}

func TestMergeFloorsZeroInterval(t *testing.T) {
	base := NewCondition(ConditionFreeze, DamageIce, 3, 4, clock.Tick(0), 10)
	other := base
	other.Interval = 0 // bypasses constructor floor

	base.MergeFrom(other)
	if base.Interval != 1 {
		t.Fatalf("interval = %d, want 1", base.Interval)
	}
}
