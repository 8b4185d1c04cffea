package combat

import (
	"testing"
	"time"

	"github.com/ravenor/mistvale/internal/game/clock"
)

func newTestClock() *clock.GameClock {
	return clock.New(time.Second)
}

func TestMarkInCombatSetsFightTimer(t *testing.T) {
	c := newTestClock()
	var pvp PvpStatus

	pvp.MarkInCombat(c, 60*time.Second)
	if !pvp.InCombat(c) {
		t.Fatal("not in combat after mark")
	}
	deadline, ok := pvp.FightDeadline()
	if !ok || deadline != clock.Tick(60) {
		t.Fatalf("fight deadline = %d, %v; want 60", deadline, ok)
	}

	c.Advance(59)
	if !pvp.InCombat(c) {
		t.Fatal("combat dropped one tick early")
	}
	c.Advance(1)
	if pvp.InCombat(c) {
		t.Fatal("still in combat at deadline")
	}
	if _, ok := pvp.FightDeadline(); ok {
		t.Fatal("lapsed fight deadline not cleared by refresh")
	}
}

func TestFightTimerOnlyExtends(t *testing.T) {
	c := newTestClock()
	var pvp PvpStatus

	pvp.MarkInCombat(c, 60*time.Second)
	pvp.MarkInCombat(c, 10*time.Second) // shorter trigger must not shrink

	deadline, _ := pvp.FightDeadline()
	if deadline != clock.Tick(60) {
		t.Fatalf("fight deadline shrank to %d", deadline)
	}

	c.Advance(30)
	pvp.MarkInCombat(c, 60*time.Second) // now 30+60 > 60, extends
	deadline, _ = pvp.FightDeadline()
	if deadline != clock.Tick(90) {
		t.Fatalf("fight deadline = %d, want 90", deadline)
	}
}

func TestZeroDurationOnlyStampsLastAttack(t *testing.T) {
	c := newTestClock()
	c.Advance(7)
	var pvp PvpStatus

	pvp.MarkInCombat(c, 0)
	if pvp.InCombat(c) {
		t.Fatal("zero duration started a fight timer")
	}
	last, ok := pvp.LastAttackAt()
	if !ok || last != clock.Tick(7) {
		t.Fatalf("last attack = %d, %v; want 7", last, ok)
	}
}

func TestWhiteSkullExpiresWithTimer(t *testing.T) {
	c := newTestClock()
	var pvp PvpStatus

	pvp.MarkWhiteSkull(c, 60*time.Second)
	if pvp.CurrentSkull(c) != SkullWhite {
		t.Fatalf("skull = %v, want white", pvp.Skull)
	}

	c.Advance(60)
	if pvp.CurrentSkull(c) != SkullNone {
		t.Fatal("skull survived its deadline")
	}
	if _, ok := pvp.SkullDeadline(); ok {
		t.Fatal("skull deadline not cleared with skull")
	}
}

func TestSkullTimerOnlyExtends(t *testing.T) {
	c := newTestClock()
	var pvp PvpStatus

	pvp.MarkWhiteSkull(c, 60*time.Second)
	pvp.MarkWhiteSkull(c, 5*time.Second)

	deadline, ok := pvp.SkullDeadline()
	if !ok || deadline != clock.Tick(60) {
		t.Fatalf("skull deadline = %d, want 60", deadline)
	}
}

func TestZeroDurationSkullLeavesStateAlone(t *testing.T) {
	c := newTestClock()
	var pvp PvpStatus

	pvp.MarkWhiteSkull(c, 0)
	if pvp.Skull != SkullNone {
		t.Fatal("zero duration set a skull")
	}
}

func TestRestoreSkull(t *testing.T) {
	c := newTestClock()
	var pvp PvpStatus

	pvp.RestoreSkull(SkullWhite, clock.Tick(30))
	if pvp.CurrentSkull(c) != SkullWhite {
		t.Fatal("restored skull missing")
	}
	c.Advance(30)
	if pvp.CurrentSkull(c) != SkullNone {
		t.Fatal("restored skull ignored its deadline")
	}

	pvp.RestoreSkull(SkullNone, clock.Tick(99))
	if _, ok := pvp.SkullDeadline(); ok {
		t.Fatal("restoring none kept a deadline")
	}
}
