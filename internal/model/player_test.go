package model

import (
	"errors"
	"testing"
	"time"

	"github.com/ravenor/mistvale/internal/game/clock"
	"github.com/ravenor/mistvale/internal/game/combat"
	"github.com/ravenor/mistvale/internal/game/spell"
)

func testCastSpell() *spell.Spell {
	return &spell.Spell{
		ID:              7,
		Name:            "Test Bolt",
		Words:           "exori test",
		Kind:            spell.KindInstant,
		Target:          spell.TargetCreature,
		Group:           spell.GroupAttack,
		ManaCost:        20,
		SoulCost:        1,
		LevelRequired:   10,
		MagicLevelReq:   3,
		CooldownMs:      2000,
		GroupCooldownMs: 2000,
	}
}

func readyPlayer() *PlayerState {
	p := NewPlayer(1, "Aldric")
	p.Level = 10
	p.Skills.Magic.Level = 3
	p.Stats.MaxMana = 100
	p.Stats.Mana = 100
	return p
}

func TestCheckSpellRequirementsOrder(t *testing.T) {
	c := clock.New(50 * time.Millisecond)
	s := testCastSpell()

	p := NewPlayer(1, "Aldric")
	p.Stats.Mana = 0
	p.Stats.Soul = 0

	// Every requirement fails; the level check reports first.
	if err := p.CheckSpellRequirements(s, c); !errors.Is(err, ErrLevelTooLow) {
		t.Fatalf("err = %v, want ErrLevelTooLow", err)
	}
	p.Level = 10
	if err := p.CheckSpellRequirements(s, c); !errors.Is(err, ErrMagicLevelTooLow) {
		t.Fatalf("err = %v, want ErrMagicLevelTooLow", err)
	}
	p.Skills.Magic.Level = 3
	if err := p.CheckSpellRequirements(s, c); !errors.Is(err, ErrInsufficientMana) {
		t.Fatalf("err = %v, want ErrInsufficientMana", err)
	}
	p.Stats.Mana = 100
	if err := p.CheckSpellRequirements(s, c); !errors.Is(err, ErrInsufficientSoul) {
		t.Fatalf("err = %v, want ErrInsufficientSoul", err)
	}
	p.Stats.Soul = 10
	if err := p.CheckSpellRequirements(s, c); err != nil {
		t.Fatalf("expected cast allowed, got %v", err)
	}
}

func TestCheckSpellRequirementsNoCostsSkipsPools(t *testing.T) {
	c := clock.New(50 * time.Millisecond)
	s := testCastSpell()

	p := readyPlayer()
	p.Stats.Mana = 0
	p.Stats.Soul = 0
	if err := p.CheckSpellRequirementsNoCosts(s, c); err != nil {
		t.Fatalf("expected cost checks skipped, got %v", err)
	}
}

func TestSpellAndGroupCooldowns(t *testing.T) {
	c := clock.New(50 * time.Millisecond)
	s := testCastSpell()
	p := readyPlayer()

	p.TriggerSpellCooldowns(s, c)
	if err := p.CheckSpellRequirements(s, c); !errors.Is(err, ErrSpellCooldown) {
		t.Fatalf("err = %v, want ErrSpellCooldown", err)
	}

	// A different spell sharing the group is blocked by the group timer.
	other := testCastSpell()
	other.ID = 8
	if err := p.CheckSpellRequirements(other, c); !errors.Is(err, ErrGroupCooldown) {
		t.Fatalf("err = %v, want ErrGroupCooldown", err)
	}

	// 2000ms at 50ms per tick is 40 ticks.
	c.Advance(40)
	if err := p.CheckSpellRequirements(s, c); err != nil {
		t.Fatalf("expected cooldowns elapsed, got %v", err)
	}
}

func TestTriggerSpellCooldownsZeroArmsNothing(t *testing.T) {
	c := clock.New(50 * time.Millisecond)
	s := testCastSpell()
	s.CooldownMs = 0
	s.Group = 0
	p := readyPlayer()

	p.TriggerSpellCooldowns(s, c)
	if len(p.SpellCooldowns) != 0 || len(p.GroupCooldowns) != 0 {
		t.Fatalf("cooldowns armed: %v %v", p.SpellCooldowns, p.GroupCooldowns)
	}
}

func TestSpendSpellCostsAtomic(t *testing.T) {
	s := testCastSpell()
	p := readyPlayer()
	p.Stats.Soul = 0

	if err := p.SpendSpellCosts(s); !errors.Is(err, ErrInsufficientSoul) {
		t.Fatalf("err = %v, want ErrInsufficientSoul", err)
	}
	if p.Stats.Mana != 100 {
		t.Fatalf("failed spend drained mana to %d", p.Stats.Mana)
	}

	p.Stats.Soul = 5
	if err := p.SpendSpellCosts(s); err != nil {
		t.Fatalf("spend failed: %v", err)
	}
	if p.Stats.Mana != 80 || p.Stats.Soul != 4 {
		t.Fatalf("pools = %d/%d, want 80/4", p.Stats.Mana, p.Stats.Soul)
	}
}

func TestApplyDamageWithMagicShield(t *testing.T) {
	p := readyPlayer()
	p.Stats.Health = 100
	p.Stats.Mana = 30

	// No shield: damage hits health directly.
	applied, absorbed := p.ApplyDamageWithMagicShield(25)
	if applied != 25 || absorbed != 0 {
		t.Fatalf("applied/absorbed = %d/%d, want 25/0", applied, absorbed)
	}

	// Shield up: mana soaks what it can, health takes the rest.
	p.MagicShieldEffect = &MagicShieldEffect{ExpiresAt: clock.Tick(1000)}
	applied, absorbed = p.ApplyDamageWithMagicShield(50)
	if absorbed != 30 || applied != 20 {
		t.Fatalf("applied/absorbed = %d/%d, want 20/30", applied, absorbed)
	}
	if p.Stats.Mana != 0 || p.Stats.Health != 55 {
		t.Fatalf("pools = hp %d mana %d, want 55/0", p.Stats.Health, p.Stats.Mana)
	}

	applied, absorbed = p.ApplyDamageWithMagicShield(0)
	if applied != 0 || absorbed != 0 {
		t.Fatalf("zero damage moved pools: %d/%d", applied, absorbed)
	}
}

func TestAddConditionMergesByKind(t *testing.T) {
	p := readyPlayer()
	p.AddCondition(combat.NewCondition(combat.ConditionPoison, combat.DamageEarth, 3, 2, clock.Tick(0), 10))
	p.AddCondition(combat.NewCondition(combat.ConditionPoison, combat.DamageEarth, 5, 2, clock.Tick(0), 20))
	p.AddCondition(combat.NewCondition(combat.ConditionFire, combat.DamageFire, 10, 8, clock.Tick(0), 20))

	if len(p.Conditions) != 2 {
		t.Fatalf("conditions = %d, want 2 (poison merged)", len(p.Conditions))
	}
	if !p.HasCondition(combat.ConditionPoison) || !p.HasCondition(combat.ConditionFire) {
		t.Fatal("expected poison and fire active")
	}

	p.ClearCondition(combat.ConditionPoison)
	if p.HasCondition(combat.ConditionPoison) {
		t.Fatal("poison survived ClearCondition")
	}
	if !p.HasCondition(combat.ConditionFire) {
		t.Fatal("fire removed by unrelated clear")
	}
}

func TestTickConditionsRoutesThroughShield(t *testing.T) {
	p := readyPlayer()
	p.Stats.Health = 100
	p.Stats.Mana = 5
	p.MagicShieldEffect = &MagicShieldEffect{ExpiresAt: clock.Tick(1000)}
	p.AddCondition(combat.NewCondition(combat.ConditionPoison, combat.DamageEarth, 8, 2, clock.Tick(10), 5))

	ticks := p.TickConditions(clock.Tick(10))
	if len(ticks) != 1 {
		t.Fatalf("ticks = %d, want 1", len(ticks))
	}
	if ticks[0].Attempted != 8 || ticks[0].Applied != 3 {
		t.Fatalf("attempted/applied = %d/%d, want 8/3", ticks[0].Attempted, ticks[0].Applied)
	}
	if p.Stats.Mana != 0 || p.Stats.Health != 97 {
		t.Fatalf("pools = hp %d mana %d, want 97/0", p.Stats.Health, p.Stats.Mana)
	}

	// Past the expiry the condition is gone.
	p.TickConditions(clock.Tick(15))
	if len(p.Conditions) != 0 {
		t.Fatalf("expired condition kept: %v", p.Conditions)
	}
}

func TestLearnAndKnowSpell(t *testing.T) {
	p := NewPlayer(2, "Mira")
	if p.KnowsSpell(1) {
		t.Fatal("fresh player knows a spell")
	}
	p.LearnSpell(1)
	if !p.KnowsSpell(1) {
		t.Fatal("learned spell not known")
	}
}

func TestFightModesFromClientClamps(t *testing.T) {
	m := FightModesFromClient(0, 5, 2)
	if m.AttackMode != 1 || m.ChaseMode != 1 || !m.SecureMode {
		t.Fatalf("modes = %+v", m)
	}
	m = FightModesFromClient(9, 0, 0)
	if m.AttackMode != 3 || m.ChaseMode != 0 || m.SecureMode {
		t.Fatalf("modes = %+v", m)
	}
}

func TestExpForLevel(t *testing.T) {
	got, ok := ExpForLevel(8, 50)
	if !ok || got != 4200 {
		t.Fatalf("ExpForLevel(8, 50) = %d %v, want 4200 true", got, ok)
	}
	if _, ok := ExpForLevel(0, 50); ok {
		t.Fatal("level 0 accepted")
	}
	if _, ok := ExpForLevel(501, 50); ok {
		t.Fatal("level above cap accepted")
	}
	if _, ok := ExpForLevel(8, 0); ok {
		t.Fatal("zero base accepted")
	}
}

func TestAddExperienceSaturates(t *testing.T) {
	p := NewPlayer(3, "Odo")
	p.Experience = ^uint64(0) - 5
	p.AddExperience(100)
	if p.Experience != ^uint64(0) {
		t.Fatalf("experience = %d, want max", p.Experience)
	}
}
