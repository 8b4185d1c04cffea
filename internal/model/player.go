package model

import (
	"errors"
	"time"

	"github.com/ravenor/mistvale/internal/game/clock"
	"github.com/ravenor/mistvale/internal/game/combat"
	"github.com/ravenor/mistvale/internal/game/spell"
)

// Cast requirement failures. Each check has its own sentinel so callers can
// tell the player exactly why the cast fizzled.
var (
	ErrLevelTooLow      = errors.New("spell cast failed: level too low")
	ErrMagicLevelTooLow = errors.New("spell cast failed: magic level too low")
	ErrInsufficientMana = errors.New("spell cast failed: insufficient mana")
	ErrInsufficientSoul = errors.New("spell cast failed: insufficient soul")
	ErrSpellCooldown    = errors.New("spell cast failed: spell cooldown")
	ErrGroupCooldown    = errors.New("spell cast failed: group cooldown")
)

// PlayerID identifies a connected player.
type PlayerID uint32

// FightModes mirrors the client's combat controls.
type FightModes struct {
	AttackMode uint8
	ChaseMode  uint8
	SecureMode bool
}

// DefaultFightModes is full attack, no chase, secure off.
func DefaultFightModes() FightModes {
	return FightModes{AttackMode: 1}
}

// FightModesFromClient clamps raw client values into the valid range.
func FightModesFromClient(attackMode, chaseMode, secureMode uint8) FightModes {
	if attackMode < 1 {
		attackMode = 1
	} else if attackMode > 3 {
		attackMode = 3
	}
	if chaseMode > 1 {
		chaseMode = 1
	}
	return FightModes{
		AttackMode: attackMode,
		ChaseMode:  chaseMode,
		SecureMode: secureMode != 0,
	}
}

// PlayerState is the combat-relevant state of one player. Not safe for
// concurrent use; the world loop owns each player.
type PlayerState struct {
	ID         PlayerID
	Name       string
	Level      uint16
	Experience uint64
	Vocation   uint8
	BaseSpeed  uint16

	Skills SkillSet
	Stats  Stats

	Conditions []combat.ConditionInstance

	LightEffect       *LightEffect
	SpeedEffect       *SpeedEffect
	StrengthEffect    *StrengthEffect
	DrunkenEffect     *DrunkenEffect
	MagicShieldEffect *MagicShieldEffect
	OutfitEffect      *OutfitEffect

	KnownSpells    map[spell.ID]struct{}
	SpellCooldowns map[spell.ID]clock.Cooldown
	GroupCooldowns map[spell.GroupID]clock.Cooldown

	Pvp        combat.PvpStatus
	FightModes FightModes
}

// NewPlayer creates a level 1 character with base stats and skills.
func NewPlayer(id PlayerID, name string) *PlayerState {
	return &PlayerState{
		ID:             id,
		Name:           name,
		Level:          1,
		BaseSpeed:      220,
		Skills:         DefaultSkillSet(),
		Stats:          BaseStatsForVocation(0),
		KnownSpells:    make(map[spell.ID]struct{}),
		SpellCooldowns: make(map[spell.ID]clock.Cooldown),
		GroupCooldowns: make(map[spell.GroupID]clock.Cooldown),
		FightModes:     DefaultFightModes(),
	}
}

// AddExperience grants experience, saturating instead of wrapping.
func (p *PlayerState) AddExperience(amount uint32) {
	next := p.Experience + uint64(amount)
	if next < p.Experience {
		next = ^uint64(0)
	}
	p.Experience = next
}

// AddCondition attaches a damage-over-time condition. A condition of the
// same kind already on the player is merged instead of stacked, so a fresh
// application can refresh or strengthen but never weaken it.
func (p *PlayerState) AddCondition(condition combat.ConditionInstance) {
	for i := range p.Conditions {
		if p.Conditions[i].Kind == condition.Kind {
			p.Conditions[i].MergeFrom(condition)
			return
		}
	}
	p.Conditions = append(p.Conditions, condition)
}

// ClearCondition removes every condition of the given kind.
func (p *PlayerState) ClearCondition(kind combat.ConditionKind) {
	kept := p.Conditions[:0]
	for _, condition := range p.Conditions {
		if condition.Kind != kind {
			kept = append(kept, condition)
		}
	}
	p.Conditions = kept
}

// HasCondition reports whether a condition of the given kind is active.
func (p *PlayerState) HasCondition(kind combat.ConditionKind) bool {
	for _, condition := range p.Conditions {
		if condition.Kind == kind {
			return true
		}
	}
	return false
}

// LearnSpell adds a spell to the player's repertoire.
func (p *PlayerState) LearnSpell(id spell.ID) {
	p.KnownSpells[id] = struct{}{}
}

// KnowsSpell reports whether the player has learned the spell.
func (p *PlayerState) KnowsSpell(id spell.ID) bool {
	_, ok := p.KnownSpells[id]
	return ok
}

// TickConditions applies every due condition tick up to now and prunes
// expired conditions. Damage routes through the magic shield when one is
// active. Returns one entry per condition that dealt damage this call.
func (p *PlayerState) TickConditions(now clock.Tick) []combat.ConditionTick {
	var ticks []combat.ConditionTick
	for i := range p.Conditions {
		condition := &p.Conditions[i]
		damage, due := condition.ApplyUntil(now)
		if !due {
			continue
		}
		applied, _ := p.routeDamage(damage)
		ticks = append(ticks, combat.ConditionTick{
			Kind:       condition.Kind,
			DamageType: condition.DamageType,
			Attempted:  damage,
			Applied:    applied,
		})
	}
	kept := p.Conditions[:0]
	for _, condition := range p.Conditions {
		if !condition.IsExpired(now) {
			kept = append(kept, condition)
		}
	}
	p.Conditions = kept
	return ticks
}

// TickEffects drops every timed effect that has expired by now.
func (p *PlayerState) TickEffects(now clock.Tick) {
	if p.LightEffect != nil && p.LightEffect.IsExpired(now) {
		p.LightEffect = nil
	}
	if p.SpeedEffect != nil && p.SpeedEffect.IsExpired(now) {
		p.SpeedEffect = nil
	}
	if p.StrengthEffect != nil && p.StrengthEffect.IsExpired(now) {
		p.StrengthEffect = nil
	}
	if p.DrunkenEffect != nil && p.DrunkenEffect.IsExpired(now) {
		p.DrunkenEffect = nil
	}
	if p.MagicShieldEffect != nil && p.MagicShieldEffect.IsExpired(now) {
		p.MagicShieldEffect = nil
	}
	if p.OutfitEffect != nil && p.OutfitEffect.IsExpired(now) {
		p.OutfitEffect = nil
	}
}

// ApplyDamageWithMagicShield deals already-adjusted damage to the player.
// With a magic shield up, mana absorbs the attempted amount one for one
// and only the remainder reaches health. Returns health lost and mana
// absorbed.
func (p *PlayerState) ApplyDamageWithMagicShield(amount uint32) (uint32, uint32) {
	if amount == 0 {
		return 0, 0
	}
	return p.routeDamage(amount)
}

func (p *PlayerState) routeDamage(amount uint32) (applied, absorbed uint32) {
	if p.MagicShieldEffect == nil {
		return p.Stats.ApplyRawDamage(amount), 0
	}
	absorbed = amount
	if absorbed > p.Stats.Mana {
		absorbed = p.Stats.Mana
	}
	p.Stats.Mana -= absorbed
	if remaining := amount - absorbed; remaining > 0 {
		applied = p.Stats.ApplyRawDamage(remaining)
	}
	return applied, absorbed
}

// CheckSpellRequirements verifies the player can cast the spell right now,
// costs included. The first failed check wins; they run in a fixed order
// so the player always hears about the same problem first: level, magic
// level, mana, soul, spell cooldown, group cooldown.
func (p *PlayerState) CheckSpellRequirements(s *spell.Spell, c *clock.GameClock) error {
	return p.checkSpellRequirements(s, c, true)
}

// CheckSpellRequirementsNoCosts is CheckSpellRequirements minus the mana
// and soul checks, for flows that pay costs elsewhere.
func (p *PlayerState) CheckSpellRequirementsNoCosts(s *spell.Spell, c *clock.GameClock) error {
	return p.checkSpellRequirements(s, c, false)
}

func (p *PlayerState) checkSpellRequirements(s *spell.Spell, c *clock.GameClock, requireCosts bool) error {
	if p.Level < s.LevelRequired {
		return ErrLevelTooLow
	}
	if p.Skills.Magic.Level < uint16(s.MagicLevelReq) {
		return ErrMagicLevelTooLow
	}
	if requireCosts {
		if p.Stats.Mana < uint32(s.ManaCost) {
			return ErrInsufficientMana
		}
		if p.Stats.Soul < uint32(s.SoulCost) {
			return ErrInsufficientSoul
		}
	}
	if cooldown, ok := p.SpellCooldowns[s.ID]; ok && !cooldown.IsReady(c) {
		return ErrSpellCooldown
	}
	if s.Group != 0 {
		if cooldown, ok := p.GroupCooldowns[s.Group]; ok && !cooldown.IsReady(c) {
			return ErrGroupCooldown
		}
	}
	return nil
}

// SpendSpellCosts deducts mana and soul for a cast. Both pools are checked
// before either is touched, so a failed spend changes nothing.
func (p *PlayerState) SpendSpellCosts(s *spell.Spell) error {
	manaCost := uint32(s.ManaCost)
	soulCost := uint32(s.SoulCost)
	if p.Stats.Mana < manaCost {
		return ErrInsufficientMana
	}
	if p.Stats.Soul < soulCost {
		return ErrInsufficientSoul
	}
	p.Stats.Mana -= manaCost
	p.Stats.Soul -= soulCost
	return nil
}

// TriggerSpellCooldowns arms the spell and group cooldowns after a
// successful cast. Zero durations arm nothing.
func (p *PlayerState) TriggerSpellCooldowns(s *spell.Spell, c *clock.GameClock) {
	if s.CooldownMs > 0 {
		d := time.Duration(s.CooldownMs) * time.Millisecond
		p.SpellCooldowns[s.ID] = clock.CooldownFromDuration(c, d)
	}
	if s.Group != 0 && s.GroupCooldownMs > 0 {
		d := time.Duration(s.GroupCooldownMs) * time.Millisecond
		p.GroupCooldowns[s.Group] = clock.CooldownFromDuration(c, d)
	}
}

// MarkInCombat stamps the last-attack tick and extends the fight timer.
func (p *PlayerState) MarkInCombat(c *clock.GameClock, duration time.Duration) {
	p.Pvp.MarkInCombat(c, duration)
}

// MarkWhiteSkull raises a white skull and extends its timer.
func (p *PlayerState) MarkWhiteSkull(c *clock.GameClock, duration time.Duration) {
	p.Pvp.MarkWhiteSkull(c, duration)
}

// InCombat reports whether the fight timer is still running.
func (p *PlayerState) InCombat(c *clock.GameClock) bool {
	return p.Pvp.InCombat(c)
}

// ExpForLevel returns the total experience required to reach level, or
// false when the level or base factor is out of range.
func ExpForLevel(level int32, base int32) (int64, bool) {
	if level < 1 || level > 500 || base <= 0 {
		return 0, false
	}
	l := int64(level)
	numerator := (l*(l-6)+17)*l - 12
	return numerator / 3 * int64(base), true
}
