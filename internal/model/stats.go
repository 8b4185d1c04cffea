package model

import (
	"github.com/ravenor/mistvale/internal/game/combat"
)

// Stats holds a creature's vital pools. Health and mana never exceed their
// maximums and never underflow; all mutation goes through the Apply methods.
type Stats struct {
	Health      uint32
	MaxHealth   uint32
	Mana        uint32
	MaxMana     uint32
	Soul        uint32
	Capacity    uint32
	Resistances combat.DamageResistances
}

// BaseStatsForVocation returns the starting pools for a fresh character.
// Promoted vocations (11-14) start with a larger soul pool.
func BaseStatsForVocation(vocation uint8) Stats {
	soul := uint32(100)
	if vocation >= 11 && vocation <= 14 {
		soul = 200
	}
	return Stats{
		Health:    150,
		MaxHealth: 150,
		Soul:      soul,
		Capacity:  400,
	}
}

// ApplyDamage runs amount through the resistance table for the given type
// and subtracts the adjusted value from health. Returns the health actually
// removed.
func (s *Stats) ApplyDamage(damageType combat.DamageType, amount uint32) uint32 {
	return s.ApplyRawDamage(s.Resistances.Apply(damageType, amount))
}

// ApplyRawDamage subtracts amount from health, bottoming out at zero.
// Returns the health actually removed.
func (s *Stats) ApplyRawDamage(amount uint32) uint32 {
	applied := amount
	if applied > s.Health {
		applied = s.Health
	}
	s.Health -= applied
	return applied
}

// ApplyHeal adds amount to health, capped at MaxHealth. Returns the health
// actually restored. A creature with no health pool cannot be healed.
func (s *Stats) ApplyHeal(amount uint32) uint32 {
	if s.MaxHealth == 0 {
		return 0
	}
	before := s.Health
	after := before + amount
	if after < before || after > s.MaxHealth {
		after = s.MaxHealth
	}
	s.Health = after
	return after - before
}

// ApplyManaRestore adds amount to mana, capped at MaxMana. Returns the mana
// actually restored.
func (s *Stats) ApplyManaRestore(amount uint32) uint32 {
	before := s.Mana
	after := before + amount
	if after < before || after > s.MaxMana {
		after = s.MaxMana
	}
	s.Mana = after
	return after - before
}
