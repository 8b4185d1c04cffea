package model

import (
	"github.com/ravenor/mistvale/internal/game/clock"
)

// Timed effects applied by spells. Each expires at a fixed tick and is
// pruned by PlayerState.TickEffects.

// LightEffect wraps the player in a light aura.
type LightEffect struct {
	Level     uint8
	Color     uint8
	ExpiresAt clock.Tick
}

func (e LightEffect) IsExpired(now clock.Tick) bool { return now >= e.ExpiresAt }

// SpeedEffect overrides movement speed until it expires, then the player
// falls back to OriginalSpeed.
type SpeedEffect struct {
	Speed         uint16
	OriginalSpeed uint16
	ExpiresAt     clock.Tick
}

func (e SpeedEffect) IsExpired(now clock.Tick) bool { return now >= e.ExpiresAt }

// StrengthEffect shifts melee power by a signed delta.
type StrengthEffect struct {
	Delta     int16
	ExpiresAt clock.Tick
}

func (e StrengthEffect) IsExpired(now clock.Tick) bool { return now >= e.ExpiresAt }

// DrunkenEffect blurs movement with the given intensity.
type DrunkenEffect struct {
	Intensity uint8
	ExpiresAt clock.Tick
}

func (e DrunkenEffect) IsExpired(now clock.Tick) bool { return now >= e.ExpiresAt }

// MagicShieldEffect redirects incoming damage to mana while active.
type MagicShieldEffect struct {
	ExpiresAt clock.Tick
}

func (e MagicShieldEffect) IsExpired(now clock.Tick) bool { return now >= e.ExpiresAt }

// OutfitEffect temporarily replaces the player's look. LookType 0 renders
// the player invisible; Original is restored on expiry.
type OutfitEffect struct {
	LookType  uint16
	Original  uint16
	ExpiresAt clock.Tick
}

func (e OutfitEffect) IsExpired(now clock.Tick) bool { return now >= e.ExpiresAt }
