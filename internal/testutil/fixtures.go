// Package testutil provides shared fixtures for combat and world tests.
package testutil

import (
	"testing"
	"time"

	"github.com/ravenor/mistvale/internal/game/clock"
	"github.com/ravenor/mistvale/internal/game/spell"
	"github.com/ravenor/mistvale/internal/model"
)

// TickLength is the canonical test tick, matching the default server
// configuration.
const TickLength = 50 * time.Millisecond

// NewClock returns a game clock at tick zero with the canonical length.
func NewClock() *clock.GameClock {
	return clock.New(TickLength)
}

// NewBook returns a spellbook loaded with the builtin catalogue.
func NewBook(tb testing.TB) *spell.Book {
	tb.Helper()
	book := spell.NewBook()
	if err := spell.RegisterBuiltins(book); err != nil {
		tb.Fatalf("registering builtin spells: %v", err)
	}
	return book
}

// NewMage returns a mid-level caster with full pools, strong enough to
// cast any builtin spell.
func NewMage(id model.PlayerID, name string) *model.PlayerState {
	p := model.NewPlayer(id, name)
	p.Level = 60
	p.Vocation = 1
	p.Skills.Magic.Level = 20
	p.Stats.MaxHealth = 1000
	p.Stats.Health = 1000
	p.Stats.MaxMana = 2000
	p.Stats.Mana = 2000
	p.Stats.Soul = 100
	return p
}
