package combat

import (
	"time"

	"github.com/ravenor/mistvale/internal/game/clock"
)

// SkullState is the visible PvP-aggression marker, in escalating severity.
type SkullState uint8

const (
	SkullNone SkullState = iota
	SkullWhite
	SkullRed
	SkullBlack
)

func (s SkullState) String() string {
	switch s {
	case SkullNone:
		return "none"
	case SkullWhite:
		return "white"
	case SkullRed:
		return "red"
	case SkullBlack:
		return "black"
	}
	return "unknown"
}

// PvpStatus is a player's aggression state: skull level plus the fight and
// skull timers that drive it. A non-None skull always has a deadline, and
// both timers only ever extend on repeated triggers, never shrink. Every
// read runs a refresh pass first, so a lapsed deadline clears its state
// atomically with the timer.
type PvpStatus struct {
	Skull          SkullState
	SkullExpiresAt clock.Tick
	hasSkullExpiry bool
	FightExpiresAt clock.Tick
	hasFightExpiry bool
	LastAttack     clock.Tick
	hasLastAttack  bool
}

func (p *PvpStatus) refresh(now clock.Tick) {
	if p.hasFightExpiry && now >= p.FightExpiresAt {
		p.hasFightExpiry = false
		p.FightExpiresAt = 0
	}
	if p.hasSkullExpiry && now >= p.SkullExpiresAt {
		p.hasSkullExpiry = false
		p.SkullExpiresAt = 0
		p.Skull = SkullNone
	}
}

// MarkInCombat records a hostile action at the clock's now. A zero duration
// only stamps LastAttack. Otherwise the fight deadline becomes the later of
// the existing one and now+duration.
func (p *PvpStatus) MarkInCombat(c *clock.GameClock, duration time.Duration) {
	now := c.Now()
	p.refresh(now)
	p.LastAttack = now
	p.hasLastAttack = true
	if duration <= 0 {
		return
	}
	deadline := now.Add(c.TicksFromDurationRoundUp(duration))
	if !p.hasFightExpiry || deadline > p.FightExpiresAt {
		p.FightExpiresAt = deadline
	}
	p.hasFightExpiry = true
}

// MarkWhiteSkull forces the skull to White and extends its timer under the
// same monotonic rule as MarkInCombat. Escalation to Red or Black is owned
// by the kill-accounting collaborator, not this state machine.
func (p *PvpStatus) MarkWhiteSkull(c *clock.GameClock, duration time.Duration) {
	now := c.Now()
	p.refresh(now)
	if duration <= 0 {
		return
	}
	deadline := now.Add(c.TicksFromDurationRoundUp(duration))
	if !p.hasSkullExpiry || deadline > p.SkullExpiresAt {
		p.SkullExpiresAt = deadline
	}
	p.hasSkullExpiry = true
	p.Skull = SkullWhite
}

// InCombat reports whether the fight timer is still running.
func (p *PvpStatus) InCombat(c *clock.GameClock) bool {
	now := c.Now()
	p.refresh(now)
	return p.hasFightExpiry && now < p.FightExpiresAt
}

// CurrentSkull returns the skull after expiring a lapsed timer.
func (p *PvpStatus) CurrentSkull(c *clock.GameClock) SkullState {
	p.refresh(c.Now())
	return p.Skull
}

// LastAttackAt returns the tick of the most recent hostile action.
func (p *PvpStatus) LastAttackAt() (clock.Tick, bool) {
	return p.LastAttack, p.hasLastAttack
}

// FightDeadline returns the active fight deadline, if any. Exposed for
// persistence; gameplay reads go through InCombat.
func (p *PvpStatus) FightDeadline() (clock.Tick, bool) {
	return p.FightExpiresAt, p.hasFightExpiry
}

// SkullDeadline returns the active skull deadline, if any.
func (p *PvpStatus) SkullDeadline() (clock.Tick, bool) {
	return p.SkullExpiresAt, p.hasSkullExpiry
}

// RestoreSkull reinstates a persisted skull state and deadline, used when
// loading a player. A None skull ignores the deadline.
func (p *PvpStatus) RestoreSkull(skull SkullState, expiresAt clock.Tick) {
	p.Skull = skull
	if skull == SkullNone {
		p.hasSkullExpiry = false
		p.SkullExpiresAt = 0
		return
	}
	p.SkullExpiresAt = expiresAt
	p.hasSkullExpiry = true
}
