package world

import (
	"fmt"
	"log/slog"

	"github.com/ravenor/mistvale/internal/game/clock"
	"github.com/ravenor/mistvale/internal/game/combat"
	"github.com/ravenor/mistvale/internal/game/spell"
	"github.com/ravenor/mistvale/internal/model"
)

// World owns the registered players and drives the simulation step. One
// goroutine owns a World; all methods must be called from it.
type World struct {
	clock   *clock.GameClock
	rules   combat.CombatRules
	book    *spell.Book
	players map[model.PlayerID]*model.PlayerState
}

// New creates an empty world driven by the given clock and rules.
func New(c *clock.GameClock, rules combat.CombatRules, book *spell.Book) *World {
	return &World{
		clock:   c,
		rules:   rules,
		book:    book,
		players: make(map[model.PlayerID]*model.PlayerState),
	}
}

// Clock returns the world's tick source.
func (w *World) Clock() *clock.GameClock {
	return w.clock
}

// AddPlayer registers a player. A second registration under the same id
// fails so a stale state cannot silently shadow a live one.
func (w *World) AddPlayer(p *model.PlayerState) error {
	if _, exists := w.players[p.ID]; exists {
		return fmt.Errorf("player %d already in world", p.ID)
	}
	w.players[p.ID] = p
	return nil
}

// RemovePlayer unregisters a player and returns its state for persistence.
func (w *World) RemovePlayer(id model.PlayerID) (*model.PlayerState, bool) {
	p, ok := w.players[id]
	if ok {
		delete(w.players, id)
	}
	return p, ok
}

// Player returns a registered player's state.
func (w *World) Player(id model.PlayerID) (*model.PlayerState, bool) {
	p, ok := w.players[id]
	return p, ok
}

// EachPlayer visits every registered player.
func (w *World) EachPlayer(visit func(*model.PlayerState)) {
	for _, p := range w.players {
		visit(p)
	}
}

// PlayerCount returns the number of registered players.
func (w *World) PlayerCount() int {
	return len(w.players)
}

// StepReport is the telemetry of one simulation step.
type StepReport struct {
	Now            clock.Tick
	ConditionTicks map[model.PlayerID][]combat.ConditionTick
}

// Step advances the clock one tick and runs the per-player pass in a fixed
// order: apply due condition damage, then drop expired timed effects.
// Catch-up inside ApplyUntil makes skipped steps safe, so a stalled loop
// recovers without replaying every missed tick here.
func (w *World) Step() StepReport {
	now := w.clock.Advance(1)
	report := StepReport{Now: now}
	for id, p := range w.players {
		ticks := p.TickConditions(now)
		p.TickEffects(now)
		if len(ticks) == 0 {
			continue
		}
		if report.ConditionTicks == nil {
			report.ConditionTicks = make(map[model.PlayerID][]combat.ConditionTick)
		}
		report.ConditionTicks[id] = ticks
		for _, tick := range ticks {
			slog.Debug("condition tick",
				"player", id,
				"condition", tick.Kind,
				"attempted", tick.Attempted,
				"applied", tick.Applied)
		}
	}
	return report
}

// Cast resolves a spoken phrase for a player and runs the cast gate:
// spellbook lookup, known-spell check, requirement checks in fixed order,
// cost spending, cooldown arming. Hostile casts mark the caster in combat
// when the ruleset has pvp on. Effect delivery to targets stays with the
// caller; the returned spell tells it what to deliver.
func (w *World) Cast(id model.PlayerID, input string) (*spell.Spell, error) {
	p, ok := w.players[id]
	if !ok {
		return nil, fmt.Errorf("player %d not in world", id)
	}
	s, ok := w.book.GetByInput(input)
	if !ok {
		return nil, fmt.Errorf("%q is not a spell", input)
	}
	if !p.KnowsSpell(s.ID) {
		return nil, fmt.Errorf("spell %s not learned", s.Name)
	}
	if err := p.CheckSpellRequirements(s, w.clock); err != nil {
		return nil, err
	}
	if err := p.SpendSpellCosts(s); err != nil {
		return nil, err
	}
	p.TriggerSpellCooldowns(s, w.clock)
	if w.rules.PvpEnabled && s.Group == spell.GroupAttack {
		p.MarkInCombat(w.clock, w.rules.FightTimer)
	}
	slog.Debug("spell cast", "player", id, "spell", s.Name, "words", s.Words)
	return s, nil
}

// MarkAggression records a hostile act by attacker against another player:
// the fight timer always runs, and the white skull is raised when the
// victim was not already marked as a combatant.
func (w *World) MarkAggression(attacker, victim model.PlayerID) error {
	a, ok := w.players[attacker]
	if !ok {
		return fmt.Errorf("player %d not in world", attacker)
	}
	v, ok := w.players[victim]
	if !ok {
		return fmt.Errorf("player %d not in world", victim)
	}
	if !w.rules.PvpEnabled {
		return nil
	}
	victimWasUnmarked := !v.InCombat(w.clock) && v.Pvp.CurrentSkull(w.clock) == combat.SkullNone
	a.MarkInCombat(w.clock, w.rules.FightTimer)
	v.MarkInCombat(w.clock, w.rules.FightTimer)
	if victimWasUnmarked && a.Pvp.CurrentSkull(w.clock) == combat.SkullNone {
		a.MarkWhiteSkull(w.clock, w.rules.WhiteSkullTimer)
	}
	return nil
}
