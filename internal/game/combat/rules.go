package combat

import "time"

// CombatRules are the server-operator knobs for PvP bookkeeping.
// They come from config; the zero value is not useful, use DefaultRules.
type CombatRules struct {
	PvpEnabled      bool
	FightTimer      time.Duration
	WhiteSkullTimer time.Duration
}

// DefaultRules mirrors the classic open-PvP setup: both timers at one
// minute.
func DefaultRules() CombatRules {
	return CombatRules{
		PvpEnabled:      true,
		FightTimer:      60 * time.Second,
		WhiteSkullTimer: 60 * time.Second,
	}
}
