package model

// SkillKind enumerates the trainable skills.
type SkillKind uint8

const (
	SkillFist SkillKind = iota
	SkillClub
	SkillSword
	SkillAxe
	SkillDistance
	SkillShielding
	SkillFishing
	SkillMagic
)

// SkillLevel is one skill's level plus percent progress to the next.
type SkillLevel struct {
	Level    uint16
	Progress uint8
}

// SkillSet holds every trainable skill. Weapon skills start at 10, magic
// at 0.
type SkillSet struct {
	Fist      SkillLevel
	Club      SkillLevel
	Sword     SkillLevel
	Axe       SkillLevel
	Distance  SkillLevel
	Shielding SkillLevel
	Fishing   SkillLevel
	Magic     SkillLevel
}

// DefaultSkillSet returns the starting skills for a fresh character.
func DefaultSkillSet() SkillSet {
	start := SkillLevel{Level: 10}
	return SkillSet{
		Fist:      start,
		Club:      start,
		Sword:     start,
		Axe:       start,
		Distance:  start,
		Shielding: start,
		Fishing:   start,
	}
}

// Get returns the level entry for one skill.
func (s SkillSet) Get(kind SkillKind) SkillLevel {
	switch kind {
	case SkillFist:
		return s.Fist
	case SkillClub:
		return s.Club
	case SkillSword:
		return s.Sword
	case SkillAxe:
		return s.Axe
	case SkillDistance:
		return s.Distance
	case SkillShielding:
		return s.Shielding
	case SkillFishing:
		return s.Fishing
	case SkillMagic:
		return s.Magic
	}
	return SkillLevel{}
}

// Set replaces the level entry for one skill.
func (s *SkillSet) Set(kind SkillKind, level SkillLevel) {
	switch kind {
	case SkillFist:
		s.Fist = level
	case SkillClub:
		s.Club = level
	case SkillSword:
		s.Sword = level
	case SkillAxe:
		s.Axe = level
	case SkillDistance:
		s.Distance = level
	case SkillShielding:
		s.Shielding = level
	case SkillFishing:
		s.Fishing = level
	case SkillMagic:
		s.Magic = level
	}
}
