package spell

import (
	"github.com/ravenor/mistvale/internal/game/combat"
)

// ID uniquely identifies a spell definition.
type ID uint16

// GroupID identifies a cooldown group shared by related spells.
type GroupID uint8

// Cooldown groups of the builtin catalogue.
const (
	GroupAttack       GroupID = 1
	GroupHealing      GroupID = 2
	GroupSupport      GroupID = 3
	GroupPowerStrikes GroupID = 4
)

// ItemTypeID identifies an item type; rune spells are bound to one.
type ItemTypeID uint16

// Kind is how a spell is delivered.
type Kind uint8

const (
	KindInstant Kind = iota
	KindRune
	KindConjure
)

func (k Kind) String() string {
	switch k {
	case KindInstant:
		return "instant"
	case KindRune:
		return "rune"
	case KindConjure:
		return "conjure"
	}
	return "unknown"
}

// Target is what a cast resolves against.
type Target uint8

const (
	TargetSelf Target = iota
	TargetCreature
	TargetPosition
	TargetArea
)

// Shape is the area a spell covers around its target point.
type Shape struct {
	Radius       uint8
	LineLength   uint8
	ConeRange    uint8
	ConeAngleDeg uint16
}

// ShapeArea covers a circle of the given radius.
func ShapeArea(radius uint8) Shape { return Shape{Radius: radius} }

// ShapeLine covers a straight beam of the given length.
func ShapeLine(length uint8) Shape { return Shape{LineLength: length} }

// ShapeCone covers a cone of the given range and opening angle.
func ShapeCone(rng uint8, angleDeg uint16) Shape {
	return Shape{ConeRange: rng, ConeAngleDeg: angleDeg}
}

// Payload is the one effect a spell carries. It is a sealed union: exactly
// one concrete payload type per effect kind, so "one effect per spell" is
// structural rather than a runtime convention.
type Payload interface {
	payloadKind() string
}

// CombatPayload deals damage or heals inside a shape.
type CombatPayload struct {
	Shape         Shape
	Healing       bool
	DamageType    combat.DamageType
	MinAmount     uint32
	MaxAmount     uint32
	BaseDamage    int32
	Variance      int32
	IncludeCaster bool
}

// SummonPayload calls creatures to the caster's side.
type SummonPayload struct {
	RaceNumber int64
	Count      uint8
	Convince   bool
}

// HastePayload changes movement speed for a while.
type HastePayload struct {
	Shape         Shape
	SpeedDelta    int16
	SpeedPercent  int16
	DurationMs    uint32
	IncludeCaster bool
}

// LightPayload wraps the target in a light aura.
type LightPayload struct {
	Level      uint8
	Color      uint8
	DurationMs uint32
}

// DispelPayload removes magic fields or items inside a shape.
type DispelPayload struct {
	Shape             Shape
	RemoveMagicFields bool
	RemoveItems       bool
}

// FieldPayload places a ground field of the given kind.
type FieldPayload struct {
	Shape     Shape
	FieldKind uint8
}

// MagicShieldPayload redirects incoming damage to mana before health.
type MagicShieldPayload struct {
	DurationMs uint32
}

// OutfitPayload changes or restores the target's appearance.
type OutfitPayload struct {
	LookType   uint16
	DurationMs uint32
	Cancel     bool
	Chameleon  bool
}

// ChallengePayload taunts creatures around the caster.
type ChallengePayload struct {
	Radius uint8
}

// LevitatePayload moves the caster one floor up or down.
type LevitatePayload struct{}

// RaiseDeadPayload animates a corpse into the named creature.
type RaiseDeadPayload struct {
	CreatureName string
	Radius       uint8
}

// ConjurePayload creates items.
type ConjurePayload struct {
	ItemTypeID ItemTypeID
	Count      uint16
}

// CurePayload removes a condition kind inside a shape.
type CurePayload struct {
	Kind          combat.ConditionKind
	Shape         Shape
	IncludeCaster bool
}

// MagicRopePayload pulls the caster up through a rope spot.
type MagicRopePayload struct{}

// FindPersonPayload reports the rough direction of a named player.
type FindPersonPayload struct{}

// EnchantStaffPayload transmutes one item type into its enchanted form.
type EnchantStaffPayload struct {
	SourceTypeID    ItemTypeID
	EnchantedTypeID ItemTypeID
}

func (CombatPayload) payloadKind() string       { return "combat" }
func (SummonPayload) payloadKind() string       { return "summon" }
func (HastePayload) payloadKind() string        { return "haste" }
func (LightPayload) payloadKind() string        { return "light" }
func (DispelPayload) payloadKind() string       { return "dispel" }
func (FieldPayload) payloadKind() string        { return "field" }
func (MagicShieldPayload) payloadKind() string  { return "magic_shield" }
func (OutfitPayload) payloadKind() string       { return "outfit" }
func (ChallengePayload) payloadKind() string    { return "challenge" }
func (LevitatePayload) payloadKind() string     { return "levitate" }
func (RaiseDeadPayload) payloadKind() string    { return "raise_dead" }
func (ConjurePayload) payloadKind() string      { return "conjure" }
func (CurePayload) payloadKind() string         { return "cure" }
func (MagicRopePayload) payloadKind() string    { return "magic_rope" }
func (FindPersonPayload) payloadKind() string   { return "find_person" }
func (EnchantStaffPayload) payloadKind() string { return "enchant_staff" }

// Spell is one immutable cast definition. Built once at server start from
// the builtin catalogue; never mutated after registration.
type Spell struct {
	ID               ID
	Name             string
	Words            string
	Kind             Kind
	RuneTypeID       ItemTypeID // 0 = none; only rune spells carry one
	Target           Target
	Group            GroupID // 0 = ungrouped
	ManaCost         uint16
	SoulCost         uint8
	LevelRequired    uint16
	MagicLevelReq    uint8
	CooldownMs       uint32
	GroupCooldownMs  uint32
	DamageScaleFlags combat.DamageScaleFlags
	Payload          Payload // nil when the spell has no modelled effect yet
}
