package combat

import "math"

// DamageType identifies the element of an attack.
// Concrete types carry a resistance index; anything else is an opaque
// client-side mask that passes through resistance unchanged.
type DamageType uint16

const (
	DamagePhysical  DamageType = 1
	DamageEnergy    DamageType = 2
	DamageEarth     DamageType = 4
	DamageFire      DamageType = 8
	DamageLifeDrain DamageType = 16
	DamageManaDrain DamageType = 32
	DamageDrown     DamageType = 64
	DamageIce       DamageType = 128
	DamageHoly      DamageType = 256
	DamageDeath     DamageType = 512
)

// DamageTypeCount is the number of concrete damage types with a
// resistance slot.
const DamageTypeCount = 10

// Index returns the resistance-array slot for the type and whether it
// has one. Unknown masks carry no slot.
func (d DamageType) Index() (int, bool) {
	switch d {
	case DamagePhysical:
		return 0, true
	case DamageEnergy:
		return 1, true
	case DamageEarth:
		return 2, true
	case DamageFire:
		return 3, true
	case DamageLifeDrain:
		return 4, true
	case DamageManaDrain:
		return 5, true
	case DamageDrown:
		return 6, true
	case DamageIce:
		return 7, true
	case DamageHoly:
		return 8, true
	case DamageDeath:
		return 9, true
	}
	return 0, false
}

func (d DamageType) String() string {
	switch d {
	case DamagePhysical:
		return "physical"
	case DamageEnergy:
		return "energy"
	case DamageEarth:
		return "earth"
	case DamageFire:
		return "fire"
	case DamageLifeDrain:
		return "lifedrain"
	case DamageManaDrain:
		return "manadrain"
	case DamageDrown:
		return "drown"
	case DamageIce:
		return "ice"
	case DamageHoly:
		return "holy"
	case DamageDeath:
		return "death"
	}
	return "unknown"
}

// DamageScaleFlags controls whether the computed skill factor snaps to the
// neutral 100% when it would exceed or undercut it. The two flags are
// independent; an attack that can roll neither better nor worse than
// neutral sets both.
type DamageScaleFlags struct {
	ClampUpper bool
	ClampLower bool
}

// ScaleNone leaves the skill factor unclamped.
var ScaleNone = DamageScaleFlags{}

// ComputeDamage derives a final signed damage amount from a base value,
// a caller-rolled random offset within ±variance, and two skill inputs.
// The skill factor is 2*skillA + 3*skillB, optionally snapped to 100 by
// the flags. All intermediate math runs widened to int64 and the result
// clamps to the int32 range. The caller owns randomness; this function is
// pure given its inputs.
func ComputeDamage(base, variance, skillA, skillB int32, flags DamageScaleFlags, randomOffset int32) int32 {
	damage := int64(base)
	if variance != 0 {
		offset := randomOffset
		if offset > variance {
			offset = variance
		}
		if offset < -variance {
			offset = -variance
		}
		damage += int64(offset)
	}
	// Keep the factor inside int32 so the widened multiply below cannot
	// overflow int64 even for hostile skill inputs.
	factor := int64(skillA)*2 + int64(skillB)*3
	if factor > math.MaxInt32 {
		factor = math.MaxInt32
	}
	if factor < math.MinInt32 {
		factor = math.MinInt32
	}
	if flags.ClampUpper && factor >= 101 {
		factor = 100
	}
	if flags.ClampLower && factor <= 99 {
		factor = 100
	}
	scaled := damage * factor / 100
	if scaled > math.MaxInt32 {
		return math.MaxInt32
	}
	if scaled < math.MinInt32 {
		return math.MinInt32
	}
	return int32(scaled)
}

// DamageResistances holds one signed percent per concrete damage type.
// Positive values reduce incoming damage, negative values amplify it.
// Values outside ±100 are clamped at application time.
type DamageResistances struct {
	percents [DamageTypeCount]int16
}

// ResistancesFromArray builds a resistance set from raw percents.
func ResistancesFromArray(values [DamageTypeCount]int16) DamageResistances {
	return DamageResistances{percents: values}
}

// ToArray returns the raw percent values.
func (r DamageResistances) ToArray() [DamageTypeCount]int16 {
	return r.percents
}

// Apply reduces (or amplifies) amount by the percent registered for the
// damage type. Types without a resistance slot pass through unchanged.
// The result never goes negative.
func (r DamageResistances) Apply(damageType DamageType, amount uint32) uint32 {
	idx, ok := damageType.Index()
	if !ok {
		return amount
	}
	percent := int64(r.percents[idx])
	if percent > 100 {
		percent = 100
	}
	if percent < -100 {
		percent = -100
	}
	base := int64(amount)
	adjusted := base - base*percent/100
	if adjusted < 0 {
		return 0
	}
	if adjusted > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(adjusted)
}
