package spell

import (
	"github.com/ravenor/mistvale/internal/game/combat"
)

// Cooldown defaults for the builtin catalogue, in milliseconds. Attack
// spells share one readiness window, healing and support another.
const (
	castCooldownMs    = 2000
	attackGroupCdMs   = 2000
	healingGroupCdMs  = 1000
	supportGroupCdMs  = 2000
	runeUseCooldownMs = 2000
)

// clampLower snaps a weak skill roll up to neutral: training never makes
// these spells worse than their base line.
var clampLower = combat.DamageScaleFlags{ClampLower: true}

// builtinSpells is the static catalogue registered at server start.
// Insert order is irrelevant; the book validates integrity on load.
func builtinSpells() []Spell {
	return []Spell{
		// --- Instant healing ---
		{
			ID: 1, Name: "Light Healing", Words: "exura",
			Kind: KindInstant, Target: TargetSelf, Group: GroupHealing,
			ManaCost: 25, LevelRequired: 9, MagicLevelReq: 1,
			CooldownMs: 1000, GroupCooldownMs: healingGroupCdMs,
			DamageScaleFlags: clampLower,
			Payload: CombatPayload{
				Healing: true, DamageType: combat.DamageHoly,
				BaseDamage: 15, Variance: 5, IncludeCaster: true,
			},
		},
		{
			ID: 2, Name: "Intense Healing", Words: "exura gran",
			Kind: KindInstant, Target: TargetSelf, Group: GroupHealing,
			ManaCost: 70, LevelRequired: 11, MagicLevelReq: 4,
			CooldownMs: 1000, GroupCooldownMs: healingGroupCdMs,
			DamageScaleFlags: clampLower,
			Payload: CombatPayload{
				Healing: true, DamageType: combat.DamageHoly,
				BaseDamage: 40, Variance: 10, IncludeCaster: true,
			},
		},
		{
			ID: 3, Name: "Ultimate Healing", Words: "exura vita",
			Kind: KindInstant, Target: TargetSelf, Group: GroupHealing,
			ManaCost: 160, LevelRequired: 30, MagicLevelReq: 8,
			CooldownMs: 1000, GroupCooldownMs: healingGroupCdMs,
			DamageScaleFlags: clampLower,
			Payload: CombatPayload{
				Healing: true, DamageType: combat.DamageHoly,
				BaseDamage: 250, Variance: 60, IncludeCaster: true,
			},
		},
		{
			ID: 4, Name: "Mass Healing", Words: "exura gran mas res",
			Kind: KindInstant, Target: TargetArea, Group: GroupHealing,
			ManaCost: 150, LevelRequired: 36, MagicLevelReq: 10,
			CooldownMs: castCooldownMs, GroupCooldownMs: healingGroupCdMs,
			DamageScaleFlags: clampLower,
			Payload: CombatPayload{
				Shape: ShapeArea(3), Healing: true, DamageType: combat.DamageHoly,
				BaseDamage: 100, Variance: 40, IncludeCaster: true,
			},
		},
		{
			ID: 5, Name: "Heal Friend", Words: `exura sio "name"`,
			Kind: KindInstant, Target: TargetCreature, Group: GroupHealing,
			ManaCost: 140, LevelRequired: 18, MagicLevelReq: 6,
			CooldownMs: 1000, GroupCooldownMs: healingGroupCdMs,
			DamageScaleFlags: clampLower,
			Payload: CombatPayload{
				Healing: true, DamageType: combat.DamageHoly,
				BaseDamage: 120, Variance: 30,
			},
		},
		{
			ID: 6, Name: "Antidote", Words: "exana pox",
			Kind: KindInstant, Target: TargetSelf, Group: GroupHealing,
			ManaCost: 30, LevelRequired: 10, MagicLevelReq: 2,
			CooldownMs: 1000, GroupCooldownMs: healingGroupCdMs,
			Payload: CurePayload{Kind: combat.ConditionPoison, IncludeCaster: true},
		},

		// --- Instant attack ---
		{
			ID: 10, Name: "Force Strike", Words: "exori mort",
			Kind: KindInstant, Target: TargetCreature, Group: GroupPowerStrikes,
			ManaCost: 20, LevelRequired: 11, MagicLevelReq: 2,
			CooldownMs: castCooldownMs, GroupCooldownMs: attackGroupCdMs,
			DamageScaleFlags: clampLower,
			Payload: CombatPayload{
				DamageType: combat.DamageDeath, BaseDamage: 20, Variance: 10,
			},
		},
		{
			ID: 11, Name: "Energy Strike", Words: "exori vis",
			Kind: KindInstant, Target: TargetCreature, Group: GroupPowerStrikes,
			ManaCost: 20, LevelRequired: 12, MagicLevelReq: 3,
			CooldownMs: castCooldownMs, GroupCooldownMs: attackGroupCdMs,
			DamageScaleFlags: clampLower,
			Payload: CombatPayload{
				DamageType: combat.DamageEnergy, BaseDamage: 25, Variance: 10,
			},
		},
		{
			ID: 12, Name: "Flame Strike", Words: "exori flam",
			Kind: KindInstant, Target: TargetCreature, Group: GroupPowerStrikes,
			ManaCost: 20, LevelRequired: 12, MagicLevelReq: 3,
			CooldownMs: castCooldownMs, GroupCooldownMs: attackGroupCdMs,
			DamageScaleFlags: clampLower,
			Payload: CombatPayload{
				DamageType: combat.DamageFire, BaseDamage: 25, Variance: 10,
			},
		},
		{
			ID: 13, Name: "Fire Wave", Words: "exevo flam hur",
			Kind: KindInstant, Target: TargetPosition, Group: GroupAttack,
			ManaCost: 25, LevelRequired: 18, MagicLevelReq: 6,
			CooldownMs: castCooldownMs, GroupCooldownMs: attackGroupCdMs,
			Payload: CombatPayload{
				Shape: ShapeCone(6, 60), DamageType: combat.DamageFire,
				BaseDamage: 30, Variance: 10,
			},
		},
		{
			ID: 14, Name: "Energy Beam", Words: "exevo vis lux",
			Kind: KindInstant, Target: TargetPosition, Group: GroupAttack,
			ManaCost: 40, LevelRequired: 23, MagicLevelReq: 7,
			CooldownMs: castCooldownMs, GroupCooldownMs: attackGroupCdMs,
			Payload: CombatPayload{
				Shape: ShapeLine(5), DamageType: combat.DamageEnergy,
				BaseDamage: 45, Variance: 15,
			},
		},
		{
			ID: 15, Name: "Great Energy Beam", Words: "exevo gran vis lux",
			Kind: KindInstant, Target: TargetPosition, Group: GroupAttack,
			ManaCost: 110, LevelRequired: 29, MagicLevelReq: 9,
			CooldownMs: castCooldownMs, GroupCooldownMs: attackGroupCdMs,
			Payload: CombatPayload{
				Shape: ShapeLine(8), DamageType: combat.DamageEnergy,
				BaseDamage: 90, Variance: 30,
			},
		},
		{
			// Despite the death words, this wave always dealt energy damage.
			ID: 16, Name: "Energy Wave", Words: "exevo mort hur",
			Kind: KindInstant, Target: TargetPosition, Group: GroupAttack,
			ManaCost: 250, LevelRequired: 38, MagicLevelReq: 12,
			CooldownMs: castCooldownMs, GroupCooldownMs: attackGroupCdMs,
			Payload: CombatPayload{
				Shape: ShapeCone(8, 90), DamageType: combat.DamageEnergy,
				BaseDamage: 120, Variance: 40,
			},
		},
		{
			ID: 17, Name: "Poison Storm", Words: "exevo gran mas pox",
			Kind: KindInstant, Target: TargetArea, Group: GroupAttack,
			ManaCost: 600, LevelRequired: 50, MagicLevelReq: 16,
			CooldownMs: castCooldownMs, GroupCooldownMs: attackGroupCdMs,
			Payload: CombatPayload{
				Shape: ShapeArea(6), DamageType: combat.DamageEarth,
				BaseDamage: 150, Variance: 50,
			},
		},

		// --- Support ---
		{
			ID: 20, Name: "Light", Words: "utevo lux",
			Kind: KindInstant, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 20, LevelRequired: 8, MagicLevelReq: 1,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: LightPayload{Level: 6, Color: 215, DurationMs: 370_000},
		},
		{
			ID: 21, Name: "Great Light", Words: "utevo gran lux",
			Kind: KindInstant, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 60, LevelRequired: 13, MagicLevelReq: 4,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: LightPayload{Level: 8, Color: 215, DurationMs: 660_000},
		},
		{
			ID: 22, Name: "Haste", Words: "utani hur",
			Kind: KindInstant, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 60, LevelRequired: 14, MagicLevelReq: 5,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: HastePayload{
				SpeedPercent: 30, DurationMs: 33_000, IncludeCaster: true,
			},
		},
		{
			ID: 23, Name: "Strong Haste", Words: "utani gran hur",
			Kind: KindInstant, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 100, LevelRequired: 20, MagicLevelReq: 7,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: HastePayload{
				SpeedPercent: 70, DurationMs: 22_000, IncludeCaster: true,
			},
		},
		{
			ID: 24, Name: "Magic Shield", Words: "utamo vita",
			Kind: KindInstant, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 50, LevelRequired: 14, MagicLevelReq: 5,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: MagicShieldPayload{DurationMs: 200_000},
		},
		{
			ID: 25, Name: "Invisible", Words: "utana vid",
			Kind: KindInstant, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 440, LevelRequired: 35, MagicLevelReq: 11,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: OutfitPayload{DurationMs: 200_000},
		},
		{
			ID: 26, Name: "Cancel Invisibility", Words: "exana ina",
			Kind: KindInstant, Target: TargetArea, Group: GroupSupport,
			ManaCost: 200, LevelRequired: 26, MagicLevelReq: 8,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: OutfitPayload{Cancel: true},
		},
		{
			ID: 27, Name: "Creature Illusion", Words: `utevo res ina "creature"`,
			Kind: KindInstant, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 100, LevelRequired: 23, MagicLevelReq: 7,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: OutfitPayload{Chameleon: true, DurationMs: 180_000},
		},
		{
			ID: 28, Name: "Levitate", Words: `exani hur "up|down"`,
			Kind: KindInstant, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 50, LevelRequired: 12, MagicLevelReq: 4,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: LevitatePayload{},
		},
		{
			ID: 29, Name: "Magic Rope", Words: "exani tera",
			Kind: KindInstant, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 20, LevelRequired: 9, MagicLevelReq: 2,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: MagicRopePayload{},
		},
		{
			ID: 30, Name: "Find Person", Words: `exiva "name"`,
			Kind: KindInstant, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 20, LevelRequired: 8, MagicLevelReq: 1,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: FindPersonPayload{},
		},
		{
			ID: 31, Name: "Challenge", Words: "exeta res",
			Kind: KindInstant, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 30, LevelRequired: 20, MagicLevelReq: 6,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: ChallengePayload{Radius: 1},
		},
		{
			ID: 32, Name: "Summon Creature", Words: `utevo res "creature"`,
			Kind: KindInstant, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 500, LevelRequired: 25, MagicLevelReq: 8,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: SummonPayload{Count: 1},
		},
		{
			ID: 33, Name: "Enchant Staff", Words: "exeta vis",
			Kind: KindInstant, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 80, LevelRequired: 41, MagicLevelReq: 13,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: EnchantStaffPayload{SourceTypeID: 3289, EnchantedTypeID: 3320},
		},

		// --- Conjure ---
		{
			ID: 40, Name: "Conjure Arrow", Words: "exevo con",
			Kind: KindConjure, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 100, SoulCost: 1, LevelRequired: 13, MagicLevelReq: 4,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: ConjurePayload{ItemTypeID: 3447, Count: 10},
		},
		{
			ID: 41, Name: "Explosive Arrow", Words: "exevo con flam",
			Kind: KindConjure, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 290, SoulCost: 3, LevelRequired: 25, MagicLevelReq: 8,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: ConjurePayload{ItemTypeID: 3448, Count: 8},
		},
		{
			ID: 42, Name: "Food", Words: "exevo pan",
			Kind: KindConjure, Target: TargetSelf, Group: GroupSupport,
			ManaCost: 120, SoulCost: 1, LevelRequired: 14, MagicLevelReq: 4,
			CooldownMs: castCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: ConjurePayload{ItemTypeID: 3585, Count: 1},
		},

		// --- Runes ---
		{
			ID: 50, Name: "Light Magic Missile", Words: "adori",
			Kind: KindRune, RuneTypeID: 3174, Target: TargetPosition, Group: GroupAttack,
			ManaCost: 120, SoulCost: 1, LevelRequired: 15, MagicLevelReq: 4,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: attackGroupCdMs,
			Payload: CombatPayload{
				DamageType: combat.DamageEnergy, BaseDamage: 12, Variance: 4,
			},
		},
		{
			ID: 51, Name: "Heavy Magic Missile", Words: "adori gran",
			Kind: KindRune, RuneTypeID: 3198, Target: TargetPosition, Group: GroupAttack,
			ManaCost: 350, SoulCost: 2, LevelRequired: 25, MagicLevelReq: 7,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: attackGroupCdMs,
			Payload: CombatPayload{
				DamageType: combat.DamageEnergy, BaseDamage: 25, Variance: 8,
			},
		},
		{
			ID: 52, Name: "Sudden Death", Words: "adori vita vis",
			Kind: KindRune, RuneTypeID: 3155, Target: TargetPosition, Group: GroupAttack,
			ManaCost: 880, SoulCost: 5, LevelRequired: 45, MagicLevelReq: 15,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: attackGroupCdMs,
			Payload: CombatPayload{
				DamageType: combat.DamageDeath, BaseDamage: 90, Variance: 25,
			},
		},
		{
			ID: 53, Name: "Great Fireball", Words: "adori mas flam",
			Kind: KindRune, RuneTypeID: 3191, Target: TargetPosition, Group: GroupAttack,
			ManaCost: 530, SoulCost: 3, LevelRequired: 30, MagicLevelReq: 9,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: attackGroupCdMs,
			Payload: CombatPayload{
				Shape: ShapeArea(4), DamageType: combat.DamageFire,
				BaseDamage: 50, Variance: 20,
			},
		},
		{
			ID: 54, Name: "Explosion", Words: "adevo mas hur",
			Kind: KindRune, RuneTypeID: 3200, Target: TargetPosition, Group: GroupAttack,
			ManaCost: 570, SoulCost: 4, LevelRequired: 31, MagicLevelReq: 10,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: attackGroupCdMs,
			Payload: CombatPayload{
				Shape: ShapeArea(3), DamageType: combat.DamagePhysical,
				BaseDamage: 60, Variance: 25,
			},
		},
		{
			ID: 55, Name: "Fire Field", Words: "adevo grav flam",
			Kind: KindRune, RuneTypeID: 3188, Target: TargetPosition, Group: GroupSupport,
			ManaCost: 240, SoulCost: 1, LevelRequired: 15, MagicLevelReq: 4,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: FieldPayload{FieldKind: 1},
		},
		{
			ID: 56, Name: "Poison Field", Words: "adevo grav pox",
			Kind: KindRune, RuneTypeID: 3172, Target: TargetPosition, Group: GroupSupport,
			ManaCost: 200, SoulCost: 1, LevelRequired: 14, MagicLevelReq: 4,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: FieldPayload{FieldKind: 2},
		},
		{
			ID: 57, Name: "Energy Field", Words: "adevo grav vis",
			Kind: KindRune, RuneTypeID: 3164, Target: TargetPosition, Group: GroupSupport,
			ManaCost: 320, SoulCost: 2, LevelRequired: 18, MagicLevelReq: 6,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: FieldPayload{FieldKind: 3},
		},
		{
			ID: 58, Name: "Fire Wall", Words: "adevo mas grav flam",
			Kind: KindRune, RuneTypeID: 3190, Target: TargetPosition, Group: GroupSupport,
			ManaCost: 780, SoulCost: 4, LevelRequired: 33, MagicLevelReq: 11,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: FieldPayload{Shape: ShapeLine(5), FieldKind: 1},
		},
		{
			ID: 59, Name: "Destroy Field", Words: "adito grav",
			Kind: KindRune, RuneTypeID: 3148, Target: TargetPosition, Group: GroupSupport,
			ManaCost: 120, SoulCost: 2, LevelRequired: 17, MagicLevelReq: 3,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: DispelPayload{RemoveMagicFields: true},
		},
		{
			ID: 60, Name: "Desintegrate", Words: "adito tera",
			Kind: KindRune, RuneTypeID: 3197, Target: TargetPosition, Group: GroupSupport,
			ManaCost: 200, SoulCost: 3, LevelRequired: 21, MagicLevelReq: 8,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: DispelPayload{RemoveItems: true},
		},
		{
			ID: 61, Name: "Antidote Rune", Words: "adana pox",
			Kind: KindRune, RuneTypeID: 3153, Target: TargetCreature, Group: GroupHealing,
			ManaCost: 200, SoulCost: 1, LevelRequired: 15, MagicLevelReq: 5,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: healingGroupCdMs,
			Payload: CurePayload{Kind: combat.ConditionPoison},
		},
		{
			ID: 62, Name: "Intense Healing Rune", Words: "adura gran",
			Kind: KindRune, RuneTypeID: 3152, Target: TargetCreature, Group: GroupHealing,
			ManaCost: 240, SoulCost: 2, LevelRequired: 15, MagicLevelReq: 5,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: healingGroupCdMs,
			DamageScaleFlags: clampLower,
			Payload: CombatPayload{
				Healing: true, DamageType: combat.DamageHoly,
				BaseDamage: 70, Variance: 20,
			},
		},
		{
			ID: 63, Name: "Ultimate Healing Rune", Words: "adura vita",
			Kind: KindRune, RuneTypeID: 3160, Target: TargetCreature, Group: GroupHealing,
			ManaCost: 400, SoulCost: 3, LevelRequired: 24, MagicLevelReq: 8,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: healingGroupCdMs,
			DamageScaleFlags: clampLower,
			Payload: CombatPayload{
				Healing: true, DamageType: combat.DamageHoly,
				BaseDamage: 250, Variance: 60,
			},
		},
		{
			ID: 64, Name: "Paralyze", Words: "adana ani",
			Kind: KindRune, RuneTypeID: 3165, Target: TargetCreature, Group: GroupSupport,
			ManaCost: 1400, SoulCost: 3, LevelRequired: 54, MagicLevelReq: 18,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: HastePayload{SpeedPercent: -100, DurationMs: 10_000},
		},
		{
			ID: 65, Name: "Animate Dead", Words: "adana mort",
			Kind: KindRune, RuneTypeID: 3203, Target: TargetPosition, Group: GroupSupport,
			ManaCost: 600, SoulCost: 5, LevelRequired: 27, MagicLevelReq: 9,
			CooldownMs: runeUseCooldownMs, GroupCooldownMs: supportGroupCdMs,
			Payload: RaiseDeadPayload{CreatureName: "skeleton", Radius: 1},
		},
	}
}
