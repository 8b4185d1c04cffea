package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ravenor/mistvale/internal/game/clock"
	"github.com/ravenor/mistvale/internal/game/combat"
	"github.com/ravenor/mistvale/internal/game/spell"
	"github.com/ravenor/mistvale/internal/model"
)

// PlayerRepository persists player combat snapshots: vitals, resistances,
// skull state, active conditions and learned spells. Cooldowns and timed
// effects are deliberately not stored; they are short-lived and reset on
// login.
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a PlayerRepository on the given pool.
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Save writes the player's snapshot in one transaction. Conditions and
// learned spells are replaced wholesale; a crash mid-save leaves the
// previous snapshot intact.
func (r *PlayerRepository) Save(ctx context.Context, p *model.PlayerState) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning save for player %d: %w", p.ID, err)
	}
	defer tx.Rollback(ctx)

	resistances := p.Stats.Resistances.ToArray()
	skull := p.Pvp.Skull
	var skullExpiry clock.Tick
	if deadline, ok := p.Pvp.SkullDeadline(); ok {
		skullExpiry = deadline
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO players (
			id, name, level, experience, vocation, magic_level,
			health, max_health, mana, max_mana, soul, capacity,
			resistances, skull, skull_expires_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			level = EXCLUDED.level,
			experience = EXCLUDED.experience,
			vocation = EXCLUDED.vocation,
			magic_level = EXCLUDED.magic_level,
			health = EXCLUDED.health,
			max_health = EXCLUDED.max_health,
			mana = EXCLUDED.mana,
			max_mana = EXCLUDED.max_mana,
			soul = EXCLUDED.soul,
			capacity = EXCLUDED.capacity,
			resistances = EXCLUDED.resistances,
			skull = EXCLUDED.skull,
			skull_expires_at = EXCLUDED.skull_expires_at,
			updated_at = now()`,
		int64(p.ID), p.Name, int32(p.Level), int64(p.Experience), int16(p.Vocation),
		int32(p.Skills.Magic.Level),
		int64(p.Stats.Health), int64(p.Stats.MaxHealth),
		int64(p.Stats.Mana), int64(p.Stats.MaxMana),
		int64(p.Stats.Soul), int64(p.Stats.Capacity),
		resistances[:], int16(skull), int64(skullExpiry),
	)
	if err != nil {
		return fmt.Errorf("saving player %d: %w", p.ID, err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM player_conditions WHERE player_id = $1`, int64(p.ID)); err != nil {
		return fmt.Errorf("clearing conditions for player %d: %w", p.ID, err)
	}
	for _, c := range p.Conditions {
		_, err := tx.Exec(ctx, `
			INSERT INTO player_conditions (
				player_id, kind, damage_type, tick_damage,
				interval_ticks, next_tick, expires_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			int64(p.ID), int16(c.Kind), int32(c.DamageType), int64(c.TickDamage),
			int64(c.Interval), int64(c.NextTick), int64(c.ExpiresAt),
		)
		if err != nil {
			return fmt.Errorf("saving condition for player %d: %w", p.ID, err)
		}
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM player_spells WHERE player_id = $1`, int64(p.ID)); err != nil {
		return fmt.Errorf("clearing spells for player %d: %w", p.ID, err)
	}
	for id := range p.KnownSpells {
		_, err := tx.Exec(ctx,
			`INSERT INTO player_spells (player_id, spell_id) VALUES ($1, $2)`,
			int64(p.ID), int32(id),
		)
		if err != nil {
			return fmt.Errorf("saving spells for player %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing save for player %d: %w", p.ID, err)
	}
	return nil
}

// Load reads a player's snapshot. Returns nil, nil when the player does
// not exist.
func (r *PlayerRepository) Load(ctx context.Context, id model.PlayerID) (*model.PlayerState, error) {
	var (
		name                           string
		level, magicLevel              int32
		experience                     int64
		vocation, skull                int16
		health, maxHealth              int64
		mana, maxMana, soul, capacity  int64
		resistances                    []int16
		skullExpiry                    int64
	)
	err := r.db.QueryRow(ctx, `
		SELECT name, level, experience, vocation, magic_level,
		       health, max_health, mana, max_mana, soul, capacity,
		       resistances, skull, skull_expires_at
		FROM players WHERE id = $1`, int64(id),
	).Scan(
		&name, &level, &experience, &vocation, &magicLevel,
		&health, &maxHealth, &mana, &maxMana, &soul, &capacity,
		&resistances, &skull, &skullExpiry,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying player %d: %w", id, err)
	}

	p := model.NewPlayer(id, name)
	p.Level = uint16(level)
	p.Experience = uint64(experience)
	p.Vocation = uint8(vocation)
	p.Skills.Magic.Level = uint16(magicLevel)
	p.Stats = model.Stats{
		Health:    uint32(health),
		MaxHealth: uint32(maxHealth),
		Mana:      uint32(mana),
		MaxMana:   uint32(maxMana),
		Soul:      uint32(soul),
		Capacity:  uint32(capacity),
	}
	var percents [combat.DamageTypeCount]int16
	copy(percents[:], resistances)
	p.Stats.Resistances = combat.ResistancesFromArray(percents)
	p.Pvp.RestoreSkull(combat.SkullState(skull), clock.Tick(skullExpiry))

	rows, err := r.db.Query(ctx, `
		SELECT kind, damage_type, tick_damage, interval_ticks, next_tick, expires_at
		FROM player_conditions WHERE player_id = $1`, int64(id))
	if err != nil {
		return nil, fmt.Errorf("querying conditions for player %d: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			kind                 int16
			damageType           int32
			tickDamage, interval int64
			nextTick, expiresAt  int64
		)
		if err := rows.Scan(&kind, &damageType, &tickDamage, &interval, &nextTick, &expiresAt); err != nil {
			return nil, fmt.Errorf("scanning condition for player %d: %w", id, err)
		}
		p.Conditions = append(p.Conditions, combat.ConditionInstance{
			Kind:       combat.ConditionKind(kind),
			DamageType: combat.DamageType(damageType),
			TickDamage: uint32(tickDamage),
			Interval:   uint64(interval),
			NextTick:   clock.Tick(nextTick),
			ExpiresAt:  clock.Tick(expiresAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading conditions for player %d: %w", id, err)
	}

	spellRows, err := r.db.Query(ctx,
		`SELECT spell_id FROM player_spells WHERE player_id = $1`, int64(id))
	if err != nil {
		return nil, fmt.Errorf("querying spells for player %d: %w", id, err)
	}
	defer spellRows.Close()
	for spellRows.Next() {
		var spellID int32
		if err := spellRows.Scan(&spellID); err != nil {
			return nil, fmt.Errorf("scanning spell for player %d: %w", id, err)
		}
		p.LearnSpell(spell.ID(spellID))
	}
	if err := spellRows.Err(); err != nil {
		return nil, fmt.Errorf("reading spells for player %d: %w", id, err)
	}

	return p, nil
}

// SaveAll persists every player the visitor yields. Used by the autosave
// loop; the first failure aborts the sweep.
func (r *PlayerRepository) SaveAll(ctx context.Context, each func(func(*model.PlayerState))) error {
	var saveErr error
	each(func(p *model.PlayerState) {
		if saveErr != nil {
			return
		}
		saveErr = r.Save(ctx, p)
	})
	return saveErr
}
