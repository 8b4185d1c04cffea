package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenor/mistvale/internal/game/clock"
	"github.com/ravenor/mistvale/internal/game/combat"
	"github.com/ravenor/mistvale/internal/model"
)

func snapshotPlayer() *model.PlayerState {
	p := model.NewPlayer(42, "Seren")
	p.Level = 23
	p.Experience = 83700
	p.Vocation = 1
	p.Skills.Magic.Level = 7
	p.Stats.MaxHealth = 625
	p.Stats.Health = 480
	p.Stats.MaxMana = 490
	p.Stats.Mana = 120
	p.Stats.Soul = 64

	var percents [combat.DamageTypeCount]int16
	fireIndex, _ := combat.DamageFire.Index()
	percents[fireIndex] = 30
	p.Stats.Resistances = combat.ResistancesFromArray(percents)

	p.AddCondition(combat.NewCondition(
		combat.ConditionPoison, combat.DamageEarth, 4, 6, clock.Tick(1200), 600))
	p.Pvp.RestoreSkull(combat.SkullWhite, clock.Tick(2400))
	p.LearnSpell(1)
	p.LearnSpell(22)
	return p
}

func TestPlayerRepositorySaveLoadRoundTrip(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	saved := snapshotPlayer()
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, saved.Name, loaded.Name)
	assert.Equal(t, saved.Level, loaded.Level)
	assert.Equal(t, saved.Experience, loaded.Experience)
	assert.Equal(t, saved.Vocation, loaded.Vocation)
	assert.Equal(t, saved.Skills.Magic.Level, loaded.Skills.Magic.Level)
	assert.Equal(t, saved.Stats, loaded.Stats)

	require.Len(t, loaded.Conditions, 1)
	assert.Equal(t, saved.Conditions[0], loaded.Conditions[0])

	assert.Equal(t, combat.SkullWhite, loaded.Pvp.Skull)
	deadline, ok := loaded.Pvp.SkullDeadline()
	require.True(t, ok)
	assert.Equal(t, clock.Tick(2400), deadline)

	assert.True(t, loaded.KnowsSpell(1))
	assert.True(t, loaded.KnowsSpell(22))
	assert.False(t, loaded.KnowsSpell(3))
}

func TestPlayerRepositorySaveReplacesSnapshot(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	p := snapshotPlayer()
	require.NoError(t, repo.Save(ctx, p))

	// The condition ran out and the skull dropped between saves.
	p.Conditions = nil
	p.Pvp.RestoreSkull(combat.SkullNone, 0)
	p.Stats.Health = 625
	require.NoError(t, repo.Save(ctx, p))

	loaded, err := repo.Load(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.Conditions)
	assert.Equal(t, combat.SkullNone, loaded.Pvp.Skull)
	_, ok := loaded.Pvp.SkullDeadline()
	assert.False(t, ok)
	assert.Equal(t, uint32(625), loaded.Stats.Health)
}

func TestPlayerRepositoryLoadMissing(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewPlayerRepository(pool)

	loaded, err := repo.Load(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestPlayerRepositorySaveAll(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	a := model.NewPlayer(1, "Aldric")
	b := model.NewPlayer(2, "Mira")
	players := []*model.PlayerState{a, b}

	err := repo.SaveAll(ctx, func(visit func(*model.PlayerState)) {
		for _, p := range players {
			visit(p)
		}
	})
	require.NoError(t, err)

	for _, p := range players {
		loaded, err := repo.Load(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, p.Name, loaded.Name)
	}
}
