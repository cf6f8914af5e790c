package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tubefeed/pkg/domain"
)

func TestTemplateRepository_CRUD(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	f := &domain.FoodFormula{Name: "Peptamen"}
	require.NoError(t, repos.Formula.Create(ctx, f))

	noon := &domain.ScheduleTemplateEntry{Timing: domain.MustTimeOfDay("12:00"), FoodFormulaID: &f.ID,
		Nutrients: domain.Nutrients{QuantityML: domain.IntPtr(250), Calories: domain.IntPtr(400)}}
	morning := &domain.ScheduleTemplateEntry{Timing: domain.MustTimeOfDay("07:30"), CustomFoodName: "Water flush",
		Nutrients: domain.Nutrients{QuantityML: domain.IntPtr(50)}, Description: "warm"}
	require.NoError(t, repos.Template.Create(ctx, noon))
	require.NoError(t, repos.Template.Create(ctx, morning))
	assert.Equal(t, "Peptamen", noon.DisplayName)
	assert.Equal(t, "Water flush", morning.DisplayName)

	t.Run("list ordered by timing", func(t *testing.T) {
		list, err := repos.Template.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, morning.ID, list[0].ID)
		assert.Equal(t, noon.ID, list[1].ID)
		assert.Equal(t, domain.MustTimeOfDay("07:30"), list[0].Timing)
		assert.Equal(t, 400, *list[1].Calories)
	})

	t.Run("update", func(t *testing.T) {
		morning.Timing = domain.MustTimeOfDay("06:45")
		morning.FatG = domain.FloatPtr(1.5)
		require.NoError(t, repos.Template.Update(ctx, morning))
		got, err := repos.Template.Get(ctx, morning.ID)
		require.NoError(t, err)
		assert.Equal(t, "06:45:00", got.Timing.String())
		assert.InDelta(t, 1.5, *got.FatG, 0.001)
	})

	t.Run("unknown formula reference", func(t *testing.T) {
		bad := &domain.ScheduleTemplateEntry{Timing: domain.MustTimeOfDay("09:00"), FoodFormulaID: domain.Int64Ptr(777),
			Nutrients: domain.Nutrients{QuantityML: domain.IntPtr(10)}}
		require.ErrorIs(t, repos.Template.Create(ctx, bad), ErrReference)
	})

	t.Run("delete removes generated items", func(t *testing.T) {
		date := domain.MustDate("2026-05-01")
		items, err := repos.FeedItem.ListByDate(ctx, date)
		require.NoError(t, err)
		require.Len(t, items, 2)

		require.NoError(t, repos.Template.Delete(ctx, noon.ID))
		items, err = repos.FeedItem.ListByDate(ctx, date)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Water flush", items[0].FoodName)

		require.ErrorIs(t, repos.Template.Delete(ctx, noon.ID), ErrNotFound)
	})
}
