package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/tubefeed/pkg/domain"
)

func testFormula() domain.FoodFormula {
	return domain.FoodFormula{
		ID:                 7,
		Name:               "Peptamen 1.5",
		DefaultQuantityML:  domain.IntPtr(250),
		DefaultCalories:    domain.IntPtr(375),
		DefaultProteinG:    domain.FloatPtr(17),
		DefaultCarbsG:      domain.FloatPtr(47),
		DefaultFatG:        domain.FloatPtr(14.1),
		DefaultDescription: "room temperature",
	}
}

func TestPrefill(t *testing.T) {
	f := testFormula()

	t.Run("empty draft gets all defaults", func(t *testing.T) {
		date, timing := domain.MustDate("2026-03-10"), domain.MustTimeOfDay("14:00")
		res := Prefill(domain.FeedItem{ScheduledDate: date, Timing: timing}, f)
		assert.Equal(t, f.Name, res.FoodName)
		assert.Equal(t, f.Defaults(), res.Nutrients)
		assert.Equal(t, f.DefaultDescription, res.Description)
		assert.Equal(t, domain.StatusPending, res.Status)
		assert.Equal(t, date, res.ScheduledDate)
		assert.Equal(t, timing, res.Timing)
		assert.Equal(t, int64(7), *res.SourceFormulaID)
		assert.True(t, res.AdHoc())
	})

	t.Run("user overrides survive", func(t *testing.T) {
		draft := domain.FeedItem{FoodName: "Half portion", Nutrients: domain.Nutrients{QuantityML: domain.IntPtr(125)}}
		res := Prefill(draft, f)
		assert.Equal(t, "Half portion", res.FoodName)
		assert.Equal(t, 125, *res.QuantityML)
		assert.Equal(t, 375, *res.Calories)
		assert.InDelta(t, 14.1, *res.FatG, 0.001)
	})
}

func TestItemFromTemplate(t *testing.T) {
	f := testFormula()
	date := domain.MustDate("2026-03-10")

	t.Run("formula defaults fill unset template values", func(t *testing.T) {
		entry := domain.ScheduleTemplateEntry{ID: 3, Timing: domain.MustTimeOfDay("06:00"), FoodFormulaID: domain.Int64Ptr(7),
			Nutrients: domain.Nutrients{QuantityML: domain.IntPtr(200), Calories: domain.IntPtr(300)}}
		item := ItemFromTemplate(entry, &f, date)
		assert.Equal(t, "Peptamen 1.5", item.FoodName)
		assert.Equal(t, 200, *item.QuantityML)
		assert.Equal(t, 300, *item.Calories)
		assert.InDelta(t, 17, *item.ProteinG, 0.001)
		assert.Equal(t, "room temperature", item.Description)
		assert.Equal(t, int64(3), *item.SourceTemplateID)
		assert.Equal(t, int64(7), *item.SourceFormulaID)
		assert.Equal(t, domain.StatusPending, item.Status)
		assert.False(t, item.AdHoc())
	})

	t.Run("custom name and description win", func(t *testing.T) {
		entry := domain.ScheduleTemplateEntry{ID: 4, Timing: domain.MustTimeOfDay("22:00"), FoodFormulaID: domain.Int64Ptr(7),
			CustomFoodName: "Night feed", Description: "slow pump", Nutrients: domain.Nutrients{QuantityML: domain.IntPtr(100)}}
		item := ItemFromTemplate(entry, &f, date)
		assert.Equal(t, "Night feed", item.FoodName)
		assert.Equal(t, "slow pump", item.Description)
	})

	t.Run("no formula", func(t *testing.T) {
		entry := domain.ScheduleTemplateEntry{ID: 5, Timing: domain.MustTimeOfDay("10:00"), CustomFoodName: "Water flush",
			Nutrients: domain.Nutrients{QuantityML: domain.IntPtr(50)}}
		item := ItemFromTemplate(entry, nil, date)
		assert.Equal(t, "Water flush", item.FoodName)
		assert.Nil(t, item.Calories)
		assert.Nil(t, item.SourceFormulaID)

		entry.CustomFoodName = ""
		assert.Equal(t, UnnamedItem, ItemFromTemplate(entry, nil, date).FoodName)
	})
}

func TestEntryFromFormula(t *testing.T) {
	f := testFormula()
	entry := EntryFromFormula(domain.ScheduleTemplateEntry{Timing: domain.MustTimeOfDay("06:00"),
		Nutrients: domain.Nutrients{Calories: domain.IntPtr(100)}}, f)
	assert.Equal(t, int64(7), *entry.FoodFormulaID)
	assert.Equal(t, 100, *entry.Calories)
	assert.Equal(t, 250, *entry.QuantityML)
	assert.Equal(t, "Peptamen 1.5", entry.DisplayName)
	assert.Empty(t, entry.Description, "formula description is left to item generation")

	entry = EntryFromFormula(domain.ScheduleTemplateEntry{Description: "slow pump"}, f)
	assert.Equal(t, "slow pump", entry.Description)

	// description still reaches generated items through the formula
	item := ItemFromTemplate(EntryFromFormula(domain.ScheduleTemplateEntry{ID: 1}, f), &f, domain.MustDate("2026-03-10"))
	assert.Equal(t, "room temperature", item.Description)
}
