package tracker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/tubefeed/pkg/domain"
)

func TestSummarize(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		res := Summarize(nil)
		assert.Equal(t, Summary{}, res)
	})

	t.Run("morning pending, noon administered", func(t *testing.T) {
		items := []domain.FeedItem{
			{Timing: domain.MustTimeOfDay("08:00"), Nutrients: domain.Nutrients{Calories: domain.IntPtr(300)},
				Status: domain.StatusPending},
			{Timing: domain.MustTimeOfDay("12:00"), Nutrients: domain.Nutrients{Calories: domain.IntPtr(500)},
				Status: domain.StatusAdministered},
		}
		res := Summarize(items)
		assert.InDelta(t, 800, res.Calories.Total, 0.001)
		assert.InDelta(t, 500, res.Calories.Consumed, 0.001)
		assert.Equal(t, 63, res.Percentage)
		assert.Equal(t, 1, res.Administered)
		assert.Equal(t, 2, res.Total)
	})

	t.Run("unset and negative values count as zero", func(t *testing.T) {
		items := []domain.FeedItem{
			{Nutrients: domain.Nutrients{ProteinG: domain.FloatPtr(12.5)}, Status: domain.StatusAdministered},
			{Nutrients: domain.Nutrients{ProteinG: domain.FloatPtr(-3), Calories: domain.IntPtr(-10)},
				Status: domain.StatusAdministered},
			{Status: domain.StatusSkipped},
		}
		res := Summarize(items)
		assert.InDelta(t, 12.5, res.Protein.Total, 0.001)
		assert.InDelta(t, 12.5, res.Protein.Consumed, 0.001)
		assert.Zero(t, res.Calories.Total)
		assert.Zero(t, res.Percentage, "no calories, no percentage")
		assert.Equal(t, 2, res.Administered)
		assert.Equal(t, 3, res.Total)
	})

	t.Run("skipped items are not consumed", func(t *testing.T) {
		items := []domain.FeedItem{
			{Nutrients: domain.Nutrients{Calories: domain.IntPtr(200), FatG: domain.FloatPtr(4)}, Status: domain.StatusSkipped},
			{Nutrients: domain.Nutrients{Calories: domain.IntPtr(200), FatG: domain.FloatPtr(4)}, Status: domain.StatusAdministered},
		}
		res := Summarize(items)
		assert.Equal(t, 50, res.Percentage)
		assert.InDelta(t, 4, res.Fat.Consumed, 0.001)
		assert.InDelta(t, 8, res.Fat.Total, 0.001)
	})
}

func TestSummarize_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42)) //nolint:gosec // deterministic test data
	statuses := []domain.Status{domain.StatusPending, domain.StatusAdministered, domain.StatusSkipped}

	for round := 0; round < 50; round++ {
		items := make([]domain.FeedItem, rnd.Intn(8))
		for i := range items {
			item := domain.FeedItem{Status: statuses[rnd.Intn(len(statuses))]}
			if rnd.Intn(4) > 0 {
				item.Calories = domain.IntPtr(rnd.Intn(600))
			}
			if rnd.Intn(4) > 0 {
				item.ProteinG = domain.FloatPtr(float64(rnd.Intn(300)) / 10)
			}
			if rnd.Intn(4) > 0 {
				item.CarbsG = domain.FloatPtr(float64(rnd.Intn(600)) / 10)
			}
			if rnd.Intn(4) > 0 {
				item.FatG = domain.FloatPtr(float64(rnd.Intn(200)) / 10)
			}
			items[i] = item
		}

		res := Summarize(items)
		for _, a := range []Amount{res.Calories, res.Protein, res.Carbs, res.Fat} {
			assert.LessOrEqual(t, a.Consumed, a.Total+1e-9)
		}
		assert.GreaterOrEqual(t, res.Percentage, 0)
		assert.LessOrEqual(t, res.Percentage, 100)

		// order doesn't matter
		shuffled := append([]domain.FeedItem(nil), items...)
		rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		res2 := Summarize(shuffled)
		assert.InDelta(t, res.Calories.Total, res2.Calories.Total, 1e-9)
		assert.InDelta(t, res.Protein.Consumed, res2.Protein.Consumed, 1e-9)
		assert.InDelta(t, res.Carbs.Total, res2.Carbs.Total, 1e-9)
		assert.InDelta(t, res.Fat.Consumed, res2.Fat.Consumed, 1e-9)
		assert.Equal(t, res.Percentage, res2.Percentage)
		assert.Equal(t, res.Administered, res2.Administered)
	}
}
