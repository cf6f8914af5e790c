// Package tracker implements the daily feeding logic: nutrition totals for a day, selection of the next
// upcoming feed, feed status transitions and pre-filling items from formulas and schedule templates.
package tracker

import (
	"math"

	"github.com/umputun/tubefeed/pkg/domain"
)

// Amount is a consumed/total pair for one nutrient
type Amount struct {
	Consumed float64 `json:"consumed"`
	Total    float64 `json:"total"`
}

// Summary is the nutrition aggregate of a day
type Summary struct {
	Calories     Amount `json:"calories"`
	Protein      Amount `json:"protein_g"`
	Carbs        Amount `json:"carbs_g"`
	Fat          Amount `json:"fat_g"`
	Administered int    `json:"administered"`
	Total        int    `json:"total"`
	Percentage   int    `json:"percentage"` // consumed calories share of total, 0..100
}

// Summarize reduces feed items into consumed and total sums per nutrient.
// Unset and negative values contribute zero. Only administered items count as consumed.
func Summarize(items []domain.FeedItem) Summary {
	var res Summary
	for _, item := range items {
		cal := intValue(item.Calories)
		protein := floatValue(item.ProteinG)
		carbs := floatValue(item.CarbsG)
		fat := floatValue(item.FatG)

		res.Calories.Total += cal
		res.Protein.Total += protein
		res.Carbs.Total += carbs
		res.Fat.Total += fat

		if item.Status == domain.StatusAdministered {
			res.Calories.Consumed += cal
			res.Protein.Consumed += protein
			res.Carbs.Consumed += carbs
			res.Fat.Consumed += fat
			res.Administered++
		}
	}
	res.Total = len(items)

	if res.Calories.Total > 0 {
		res.Percentage = int(math.Round(res.Calories.Consumed / res.Calories.Total * 100))
	}
	return res
}

func intValue(v *int) float64 {
	if v == nil || *v < 0 {
		return 0
	}
	return float64(*v)
}

func floatValue(v *float64) float64 {
	if v == nil || *v < 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}
