package tracker

import "github.com/umputun/tubefeed/pkg/domain"

// UnnamedItem is used when a template entry has neither formula nor custom name
const UnnamedItem = "Unnamed Item"

// Prefill fills the fields of a draft item the user left empty with formula defaults.
// Fields already set in the draft are kept as user overrides.
func Prefill(draft domain.FeedItem, f domain.FoodFormula) domain.FeedItem {
	res := draft
	if res.FoodName == "" {
		res.FoodName = f.Name
	}
	res.Nutrients = draft.Nutrients.Overlay(f.Defaults())
	if res.Description == "" {
		res.Description = f.DefaultDescription
	}
	if res.SourceFormulaID == nil {
		res.SourceFormulaID = domain.Int64Ptr(f.ID)
	}
	if res.Status == "" {
		res.Status = domain.StatusPending
	}
	return res
}

// EntryFromFormula links a schedule template entry draft to the formula and fills its unset nutrients.
// The description is not copied, the formula default is applied when items are generated.
func EntryFromFormula(draft domain.ScheduleTemplateEntry, f domain.FoodFormula) domain.ScheduleTemplateEntry {
	res := draft
	res.FoodFormulaID = domain.Int64Ptr(f.ID)
	res.Nutrients = draft.Nutrients.Overlay(f.Defaults())
	res.DisplayName = DisplayName(res, &f)
	return res
}

// DisplayName returns the formula name if the entry references one, otherwise the custom name
func DisplayName(e domain.ScheduleTemplateEntry, f *domain.FoodFormula) string {
	if f != nil && f.Name != "" {
		return f.Name
	}
	return e.CustomFoodName
}

// ItemFromTemplate materializes a schedule template entry into a pending feed item for date.
// Template values win over formula defaults; custom name wins over formula name.
func ItemFromTemplate(e domain.ScheduleTemplateEntry, f *domain.FoodFormula, date domain.Date) domain.FeedItem {
	item := domain.FeedItem{
		SourceTemplateID: domain.Int64Ptr(e.ID),
		SourceFormulaID:  e.FoodFormulaID,
		ScheduledDate:    date,
		Timing:           e.Timing,
		FoodName:         e.CustomFoodName,
		Nutrients:        e.Nutrients,
		Description:      e.Description,
		Status:           domain.StatusPending,
	}

	if f != nil {
		item.Nutrients = e.Nutrients.Overlay(f.Defaults())
		if item.FoodName == "" {
			item.FoodName = f.Name
		}
		if item.Description == "" {
			item.Description = f.DefaultDescription
		}
	}
	if item.FoodName == "" {
		item.FoodName = UnnamedItem
	}
	return item
}
