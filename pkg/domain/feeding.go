package domain

import "time"

// Status of a feed item, exactly one holds at a time
type Status string

const (
	StatusPending      Status = "pending"
	StatusAdministered Status = "administered"
	StatusSkipped      Status = "skipped"
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAdministered, StatusSkipped:
		return true
	}
	return false
}

// Nutrients holds optional nutrition values. Nil means "not specified", not zero.
type Nutrients struct {
	QuantityML *int     `json:"quantity_ml"`
	Calories   *int     `json:"calories"`
	ProteinG   *float64 `json:"protein_g"`
	CarbsG     *float64 `json:"carbs_g"`
	FatG       *float64 `json:"fat_g"`
}

// Overlay returns n with every unset field taken from base
func (n Nutrients) Overlay(base Nutrients) Nutrients {
	res := n
	if res.QuantityML == nil {
		res.QuantityML = base.QuantityML
	}
	if res.Calories == nil {
		res.Calories = base.Calories
	}
	if res.ProteinG == nil {
		res.ProteinG = base.ProteinG
	}
	if res.CarbsG == nil {
		res.CarbsG = base.CarbsG
	}
	if res.FatG == nil {
		res.FatG = base.FatG
	}
	return res
}

// FeedItem is one scheduled or administered feeding for a specific calendar date
type FeedItem struct {
	ID               int64     `json:"id"`
	SourceTemplateID *int64    `json:"source_template"`
	SourceFormulaID  *int64    `json:"source_formula"`
	ScheduledDate    Date      `json:"scheduled_date"`
	Timing           TimeOfDay `json:"timing"`
	FoodName         string    `json:"food_name"`
	Nutrients
	Description    string     `json:"description"`
	Image          string     `json:"image,omitempty"`
	Status         Status     `json:"status"`
	AdministeredAt *time.Time `json:"administered_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// AdHoc reports whether the item was created outside the schedule template
func (f FeedItem) AdHoc() bool {
	return f.SourceTemplateID == nil
}

// FoodFormula is a reusable named nutrition preset
type FoodFormula struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	DefaultQuantityML  *int      `json:"default_quantity_ml"`
	DefaultCalories    *int      `json:"default_calories"`
	DefaultProteinG    *float64  `json:"default_protein_g"`
	DefaultCarbsG      *float64  `json:"default_carbs_g"`
	DefaultFatG        *float64  `json:"default_fat_g"`
	DefaultDescription string    `json:"default_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Defaults returns formula default nutrients
func (f FoodFormula) Defaults() Nutrients {
	return Nutrients{
		QuantityML: f.DefaultQuantityML,
		Calories:   f.DefaultCalories,
		ProteinG:   f.DefaultProteinG,
		CarbsG:     f.DefaultCarbsG,
		FatG:       f.DefaultFatG,
	}
}

// ScheduleTemplateEntry is one recurring daily slot used to seed feed items for new dates
type ScheduleTemplateEntry struct {
	ID             int64     `json:"id"`
	Timing         TimeOfDay `json:"timing"`
	FoodFormulaID  *int64    `json:"food_formula"`
	CustomFoodName string    `json:"custom_food_name"`
	DisplayName    string    `json:"display_name"`
	Nutrients
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IntPtr returns pointer to v
func IntPtr(v int) *int { return &v }

// FloatPtr returns pointer to v
func FloatPtr(v float64) *float64 { return &v }

// Int64Ptr returns pointer to v
func Int64Ptr(v int64) *int64 { return &v }
