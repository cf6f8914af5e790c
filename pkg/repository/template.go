package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/tubefeed/pkg/domain"
	"github.com/umputun/tubefeed/pkg/tracker"
)

// TemplateRepository handles the daily schedule template
type TemplateRepository struct {
	db *sqlx.DB
}

// templateSQL represents a schedule template entry for SQL operations
type templateSQL struct {
	ID             int64           `db:"id"`
	Timing         string          `db:"timing"`
	FoodFormulaID  sql.NullInt64   `db:"food_formula_id"`
	CustomFoodName string          `db:"custom_food_name"`
	QuantityML     sql.NullInt64   `db:"quantity_ml"`
	Calories       sql.NullInt64   `db:"calories"`
	ProteinG       sql.NullFloat64 `db:"protein_g"`
	CarbsG         sql.NullFloat64 `db:"carbs_g"`
	FatG           sql.NullFloat64 `db:"fat_g"`
	Description    string          `db:"description"`
	FormulaName    string          `db:"formula_name"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

const templateSelect = `
	SELECT t.id, t.timing, t.food_formula_id, t.custom_food_name, t.quantity_ml, t.calories,
		t.protein_g, t.carbs_g, t.fat_g, t.description, t.created_at, t.updated_at,
		COALESCE(f.name, '') AS formula_name
	FROM schedule_templates t
	LEFT JOIN food_formulas f ON f.id = t.food_formula_id
`

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *sqlx.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// List returns all template entries ordered by timing
func (r *TemplateRepository) List(ctx context.Context) ([]domain.ScheduleTemplateEntry, error) {
	return listTemplates(ctx, r.db)
}

// Get returns a template entry by id
func (r *TemplateRepository) Get(ctx context.Context, id int64) (*domain.ScheduleTemplateEntry, error) {
	var row templateSQL
	err := r.db.GetContext(ctx, &row, templateSelect+" WHERE t.id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("template entry %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get template entry %d: %w", id, err)
	}
	res, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Create inserts a new template entry. Feed items already generated for past dates are not touched.
func (r *TemplateRepository) Create(ctx context.Context, e *domain.ScheduleTemplateEntry) error {
	query := `
		INSERT INTO schedule_templates (timing, food_formula_id, custom_food_name, quantity_ml, calories,
			protein_g, carbs_g, fat_g, description)
		VALUES (:timing, :food_formula_id, :custom_food_name, :quantity_ml, :calories,
			:protein_g, :carbs_g, :fat_g, :description)
	`
	err := withRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, fromTemplate(e))
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		e.ID = id
		return nil
	})
	if err != nil {
		return templateWriteError("create template entry", err)
	}
	return r.reload(ctx, e)
}

// Update replaces all editable fields of a template entry
func (r *TemplateRepository) Update(ctx context.Context, e *domain.ScheduleTemplateEntry) error {
	query := `
		UPDATE schedule_templates SET timing = :timing, food_formula_id = :food_formula_id,
			custom_food_name = :custom_food_name, quantity_ml = :quantity_ml, calories = :calories,
			protein_g = :protein_g, carbs_g = :carbs_g, fat_g = :fat_g, description = :description
		WHERE id = :id
	`
	err := withRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, fromTemplate(e))
		if err != nil {
			return err
		}
		return expectAffected(result)
	})
	if err != nil {
		return templateWriteError(fmt.Sprintf("update template entry %d", e.ID), err)
	}
	return r.reload(ctx, e)
}

// Delete removes a template entry together with the feed items generated from it
func (r *TemplateRepository) Delete(ctx context.Context, id int64) error {
	err := withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, "DELETE FROM schedule_templates WHERE id = ?", id)
		if err != nil {
			return err
		}
		return expectAffected(result)
	})
	if err != nil {
		return fmt.Errorf("delete template entry %d: %w", id, err)
	}
	return nil
}

func (r *TemplateRepository) reload(ctx context.Context, e *domain.ScheduleTemplateEntry) error {
	stored, err := r.Get(ctx, e.ID)
	if err != nil {
		return err
	}
	*e = *stored
	return nil
}

func listTemplates(ctx context.Context, q sqlx.QueryerContext) ([]domain.ScheduleTemplateEntry, error) {
	var rows []templateSQL
	if err := sqlx.SelectContext(ctx, q, &rows, templateSelect+" ORDER BY t.timing, t.id"); err != nil {
		return nil, fmt.Errorf("list template entries: %w", err)
	}
	res := make([]domain.ScheduleTemplateEntry, 0, len(rows))
	for _, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

func templateWriteError(op string, err error) error {
	if isForeignKeyError(err) {
		return fmt.Errorf("%s: food formula %w", op, ErrReference)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func fromTemplate(e *domain.ScheduleTemplateEntry) *templateSQL {
	return &templateSQL{
		ID:             e.ID,
		Timing:         e.Timing.String(),
		FoodFormulaID:  nullID(e.FoodFormulaID),
		CustomFoodName: e.CustomFoodName,
		QuantityML:     nullInt(e.QuantityML),
		Calories:       nullInt(e.Calories),
		ProteinG:       nullFloat(e.ProteinG),
		CarbsG:         nullFloat(e.CarbsG),
		FatG:           nullFloat(e.FatG),
		Description:    e.Description,
	}
}

func (s templateSQL) toDomain() (domain.ScheduleTemplateEntry, error) {
	timing, err := domain.ParseTimeOfDay(s.Timing)
	if err != nil {
		return domain.ScheduleTemplateEntry{}, fmt.Errorf("template entry %d: %w", s.ID, err)
	}
	res := domain.ScheduleTemplateEntry{
		ID:             s.ID,
		Timing:         timing,
		FoodFormulaID:  idPtr(s.FoodFormulaID),
		CustomFoodName: s.CustomFoodName,
		Nutrients: domain.Nutrients{
			QuantityML: intPtr(s.QuantityML),
			Calories:   intPtr(s.Calories),
			ProteinG:   floatPtr(s.ProteinG),
			CarbsG:     floatPtr(s.CarbsG),
			FatG:       floatPtr(s.FatG),
		},
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	var formula *domain.FoodFormula
	if s.FormulaName != "" {
		formula = &domain.FoodFormula{Name: s.FormulaName}
	}
	res.DisplayName = tracker.DisplayName(res, formula)
	return res, nil
}
