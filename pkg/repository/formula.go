package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/tubefeed/pkg/domain"
)

// FormulaRepository handles food formula library operations
type FormulaRepository struct {
	db *sqlx.DB
}

// formulaSQL represents a food formula for SQL operations
type formulaSQL struct {
	ID                 int64           `db:"id"`
	Name               string          `db:"name"`
	DefaultQuantityML  sql.NullInt64   `db:"default_quantity_ml"`
	DefaultCalories    sql.NullInt64   `db:"default_calories"`
	DefaultProteinG    sql.NullFloat64 `db:"default_protein_g"`
	DefaultCarbsG      sql.NullFloat64 `db:"default_carbs_g"`
	DefaultFatG        sql.NullFloat64 `db:"default_fat_g"`
	DefaultDescription string          `db:"default_description"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

// NewFormulaRepository creates a new formula repository
func NewFormulaRepository(db *sqlx.DB) *FormulaRepository {
	return &FormulaRepository{db: db}
}

// List returns all formulas ordered by name
func (r *FormulaRepository) List(ctx context.Context) ([]domain.FoodFormula, error) {
	var rows []formulaSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM food_formulas ORDER BY name"); err != nil {
		return nil, fmt.Errorf("list formulas: %w", err)
	}
	res := make([]domain.FoodFormula, len(rows))
	for i := range rows {
		res[i] = rows[i].toDomain()
	}
	return res, nil
}

// Get returns a formula by id
func (r *FormulaRepository) Get(ctx context.Context, id int64) (*domain.FoodFormula, error) {
	return getFormula(ctx, r.db, id)
}

// Create inserts a new formula and sets its id and timestamps
func (r *FormulaRepository) Create(ctx context.Context, f *domain.FoodFormula) error {
	query := `
		INSERT INTO food_formulas (name, default_quantity_ml, default_calories, default_protein_g,
			default_carbs_g, default_fat_g, default_description)
		VALUES (:name, :default_quantity_ml, :default_calories, :default_protein_g,
			:default_carbs_g, :default_fat_g, :default_description)
	`
	err := withRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, fromFormula(f))
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		f.ID = id
		return nil
	})
	if err != nil {
		return formulaWriteError("create formula", err)
	}

	stored, err := r.Get(ctx, f.ID)
	if err != nil {
		return err
	}
	*f = *stored
	return nil
}

// Update replaces all editable fields of a formula
func (r *FormulaRepository) Update(ctx context.Context, f *domain.FoodFormula) error {
	query := `
		UPDATE food_formulas SET name = :name, default_quantity_ml = :default_quantity_ml,
			default_calories = :default_calories, default_protein_g = :default_protein_g,
			default_carbs_g = :default_carbs_g, default_fat_g = :default_fat_g,
			default_description = :default_description
		WHERE id = :id
	`
	err := withRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, fromFormula(f))
		if err != nil {
			return err
		}
		return expectAffected(result)
	})
	if err != nil {
		return formulaWriteError("update formula", err)
	}

	stored, err := r.Get(ctx, f.ID)
	if err != nil {
		return err
	}
	*f = *stored
	return nil
}

// Delete removes a formula. Template entries using it are removed together with their generated
// feed items, ad-hoc items keep their values and lose the formula link.
func (r *FormulaRepository) Delete(ctx context.Context, id int64) error {
	err := withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, "DELETE FROM food_formulas WHERE id = ?", id)
		if err != nil {
			return err
		}
		return expectAffected(result)
	})
	if err != nil {
		return fmt.Errorf("delete formula %d: %w", id, err)
	}
	return nil
}

func getFormula(ctx context.Context, q sqlx.QueryerContext, id int64) (*domain.FoodFormula, error) {
	var row formulaSQL
	err := sqlx.GetContext(ctx, q, &row, "SELECT * FROM food_formulas WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("formula %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get formula %d: %w", id, err)
	}
	res := row.toDomain()
	return &res, nil
}

func formulaWriteError(op string, err error) error {
	if isUniqueError(err) {
		return fmt.Errorf("%s: formula name %w", op, ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func fromFormula(f *domain.FoodFormula) *formulaSQL {
	return &formulaSQL{
		ID:                 f.ID,
		Name:               f.Name,
		DefaultQuantityML:  nullInt(f.DefaultQuantityML),
		DefaultCalories:    nullInt(f.DefaultCalories),
		DefaultProteinG:    nullFloat(f.DefaultProteinG),
		DefaultCarbsG:      nullFloat(f.DefaultCarbsG),
		DefaultFatG:        nullFloat(f.DefaultFatG),
		DefaultDescription: f.DefaultDescription,
	}
}

func (s formulaSQL) toDomain() domain.FoodFormula {
	return domain.FoodFormula{
		ID:                 s.ID,
		Name:               s.Name,
		DefaultQuantityML:  intPtr(s.DefaultQuantityML),
		DefaultCalories:    intPtr(s.DefaultCalories),
		DefaultProteinG:    floatPtr(s.DefaultProteinG),
		DefaultCarbsG:      floatPtr(s.DefaultCarbsG),
		DefaultFatG:        floatPtr(s.DefaultFatG),
		DefaultDescription: s.DefaultDescription,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
