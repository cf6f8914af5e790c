package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/tubefeed/pkg/domain"
	"github.com/umputun/tubefeed/pkg/tracker"
)

// FeedItemRepository handles daily feed items
type FeedItemRepository struct {
	db *sqlx.DB
}

// feedItemSQL represents a feed item for SQL operations
type feedItemSQL struct {
	ID               int64           `db:"id"`
	SourceTemplateID sql.NullInt64   `db:"source_template_id"`
	SourceFormulaID  sql.NullInt64   `db:"source_formula_id"`
	ScheduledDate    string          `db:"scheduled_date"`
	Timing           string          `db:"timing"`
	FoodName         string          `db:"food_name"`
	QuantityML       sql.NullInt64   `db:"quantity_ml"`
	Calories         sql.NullInt64   `db:"calories"`
	ProteinG         sql.NullFloat64 `db:"protein_g"`
	CarbsG           sql.NullFloat64 `db:"carbs_g"`
	FatG             sql.NullFloat64 `db:"fat_g"`
	Description      string          `db:"description"`
	Image            string          `db:"image"`
	Status           string          `db:"status"`
	AdministeredAt   *time.Time      `db:"administered_at"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

const feedItemInsert = `
	INSERT INTO feed_items (source_template_id, source_formula_id, scheduled_date, timing, food_name,
		quantity_ml, calories, protein_g, carbs_g, fat_g, description, image, status, administered_at)
	VALUES (:source_template_id, :source_formula_id, :scheduled_date, :timing, :food_name,
		:quantity_ml, :calories, :protein_g, :carbs_g, :fat_g, :description, :image, :status, :administered_at)
`

// NewFeedItemRepository creates a new feed item repository
func NewFeedItemRepository(db *sqlx.DB) *FeedItemRepository {
	return &FeedItemRepository{db: db}
}

// ListByDate returns items scheduled for date ordered by timing. If the date has no items yet,
// they are generated from the schedule template first.
func (r *FeedItemRepository) ListByDate(ctx context.Context, date domain.Date) ([]domain.FeedItem, error) {
	if err := r.syncFromTemplate(ctx, date); err != nil {
		return nil, fmt.Errorf("sync %s from template: %w", date, err)
	}

	var rows []feedItemSQL
	query := "SELECT * FROM feed_items WHERE scheduled_date = ? ORDER BY timing, id"
	if err := r.db.SelectContext(ctx, &rows, query, date.String()); err != nil {
		return nil, fmt.Errorf("list feed items for %s: %w", date, err)
	}

	res := make([]domain.FeedItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

// syncFromTemplate creates one pending item per template entry if date has no items at all.
// Existence is re-checked inside the transaction so concurrent requests for the same date generate once.
func (r *FeedItemRepository) syncFromTemplate(ctx context.Context, date domain.Date) error {
	return withRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		var count int
		if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM feed_items WHERE scheduled_date = ?", date.String()); err != nil {
			return fmt.Errorf("count items: %w", err)
		}
		if count > 0 {
			return nil
		}

		entries, err := listTemplates(ctx, tx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		formulas := map[int64]*domain.FoodFormula{}
		for _, e := range entries {
			if e.FoodFormulaID == nil {
				continue
			}
			if _, ok := formulas[*e.FoodFormulaID]; ok {
				continue
			}
			f, err := getFormula(ctx, tx, *e.FoodFormulaID)
			if err != nil {
				return err
			}
			formulas[*e.FoodFormulaID] = f
		}

		for _, e := range entries {
			var f *domain.FoodFormula
			if e.FoodFormulaID != nil {
				f = formulas[*e.FoodFormulaID]
			}
			item := tracker.ItemFromTemplate(e, f, date)
			if _, err := tx.NamedExecContext(ctx, feedItemInsert, fromFeedItem(&item)); err != nil {
				return fmt.Errorf("insert item for template entry %d: %w", e.ID, err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		lgr.Printf("[DEBUG] generated %d feed items for %s from template", len(entries), date)
		return nil
	})
}

// Get returns a feed item by id
func (r *FeedItemRepository) Get(ctx context.Context, id int64) (*domain.FeedItem, error) {
	return getFeedItem(ctx, r.db, id)
}

// Create inserts an ad-hoc item and sets its id and timestamps
func (r *FeedItemRepository) Create(ctx context.Context, item *domain.FeedItem) error {
	if item.Status == "" {
		item.Status = domain.StatusPending
	}
	err := withRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, feedItemInsert, fromFeedItem(item))
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		item.ID = id
		return nil
	})
	if err != nil {
		return feedItemWriteError("create feed item", err)
	}
	return r.reload(ctx, item)
}

// Update replaces editable content fields of an item. Status is changed only by SetStatus.
func (r *FeedItemRepository) Update(ctx context.Context, item *domain.FeedItem) error {
	query := `
		UPDATE feed_items SET source_formula_id = :source_formula_id, scheduled_date = :scheduled_date,
			timing = :timing, food_name = :food_name, quantity_ml = :quantity_ml, calories = :calories,
			protein_g = :protein_g, carbs_g = :carbs_g, fat_g = :fat_g, description = :description,
			image = :image
		WHERE id = :id
	`
	err := withRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, fromFeedItem(item))
		if err != nil {
			return err
		}
		return expectAffected(result)
	})
	if err != nil {
		return feedItemWriteError(fmt.Sprintf("update feed item %d", item.ID), err)
	}
	return r.reload(ctx, item)
}

// Delete removes a feed item
func (r *FeedItemRepository) Delete(ctx context.Context, id int64) error {
	err := withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, "DELETE FROM feed_items WHERE id = ?", id)
		if err != nil {
			return err
		}
		return expectAffected(result)
	})
	if err != nil {
		return fmt.Errorf("delete feed item %d: %w", id, err)
	}
	return nil
}

// SetStatus moves an item to a new status following the status machine and returns the updated item.
// Returns ErrNotFound for unknown id and tracker.ErrInvalidTransition for disallowed changes.
func (r *FeedItemRepository) SetStatus(ctx context.Context, id int64, to domain.Status, now time.Time) (*domain.FeedItem, error) {
	var res *domain.FeedItem
	err := withRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		item, err := getFeedItem(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := tracker.Apply(item, to, now.UTC()); err != nil {
			return err
		}

		query := "UPDATE feed_items SET status = ?, administered_at = ? WHERE id = ?"
		if _, err := tx.ExecContext(ctx, query, string(item.Status), item.AdministeredAt, id); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		res = item
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("set feed item %d %s: %w", id, to, err)
	}
	return r.Get(ctx, res.ID)
}

// ImageNames returns names of all images referenced by feed items
func (r *FeedItemRepository) ImageNames(ctx context.Context) ([]string, error) {
	var res []string
	if err := r.db.SelectContext(ctx, &res, "SELECT DISTINCT image FROM feed_items WHERE image != ''"); err != nil {
		return nil, fmt.Errorf("list feed item images: %w", err)
	}
	return res, nil
}

func (r *FeedItemRepository) reload(ctx context.Context, item *domain.FeedItem) error {
	stored, err := r.Get(ctx, item.ID)
	if err != nil {
		return err
	}
	*item = *stored
	return nil
}

func getFeedItem(ctx context.Context, q sqlx.QueryerContext, id int64) (*domain.FeedItem, error) {
	var row feedItemSQL
	err := sqlx.GetContext(ctx, q, &row, "SELECT * FROM feed_items WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("feed item %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get feed item %d: %w", id, err)
	}
	item, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func feedItemWriteError(op string, err error) error {
	if isForeignKeyError(err) {
		return fmt.Errorf("%s: source %w", op, ErrReference)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func fromFeedItem(item *domain.FeedItem) *feedItemSQL {
	return &feedItemSQL{
		ID:               item.ID,
		SourceTemplateID: nullID(item.SourceTemplateID),
		SourceFormulaID:  nullID(item.SourceFormulaID),
		ScheduledDate:    item.ScheduledDate.String(),
		Timing:           item.Timing.String(),
		FoodName:         item.FoodName,
		QuantityML:       nullInt(item.QuantityML),
		Calories:         nullInt(item.Calories),
		ProteinG:         nullFloat(item.ProteinG),
		CarbsG:           nullFloat(item.CarbsG),
		FatG:             nullFloat(item.FatG),
		Description:      item.Description,
		Image:            item.Image,
		Status:           string(item.Status),
		AdministeredAt:   item.AdministeredAt,
	}
}

func (s feedItemSQL) toDomain() (domain.FeedItem, error) {
	date, err := domain.ParseDate(s.ScheduledDate)
	if err != nil {
		return domain.FeedItem{}, fmt.Errorf("feed item %d: %w", s.ID, err)
	}
	timing, err := domain.ParseTimeOfDay(s.Timing)
	if err != nil {
		return domain.FeedItem{}, fmt.Errorf("feed item %d: %w", s.ID, err)
	}
	return domain.FeedItem{
		ID:               s.ID,
		SourceTemplateID: idPtr(s.SourceTemplateID),
		SourceFormulaID:  idPtr(s.SourceFormulaID),
		ScheduledDate:    date,
		Timing:           timing,
		FoodName:         s.FoodName,
		Nutrients: domain.Nutrients{
			QuantityML: intPtr(s.QuantityML),
			Calories:   intPtr(s.Calories),
			ProteinG:   floatPtr(s.ProteinG),
			CarbsG:     floatPtr(s.CarbsG),
			FatG:       floatPtr(s.FatG),
		},
		Description:    s.Description,
		Image:          s.Image,
		Status:         domain.Status(s.Status),
		AdministeredAt: s.AdministeredAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}, nil
}
