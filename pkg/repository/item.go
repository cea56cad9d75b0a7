package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/hackynews/hackynews/pkg/domain"
)

// default and max limits for read queries
const (
	DefaultListLimit    = 30
	DefaultSearchLimit  = 50
	DefaultTopLimit     = 15
	DefaultSuggestLimit = 7
	MaxLimit            = 500
)

// ErrItemNotFound returned by GetItem for unknown ids
var ErrItemNotFound = errors.New("item not found")

// ErrMissingTitle returned by UpsertItem for items without a title, such items are never stored
var ErrMissingTitle = errors.New("item has no title")

// ItemRepository handles story-related database operations
type ItemRepository struct {
	db *sqlx.DB
}

// itemSQL represents a stored story for SQL operations
type itemSQL struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	URL         string `db:"url"`
	By          string `db:"by"`
	Time        int64  `db:"time"`
	Score       int    `db:"score"`
	Descendants int    `db:"descendants"`
	Type        string `db:"type"`
	Category    string `db:"category"`
}

// nullable columns are coalesced, rows written by older versions may have NULLs anywhere
var itemColumns = []string{
	"id",
	"COALESCE(title, '') AS title",
	"COALESCE(url, '') AS url",
	`COALESCE("by", '') AS "by"`,
	"COALESCE(time, 0) AS time",
	"COALESCE(score, 0) AS score",
	"COALESCE(descendants, 0) AS descendants",
	"COALESCE(type, '') AS type",
	"COALESCE(NULLIF(category, ''), 'Uncategorized') AS category",
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Ping verifies the database connection
func (r *ItemRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// UpsertItem inserts a story or overwrites all fields of the existing one with the same id.
// Single statement, so a row is never observed half-written. Lock errors are retried.
func (r *ItemRepository) UpsertItem(ctx context.Context, item *domain.ClassifiedItem) error {
	if item == nil {
		return fmt.Errorf("upsert item: nil item")
	}
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("upsert item %d: %w", item.ID, ErrMissingTitle)
	}

	row := itemSQL{
		ID:          item.ID,
		Title:       item.Title,
		URL:         item.URL,
		By:          item.By,
		Time:        item.Time,
		Score:       item.Score,
		Descendants: item.Descendants,
		Type:        item.Type,
		Category:    string(item.Category),
	}
	if row.Category == "" {
		row.Category = string(domain.Uncategorized)
	}

	query := `
		INSERT INTO stories (id, title, url, "by", time, score, descendants, type, category, updated_at)
		VALUES (:id, :title, :url, :by, :time, :score, :descendants, :type, :category, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			url = excluded.url,
			"by" = excluded."by",
			time = excluded.time,
			score = excluded.score,
			descendants = excluded.descendants,
			type = excluded.type,
			category = excluded.category,
			updated_at = CURRENT_TIMESTAMP
	`

	return lockRetrier().Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("upsert item %d: %w", item.ID, err)}
		}
		return nil
	}, errCritical)
}

// GetItem retrieves a story by id
func (r *ItemRepository) GetItem(ctx context.Context, id int64) (*domain.ClassifiedItem, error) {
	query, args, err := sq.Select(itemColumns...).From("stories").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row itemSQL
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get item %d: %w", id, ErrItemNotFound)
		}
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	res := row.toDomain()
	return &res, nil
}

// ListItems returns stories newest first, optionally limited to a category (case-insensitive).
// Empty category or "all" means no filter.
func (r *ItemRepository) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.ClassifiedItem, error) {
	qb := sq.Select(itemColumns...).From("stories").
		OrderBy("time DESC", "id DESC").
		Limit(uint64(limitOrDefault(filter.Limit, DefaultListLimit))) //nolint:gosec // limit is positive
	qb = withCategory(qb, filter.Category)
	return r.selectItems(ctx, qb, "list items")
}

// SearchItems returns stories whose title, url or author contain term, case-insensitive.
// Empty term returns no stories.
func (r *ItemRepository) SearchItems(ctx context.Context, term, category string, limit int) ([]domain.ClassifiedItem, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.ClassifiedItem{}, nil
	}

	pattern := "%" + escapeLike(term) + "%"
	qb := sq.Select(itemColumns...).From("stories").
		Where(sq.Or{
			sq.Expr(`title LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`url LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`"by" LIKE ? ESCAPE '\'`, pattern),
		}).
		OrderBy("time DESC", "id DESC").
		Limit(uint64(limitOrDefault(limit, DefaultSearchLimit))) //nolint:gosec // limit is positive
	qb = withCategory(qb, category)
	return r.selectItems(ctx, qb, "search items")
}

// CategoryCounts returns number of stories per category, largest first
func (r *ItemRepository) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	query, args, err := sq.Select("COALESCE(NULLIF(category, ''), 'Uncategorized') AS name", "COUNT(*) AS count").
		From("stories").
		GroupBy("name").
		OrderBy("count DESC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	res := []domain.CategoryCount{}
	if err := r.db.SelectContext(ctx, &res, query, args...); err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}
	return res, nil
}

// Stats returns total number of stories and per-category counts
func (r *ItemRepository) Stats(ctx context.Context) (domain.Stats, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM stories"); err != nil {
		return domain.Stats{}, fmt.Errorf("count stories: %w", err)
	}
	counts, err := r.CategoryCounts(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{TotalStories: total, Categories: counts}, nil
}

// TopItems returns top stories. TopRecent means stories with score above 10, newest first;
// TopAllTime means highest score first.
func (r *ItemRepository) TopItems(ctx context.Context, scope domain.TopScope, limit int) ([]domain.ClassifiedItem, error) {
	qb := sq.Select(itemColumns...).From("stories").
		Limit(uint64(limitOrDefault(limit, DefaultTopLimit))) //nolint:gosec // limit is positive

	switch scope {
	case domain.TopRecent:
		qb = qb.Where(sq.Gt{"score": 10}).OrderBy("time DESC", "score DESC")
	case domain.TopAllTime:
		qb = qb.Where(sq.NotEq{"score": nil}).OrderBy("score DESC", "time DESC")
	default:
		return nil, fmt.Errorf("unknown top scope %q", scope)
	}
	return r.selectItems(ctx, qb, "top items")
}

// TitleSuggestions returns distinct titles starting with prefix, case-insensitive, most recent first.
// Empty prefix returns no titles.
func (r *ItemRepository) TitleSuggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []string{}, nil
	}

	query, args, err := sq.Select("title").From("stories").
		Where(sq.Expr(`title LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%")).
		GroupBy("title").
		OrderBy("MAX(time) DESC").
		Limit(uint64(limitOrDefault(limit, DefaultSuggestLimit))). //nolint:gosec // limit is positive
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	res := []string{}
	if err := r.db.SelectContext(ctx, &res, query, args...); err != nil {
		return nil, fmt.Errorf("title suggestions: %w", err)
	}
	return res, nil
}

// ItemTitles returns a page of stories with id greater than afterID, ordered by id.
// Used to walk the whole table for reclassification.
func (r *ItemRepository) ItemTitles(ctx context.Context, afterID int64, limit int) ([]domain.ClassifiedItem, error) {
	qb := sq.Select(itemColumns...).From("stories").
		Where(sq.Gt{"id": afterID}).
		OrderBy("id ASC").
		Limit(uint64(limitOrDefault(limit, MaxLimit))) //nolint:gosec // limit is positive
	return r.selectItems(ctx, qb, "item titles")
}

// UpdateCategory sets category of a stored story if its title is still the classified one.
// Returns false when the row is gone or its title was changed by a concurrent upsert.
func (r *ItemRepository) UpdateCategory(ctx context.Context, id int64, title string, category domain.Category) (bool, error) {
	if category == "" {
		category = domain.Uncategorized
	}
	var updated bool
	err := lockRetrier().Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"UPDATE stories SET category = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND title = ?",
			string(category), id, title)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("update category of %d: %w", id, err)}
		}
		n, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("update category of %d: %w", id, err)}
		}
		updated = n > 0
		return nil
	}, errCritical)
	return updated, err
}

func (r *ItemRepository) selectItems(ctx context.Context, qb sq.SelectBuilder, op string) ([]domain.ClassifiedItem, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []itemSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := make([]domain.ClassifiedItem, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

func (s itemSQL) toDomain() domain.ClassifiedItem {
	return domain.ClassifiedItem{
		Item: domain.Item{
			ID:          s.ID,
			Title:       s.Title,
			URL:         s.URL,
			By:          s.By,
			Time:        s.Time,
			Score:       s.Score,
			Descendants: s.Descendants,
			Type:        s.Type,
		},
		Category: domain.Category(s.Category),
	}
}

// withCategory adds case-insensitive category filter, empty or "all" means no filter
func withCategory(qb sq.SelectBuilder, category string) sq.SelectBuilder {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, "all") {
		return qb
	}
	return qb.Where(sq.Expr("category = ? COLLATE NOCASE", category))
}

func limitOrDefault(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
