package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackynews/hackynews/pkg/domain"
)

func TestRunMigrations_AddCategoryColumn(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "legacy.db")
	ctx := context.Background()

	// legacy schema without category and updated_at columns
	db, err := sqlx.Open("sqlite", dbFile)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `
		CREATE TABLE stories (
			id INTEGER PRIMARY KEY,
			title TEXT,
			url TEXT,
			"by" TEXT,
			time INTEGER,
			score INTEGER,
			descendants INTEGER,
			type TEXT
		);
		INSERT INTO stories (id, title, url, "by", time, score) VALUES (1, 'Old story', NULL, 'pg', 100, NULL);
		INSERT INTO stories (id, title) VALUES (2, 'Another old story');
	`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pragma_table_info('stories') WHERE name = 'category'`))
	assert.Equal(t, 0, count, "category column should not exist before migration")
	require.NoError(t, db.Close())

	// open through repositories, migrations run on startup
	repos, err := NewRepositories(ctx, Config{DSN: dbFile})
	require.NoError(t, err)
	defer repos.Close()

	require.NoError(t, repos.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM pragma_table_info('stories') WHERE name IN ('category', 'updated_at')`))
	assert.Equal(t, 2, count, "columns should exist after migration")

	// old rows survive with the sentinel category and nulls read as zero values
	got, err := repos.Item.GetItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Old story", got.Title)
	assert.Empty(t, got.URL)
	assert.Equal(t, "pg", got.By)
	assert.Equal(t, 0, got.Score)
	assert.Equal(t, domain.Uncategorized, got.Category)

	// upsert onto a migrated row
	require.NoError(t, repos.Item.UpsertItem(ctx, &domain.ClassifiedItem{
		Item: domain.Item{ID: 2, Title: "Another old story", Score: 12}, Category: "Data"}))
	got, err = repos.Item.GetItem(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Category("Data"), got.Category)
	assert.Equal(t, 12, got.Score)

	stats, err := repos.Item.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalStories)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := sqlx.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, initSchema(ctx, db))

	// run migrations twice - should be idempotent
	require.NoError(t, runMigrations(ctx, db))
	require.NoError(t, runMigrations(ctx, db), "migrations should be idempotent")

	var indexCount int
	err = db.GetContext(ctx, &indexCount,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name LIKE 'idx_stories_%'`)
	require.NoError(t, err)
	assert.Equal(t, 4, indexCount)
}

func TestSplitMigrationStatements(t *testing.T) {
	in := `
-- comment line
CREATE INDEX IF NOT EXISTS a ON t(x);

UPDATE t
SET x = 1
WHERE y = 2;
-- trailing comment
SELECT 1`
	stmts := splitMigrationStatements(in)
	require.Len(t, stmts, 3)
	assert.Equal(t, "CREATE INDEX IF NOT EXISTS a ON t(x);", stmts[0])
	assert.Equal(t, "UPDATE t\nSET x = 1\nWHERE y = 2;", stmts[1])
	assert.Equal(t, "SELECT 1", stmts[2])

	assert.Empty(t, splitMigrationStatements("-- nothing\n\n"))
}
