package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackynews/hackynews/pkg/domain"
	"github.com/hackynews/hackynews/pkg/repository"
)

func setupTestAdapter(t *testing.T) *RepositoryAdapter {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_txlock=immediate&_pragma=busy_timeout(5000)"
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	ctx := context.Background()
	for _, item := range sampleItems() {
		require.NoError(t, repos.Item.UpsertItem(ctx, &item))
	}
	require.NoError(t, repos.Setting.SaveSyncRun(ctx, domain.SyncRun{Requested: 2, Processed: 2, Stored: 2,
		StartedAt: time.Now()}))
	return NewRepositoryAdapter(repos)
}

func TestRepositoryAdapter(t *testing.T) {
	adapter := setupTestAdapter(t)
	ctx := context.Background()

	items, err := adapter.ListItems(ctx, domain.ItemFilter{Category: "show hn"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)

	items, err = adapter.SearchItems(ctx, "RUST", "", 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Rust 2.0", items[0].Title)

	counts, err := adapter.CategoryCounts(ctx)
	require.NoError(t, err)
	assert.Len(t, counts, 2)

	stats, err := adapter.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalStories)

	top, err := adapter.TopItems(ctx, domain.TopAllTime, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 50, top[0].Score)

	titles, err := adapter.TitleSuggestions(ctx, "sho", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Show HN: Tool"}, titles)

	run, err := adapter.LastSyncRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, 2, run.Stored)
}
