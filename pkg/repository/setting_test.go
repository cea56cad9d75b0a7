package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackynews/hackynews/pkg/domain"
)

func TestSettingRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	val, err := repos.Setting.GetSetting(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, repos.Setting.SetSetting(ctx, "k", "v1"))
	require.NoError(t, repos.Setting.SetSetting(ctx, "k", "v2"))
	val, err = repos.Setting.GetSetting(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", val)
}

func TestSettingRepository_SyncRun(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	run, err := repos.Setting.LastSyncRun(ctx)
	require.NoError(t, err)
	assert.Nil(t, run)

	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	saved := domain.SyncRun{Requested: 50, Processed: 48, Stored: 45, Skipped: 3, Failed: 2, StartedAt: started,
		Duration: 3 * time.Second}
	require.NoError(t, repos.Setting.SaveSyncRun(ctx, saved))

	run, err = repos.Setting.LastSyncRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, saved.Stored, run.Stored)
	assert.Equal(t, saved.Processed, run.Processed)
	assert.Equal(t, saved.Duration, run.Duration)
	assert.True(t, started.Equal(run.StartedAt))

	require.NoError(t, repos.Setting.SetSetting(ctx, lastSyncKey, "{broken"))
	_, err = repos.Setting.LastSyncRun(ctx)
	require.Error(t, err)
}
