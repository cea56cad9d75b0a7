package server

import (
	"context"

	"github.com/hackynews/hackynews/pkg/domain"
	"github.com/hackynews/hackynews/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// ListItems returns recent items, filtered by category if set
func (r *RepositoryAdapter) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.ClassifiedItem, error) {
	return r.repos.Item.ListItems(ctx, filter)
}

// SearchItems returns items matching term in title, url or author
func (r *RepositoryAdapter) SearchItems(ctx context.Context, term, category string, limit int) ([]domain.ClassifiedItem, error) {
	return r.repos.Item.SearchItems(ctx, term, category, limit)
}

// CategoryCounts returns number of items per category
func (r *RepositoryAdapter) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	return r.repos.Item.CategoryCounts(ctx)
}

// Stats returns total and per-category counts
func (r *RepositoryAdapter) Stats(ctx context.Context) (domain.Stats, error) {
	return r.repos.Item.Stats(ctx)
}

// TopItems returns top items for the scope
func (r *RepositoryAdapter) TopItems(ctx context.Context, scope domain.TopScope, limit int) ([]domain.ClassifiedItem, error) {
	return r.repos.Item.TopItems(ctx, scope, limit)
}

// TitleSuggestions returns distinct titles starting with prefix
func (r *RepositoryAdapter) TitleSuggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	return r.repos.Item.TitleSuggestions(ctx, prefix, limit)
}

// LastSyncRun returns summary of the last completed sync, nil if none
func (r *RepositoryAdapter) LastSyncRun(ctx context.Context) (*domain.SyncRun, error) {
	return r.repos.Setting.LastSyncRun(ctx)
}
