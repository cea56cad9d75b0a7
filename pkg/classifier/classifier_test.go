package classifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackynews/hackynews/pkg/category"
	"github.com/hackynews/hackynews/pkg/classifier/mocks"
	"github.com/hackynews/hackynews/pkg/domain"
)

func TestService_Classify(t *testing.T) {
	fallback := &mocks.FallbackClassifierMock{
		ClassifyFallbackFunc: func(ctx context.Context, title string) domain.Category {
			return category.ScienceResearch
		},
	}
	svc := New(fallback)

	t.Run("rule wins, fallback not called", func(t *testing.T) {
		c, src := svc.Decide(context.Background(), "Show HN: I built a Rust compiler")
		assert.Equal(t, category.ShowHN, c)
		assert.Equal(t, SourceRule, src)
		assert.Empty(t, fallback.ClassifyFallbackCalls())
	})

	t.Run("no rule, fallback used", func(t *testing.T) {
		c, src := svc.Decide(context.Background(), "My cat's daily schedule")
		assert.Equal(t, category.ScienceResearch, c)
		assert.Equal(t, SourceFallback, src)
		require.Len(t, fallback.ClassifyFallbackCalls(), 1)
		assert.Equal(t, "My cat's daily schedule", fallback.ClassifyFallbackCalls()[0].Title)
	})

	t.Run("empty title short-circuits", func(t *testing.T) {
		before := len(fallback.ClassifyFallbackCalls())
		assert.Equal(t, domain.Uncategorized, svc.Classify(context.Background(), ""))
		assert.Equal(t, domain.Uncategorized, svc.Classify(context.Background(), "   "))
		assert.Len(t, fallback.ClassifyFallbackCalls(), before)
	})
}

func TestService_ClassifyWithoutFallback(t *testing.T) {
	svc := New(nil)
	assert.Equal(t, category.AIML, svc.Classify(context.Background(), "How AI changes everything"))

	c, src := svc.Decide(context.Background(), "My cat's daily schedule")
	assert.Equal(t, domain.Uncategorized, c)
	assert.Equal(t, SourceDefault, src)
}

func TestService_FallbackFailures(t *testing.T) {
	tests := []struct {
		name string
		fn   func(ctx context.Context, title string) domain.Category
	}{
		{"sentinel", func(context.Context, string) domain.Category { return domain.Uncategorized }},
		{"empty", func(context.Context, string) domain.Category { return "" }},
		{"panic", func(context.Context, string) domain.Category { panic("model crashed") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(&mocks.FallbackClassifierMock{ClassifyFallbackFunc: tt.fn})
			c, src := svc.Decide(context.Background(), "My cat's daily schedule")
			assert.Equal(t, domain.Uncategorized, c)
			assert.Equal(t, SourceDefault, src)
		})
	}
}

func TestService_Deterministic(t *testing.T) {
	svc := New(nil)
	titles := []string{"Who is hiring? (March)", "Kubernetes at scale", "PostgreSQL 17 released", "Nothing here"}
	for _, title := range titles {
		first := svc.Classify(context.Background(), title)
		for range 5 {
			assert.Equal(t, first, svc.Classify(context.Background(), title))
		}
	}
}

func TestFallback_ClassifyFallback(t *testing.T) {
	t.Run("top label taken", func(t *testing.T) {
		ranker := &mocks.RankerMock{RankFunc: func(ctx context.Context, text string, labels []string) ([]string, error) {
			return []string{"Hardware", "Business"}, nil
		}}
		f := NewFallback(ranker, time.Second)
		assert.Equal(t, category.Hardware, f.ClassifyFallback(context.Background(), "A new kind of toaster"))

		require.Len(t, ranker.RankCalls(), 1)
		assert.Equal(t, "A new kind of toaster", ranker.RankCalls()[0].Text)
		assert.Equal(t, category.Labels(), ranker.RankCalls()[0].Labels)
	})

	t.Run("label case-insensitive", func(t *testing.T) {
		ranker := &mocks.RankerMock{RankFunc: func(context.Context, string, []string) ([]string, error) {
			return []string{"business"}, nil
		}}
		assert.Equal(t, category.Business, NewFallback(ranker, 0).ClassifyFallback(context.Background(), "x"))
	})

	t.Run("error", func(t *testing.T) {
		ranker := &mocks.RankerMock{RankFunc: func(context.Context, string, []string) ([]string, error) {
			return nil, errors.New("model unavailable")
		}}
		assert.Equal(t, domain.Uncategorized, NewFallback(ranker, time.Second).ClassifyFallback(context.Background(), "x"))
	})

	t.Run("empty result", func(t *testing.T) {
		ranker := &mocks.RankerMock{RankFunc: func(context.Context, string, []string) ([]string, error) {
			return []string{}, nil
		}}
		assert.Equal(t, domain.Uncategorized, NewFallback(ranker, time.Second).ClassifyFallback(context.Background(), "x"))
	})

	t.Run("label outside candidates", func(t *testing.T) {
		ranker := &mocks.RankerMock{RankFunc: func(context.Context, string, []string) ([]string, error) {
			return []string{"DevOps"}, nil // known category, but not a fallback candidate
		}}
		assert.Equal(t, domain.Uncategorized, NewFallback(ranker, time.Second).ClassifyFallback(context.Background(), "x"))

		ranker.RankFunc = func(context.Context, string, []string) ([]string, error) { return []string{"Tech"}, nil }
		assert.Equal(t, domain.Uncategorized, NewFallback(ranker, time.Second).ClassifyFallback(context.Background(), "x"))
	})

	t.Run("nil ranker", func(t *testing.T) {
		assert.Equal(t, domain.Uncategorized, NewFallback(nil, time.Second).ClassifyFallback(context.Background(), "x"))
		var f *Fallback
		assert.Equal(t, domain.Uncategorized, f.ClassifyFallback(context.Background(), "x"))
	})

	t.Run("timeout", func(t *testing.T) {
		ranker := &mocks.RankerMock{RankFunc: func(ctx context.Context, _ string, _ []string) ([]string, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
				return []string{"Business"}, nil
			}
		}}
		st := time.Now()
		c := NewFallback(ranker, 50*time.Millisecond).ClassifyFallback(context.Background(), "x")
		assert.Equal(t, domain.Uncategorized, c)
		assert.Less(t, time.Since(st), 2*time.Second)
	})
}

func TestService_WithFallbackAdapter(t *testing.T) {
	ranker := &mocks.RankerMock{RankFunc: func(context.Context, string, []string) ([]string, error) {
		return []string{"Science & Research"}, nil
	}}
	svc := New(NewFallback(ranker, time.Second))

	c, src := svc.Decide(context.Background(), "Octopus dreams, a study")
	assert.Equal(t, category.ScienceResearch, c)
	assert.Equal(t, SourceFallback, src)

	// rule match does not reach the ranker
	assert.Equal(t, category.DevOps, svc.Classify(context.Background(), "Kubernetes at scale"))
	assert.Len(t, ranker.RankCalls(), 1)
}
