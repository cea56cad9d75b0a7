// Package classifier assigns a category to a title: ordered keyword rules first,
// then an optional zero-shot fallback, then the Uncategorized sentinel.
// Classification never fails, every path resolves to a category.
package classifier

import (
	"context"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/samber/lo"

	"github.com/hackynews/hackynews/pkg/category"
	"github.com/hackynews/hackynews/pkg/domain"
)

//go:generate moq -out mocks/fallback.go -pkg mocks -skip-ensure -fmt goimports . FallbackClassifier Ranker

// Source names the tier that decided a category
type Source string

// decision tiers
const (
	SourceRule     Source = "rule"
	SourceFallback Source = "fallback"
	SourceDefault  Source = "default"
)

// FallbackClassifier is the capability used when no rule matches.
// Implementations must return a category even on failure, usually domain.Uncategorized.
type FallbackClassifier interface {
	ClassifyFallback(ctx context.Context, title string) domain.Category
}

// Service classifies titles with rules and an optional fallback
type Service struct {
	fallback FallbackClassifier
}

// New makes a classification service. Nil fallback means rules only.
func New(fallback FallbackClassifier) *Service {
	return &Service{fallback: fallback}
}

// Classify returns a category for title, never empty
func (s *Service) Classify(ctx context.Context, title string) domain.Category {
	c, _ := s.Decide(ctx, title)
	return c
}

// Decide returns a category for title along with the tier which produced it
func (s *Service) Decide(ctx context.Context, title string) (domain.Category, Source) {
	if strings.TrimSpace(title) == "" {
		return domain.Uncategorized, SourceDefault
	}
	if c, ok := category.Match(title); ok {
		return c, SourceRule
	}
	if s.fallback == nil {
		return domain.Uncategorized, SourceDefault
	}
	c := s.safeFallback(ctx, title)
	if c == "" || c == domain.Uncategorized {
		return domain.Uncategorized, SourceDefault
	}
	return c, SourceFallback
}

// safeFallback calls the fallback and converts a panic to the sentinel
func (s *Service) safeFallback(ctx context.Context, title string) (res domain.Category) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[WARN] fallback classifier panic for %q: %v", title, r)
			res = domain.Uncategorized
		}
	}()
	return s.fallback.ClassifyFallback(ctx, title)
}

// Ranker orders candidate labels for a text, most likely first.
// Implemented by llm.ZeroShot and zeroshot.Client.
type Ranker interface {
	Rank(ctx context.Context, text string, labels []string) ([]string, error)
}

// Fallback adapts a Ranker to FallbackClassifier. It offers category.FallbackLabels as candidates,
// bounds each call with a timeout and takes the top ranked label.
type Fallback struct {
	ranker  Ranker
	timeout time.Duration
}

// NewFallback makes a fallback adapter, timeout <= 0 means no extra bound beyond the caller's context
func NewFallback(ranker Ranker, timeout time.Duration) *Fallback {
	return &Fallback{ranker: ranker, timeout: timeout}
}

// ClassifyFallback asks the ranker for the best label. Any failure yields domain.Uncategorized.
func (f *Fallback) ClassifyFallback(ctx context.Context, title string) domain.Category {
	if f == nil || f.ranker == nil {
		return domain.Uncategorized
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	labels, err := f.ranker.Rank(ctx, title, category.Labels())
	if err != nil {
		log.Printf("[WARN] fallback classification failed for %q: %v", title, err)
		return domain.Uncategorized
	}
	if len(labels) == 0 {
		log.Printf("[DEBUG] fallback classification returned no labels for %q", title)
		return domain.Uncategorized
	}

	c, ok := category.Parse(labels[0])
	if !ok || !lo.Contains(category.FallbackLabels, c) {
		log.Printf("[WARN] fallback classification returned unexpected label %q for %q", labels[0], title)
		return domain.Uncategorized
	}
	return c
}
