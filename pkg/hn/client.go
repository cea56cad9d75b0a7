// Package hn fetches story ids and items from the Hacker News Firebase API
package hn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/hackynews/hackynews/pkg/config"
	"github.com/hackynews/hackynews/pkg/domain"
)

// ErrNotFound returned for items the API reports as absent, deleted or dead
var ErrNotFound = errors.New("item not found")

var errPermanent = errors.New("permanent error")

// matches the handful of inline tags occasionally present in titles, "Vec<T>" is left alone
var reMarkup = regexp.MustCompile(`(?i)</?(a|b|i|u|p|em|strong|code|pre|br|span|div)(\s[^>]*)?/?>`)

// Client is a Hacker News API client
type Client struct {
	baseURL   string
	userAgent string
	retries   int
	http      *http.Client
	policy    *bluemonday.Policy
}

// item is the wire format of /v0/item/{id}.json
type item struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	By          string `json:"by"`
	Time        int64  `json:"time"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Deleted     bool   `json:"deleted"`
	Dead        bool   `json:"dead"`
}

// New makes a client from source config
func New(cfg config.SourceConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	retries := cfg.Retries
	if retries <= 0 {
		retries = 1
	}
	return &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		retries:   retries,
		http:      &http.Client{Timeout: timeout},
		policy:    bluemonday.StrictPolicy(),
	}
}

// NewItemIDs returns ids of the newest stories, most recent first. Failures are logged
// and reported as an empty list, the caller treats it as nothing to do.
func (c *Client) NewItemIDs(ctx context.Context) []int64 {
	var ids []int64
	if err := c.get(ctx, "/v0/newstories.json", &ids); err != nil {
		log.Printf("[WARN] failed to get new story ids: %v", err)
		return []int64{}
	}
	if ids == nil {
		return []int64{}
	}
	return ids
}

// Item fetches a single item. Returns ErrNotFound if the API has no such item.
func (c *Client) Item(ctx context.Context, id int64) (*domain.Item, error) {
	var it *item
	if err := c.get(ctx, fmt.Sprintf("/v0/item/%d.json", id), &it); err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	if it == nil || it.Deleted || it.Dead {
		return nil, fmt.Errorf("get item %d: %w", id, ErrNotFound)
	}

	res := &domain.Item{
		ID:          it.ID,
		Title:       c.clean(it.Title),
		URL:         strings.TrimSpace(it.URL),
		By:          c.clean(it.By),
		Time:        it.Time,
		Score:       it.Score,
		Descendants: it.Descendants,
		Type:        it.Type,
	}
	if res.ID == 0 {
		res.ID = id
	}
	return res, nil
}

// get fetches path and decodes json into v, retrying transport errors and 5xx responses
func (c *Client) get(ctx context.Context, path string, v any) error {
	retrier := repeater.NewBackoff(c.retries, 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
		if err != nil {
			return fmt.Errorf("%w: new request: %v", errPermanent, err)
		}
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("do request: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return ErrNotFound
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("unexpected status %s", resp.Status)
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("%w: unexpected status %s", errPermanent, resp.Status)
		}

		if err := json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(v); err != nil {
			return fmt.Errorf("%w: decode response: %v", errPermanent, err)
		}
		return nil
	}, errPermanent, ErrNotFound)
}

// clean strips inline markup and html entities from a text field
func (c *Client) clean(s string) string {
	if reMarkup.MatchString(s) {
		s = c.policy.Sanitize(s)
	}
	return strings.TrimSpace(html.UnescapeString(s))
}
