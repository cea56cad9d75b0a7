// Package zeroshot is a client for zero-shot classification inference endpoints, e.g. a hosted
// facebook/bart-large-mnli pipeline. It posts a text with candidate labels and gets labels back
// ordered by score.
package zeroshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/hackynews/hackynews/pkg/config"
)

// errPermanent marks responses not worth retrying
var errPermanent = errors.New("permanent error")

// Client talks to a zero-shot classification endpoint
type Client struct {
	endpoint string
	token    string
	retries  int
	http     *http.Client
}

type request struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		CandidateLabels []string `json:"candidate_labels"`
	} `json:"parameters"`
}

// response of the classic pipeline: labels ordered by score
type response struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// scored label, returned by newer inference providers as a list
type scored struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// New makes a client from config
func New(cfg config.ZeroShotConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	retries := cfg.Retries
	if retries <= 0 {
		retries = 1
	}
	return &Client{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		retries:  retries,
		http:     &http.Client{Timeout: timeout},
	}
}

// Rank returns labels ordered most likely first
func (c *Client) Rank(ctx context.Context, text string, labels []string) ([]string, error) {
	if len(labels) == 0 {
		return []string{}, nil
	}

	req := request{Inputs: text}
	req.Parameters.CandidateLabels = labels
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var raw []byte
	retrier := repeater.NewBackoff(c.retries, 250*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		var postErr error
		raw, postErr = c.post(ctx, body)
		return postErr
	}, errPermanent)
	if err != nil {
		return nil, err
	}
	return parse(raw)
}

func (c *Client) post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: new request: %v", errPermanent, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return data, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		// 503 is also returned while the model is loading
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	default:
		return nil, fmt.Errorf("%w: unexpected status %s", errPermanent, resp.Status)
	}
}

// parse accepts both {"labels":[...],"scores":[...]} and [{"label":..,"score":..}] shapes
func parse(data []byte) ([]string, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []scored
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		sort.SliceStable(items, func(i, j int) bool { return items[i].Score > items[j].Score })
		res := make([]string, 0, len(items))
		for _, it := range items {
			res = append(res, it.Label)
		}
		return res, nil
	}

	var resp response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.Labels == nil {
		return []string{}, nil
	}
	return resp.Labels, nil
}
