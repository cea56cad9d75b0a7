package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackynews/hackynews/pkg/config"
)

var testLabels = []string{"Programming", "AI & ML", "Startups", "Security", "Hardware", "Science & Research", "Business"}

func chatServer(t *testing.T, answers ...string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		if assert.Len(t, req.Messages, 2) {
			assert.Contains(t, req.Messages[1].Content, "Headline: ")
		}

		n := atomic.AddInt32(&calls, 1)
		idx := int(n) - 1
		if idx >= len(answers) {
			idx = len(answers) - 1
		}
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: answers[idx]}}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func testConfig(url string) config.LLMConfig {
	return config.LLMConfig{Endpoint: url + "/v1", APIKey: "test-key", Model: "gpt-4o-mini", MaxTokens: 100,
		Timeout: 5 * time.Second}
}

func TestZeroShot_Rank(t *testing.T) {
	srv, calls := chatServer(t, `Sure, here is the ranking:
["hardware", "Business", "Quantum Stuff", "Hardware", "Science & Research"]`)

	z := NewZeroShot(testConfig(srv.URL))
	res, err := z.Rank(context.Background(), "A new RISC-V board", testLabels)
	require.NoError(t, err)
	// canonical spelling, unknown and duplicate labels dropped
	assert.Equal(t, []string{"Hardware", "Business", "Science & Research"}, res)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestZeroShot_RankRetriesInvalidJSON(t *testing.T) {
	srv, calls := chatServer(t, "I think it is hardware", `["Hardware"`, `["Security"]`)

	z := NewZeroShot(testConfig(srv.URL))
	res, err := z.Rank(context.Background(), "Heartbleed revisited", testLabels)
	require.NoError(t, err)
	assert.Equal(t, []string{"Security"}, res)
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
}

func TestZeroShot_RankGivesUp(t *testing.T) {
	srv, calls := chatServer(t, "no idea")

	z := NewZeroShot(testConfig(srv.URL))
	_, err := z.Rank(context.Background(), "something", testLabels)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
}

func TestZeroShot_RankJSONMode(t *testing.T) {
	srv, _ := chatServer(t, `{"labels": ["Startups", "Business"]}`)

	cfg := testConfig(srv.URL)
	cfg.UseJSONMode = true
	z := NewZeroShot(cfg)
	res, err := z.Rank(context.Background(), "We got acquired", testLabels)
	require.NoError(t, err)
	assert.Equal(t, []string{"Startups", "Business"}, res)
}

func TestZeroShot_RankServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	z := NewZeroShot(testConfig(srv.URL))
	_, err := z.Rank(context.Background(), "something", testLabels)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm request failed")
}

func TestZeroShot_RankNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
	}))
	defer srv.Close()

	z := NewZeroShot(testConfig(srv.URL))
	_, err := z.Rank(context.Background(), "something", testLabels)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response from llm")
}

func TestZeroShot_RankNoLabels(t *testing.T) {
	z := NewZeroShot(config.LLMConfig{Endpoint: "http://127.0.0.1:1/v1", Model: "m"})
	res, err := z.Rank(context.Background(), "something", nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestZeroShot_CustomSystemPrompt(t *testing.T) {
	z := NewZeroShot(config.LLMConfig{SystemPrompt: "custom"})
	assert.Equal(t, "custom", z.systemMsg)
	assert.Equal(t, defaultSystemPrompt, NewZeroShot(config.LLMConfig{}).systemMsg)
}

func TestZeroShot_BuildPrompt(t *testing.T) {
	z := NewZeroShot(config.LLMConfig{})
	p := z.buildPrompt("  Octopus dreams  ", []string{"Business", "Hardware"})
	assert.Contains(t, p, "- Business\n- Hardware\n")
	assert.Contains(t, p, "Headline: Octopus dreams\n")
	assert.Contains(t, p, "JSON array")

	z = NewZeroShot(config.LLMConfig{UseJSONMode: true})
	assert.Contains(t, z.buildPrompt("x", []string{"Business"}), `{"labels": [...]}`)
}
