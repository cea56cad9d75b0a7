// Package llm implements zero-shot label ranking on top of an OpenAI-compatible chat completion API.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/hackynews/hackynews/pkg/config"
)

// errors worth another attempt, the model may answer properly next time
var (
	errNoJSON  = errors.New("no json array found in response")
	errBadJSON = errors.New("failed to parse json response")
)

const maxAttempts = 3

// default system prompt for title classification
const defaultSystemPrompt = `You classify news headlines from a technology news site.
You are given a headline and a list of candidate labels.
Order ALL candidate labels from most to least fitting for the headline.
Use only labels from the candidate list, spelled exactly as given.
Respond with a JSON array of strings and nothing else, for example: ["Hardware", "Business", "Programming"]`

// ZeroShot ranks candidate labels for a text using an LLM
type ZeroShot struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewZeroShot creates a new LLM ranker
func NewZeroShot(cfg config.LLMConfig) *ZeroShot {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &ZeroShot{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// Rank returns candidate labels ordered most likely first. Labels the model invents are dropped,
// so the result may be shorter than labels or empty.
func (z *ZeroShot) Rank(ctx context.Context, text string, labels []string) ([]string, error) {
	if len(labels) == 0 {
		return []string{}, nil
	}

	prompt := z.buildPrompt(text, labels)

	// retry up to 3 times if we get invalid JSON
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		chatReq := openai.ChatCompletionRequest{
			Model:       z.config.Model,
			Temperature: float32(z.config.Temperature),
			MaxTokens:   z.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: z.systemMsg},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		}

		// add JSON response format if enabled
		if z.config.UseJSONMode {
			chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			}
		}

		resp, err := z.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no response from llm")
		}

		ranked, err := z.parseResponse(resp.Choices[0].Message.Content, labels)
		if err == nil {
			return ranked, nil
		}
		lastErr = err
		if errors.Is(err, errNoJSON) || errors.Is(err, errBadJSON) {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}

// buildPrompt creates the user prompt for a single title
func (z *ZeroShot) buildPrompt(text string, labels []string) string {
	var sb strings.Builder
	sb.WriteString("Candidate labels:\n")
	for _, l := range labels {
		sb.WriteString("- ")
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	sb.WriteString("\nHeadline: ")
	sb.WriteString(strings.TrimSpace(text))
	sb.WriteString("\n\n")
	if z.config.UseJSONMode {
		sb.WriteString(`Respond with a JSON object {"labels": [...]} holding the ordered labels.`)
	} else {
		sb.WriteString("Respond with a JSON array of the ordered labels.")
	}
	return sb.String()
}

// parseResponse extracts ranked labels and maps them to the canonical spelling of candidates
func (z *ZeroShot) parseResponse(content string, candidates []string) ([]string, error) {
	var raw []string

	if z.config.UseJSONMode {
		var resp struct {
			Labels []string `json:"labels"`
		}
		if err := json.Unmarshal([]byte(content), &resp); err != nil {
			return nil, fmt.Errorf("%w: %v", errBadJSON, err)
		}
		raw = resp.Labels
	} else {
		start := strings.Index(content, "[")
		end := strings.LastIndex(content, "]")
		if start == -1 || end == -1 || start >= end {
			return nil, errNoJSON
		}
		if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", errBadJSON, err)
		}
	}

	canonical := make(map[string]string, len(candidates))
	for _, c := range candidates {
		canonical[strings.ToLower(c)] = c
	}

	res := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, r := range raw {
		c, ok := canonical[strings.ToLower(strings.TrimSpace(r))]
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		res = append(res, c)
	}
	return res, nil
}
