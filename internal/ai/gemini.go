// Package ai wraps the Gemini REST API for free-form suggestions. Every call
// degrades to an absent result when no credential is configured; the UI
// treats absence as "no suggestion available", never as an error.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	model          = "gemini-2.5-flash"
)

// Source is one grounding reference returned with a search-backed answer.
type Source struct {
	Title string
	URL   string
}

// SearchResult is a grounded text answer with its sources.
type SearchResult struct {
	Text    string
	Sources []Source
}

// Suggestion is the structured output of SuggestDetails.
type Suggestion struct {
	Description    string `json:"description"`
	SuggestedFiles string `json:"suggestedFiles"`
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}
}

// NewClientWithBaseURL is used by tests to point at a fake server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Available reports whether a credential is configured.
func (c *Client) Available() bool {
	return c != nil && c.apiKey != ""
}

// SuggestDetails asks for a project description and a file tree suggestion.
// Returns (nil, nil) when the helper is unavailable.
func (c *Client) SuggestDetails(ctx context.Context, name, techStack string) (*Suggestion, error) {
	if !c.Available() {
		return nil, nil
	}

	prompt := fmt.Sprintf(`I am building a software project named %q using the following technologies: %q.

Please provide:
1. A concise, professional project description (max 2 sentences).
2. A recommended file folder structure for this type of project.`, name, techStack)

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: &schema{
				Type: "OBJECT",
				Properties: map[string]schema{
					"description":    {Type: "STRING"},
					"suggestedFiles": {Type: "STRING", Description: "A simple text representation of a file tree structure"},
				},
			},
		},
	}

	resp, err := c.generate(ctx, req)
	if err != nil {
		return nil, err
	}
	text := resp.text()
	if text == "" {
		return nil, nil
	}
	var suggestion Suggestion
	if err := json.Unmarshal([]byte(text), &suggestion); err != nil {
		return nil, fmt.Errorf("decoding suggestion: %w", err)
	}
	return &suggestion, nil
}

// SearchUpdates fetches recent news for a vendor resource, grounded by web
// search. Returns (nil, nil) when the helper is unavailable.
func (c *Client) SearchUpdates(ctx context.Context, resourceName string) (*SearchResult, error) {
	prompt := fmt.Sprintf("Find the latest significant news, outages, regulatory changes, or exam updates for %q. Summarize the 3 most important recent updates in a bulleted list. If there is no major recent news, provide a general status summary.", resourceName)
	return c.groundedQuery(ctx, prompt, "No updates found.")
}

// AnalyzeStack reviews a tech stack for current versions and compatibility
// warnings. Returns (nil, nil) when the helper is unavailable.
func (c *Client) AnalyzeStack(ctx context.Context, techStack string) (*SearchResult, error) {
	prompt := fmt.Sprintf("Analyze this tech stack: %q. Identify the latest stable versions for these technologies and any major compatibility warnings or recent deprecations I should be aware of. Keep it brief (under 100 words).", techStack)
	return c.groundedQuery(ctx, prompt, "Analysis failed.")
}

func (c *Client) groundedQuery(ctx context.Context, prompt, emptyText string) (*SearchResult, error) {
	if !c.Available() {
		return nil, nil
	}

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
	}
	resp, err := c.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Text: resp.text()}
	if result.Text == "" {
		result.Text = emptyText
	}
	for _, chunk := range resp.groundingChunks() {
		if chunk.Web != nil {
			result.Sources = append(result.Sources, Source{Title: chunk.Web.Title, URL: chunk.Web.URI})
		}
	}
	return result, nil
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	Tools            []tool            `json:"tools,omitempty"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type tool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type        string            `json:"type"`
	Description string            `json:"description,omitempty"`
	Properties  map[string]schema `json:"properties,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []groundingChunk `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

type groundingChunk struct {
	Web *struct {
		Title string `json:"title"`
		URI   string `json:"uri"`
	} `json:"web"`
}

func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}

func (r *generateResponse) groundingChunks() []groundingChunk {
	if len(r.Candidates) == 0 || r.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	return r.Candidates[0].GroundingMetadata.GroundingChunks
}

func (c *Client) generate(ctx context.Context, reqBody generateRequest) (*generateResponse, error) {
	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("gemini API returned status %d: %s", resp.StatusCode, body)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding gemini response: %w", err)
	}
	return &out, nil
}
