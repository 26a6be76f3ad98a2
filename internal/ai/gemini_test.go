package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnavailableClient(t *testing.T) {
	c := NewClient("")
	assert.False(t, c.Available())

	s, err := c.SuggestDetails(context.Background(), "x", "Go")
	assert.NoError(t, err)
	assert.Nil(t, s, "a missing credential is absence, not an error")

	r, err := c.SearchUpdates(context.Background(), "Prometric")
	assert.NoError(t, err)
	assert.Nil(t, r)

	var nilClient *Client
	assert.False(t, nilClient.Available())
}

// fakeGemini serves a canned response body and captures the request for
// assertions.
func fakeGemini(t *testing.T, responseBody string) (*httptest.Server, *generateRequest) {
	t.Helper()
	captured := &generateRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/"+model+":generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(responseBody))
	}))
	return srv, captured
}

func TestSuggestDetails(t *testing.T) {
	srv, captured := fakeGemini(t, `{
		"candidates": [{
			"content": {"parts": [{"text": "{\"description\":\"A portfolio dashboard.\",\"suggestedFiles\":\"src/\\n  main.go\"}"}]}
		}]
	}`)
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	s, err := c.SuggestDetails(context.Background(), "FETS SPACE", "Go, SQLite")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "A portfolio dashboard.", s.Description)
	assert.Contains(t, s.SuggestedFiles, "main.go")

	require.NotNil(t, captured.GenerationConfig)
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMimeType)
	assert.Empty(t, captured.Tools, "structured suggestions do not use search")
}

func TestSearchUpdatesGrounding(t *testing.T) {
	srv, captured := fakeGemini(t, `{
		"candidates": [{
			"content": {"parts": [{"text": "Prometric resumed CMA testing windows."}]},
			"groundingMetadata": {
				"groundingChunks": [
					{"web": {"title": "Prometric News", "uri": "https://prometric.com/news"}}
				]
			}
		}]
	}`)
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	r, err := c.SearchUpdates(context.Background(), "Prometric")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "Prometric resumed CMA testing windows.", r.Text)
	require.Len(t, r.Sources, 1)
	assert.Equal(t, "Prometric News", r.Sources[0].Title)
	assert.Equal(t, "https://prometric.com/news", r.Sources[0].URL)

	require.Len(t, captured.Tools, 1)
	assert.NotNil(t, captured.Tools[0].GoogleSearch)
}

func TestGroundedQueryEmptyFallback(t *testing.T) {
	srv, _ := fakeGemini(t, `{"candidates": []}`)
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	r, err := c.SearchUpdates(context.Background(), "Prometric")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "No updates found.", r.Text)

	r, err = c.AnalyzeStack(context.Background(), "Go")
	require.NoError(t, err)
	assert.Equal(t, "Analysis failed.", r.Text)
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, err := c.SuggestDetails(context.Background(), "x", "Go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
