package record

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// RemoteStore talks to the hosted record-store API. It implements Store over
// plain JSON REST endpoints.
type RemoteStore struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewRemoteStore(baseURL, apiKey string) *RemoteStore {
	return &RemoteStore{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// APIError represents an error returned by the record-store API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error: status %d", e.StatusCode)
}

// IsNotFound returns true if the error is a 404 Not Found.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

func (s *RemoteStore) ListAll(ctx context.Context) ([]Record, error) {
	body, err := s.request(ctx, http.MethodGet, "/projects", nil)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding project list: %w", err)
	}
	return records, nil
}

func (s *RemoteStore) Insert(ctx context.Context, r Record) error {
	_, err := s.request(ctx, http.MethodPost, "/projects", r)
	return err
}

func (s *RemoteStore) Update(ctx context.Context, id string, r Record) error {
	_, err := s.request(ctx, http.MethodPut, "/projects/"+url.PathEscape(id), r)
	return err
}

func (s *RemoteStore) Delete(ctx context.Context, id string) error {
	_, err := s.request(ctx, http.MethodDelete, "/projects/"+url.PathEscape(id), nil)
	return err
}

func (s *RemoteStore) Count(ctx context.Context) (int, error) {
	body, err := s.request(ctx, http.MethodGet, "/projects/count", nil)
	if err != nil {
		return 0, err
	}
	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("decoding count: %w", err)
	}
	return resp.Count, nil
}

// request performs an HTTP request against the API.
func (s *RemoteStore) request(ctx context.Context, method, path string, body any) ([]byte, error) {
	u, err := url.JoinPath(s.baseURL, path)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		msg := string(respBody)
		if json.Unmarshal(respBody, &errResp) == nil {
			if errResp.Message != "" {
				msg = errResp.Message
			} else if errResp.Error != "" {
				msg = errResp.Error
			}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	return respBody, nil
}
