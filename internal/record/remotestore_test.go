package record

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteStoreListAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/projects", r.URL.Path)
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]Record{
			{ID: "p1", Name: "One"},
			{ID: "p2", Name: "Two"},
		})
	}))
	defer srv.Close()

	s := NewRemoteStore(srv.URL, "sekrit")
	records, err := s.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "One", records[0].Name)
}

func TestRemoteStoreInsert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/projects", r.URL.Path)
		var rec Record
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
		assert.Equal(t, "p1", rec.ID)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewRemoteStore(srv.URL, "")
	assert.NoError(t, s.Insert(context.Background(), Record{ID: "p1", Name: "One"}))
}

func TestRemoteStoreDeleteNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "no such project"})
	}))
	defer srv.Close()

	s := NewRemoteStore(srv.URL, "")
	err := s.Delete(context.Background(), "ghost")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsNotFound())
	assert.Contains(t, apiErr.Error(), "no such project")
}

func TestRemoteStoreCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/count", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]int{"count": 14})
	}))
	defer srv.Close()

	s := NewRemoteStore(srv.URL, "")
	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 14, n)
}
