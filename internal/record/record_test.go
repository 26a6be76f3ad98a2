package record

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4k/fets.space/internal/models"
)

func TestTimestampUnmarshal(t *testing.T) {
	want := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"epoch millis integer", "1748779200000"},
		{"iso string", `"2025-06-01T12:00:00Z"`},
		{"millis as string", `"1748779200000"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, ts.Equal(want), "got %v", ts.Time)
		})
	}
}

func TestTimestampUnmarshalGarbageFallsBackToNow(t *testing.T) {
	var ts Timestamp
	before := time.Now()
	require.NoError(t, json.Unmarshal([]byte(`"yesterday-ish"`), &ts))
	assert.False(t, ts.Before(before), "unparseable input becomes the current time")
}

func TestTimestampMarshal(t *testing.T) {
	ts := Timestamp{time.UnixMilli(1748779200000)}
	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1748779200000", string(data))
}

func TestProjectRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := models.Project{
		ID:          "p1",
		Name:        "FETS SPACE",
		Description: "Portfolio dashboard",
		Status:      models.StatusCompleted,
		WebsiteURL:  "https://fets.hub",
		RepoURL:     "https://git.fets.hub/space.git",
		TechStack:   []string{"React", "Go"},
		Files:       "src/",
		ItemType:    models.ItemApp,
		CreatedAt:   now,
		ChangeHistory: []models.ChangeLogEntry{
			{ID: "c1", Date: now, Author: "Lead Proctor", Reason: "initial import"},
		},
		GitState: &models.GitState{
			RemoteURL: "https://git.fets.hub/space.git",
			Branch:    "main",
			Commits: []models.Commit{
				{ID: "k1", Hash: "deadbeef", Message: "Initial Commit", Author: "Lead Proctor", Date: now},
			},
			LastSync:       now,
			Status:         models.SyncAhead,
			PendingChanges: 2,
		},
	}

	got := FromProject(p).ToProject()

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Status, got.Status)
	assert.Equal(t, p.TechStack, got.TechStack)
	require.Len(t, got.ChangeHistory, 1)
	assert.Equal(t, "initial import", got.ChangeHistory[0].Reason)
	require.NotNil(t, got.GitState)
	assert.Equal(t, models.SyncAhead, got.GitState.Status)
	assert.Equal(t, 2, got.GitState.PendingChanges)
	require.Len(t, got.GitState.Commits, 1)
	assert.True(t, got.GitState.Commits[0].Date.Equal(now))
}

func TestToProjectDefaults(t *testing.T) {
	p := Record{ID: "bare"}.ToProject()

	assert.Equal(t, "Untitled Project", p.Name)
	assert.Equal(t, models.StatusIdea, p.Status)
	assert.Equal(t, models.ItemApp, p.ItemType)
	assert.NotNil(t, p.TechStack)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Nil(t, p.GitState)
}

func TestToProjectBadCommitDate(t *testing.T) {
	r := Record{
		ID: "p1",
		GitState: &GitStateRecord{
			Branch:  "main",
			Commits: []CommitRecord{{ID: "k1", Date: "not-a-date"}},
		},
	}
	p := r.ToProject()
	require.NotNil(t, p.GitState)
	require.Len(t, p.GitState.Commits, 1)
	assert.False(t, p.GitState.Commits[0].Date.IsZero())
}
