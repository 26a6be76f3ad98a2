package gitsim

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4k/fets.space/internal/models"
)

// memCatalog is an in-memory Catalog for simulator tests.
type memCatalog struct {
	mu       sync.Mutex
	projects map[string]models.Project
}

func newMemCatalog(projects ...models.Project) *memCatalog {
	m := &memCatalog{projects: make(map[string]models.Project)}
	for _, p := range projects {
		m.projects[p.ID] = p
	}
	return m
}

func (m *memCatalog) Get(id string) (models.Project, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	return p, ok
}

func (m *memCatalog) QuickSave(_ context.Context, p models.Project) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[p.ID] = p
}

func newTestSimulator(projects ...models.Project) (*Simulator, *memCatalog) {
	catalog := newMemCatalog(projects...)
	s := New(catalog)
	s.latency = 0
	return s, catalog
}

func repoProject(id string) models.Project {
	return models.Project{
		ID:       id,
		Name:     id,
		ItemType: models.ItemApp,
		GitState: InitState("https://git.fets.hub/"+id+".git", "Lead Proctor", time.Now()),
	}
}

func TestInitState(t *testing.T) {
	now := time.Now()
	state := InitState("https://git.fets.hub/x.git", "Lead Proctor", now)

	assert.Equal(t, DefaultBranch, state.Branch)
	assert.Equal(t, models.SyncClean, state.Status)
	assert.Equal(t, 0, state.PendingChanges)
	require.Len(t, state.Commits, 1)
	assert.Equal(t, "Initial Commit", state.Commits[0].Message)
	assert.Equal(t, "Lead Proctor", state.Commits[0].Author)
}

func TestRecordWorkAccumulates(t *testing.T) {
	s, _ := newTestSimulator(repoProject("p1"))
	ctx := context.Background()

	var p models.Project
	var err error
	for i := 0; i < 3; i++ {
		p, err = s.RecordWork(ctx, "p1")
		require.NoError(t, err)
	}

	assert.Equal(t, models.SyncAhead, p.GitState.Status)
	assert.Equal(t, 3, p.GitState.PendingChanges)
}

func TestPullPrependsMergeCommit(t *testing.T) {
	s, catalog := newTestSimulator(repoProject("p1"))
	ctx := context.Background()

	_, err := s.RecordWork(ctx, "p1")
	require.NoError(t, err)

	p, err := s.Pull(ctx, "p1")
	require.NoError(t, err)

	assert.Equal(t, models.SyncClean, p.GitState.Status)
	assert.Equal(t, 0, p.GitState.PendingChanges)
	require.Len(t, p.GitState.Commits, 2)
	assert.Equal(t, MergeCommitMessage, p.GitState.Commits[0].Message)
	assert.Equal(t, "System", p.GitState.Commits[0].Author)

	// The result is persisted through the catalog.
	saved, ok := catalog.Get("p1")
	require.True(t, ok)
	assert.Len(t, saved.GitState.Commits, 2)
}

func TestPushRejectedWhenClean(t *testing.T) {
	s, _ := newTestSimulator(repoProject("p1"))

	_, err := s.Push(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrNothingToPush)
}

func TestPushClearsPendingWork(t *testing.T) {
	s, _ := newTestSimulator(repoProject("p1"))
	ctx := context.Background()

	_, err := s.RecordWork(ctx, "p1")
	require.NoError(t, err)

	p, err := s.Push(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncClean, p.GitState.Status)
	assert.Equal(t, 0, p.GitState.PendingChanges)
	assert.Len(t, p.GitState.Commits, 1, "push creates no commit")
}

func TestSyncSingleFlight(t *testing.T) {
	s, _ := newTestSimulator(repoProject("p1"))
	s.latency = 200 * time.Millisecond
	ctx := context.Background()

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, err := s.Pull(ctx, "p1")
		done <- err
	}()

	<-started
	time.Sleep(50 * time.Millisecond)
	assert.True(t, s.Busy("p1"))

	_, err := s.Pull(ctx, "p1")
	assert.ErrorIs(t, err, ErrSyncInFlight)

	require.NoError(t, <-done)
	assert.False(t, s.Busy("p1"))
}

func TestSyncRespectsContext(t *testing.T) {
	s, _ := newTestSimulator(repoProject("p1"))
	s.latency = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.Pull(ctx, "p1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSyncErrors(t *testing.T) {
	s, _ := newTestSimulator(models.Project{ID: "norepo", ItemType: models.ItemApp})
	ctx := context.Background()

	_, err := s.Pull(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Pull(ctx, "norepo")
	assert.ErrorIs(t, err, ErrNoRepo)

	_, err = s.RecordWork(ctx, "norepo")
	assert.ErrorIs(t, err, ErrNoRepo)
}
