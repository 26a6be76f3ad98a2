// Package gitsim models the repository sync panel. There is no working tree
// behind it: state lives entirely in each project's GitState and transitions
// follow a small clean/ahead/behind/diverged machine.
package gitsim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hy4k/fets.space/internal/models"
)

const (
	// DefaultBranch is used when a repository is first initialized.
	DefaultBranch = "main"

	// MergeCommitMessage is the message of every synthesized pull commit.
	MergeCommitMessage = "Merge branch 'feature/update' into main"

	// SyncLatency approximates a network round trip for pull and push.
	SyncLatency = 2 * time.Second

	systemAuthor = "System"
)

var (
	ErrNotFound      = errors.New("project not found")
	ErrNoRepo        = errors.New("project has no repository")
	ErrSyncInFlight  = errors.New("a sync is already running for this project")
	ErrNothingToPush = errors.New("nothing to push")
)

// Catalog is the slice of the store the simulator needs. Sync results funnel
// back through QuickSave, which is exempt from the audit-log requirement.
type Catalog interface {
	Get(id string) (models.Project, bool)
	QuickSave(ctx context.Context, p models.Project)
}

// InitState builds the sync state for a freshly associated repository: the
// main branch with a single initial commit by the acting user.
func InitState(remoteURL, author string, now time.Time) *models.GitState {
	return &models.GitState{
		RemoteURL: remoteURL,
		Branch:    DefaultBranch,
		Commits: []models.Commit{
			{
				ID:      uuid.NewString(),
				Hash:    shortHash(),
				Message: "Initial Commit",
				Author:  author,
				Date:    now,
			},
		},
		LastSync: now,
		Status:   models.SyncClean,
	}
}

// Simulator serializes sync actions per project. Pull and push take the
// project's slot for the duration of their simulated latency; a second
// concurrent request is rejected, not interleaved.
type Simulator struct {
	catalog Catalog
	latency time.Duration

	mu   sync.Mutex
	busy map[string]bool

	now func() time.Time
}

func New(catalog Catalog) *Simulator {
	return &Simulator{
		catalog: catalog,
		latency: SyncLatency,
		busy:    make(map[string]bool),
		now:     time.Now,
	}
}

// Busy reports whether a sync is in flight for the project.
func (s *Simulator) Busy(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy[id]
}

// Pull simulates fetching remote work: after the latency it prepends one
// synthesized merge commit and resets the state to clean. Repeated pulls keep
// appending merge commits, mirroring a real repository's append-only history.
func (s *Simulator) Pull(ctx context.Context, id string) (models.Project, error) {
	if err := s.acquire(id); err != nil {
		return models.Project{}, err
	}
	defer s.release(id)

	p, err := s.lookup(id)
	if err != nil {
		return models.Project{}, err
	}

	if err := s.wait(ctx); err != nil {
		return models.Project{}, err
	}

	now := s.now()
	state := *p.GitState
	state.Commits = append([]models.Commit{{
		ID:      uuid.NewString(),
		Hash:    shortHash(),
		Message: MergeCommitMessage,
		Author:  systemAuthor,
		Date:    now,
	}}, state.Commits...)
	state.LastSync = now
	state.Status = models.SyncClean
	state.PendingChanges = 0
	p.GitState = &state

	s.catalog.QuickSave(ctx, p)
	return p, nil
}

// Push simulates transmitting local commits. It creates no commit and is
// rejected while the state is clean, since there is nothing to push.
func (s *Simulator) Push(ctx context.Context, id string) (models.Project, error) {
	if err := s.acquire(id); err != nil {
		return models.Project{}, err
	}
	defer s.release(id)

	p, err := s.lookup(id)
	if err != nil {
		return models.Project{}, err
	}
	if p.GitState.Status == models.SyncClean {
		return models.Project{}, ErrNothingToPush
	}

	if err := s.wait(ctx); err != nil {
		return models.Project{}, err
	}

	state := *p.GitState
	state.LastSync = s.now()
	state.Status = models.SyncClean
	state.PendingChanges = 0
	p.GitState = &state

	s.catalog.QuickSave(ctx, p)
	return p, nil
}

// RecordWork marks local uncommitted work: pending changes grow by one and
// the status is forced to ahead. It is instantaneous and valid in any state.
func (s *Simulator) RecordWork(ctx context.Context, id string) (models.Project, error) {
	p, err := s.lookup(id)
	if err != nil {
		return models.Project{}, err
	}

	state := *p.GitState
	state.PendingChanges++
	state.Status = models.SyncAhead
	p.GitState = &state

	s.catalog.QuickSave(ctx, p)
	return p, nil
}

func (s *Simulator) lookup(id string) (models.Project, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return models.Project{}, ErrNotFound
	}
	if p.GitState == nil {
		return models.Project{}, ErrNoRepo
	}
	return p, nil
}

func (s *Simulator) acquire(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[id] {
		return ErrSyncInFlight
	}
	s.busy[id] = true
	return nil
}

func (s *Simulator) release(id string) {
	s.mu.Lock()
	delete(s.busy, id)
	s.mu.Unlock()
}

func (s *Simulator) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func shortHash() string {
	return fmt.Sprintf("%08x", rand.Uint32())
}
