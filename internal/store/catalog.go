// Package store owns the authoritative in-memory project list and its
// best-effort persistence through the record-store collaborator.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hy4k/fets.space/internal/gitsim"
	"github.com/hy4k/fets.space/internal/models"
	"github.com/hy4k/fets.space/internal/record"
)

var (
	ErrNameRequired         = errors.New("project name is required")
	ErrChangeReasonRequired = errors.New("a change reason is required")
	ErrNotFound             = errors.New("project not found")
)

// LoadTimeout bounds the initial fetch; past it the catalog goes offline
// rather than hanging the launch.
const LoadTimeout = 3 * time.Second

// autoImageReason is substituted when the only edit is the cover image.
const autoImageReason = "Updated cover image"

// Catalog is the single authoritative collection of projects. Mutations apply
// to memory first; remote persistence is best-effort except for Delete.
type Catalog struct {
	mu       sync.RWMutex
	records  record.Store
	projects []models.Project
	offline  bool

	// Logf receives background persistence failures. TUI apps cannot print
	// to stdout, so main wires this to the error log file.
	Logf func(format string, args ...any)

	now func() time.Time

	// Creates landing in the same millisecond would otherwise collide on the
	// timestamp-based ID; a session counter disambiguates them.
	lastIDMilli int64
	idSeq       int
}

func NewCatalog(records record.Store) *Catalog {
	return &Catalog{
		records: records,
		Logf:    func(string, ...any) {},
		now:     time.Now,
	}
}

// Load fetches the catalog from the record store within LoadTimeout. Backend
// failure switches the session to offline mode with the demo seed set; an
// empty backend also falls back to the seed set so the browse screen is never
// blank. Load never fails its caller.
func (c *Catalog) Load(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, LoadTimeout)
	defer cancel()

	recs, err := c.records.ListAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.Logf("record store unreachable, entering offline mode: %v", err)
		c.offline = true
		c.projects = SeedProjects()
		return
	}

	if len(recs) == 0 {
		c.projects = SeedProjects()
		return
	}

	projects := make([]models.Project, 0, len(recs))
	for _, r := range recs {
		projects = append(projects, r.ToProject())
	}
	c.projects = projects
}

// Offline reports whether the session fell back to memory-only writes. The
// flag is sticky: the backend is not re-probed.
func (c *Catalog) Offline() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offline
}

// Projects returns a snapshot of the catalog.
func (c *Catalog) Projects() []models.Project {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Get returns a snapshot of one project.
func (c *Catalog) Get(id string) (models.Project, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// Create builds a project from the draft and prepends it to the catalog. The
// record always lands in memory; remote persistence failure is logged, never
// surfaced. Drafts with a repo URL get an initialized sync state.
func (c *Catalog) Create(ctx context.Context, draft models.Draft, actor models.User) (models.Project, error) {
	draft.Normalize()
	if strings.TrimSpace(draft.Name) == "" {
		return models.Project{}, ErrNameRequired
	}

	now := c.now()
	createdAt := draft.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	p := models.Project{
		Name:          draft.Name,
		Description:   draft.Description,
		Status:        draft.Status,
		WebsiteURL:    draft.WebsiteURL,
		RepoURL:       draft.RepoURL,
		ImageURL:      draft.ImageURL,
		TechStack:     models.ParseTechStack(draft.TechStack),
		Files:         draft.Files,
		ItemType:      draft.ItemType,
		CreatedAt:     createdAt,
		ChangeHistory: []models.ChangeLogEntry{},
	}
	if draft.RepoURL != "" {
		p.GitState = gitsim.InitState(draft.RepoURL, actor.Name, now)
	}

	c.mu.Lock()
	p.ID = c.newIDLocked(now)
	c.projects = append([]models.Project{p}, c.projects...)
	offline := c.offline
	c.mu.Unlock()

	if !offline {
		if err := c.records.Insert(ctx, record.FromProject(p)); err != nil {
			c.Logf("create %s: remote insert failed, kept locally: %v", p.ID, err)
		}
	}
	return p, nil
}

// newIDLocked generates a catalog-unique ID. The base is the creation time in
// epoch millis; a repeat of the previous millisecond gets a counter suffix so
// back-to-back creates never share an ID. Caller holds mu.
func (c *Catalog) newIDLocked(now time.Time) string {
	ms := now.UnixMilli()
	if ms != c.lastIDMilli {
		c.lastIDMilli = ms
		c.idSeq = 0
		return strconv.FormatInt(ms, 10)
	}
	c.idSeq++
	return strconv.FormatInt(ms, 10) + "-" + strconv.Itoa(c.idSeq)
}

// Update applies the draft to an existing project and appends exactly one
// changelog entry. An empty change reason is rejected unless the cover image
// is the only change, in which case an automatic reason is substituted.
func (c *Catalog) Update(ctx context.Context, id string, draft models.Draft, actor models.User) (models.Project, error) {
	draft.Normalize()
	if strings.TrimSpace(draft.Name) == "" {
		return models.Project{}, ErrNameRequired
	}

	c.mu.Lock()
	idx := -1
	for i, p := range c.projects {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.mu.Unlock()
		return models.Project{}, ErrNotFound
	}
	current := c.projects[idx]

	reason := strings.TrimSpace(draft.ChangeReason)
	if reason == "" {
		if draft.ImageURL != current.ImageURL {
			reason = autoImageReason
		} else {
			c.mu.Unlock()
			return models.Project{}, ErrChangeReasonRequired
		}
	}

	updated := current
	updated.Name = draft.Name
	updated.Description = draft.Description
	updated.Status = draft.Status
	updated.WebsiteURL = draft.WebsiteURL
	updated.RepoURL = draft.RepoURL
	updated.ImageURL = draft.ImageURL
	updated.TechStack = models.ParseTechStack(draft.TechStack)
	updated.Files = draft.Files
	updated.ItemType = draft.ItemType
	if !draft.CreatedAt.IsZero() {
		updated.CreatedAt = draft.CreatedAt
	}
	updated.ChangeHistory = append(append([]models.ChangeLogEntry{}, current.ChangeHistory...), models.ChangeLogEntry{
		ID:     uuid.NewString(),
		Date:   c.now(),
		Author: actor.Name,
		Reason: reason,
	})

	c.projects[idx] = updated
	offline := c.offline
	c.mu.Unlock()

	if !offline {
		if err := c.records.Update(ctx, id, record.FromProject(updated)); err != nil {
			c.Logf("update %s: remote update failed, kept locally: %v", id, err)
		}
	}
	return updated, nil
}

// Delete removes a project. Unlike create and update, a remote failure is
// surfaced and the local record is kept: silently dropping a delete would let
// the project resurrect on the next full load.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	c.mu.RLock()
	found := false
	for _, p := range c.projects {
		if p.ID == id {
			found = true
			break
		}
	}
	offline := c.offline
	c.mu.RUnlock()

	if !found {
		return ErrNotFound
	}

	if !offline {
		if err := c.records.Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting project from store: %w", err)
		}
	}

	c.mu.Lock()
	kept := c.projects[:0]
	for _, p := range c.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.projects = kept
	c.mu.Unlock()
	return nil
}

// QuickSave replaces one record wholesale without audit requirements. Used by
// the sync simulator, which touches only the git state.
func (c *Catalog) QuickSave(ctx context.Context, p models.Project) {
	c.mu.Lock()
	for i := range c.projects {
		if c.projects[i].ID == p.ID {
			c.projects[i] = p
			break
		}
	}
	offline := c.offline
	c.mu.Unlock()

	if !offline {
		if err := c.records.Update(ctx, p.ID, record.FromProject(p)); err != nil {
			c.Logf("quicksave %s: remote update failed, kept locally: %v", p.ID, err)
		}
	}
}

// SeedRemote pushes the demo catalog to the record store if and only if it is
// empty. Returns true when seeding happened.
func (c *Catalog) SeedRemote(ctx context.Context) (bool, error) {
	if c.Offline() {
		return false, errors.New("cannot seed in offline mode")
	}
	count, err := c.records.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("counting records: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	for _, p := range SeedProjects() {
		if err := c.records.Insert(ctx, record.FromProject(p)); err != nil {
			return false, fmt.Errorf("seeding %s: %w", p.ID, err)
		}
	}
	return true, nil
}
