// Package record defines the flat storage shape of the persistence
// collaborator and its translation to the in-memory model. Stored fields use
// snake_case names; nested structures are carried as JSON.
package record

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/hy4k/fets.space/internal/models"
)

// Store is the persistence collaborator consumed by the catalog. Both the
// bundled sqlite store and the remote REST store implement it.
type Store interface {
	ListAll(ctx context.Context) ([]Record, error)
	Insert(ctx context.Context, r Record) error
	Update(ctx context.Context, id string, r Record) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Timestamp marshals as epoch milliseconds but accepts either an integer or
// an ISO-8601 string when decoding. Anything unparseable falls back to now.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if ms, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		t.Time = time.UnixMilli(ms)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := time.Parse(time.RFC3339, s); err == nil {
			t.Time = parsed
			return nil
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			t.Time = time.UnixMilli(ms)
			return nil
		}
	}
	t.Time = time.Now()
	return nil
}

type CommitRecord struct {
	ID      string `json:"id"`
	Hash    string `json:"hash"`
	Message string `json:"message"`
	Author  string `json:"author"`
	Date    string `json:"date"` // ISO-8601
}

type GitStateRecord struct {
	RemoteURL      string         `json:"remote_url"`
	Branch         string         `json:"branch"`
	Commits        []CommitRecord `json:"commits"`
	LastSync       Timestamp      `json:"last_sync"`
	Status         string         `json:"status"`
	PendingChanges int            `json:"pending_changes,omitempty"`
}

type ChangeLogRecord struct {
	ID     string    `json:"id"`
	Date   Timestamp `json:"date"`
	Author string    `json:"author"`
	Reason string    `json:"reason"`
}

type Record struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Status        string            `json:"status"`
	WebsiteURL    string            `json:"website_url"`
	RepoURL       string            `json:"repo_url"`
	ImageURL      string            `json:"image_url"`
	TechStack     []string          `json:"tech_stack"`
	Files         string            `json:"files"`
	ItemType      string            `json:"item_type"`
	CreatedAt     Timestamp         `json:"created_at"`
	ChangeHistory []ChangeLogRecord `json:"change_history"`
	GitState      *GitStateRecord   `json:"git_state,omitempty"`
}

// FromProject maps the in-memory shape to the stored shape.
func FromProject(p models.Project) Record {
	r := Record{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		WebsiteURL:  p.WebsiteURL,
		RepoURL:     p.RepoURL,
		ImageURL:    p.ImageURL,
		TechStack:   p.TechStack,
		Files:       p.Files,
		ItemType:    string(p.ItemType),
		CreatedAt:   Timestamp{p.CreatedAt},
	}
	for _, e := range p.ChangeHistory {
		r.ChangeHistory = append(r.ChangeHistory, ChangeLogRecord{
			ID:     e.ID,
			Date:   Timestamp{e.Date},
			Author: e.Author,
			Reason: e.Reason,
		})
	}
	if g := p.GitState; g != nil {
		gr := &GitStateRecord{
			RemoteURL:      g.RemoteURL,
			Branch:         g.Branch,
			LastSync:       Timestamp{g.LastSync},
			Status:         string(g.Status),
			PendingChanges: g.PendingChanges,
		}
		for _, c := range g.Commits {
			gr.Commits = append(gr.Commits, CommitRecord{
				ID:      c.ID,
				Hash:    c.Hash,
				Message: c.Message,
				Author:  c.Author,
				Date:    c.Date.Format(time.RFC3339),
			})
		}
		r.GitState = gr
	}
	return r
}

// ToProject maps the stored shape back, substituting safe defaults for
// missing fields the way the app has always tolerated partial rows.
func (r Record) ToProject() models.Project {
	p := models.Project{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Status:      models.Status(r.Status),
		WebsiteURL:  r.WebsiteURL,
		RepoURL:     r.RepoURL,
		ImageURL:    r.ImageURL,
		TechStack:   r.TechStack,
		Files:       r.Files,
		ItemType:    models.ItemType(r.ItemType),
		CreatedAt:   r.CreatedAt.Time,
	}
	if p.Name == "" {
		p.Name = "Untitled Project"
	}
	if p.Status == "" {
		p.Status = models.StatusIdea
	}
	if p.ItemType == "" {
		p.ItemType = models.ItemApp
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	for _, e := range r.ChangeHistory {
		p.ChangeHistory = append(p.ChangeHistory, models.ChangeLogEntry{
			ID:     e.ID,
			Date:   e.Date.Time,
			Author: e.Author,
			Reason: e.Reason,
		})
	}
	if gr := r.GitState; gr != nil {
		g := &models.GitState{
			RemoteURL:      gr.RemoteURL,
			Branch:         gr.Branch,
			LastSync:       gr.LastSync.Time,
			Status:         models.SyncStatus(gr.Status),
			PendingChanges: gr.PendingChanges,
		}
		for _, c := range gr.Commits {
			date, err := time.Parse(time.RFC3339, c.Date)
			if err != nil {
				date = time.Now()
			}
			g.Commits = append(g.Commits, models.Commit{
				ID:      c.ID,
				Hash:    c.Hash,
				Message: c.Message,
				Author:  c.Author,
				Date:    date,
			})
		}
		p.GitState = g
	}
	return p
}
