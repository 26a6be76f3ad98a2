package models

import (
	"strings"
	"time"
)

// Status values use the display wording shown on project cards.
type Status string

const (
	StatusIdea       Status = "Concept Phase"
	StatusInProgress Status = "In Development"
	StatusCompleted  Status = "Deployed"
	StatusArchived   Status = "Deprecated"
)

type ItemType string

const (
	ItemApp  ItemType = "app"
	ItemFile ItemType = "file"
)

type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleDeveloper Role = "Developer"
	RoleEditor    Role = "Editor"
	RoleViewer    Role = "Viewer"
)

type SyncStatus string

const (
	SyncClean    SyncStatus = "clean"
	SyncAhead    SyncStatus = "ahead"
	SyncBehind   SyncStatus = "behind"
	SyncDiverged SyncStatus = "diverged"
)

type Category string

const (
	CategoryHome      Category = "Home"
	CategoryFetsApps  Category = "FETS Apps"
	CategoryResources Category = "Resources"
	CategoryMyList    Category = "My List"
)

type Commit struct {
	ID      string
	Hash    string
	Message string
	Author  string
	Date    time.Time
}

type GitState struct {
	RemoteURL      string
	Branch         string
	Commits        []Commit // newest first
	LastSync       time.Time
	Status         SyncStatus
	PendingChanges int
}

type ChangeLogEntry struct {
	ID     string
	Date   time.Time
	Author string
	Reason string
}

type Project struct {
	ID            string
	Name          string
	Description   string
	Status        Status
	WebsiteURL    string
	RepoURL       string
	ImageURL      string
	TechStack     []string
	Files         string // text block describing file structure or content
	ItemType      ItemType
	CreatedAt     time.Time
	ChangeHistory []ChangeLogEntry // oldest first
	GitState      *GitState        // nil unless a repo has been initialized
}

type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	AvatarURL string
}

// Draft carries form input for creating or editing a project. TechStack is the
// raw comma-separated string as typed.
type Draft struct {
	Name         string
	Description  string
	Status       Status
	WebsiteURL   string
	RepoURL      string
	ImageURL     string
	TechStack    string
	Files        string
	ItemType     ItemType
	CreatedAt    time.Time // zero means "now"
	ChangeReason string
}

// Normalize applies product rules that run before validation: reference files
// are always considered deployed.
func (d *Draft) Normalize() {
	if d.ItemType == ItemFile {
		d.Status = StatusCompleted
	}
}

// ParseTechStack splits a comma-separated input, trimming segments and
// dropping empty ones. Order is preserved and duplicates are kept.
func ParseTechStack(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// TechStackString is the inverse of ParseTechStack, for form prefill.
func TechStackString(tags []string) string {
	return strings.Join(tags, ", ")
}
