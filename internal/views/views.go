// Package views holds the pure derivations the browse screen renders:
// category filtering, free-text search, status grouping and the featured pick.
package views

import (
	"math/rand"
	"strings"

	"github.com/hy4k/fets.space/internal/models"
)

// FetsIDPrefix marks first-party apps, as opposed to external client portals.
const FetsIDPrefix = "fets"

// OtherBucket collects projects whose status is not one of the known values.
const OtherBucket = "Other"

// StatusOrder is the fixed display order of the browse rows.
var StatusOrder = []models.Status{
	models.StatusCompleted,
	models.StatusInProgress,
	models.StatusIdea,
	models.StatusArchived,
}

// FilterByCategory restricts the catalog to the active category. An
// unrecognized category returns the input unchanged.
func FilterByCategory(projects []models.Project, category models.Category, myList map[string]bool) []models.Project {
	switch category {
	case models.CategoryHome:
		return filter(projects, func(p models.Project) bool { return p.ItemType == models.ItemApp })
	case models.CategoryResources:
		return filter(projects, func(p models.Project) bool { return p.ItemType == models.ItemFile })
	case models.CategoryMyList:
		return filter(projects, func(p models.Project) bool { return myList[p.ID] })
	case models.CategoryFetsApps:
		return filter(projects, func(p models.Project) bool {
			return p.ItemType == models.ItemApp && strings.HasPrefix(p.ID, FetsIDPrefix)
		})
	}
	return projects
}

// Search restricts to projects where the query is a case-insensitive
// substring of the name, description, any tech stack tag, or the files block.
// An empty query is a no-op.
func Search(projects []models.Project, query string) []models.Project {
	if query == "" {
		return projects
	}
	q := strings.ToLower(query)
	return filter(projects, func(p models.Project) bool {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Files), q) {
			return true
		}
		for _, tag := range p.TechStack {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	})
}

// StatusGroup is one browse row: a heading and the projects under it.
type StatusGroup struct {
	Status   string
	Projects []models.Project
}

// GroupByStatus partitions projects into the fixed display order, with an
// "Other" bucket at the end for unrecognized statuses. The partition is
// stable: each bucket preserves the input order.
func GroupByStatus(projects []models.Project) []StatusGroup {
	known := make(map[models.Status]int, len(StatusOrder))
	groups := make([]StatusGroup, 0, len(StatusOrder)+1)
	for i, s := range StatusOrder {
		known[s] = i
		groups = append(groups, StatusGroup{Status: string(s)})
	}

	var other []models.Project
	for _, p := range projects {
		if i, ok := known[p.Status]; ok {
			groups[i].Projects = append(groups[i].Projects, p)
		} else {
			other = append(other, p)
		}
	}
	if len(other) > 0 {
		groups = append(groups, StatusGroup{Status: OtherBucket, Projects: other})
	}
	return groups
}

// PickFeatured chooses one app uniformly at random for the hero banner.
// Returns nil when no apps exist.
func PickFeatured(projects []models.Project, rng *rand.Rand) *models.Project {
	apps := filter(projects, func(p models.Project) bool { return p.ItemType == models.ItemApp })
	if len(apps) == 0 {
		return nil
	}
	p := apps[rng.Intn(len(apps))]
	return &p
}

func filter(projects []models.Project, keep func(models.Project) bool) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
