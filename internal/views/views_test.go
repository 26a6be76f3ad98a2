package views

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4k/fets.space/internal/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{ID: "fets-space", Name: "FETS SPACE", ItemType: models.ItemApp, Status: models.StatusCompleted, TechStack: []string{"React", "TypeScript"}},
		{ID: "fets-live", Name: "FETS Live", ItemType: models.ItemApp, Status: models.StatusInProgress},
		{ID: "prometric-portal", Name: "Prometric Portal", ItemType: models.ItemApp, Status: models.StatusCompleted, Description: "Exam delivery gateway"},
		{ID: "cert-cma", Name: "CMA Handbook", ItemType: models.ItemFile, Status: models.StatusCompleted, Files: "policies.pdf"},
		{ID: "sketch", Name: "Sketch", ItemType: models.ItemApp, Status: models.Status("Someday")},
	}
}

func TestFilterByCategory(t *testing.T) {
	projects := sampleProjects()
	myList := map[string]bool{"cert-cma": true, "fets-live": true}

	tests := []struct {
		name     string
		category models.Category
		wantIDs  []string
	}{
		{"home shows apps only", models.CategoryHome, []string{"fets-space", "fets-live", "prometric-portal", "sketch"}},
		{"resources shows files only", models.CategoryResources, []string{"cert-cma"}},
		{"my list follows the set", models.CategoryMyList, []string{"fets-live", "cert-cma"}},
		{"fets apps needs prefix and app type", models.CategoryFetsApps, []string{"fets-space", "fets-live"}},
		{"unknown category passes through", models.Category("???"), []string{"fets-space", "fets-live", "prometric-portal", "cert-cma", "sketch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByCategory(projects, tt.category, myList)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterByCategoryIdempotent(t *testing.T) {
	projects := sampleProjects()
	once := FilterByCategory(projects, models.CategoryHome, nil)
	twice := FilterByCategory(once, models.CategoryHome, nil)
	assert.Equal(t, once, twice)
}

func TestSearch(t *testing.T) {
	projects := sampleProjects()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty query is a no-op", "", []string{"fets-space", "fets-live", "prometric-portal", "cert-cma", "sketch"}},
		{"matches name case-insensitively", "fets", []string{"fets-space", "fets-live"}},
		{"matches description", "gateway", []string{"prometric-portal"}},
		{"matches tech stack tags", "typescript", []string{"fets-space"}},
		{"matches files block", "policies", []string{"cert-cma"}},
		{"no hits", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(projects, tt.query)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGroupByStatus(t *testing.T) {
	projects := sampleProjects()
	groups := GroupByStatus(projects)

	require.Len(t, groups, 5, "four known buckets plus Other")
	assert.Equal(t, string(models.StatusCompleted), groups[0].Status)
	assert.Equal(t, string(models.StatusInProgress), groups[1].Status)
	assert.Equal(t, string(models.StatusIdea), groups[2].Status)
	assert.Equal(t, string(models.StatusArchived), groups[3].Status)
	assert.Equal(t, OtherBucket, groups[4].Status)

	// Stable within a bucket.
	require.Len(t, groups[0].Projects, 3)
	assert.Equal(t, "fets-space", groups[0].Projects[0].ID)
	assert.Equal(t, "prometric-portal", groups[0].Projects[1].ID)
	assert.Equal(t, "cert-cma", groups[0].Projects[2].ID)

	assert.Equal(t, "sketch", groups[4].Projects[0].ID)

	// The union of the buckets is the input.
	total := 0
	for _, g := range groups {
		total += len(g.Projects)
	}
	assert.Equal(t, len(projects), total)
}

func TestGroupByStatusOmitsEmptyOther(t *testing.T) {
	groups := GroupByStatus([]models.Project{
		{ID: "a", Status: models.StatusIdea},
	})
	require.Len(t, groups, 4)
	for _, g := range groups {
		assert.NotEqual(t, OtherBucket, g.Status)
	}
}

func TestPickFeatured(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Nil(t, PickFeatured(nil, rng))
	assert.Nil(t, PickFeatured([]models.Project{{ID: "f", ItemType: models.ItemFile}}, rng), "files are never featured")

	projects := sampleProjects()
	for i := 0; i < 50; i++ {
		p := PickFeatured(projects, rng)
		require.NotNil(t, p)
		assert.Equal(t, models.ItemApp, p.ItemType)
	}
}
