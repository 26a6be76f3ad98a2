package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4k/fets.space/internal/models"
)

func TestSeedProjects(t *testing.T) {
	projects := SeedProjects()
	require.NotEmpty(t, projects)

	seen := make(map[string]bool)
	for _, p := range projects {
		assert.False(t, seen[p.ID], "duplicate id %q", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.False(t, p.CreatedAt.IsZero())

		if p.ItemType == models.ItemFile {
			assert.Equal(t, models.StatusCompleted, p.Status, "%s: files are always deployed", p.ID)
			assert.Nil(t, p.GitState, "%s: files have no repository", p.ID)
		}

		if p.GitState != nil {
			assert.NotEmpty(t, p.GitState.Branch)
			assert.NotEmpty(t, p.GitState.Commits)
			if p.GitState.Status == models.SyncAhead {
				assert.Greater(t, p.GitState.PendingChanges, 0, "%s: ahead means pending work", p.ID)
			}
		}
	}

	// The demo set exercises both sides of the FETS Apps filter.
	var fets, external int
	for _, p := range projects {
		if p.ItemType != models.ItemApp {
			continue
		}
		if strings.HasPrefix(p.ID, "fets") {
			fets++
		} else {
			external++
		}
	}
	assert.Greater(t, fets, 0)
	assert.Greater(t, external, 0)
}

func TestStaffUsersCoverRoles(t *testing.T) {
	users := StaffUsers()
	require.Len(t, users, 3)

	roles := make(map[models.Role]bool)
	for _, u := range users {
		assert.NotEmpty(t, u.ID)
		assert.NotEmpty(t, u.Name)
		roles[u.Role] = true
	}
	assert.True(t, roles[models.RoleAdmin])
	assert.True(t, roles[models.RoleDeveloper])
	assert.True(t, roles[models.RoleEditor])
}
