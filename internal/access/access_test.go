package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hy4k/fets.space/internal/models"
)

func TestCan(t *testing.T) {
	tests := []struct {
		name   string
		role   models.Role
		action Action
		want   bool
	}{
		{"admin manages users", models.RoleAdmin, ActionManageUsers, true},
		{"admin manages all projects", models.RoleAdmin, ActionManageAllProjects, true},
		{"developer creates projects", models.RoleDeveloper, ActionCreateProject, true},
		{"developer edits technical fields", models.RoleDeveloper, ActionEditTechnical, true},
		{"developer cannot manage users", models.RoleDeveloper, ActionManageUsers, false},
		{"editor edits metadata", models.RoleEditor, ActionEditMetadata, true},
		{"editor cannot edit technical fields", models.RoleEditor, ActionEditTechnical, false},
		{"editor cannot create", models.RoleEditor, ActionCreateProject, false},
		{"viewer edits nothing", models.RoleViewer, ActionEditMetadata, false},
		{"unknown role is a viewer", models.Role("Intern"), ActionEditMetadata, false},
		{"unknown role cannot create", models.Role("Intern"), ActionCreateProject, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Can(tt.role, tt.action))
		})
	}
}

func TestCanEdit(t *testing.T) {
	assert.True(t, CanEdit(models.RoleAdmin))
	assert.True(t, CanEdit(models.RoleDeveloper))
	assert.True(t, CanEdit(models.RoleEditor))
	assert.False(t, CanEdit(models.RoleViewer))
	assert.False(t, CanEdit(models.Role("")))
}
