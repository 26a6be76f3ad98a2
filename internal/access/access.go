// Package access maps user roles to the actions they may perform. The edit
// form consults it per field group, so "edit metadata" and "edit technical
// fields" are separate actions.
package access

import "github.com/hy4k/fets.space/internal/models"

type Action int

const (
	// ActionCreateProject allows creating new catalog entries.
	ActionCreateProject Action = iota
	// ActionEditMetadata covers name, description, dates, status and urls.
	ActionEditMetadata
	// ActionEditTechnical covers tech stack, repo url and the files block.
	ActionEditTechnical
	// ActionManageUsers allows changing roles and removing users.
	ActionManageUsers
	// ActionManageAllProjects allows deleting any project outright.
	ActionManageAllProjects
)

var capabilities = map[models.Role]map[Action]bool{
	models.RoleAdmin: {
		ActionCreateProject:     true,
		ActionEditMetadata:      true,
		ActionEditTechnical:     true,
		ActionManageUsers:       true,
		ActionManageAllProjects: true,
	},
	models.RoleDeveloper: {
		ActionCreateProject: true,
		ActionEditMetadata:  true,
		ActionEditTechnical: true,
	},
	models.RoleEditor: {
		ActionEditMetadata: true,
	},
	models.RoleViewer: {},
}

// Can reports whether the role may perform the action. Unrecognized roles are
// treated as Viewer.
func Can(role models.Role, action Action) bool {
	caps, ok := capabilities[role]
	if !ok {
		return false
	}
	return caps[action]
}

// CanEdit reports whether the role may open the edit form at all.
func CanEdit(role models.Role) bool {
	return Can(role, ActionEditMetadata) || Can(role, ActionEditTechnical)
}
