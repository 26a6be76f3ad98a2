package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4k/fets.space/internal/access"
	"github.com/hy4k/fets.space/internal/models"
)

var roleOrder = []models.Role{
	models.RoleAdmin,
	models.RoleDeveloper,
	models.RoleEditor,
	models.RoleViewer,
}

// Users is the admin screen for the staff roster: cycle a user's role or
// remove them. The roster lives in memory for the session.
type Users struct {
	ctx    *Context
	width  int
	height int

	cursor int
	notice string
}

func NewUsers(ctx *Context) *Users {
	return &Users{ctx: ctx}
}

func (u *Users) SetSize(width, height int) {
	u.width = width
	u.height = height
}

func (u *Users) Init() tea.Cmd {
	u.notice = ""
	if u.cursor >= len(u.ctx.Users) {
		u.cursor = 0
	}
	return nil
}

func (u *Users) Update(msg tea.Msg) tea.Cmd {
	if !access.Can(u.ctx.Current.Role, access.ActionManageUsers) {
		if msg, ok := msg.(tea.KeyMsg); ok && (msg.String() == "q" || msg.String() == "esc") {
			return Navigate("browse")
		}
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc":
			return Navigate("browse")
		case "up", "k":
			if u.cursor > 0 {
				u.cursor--
			}
		case "down", "j":
			if u.cursor < len(u.ctx.Users)-1 {
				u.cursor++
			}
		case "r":
			u.cycleRole()
		case "x":
			u.remove()
		}
	}
	return nil
}

func (u *Users) cycleRole() {
	if u.cursor < 0 || u.cursor >= len(u.ctx.Users) {
		return
	}
	user := &u.ctx.Users[u.cursor]
	idx := 0
	for i, r := range roleOrder {
		if r == user.Role {
			idx = i
		}
	}
	user.Role = roleOrder[(idx+1)%len(roleOrder)]
	if user.ID == u.ctx.Current.ID {
		u.ctx.Current.Role = user.Role
	}
	u.notice = fmt.Sprintf("%s is now %s", user.Name, user.Role)
}

func (u *Users) remove() {
	if u.cursor < 0 || u.cursor >= len(u.ctx.Users) {
		return
	}
	user := u.ctx.Users[u.cursor]
	if user.ID == u.ctx.Current.ID {
		u.notice = "You cannot remove yourself."
		return
	}
	u.ctx.Users = append(u.ctx.Users[:u.cursor], u.ctx.Users[u.cursor+1:]...)
	if u.cursor >= len(u.ctx.Users) && u.cursor > 0 {
		u.cursor--
	}
	u.notice = fmt.Sprintf("Removed %s", user.Name)
}

func (u *Users) View() string {
	var v strings.Builder

	v.WriteString(u.ctx.AccentStyle().Render("Team"))
	v.WriteString("\n\n")

	if !access.Can(u.ctx.Current.Role, access.ActionManageUsers) {
		v.WriteString(DimStyle.Render("Only an Admin can manage the team."))
		v.WriteString("\n")
		v.WriteString(HelpStyle.Render("[esc] Back"))
		return v.String()
	}

	for i, user := range u.ctx.Users {
		line := fmt.Sprintf("%s  %s", user.Name, DimStyle.Render(string(user.Role)))
		if user.ID == u.ctx.Current.ID {
			line += DimStyle.Render("  (you)")
		}
		if i == u.cursor {
			v.WriteString(SelectedStyle.Render("> ") + line)
		} else {
			v.WriteString("  " + line)
		}
		v.WriteString("\n")
	}

	if u.notice != "" {
		v.WriteString("\n")
		v.WriteString(DimStyle.Render(u.notice))
		v.WriteString("\n")
	}

	v.WriteString(HelpStyle.Render("[↑/↓] Select  [r] Cycle role  [x] Remove  [esc] Back"))
	return v.String()
}
