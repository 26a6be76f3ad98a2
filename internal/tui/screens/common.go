package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4k/fets.space/internal/ai"
	"github.com/hy4k/fets.space/internal/config"
	"github.com/hy4k/fets.space/internal/gitsim"
	"github.com/hy4k/fets.space/internal/models"
	"github.com/hy4k/fets.space/internal/store"
)

// Context is the shared application state injected into every screen: the
// catalog, the sync simulator, the AI helper, settings and the session user.
// Screens hold read-only snapshots of projects and must refresh through the
// catalog after mutations.
type Context struct {
	Catalog *store.Catalog
	Sim     *gitsim.Simulator
	AI      *ai.Client
	Config  *config.Config
	Users   []models.User
	Current models.User
	MyList  map[string]bool
	Liked   map[string]bool
}

// NavigateMsg is sent when navigation to another screen is requested
type NavigateMsg struct {
	Screen     string
	ProjectID  string
	SOPID      string
	ResourceID string
	Editing    bool
}

func Navigate(screen string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: screen}
	}
}

func NavigateToProject(projectID string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: "detail", ProjectID: projectID}
	}
}

func NavigateToEdit(projectID string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: "form", ProjectID: projectID, Editing: true}
	}
}

func NavigateToSOP(sopID string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: "sop", SOPID: sopID}
	}
}

func NavigateToResource(resourceID string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: "resource", ResourceID: resourceID}
	}
}

// RefreshMsg is sent when data should be refreshed
type RefreshMsg struct{}

func Refresh() tea.Cmd {
	return func() tea.Msg {
		return RefreshMsg{}
	}
}

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginBottom(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

// AccentStyle renders text in the configured accent color.
func (c *Context) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Config.AccentColor))
}
