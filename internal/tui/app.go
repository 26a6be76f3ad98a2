package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4k/fets.space/internal/tui/screens"
)

type Screen int

const (
	ScreenBrowse Screen = iota
	ScreenDetail
	ScreenForm
	ScreenSOP
	ScreenResource
	ScreenSettings
	ScreenUsers
)

type App struct {
	ctx           *screens.Context
	currentScreen Screen
	width         int
	height        int

	// Screen models
	browse   *screens.Browse
	detail   *screens.Detail
	form     *screens.Form
	sop      *screens.SOP
	resource *screens.Resource
	settings *screens.Settings
	users    *screens.Users
}

func NewApp(ctx *screens.Context) *App {
	return &App{
		ctx:           ctx,
		currentScreen: ScreenBrowse,
	}
}

func (a *App) Init() tea.Cmd {
	a.browse = screens.NewBrowse(a.ctx)
	a.detail = screens.NewDetail(a.ctx)
	a.form = screens.NewForm(a.ctx)
	a.sop = screens.NewSOP(a.ctx)
	a.resource = screens.NewResource(a.ctx)
	a.settings = screens.NewSettings(a.ctx)
	a.users = screens.NewUsers(a.ctx)

	return a.browse.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.currentScreen == ScreenBrowse && !a.browse.Searching() {
				return a, tea.Quit
			}
			// Let individual screens handle 'q' for going back
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browse.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.sop.SetSize(msg.Width, msg.Height)
		a.resource.SetSize(msg.Width, msg.Height)
		a.settings.SetSize(msg.Width, msg.Height)
		a.users.SetSize(msg.Width, msg.Height)

	case screens.NavigateMsg:
		return a.handleNavigation(msg)
	}

	// Update current screen
	var cmd tea.Cmd
	switch a.currentScreen {
	case ScreenBrowse:
		cmd = a.browse.Update(msg)
	case ScreenDetail:
		cmd = a.detail.Update(msg)
	case ScreenForm:
		cmd = a.form.Update(msg)
	case ScreenSOP:
		cmd = a.sop.Update(msg)
	case ScreenResource:
		cmd = a.resource.Update(msg)
	case ScreenSettings:
		cmd = a.settings.Update(msg)
	case ScreenUsers:
		cmd = a.users.Update(msg)
	}

	return a, cmd
}

func (a *App) handleNavigation(msg screens.NavigateMsg) (tea.Model, tea.Cmd) {
	switch msg.Screen {
	case "browse":
		a.currentScreen = ScreenBrowse
		return a, a.browse.Init()
	case "detail":
		a.currentScreen = ScreenDetail
		a.detail.SetProject(msg.ProjectID)
		return a, a.detail.Init()
	case "form":
		a.currentScreen = ScreenForm
		if msg.Editing {
			a.form.SetProject(msg.ProjectID)
		} else {
			a.form.SetProject("")
		}
		return a, a.form.Init()
	case "sop":
		a.currentScreen = ScreenSOP
		if msg.SOPID != "" {
			a.sop.SetSection(msg.SOPID)
		}
		return a, a.sop.Init()
	case "resource":
		a.currentScreen = ScreenResource
		if msg.ResourceID != "" {
			a.resource.SetVendor(msg.ResourceID)
		}
		return a, a.resource.Init()
	case "settings":
		a.currentScreen = ScreenSettings
		return a, a.settings.Init()
	case "users":
		a.currentScreen = ScreenUsers
		return a, a.users.Init()
	}
	return a, nil
}

func (a *App) View() string {
	var content string

	switch a.currentScreen {
	case ScreenBrowse:
		content = a.browse.View()
	case ScreenDetail:
		content = a.detail.View()
	case ScreenForm:
		content = a.form.View()
	case ScreenSOP:
		content = a.sop.View()
	case ScreenResource:
		content = a.resource.View()
	case ScreenSettings:
		content = a.settings.View()
	case ScreenUsers:
		content = a.users.View()
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height).
		Render(content)
}

func Run(ctx *screens.Context) error {
	app := NewApp(ctx)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
