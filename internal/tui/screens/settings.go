package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4k/fets.space/internal/config"
)

var accentColors = []string{
	config.DefaultAccentColor, // brand red
	"#3B82F6",                 // blue
	"#22C55E",                 // green
	"#A855F7",                 // purple
	"#F59E0B",                 // amber
}

// Settings edits the persisted preferences. Every change is written to the
// settings file immediately.
type Settings struct {
	ctx    *Context
	width  int
	height int

	cursor int
	err    error
}

func NewSettings(ctx *Context) *Settings {
	return &Settings{ctx: ctx}
}

func (s *Settings) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Settings) Init() tea.Cmd {
	s.err = nil
	return nil
}

const settingsCount = 3

func (s *Settings) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc":
			return Navigate("browse")
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < settingsCount-1 {
				s.cursor++
			}
		case "enter", " ", "left", "right":
			s.apply(msg.String())
		}
	}
	return nil
}

func (s *Settings) apply(key string) {
	cfg := s.ctx.Config
	switch s.cursor {
	case 0:
		delta := 1
		if key == "left" {
			delta = -1
		}
		idx := 0
		for i, c := range accentColors {
			if c == cfg.AccentColor {
				idx = i
			}
		}
		cfg.AccentColor = accentColors[(idx+delta+len(accentColors))%len(accentColors)]
	case 1:
		cfg.ReduceMotion = !cfg.ReduceMotion
	case 2:
		cfg.EnableNotifications = !cfg.EnableNotifications
	}
	s.err = config.Save(cfg)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (s *Settings) View() string {
	var v strings.Builder

	v.WriteString(s.ctx.AccentStyle().Render("Settings"))
	v.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Accent color", s.ctx.AccentStyle().Render(s.ctx.Config.AccentColor)},
		{"Reduce motion", onOff(s.ctx.Config.ReduceMotion)},
		{"Notifications", onOff(s.ctx.Config.EnableNotifications)},
	}

	for i, row := range rows {
		if i == s.cursor {
			v.WriteString(SelectedStyle.Render("> " + row.label))
		} else {
			v.WriteString(NormalStyle.Render("  " + row.label))
		}
		v.WriteString(": " + row.value + "\n")
	}

	v.WriteString("\n")
	v.WriteString(DimStyle.Render("Store: " + s.ctx.Config.Store))
	v.WriteString("\n")

	if s.err != nil {
		v.WriteString("\n")
		v.WriteString(ErrorStyle.Render("Could not save settings: " + s.err.Error()))
		v.WriteString("\n")
	}

	v.WriteString(HelpStyle.Render("[↑/↓] Select  [enter] Toggle/Cycle  [esc] Back"))
	return v.String()
}
