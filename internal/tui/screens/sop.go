package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4k/fets.space/internal/content"
)

// SOP renders the operating procedure handbook: a section list on top,
// the selected chapter below.
type SOP struct {
	ctx    *Context
	width  int
	height int

	cursor    int
	sectionID string
}

func NewSOP(ctx *Context) *SOP {
	return &SOP{ctx: ctx}
}

func (s *SOP) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetSection jumps straight to a chapter, for deep links from navigation.
func (s *SOP) SetSection(id string) {
	s.sectionID = id
	for i, sid := range content.SOPOrder {
		if sid == id {
			s.cursor = i
		}
	}
}

func (s *SOP) Init() tea.Cmd {
	if s.sectionID == "" {
		s.sectionID = content.SOPOrder[s.cursor]
	}
	return nil
}

func (s *SOP) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc":
			return Navigate("browse")
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
				s.sectionID = content.SOPOrder[s.cursor]
			}
		case "down", "j":
			if s.cursor < len(content.SOPOrder)-1 {
				s.cursor++
				s.sectionID = content.SOPOrder[s.cursor]
			}
		}
	}
	return nil
}

func (s *SOP) View() string {
	var v strings.Builder

	v.WriteString(s.ctx.AccentStyle().Render("Standard Operating Procedures"))
	v.WriteString("\n\n")

	for i, id := range content.SOPOrder {
		section, ok := content.SOPByID(id)
		if !ok {
			continue
		}
		if i == s.cursor {
			v.WriteString(SelectedStyle.Render("> " + section.Title))
		} else {
			v.WriteString(DimStyle.Render("  " + section.Title))
		}
		v.WriteString("\n")
	}
	v.WriteString("\n")

	section, ok := content.SOPByID(s.sectionID)
	if !ok {
		v.WriteString(DimStyle.Render("Section not found."))
		v.WriteString("\n")
		v.WriteString(HelpStyle.Render("[esc] Back"))
		return v.String()
	}

	v.WriteString(TitleStyle.Render(section.Title))
	v.WriteString("\n")
	v.WriteString(NormalStyle.Render("Purpose: " + section.Purpose))
	v.WriteString("\n")
	v.WriteString(DimStyle.Render("Scope: " + section.Scope))
	v.WriteString("\n\n")

	if len(section.Responsibilities) > 0 {
		v.WriteString(SubtitleStyle.Render("Responsibilities"))
		v.WriteString("\n")
		for _, r := range section.Responsibilities {
			v.WriteString(NormalStyle.Render("  - " + r))
			v.WriteString("\n")
		}
		v.WriteString("\n")
	}

	for _, step := range section.Steps {
		v.WriteString(SubtitleStyle.Render(step.Heading))
		v.WriteString("\n")
		for _, line := range step.Content {
			v.WriteString(NormalStyle.Render("  - " + line))
			v.WriteString("\n")
		}
		v.WriteString("\n")
	}

	v.WriteString(HelpStyle.Render("[↑/↓] Section  [esc] Back"))
	return v.String()
}
