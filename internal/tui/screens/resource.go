package screens

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4k/fets.space/internal/ai"
	"github.com/hy4k/fets.space/internal/content"
)

// Resource renders the vendor pages: exam rules, support contacts and an
// on-demand web search for the latest vendor updates.
type Resource struct {
	ctx    *Context
	width  int
	height int

	cursor int
	name   string

	updates  map[string]*ai.SearchResult
	fetching bool
	notice   string
}

func NewResource(ctx *Context) *Resource {
	return &Resource{ctx: ctx, updates: make(map[string]*ai.SearchResult)}
}

func (r *Resource) SetSize(width, height int) {
	r.width = width
	r.height = height
}

func (r *Resource) SetVendor(name string) {
	r.name = name
	for i, n := range content.ResourceOrder {
		if n == name {
			r.cursor = i
		}
	}
}

func (r *Resource) Init() tea.Cmd {
	if r.name == "" {
		r.name = content.ResourceOrder[r.cursor]
	}
	r.notice = ""
	return nil
}

type updatesDoneMsg struct {
	vendor string
	result *ai.SearchResult
	err    error
}

func (r *Resource) fetchUpdatesCmd() tea.Cmd {
	client := r.ctx.AI
	vendor := r.name
	return func() tea.Msg {
		res, err := client.SearchUpdates(context.Background(), vendor)
		return updatesDoneMsg{vendor: vendor, result: res, err: err}
	}
}

func (r *Resource) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case updatesDoneMsg:
		r.fetching = false
		if msg.err != nil || msg.result == nil {
			r.notice = "Could not fetch updates."
			return nil
		}
		r.updates[msg.vendor] = msg.result
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return Navigate("browse")
		case "up", "k", "left", "h":
			if r.cursor > 0 {
				r.cursor--
				r.name = content.ResourceOrder[r.cursor]
			}
		case "down", "j", "right", "l":
			if r.cursor < len(content.ResourceOrder)-1 {
				r.cursor++
				r.name = content.ResourceOrder[r.cursor]
			}
		case "u":
			if !r.ctx.AI.Available() {
				r.notice = "AI helper not configured."
				return nil
			}
			if !r.fetching {
				r.fetching = true
				r.notice = ""
				return r.fetchUpdatesCmd()
			}
		}
	}
	return nil
}

func (r *Resource) View() string {
	var v strings.Builder

	v.WriteString(r.ctx.AccentStyle().Render("Vendor Resources"))
	v.WriteString("\n\n")

	var tabs []string
	for i, n := range content.ResourceOrder {
		if i == r.cursor {
			tabs = append(tabs, SelectedStyle.Render("["+n+"]"))
		} else {
			tabs = append(tabs, DimStyle.Render(" "+n+" "))
		}
	}
	v.WriteString(strings.Join(tabs, " "))
	v.WriteString("\n\n")

	res, ok := content.ResourceByName(r.name)
	if !ok {
		v.WriteString(DimStyle.Render("Vendor not found."))
		v.WriteString("\n")
		v.WriteString(HelpStyle.Render("[esc] Back"))
		return v.String()
	}

	v.WriteString(TitleStyle.Render(res.Name))
	v.WriteString("\n")
	v.WriteString(NormalStyle.Render(res.Description))
	v.WriteString("\n\n")

	v.WriteString(SubtitleStyle.Render("Center Rules"))
	v.WriteString("\n")
	for _, rule := range res.Rules {
		v.WriteString(NormalStyle.Render("  - " + rule))
		v.WriteString("\n")
	}
	v.WriteString("\n")

	v.WriteString(SubtitleStyle.Render("Exams"))
	v.WriteString("\n")
	for _, e := range res.Exams {
		v.WriteString(NormalStyle.Render("  " + e.Name))
		v.WriteString("\n")
		v.WriteString(DimStyle.Render("    Window: " + e.Window + " | " + e.Guidelines))
		v.WriteString("\n")
	}
	v.WriteString("\n")

	v.WriteString(SubtitleStyle.Render("Support"))
	v.WriteString("\n")
	v.WriteString(DimStyle.Render("  " + res.Support.Phone + "  " + res.Support.Email + "  " + res.Support.URL))
	v.WriteString("\n")

	if r.fetching {
		v.WriteString("\n")
		v.WriteString(DimStyle.Render("Searching for latest updates..."))
		v.WriteString("\n")
	} else if upd, ok := r.updates[r.name]; ok {
		v.WriteString("\n")
		v.WriteString(SubtitleStyle.Render("Latest Updates"))
		v.WriteString("\n")
		v.WriteString(NormalStyle.Render(upd.Text))
		v.WriteString("\n")
		for _, s := range upd.Sources {
			v.WriteString(DimStyle.Render("  - " + s.Title + " " + s.URL))
			v.WriteString("\n")
		}
	}
	if r.notice != "" {
		v.WriteString("\n")
		v.WriteString(DimStyle.Render(r.notice))
		v.WriteString("\n")
	}

	v.WriteString(HelpStyle.Render("[↑/↓] Vendor  [u] Fetch updates  [esc] Back"))
	return v.String()
}
