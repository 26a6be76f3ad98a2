package screens

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4k/fets.space/internal/access"
	"github.com/hy4k/fets.space/internal/ai"
	"github.com/hy4k/fets.space/internal/models"
)

const dateLayout = "2006-01-02"

type fieldGroup int

const (
	groupMetadata fieldGroup = iota
	groupTechnical
	groupReason
)

type formField struct {
	label string
	group fieldGroup
	input textinput.Model
	// cycle holds the options for enum fields; empty for free text.
	cycle []string
	sel   int
}

// Form is the create/edit screen. Field access is gated per group through
// the permission table, so an Editor can change metadata but not the
// technical fields.
type Form struct {
	ctx    *Context
	width  int
	height int

	editing   bool
	projectID string
	fields    []formField
	focus     int

	statuses []models.Status

	err      error
	analysis *ai.SearchResult
	aiBusy   bool
	notice   string
}

func NewForm(ctx *Context) *Form {
	return &Form{
		ctx: ctx,
		statuses: []models.Status{
			models.StatusIdea,
			models.StatusInProgress,
			models.StatusCompleted,
			models.StatusArchived,
		},
	}
}

func (f *Form) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetProject switches the form to edit mode for the given project, or to
// create mode when id is empty.
func (f *Form) SetProject(id string) {
	f.projectID = id
	f.editing = id != ""
}

func (f *Form) Init() tea.Cmd {
	f.err = nil
	f.analysis = nil
	f.aiBusy = false
	f.notice = ""

	var p models.Project
	if f.editing {
		var ok bool
		p, ok = f.ctx.Catalog.Get(f.projectID)
		if !ok {
			f.editing = false
		}
	}

	newText := func(label string, group fieldGroup, value, placeholder string) formField {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 300
		ti.Width = 60
		ti.SetValue(value)
		return formField{label: label, group: group, input: ti}
	}

	status := models.StatusIdea
	itemType := models.ItemApp
	date := time.Now().Format(dateLayout)
	if f.editing {
		status = p.Status
		itemType = p.ItemType
		date = p.CreatedAt.Format(dateLayout)
	}

	statusField := formField{label: "Status", group: groupMetadata, cycle: statusStrings(f.statuses)}
	for i, s := range f.statuses {
		if s == status {
			statusField.sel = i
		}
	}
	typeField := formField{label: "Type", group: groupMetadata, cycle: []string{string(models.ItemApp), string(models.ItemFile)}}
	if itemType == models.ItemFile {
		typeField.sel = 1
	}

	f.fields = []formField{
		newText("Name", groupMetadata, p.Name, "Project or file name"),
		newText("Description", groupMetadata, p.Description, "What does it do?"),
		statusField,
		typeField,
		newText("Website URL", groupMetadata, p.WebsiteURL, "https://"),
		newText("Image URL", groupMetadata, p.ImageURL, "Cover image"),
		newText("Created", groupMetadata, date, dateLayout),
		newText("Tech Stack", groupTechnical, models.TechStackString(p.TechStack), "Comma, separated, tags"),
		newText("Repo URL", groupTechnical, p.RepoURL, "https://...git"),
		newText("Files", groupTechnical, p.Files, "File tree or notes"),
	}
	if f.editing {
		f.fields = append(f.fields, newText("Change Reason", groupReason, "", "Why this edit? (required)"))
	}

	f.focus = f.firstEditable()
	if f.focus >= 0 && f.fields[f.focus].cycle == nil {
		f.fields[f.focus].input.Focus()
	}
	return textinput.Blink
}

func statusStrings(statuses []models.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (f *Form) editable(i int) bool {
	switch f.fields[i].group {
	case groupMetadata:
		return access.Can(f.ctx.Current.Role, access.ActionEditMetadata)
	case groupTechnical:
		return access.Can(f.ctx.Current.Role, access.ActionEditTechnical)
	default:
		return access.CanEdit(f.ctx.Current.Role)
	}
}

func (f *Form) firstEditable() int {
	for i := range f.fields {
		if f.editable(i) {
			return i
		}
	}
	return -1
}

func (f *Form) moveFocus(delta int) {
	if f.focus >= 0 && f.fields[f.focus].cycle == nil {
		f.fields[f.focus].input.Blur()
	}
	n := len(f.fields)
	for range f.fields {
		f.focus = (f.focus + delta + n) % n
		if f.editable(f.focus) {
			break
		}
	}
	if f.focus >= 0 && f.fields[f.focus].cycle == nil {
		f.fields[f.focus].input.Focus()
	}
}

func (f *Form) value(label string) string {
	for i := range f.fields {
		if f.fields[i].label == label {
			if f.fields[i].cycle != nil {
				return f.fields[i].cycle[f.fields[i].sel]
			}
			return f.fields[i].input.Value()
		}
	}
	return ""
}

func (f *Form) draft() models.Draft {
	createdAt, err := time.Parse(dateLayout, f.value("Created"))
	if err != nil {
		createdAt = time.Now() // unparseable dates fall back to now
	}
	return models.Draft{
		Name:         f.value("Name"),
		Description:  f.value("Description"),
		Status:       models.Status(f.value("Status")),
		WebsiteURL:   f.value("Website URL"),
		RepoURL:      f.value("Repo URL"),
		ImageURL:     f.value("Image URL"),
		TechStack:    f.value("Tech Stack"),
		Files:        f.value("Files"),
		ItemType:     models.ItemType(f.value("Type")),
		CreatedAt:    createdAt,
		ChangeReason: f.value("Change Reason"),
	}
}

type suggestDoneMsg struct {
	suggestion *ai.Suggestion
	err        error
}

type analyzeDoneMsg struct {
	result *ai.SearchResult
	err    error
}

func (f *Form) suggestCmd() tea.Cmd {
	client := f.ctx.AI
	name := f.value("Name")
	stack := f.value("Tech Stack")
	return func() tea.Msg {
		s, err := client.SuggestDetails(context.Background(), name, stack)
		return suggestDoneMsg{suggestion: s, err: err}
	}
}

func (f *Form) analyzeCmd() tea.Cmd {
	client := f.ctx.AI
	stack := f.value("Tech Stack")
	return func() tea.Msg {
		r, err := client.AnalyzeStack(context.Background(), stack)
		return analyzeDoneMsg{result: r, err: err}
	}
}

func (f *Form) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case suggestDoneMsg:
		f.aiBusy = false
		if msg.err != nil || msg.suggestion == nil {
			f.notice = "No suggestion available."
			return nil
		}
		f.setValue("Description", msg.suggestion.Description)
		f.setValue("Files", msg.suggestion.SuggestedFiles)
		f.notice = "Suggestion applied."
		return nil

	case analyzeDoneMsg:
		f.aiBusy = false
		if msg.err != nil || msg.result == nil {
			f.notice = "No analysis available."
			return nil
		}
		f.analysis = msg.result
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f.goBack()
		case "tab", "down":
			f.moveFocus(1)
			return textinput.Blink
		case "shift+tab", "up":
			f.moveFocus(-1)
			return textinput.Blink
		case "left", "right":
			if f.focus >= 0 && f.fields[f.focus].cycle != nil {
				n := len(f.fields[f.focus].cycle)
				delta := 1
				if msg.String() == "left" {
					delta = -1
				}
				f.fields[f.focus].sel = (f.fields[f.focus].sel + delta + n) % n
				return nil
			}
		case "ctrl+s", "enter":
			if msg.String() == "enter" && f.focus >= 0 && f.fields[f.focus].cycle == nil {
				// Enter moves on within text fields; ctrl+s submits.
				f.moveFocus(1)
				return textinput.Blink
			}
			return f.submit()
		case "ctrl+g":
			if f.ctx.AI.Available() && !f.aiBusy {
				f.aiBusy = true
				f.notice = "Asking for suggestions..."
				return f.suggestCmd()
			}
			f.notice = "AI helper not configured."
			return nil
		case "ctrl+a":
			if f.ctx.AI.Available() && !f.aiBusy {
				f.aiBusy = true
				f.notice = "Analyzing stack..."
				return f.analyzeCmd()
			}
			f.notice = "AI helper not configured."
			return nil
		}
	}

	if f.focus >= 0 && f.fields[f.focus].cycle == nil {
		var cmd tea.Cmd
		f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
		return cmd
	}
	return nil
}

func (f *Form) setValue(label, value string) {
	for i := range f.fields {
		if f.fields[i].label == label && f.fields[i].cycle == nil {
			f.fields[i].input.SetValue(value)
		}
	}
}

func (f *Form) goBack() tea.Cmd {
	if f.editing {
		return tea.Batch(NavigateToProject(f.projectID), Refresh())
	}
	return tea.Batch(Navigate("browse"), Refresh())
}

func (f *Form) submit() tea.Cmd {
	draft := f.draft()
	if f.editing {
		_, err := f.ctx.Catalog.Update(context.Background(), f.projectID, draft, f.ctx.Current)
		if err != nil {
			f.err = err
			return nil
		}
		return f.goBack()
	}
	_, err := f.ctx.Catalog.Create(context.Background(), draft, f.ctx.Current)
	if err != nil {
		f.err = err
		return nil
	}
	return tea.Batch(Navigate("browse"), Refresh())
}

func (f *Form) View() string {
	var v strings.Builder

	if f.editing {
		v.WriteString(TitleStyle.Render("Edit Project"))
	} else {
		v.WriteString(TitleStyle.Render("New Project"))
	}
	v.WriteString("\n")

	for i := range f.fields {
		field := &f.fields[i]
		label := field.label
		if i == f.focus {
			label = SelectedStyle.Render("> " + label)
		} else if !f.editable(i) {
			label = DimStyle.Render("  " + label + " (locked)")
		} else {
			label = NormalStyle.Render("  " + label)
		}

		var value string
		if field.cycle != nil {
			value = "< " + field.cycle[field.sel] + " >"
		} else {
			value = field.input.View()
		}
		v.WriteString(label + ": " + value + "\n")
	}

	if f.err != nil {
		v.WriteString("\n")
		v.WriteString(ErrorStyle.Render("Error: " + f.err.Error()))
		v.WriteString("\n")
	}
	if f.notice != "" {
		v.WriteString("\n")
		v.WriteString(DimStyle.Render(f.notice))
		v.WriteString("\n")
	}
	if f.analysis != nil {
		v.WriteString("\n")
		v.WriteString(SubtitleStyle.Render("Stack Analysis"))
		v.WriteString("\n")
		v.WriteString(NormalStyle.Render(f.analysis.Text))
		v.WriteString("\n")
		for _, s := range f.analysis.Sources {
			v.WriteString(DimStyle.Render("  - " + s.Title + " " + s.URL))
			v.WriteString("\n")
		}
	}

	v.WriteString(HelpStyle.Render("[tab] Next  [←/→] Cycle  [ctrl+s] Save  [ctrl+g] Suggest  [ctrl+a] Analyze stack  [esc] Cancel"))
	return v.String()
}
