package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4k/fets.space/internal/access"
	"github.com/hy4k/fets.space/internal/gitsim"
	"github.com/hy4k/fets.space/internal/models"
)

type detailMode int

const (
	detailModeView detailMode = iota
	detailModeConfirmDelete
)

// Detail shows one project with its change history and the repository sync
// panel. The screen holds a snapshot; it re-reads the catalog after every
// mutation.
type Detail struct {
	ctx    *Context
	width  int
	height int

	projectID string
	project   models.Project
	found     bool

	mode      detailMode
	gitAction string // "pull" or "push" while a sync is in flight
	spin      spinner.Model
	message   string
	err       error
}

func NewDetail(ctx *Context) *Detail {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &Detail{ctx: ctx, spin: s}
}

func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
}

func (d *Detail) SetProject(id string) {
	d.projectID = id
}

func (d *Detail) Init() tea.Cmd {
	d.mode = detailModeView
	d.gitAction = ""
	d.message = ""
	d.err = nil
	d.reload()
	return nil
}

func (d *Detail) reload() {
	d.project, d.found = d.ctx.Catalog.Get(d.projectID)
}

type gitDoneMsg struct {
	action  string
	project models.Project
	err     error
}

type deleteDoneMsg struct {
	err error
}

func (d *Detail) pullCmd() tea.Cmd {
	id := d.projectID
	sim := d.ctx.Sim
	return func() tea.Msg {
		p, err := sim.Pull(context.Background(), id)
		return gitDoneMsg{action: "pull", project: p, err: err}
	}
}

func (d *Detail) pushCmd() tea.Cmd {
	id := d.projectID
	sim := d.ctx.Sim
	return func() tea.Msg {
		p, err := sim.Push(context.Background(), id)
		return gitDoneMsg{action: "push", project: p, err: err}
	}
}

func (d *Detail) deleteCmd() tea.Cmd {
	id := d.projectID
	catalog := d.ctx.Catalog
	return func() tea.Msg {
		return deleteDoneMsg{err: catalog.Delete(context.Background(), id)}
	}
}

func (d *Detail) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if d.gitAction != "" {
			var cmd tea.Cmd
			d.spin, cmd = d.spin.Update(msg)
			return cmd
		}
		return nil

	case gitDoneMsg:
		d.gitAction = ""
		if msg.err != nil {
			d.err = msg.err
			return nil
		}
		d.err = nil
		d.message = "Sync complete (" + msg.action + ")"
		d.reload()
		return nil

	case deleteDoneMsg:
		if msg.err != nil {
			// Delete is the one mutation whose remote failure must be seen.
			d.err = fmt.Errorf("delete failed: %w", msg.err)
			d.mode = detailModeView
			return nil
		}
		return tea.Batch(Navigate("browse"), Refresh())

	case tea.KeyMsg:
		if d.mode == detailModeConfirmDelete {
			switch msg.String() {
			case "y":
				return d.deleteCmd()
			default:
				d.mode = detailModeView
			}
			return nil
		}

		switch msg.String() {
		case "q", "esc":
			return tea.Batch(Navigate("browse"), Refresh())
		case "e":
			if access.CanEdit(d.ctx.Current.Role) {
				return NavigateToEdit(d.projectID)
			}
		case "d":
			if access.Can(d.ctx.Current.Role, access.ActionManageAllProjects) ||
				access.Can(d.ctx.Current.Role, access.ActionCreateProject) {
				d.mode = detailModeConfirmDelete
			}
		case "P":
			return d.startGit("pull", d.pullCmd())
		case "U":
			if d.project.GitState != nil && d.project.GitState.Status == models.SyncClean {
				d.err = gitsim.ErrNothingToPush
				return nil
			}
			return d.startGit("push", d.pushCmd())
		case "w":
			if d.project.GitState != nil {
				p, err := d.ctx.Sim.RecordWork(context.Background(), d.projectID)
				if err != nil {
					d.err = err
				} else {
					d.err = nil
					d.project = p
				}
			}
		}
	}
	return nil
}

func (d *Detail) startGit(action string, cmd tea.Cmd) tea.Cmd {
	if d.project.GitState == nil {
		return nil
	}
	if d.ctx.Sim.Busy(d.projectID) || d.gitAction != "" {
		d.err = gitsim.ErrSyncInFlight
		return nil
	}
	d.err = nil
	d.message = ""
	d.gitAction = action
	return tea.Batch(d.spin.Tick, cmd)
}

func (d *Detail) View() string {
	if !d.found {
		return TitleStyle.Render("Not found") + "\n" +
			DimStyle.Render("This project no longer exists.") + "\n" +
			HelpStyle.Render("[esc] Back")
	}

	p := d.project
	var v strings.Builder

	v.WriteString(d.ctx.AccentStyle().Render(p.Name))
	v.WriteString("\n")
	v.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s | %s | created %s", p.Status, p.ItemType, p.CreatedAt.Format("Jan 02, 2006"))))
	v.WriteString("\n\n")

	v.WriteString(NormalStyle.Render(p.Description))
	v.WriteString("\n\n")

	if len(p.TechStack) > 0 {
		v.WriteString(DimStyle.Render("Stack: " + strings.Join(p.TechStack, ", ")))
		v.WriteString("\n")
	}
	if p.WebsiteURL != "" {
		v.WriteString(DimStyle.Render("Site:  " + p.WebsiteURL))
		v.WriteString("\n")
	}
	if p.RepoURL != "" {
		v.WriteString(DimStyle.Render("Repo:  " + p.RepoURL))
		v.WriteString("\n")
	}
	if p.Files != "" {
		v.WriteString("\n")
		v.WriteString(SubtitleStyle.Render("Files"))
		v.WriteString("\n")
		v.WriteString(DimStyle.Render(p.Files))
		v.WriteString("\n")
	}

	if p.ItemType == models.ItemApp && p.GitState != nil {
		v.WriteString("\n")
		v.WriteString(d.gitPanel(p.GitState))
	}

	if len(p.ChangeHistory) > 0 {
		v.WriteString("\n")
		v.WriteString(SubtitleStyle.Render("Change History"))
		v.WriteString("\n")
		// Newest last in storage; show newest first.
		for i := len(p.ChangeHistory) - 1; i >= 0; i-- {
			e := p.ChangeHistory[i]
			v.WriteString(fmt.Sprintf("  %s  %s — %s\n",
				DimStyle.Render(e.Date.Format("Jan 02 15:04")), e.Author, e.Reason))
		}
	}

	if d.message != "" {
		v.WriteString("\n")
		v.WriteString(SuccessStyle.Render(d.message))
		v.WriteString("\n")
	}
	if d.err != nil {
		v.WriteString("\n")
		v.WriteString(ErrorStyle.Render("Error: " + d.err.Error()))
		v.WriteString("\n")
	}

	if d.mode == detailModeConfirmDelete {
		v.WriteString("\n")
		v.WriteString(WarningStyle.Render("Permanently delete this project? [y/N]"))
		v.WriteString("\n")
	}

	help := "[esc] Back"
	if access.CanEdit(d.ctx.Current.Role) {
		help += "  [e] Edit"
	}
	if access.Can(d.ctx.Current.Role, access.ActionCreateProject) {
		help += "  [d] Delete"
	}
	if p.GitState != nil {
		help += "  [P] Pull  [U] Push  [w] Record work"
	}
	v.WriteString(HelpStyle.Render(help))

	return v.String()
}

func (d *Detail) gitPanel(g *models.GitState) string {
	var v strings.Builder
	v.WriteString(SubtitleStyle.Render("Repository"))
	v.WriteString("\n")

	status := string(g.Status)
	switch g.Status {
	case models.SyncClean:
		status = SuccessStyle.Render("clean — up to date")
	case models.SyncAhead:
		status = WarningStyle.Render(fmt.Sprintf("ahead — %d commits to push", g.PendingChanges))
	case models.SyncBehind:
		status = WarningStyle.Render("behind — remote has new commits")
	case models.SyncDiverged:
		status = ErrorStyle.Render("diverged — manual resolution needed")
	}

	v.WriteString(fmt.Sprintf("  %s on %s\n", status, NormalStyle.Render(g.Branch)))
	v.WriteString(DimStyle.Render(fmt.Sprintf("  %s | synced %s\n", g.RemoteURL, g.LastSync.Format("15:04:05"))))

	if d.gitAction != "" {
		v.WriteString(fmt.Sprintf("  %s %sing...\n", d.spin.View(), d.gitAction))
	}

	max := 5
	if len(g.Commits) < max {
		max = len(g.Commits)
	}
	for _, c := range g.Commits[:max] {
		v.WriteString(fmt.Sprintf("  %s %s %s\n",
			WarningStyle.Render(shortHash(c.Hash)), NormalStyle.Render(truncate(c.Message, 60)), DimStyle.Render(c.Author)))
	}
	if len(g.Commits) > max {
		v.WriteString(DimStyle.Render(fmt.Sprintf("  ... %d more\n", len(g.Commits)-max)))
	}
	return v.String()
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
