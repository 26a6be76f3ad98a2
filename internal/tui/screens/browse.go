package screens

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4k/fets.space/internal/access"
	"github.com/hy4k/fets.space/internal/models"
	"github.com/hy4k/fets.space/internal/views"
)

// FeaturedRotation is how often the hero banner picks a new app.
const FeaturedRotation = 120 * time.Second

var categories = []models.Category{
	models.CategoryHome,
	models.CategoryFetsApps,
	models.CategoryResources,
	models.CategoryMyList,
}

// Browse is the main catalog screen: category tabs, search, status rows and
// the featured banner.
type Browse struct {
	ctx    *Context
	width  int
	height int

	category  models.Category
	search    textinput.Model
	searching bool

	groups   []views.StatusGroup
	featured *models.Project
	cursor   int // index into the flattened visible list

	rng *rand.Rand
	gen int // invalidates stale rotation ticks
}

func NewBrowse(ctx *Context) *Browse {
	ti := textinput.New()
	ti.Placeholder = "Search projects, stacks, files..."
	ti.CharLimit = 80
	ti.Width = 40

	return &Browse{
		ctx:      ctx,
		category: models.CategoryHome,
		search:   ti,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Searching reports whether the search box has focus, so the app shell can
// let 'q' be typed instead of quitting.
func (b *Browse) Searching() bool {
	return b.searching
}

func (b *Browse) SetSize(width, height int) {
	b.width = width
	b.height = height
}

type rotateFeaturedMsg struct {
	gen int
}

func (b *Browse) Init() tea.Cmd {
	// Invalidate any rotation tick still pending from a previous visit to
	// this screen, so chains never accumulate across navigations.
	b.gen++
	b.refresh()
	if b.featured == nil {
		b.featured = views.PickFeatured(b.ctx.Catalog.Projects(), b.rng)
	}
	return b.scheduleRotation()
}

func (b *Browse) scheduleRotation() tea.Cmd {
	gen := b.gen
	return tea.Tick(FeaturedRotation, func(time.Time) tea.Msg {
		return rotateFeaturedMsg{gen: gen}
	})
}

// refresh recomputes the derived views from the current catalog snapshot.
func (b *Browse) refresh() {
	projects := b.ctx.Catalog.Projects()
	filtered := views.FilterByCategory(projects, b.category, b.ctx.MyList)
	filtered = views.Search(filtered, b.search.Value())
	b.groups = views.GroupByStatus(filtered)
	if b.cursor >= b.visibleCount() {
		b.cursor = 0
	}
	// Drop a featured project that no longer exists.
	if b.featured != nil {
		if _, ok := b.ctx.Catalog.Get(b.featured.ID); !ok {
			b.featured = views.PickFeatured(projects, b.rng)
		}
	}
}

func (b *Browse) visible() []models.Project {
	var out []models.Project
	for _, g := range b.groups {
		out = append(out, g.Projects...)
	}
	return out
}

func (b *Browse) visibleCount() int {
	n := 0
	for _, g := range b.groups {
		n += len(g.Projects)
	}
	return n
}

func (b *Browse) selected() *models.Project {
	items := b.visible()
	if b.cursor < 0 || b.cursor >= len(items) {
		return nil
	}
	return &items[b.cursor]
}

func (b *Browse) Update(msg tea.Msg) tea.Cmd {
	if b.searching {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "enter":
				b.searching = false
				b.search.Blur()
				b.refresh()
				return nil
			case "esc":
				b.searching = false
				b.search.Blur()
				b.search.SetValue("")
				b.refresh()
				return nil
			}
		}
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(msg)
		b.refresh()
		return cmd
	}

	switch msg := msg.(type) {
	case RefreshMsg:
		b.refresh()
		return nil

	case rotateFeaturedMsg:
		if msg.gen != b.gen {
			return nil // stale timer from a previous session of this screen
		}
		if picked := views.PickFeatured(b.ctx.Catalog.Projects(), b.rng); picked != nil {
			b.featured = picked
		}
		return b.scheduleRotation()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < b.visibleCount()-1 {
				b.cursor++
			}
		case "tab":
			b.nextCategory(1)
		case "shift+tab":
			b.nextCategory(-1)
		case "/":
			b.searching = true
			b.search.Focus()
			return textinput.Blink
		case "enter":
			if p := b.selected(); p != nil {
				return NavigateToProject(p.ID)
			}
		case "m":
			if p := b.selected(); p != nil {
				toggle(b.ctx.MyList, p.ID)
				b.refresh()
			}
		case "L":
			if p := b.selected(); p != nil {
				toggle(b.ctx.Liked, p.ID)
			}
		case "c":
			if access.Can(b.ctx.Current.Role, access.ActionCreateProject) {
				return Navigate("form")
			}
		case "p":
			return Navigate("sop")
		case "v":
			return Navigate("resource")
		case "s":
			return Navigate("settings")
		case "u":
			if access.Can(b.ctx.Current.Role, access.ActionManageUsers) {
				return Navigate("users")
			}
		}
	}
	return nil
}

func (b *Browse) nextCategory(delta int) {
	for i, c := range categories {
		if c == b.category {
			b.category = categories[(i+delta+len(categories))%len(categories)]
			b.cursor = 0
			b.refresh()
			return
		}
	}
	b.category = categories[0]
	b.refresh()
}

func (b *Browse) View() string {
	var v strings.Builder

	title := "FETS SPACE"
	if b.ctx.Catalog.Offline() {
		title += "  " + WarningStyle.Render("[OFFLINE]")
	}
	v.WriteString(b.ctx.AccentStyle().Render(title))
	v.WriteString("\n")
	v.WriteString(SubtitleStyle.Render(fmt.Sprintf("Signed in as %s (%s)", b.ctx.Current.Name, b.ctx.Current.Role)))
	v.WriteString("\n")

	// Category tabs
	var tabs []string
	for _, c := range categories {
		if c == b.category {
			tabs = append(tabs, SelectedStyle.Render("["+string(c)+"]"))
		} else {
			tabs = append(tabs, DimStyle.Render(" "+string(c)+" "))
		}
	}
	v.WriteString(strings.Join(tabs, " "))
	v.WriteString("\n\n")

	if b.searching || b.search.Value() != "" {
		v.WriteString("Search: " + b.search.View())
		v.WriteString("\n\n")
	}

	// Featured banner
	if b.featured != nil {
		banner := fmt.Sprintf("%s\n%s", b.ctx.AccentStyle().Render("FEATURED: "+b.featured.Name), truncate(b.featured.Description, 100))
		v.WriteString(BoxStyle.Render(banner))
		v.WriteString("\n\n")
	}

	if b.visibleCount() == 0 {
		v.WriteString(DimStyle.Render("Nothing here yet. Try another category or clear the search."))
		v.WriteString("\n")
	}

	idx := 0
	for _, g := range b.groups {
		if len(g.Projects) == 0 {
			continue
		}
		v.WriteString(SubtitleStyle.Render(g.Status))
		v.WriteString("\n")
		for _, p := range g.Projects {
			marker := "  "
			style := NormalStyle
			if idx == b.cursor {
				marker = "> "
				style = SelectedStyle
			}
			line := fmt.Sprintf("%s%s", marker, style.Render(p.Name))
			var badges []string
			if b.ctx.MyList[p.ID] {
				badges = append(badges, "+list")
			}
			if b.ctx.Liked[p.ID] {
				badges = append(badges, "liked")
			}
			if p.GitState != nil && p.GitState.Status != models.SyncClean {
				badges = append(badges, string(p.GitState.Status))
			}
			if len(badges) > 0 {
				line += " " + DimStyle.Render("("+strings.Join(badges, ", ")+")")
			}
			v.WriteString(line)
			v.WriteString("\n")
			idx++
		}
		v.WriteString("\n")
	}

	help := "[/] Search  [tab] Category  [enter] Open  [m] My List  [L] Like  [p] SOP  [v] Vendors  [s] Settings"
	if access.Can(b.ctx.Current.Role, access.ActionCreateProject) {
		help += "  [c] Create"
	}
	if access.Can(b.ctx.Current.Role, access.ActionManageUsers) {
		help += "  [u] Users"
	}
	help += "  [q] Quit"
	v.WriteString(HelpStyle.Render(help))

	return v.String()
}

func toggle(set map[string]bool, id string) {
	if set[id] {
		delete(set, id)
	} else {
		set[id] = true
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
