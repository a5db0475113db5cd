package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"conflictview/internal/buffer"
	"conflictview/internal/conflict"
	"conflictview/internal/paint"
)

type ViewerModel struct {
	path    string
	palette paint.Palette
	watcher *buffer.Watcher

	lines   []string
	blocks  []conflict.Block
	regions []conflict.Region

	viewport viewport.Model
	ready    bool
	err      error

	// Styles
	titleStyle  lipgloss.Style
	numberStyle lipgloss.Style
	errorStyle  lipgloss.Style
	helpStyle   lipgloss.Style
	bodyStyles  map[conflict.RegionKind]lipgloss.Style
	labelStyles map[conflict.RegionKind]lipgloss.Style
}

type fileLoadedMsg struct {
	lines []string
	err   error
}

type fileChangedMsg struct{}

func NewViewerModel(path string, palette paint.Palette, watcher *buffer.Watcher) ViewerModel {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62"))

	bodyStyles := make(map[conflict.RegionKind]lipgloss.Style)
	labelStyles := make(map[conflict.RegionKind]lipgloss.Style)
	for _, kind := range []conflict.RegionKind{
		conflict.RegionCurrent,
		conflict.RegionAncestor,
		conflict.RegionIncoming,
	} {
		bodyStyles[kind] = lipgloss.NewStyle().
			Background(palette.Color(kind).Lipgloss())

		labelStyles[kind] = lipgloss.NewStyle().
			Background(palette.LabelColor(kind).Lipgloss()).
			Foreground(lipgloss.Color("255")).
			Bold(true)
	}

	return ViewerModel{
		path:    path,
		palette: palette,
		watcher: watcher,

		viewport: vp,

		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),

		numberStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),

		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		bodyStyles:  bodyStyles,
		labelStyles: labelStyles,
	}
}

func (m ViewerModel) Init() tea.Cmd {
	return tea.Batch(m.loadFile(), m.waitForChange())
}

func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 4 // Title + help + borders
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Height-headerHeight)
			m.viewport.Style = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62"))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = msg.Height - headerHeight
		}

		if m.lines != nil {
			m.viewport.SetContent(m.renderLines())
		}

	case fileLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			// Full rescan on every load: no state survives from the
			// previous pass.
			m.lines = msg.lines
			m.blocks = conflict.Parse(msg.lines)
			m.regions = conflict.Project(msg.lines, m.blocks)
		}
		if m.ready && m.err == nil {
			m.viewport.SetContent(m.renderLines())
		}

	case fileChangedMsg:
		return m, tea.Batch(m.loadFile(), m.waitForChange())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "r":
			return m, m.loadFile()

		case "n":
			m.jumpToBlock(1)

		case "p":
			m.jumpToBlock(-1)

		case "j", "down":
			m.viewport.ScrollDown(1)

		case "k", "up":
			m.viewport.ScrollUp(1)

		case "d", "ctrl+d":
			m.viewport.HalfPageDown()

		case "u", "ctrl+u":
			m.viewport.HalfPageUp()

		case "f", "pgdn":
			m.viewport.PageDown()

		case "b", "pgup":
			m.viewport.PageUp()

		case "g", "home":
			m.viewport.GotoTop()

		case "G", "end":
			m.viewport.GotoBottom()
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ViewerModel) View() string {
	if m.err != nil {
		var sections []string
		title := m.titleStyle.Render("conflictview - " + m.path)
		sections = append(sections, title)
		sections = append(sections, "")
		sections = append(sections, m.errorStyle.Render("Error loading file: "+m.err.Error()))
		sections = append(sections, "")
		help := m.helpStyle.Render("r: retry | q: quit")
		sections = append(sections, help)
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if !m.ready {
		return "Loading file..."
	}

	var sections []string

	title := m.titleStyle.Render(fmt.Sprintf("conflictview - %s (%d conflicts)", m.path, len(m.blocks)))
	sections = append(sections, title)

	sections = append(sections, m.viewport.View())

	help := m.helpStyle.Render("n/p: next/prev conflict | j/k: scroll | d/u: half page | g/G: top/bottom | r: reload | q: quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ViewerModel) loadFile() tea.Cmd {
	return func() tea.Msg {
		lines, err := buffer.Snapshot(m.path)
		return fileLoadedMsg{
			lines: lines,
			err:   err,
		}
	}
}

func (m ViewerModel) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	changes := m.watcher.Changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// jumpToBlock scrolls to the next (dir > 0) or previous (dir < 0)
// conflict relative to the top of the viewport.
func (m *ViewerModel) jumpToBlock(dir int) {
	if len(m.blocks) == 0 {
		return
	}

	offset := m.viewport.YOffset
	if dir > 0 {
		for _, block := range m.blocks {
			if block.Markers.StartLine > offset {
				m.viewport.SetYOffset(block.Markers.StartLine)
				return
			}
		}
	} else {
		for i := len(m.blocks) - 1; i >= 0; i-- {
			if m.blocks[i].Markers.StartLine < offset {
				m.viewport.SetYOffset(m.blocks[i].Markers.StartLine)
				return
			}
		}
	}
}

func (m ViewerModel) renderLines() string {
	if len(m.lines) == 0 {
		return m.helpStyle.Render("Empty file.")
	}

	// Region lookup per line. Regions never overlap, so last write wins
	// is safe.
	regionAt := make(map[int]conflict.Region)
	labelAt := make(map[int]conflict.Region)
	for _, region := range m.regions {
		for line := region.Start; line <= region.End; line++ {
			regionAt[line] = region
		}
		labelAt[region.LabelLine] = region
	}

	width := len(fmt.Sprintf("%d", len(m.lines)))
	var rendered []string

	for i, line := range m.lines {
		number := m.numberStyle.Render(fmt.Sprintf("%*d ", width, i+1))

		text := line
		if region, ok := regionAt[i]; ok {
			text = m.bodyStyles[region.Kind].Render(line)
		}

		if region, ok := labelAt[i]; ok {
			text += "  " + m.labelStyles[region.Kind].Render(" "+region.Label+" ")
		}

		rendered = append(rendered, number+text)
	}

	return strings.Join(rendered, "\n")
}

// ShowFile opens the interactive viewer on path, reparsing whenever the
// file changes on disk. Blocks until the user quits.
func ShowFile(path string, palette paint.Palette) error {
	watcher, err := buffer.Watch(path)
	if err != nil {
		// Viewing still works without change notifications.
		watcher = nil
	}
	if watcher != nil {
		defer watcher.Close()
	}

	m := NewViewerModel(path, palette, watcher)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
