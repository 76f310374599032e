package controller

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/pikescope/internal/model"
)

// Simple delegate for symbol list items.
type symbolDelegate struct {
	offset int
}

func (d symbolDelegate) Height() int  { return 1 }
func (d symbolDelegate) Spacing() int { return 0 }
func (d symbolDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d symbolDelegate) Render(w io.Writer, model list.Model, index int, item list.Item) {
	sym, ok := item.(symbolItem)
	if !ok {
		return
	}

	isSelected := index == model.Index()

	var nameStyle, kindStyle, locStyle lipgloss.Style

	// kind (8) + spacing (2) + name (24) + spacing (2)
	width := model.Width() - 36

	location := truncateToWidth(sym.location, width)

	if isSelected {
		base := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		kindStyle = base.Width(8)
		nameStyle = base.Width(24)
		locStyle = base

		location = animateScroll(sym.location, width, d.offset)
	} else {
		kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(8)
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true).Width(24)
		locStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}

	name := sym.symbol.Name
	if sym.shadows > 0 {
		name += "*"
	}

	line := fmt.Sprintf("%s  %s  %s",
		kindStyle.Render(string(sym.symbol.Kind)),
		nameStyle.Render(truncateToWidth(name, 24)),
		locStyle.Render(location),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// scopeModel browses the symbols visible in one resolved file.
type scopeModel struct {
	width        int
	height       int
	file         m.Path
	symbolList   list.Model
	delegate     symbolDelegate
	scope        *m.ScopeTable
	loadedFiles  int
	diagnostics  []*m.Diagnostic
	animOffset   int
	lastSelected int
}

func newScopeModel(res m.Resolution) scopeModel {
	delegate := symbolDelegate{}

	base := filepath.Dir(string(res.File.Path))

	var items []list.Item

	scope := res.Scope
	if scope == nil {
		scope = m.NewScopeTable(res.File.Path)
	}

	for _, sym := range scope.Symbols() {
		items = append(items, symbolItem{
			symbol:   sym,
			location: fmt.Sprintf("%s:%d", relativeTo(base, sym.File), sym.Line),
			shadows:  len(scope.Shadowed(sym.Name)),
		})
	}

	symbolList := list.New(items, delegate, 80, 20)
	symbolList.SetShowPagination(false)
	symbolList.SetShowFilter(true)
	symbolList.SetShowHelp(false)
	symbolList.SetShowTitle(false)
	symbolList.SetShowStatusBar(false)
	symbolList.FilterInput.Placeholder = "Filter by name…"

	return scopeModel{
		file:         res.File.Path,
		symbolList:   symbolList,
		delegate:     delegate,
		scope:        scope,
		loadedFiles:  len(res.Loaded),
		diagnostics:  res.Diagnostics,
		lastSelected: 0,
	}
}

func (sm scopeModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (sm scopeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.height = msg.Height
		sm.symbolList.SetWidth(sm.width)

	case tickMsg:
		if sm.symbolList.FilterState() != list.Filtering {
			sm.animOffset++
			sm.delegate.offset = sm.animOffset
			sm.symbolList.SetDelegate(sm.delegate)
		}

		return sm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return sm, tea.Quit
		case "q":
			if sm.symbolList.FilterState() != list.Filtering {
				return sm, tea.Quit
			}
		}

		sm.symbolList, cmd = sm.symbolList.Update(msg)

		// Detect selection change to reset animation
		if sm.symbolList.Index() != sm.lastSelected {
			sm.lastSelected = sm.symbolList.Index()
			sm.animOffset = 0
			sm.delegate.offset = 0
			sm.symbolList.SetDelegate(sm.delegate)
		}

		return sm, cmd
	}

	return sm, cmd
}

func (sm scopeModel) selected() (symbolItem, bool) {
	item, ok := sm.symbolList.SelectedItem().(symbolItem)

	return item, ok
}

func (sm scopeModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Scope of " + filepath.Base(string(sm.file)))

	summary := summaryStyle.Render(fmt.Sprintf(
		"Symbols: %s   Files: %s   Diagnostics: %s",
		accentStyle.Render(fmt.Sprintf("%d", sm.scope.Len())),
		accentStyle.Render(fmt.Sprintf("%d", sm.loadedFiles)),
		accentStyle.Render(fmt.Sprintf("%d", len(sm.diagnostics))),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(sm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit   (* shadows another declaration)")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		sm.renderTable(),
		sm.renderDetail(),
		footer,
	)
}

func (sm scopeModel) renderTable() string {
	// Title (2) + summary (2) + detail (6) + footer (1) + border (2) + header (2)
	listHeight := max(sm.height-15, 5)

	// Margin (2) + border (2) + padding (2)
	listWidth := sm.width - 6

	sm.symbolList.SetHeight(listHeight)
	sm.symbolList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-8s  %-24s  %s", "Kind", "Symbol", "Declared At"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			sm.symbolList.View(),
		),
	)
}

func (sm scopeModel) renderDetail() string {
	item, ok := sm.selected()
	if !ok {
		return docStyle.Render(mutedStyle.Render("no symbol selected"))
	}

	lines := []string{nameStyle.Render(item.symbol.Name) + " " + mutedStyle.Render(string(item.symbol.File))}

	if item.symbol.Doc != "" {
		lines = append(lines, item.symbol.Doc)
	}

	for _, hidden := range sm.scope.Shadowed(item.symbol.Name) {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("shadows %s:%d", hidden.File, hidden.Line)))
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
