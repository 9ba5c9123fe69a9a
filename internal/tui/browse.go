// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/ytshelf/internal/catalog"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// BrowseAction represents the user's action in the browse UI.
type BrowseAction int

const (
	// ActionNone indicates the browser was dismissed without a selection.
	ActionNone BrowseAction = iota
	// ActionSelected indicates the user selected a movie.
	ActionSelected
)

// BrowseResult holds the result of a browse session.
type BrowseResult struct {
	Action    BrowseAction
	Selection *catalog.Movie
}

type movieItem struct {
	catalog.Movie
}

func (i movieItem) Title() string {
	return fmt.Sprintf("%s (%d)", i.Movie.Title, i.Movie.Year)
}

func (i movieItem) FilterValue() string {
	return i.Movie.Title
}

func (i movieItem) Description() string {
	return strings.Join(i.Movie.Qualities(), ", ")
}

type itemStyles struct {
	normal     lipgloss.Style
	selected   lipgloss.Style
	titleStyle lipgloss.Style
	metaStyle  lipgloss.Style
	sizeStyle  lipgloss.Style
}

func newItemStyles() itemStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		metaStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
		sizeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")),
	}
}

type movieDelegate struct {
	styles itemStyles
}

func newDelegate() movieDelegate {
	return movieDelegate{styles: newItemStyles()}
}

func (d movieDelegate) Height() int                         { return 4 }
func (d movieDelegate) Spacing() int                        { return 1 }
func (d movieDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d movieDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	mi, ok := item.(movieItem)
	if !ok {
		return
	}

	titleLine := d.styles.titleStyle.Render(fmt.Sprintf("%s (%d)", mi.Movie.Title, mi.Movie.Year))
	metaLine := d.styles.metaStyle.Render(fmt.Sprintf("%s - %s", mi.Movie.ImdbCode, strings.Join(mi.Movie.Qualities(), ", ")))

	sizeLine := ""
	if largest, ok := mi.Movie.LargestTorrent(); ok {
		sizeLine = d.styles.sizeStyle.Render(catalog.FormatSize(largest.SizeBytes))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, metaLine, sizeLine)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("110"))

type browseModel struct {
	list   list.Model
	result BrowseResult
}

func newBrowseModel(movies []catalog.Movie) *browseModel {
	listItems := make([]list.Item, len(movies))
	for i, m := range movies {
		listItems[i] = movieItem{m}
	}

	l := list.New(listItems, newDelegate(), defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &browseModel{
		list:   l,
		result: BrowseResult{Action: ActionNone},
	}
}

func (m *browseModel) Init() tea.Cmd { return nil }

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(movieItem); ok {
				movie := selected.Movie
				m.result = BrowseResult{
					Action:    ActionSelected,
					Selection: &movie,
				}
				return m, tea.Quit
			}
		case "ctrl+c", "q", "esc":
			m.result = BrowseResult{Action: ActionNone}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-4, 40)
		height := clamp(defaultListHeight, msg.Height-6, 5)
		m.list.SetSize(width, height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *browseModel) View() string {
	header := headerStyle.Render(fmt.Sprintf("Catalog: %d movies (enter selects, q quits)", len(m.list.Items())))
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View())
}

// BrowseCatalog shows an interactive movie list and returns the user's
// selection, if any.
func BrowseCatalog(movies []catalog.Movie) (BrowseResult, error) {
	if len(movies) == 0 {
		return BrowseResult{Action: ActionNone}, nil
	}

	model := newBrowseModel(movies)
	final, err := runProgram(model)
	if err != nil {
		return BrowseResult{}, fmt.Errorf("running browse UI: %w", err)
	}

	if m, ok := final.(*browseModel); ok {
		return m.result, nil
	}
	return model.result, nil
}

func clamp(preferred, max, min int) int {
	if max < min {
		return min
	}
	if preferred > max {
		return max
	}
	if preferred < min {
		return min
	}
	return preferred
}
