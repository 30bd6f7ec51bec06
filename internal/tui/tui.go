package tui

import (
	"strings"
	"time"

	"github.com/RobbyCBennett/Serve/internal/models"
	"github.com/RobbyCBennett/Serve/internal/repository"
	"github.com/RobbyCBennett/Serve/internal/tui/components"
	"github.com/RobbyCBennett/Serve/internal/tui/views"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// refreshInterval is how often the views reload from the access log.
const refreshInterval = time.Second

type model struct {
	Tabs      []string
	children  []ChildModel
	help      components.HelpModel
	activeTab int
	width     int
	height    int
}

func (m model) Init() tea.Cmd {
	return refreshTick()
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return models.RefreshMsg{}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case models.RefreshMsg:
		// Reload every view, not just the visible one, then rearm the timer.
		for i := range m.children {
			child, _ := m.children[i].Update(msg)
			m.children[i] = child.(ChildModel)
		}
		return m, refreshTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "right", "tab":
			m.activeTab = min(m.activeTab+1, len(m.Tabs)-1)
			return m.syncHelp(), nil
		case "left", "shift+tab":
			m.activeTab = max(m.activeTab-1, 0)
			return m.syncHelp(), nil
		case "1":
			m.activeTab = 0
			return m.syncHelp(), nil
		case "2":
			m.activeTab = 1
			return m.syncHelp(), nil
		}
	}

	helpModel, _ := m.help.Update(msg)
	m.help = helpModel.(components.HelpModel)

	// Delegate update to the active view
	child, cmd := m.children[m.activeTab].Update(msg)
	m.children[m.activeTab] = child.(ChildModel)
	return m, cmd
}

func (m model) syncHelp() model {
	m.help = m.help.SetActiveTab(m.children[m.activeTab].GetName())
	return m
}

func tabBorderWithBottom(left, middle, right string) lipgloss.Border {
	border := lipgloss.RoundedBorder()
	border.BottomLeft = left
	border.Bottom = middle
	border.BottomRight = right
	return border
}

var (
	inactiveTabBorder = tabBorderWithBottom("┴", "─", "┴")
	activeTabBorder   = tabBorderWithBottom("┘", " ", "└")
	docStyle          = lipgloss.NewStyle().Padding(1, 2, 1, 2)
	highlightColor    = lipgloss.Color("#00A86B")
	inactiveTabStyle  = lipgloss.NewStyle().Border(inactiveTabBorder, true).BorderForeground(highlightColor).Padding(0, 1)
	activeTabStyle    = inactiveTabStyle.Border(activeTabBorder, true)
	windowStyle       = lipgloss.NewStyle().
				BorderForeground(highlightColor).
				Padding(1, 2).
				Border(lipgloss.NormalBorder()).
				UnsetBorderTop()
)

func (m model) View() string {
	doc := strings.Builder{}

	var renderedTabs []string
	for i, t := range m.Tabs {
		var style lipgloss.Style
		isFirst, isActive := i == 0, i == m.activeTab
		if isActive {
			style = activeTabStyle
		} else {
			style = inactiveTabStyle
		}

		border, _, _, _, _ := style.GetBorder()
		if isFirst && isActive {
			border.BottomLeft = "│"
		} else if isFirst {
			border.BottomLeft = "├"
		}

		renderedTabs = append(renderedTabs, style.Border(border).Render(t))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	contentWidth := max(lipgloss.Width(row)-windowStyle.GetHorizontalFrameSize(), 0)
	tabContents := windowStyle.Width(contentWidth).Render(m.children[m.activeTab].View())

	doc.WriteString(row)
	doc.WriteString("\n")
	doc.WriteString(tabContents)
	doc.WriteString("\n")
	doc.WriteString(m.help.View())

	return docStyle.Render(doc.String())
}

// GetTui assembles the dashboard over an access log repository.
func GetTui(access repository.AccessRepository) *tea.Program {
	children := []ChildModel{
		views.InitRequests(access),
		views.InitSummary(access),
	}

	tabs := make([]string, 0, len(children))
	keyBinds := make(map[string]components.TabKeyMap, len(children))
	for _, child := range children {
		tabs = append(tabs, child.GetName())
		keyBinds[child.GetName()] = components.TabKeyMap{
			Name:     child.GetName(),
			Bindings: child.GetKeyBinds(),
		}
	}

	m := model{
		Tabs:     tabs,
		children: children,
		help:     components.InitHelp().SetKeyMap(keyBinds),
	}.syncHelp()

	return tea.NewProgram(m)
}
