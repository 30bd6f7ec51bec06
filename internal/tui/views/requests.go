package views

import (
	"fmt"
	"strconv"

	"github.com/RobbyCBennett/Serve/internal/models"
	"github.com/RobbyCBennett/Serve/internal/repository"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

// recentLimit is how many access records the table holds at a time.
const recentLimit = 100

type requestsModel struct {
	table  table.Model
	access repository.AccessRepository
}

func (m requestsModel) GetKeyBinds() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "toggle focus")),
	}
}

func (m requestsModel) GetName() string {
	return "Requests"
}

func InitRequests(access repository.AccessRepository) requestsModel {
	columns := []table.Column{
		{Title: "Time", Width: 8},
		{Title: "Remote", Width: 21},
		{Title: "Path", Width: 30},
		{Title: "Status", Width: 6},
		{Title: "Bytes", Width: 8},
		{Title: "Type", Width: 22},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(loadRows(access)),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("29")).
		Bold(false)
	t.SetStyles(s)

	return requestsModel{table: t, access: access}
}

func loadRows(access repository.AccessRepository) []table.Row {
	records, err := access.Recent(recentLimit)
	if err != nil {
		log.Errorf("Failed to fetch access records: %v", err)
	}

	var rows []table.Row
	for _, record := range records {
		rows = append(rows, table.Row{
			record.Time.Format("15:04:05"),
			record.RemoteAddr,
			record.Path,
			strconv.Itoa(record.Status),
			fmt.Sprintf("%d", record.Bytes),
			record.ContentType,
		})
	}
	return rows
}

func (m requestsModel) Init() tea.Cmd {
	return nil
}

func (m requestsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case models.RefreshMsg:
		m.table.SetRows(loadRows(m.access))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.table.Focused() {
				m.table.Blur()
			} else {
				m.table.Focus()
			}
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m requestsModel) View() string {
	baseStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	return baseStyle.Render(m.table.View())
}
