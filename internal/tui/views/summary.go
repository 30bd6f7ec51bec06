package views

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/RobbyCBennett/Serve/internal/models"
	"github.com/RobbyCBennett/Serve/internal/repository"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

type summaryModel struct {
	summary models.AccessSummary
	access  repository.AccessRepository
}

func (m summaryModel) GetKeyBinds() []key.Binding {
	return []key.Binding{}
}

func (m summaryModel) GetName() string {
	return "Summary"
}

func InitSummary(access repository.AccessRepository) summaryModel {
	return summaryModel{access: access}.reload()
}

func (m summaryModel) reload() summaryModel {
	summary, err := m.access.Summary()
	if err != nil {
		log.Errorf("Failed to fetch access summary: %v", err)
		return m
	}
	m.summary = summary
	return m
}

func (m summaryModel) Init() tea.Cmd {
	return nil
}

func (m summaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(models.RefreshMsg); ok {
		return m.reload(), nil
	}
	return m, nil
}

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true)
	summaryDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m summaryModel) View() string {
	doc := strings.Builder{}

	doc.WriteString(summaryTitleStyle.Render("Totals"))
	doc.WriteString(fmt.Sprintf("\n  %d requests, %d bytes served\n\n", m.summary.Total, m.summary.BytesSent))

	doc.WriteString(summaryTitleStyle.Render("By status"))
	doc.WriteString("\n")
	statuses := make([]int, 0, len(m.summary.ByStatus))
	for status := range m.summary.ByStatus {
		statuses = append(statuses, status)
	}
	sort.Ints(statuses)
	for _, status := range statuses {
		text := http.StatusText(status)
		doc.WriteString(fmt.Sprintf("  %d %s %d\n", status, summaryDimStyle.Render(text), m.summary.ByStatus[status]))
	}
	if len(statuses) == 0 {
		doc.WriteString(summaryDimStyle.Render("  no requests yet\n"))
	}
	doc.WriteString("\n")

	doc.WriteString(summaryTitleStyle.Render("Top paths"))
	doc.WriteString("\n")
	for _, pathCount := range m.summary.TopPaths {
		doc.WriteString(fmt.Sprintf("  %-40s %d\n", pathCount.Path, pathCount.Count))
	}
	if len(m.summary.TopPaths) == 0 {
		doc.WriteString(summaryDimStyle.Render("  no paths yet\n"))
	}

	return doc.String()
}
