// Package preview renders the hero, projects and stats sections in the
// terminal. The typewriter is driven by tea.Tick: each tick schedules the
// next one, so exactly one is pending.
package preview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rudresh.dev/internal/models"
	"rudresh.dev/internal/services"
	"rudresh.dev/internal/typewriter"
)

// ProjectLoader loads the projects grid
type ProjectLoader interface {
	Load(ctx context.Context) models.ProjectsResult
}

// StatsLoader loads coding stats
type StatsLoader interface {
	Load(ctx context.Context) *models.CodingStats
}

type tickMsg struct{}

type projectsMsg models.ProjectsResult

type statsMsg struct{ stats *models.CodingStats }

var (
	primary = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}
	muted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	titleStyle   = lipgloss.NewStyle().Bold(true)
	typingStyle  = lipgloss.NewStyle().Foreground(primary)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(primary).MarginTop(1)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1).Width(38)
)

// Model is the bubbletea model of the preview
type Model struct {
	ctx      context.Context
	profile  models.Profile
	machine  *typewriter.Machine
	projects ProjectLoader
	stats    StatsLoader

	result          models.ProjectsResult
	snapshot        *models.CodingStats
	loadingProjects bool
	loadingStats    bool
	width           int
}

// NewModel creates a preview model. ctx bounds the upstream fetches.
func NewModel(ctx context.Context, profile models.Profile, timing typewriter.Timing, ps ProjectLoader, ss StatsLoader) (*Model, error) {
	m, err := typewriter.NewMachine(profile.Phrases, timing)
	if err != nil {
		return nil, fmt.Errorf("failed to create typewriter: %w", err)
	}
	return &Model{
		ctx:             ctx,
		profile:         profile,
		machine:         m,
		projects:        ps,
		stats:           ss,
		loadingProjects: true,
		loadingStats:    true,
	}, nil
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) loadProjects() tea.Cmd {
	return func() tea.Msg { return projectsMsg(m.projects.Load(m.ctx)) }
}

func (m *Model) loadStats() tea.Cmd {
	return func() tea.Msg { return statsMsg{m.stats.Load(m.ctx)} }
}

// Init starts the typewriter and both fetches
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tick(m.machine.Next()), m.loadProjects(), m.loadStats())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if m.loadingProjects {
				return m, nil
			}
			m.loadingProjects = true
			return m, m.loadProjects()
		}

	case tickMsg:
		return m, tick(m.machine.Tick())

	case projectsMsg:
		m.result = models.ProjectsResult(msg)
		m.loadingProjects = false

	case statsMsg:
		m.snapshot = msg.stats
		m.loadingStats = false
	}
	return m, nil
}

// View renders the preview
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(mutedStyle.Render("Hello, I am") + "\n")
	b.WriteString(titleStyle.Render(m.profile.Name) + "\n")
	b.WriteString(typingStyle.Render(m.machine.Frame().Text+"▌") + "\n")

	b.WriteString(sectionStyle.Render("Top Projects") + "\n")
	b.WriteString(m.viewProjects())

	b.WriteString(sectionStyle.Render("Coding Stats") + "\n")
	b.WriteString(m.viewStats())

	b.WriteString("\n" + mutedStyle.Render("r: reload projects • q: quit") + "\n")
	return b.String()
}

func (m *Model) viewProjects() string {
	if m.loadingProjects {
		skeletons := make([]string, services.MaxDisplayedProjects)
		for i := range skeletons {
			skeletons[i] = cardStyle.Render(mutedStyle.Render("░░░░░░░░░░░░"))
		}
		return m.grid(skeletons)
	}

	cards := make([]string, 0, len(m.result.Projects))
	for _, p := range m.result.Projects {
		desc := p.Description
		if desc == "" {
			desc = "No description provided."
		}
		meta := fmt.Sprintf("★ %d  ⑂ %d", p.Stars, p.Forks)
		if p.Language != "" {
			meta = p.Language + "  " + meta
		}
		cards = append(cards, cardStyle.Render(titleStyle.Render(p.Name)+"\n"+desc+"\n"+mutedStyle.Render(meta)))
	}
	return m.grid(cards)
}

func (m *Model) viewStats() string {
	if m.loadingStats {
		return mutedStyle.Render("loading…") + "\n"
	}
	s := m.snapshot
	total, contribution, reputation := 0, 0, 0
	if s != nil {
		total, contribution, reputation = s.TotalSolved, s.ContributionPoints, s.Reputation
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s solved", titleStyle.Render(fmt.Sprint(total)))
	for _, slice := range s.Breakdown() {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(slice.Color)).Render("●")
		fmt.Fprintf(&b, "  %s %s %d", dot, slice.Name, slice.Value)
	}
	fmt.Fprintf(&b, "\nRanking %s • Contribution %d • Reputation %d\n", s.RankingLabel(), contribution, reputation)
	return b.String()
}

// grid lays cards out in rows that fit the terminal width
func (m *Model) grid(cards []string) string {
	perRow := 1
	if w := lipgloss.Width(cardStyle.Render("")); w > 0 && m.width > 0 {
		perRow = max(1, m.width/w)
	}
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}
