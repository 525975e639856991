package preview

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rudresh.dev/internal/models"
	"rudresh.dev/internal/services"
	"rudresh.dev/internal/typewriter"
)

type stubProjects struct{ calls int }

func (s *stubProjects) Load(context.Context) models.ProjectsResult {
	s.calls++
	return models.ProjectsResult{Projects: services.FallbackProjects(), Source: models.SourceRateLimited}
}

type stubStats struct{ stats *models.CodingStats }

func (s stubStats) Load(context.Context) *models.CodingStats { return s.stats }

func newTestModel(t *testing.T, stats *models.CodingStats) (*Model, *stubProjects) {
	t.Helper()
	ps := &stubProjects{}
	profile := models.Profile{Name: "Rudresh M R", Phrases: []string{"AI", "ML"}}
	m, err := NewModel(context.Background(), profile, typewriter.DefaultTiming, ps, stubStats{stats})
	require.NoError(t, err)
	return m, ps
}

func TestNewModelRequiresPhrases(t *testing.T) {
	_, err := NewModel(context.Background(), models.Profile{}, typewriter.DefaultTiming, &stubProjects{}, stubStats{})
	assert.ErrorIs(t, err, typewriter.ErrNoWords)
}

func TestTickAdvancesTypewriter(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(tickMsg{})
	assert.NotNil(t, cmd, "every tick schedules the next one")
	assert.Equal(t, "A", m.machine.Frame().Text)

	m.Update(tickMsg{})
	assert.Contains(t, m.View(), "AI")
}

func TestLoadingShowsSkeletons(t *testing.T) {
	m, _ := newTestModel(t, nil)
	view := m.View()
	assert.Contains(t, view, "░░░░")
	assert.Contains(t, view, "loading…")
}

func TestResultsRender(t *testing.T) {
	m, ps := newTestModel(t, &models.CodingStats{TotalSolved: 120, EasySolved: 80, MediumSolved: 30, HardSolved: 10, Ranking: 50000})

	m.Update(m.loadProjects()())
	m.Update(m.loadStats()())
	assert.Equal(t, 1, ps.calls)

	view := m.View()
	assert.Contains(t, view, "Cricket-Player-Run-Prediction")
	assert.Contains(t, view, "#50,000")
	assert.NotContains(t, view, "loading…")
}

func TestStatsUnavailable(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(statsMsg{})
	assert.Contains(t, m.View(), "N/A")
}

func TestRetryReloadsProjects(t *testing.T) {
	m, ps := newTestModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Nil(t, cmd, "no retry while the first load is outstanding")

	m.Update(m.loadProjects()())
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	assert.True(t, m.loadingProjects)

	m.Update(cmd())
	assert.Equal(t, 2, ps.calls)
	assert.False(t, m.loadingProjects)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
