package typewriter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastTiming = Timing{Type: time.Millisecond, Delete: time.Millisecond, Hold: 2 * time.Millisecond}

func TestNewMachineValidation(t *testing.T) {
	_, err := NewMachine(nil, DefaultTiming)
	assert.ErrorIs(t, err, ErrNoWords)

	_, err = NewMachine([]string{}, DefaultTiming)
	assert.ErrorIs(t, err, ErrNoWords)

	for _, timing := range []Timing{
		{Type: 0, Delete: 1, Hold: 1},
		{Type: 1, Delete: -1, Hold: 1},
		{Type: 1, Delete: 1, Hold: 0},
	} {
		_, err = NewMachine([]string{"AI"}, timing)
		assert.ErrorIs(t, err, ErrBadTiming)
	}
}

func TestMachineFullCycle(t *testing.T) {
	m, err := NewMachine([]string{"AI", "ML"}, DefaultTiming)
	require.NoError(t, err)

	assert.Equal(t, Frame{Text: "", Index: 0, Phase: Typing}, m.Frame())
	assert.Equal(t, DefaultTiming.Type, m.Next())

	steps := []struct {
		frame Frame
		delay time.Duration
	}{
		{Frame{"A", 0, Typing}, DefaultTiming.Type},
		{Frame{"AI", 0, Holding}, DefaultTiming.Hold},
		{Frame{"AI", 0, Deleting}, DefaultTiming.Delete},
		{Frame{"A", 0, Deleting}, DefaultTiming.Delete},
		{Frame{"", 1, Typing}, DefaultTiming.Type},
		{Frame{"M", 1, Typing}, DefaultTiming.Type},
		{Frame{"ML", 1, Holding}, DefaultTiming.Hold},
		{Frame{"ML", 1, Deleting}, DefaultTiming.Delete},
		{Frame{"M", 1, Deleting}, DefaultTiming.Delete},
		{Frame{"", 0, Typing}, DefaultTiming.Type},
	}
	for i, step := range steps {
		delay := m.Tick()
		assert.Equal(t, step.frame, m.Frame(), "step %d", i)
		assert.Equal(t, step.delay, delay, "step %d", i)
	}
}

func TestMachinePrefixAndCycleOrder(t *testing.T) {
	lists := [][]string{
		{"a"},
		{"AI", "ML"},
		{"AI Resident & Innovator", "Machine Learning Engineer", "Data Science Enthusiast"},
		{"héllo", "日本語", "x"},
		{"", "gap", ""},
	}

	for _, words := range lists {
		t.Run(strings.Join(words, "|"), func(t *testing.T) {
			m, err := NewMachine(words, fastTiming)
			require.NoError(t, err)

			var visited []int
			last := -1
			// three full rotations
			for i := 0; len(visited) < 3*len(words)+1 && i < 10000; i++ {
				f := m.Frame()
				require.True(t, strings.HasPrefix(words[f.Index], f.Text),
					"%q is not a prefix of %q", f.Text, words[f.Index])
				if f.Index != last {
					visited = append(visited, f.Index)
					last = f.Index
				}
				m.Tick()
			}

			require.Len(t, visited, 3*len(words)+1)
			for i, idx := range visited {
				assert.Equal(t, i%len(words), idx)
			}
		})
	}
}

func TestMachineCountsRunes(t *testing.T) {
	m, err := NewMachine([]string{"日本"}, fastTiming)
	require.NoError(t, err)

	m.Tick()
	assert.Equal(t, "日", m.Frame().Text)
	m.Tick()
	assert.Equal(t, "日本", m.Frame().Text)
	assert.Equal(t, Holding, m.Frame().Phase)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "typing", Typing.String())
	assert.Equal(t, "holding", Holding.String())
	assert.Equal(t, "deleting", Deleting.String())
	assert.Equal(t, "unknown", Phase(42).String())

	text, err := Deleting.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "deleting", string(text))
}
