// Package typewriter animates a list of phrases one character at a time:
// type a phrase, hold it, delete it, move on to the next, forever.
//
// Machine is the pure state machine; Runner is the scheduler that advances
// it with a single timer and owns cancellation.
package typewriter

import (
	"errors"
	"time"
)

var (
	// ErrNoWords is returned when a machine is created without phrases
	ErrNoWords = errors.New("typewriter: at least one word is required")
	// ErrBadTiming is returned when any interval is not positive
	ErrBadTiming = errors.New("typewriter: intervals must be positive")
)

// Phase is the state of the machine
type Phase int

const (
	Typing Phase = iota
	Holding
	Deleting
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case Holding:
		return "holding"
	case Deleting:
		return "deleting"
	}
	return "unknown"
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Timing holds the three animation intervals
type Timing struct {
	Type   time.Duration
	Delete time.Duration
	Hold   time.Duration
}

// DefaultTiming is 150ms per typed rune, 100ms per deleted rune, 2s hold
var DefaultTiming = Timing{
	Type:   150 * time.Millisecond,
	Delete: 100 * time.Millisecond,
	Hold:   2 * time.Second,
}

func (t Timing) valid() bool {
	return t.Type > 0 && t.Delete > 0 && t.Hold > 0
}

// Frame is a snapshot of what the typewriter displays
type Frame struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
	Phase Phase  `json:"phase"`
}

// Machine holds the typewriter state. It is not safe for concurrent use;
// Runner serializes access.
type Machine struct {
	words  [][]rune
	timing Timing
	index  int
	length int // runes of words[index] currently shown
	phase  Phase
}

// NewMachine creates a machine positioned before the first rune of the
// first word.
func NewMachine(words []string, timing Timing) (*Machine, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if !timing.valid() {
		return nil, ErrBadTiming
	}
	m := &Machine{
		words:  make([][]rune, len(words)),
		timing: timing,
	}
	for i, w := range words {
		m.words[i] = []rune(w)
	}
	return m, nil
}

// Frame returns the current display state
func (m *Machine) Frame() Frame {
	return Frame{
		Text:  string(m.words[m.index][:m.length]),
		Index: m.index,
		Phase: m.phase,
	}
}

// Next returns the delay before the upcoming Tick
func (m *Machine) Next() time.Duration {
	switch m.phase {
	case Holding:
		return m.timing.Hold
	case Deleting:
		return m.timing.Delete
	}
	return m.timing.Type
}

// Tick performs one step and returns the delay before the following one.
//
//	Typing:   show one more rune; at the full word switch to Holding
//	Holding:  switch to Deleting
//	Deleting: show one rune less; at the empty string advance the index
//	          and switch to Typing
func (m *Machine) Tick() time.Duration {
	word := m.words[m.index]
	switch m.phase {
	case Typing:
		if m.length < len(word) {
			m.length++
		}
		if m.length == len(word) {
			m.phase = Holding
		}
	case Holding:
		m.phase = Deleting
	case Deleting:
		if m.length > 0 {
			m.length--
		}
		if m.length == 0 {
			m.index = (m.index + 1) % len(m.words)
			m.phase = Typing
		}
	}
	return m.Next()
}
