// Package session implements the typing test state machine.
package session

import (
	"strings"
	"time"

	"github.com/d3vboi/rustypex/internal/results"
)

// State is the lifecycle state of a Session.
type State int

const (
	// AwaitingInput means no key has been processed yet.
	AwaitingInput State = iota
	// InProgress means the timer is running and the cursor has not
	// reached the end of the target text.
	InProgress
	// Done means the target text was fully typed. Terminal.
	Done
	// Quit means the user aborted the test. Terminal.
	Quit
	// Restart means the user requested a fresh session. Terminal.
	Restart
)

// EventKind classifies a key event.
type EventKind int

const (
	// KeyIgnored is any key the session does not react to.
	KeyIgnored EventKind = iota
	// KeyChar is a character keystroke carrying a rune.
	KeyChar
	// KeyBackspace removes the last typed character.
	KeyBackspace
	// KeyWordDelete removes the trailing word.
	KeyWordDelete
	// KeyQuit aborts the session.
	KeyQuit
	// KeyRestart discards the session for a fresh one.
	KeyRestart
)

// Event is one classified key event.
type Event struct {
	Kind EventKind
	Rune rune
}

// Mark is the display state of one target position.
type Mark int

const (
	// MarkPending means the position has not been typed.
	MarkPending Mark = iota
	// MarkCorrect means the typed character matched the target.
	MarkCorrect
	// MarkIncorrect means the typed character did not match.
	MarkIncorrect
)

// Session owns the target text, input progress, counters, and
// timestamps of one typing test. It is exclusively owned by the loop
// that created it and discarded wholesale on quit or restart.
type Session struct {
	words  []string
	target []rune
	input  []rune
	marks  []Mark

	charsTyped int
	errors     int

	started   bool
	startedAt time.Time
	endedAt   time.Time

	state State
}

// New builds a session over the given words joined with single spaces.
func New(words []string) *Session {
	target := []rune(strings.Join(words, " "))
	return &Session{
		words:  words,
		target: target,
		marks:  make([]Mark, len(target)),
		input:  make([]rune, 0, len(target)),
	}
}

// ProcessKey applies one event and returns the resulting state. Events
// in a terminal state and ignored events are no-ops. The start
// timestamp is captured once, before the first non-ignored event takes
// effect.
func (s *Session) ProcessKey(ev Event) State {
	if ev.Kind == KeyIgnored || s.terminal() {
		return s.state
	}
	if !s.started {
		s.started = true
		s.startedAt = time.Now()
	}

	switch ev.Kind {
	case KeyQuit:
		s.state = Quit
	case KeyRestart:
		s.state = Restart
	case KeyBackspace:
		s.pop()
	case KeyWordDelete:
		// Pop the trailing run of non-spaces plus the boundary
		// space; always at least one character when any exist.
		for len(s.input) > 0 {
			if s.pop() == ' ' {
				break
			}
		}
	case KeyChar:
		s.typeChar(ev.Rune)
	}
	return s.state
}

func (s *Session) typeChar(r rune) {
	pos := len(s.input)
	if pos >= len(s.target) {
		return
	}
	s.input = append(s.input, r)
	s.charsTyped++
	if r == s.target[pos] {
		s.marks[pos] = MarkCorrect
	} else {
		s.marks[pos] = MarkIncorrect
		s.errors++
	}
	if len(s.input) == len(s.target) {
		s.endedAt = time.Now()
		s.state = Done
		return
	}
	s.state = InProgress
}

func (s *Session) pop() rune {
	if len(s.input) == 0 {
		return 0
	}
	last := s.input[len(s.input)-1]
	s.input = s.input[:len(s.input)-1]
	s.marks[len(s.input)] = MarkPending
	return last
}

func (s *Session) terminal() bool {
	return s.state == Done || s.state == Quit || s.state == Restart
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Target returns the target text runes. Callers must not mutate it.
func (s *Session) Target() []rune {
	return s.target
}

// Pos returns the cursor position, equal to the input length.
func (s *Session) Pos() int {
	return len(s.input)
}

// MarkAt returns the display mark for one target position.
func (s *Session) MarkAt(i int) Mark {
	return s.marks[i]
}

// CharsTyped returns the forward-keystroke count.
func (s *Session) CharsTyped() int {
	return s.charsTyped
}

// Errors returns the forward-keystroke error count.
func (s *Session) Errors() int {
	return s.errors
}

// Input returns the typed characters. Callers must not mutate it.
func (s *Session) Input() []rune {
	return s.input
}

// Result snapshots the session counters and recompares the final input
// buffer against the target character by character. Corrections can
// leave final mismatches the running error counter never saw, and the
// reverse, so the running tally is not reused here.
func (s *Session) Result() results.TestResult {
	finalCorrect := 0
	finalUncorrected := 0
	for i, r := range s.input {
		if r == s.target[i] {
			finalCorrect++
		} else {
			finalUncorrected++
		}
	}
	return results.TestResult{
		TotalWords:       len(s.words),
		CharsTyped:       s.charsTyped,
		CharsInText:      len(s.input),
		Errors:           s.errors,
		FinalCorrect:     finalCorrect,
		FinalUncorrected: finalUncorrected,
		StartedAt:        s.startedAt,
		EndedAt:          s.endedAt,
	}
}
