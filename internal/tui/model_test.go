package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/d3vboi/rustypex/internal/model"
	"github.com/d3vboi/rustypex/internal/session"
	"github.com/d3vboi/rustypex/internal/wordsource"
)

// newTestModel builds a model over a single-token source, so the
// target text is fully deterministic.
func newTestModel(t *testing.T, word string, count int) *Model {
	t.Helper()
	src, err := wordsource.FromString(word)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := NewModel(model.Config{Words: count}, src, "test list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func keyRunes(text string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(text))
	for _, r := range text {
		if r == ' ' {
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func TestClassifyCommands(t *testing.T) {
	keys := defaultKeyMap()
	cases := []struct {
		msg  tea.KeyMsg
		want session.EventKind
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, session.KeyQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlR}, session.KeyRestart},
		{tea.KeyMsg{Type: tea.KeyCtrlW}, session.KeyWordDelete},
		{tea.KeyMsg{Type: tea.KeyBackspace}, session.KeyBackspace},
		{tea.KeyMsg{Type: tea.KeyDelete}, session.KeyBackspace},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, session.KeyChar},
	}
	for _, tc := range cases {
		events := keys.classify(tc.msg)
		if len(events) != 1 {
			t.Fatalf("expected one event for %v, got %d", tc.msg, len(events))
		}
		if events[0].Kind != tc.want {
			t.Fatalf("classify(%v) = %v, want %v", tc.msg, events[0].Kind, tc.want)
		}
	}
}

func TestClassifyIgnoresUnboundKeys(t *testing.T) {
	keys := defaultKeyMap()
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyTab},
		{Type: tea.KeyEsc},
		{Type: tea.KeyUp},
	} {
		if events := keys.classify(msg); len(events) != 0 {
			t.Fatalf("expected no events for %v, got %v", msg, events)
		}
	}
}

func TestClassifyPastedRunes(t *testing.T) {
	keys := defaultKeyMap()
	events := keys.classify(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Rune != 'h' || events[1].Rune != 'i' {
		t.Fatalf("unexpected runes: %v", events)
	}
}

func TestCompletionEntersResultsPhase(t *testing.T) {
	m := newTestModel(t, "cat", 1)
	for _, msg := range keyRunes("cat") {
		m.Update(msg)
	}
	if m.phase != phaseResults {
		t.Fatalf("expected results phase after completion")
	}
	if m.res.TotalWords != 1 || m.res.CharsTyped != 3 {
		t.Fatalf("unexpected result snapshot: %+v", m.res)
	}
	out := m.View()
	if !strings.Contains(out, "Accuracy: 100.0%") {
		t.Fatalf("expected accuracy line, got %q", out)
	}
	if !strings.Contains(out, "Mistakes: 0 out of 3 characters") {
		t.Fatalf("expected mistakes line, got %q", out)
	}
	if !strings.Contains(out, "1 words of test list") {
		t.Fatalf("expected source name in results, got %q", out)
	}
}

func TestRestartDiscardsSession(t *testing.T) {
	m := newTestModel(t, "cat", 2)
	for _, msg := range keyRunes("ca") {
		m.Update(msg)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.phase != phaseTyping {
		t.Fatalf("expected typing phase after restart")
	}
	if m.sess.State() != session.AwaitingInput {
		t.Fatalf("expected fresh session, got state %v", m.sess.State())
	}
	if m.sess.CharsTyped() != 0 || m.sess.Pos() != 0 {
		t.Fatalf("expected zeroed session after restart")
	}
}

func TestRestartFromResultsPhase(t *testing.T) {
	m := newTestModel(t, "ab", 1)
	for _, msg := range keyRunes("ab") {
		m.Update(msg)
	}
	if m.phase != phaseResults {
		t.Fatalf("expected results phase")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.phase != phaseTyping || m.sess.State() != session.AwaitingInput {
		t.Fatalf("expected fresh typing session after restart")
	}
}

func TestQuitReturnsQuitCmd(t *testing.T) {
	m := newTestModel(t, "cat", 1)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestStyleCellsMarks(t *testing.T) {
	m := newTestModel(t, "ab", 1)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	cells := m.styleCells()
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	if cells[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for typed rune")
	}
	if cells[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected underlined cursor cell")
	}
}

func TestStyleCellsMistypedSpaceShowsDot(t *testing.T) {
	src, err := wordsource.FromString("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := NewModel(model.Config{Words: 2}, src, "test list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Target is "a a"; mistype the space.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	cells := m.styleCells()
	if cells[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for mistyped space, got %q", cells[1].s)
	}
}

func TestViewWithoutSizeRendersBareText(t *testing.T) {
	m := newTestModel(t, "cat", 1)
	out := m.View()
	if out == "" {
		t.Fatalf("expected non-empty view")
	}
}
