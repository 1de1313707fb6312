package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/d3vboi/rustypex/internal/model"
	"github.com/d3vboi/rustypex/internal/results"
	"github.com/d3vboi/rustypex/internal/session"
	"github.com/d3vboi/rustypex/internal/wordsource"
)

type phase int

const (
	phaseTyping phase = iota
	phaseResults
)

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	accuracyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF"))
	speedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#73D893"))
)

// Model implements the Bubble Tea typing UI. It owns one live session
// at a time and replaces it wholesale on restart.
type Model struct {
	config     model.Config
	source     wordsource.Source
	sourceName string

	keys keyMap
	help help.Model

	sess  *session.Session
	res   results.TestResult
	phase phase

	width  int
	height int

	err error
}

// NewModel constructs a typing TUI model with its first session.
func NewModel(cfg model.Config, src wordsource.Source, sourceName string) (*Model, error) {
	m := &Model{
		config:     cfg,
		source:     src,
		sourceName: sourceName,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	if err := m.resetSession(); err != nil {
		return nil, err
	}
	return m, nil
}

// Err reports a word-source failure that aborted the program.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) resetSession() error {
	words, err := m.source.NextWords(m.config.Words)
	if err != nil {
		return fmt.Errorf("failed to generate text: %w", err)
	}
	m.sess = session.New(words)
	m.phase = phaseTyping
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.phase == phaseResults {
			return m.updateResults(msg)
		}
		return m.updateTyping(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, ev := range m.keys.classify(msg) {
		switch m.sess.ProcessKey(ev) {
		case session.Quit:
			return m, tea.Quit
		case session.Restart:
			return m.restart()
		case session.Done:
			m.res = m.sess.Result()
			m.phase = phaseResults
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, ev := range m.keys.classify(msg) {
		switch ev.Kind {
		case session.KeyQuit:
			return m, tea.Quit
		case session.KeyRestart:
			return m.restart()
		}
	}
	return m, nil
}

func (m *Model) restart() (tea.Model, tea.Cmd) {
	if err := m.resetSession(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.phase == phaseResults {
		return m.viewResults()
	}
	return m.viewTyping()
}

func (m *Model) viewTyping() string {
	target := m.sess.Target()
	if len(target) == 0 {
		return ""
	}
	cells := m.styleCells()
	if m.width == 0 || m.height == 0 {
		return renderCells(cells)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapCells(cells, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	return m.placeWithFooter(content, m.renderFooter())
}

func (m *Model) viewResults() string {
	lines := []string{
		fmt.Sprintf("Took %ds for %d words of %s",
			int(m.res.Duration().Seconds()), m.res.TotalWords, m.sourceName),
		accuracyStyle.Render(fmt.Sprintf("Accuracy: %.1f%%", m.res.Accuracy()*100)),
		fmt.Sprintf("Mistakes: %d out of %d characters", m.res.Errors, m.res.CharsInText),
		"Speed: " + speedStyle.Render(fmt.Sprintf("%.1f wpm", m.res.WPM())) + " (words per minute)",
		results.Remark(m.res.WPM()),
	}
	content := strings.Join(lines, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	return m.placeWithFooter(content, m.help.View(m.keys))
}

func (m *Model) placeWithFooter(content, footer string) string {
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderFooter() string {
	target := m.sess.Target()
	progress := 0
	if len(target) > 0 {
		progress = int(float64(m.sess.Pos()) / float64(len(target)) * 100)
	}
	left := footerStyle.Render(fmt.Sprintf("Progress %d%%", progress))
	return left + "  " + m.help.View(m.keys)
}

// styleCells maps session marks to styled display cells. Mistyped
// positions keep the target character; a mistyped space is shown as a
// red dot.
func (m *Model) styleCells() []cell {
	target := m.sess.Target()
	cursor := -1
	if m.sess.Pos() < len(target) {
		cursor = m.sess.Pos()
	}
	word := currentWordRange(target, cursor)

	cells := make([]cell, 0, len(target))
	for i, r := range target {
		displayed := r
		var style lipgloss.Style
		switch m.sess.MarkAt(i) {
		case session.MarkCorrect:
			style = correctStyle
		case session.MarkIncorrect:
			style = incorrectStyle
			if r == ' ' {
				displayed = '•'
			}
		default:
			if r != ' ' && word.contains(i) {
				style = currentWordStyle
			} else {
				style = pendingStyle
			}
		}
		if i == cursor {
			style = style.Underline(true)
		}
		cells = append(cells, newCell(displayed, style, r == ' '))
	}
	return cells
}
