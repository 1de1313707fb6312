// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/d3vboi/rustypex/internal/session"
)

type keyMap struct {
	Quit       key.Binding
	Restart    key.Binding
	WordDelete key.Binding
	Backspace  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		WordDelete: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "delete word"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("backspace", "undo"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Restart, k.Quit},
		{k.WordDelete, k.Backspace},
	}
}

// classify maps a key message to session events. Unbound keys yield
// nothing. A pasted chunk yields one character event per rune.
func (k keyMap) classify(msg tea.KeyMsg) []session.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return []session.Event{{Kind: session.KeyQuit}}
	case key.Matches(msg, k.Restart):
		return []session.Event{{Kind: session.KeyRestart}}
	case key.Matches(msg, k.WordDelete):
		return []session.Event{{Kind: session.KeyWordDelete}}
	case key.Matches(msg, k.Backspace):
		return []session.Event{{Kind: session.KeyBackspace}}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []session.Event{{Kind: session.KeyChar, Rune: ' '}}
	case tea.KeyRunes:
		events := make([]session.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, session.Event{Kind: session.KeyChar, Rune: r})
		}
		return events
	default:
		return nil
	}
}
