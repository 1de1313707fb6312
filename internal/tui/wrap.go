package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one rendered target position with its display width.
type cell struct {
	s       string
	width   int
	isSpace bool
}

func newCell(r rune, style lipgloss.Style, isSpace bool) cell {
	return cell{
		s:       style.Render(string(r)),
		width:   runewidth.RuneWidth(r),
		isSpace: isSpace,
	}
}

func renderCells(cells []cell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c.s)
	}
	return b.String()
}

// wrapCells breaks cells into lines no wider than width, preferring
// word boundaries. A word wider than the whole line breaks mid-word.
func wrapCells(cells []cell, width int) string {
	if width <= 0 {
		return renderCells(cells)
	}
	var lines []string
	var line []cell
	lineWidth := 0

	flush := func(upto int) {
		lines = append(lines, renderCells(line[:upto]))
	}

	for i := 0; i < len(cells); {
		c := cells[i]
		if lineWidth+c.width <= width || len(line) == 0 {
			line = append(line, c)
			lineWidth += c.width
			i++
			continue
		}
		if brk := lastSpaceIndex(line); brk >= 0 {
			flush(brk)
			line = append([]cell(nil), line[brk+1:]...)
		} else {
			flush(len(line))
			line = line[:0]
		}
		lineWidth = cellsWidth(line)
	}
	lines = append(lines, renderCells(line))
	return strings.Join(lines, "\n")
}

func cellsWidth(cells []cell) int {
	total := 0
	for _, c := range cells {
		total += c.width
	}
	return total
}

func lastSpaceIndex(cells []cell) int {
	for i := len(cells) - 1; i >= 0; i-- {
		if cells[i].isSpace {
			return i
		}
	}
	return -1
}

type wordRange struct {
	start int
	end   int
}

func (w wordRange) contains(i int) bool {
	return i >= w.start && i < w.end
}

// currentWordRange finds the word under (or next after) the cursor.
// With no cursor there is no current word.
func currentWordRange(target []rune, cursor int) wordRange {
	if cursor < 0 || cursor >= len(target) {
		return wordRange{start: -1, end: -1}
	}
	start := cursor
	for start > 0 && target[start-1] != ' ' {
		start--
	}
	// Cursor on a space: highlight the following word.
	if target[cursor] == ' ' {
		start = cursor + 1
		for start < len(target) && target[start] == ' ' {
			start++
		}
	}
	end := start
	for end < len(target) && target[end] != ' ' {
		end++
	}
	return wordRange{start: start, end: end}
}
