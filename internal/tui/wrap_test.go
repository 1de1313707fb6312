package tui

import "testing"

func plainCells(text string) []cell {
	cells := make([]cell, 0, len(text))
	for _, r := range text {
		cells = append(cells, cell{s: string(r), width: 1, isSpace: r == ' '})
	}
	return cells
}

func TestWrapCellsBreaksAtSpace(t *testing.T) {
	out := wrapCells(plainCells("one two"), 5)
	if out != "one\ntwo" {
		t.Fatalf("expected word-boundary wrap, got %q", out)
	}
}

func TestWrapCellsLongWordBreaksMidWord(t *testing.T) {
	out := wrapCells(plainCells("abcdef"), 3)
	if out != "abc\ndef" {
		t.Fatalf("expected mid-word break, got %q", out)
	}
}

func TestWrapCellsFitsOnOneLine(t *testing.T) {
	out := wrapCells(plainCells("one two"), 20)
	if out != "one two" {
		t.Fatalf("expected no wrapping, got %q", out)
	}
}

func TestWrapCellsZeroWidth(t *testing.T) {
	out := wrapCells(plainCells("one two"), 0)
	if out != "one two" {
		t.Fatalf("expected unwrapped output, got %q", out)
	}
}

func TestCurrentWordRangeAtCursor(t *testing.T) {
	target := []rune("one two")
	w := currentWordRange(target, 1)
	if w.start != 0 || w.end != 3 {
		t.Fatalf("expected word [0,3), got [%d,%d)", w.start, w.end)
	}
}

func TestCurrentWordRangeOnSpaceHighlightsNextWord(t *testing.T) {
	target := []rune("one two")
	w := currentWordRange(target, 3)
	if w.start != 4 || w.end != 7 {
		t.Fatalf("expected word [4,7), got [%d,%d)", w.start, w.end)
	}
}

func TestCurrentWordRangeNoCursor(t *testing.T) {
	target := []rune("one")
	w := currentWordRange(target, -1)
	if w.contains(0) || w.contains(1) {
		t.Fatalf("expected empty range without cursor")
	}
}
