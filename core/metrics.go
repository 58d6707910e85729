package core

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// MeasureMode selects how field widths are calculated. The mode is
// picked once per transfer, not per field.
type MeasureMode int

const (
	// MeasureDisplay accounts for variable-width code points, so the
	// reported width matches the number of terminal cells used.
	MeasureDisplay MeasureMode = iota
	// MeasureRaw treats every byte as a single visual unit.
	MeasureRaw
)

// FieldMetrics describes one measured cell.
type FieldMetrics struct {
	// Width of the longest line segment
	Width int
	// Multiline is set when the cell contains at least one line break
	Multiline bool

	// Digit and other-rune tallies for the numeric-alignment heuristic.
	// Only computed in display mode.
	Digits int
	Others int
}

// Measure calculates the rendered width of a cell. A cell that holds
// only line breaks has width 0 and is still flagged as multiline.
func Measure(text string, mode MeasureMode) FieldMetrics {
	if mode == MeasureRaw {
		return measureRaw(text)
	}
	return measureDisplay(text)
}

func measureRaw(text string) FieldMetrics {
	var m FieldMetrics

	segment := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			m.Multiline = true
			if segment > m.Width {
				m.Width = segment
			}
			segment = 0
			continue
		}
		segment++
	}
	if segment > m.Width {
		m.Width = segment
	}

	return m
}

func measureDisplay(text string) FieldMetrics {
	var m FieldMetrics

	segment := 0
	for _, r := range text {
		if r == '\n' {
			m.Multiline = true
			if segment > m.Width {
				m.Width = segment
			}
			segment = 0
			continue
		}

		segment += runewidth.RuneWidth(r)
		if unicode.IsDigit(r) {
			m.Digits++
		} else {
			m.Others++
		}
	}
	if segment > m.Width {
		m.Width = segment
	}

	return m
}
