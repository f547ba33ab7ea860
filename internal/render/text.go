// Package render draws read-only board views as terminal text or SVG.
package render

import (
	"fmt"
	"strings"

	"github.com/vancomm/nonogram-server/internal/nonogram"
)

const unknownSymbol = '?'

// Text renders the board with clue gutters: column clues stacked on top,
// row clues to the left. Resolved cells show their palette symbol,
// undetermined cells show '?'.
func Text(b *nonogram.Board) string {
	rowClues := make([][]string, b.Height())
	rowGutter := 0
	for r := range rowClues {
		rowClues[r] = clueLabels(b.RowClue(r))
		if w := labelWidth(rowClues[r]); w > rowGutter {
			rowGutter = w
		}
	}

	colClues := make([][]string, b.Width())
	colGutter := 0
	for c := range colClues {
		colClues[c] = clueLabels(b.ColClue(c))
		if len(colClues[c]) > colGutter {
			colGutter = len(colClues[c])
		}
	}

	var sb strings.Builder

	// column clue header, bottom-aligned
	for level := colGutter; level > 0; level-- {
		sb.WriteString(strings.Repeat(" ", rowGutter))
		for c := 0; c < b.Width(); c++ {
			labels := colClues[c]
			if d := len(labels) - level; d >= 0 {
				fmt.Fprintf(&sb, "%2s", labels[d])
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}

	for r := 0; r < b.Height(); r++ {
		label := strings.Join(rowClues[r], " ")
		fmt.Fprintf(&sb, "%*s", rowGutter, label)
		for c := 0; c < b.Width(); c++ {
			sb.WriteByte(' ')
			sb.WriteByte(cellSymbol(b, r, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellSymbol(b *nonogram.Board, r, c int) byte {
	mask := b.Get(r, c)
	if !mask.Resolved() {
		return unknownSymbol
	}
	if color, ok := b.Palette().ByCode(mask); ok {
		return color.Symbol
	}
	return unknownSymbol
}

func clueLabels(clue nonogram.Clue) []string {
	if len(clue) == 0 {
		return []string{"0"}
	}
	labels := make([]string, len(clue))
	for i, block := range clue {
		labels[i] = fmt.Sprintf("%d", block.Length)
	}
	return labels
}

func labelWidth(labels []string) int {
	w := len(labels) - 1 // separating spaces
	for _, l := range labels {
		w += len(l)
	}
	return w
}
