package nonogram

import (
	"fmt"
	"strconv"
	"strings"
)

// Block is one run of a clue: Length consecutive cells of a single ink
// color.
type Block struct {
	Length int
	Color  Cell
}

// Clue is the ordered run description of a single line. Two consecutive
// blocks of the same color require at least one background cell between
// them; blocks of different colors may abut.
type Clue []Block

// Blocks builds a monochrome clue from run lengths using the given ink.
func Blocks(ink Cell, lengths ...int) Clue {
	clue := make(Clue, 0, len(lengths))
	for _, l := range lengths {
		clue = append(clue, Block{Length: l, Color: ink})
	}
	return clue
}

// MinSpan is the smallest number of cells the clue can occupy: the sum of
// the run lengths plus one separator per same-color adjacency.
func (c Clue) MinSpan() int {
	span := 0
	for i, b := range c {
		span += b.Length
		if i > 0 && b.Color == c[i-1].Color {
			span++
		}
	}
	return span
}

// separatorBefore reports whether block j must be preceded by a background
// cell (same color as the previous block).
func (c Clue) separatorBefore(j int) bool {
	return j > 0 && c[j].Color == c[j-1].Color
}

func (c Clue) validate(p *Palette, lineLen int) error {
	for i, b := range c {
		if b.Length <= 0 {
			return fmt.Errorf("block %d: length %d is not positive", i, b.Length)
		}
		if !b.Color.Resolved() || b.Color == Space {
			return fmt.Errorf("block %d: bad color code %d", i, b.Color)
		}
		if _, ok := p.ByCode(b.Color); !ok {
			return fmt.Errorf("block %d: color code %d not in palette", i, b.Color)
		}
	}
	if span := c.MinSpan(); span > lineLen {
		return fmt.Errorf("clue needs %d cells, line has %d", span, lineLen)
	}
	return nil
}

func (c Clue) String() string {
	if len(c) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(c))
	for _, b := range c {
		parts = append(parts, strconv.Itoa(b.Length))
	}
	return strings.Join(parts, " ")
}
