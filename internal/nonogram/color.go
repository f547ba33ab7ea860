package nonogram

import (
	"fmt"
	"strconv"
	"strings"
)

// Color aggregates the representations of a single palette entry: the name
// used in clue descriptions, the RGB code used by the SVG renderer, the
// ASCII symbol used by the terminal renderer and the bitmask code used by
// the solvers.
type Color struct {
	Name   string
	RGB    string
	Symbol byte
	Code   Cell
}

// Palette is a small ordered set of colors. Entry 0 is always the
// background (space); the remaining entries are inks with codes 1<<1,
// 1<<2 and so on.
type Palette struct {
	colors []Color
	all    Cell
}

const maxInks = 31

// NewPalette builds a palette from the given ink colors. The background
// color is added implicitly; ink codes are assigned in argument order.
func NewPalette(inks ...Color) (*Palette, error) {
	if len(inks) == 0 {
		return nil, fmt.Errorf("palette needs at least one ink color")
	}
	if len(inks) > maxInks {
		return nil, fmt.Errorf("too many colors: %d > %d", len(inks), maxInks)
	}

	p := &Palette{
		colors: make([]Color, 0, len(inks)+1),
	}
	p.colors = append(p.colors, Color{
		Name: "white", RGB: "ffffff", Symbol: '.', Code: Space,
	})
	seen := map[string]bool{"white": true}
	for i, ink := range inks {
		if ink.Name == "" {
			return nil, fmt.Errorf("color %d has no name", i)
		}
		if seen[ink.Name] {
			return nil, fmt.Errorf("duplicate color %q", ink.Name)
		}
		seen[ink.Name] = true
		ink.Code = 1 << (i + 1)
		if ink.Symbol == 0 {
			ink.Symbol = defaultSymbols[i%len(defaultSymbols)]
		}
		p.colors = append(p.colors, ink)
	}
	for _, c := range p.colors {
		p.all |= c.Code
	}
	return p, nil
}

var defaultSymbols = []byte("X%*#@$&+O")

// BlackAndWhite is the monochrome palette: background plus a single black
// ink.
func BlackAndWhite() *Palette {
	p, err := NewPalette(Color{Name: "black", RGB: "000000", Symbol: 'X'})
	if err != nil {
		panic(err)
	}
	return p
}

// All is the mask with every palette bit set, the initial state of every
// cell.
func (p *Palette) All() Cell {
	return p.all
}

// Size reports the number of colors including the background.
func (p *Palette) Size() int {
	return len(p.colors)
}

// Colors returns the palette entries, background first.
func (p *Palette) Colors() []Color {
	return p.colors
}

// ByCode finds the palette entry for a single-color mask.
func (p *Palette) ByCode(code Cell) (Color, bool) {
	for _, c := range p.colors {
		if c.Code == code {
			return c, true
		}
	}
	return Color{}, false
}

// ByName finds a palette entry by its clue name.
func (p *Palette) ByName(name string) (Color, bool) {
	for _, c := range p.colors {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}

// BySymbol finds a palette entry by its terminal symbol.
func (p *Palette) BySymbol(symbol byte) (Color, bool) {
	for _, c := range p.colors {
		if c.Symbol == symbol {
			return c, true
		}
	}
	return Color{}, false
}

// Monochrome reports whether the palette has exactly one ink.
func (p *Palette) Monochrome() bool {
	return len(p.colors) == 2
}

func (p *Palette) String() string {
	var b strings.Builder
	for i, c := range p.colors {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.Name + "=" + strconv.Itoa(int(c.Code)))
	}
	return b.String()
}
