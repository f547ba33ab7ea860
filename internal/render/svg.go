package render

import (
	"fmt"
	"strings"

	"github.com/vancomm/nonogram-server/internal/nonogram"
)

const svgCellSize = 16

// SVG renders the grid as a standalone SVG document. Resolved ink cells
// are filled with their palette RGB, resolved background cells are left
// blank and undetermined cells get a neutral gray.
// Clue gutters are not drawn, the image is meant as a solution preview.
func SVG(b *nonogram.Board) string {
	var sb strings.Builder

	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" `+
			`viewBox="0 0 %[1]d %[2]d">`+"\n",
		b.Width()*svgCellSize, b.Height()*svgCellSize,
	)

	for r := 0; r < b.Height(); r++ {
		for c := 0; c < b.Width(); c++ {
			fill := svgFill(b, r, c)
			if fill == "" {
				continue
			}
			fmt.Fprintf(&sb,
				`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="silver"/>`+"\n",
				c*svgCellSize, r*svgCellSize, svgCellSize, svgCellSize, fill,
			)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func svgFill(b *nonogram.Board, r, c int) string {
	mask := b.Get(r, c)
	if !mask.Resolved() {
		return "gray"
	}
	if mask == nonogram.Space {
		return "" // background stays blank
	}
	color, ok := b.Palette().ByCode(mask)
	if !ok {
		return "gray"
	}
	rgb := color.RGB
	if !strings.HasPrefix(rgb, "#") && !strings.HasPrefix(rgb, "rgb") {
		rgb = "#" + rgb
	}
	return rgb
}
