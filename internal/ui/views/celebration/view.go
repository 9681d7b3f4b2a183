package celebration

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	celebrationadapter "goalcheer/internal/modules/celebration/adapter/out"
	celebrationdto "goalcheer/internal/modules/celebration/dto"
	"goalcheer/internal/ui/theme"
)

// minHeartOpacity hides hearts that have almost faded; terminals cannot draw
// translucent glyphs.
const minHeartOpacity = 0.15

const halfBlock = "▀"

type rgb [3]uint8

func (c rgb) hex() string { return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]) }

type cell struct {
	top    rgb
	bottom rgb
	glyph  string
	// covered marks the second column of a wide glyph.
	covered bool
}

// Render draws the overlay raster into cols x rows terminal cells, two pixel
// bands per cell, with the heart sprites placed on top.
func Render(img *image.RGBA, sprites []celebrationdto.HeartSprite, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
		for c := range grid[r] {
			x0 := c * celebrationadapter.CellWidthPx
			y0 := r * celebrationadapter.CellHeightPx
			grid[r][c].top = blendBlock(img, x0, y0)
			grid[r][c].bottom = blendBlock(img, x0, y0+celebrationadapter.CellHeightPx/2)
		}
	}
	placeHearts(grid, sprites, cols, rows)

	lines := make([]string, rows)
	for r, row := range grid {
		lines[r] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

func placeHearts(grid [][]cell, sprites []celebrationdto.HeartSprite, cols, rows int) {
	for _, s := range sprites {
		if s.Opacity < minHeartOpacity || s.BottomPx < 0 {
			continue
		}
		col := int(s.LeftPercent / 100 * float64(cols))
		row := rows - 1 - int(s.BottomPx/celebrationadapter.CellHeightPx)
		if row < 0 || row >= rows || col < 0 || col+1 >= cols {
			continue
		}
		if grid[row][col].covered || grid[row][col+1].glyph != "" {
			continue
		}
		grid[row][col].glyph = s.Glyph
		grid[row][col+1].covered = true
	}
}

func renderRow(row []cell) string {
	var sb strings.Builder
	i := 0
	for i < len(row) {
		c := row[i]
		if c.glyph != "" {
			sb.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.bottom.hex())).Render(c.glyph))
			i += 2
			continue
		}
		j := i + 1
		for j < len(row) && row[j].glyph == "" && !row[j].covered && row[j].top == c.top && row[j].bottom == c.bottom {
			j++
		}
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.top.hex())).
			Background(lipgloss.Color(c.bottom.hex()))
		sb.WriteString(style.Render(strings.Repeat(halfBlock, j-i)))
		i = j
	}
	return sb.String()
}

// blendBlock averages one half-cell of premultiplied pixels and composites
// the result over the base colour. Pixels outside img count as transparent.
func blendBlock(img *image.RGBA, x0, y0 int) rgb {
	base := theme.BaseRGB
	if img == nil {
		return rgb(base)
	}
	var sum [4]float64
	n := 0
	bounds := img.Bounds()
	for y := y0; y < y0+celebrationadapter.CellHeightPx/2; y++ {
		for x := x0; x < x0+celebrationadapter.CellWidthPx; x++ {
			n++
			if !(image.Point{X: x, Y: y}).In(bounds) {
				continue
			}
			off := img.PixOffset(x, y)
			for k := 0; k < 4; k++ {
				sum[k] += float64(img.Pix[off+k])
			}
		}
	}
	alpha := sum[3] / float64(n) / 255
	var out rgb
	for k := 0; k < 3; k++ {
		v := sum[k]/float64(n) + float64(base[k])*(1-alpha)
		out[k] = uint8(math.Min(255, math.Round(v)))
	}
	return out
}
