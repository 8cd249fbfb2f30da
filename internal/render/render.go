// Package render draws a boardstate.Board to a PNG image: grid lines,
// stones, and column-letter labels (rows are not labelled). It is a
// debug/demo aid, not part of the decision path; cmd/play does not use it.
//
// Grounded on encoding/gif/gifrenderer.go's font-drawing approach: a
// truetype.Font parsed once at init from golang.org/x/image/font/gofont,
// a font.Drawer positioned with fixed.Point26_6 coordinates.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/golang/freetype/truetype"
	"github.com/ninebygo/engine/boardstate"
	"github.com/ninebygo/engine/geometry"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

const (
	dpi        = 96.0
	fontsize   = 12.0
	cellPixels = 40
	margin     = 30
)

var regular *truetype.Font

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var (
	background = color.White
	lineColor  = color.Gray{Y: 40}
	blackStone = color.Black
	whiteStone = color.White
	whiteEdge  = color.Gray16{Y: 40 << 8}
)

// columnLabels are the conventional Go board letters; "I" is skipped to
// avoid confusion with "1".
var columnLabels = "ABCDEFGHJ"

// Encoder rasterizes boards into PNGs written to an io.Writer, reusing one
// glyph face across calls the way gif.Encoder reuses its font.Drawer.
type Encoder struct {
	face font.Face
	size int
}

// NewEncoder builds an Encoder sized for the fixed geometry.Size board.
func NewEncoder() *Encoder {
	return &Encoder{
		face: truetype.NewFace(regular, &truetype.Options{
			Size:    fontsize,
			DPI:     dpi,
			Hinting: font.HintingFull,
		}),
		size: margin*2 + cellPixels*(geometry.Size-1),
	}
}

// Encode draws b and writes it as a PNG to w.
func (e *Encoder) Encode(w io.Writer, b *boardstate.Board) error {
	img := image.NewRGBA(image.Rect(0, 0, e.size, e.size))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	e.drawGrid(img)
	e.drawLabels(img)
	e.drawStones(img, b)

	return png.Encode(w, img)
}

func (e *Encoder) cellCenter(row, col int) (x, y int) {
	return margin + col*cellPixels, margin + row*cellPixels
}

func (e *Encoder) drawGrid(img *image.RGBA) {
	for i := 0; i < geometry.Size; i++ {
		x, _ := e.cellCenter(0, i)
		y0, y1 := margin, margin+cellPixels*(geometry.Size-1)
		drawVLine(img, x, y0, y1, lineColor)

		_, y := e.cellCenter(i, 0)
		x0, x1 := margin, margin+cellPixels*(geometry.Size-1)
		drawHLine(img, x0, x1, y, lineColor)
	}
}

func (e *Encoder) drawLabels(img *image.RGBA) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(lineColor),
		Face: e.face,
	}
	for col := 0; col < geometry.Size; col++ {
		x, _ := e.cellCenter(0, col)
		drawer.Dot = fixed.P(x-4, margin/2)
		drawer.DrawString(string(columnLabels[col]))
	}
}

func (e *Encoder) drawStones(img *image.RGBA, b *boardstate.Board) {
	for row := int8(0); row < geometry.Size; row++ {
		for col := int8(0); col < geometry.Size; col++ {
			c := b.Get(geometry.Position{Row: row, Col: col})
			if c == geometry.None {
				continue
			}
			x, y := e.cellCenter(int(row), int(col))
			drawStone(img, x, y, c)
		}
	}
}

func drawStone(img *image.RGBA, cx, cy int, c geometry.Color) {
	const radius = cellPixels/2 - 3
	fill := blackStone
	outline := blackStone
	if c == geometry.White {
		fill = whiteStone
		outline = whiteEdge
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			px, py := cx+dx, cy+dy
			if !(px >= 0 && py >= 0 && px < img.Bounds().Dx() && py < img.Bounds().Dy()) {
				continue
			}
			if dx*dx+dy*dy > (radius-1)*(radius-1) {
				img.Set(px, py, outline)
			} else {
				img.Set(px, py, fill)
			}
		}
	}
}

func drawHLine(img *image.RGBA, x0, x1, y int, c color.Color) {
	for x := x0; x <= x1; x++ {
		img.Set(x, y, c)
	}
}

func drawVLine(img *image.RGBA, x, y0, y1 int, c color.Color) {
	for y := y0; y <= y1; y++ {
		img.Set(x, y, c)
	}
}
