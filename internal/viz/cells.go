package viz

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

const halfBlock = "▀"

// Sample scales src to cols×(2*rows) pixels, two pixel rows per terminal
// row.
func Sample(src image.Image, cols, rows int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Cells renders src as rows lines of cols half-block cells. The upper pixel
// is the foreground and the lower pixel the background of each cell.
func Cells(src image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	img := Sample(src, cols, rows)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			top := hex(img, x, row*2)
			bottom := hex(img, x, row*2+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(halfBlock))
		}
	}
	return b.String()
}

func hex(img *image.RGBA, x, y int) string {
	c, ok := colorful.MakeColor(img.RGBAAt(x, y))
	if !ok {
		return "#000000"
	}
	return c.Hex()
}
