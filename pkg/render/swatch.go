package render

import (
	"bytes"
	"fmt"

	"github.com/sstucker/particles/pkg/errors"
	"github.com/sstucker/particles/pkg/ramp"
)

// RenderRampSVG draws table as a horizontal strip of width x height pixels,
// one rectangle per sample. Sample alpha becomes fill-opacity.
func RenderRampSVG(table ramp.Table, width, height float64) ([]byte, error) {
	if len(table) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCount, "ramp has no samples")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "swatch size %gx%g must be positive", width, height)
	}

	w := width / float64(len(table))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" shape-rendering="crispEdges">`+"\n",
		width, height, width, height)
	for i, s := range table {
		c := s.NRGBA()
		// Overlap by a fraction of a pixel so antialiasing leaves no seams.
		fmt.Fprintf(&buf, `  <rect x="%.3f" y="0" width="%.3f" height="%.1f" fill="%s" fill-opacity="%s"/>`+"\n",
			float64(i)*w, w+0.5, height, s.Hex(), opacity(c.A))
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func opacity(a uint8) string {
	if a == 255 {
		return "1"
	}
	return fmt.Sprintf("%.3f", float64(a)/255)
}
