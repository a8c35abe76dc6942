package render

import (
	"bytes"
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/skip2/go-qrcode"
)

const (
	qrScale  = 4
	qrBorder = 2
)

func encodeQR(content string) (*qrcode.QRCode, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	q.DisableBorder = true
	return q, nil
}

// QRCodeSVG draws content as an SVG QR code, 4px per module with a 2 module margin.
func QRCodeSVG(content string) ([]byte, error) {
	q, err := encodeQR(content)
	if err != nil {
		return nil, err
	}

	bitmap := q.Bitmap()
	size := (len(bitmap) + 2*qrBorder) * qrScale

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size, size,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, size, size),
		`class="qrcode"`,
		`shape-rendering="crispEdges"`)
	canvas.Rect(0, 0, size, size, "fill:#fff")
	canvas.Path(modulePath(bitmap), "fill:#000")
	canvas.End()

	return buf.Bytes(), nil
}

// modulePath merges each horizontal run of dark modules into one rectangle.
func modulePath(bitmap [][]bool) string {
	var d strings.Builder
	for y, row := range bitmap {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			fmt.Fprintf(&d, "M%d %dh%dv%dh-%dz",
				(start+qrBorder)*qrScale, (y+qrBorder)*qrScale,
				(x-start)*qrScale, qrScale, (x-start)*qrScale)
		}
	}
	return d.String()
}

// QRCodePNG renders content as a size x size PNG.
func QRCodePNG(content string, size int) ([]byte, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
