// Package render paints a layout.Scene into a raster image and encodes it as
// PNG.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/vector"

	"tableflip.dev/dotcal/pkg/layout"
)

// kappa places cubic control points so four Bézier arcs approximate a circle.
const kappa = 0.5522847498

var (
	parseOnce sync.Once
	regular   *opentype.Font
	parseErr  error
)

func defaultFont() (*opentype.Font, error) {
	parseOnce.Do(func() {
		regular, parseErr = opentype.Parse(goregular.TTF)
	})
	return regular, parseErr
}

// Image paints sc onto a new RGBA image of sc.Width × sc.Height.
func Image(sc layout.Scene) (*image.RGBA, error) {
	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, fmt.Errorf("render: invalid image size %dx%d", sc.Width, sc.Height)
	}
	dst := image.NewRGBA(image.Rect(0, 0, sc.Width, sc.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(sc.Background), image.Point{}, draw.Src)

	for _, d := range sc.Dots {
		fillCircle(dst, d.X, d.Y, d.Diameter/2, d.Color)
	}

	if len(sc.Texts) == 0 {
		return dst, nil
	}
	f, err := defaultFont()
	if err != nil {
		return nil, fmt.Errorf("render: loading font: %w", err)
	}
	faces := newFaceCache(f)
	defer faces.Close()
	for _, t := range sc.Texts {
		if err := drawText(dst, faces, t); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// PNG paints sc and writes it to w as PNG.
func PNG(w io.Writer, sc layout.Scene) error {
	img, err := Image(sc)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}

// fillCircle rasterizes the circle into a mask covering its bounding box and
// composites it onto dst. DrawMask does the clipping at the image edges.
func fillCircle(dst *image.RGBA, cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	box := image.Rect(
		int(math.Floor(cx-r)), int(math.Floor(cy-r)),
		int(math.Ceil(cx+r)), int(math.Ceil(cy+r)),
	)
	if !box.Overlaps(dst.Bounds()) {
		return
	}

	x, y := float32(cx-float64(box.Min.X)), float32(cy-float64(box.Min.Y))
	rr := float32(r)
	k := rr * kappa

	z := vector.NewRasterizer(box.Dx(), box.Dy())
	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(dst, box, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}
