package render

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"tableflip.dev/dotcal/pkg/layout"
)

// faceCache hands out one face per size. Faces are not safe for concurrent
// use, so a cache lives for a single Image call.
type faceCache struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

func newFaceCache(f *opentype.Font) *faceCache {
	return &faceCache{font: f, faces: make(map[float64]font.Face)}
}

func (c *faceCache) Face(size float64) (font.Face, error) {
	if face, ok := c.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: face at %vpx: %w", size, err)
	}
	c.faces[size] = face
	return face, nil
}

func (c *faceCache) Close() {
	for _, face := range c.faces {
		_ = face.Close()
	}
}

func measure(face font.Face, t layout.Text) fixed.Int26_6 {
	var w fixed.Int26_6
	for _, r := range t.Runs {
		w += font.MeasureString(face, r.Text)
	}
	return w
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// drawText draws the runs of t one after another. Lines wider than
// t.MaxWidth are drawn at a smaller size.
func drawText(dst *image.RGBA, faces *faceCache, t layout.Text) error {
	if t.Size <= 0 || len(t.Runs) == 0 {
		return nil
	}
	size := t.Size
	face, err := faces.Face(size)
	if err != nil {
		return err
	}
	width := fromFixed(measure(face, t))
	if t.MaxWidth > 0 && width > t.MaxWidth {
		size = size * t.MaxWidth / width
		if face, err = faces.Face(size); err != nil {
			return err
		}
		width = fromFixed(measure(face, t))
	}

	x := t.X
	if t.Anchor == layout.AnchorCenter {
		x -= width / 2
	}
	// Center the glyph box inside the line box.
	m := face.Metrics()
	baseline := t.Y + (t.Size+fromFixed(m.Ascent)-fromFixed(m.Descent))/2

	d := &font.Drawer{
		Dst:  dst,
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(baseline)},
	}
	for _, r := range t.Runs {
		d.Src = image.NewUniform(r.Color)
		d.DrawString(r.Text)
	}
	return nil
}
