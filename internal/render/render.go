// Package render draws an orthographic preview of curve segments.
//
// The XY plane is projected onto the image (Z is dropped), fitted to the
// combined control-point bounds. A cubic Bezier lies inside the convex hull
// of its control points, so fitting the points always fits the curves.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/curve3d"
)

var (
	// ErrNothingToDraw is returned by Draw when no items are given.
	ErrNothingToDraw = errors.New("render: nothing to draw")

	// ErrBadSize is returned when the canvas has no room inside its padding.
	ErrBadSize = errors.New("render: canvas too small")
)

// Item is a named segment to draw.
type Item struct {
	Name    string
	Segment curve3d.Segment
}

// Options controls the preview.
type Options struct {
	Width, Height int

	// Padding is the margin, in pixels, kept free around the curves.
	Padding int

	// Samples is the number of line pieces per curve.
	Samples int

	// LineWidth of the curve stroke in pixels.
	LineWidth float32

	// ShowControl draws the control polygon and point markers.
	ShowControl bool

	// Label writes each item's name and cached length next to its end point.
	Label bool

	Background color.Color
}

// DefaultOptions returns a 512x512 preview with control polygons and labels.
func DefaultOptions() Options {
	return Options{
		Width:       512,
		Height:      512,
		Padding:     48,
		Samples:     128,
		LineWidth:   2.5,
		ShowControl: true,
		Label:       true,
		Background:  color.RGBA{R: 0x1e, G: 0x22, B: 0x2a, A: 0xff},
	}
}

var palette = []color.RGBA{
	{R: 0xff, G: 0x7a, B: 0x59, A: 0xff},
	{R: 0x59, G: 0xc2, B: 0xff, A: 0xff},
	{R: 0x9c, G: 0xe0, B: 0x6b, A: 0xff},
	{R: 0xf2, G: 0xc9, B: 0x4c, A: 0xff},
	{R: 0xc7, G: 0x8c, B: 0xff, A: 0xff},
}

var controlColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// projection maps world XY into pixel space.
type projection struct {
	scale      float32
	offsetX    float32
	offsetY    float32
	minX, minY float32
	height     float32
}

func (p projection) apply(v curve3d.Vec3) (float32, float32) {
	x := (v.X-p.minX)*p.scale + p.offsetX
	// Image Y grows downwards.
	y := p.height - ((v.Y-p.minY)*p.scale + p.offsetY)
	return x, y
}

func fit(items []Item, opts Options) projection {
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := -minX, -minY
	for _, it := range items {
		for _, p := range it.Segment.Points() {
			minX, maxX = math32.Min(minX, p.X), math32.Max(maxX, p.X)
			minY, maxY = math32.Min(minY, p.Y), math32.Max(maxY, p.Y)
		}
	}

	innerW := float32(opts.Width - 2*opts.Padding)
	innerH := float32(opts.Height - 2*opts.Padding)
	dx, dy := maxX-minX, maxY-minY

	var scale float32
	switch {
	case dx > 0 && dy > 0:
		scale = math32.Min(innerW/dx, innerH/dy)
	case dx > 0:
		scale = innerW / dx
	case dy > 0:
		scale = innerH / dy
	default:
		scale = 1
	}

	pad := float32(opts.Padding)
	return projection{
		scale:   scale,
		offsetX: pad + (innerW-dx*scale)/2,
		offsetY: pad + (innerH-dy*scale)/2,
		minX:    minX,
		minY:    minY,
		height:  float32(opts.Height),
	}
}

// Draw renders items into a new image.
func Draw(items []Item, opts Options) (*image.RGBA, error) {
	if len(items) == 0 {
		return nil, ErrNothingToDraw
	}
	if opts.Width-2*opts.Padding <= 0 || opts.Height-2*opts.Padding <= 0 {
		return nil, fmt.Errorf("%w: %dx%d with padding %d", ErrBadSize, opts.Width, opts.Height, opts.Padding)
	}
	if opts.Samples < 1 {
		opts.Samples = 1
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}

	bounds := image.Rect(0, 0, opts.Width, opts.Height)
	img := image.NewRGBA(bounds)
	if opts.Background != nil {
		draw.Draw(img, bounds, image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	proj := fit(items, opts)
	r := vector.NewRasterizer(opts.Width, opts.Height)

	if opts.ShowControl {
		for _, it := range items {
			pts := it.Segment.Points()
			for i := 1; i < len(pts); i++ {
				strokeLine(r, proj, pts[i-1], pts[i], 1)
			}
			for _, p := range pts {
				marker(r, proj, p, 3)
			}
		}
		fill(r, img, controlColor)
	}

	for i, it := range items {
		prev := it.Segment.CurvePoint(0, curve3d.DerivativeNone)
		for k := 1; k <= opts.Samples; k++ {
			p := it.Segment.CurvePoint(float32(k)/float32(opts.Samples), curve3d.DerivativeNone)
			strokeLine(r, proj, prev, p, opts.LineWidth)
			prev = p
		}
		fill(r, img, palette[i%len(palette)])
	}

	if opts.Label {
		if err := drawLabels(img, items, proj); err != nil {
			return nil, err
		}
	}

	curve3d.Logger().Debug("render: drew preview", "items", len(items), "width", opts.Width, "height", opts.Height)
	return img, nil
}

// fill paints the accumulated rasterizer coverage and resets it.
func fill(r *vector.Rasterizer, dst *image.RGBA, c color.Color) {
	b := dst.Bounds()
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
	r.Reset(b.Dx(), b.Dy())
}

// strokeLine adds a quad of the given width covering the projected line.
func strokeLine(r *vector.Rasterizer, proj projection, a, b curve3d.Vec3, width float32) {
	ax, ay := proj.apply(a)
	bx, by := proj.apply(b)

	dx, dy := bx-ax, by-ay
	length := math32.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Half-width normal, extended along the line so joints overlap.
	half := width / 2
	nx, ny := -dy/length*half, dx/length*half
	ex, ey := dx/length*half, dy/length*half

	r.MoveTo(ax-ex+nx, ay-ey+ny)
	r.LineTo(bx+ex+nx, by+ey+ny)
	r.LineTo(bx+ex-nx, by+ey-ny)
	r.LineTo(ax-ex-nx, ay-ey-ny)
	r.ClosePath()
}

// marker adds a square of the given half size centred on p.
func marker(r *vector.Rasterizer, proj projection, p curve3d.Vec3, half float32) {
	x, y := proj.apply(p)
	r.MoveTo(x-half, y-half)
	r.LineTo(x+half, y-half)
	r.LineTo(x+half, y+half)
	r.LineTo(x-half, y+half)
	r.ClosePath()
}

func drawLabels(img *image.RGBA, items []Item, proj projection) error {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("render: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("render: failed to create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	for i, it := range items {
		x, y := proj.apply(it.Segment.End())
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(palette[i%len(palette)]),
			Face: face,
			Dot:  fixed.P(int(x)+6, int(y)-6),
		}
		d.DrawString(Caption(it))
	}
	return nil
}

// Caption returns the label drawn for an item.
func Caption(it Item) string {
	name := it.Name
	if name == "" {
		name = "segment"
	}
	if !it.Segment.HasLength() {
		return name + " (unsampled)"
	}
	return fmt.Sprintf("%s L=%.3f", name, it.Segment.Length())
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return f.Close()
}
