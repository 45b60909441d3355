// Package warp resamples images through affine transforms.
//
// Warping uses inverse mapping: each destination pixel takes its
// color from the source at the preimage of its own location, so only
// invertible transforms can be used.
package warp

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"deedles.dev/affine"
)

// An Interpolator samples an image at a non-integer coordinate.
type Interpolator interface {
	// Interpolate returns the color of src at (x, y). The coordinate
	// is assumed to lie inside src's bounds.
	Interpolate(src image.Image, x, y float64) color.Color
}

var (
	NearestNeighbor Interpolator = nearest{}
	Bilinear        Interpolator = bilinear{}
)

type nearest struct{}

func (nearest) Interpolate(src image.Image, x, y float64) color.Color {
	return src.At(int(math.Round(x)), int(math.Round(y)))
}

type bilinear struct{}

func (bilinear) Interpolate(src image.Image, x, y float64) color.Color {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0

	b := src.Bounds()
	ix0, iy0 := int(x0), int(y0)
	ix1 := min(ix0+1, b.Max.X-1)
	iy1 := min(iy0+1, b.Max.Y-1)

	var r, g, bl, a float64
	for _, s := range [...]struct {
		x, y int
		w    float64
	}{
		{ix0, iy0, (1 - fx) * (1 - fy)},
		{ix1, iy0, fx * (1 - fy)},
		{ix0, iy1, (1 - fx) * fy},
		{ix1, iy1, fx * fy},
	} {
		if s.w == 0 {
			continue
		}
		pr, pg, pb, pa := src.At(s.x, s.y).RGBA()
		r += s.w * float64(pr)
		g += s.w * float64(pg)
		bl += s.w * float64(pb)
		a += s.w * float64(pa)
	}

	return color.RGBA64{
		R: uint16(r + 0.5),
		G: uint16(g + 0.5),
		B: uint16(bl + 0.5),
		A: uint16(a + 0.5),
	}
}

// Image draws src through t into dst. Every pixel inside dst's bounds
// whose preimage under t lies inside src's bounds is sampled from src
// with interp; the rest are left untouched. It returns
// [affine.ErrSingular] if t cannot be inverted.
func Image(dst draw.Image, src image.Image, t affine.Transform[float64], interp Interpolator) error {
	inv, err := t.Invert()
	if err != nil {
		return err
	}

	sb := src.Bounds()
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sx, sy := inv.ApplyXY(float64(x), float64(y))
			if sx < float64(sb.Min.X) || sx > float64(sb.Max.X-1) ||
				sy < float64(sb.Min.Y) || sy > float64(sb.Max.Y-1) {
				continue
			}
			dst.Set(x, y, interp.Interpolate(src, sx, sy))
		}
	}
	return nil
}

// Bounds returns the smallest integer rectangle that contains the
// image of r under t.
func Bounds(t affine.Transform[float64], r image.Rectangle) image.Rectangle {
	corners := [...]affine.Point[float64]{
		affine.Pt(float64(r.Min.X), float64(r.Min.Y)),
		affine.Pt(float64(r.Max.X), float64(r.Min.Y)),
		affine.Pt(float64(r.Min.X), float64(r.Max.Y)),
		affine.Pt(float64(r.Max.X), float64(r.Max.Y)),
	}

	lo := t.Apply(corners[0])
	hi := lo
	for _, c := range corners[1:] {
		q := t.Apply(c)
		lo.X = math.Min(lo.X, q.X)
		lo.Y = math.Min(lo.Y, q.Y)
		hi.X = math.Max(hi.X, q.X)
		hi.Y = math.Max(hi.Y, q.Y)
	}

	return image.Rect(
		int(math.Floor(lo.X)), int(math.Floor(lo.Y)),
		int(math.Ceil(hi.X)), int(math.Ceil(hi.Y)),
	)
}
