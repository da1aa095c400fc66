package gui

import (
	"image"
)

// Space represents the padding or margin on the sides of a rectangle.
type Space struct {
	Top, Right, Bottom, Left int
}

func (s Space) Dx() int {
	return s.Left + s.Right
}

func (s Space) Dy() int {
	return s.Top + s.Bottom
}

func (s Space) Size() image.Point {
	return image.Pt(s.Dx(), s.Dy())
}

func (s Space) Topleft() image.Point {
	return image.Pt(s.Left, s.Top)
}

func (s Space) Inset(r image.Rectangle) image.Rectangle {
	return image.Rect(r.Min.X+s.Left, r.Min.Y+s.Top, r.Max.X-s.Right, r.Max.Y-s.Bottom)
}

// SpaceXY returns a Space with x for left/right and y for top/bottom.
func SpaceXY(x, y int) Space {
	return Space{y, x, y, x}
}

// SpacePt returns a Space with p.X for left/right and p.Y for top/bottom.
func SpacePt(p image.Point) Space {
	return Space{p.Y, p.X, p.Y, p.X}
}
