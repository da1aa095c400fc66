package gui

import (
	"image"

	"9fans.net/go/draw"
)

// Image draws an already-allocated display image at its natural size.
// See Picture for drawing an image file through the texture cache.
type Image struct {
	Image *draw.Image `json:"-"`
}

var _ UI = &Image{}

func (ui *Image) Layout(g *GUI, self *Kid, sizeAvail image.Point, force bool) {
	g.debugLayout(self)
	if ui.Image == nil {
		self.R = image.ZR
		return
	}
	self.R = rect(ui.Image.R.Size())
}

func (ui *Image) Draw(g *GUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	g.debugDraw(self)
	if ui.Image == nil {
		return
	}
	img.Draw(rect(ui.Image.R.Size()).Add(orig), ui.Image, nil, image.ZP)
}

func (ui *Image) Mouse(g *GUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	return
}

func (ui *Image) Key(g *GUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	return
}

func (ui *Image) FirstFocus(g *GUI, self *Kid) *image.Point {
	return nil
}

func (ui *Image) Focus(g *GUI, self *Kid, o UI) *image.Point {
	if o != ui {
		return nil
	}
	return &image.ZP
}

func (ui *Image) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	return self.Mark(o, forLayout)
}

func (ui *Image) Print(self *Kid, indent int) {
	PrintUI("Image", self, indent)
}
