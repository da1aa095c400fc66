package gui

import (
	"image"

	"9fans.net/go/draw"
)

// Middle lays out a single child in the middle of the available space, both vertically and horizontally.
type Middle struct {
	Kid *Kid

	kids []*Kid
	size image.Point
}

func NewMiddle(ui UI) *Middle {
	return &Middle{Kid: &Kid{UI: ui}}
}

var _ UI = &Middle{}

func (ui *Middle) ensure() {
	if len(ui.kids) != 1 {
		ui.kids = make([]*Kid, 1)
	}
	ui.kids[0] = ui.Kid
}

func (ui *Middle) Layout(g *GUI, self *Kid, sizeAvail image.Point, force bool) {
	ui.ensure()
	g.debugLayout(self)

	if KidsLayout(g, self, ui.kids, force) {
		return
	}

	ui.Kid.UI.Layout(g, ui.Kid, sizeAvail, true)
	left := sizeAvail.Sub(ui.Kid.R.Size())
	ui.Kid.R = ui.Kid.R.Add(image.Pt(maximum(0, left.X/2), maximum(0, left.Y/2)))
	ui.size = image.Pt(maximum(ui.Kid.R.Dx(), sizeAvail.X), maximum(ui.Kid.R.Dy(), sizeAvail.Y))
	self.R = rect(ui.size)
}

func (ui *Middle) Draw(g *GUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	ui.ensure()
	g.debugDraw(self)
	KidsDraw(g, self, ui.kids, ui.size, nil, img, orig, m, force)
}

func (ui *Middle) Mouse(g *GUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	ui.ensure()
	return KidsMouse(g, self, ui.kids, m, origM, orig)
}

func (ui *Middle) Key(g *GUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	ui.ensure()
	return KidsKey(g, self, ui.kids, k, m, orig)
}

func (ui *Middle) FirstFocus(g *GUI, self *Kid) (warp *image.Point) {
	ui.ensure()
	return KidsFirstFocus(g, self, ui.kids)
}

func (ui *Middle) Focus(g *GUI, self *Kid, o UI) (warp *image.Point) {
	ui.ensure()
	return KidsFocus(g, self, ui.kids, o)
}

func (ui *Middle) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	ui.ensure()
	return KidsMark(self, ui.kids, o, forLayout)
}

func (ui *Middle) Print(self *Kid, indent int) {
	ui.ensure()
	PrintUI("Middle", self, indent)
	KidsPrint(ui.kids, indent+1)
}
