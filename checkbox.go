package gui

import (
	"image"

	"9fans.net/go/draw"
)

// Checkbox is a toggle, with an optional text label to its right. The label
// is part of the hit area.
type Checkbox struct {
	Checked  bool
	Text     string
	Disabled bool
	Font     *draw.Font     `json:"-"`
	Changed  func(e *Event) `json:"-"` // Called after the state changed.

	m draw.Mouse
}

var _ UI = &Checkbox{}

func (ui *Checkbox) font(g *GUI) *draw.Font {
	return g.Font(ui.Font)
}

func (ui *Checkbox) boxSize(g *GUI) int {
	return 2*BorderSize + 4*ui.font(g).Height/5
}

func (ui *Checkbox) size(g *GUI) image.Point {
	hit := image.Point{0, 1}
	size := pt(ui.boxSize(g)).Add(hit)
	if ui.Text != "" {
		font := ui.font(g)
		size.X += font.Height/2 + font.StringSize(ui.Text).X
		size.Y = maximum(size.Y, font.Height)
	}
	return size
}

func (ui *Checkbox) Layout(g *GUI, self *Kid, sizeAvail image.Point, force bool) {
	g.debugLayout(self)
	self.R = rect(ui.size(g))
}

func (ui *Checkbox) Draw(g *GUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	g.debugDraw(self)

	hover := m.In(rect(ui.size(g)))
	r := rect(pt(ui.boxSize(g))).Add(orig)

	colors := g.Regular.Normal
	color := colors.Text
	if ui.Disabled {
		colors = g.Disabled
		color = colors.Border
	} else if hover {
		colors = g.Regular.Hover
		color = colors.Border
	}

	hit := pt(0)
	if hover && !ui.Disabled && m.Buttons&Button1 == Button1 {
		hit = image.Pt(0, 1)
	}

	img.Draw(extendY(r, 1), colors.Background, nil, image.ZP)
	r = r.Add(hit)
	drawRoundedBorder(img, r, color)

	cr := r.Inset((4 * ui.font(g).Height / 5) / 5)
	if ui.Checked {
		p0 := image.Pt(cr.Min.X, cr.Min.Y+2*cr.Dy()/3)
		p1 := image.Pt(cr.Min.X+1*cr.Dx()/3, cr.Max.Y)
		p2 := image.Pt(cr.Max.X, cr.Min.Y)
		img.Line(p0, p1, 0, 0, 1, color, image.ZP)
		img.Line(p1, p2, 0, 0, 1, color, image.ZP)
	}

	if ui.Text != "" {
		font := ui.font(g)
		p := orig.Add(image.Pt(ui.boxSize(g)+font.Height/2, 0)).Add(hit)
		img.String(p, colors.Text, image.ZP, font, ui.Text)
	}
}

func (ui *Checkbox) toggle(self *Kid, r *Result) {
	ui.Checked = !ui.Checked
	if ui.Changed != nil {
		var e Event
		ui.Changed(&e)
		propagateEvent(self, r, e)
	}
}

func (ui *Checkbox) Mouse(g *GUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	if ui.Disabled {
		return
	}
	rr := rect(ui.size(g))
	hover := m.In(rr)
	if hover != ui.m.In(rr) {
		self.Draw = Dirty
	}
	if hover && ui.m.Buttons&Button1 != m.Buttons&Button1 {
		self.Draw = Dirty
		if m.Buttons&Button1 == 0 {
			r.Consumed = true
			ui.toggle(self, &r)
		}
	}
	ui.m = m
	return
}

func (ui *Checkbox) Key(g *GUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	if ui.Disabled {
		return
	}
	if k == ' ' {
		r.Consumed = true
		self.Draw = Dirty
		ui.toggle(self, &r)
	}
	return
}

func (ui *Checkbox) FirstFocus(g *GUI, self *Kid) *image.Point {
	return &image.ZP
}

func (ui *Checkbox) Focus(g *GUI, self *Kid, o UI) *image.Point {
	if o != ui {
		return nil
	}
	return ui.FirstFocus(g, self)
}

func (ui *Checkbox) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	return self.Mark(o, forLayout)
}

func (ui *Checkbox) Print(self *Kid, indent int) {
	PrintUI("Checkbox", self, indent)
}
