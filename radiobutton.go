package gui

import (
	"image"

	"9fans.net/go/draw"
)

// Radiobutton is a single selectable value out of a Group of radiobuttons,
// with an optional text label to its right.
type Radiobutton struct {
	Selected bool
	Text     string
	Disabled bool
	Value    interface{} `json:"-"` // Auxiliary data.
	Font     *draw.Font  `json:"-"`
	Group    RadiobuttonGroup
	Changed  func(v interface{}, e *Event) `json:"-"` // Called for the newly selected radiobutton in the group.

	m draw.Mouse
}

// RadiobuttonGroup is a set of radiobuttons of which at most one is selected.
// Assign the same group to each of its radiobuttons.
type RadiobuttonGroup []*Radiobutton

// Selected returns the selected radiobutton in the group, if any.
func (g RadiobuttonGroup) Selected() *Radiobutton {
	for _, ui := range g {
		if ui.Selected {
			return ui
		}
	}
	return nil
}

var _ UI = &Radiobutton{}

func (ui *Radiobutton) font(g *GUI) *draw.Font {
	return g.Font(ui.Font)
}

func (ui *Radiobutton) circleSize(g *GUI) int {
	return 2*BorderSize + 4*ui.font(g).Height/5
}

func (ui *Radiobutton) size(g *GUI) image.Point {
	hit := image.Point{0, 1}
	size := pt(ui.circleSize(g)).Add(hit)
	if ui.Text != "" {
		font := ui.font(g)
		size.X += font.Height/2 + font.StringSize(ui.Text).X
		size.Y = maximum(size.Y, font.Height)
	}
	return size
}

func (ui *Radiobutton) Layout(g *GUI, self *Kid, sizeAvail image.Point, force bool) {
	g.debugLayout(self)
	self.R = rect(ui.size(g))
}

func (ui *Radiobutton) Draw(g *GUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	g.debugDraw(self)

	hover := m.In(rect(ui.size(g)))
	r := rect(pt(ui.circleSize(g))).Add(orig)

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

	radius := r.Dx() / 2
	img.Arc(r.Min.Add(pt(radius)), radius, radius, 0, color, image.ZP, 0, 360)

	cr := r.Inset((4 * ui.font(g).Height / 5) / 5).Add(hit)
	if ui.Selected {
		radius = cr.Dx() / 2
		img.FillArc(cr.Min.Add(pt(radius)), radius, radius, 0, color, image.ZP, 0, 360)
	}

	if ui.Text != "" {
		font := ui.font(g)
		p := orig.Add(image.Pt(ui.circleSize(g)+font.Height/2, 0)).Add(hit)
		img.String(p, colors.Text, image.ZP, font, ui.Text)
	}
}

// Select makes this the selected radiobutton of its group, deselecting the
// others and marking them for redraw, and calls Changed.
func (ui *Radiobutton) Select(g *GUI, self *Kid, r *Result) {
	ui.Selected = true
	for _, o := range ui.Group {
		if o != ui && o.Selected {
			o.Selected = false
			g.MarkDraw(o)
		}
	}
	if ui.Changed != nil {
		var e Event
		ui.Changed(ui.Value, &e)
		propagateEvent(self, r, e)
	}
}

func (ui *Radiobutton) Mouse(g *GUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
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
		if m.Buttons&Button1 == 0 && !ui.Selected {
			r.Consumed = true
			ui.Select(g, self, &r)
		}
	}
	ui.m = m
	return
}

func (ui *Radiobutton) Key(g *GUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	if ui.Disabled {
		return
	}
	if k == ' ' && !ui.Selected {
		r.Consumed = true
		self.Draw = Dirty
		ui.Select(g, self, &r)
	}
	return
}

func (ui *Radiobutton) FirstFocus(g *GUI, self *Kid) *image.Point {
	return &image.ZP
}

func (ui *Radiobutton) Focus(g *GUI, self *Kid, o UI) *image.Point {
	if o != ui {
		return nil
	}
	return ui.FirstFocus(g, self)
}

func (ui *Radiobutton) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	return self.Mark(o, forLayout)
}

func (ui *Radiobutton) Print(self *Kid, indent int) {
	PrintUI("Radiobutton", self, indent)
}
