package gui

import (
	"image"

	"9fans.net/go/draw"
)

// Label draws multiline text in a single font.
//
// Keys:
//
//	cmd-c, copy text
//	\n, like button1 click, calls the Click function
type Label struct {
	Text  string         // Text to draw, wrapped at glyph boundary.
	Font  *draw.Font     `json:"-"` // For drawing text.
	Click func(e *Event) `json:"-"` // Called on button1 click.

	lines []string
	size  image.Point
	m     draw.Mouse
}

var _ UI = &Label{}

func (ui *Label) font(g *GUI) *draw.Font {
	return g.Font(ui.Font)
}

func (ui *Label) Layout(g *GUI, self *Kid, sizeAvail image.Point, force bool) {
	g.debugLayout(self)

	font := ui.font(g)
	ui.lines = []string{}
	s := 0
	x := 0
	xmax := 0
	for i, c := range ui.Text {
		if c == '\n' {
			xmax = maximum(xmax, x)
			ui.lines = append(ui.lines, ui.Text[s:i])
			s = i + 1
			x = 0
			continue
		}
		dx := font.StringWidth(string(c))
		x += dx
		if i-s == 0 || x <= sizeAvail.X {
			continue
		}
		xmax = maximum(xmax, x-dx)
		ui.lines = append(ui.lines, ui.Text[s:i])
		s = i
		x = dx
	}
	if s < len(ui.Text) || s == 0 {
		ui.lines = append(ui.lines, ui.Text[s:])
		xmax = maximum(xmax, x)
	}
	ui.size = image.Pt(xmax, len(ui.lines)*font.Height)
	self.R = rect(ui.size)
}

func (ui *Label) Draw(g *GUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	g.debugDraw(self)

	p := orig
	font := ui.font(g)
	for _, line := range ui.lines {
		img.String(p, g.Regular.Normal.Text, image.ZP, font, line)
		p.Y += font.Height
	}
}

func (ui *Label) click(self *Kid, r *Result) {
	if ui.Click == nil {
		return
	}
	var e Event
	ui.Click(&e)
	propagateEvent(self, r, e)
}

func (ui *Label) Mouse(g *GUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	if m.In(rect(ui.size)) && ui.m.Buttons == 0 && m.Buttons == Button1 && ui.Click != nil {
		ui.click(self, &r)
	}
	ui.m = m
	return
}

func (ui *Label) Key(g *GUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	switch k {
	case '\n':
		ui.click(self, &r)
	case draw.KeyCmd + 'c':
		g.WriteSnarf([]byte(ui.Text))
		r.Consumed = true
	}
	return
}

func (ui *Label) FirstFocus(g *GUI, self *Kid) *image.Point {
	return nil
}

func (ui *Label) Focus(g *GUI, self *Kid, o UI) *image.Point {
	if o != ui {
		return nil
	}
	return &image.ZP
}

func (ui *Label) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	return self.Mark(o, forLayout)
}

func (ui *Label) Print(self *Kid, indent int) {
	PrintUI("Label", self, indent)
}
