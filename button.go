package gui

import (
	"image"

	"9fans.net/go/draw"
)

// Button with a text label and optional icon, clicked with button1 or
// through space/return when focused.
type Button struct {
	Text     string
	Icon     Icon // Drawn before the text.
	Disabled bool
	Colorset *Colorset      `json:"-"` // Colors to draw in, default is the regular colorset.
	Font     *draw.Font     `json:"-"`
	Click    func(e *Event) `json:"-"` // Called on button1 click.

	m draw.Mouse
}

var _ UI = &Button{}

func (ui *Button) font(g *GUI) *draw.Font {
	return g.Font(ui.Font)
}

func (ui *Button) space(g *GUI) image.Point {
	return ui.padding(g).Add(pt(BorderSize))
}

func (ui *Button) padding(g *GUI) image.Point {
	fontHeight := ui.font(g).Height
	return image.Pt(fontHeight/2, fontHeight/4)
}

func (ui *Button) size(g *GUI) image.Point {
	size := ui.font(g).StringSize(ui.Text).Add(ui.space(g).Mul(2))
	if ui.Icon.Font != nil {
		size.X += ui.Icon.Font.StringSize(string(ui.Icon.Rune)).X
		size.X += ui.font(g).StringSize("  ").X
	}
	return size
}

func (ui *Button) colors(g *GUI, hover bool) Colors {
	if ui.Disabled {
		return g.Disabled
	}
	cs := ui.Colorset
	if cs == nil {
		cs = &g.Regular
	}
	if hover {
		return cs.Hover
	}
	return cs.Normal
}

func (ui *Button) Layout(g *GUI, self *Kid, sizeAvail image.Point, force bool) {
	g.debugLayout(self)
	self.R = rect(ui.size(g))
}

func (ui *Button) Draw(g *GUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	g.debugDraw(self)

	text := ui.Text
	iconSize := image.ZP
	if ui.Icon.Font != nil {
		text = "  " + text
		iconSize = ui.Icon.Font.StringSize(string(ui.Icon.Rune))
	}
	textSize := ui.font(g).StringSize(text)
	r := rect(ui.size(g))

	hover := m.In(r)
	colors := ui.colors(g, hover)

	r = r.Add(orig)
	img.Draw(r.Inset(1), colors.Background, nil, image.ZP)
	drawRoundedBorder(img, r, colors.Border)

	hit := image.ZP
	if hover && !ui.Disabled && m.Buttons&Button1 == Button1 {
		hit = image.Pt(0, 1)
	}
	p := r.Min.Add(ui.space(g)).Add(hit)
	if ui.Icon.Font != nil {
		dy := (iconSize.Y - textSize.Y) / 2
		img.String(p.Sub(image.Pt(0, dy)), colors.Text, image.ZP, ui.Icon.Font, string(ui.Icon.Rune))
	}
	p.X += iconSize.X
	img.String(p, colors.Text, image.ZP, ui.font(g), text)
}

func (ui *Button) click(self *Kid, r *Result) {
	if ui.Click == nil {
		return
	}
	var e Event
	ui.Click(&e)
	propagateEvent(self, r, e)
}

func (ui *Button) Mouse(g *GUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	if ui.Disabled {
		return
	}
	rr := rect(ui.size(g))
	hover := m.In(rr)
	if hover != ui.m.In(rr) || ui.m.Buttons&Button1 != m.Buttons&Button1 {
		self.Draw = Dirty
	}
	if hover && ui.m.Buttons&Button1 == Button1 && m.Buttons&Button1 == 0 {
		r.Consumed = true
		ui.click(self, &r)
	}
	ui.m = m
	return
}

func (ui *Button) Key(g *GUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	if !ui.Disabled && (k == ' ' || k == '\n') {
		r.Consumed = true
		self.Draw = Dirty
		ui.click(self, &r)
	}
	return
}

func (ui *Button) FirstFocus(g *GUI, self *Kid) *image.Point {
	p := ui.space(g)
	return &p
}

func (ui *Button) Focus(g *GUI, self *Kid, o UI) *image.Point {
	if o != ui {
		return nil
	}
	return ui.FirstFocus(g, self)
}

func (ui *Button) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	return self.Mark(o, forLayout)
}

func (ui *Button) Print(self *Kid, indent int) {
	PrintUI("Button", self, indent)
}
