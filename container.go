package gui

import (
	"image"

	"9fans.net/go/draw"
)

// MouseHitter is implemented by UIs whose mouse hit area is smaller than
// their rectangle, like Picture with its transparent pixels. Containers skip
// such a UI when p (relative to the UI) is not on it, passing the event to
// the widget behind it.
type MouseHitter interface {
	MouseHit(g *GUI, self *Kid, p image.Point) bool
}

// Container owns an ordered list of named widgets, each at a fixed offset.
// The first kid is backmost: kids are drawn in order and mouse and key
// events go to the frontmost kid under the mouse. A GUI starts out with an
// empty Container at the top of its UI tree, with the Container operations
// mirrored on GUI.
//
// Mutating operations (Add, Remove, move to front/back) do not mark the
// container dirty, callers do that with MarkLayout or MarkDraw; the GUI
// mirrors take care of it.
type Container struct {
	Kids       []*Kid      // Run through NewKids, or built up with Add.
	Background *draw.Image `json:"-"` // Background for this container, instead of the default.

	size image.Point
}

var _ UI = &Container{}

// Add appends ui at the front (drawn last) under the given name, returning
// its new Kid. Empty names are allowed and not unique.
func (ui *Container) Add(name string, u UI) *Kid {
	return ui.AddAt(name, u, image.ZP)
}

// AddAt is Add with an offset within the container, in lowDPI pixels.
func (ui *Container) AddAt(name string, u UI, offset image.Point) *Kid {
	k := &Kid{UI: u, Name: name, Offset: offset, Layout: Dirty, Draw: Dirty}
	ui.Kids = append(ui.Kids, k)
	return k
}

// Get returns the named widget, also looking inside nested containers.
// Nil if not found; the first added wins for duplicate names.
func (ui *Container) Get(name string) UI {
	for _, k := range ui.Kids {
		if k.Name == name && name != "" {
			return k.UI
		}
		if c, ok := k.UI.(*Container); ok {
			if u := c.Get(name); u != nil {
				return u
			}
		}
	}
	return nil
}

func (ui *Container) indexOf(o UI) int {
	for i, k := range ui.Kids {
		if k.UI == o {
			return i
		}
	}
	return -1
}

// Remove removes o from the container, reporting whether it was present.
func (ui *Container) Remove(o UI) bool {
	i := ui.indexOf(o)
	if i < 0 {
		return false
	}
	ui.Kids = append(ui.Kids[:i], ui.Kids[i+1:]...)
	return true
}

// RemoveAll removes all kids.
func (ui *Container) RemoveAll() {
	ui.Kids = nil
}

// MoveToFront makes o the frontmost widget, reporting whether it was present.
func (ui *Container) MoveToFront(o UI) bool {
	i := ui.indexOf(o)
	if i < 0 {
		return false
	}
	k := ui.Kids[i]
	ui.Kids = append(append(ui.Kids[:i], ui.Kids[i+1:]...), k)
	return true
}

// MoveToBack makes o the backmost widget, reporting whether it was present.
func (ui *Container) MoveToBack(o UI) bool {
	i := ui.indexOf(o)
	if i < 0 {
		return false
	}
	k := ui.Kids[i]
	copy(ui.Kids[1:i+1], ui.Kids[:i])
	ui.Kids[0] = k
	return true
}

// UncheckRadiobuttons deselects every radiobutton in the container and the
// containers and boxes below it.
func (ui *Container) UncheckRadiobuttons() {
	for _, k := range ui.Kids {
		uncheckRadiobuttons(k.UI)
	}
}

func uncheckRadiobuttons(u UI) {
	switch v := u.(type) {
	case *Radiobutton:
		v.Selected = false
	case *Container:
		v.UncheckRadiobuttons()
	case *Box:
		for _, k := range v.Kids {
			uncheckRadiobuttons(k.UI)
		}
	case *Middle:
		if v.Kid != nil {
			uncheckRadiobuttons(v.Kid.UI)
		}
	}
}

// frontToBack returns the kids in event order, frontmost first.
func (ui *Container) frontToBack() []*Kid {
	n := len(ui.Kids)
	kids := make([]*Kid, n)
	for i, k := range ui.Kids {
		kids[n-1-i] = k
	}
	return kids
}

// hit returns the frontmost kid at p (container coordinates), honoring
// MouseHitter, and its index in event order.
func (ui *Container) hit(g *GUI, p image.Point) (*Kid, int) {
	for i, k := range ui.frontToBack() {
		if !p.In(k.R) {
			continue
		}
		if h, ok := k.UI.(MouseHitter); ok && !h.MouseHit(g, k, p.Sub(k.R.Min)) {
			continue
		}
		return k, i
	}
	return nil, -1
}

func (ui *Container) Layout(g *GUI, self *Kid, sizeAvail image.Point, force bool) {
	g.debugLayout(self)
	if KidsLayout(g, self, ui.Kids, force) {
		return
	}

	for _, k := range ui.Kids {
		offset := scalePt(g.Display, k.Offset)
		k.UI.Layout(g, k, sizeAvail.Sub(offset), true)
		k.R = k.R.Add(offset)
	}
	ui.size = sizeAvail
	self.R = rect(sizeAvail)
}

func (ui *Container) Draw(g *GUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	g.debugDraw(self)
	KidsDraw(g, self, ui.Kids, ui.size, ui.Background, img, orig, m, force)
}

func (ui *Container) Mouse(g *GUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	k, _ := ui.hit(g, origM.Point)
	if k == nil {
		return Result{}
	}
	origM.Point = origM.Point.Sub(k.R.Min)
	m.Point = m.Point.Sub(k.R.Min)
	return k.UI.Mouse(g, k, m, origM, orig.Add(k.R.Min))
}

func (ui *Container) Key(g *GUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	kids := ui.frontToBack()
	kid, i := ui.hit(g, m.Point)
	if kid == nil {
		return Result{}
	}
	mm := m
	mm.Point = mm.Point.Sub(kid.R.Min)
	r = kid.UI.Key(g, kid, k, mm, orig.Add(kid.R.Min))
	if !r.Consumed && k == '\t' {
		for next := i + 1; next < len(kids); next++ {
			nk := kids[next]
			first := nk.UI.FirstFocus(g, nk)
			if first != nil {
				p := first.Add(orig).Add(nk.R.Min)
				r.Warp = &p
				r.Consumed = true
				break
			}
		}
	}
	return
}

func (ui *Container) FirstFocus(g *GUI, self *Kid) *image.Point {
	return KidsFirstFocus(g, self, ui.frontToBack())
}

func (ui *Container) Focus(g *GUI, self *Kid, o UI) *image.Point {
	return KidsFocus(g, self, ui.Kids, o)
}

func (ui *Container) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	return KidsMark(self, ui.Kids, o, forLayout)
}

func (ui *Container) Print(self *Kid, indent int) {
	PrintUI("Container", self, indent)
	KidsPrint(ui.Kids, indent+1)
}

// Root returns the root Container the GUI started out with, or nil if Top.UI
// was replaced by another UI.
func (g *GUI) Root() *Container {
	c, _ := g.Top.UI.(*Container)
	return c
}

// Add adds ui at the front of the root container under the given name.
func (g *GUI) Add(name string, ui UI) {
	c := g.Root()
	if c == nil {
		g.Log.Warnf("gui: Add: top UI is not a Container")
		return
	}
	c.Add(name, ui)
	g.MarkLayout(c)
}

// AddAt is Add with an offset within the container, in lowDPI pixels.
func (g *GUI) AddAt(name string, ui UI, offset image.Point) {
	c := g.Root()
	if c == nil {
		g.Log.Warnf("gui: AddAt: top UI is not a Container")
		return
	}
	c.AddAt(name, ui, offset)
	g.MarkLayout(c)
}

// Get returns the named widget from the root container, nil if not found.
func (g *GUI) Get(name string) UI {
	c := g.Root()
	if c == nil {
		return nil
	}
	return c.Get(name)
}

// Remove removes ui from the root container.
func (g *GUI) Remove(ui UI) bool {
	c := g.Root()
	if c == nil || !c.Remove(ui) {
		return false
	}
	g.MarkLayout(c)
	return true
}

// RemoveAll empties the root container.
func (g *GUI) RemoveAll() {
	c := g.Root()
	if c == nil {
		return
	}
	c.RemoveAll()
	g.MarkLayout(c)
}

// MoveToFront makes ui the frontmost widget in the root container.
func (g *GUI) MoveToFront(ui UI) bool {
	c := g.Root()
	if c == nil || !c.MoveToFront(ui) {
		return false
	}
	g.MarkDraw(c)
	return true
}

// MoveToBack makes ui the backmost widget in the root container.
func (g *GUI) MoveToBack(ui UI) bool {
	c := g.Root()
	if c == nil || !c.MoveToBack(ui) {
		return false
	}
	g.MarkDraw(c)
	return true
}

// UncheckRadiobuttons deselects all radiobuttons in the root container.
func (g *GUI) UncheckRadiobuttons() {
	c := g.Root()
	if c == nil {
		return
	}
	c.UncheckRadiobuttons()
	g.MarkDraw(c)
}

// FocusNext warps the mouse to the next widget in the root container that
// accepts focus, in add order, starting after the widget currently under
// the mouse and wrapping around.
func (g *GUI) FocusNext() {
	g.focusShift(1)
}

// FocusPrev warps the mouse to the previous focus-accepting widget in the
// root container.
func (g *GUI) FocusPrev() {
	g.focusShift(-1)
}

func (g *GUI) focusShift(delta int) {
	c := g.Root()
	if c == nil {
		return
	}
	n := len(c.Kids)
	if n == 0 {
		return
	}
	cur := -1
	for i, k := range c.Kids {
		if g.mouse.Point.In(k.R) {
			cur = i
			break
		}
	}
	for step := 1; step <= n; step++ {
		i := ((cur+delta*step)%n + n) % n
		k := c.Kids[i]
		if first := k.UI.FirstFocus(g, k); first != nil {
			g.warp(first.Add(k.R.Min))
			return
		}
	}
}
