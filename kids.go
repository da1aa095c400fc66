package gui

import (
	"image"

	"9fans.net/go/draw"
)

// Kid holds a UI and its layout/draw state as managed by its parent UI.
type Kid struct {
	UI     UI              // UI this state is about.
	Name   string          // Optional name, as assigned by Container.Add; for lookups with Container.Get.
	Offset image.Point     // Position of the UI in the parent, for parents that place their kids absolutely (Container).
	R      image.Rectangle // Size and position within the parent, set by the parent during layout.
	Draw   State           // Whether UI or one of its children needs to be drawn.
	Layout State           // Whether UI or one of its children needs to be laid out.
}

// Mark sets the dirty state on this kid if o is its UI, and reports whether it was.
func (k *Kid) Mark(o UI, forLayout bool) (marked bool) {
	if k.UI != o {
		return false
	}
	if forLayout {
		k.Layout = Dirty
	} else {
		k.Draw = Dirty
	}
	return true
}

// NewKids turns UIs into Kids containing those UIs.
func NewKids(uis ...UI) []*Kid {
	kids := make([]*Kid, len(uis))
	for i, ui := range uis {
		kids[i] = &Kid{UI: ui}
	}
	return kids
}

// propagateEvent turns a callback Event into dirty state on self and a
// consumed flag on the handler Result.
func propagateEvent(self *Kid, r *Result, e Event) {
	if e.NeedLayout {
		self.Layout = Dirty
	}
	if e.NeedDraw {
		self.Draw = Dirty
	}
	r.Consumed = e.Consumed || r.Consumed
}

// KidsLayout is called by parent UIs before they lay out their children. If
// neither the parent nor any kid needs layout, or if only kids need it and
// they can be laid out in their existing rectangles, it does all work
// necessary and returns true. If the parent must do a full layout, it
// returns false.
func KidsLayout(g *GUI, self *Kid, kids []*Kid, force bool) (done bool) {
	if force {
		self.Layout = Clean
		self.Draw = Dirty
		return false
	}
	switch self.Layout {
	case Clean:
		return true
	case Dirty:
		self.Layout = Clean
		self.Draw = Dirty
		return false
	}
	for _, k := range kids {
		if k.Layout == Clean {
			continue
		}
		orig := k.R
		k.UI.Layout(g, k, orig.Size(), false)
		if k.R.Size() != orig.Size() {
			// kid no longer fits in its rect, parent must lay out all kids again
			self.Layout = Clean
			self.Draw = Dirty
			return false
		}
		k.R = orig
		k.Layout = Clean
		k.Draw = Dirty
		if self.Draw == Clean {
			self.Draw = DirtyKid
		}
	}
	self.Layout = Clean
	return true
}

// KidsDraw is called by parent UIs to draw their children: all of them when
// force is set or the parent itself is dirty, otherwise only the dirty ones,
// first restoring the background under them.
func KidsDraw(g *GUI, self *Kid, kids []*Kid, uiSize image.Point, bg, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	force = force || self.Draw == Dirty
	if bg == nil {
		bg = g.Background
	}
	if force {
		img.Draw(rect(uiSize).Add(orig), bg, nil, image.ZP)
	}
	for i, k := range kids {
		if !force && k.Draw == Clean {
			continue
		}
		if !force && k.Draw == Dirty {
			img.Draw(k.R.Add(orig), bg, nil, image.ZP)
		}
		if g.DebugKids {
			img.Draw(k.R.Add(orig), g.debugColors[i%len(g.debugColors)], nil, image.ZP)
		}
		mm := m
		mm.Point = mm.Point.Sub(k.R.Min)
		k.UI.Draw(g, k, img, orig.Add(k.R.Min), mm, force || k.Draw == Dirty)
		k.Draw = Clean
	}
	self.Draw = Clean
}

// KidsMouse delivers the mouse event to the kid whose rectangle contains it,
// with coordinates translated to that kid.
func KidsMouse(g *GUI, self *Kid, kids []*Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	for _, k := range kids {
		if origM.Point.In(k.R) {
			origM.Point = origM.Point.Sub(k.R.Min)
			m.Point = m.Point.Sub(k.R.Min)
			return k.UI.Mouse(g, k, m, origM, orig.Add(k.R.Min))
		}
	}
	return Result{}
}

// KidsKey delivers the key to the kid under the mouse. An unconsumed tab
// moves focus to the next kid with a first-focus point.
func KidsKey(g *GUI, self *Kid, kids []*Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	for i, kid := range kids {
		if m.Point.In(kid.R) {
			m.Point = m.Point.Sub(kid.R.Min)
			r = kid.UI.Key(g, kid, k, m, orig.Add(kid.R.Min))
			if !r.Consumed && k == '\t' {
				for next := i + 1; next < len(kids); next++ {
					kid := kids[next]
					first := kid.UI.FirstFocus(g, kid)
					if first != nil {
						p := first.Add(orig).Add(kid.R.Min)
						r.Warp = &p
						r.Consumed = true
						break
					}
				}
			}
			return r
		}
	}
	return Result{}
}

// KidsFirstFocus returns the first-focus point of the first kid that has one.
func KidsFirstFocus(g *GUI, self *Kid, kids []*Kid) (warp *image.Point) {
	if len(kids) == 0 {
		return nil
	}
	for _, k := range kids {
		first := k.UI.FirstFocus(g, k)
		if first != nil {
			p := first.Add(k.R.Min)
			return &p
		}
	}
	return nil
}

// KidsFocus returns the focus point for o if o is one of the kids or their
// descendents.
func KidsFocus(g *GUI, self *Kid, kids []*Kid, o UI) (warp *image.Point) {
	if len(kids) == 0 {
		return nil
	}
	for _, k := range kids {
		p := k.UI.Focus(g, k, o)
		if p != nil {
			pp := p.Add(k.R.Min)
			return &pp
		}
	}
	return nil
}

// KidsMark marks o dirty if it is self's UI or any of the kids or their
// descendents, leaving DirtyKid state on self for the path to it.
func KidsMark(self *Kid, kids []*Kid, o UI, forLayout bool) (marked bool) {
	if self.Mark(o, forLayout) {
		return true
	}
	for _, k := range kids {
		marked = k.UI.Mark(k, o, forLayout)
		if !marked {
			continue
		}
		if forLayout {
			if self.Layout == Clean {
				self.Layout = DirtyKid
			}
		} else {
			if self.Draw == Clean {
				self.Draw = DirtyKid
			}
		}
		return true
	}
	return false
}

func KidsPrint(kids []*Kid, indent int) {
	for _, k := range kids {
		k.UI.Print(k, indent)
	}
}
