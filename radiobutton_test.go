package gui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadiobuttonGroup(t *testing.T) {
	g := testGUI(t)
	var got []interface{}
	mk := func(v interface{}) *Radiobutton {
		return &Radiobutton{
			Value: v,
			Changed: func(v interface{}, e *Event) {
				got = append(got, v)
			},
		}
	}
	a := mk("a")
	b := mk("b")
	c := mk("c")
	group := RadiobuttonGroup{a, b, c}
	for _, ui := range group {
		ui.Group = group
	}

	assert.Nil(t, group.Selected())

	in := image.Pt(5, 5)
	selfB := &Kid{UI: b}
	b.Mouse(g, selfB, mouseAt(in, Button1), mouseAt(in, Button1), image.ZP)
	r := b.Mouse(g, selfB, mouseAt(in, 0), mouseAt(in, Button1), image.ZP)
	assert.True(t, r.Consumed)
	assert.True(t, b.Selected)
	assert.Equal(t, b, group.Selected())
	assert.Equal(t, []interface{}{"b"}, got, "only the newly selected button reports a change")

	// selecting another deselects b
	selfC := &Kid{UI: c}
	c.Key(g, selfC, ' ', mouseAt(in, 0), image.ZP)
	assert.True(t, c.Selected)
	assert.False(t, b.Selected)
	assert.Equal(t, []interface{}{"b", "c"}, got)

	// clicking the selected button again is a no-op
	c.Mouse(g, selfC, mouseAt(in, Button1), mouseAt(in, Button1), image.ZP)
	r = c.Mouse(g, selfC, mouseAt(in, 0), mouseAt(in, Button1), image.ZP)
	assert.False(t, r.Consumed)
	assert.Equal(t, []interface{}{"b", "c"}, got)
}

func TestRadiobuttonDeselectRedraw(t *testing.T) {
	g := testGUI(t)
	a := &Radiobutton{Selected: true}
	b := &Radiobutton{}
	group := RadiobuttonGroup{a, b}
	a.Group = group
	b.Group = group

	c := g.Root()
	c.AddAt("a", a, image.ZP)
	c.AddAt("b", b, image.Pt(100, 0))
	c.Layout(g, &g.Top, image.Pt(200, 200), true)
	g.Top.Layout = Clean
	g.Top.Draw = Clean
	for _, k := range c.Kids {
		k.Layout = Clean
		k.Draw = Clean
	}

	// click-select b; the deselected a needs a redraw too
	in := image.Pt(105, 5)
	c.Mouse(g, &g.Top, mouseAt(in, Button1), mouseAt(in, Button1), image.ZP)
	c.Mouse(g, &g.Top, mouseAt(in, 0), mouseAt(in, Button1), image.ZP)
	assert.True(t, b.Selected)
	assert.False(t, a.Selected)
	assert.Equal(t, Dirty, c.Kids[0].Draw)
	assert.Equal(t, DirtyKid, g.Top.Draw)
}
