package gui

import (
	"image"
	"testing"

	"9fans.net/go/draw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mouseAt(p image.Point, buttons int) draw.Mouse {
	return draw.Mouse{Point: p, Buttons: buttons}
}

func TestContainerNames(t *testing.T) {
	c := &Container{}
	a := &stubUI{size: pt(10)}
	b := &stubUI{size: pt(10)}
	inner := &Container{}
	d := &stubUI{size: pt(10)}

	c.Add("a", a)
	c.Add("b", b)
	c.Add("", inner)
	inner.Add("deep", d)

	assert.Equal(t, a, c.Get("a"))
	assert.Equal(t, b, c.Get("b"))
	assert.Equal(t, d, c.Get("deep"), "Get looks into nested containers")
	assert.Nil(t, c.Get("missing"))
	assert.Nil(t, c.Get(""), "empty names are not findable")

	assert.True(t, c.Remove(b))
	assert.False(t, c.Remove(b))
	assert.Nil(t, c.Get("b"))

	c.RemoveAll()
	assert.Empty(t, c.Kids)
}

func TestContainerOrder(t *testing.T) {
	c := &Container{}
	a := &stubUI{size: pt(10)}
	b := &stubUI{size: pt(10)}
	d := &stubUI{size: pt(10)}
	c.Add("a", a)
	c.Add("b", b)
	c.Add("d", d)

	order := func() []UI {
		var uis []UI
		for _, k := range c.Kids {
			uis = append(uis, k.UI)
		}
		return uis
	}

	require.Equal(t, []UI{a, b, d}, order())

	assert.True(t, c.MoveToFront(a))
	assert.Equal(t, []UI{b, d, a}, order())

	assert.True(t, c.MoveToBack(d))
	assert.Equal(t, []UI{d, b, a}, order())

	assert.False(t, c.MoveToFront(&stubUI{}))
	assert.False(t, c.MoveToBack(&stubUI{}))
}

func TestContainerHit(t *testing.T) {
	g := testGUI(t)
	c := &Container{}
	back := &stubUI{size: pt(100)}
	front := &stubUI{size: pt(100)}
	c.AddAt("back", back, image.ZP)
	c.AddAt("front", front, image.Pt(50, 50))

	self := &Kid{UI: c}
	c.Layout(g, self, image.Pt(200, 200), true)
	require.Equal(t, image.Rect(0, 0, 100, 100), c.Kids[0].R)
	require.Equal(t, image.Rect(50, 50, 150, 150), c.Kids[1].R)

	// overlap goes to the frontmost kid, coordinates translated
	r := c.Mouse(g, self, mouseAt(image.Pt(60, 60), 0), mouseAt(image.Pt(60, 60), 0), image.ZP)
	assert.Equal(t, UI(front), r.Hit)
	assert.Equal(t, 0, back.mouses)
	assert.Equal(t, image.Pt(10, 10), front.lastM.Point)

	// outside the front kid, the back one gets it
	r = c.Mouse(g, self, mouseAt(image.Pt(10, 10), 0), mouseAt(image.Pt(10, 10), 0), image.ZP)
	assert.Equal(t, UI(back), r.Hit)
	assert.Equal(t, 1, back.mouses)

	// outside all kids, nothing
	r = c.Mouse(g, self, mouseAt(image.Pt(190, 10), 0), mouseAt(image.Pt(190, 10), 0), image.ZP)
	assert.Nil(t, r.Hit)
}

func TestContainerHitFallthrough(t *testing.T) {
	g := testGUI(t)
	c := &Container{}
	back := &stubUI{size: pt(100)}
	hole := &holeUI{stubUI{size: pt(100)}}
	c.Add("back", back)
	c.Add("hole", hole)

	self := &Kid{UI: c}
	c.Layout(g, self, image.Pt(200, 200), true)

	// left half of the front widget does not hit, the event falls through
	r := c.Mouse(g, self, mouseAt(image.Pt(10, 10), 0), mouseAt(image.Pt(10, 10), 0), image.ZP)
	assert.Equal(t, UI(back), r.Hit)

	r = c.Mouse(g, self, mouseAt(image.Pt(80, 10), 0), mouseAt(image.Pt(80, 10), 0), image.ZP)
	assert.Equal(t, UI(hole), r.Hit)
}

func TestContainerKeyFocusNext(t *testing.T) {
	g := testGUI(t)
	c := &Container{}
	a := &stubUI{size: pt(50), focus: true}
	b := &stubUI{size: pt(50), focus: true}
	c.AddAt("a", a, image.ZP)
	c.AddAt("b", b, image.Pt(100, 0))

	self := &Kid{UI: c}
	c.Layout(g, self, image.Pt(200, 200), true)

	// b is frontmost; an unconsumed tab on it warps to a, the next kid in
	// front-to-back order
	r := c.Key(g, self, '\t', mouseAt(image.Pt(110, 10), 0), image.ZP)
	assert.True(t, r.Consumed)
	require.NotNil(t, r.Warp)
	assert.Equal(t, image.Pt(0, 0), *r.Warp)
	assert.Equal(t, []rune{'\t'}, b.keys)

	// a is the last in that order, tab on it is not consumed
	r = c.Key(g, self, '\t', mouseAt(image.Pt(10, 10), 0), image.ZP)
	assert.False(t, r.Consumed)
	assert.Nil(t, r.Warp)
	assert.Equal(t, []rune{'\t'}, a.keys)
}

func TestUncheckRadiobuttons(t *testing.T) {
	r1 := &Radiobutton{Selected: true}
	r2 := &Radiobutton{}
	r3 := &Radiobutton{Selected: true}

	inner := &Container{}
	inner.Add("r3", r3)
	box := NewBox(r2)
	c := &Container{}
	c.Add("r1", r1)
	c.Add("box", box)
	c.Add("inner", inner)

	c.UncheckRadiobuttons()
	assert.False(t, r1.Selected)
	assert.False(t, r2.Selected)
	assert.False(t, r3.Selected)
}
