package gui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckboxMouse(t *testing.T) {
	g := testGUI(t)
	var changes int
	ui := &Checkbox{Changed: func(e *Event) { changes++; e.NeedDraw = true }}
	self := &Kid{UI: ui, Layout: Clean, Draw: Clean}
	ui.Layout(g, self, image.Pt(100, 100), true)

	in := image.Pt(5, 5)

	// press, then release: toggles
	r := ui.Mouse(g, self, mouseAt(in, Button1), mouseAt(in, Button1), image.ZP)
	assert.False(t, r.Consumed)
	assert.Equal(t, Dirty, self.Draw)

	r = ui.Mouse(g, self, mouseAt(in, 0), mouseAt(in, Button1), image.ZP)
	assert.True(t, r.Consumed)
	assert.True(t, ui.Checked)
	assert.Equal(t, 1, changes)

	// again: toggles back
	ui.Mouse(g, self, mouseAt(in, Button1), mouseAt(in, Button1), image.ZP)
	ui.Mouse(g, self, mouseAt(in, 0), mouseAt(in, Button1), image.ZP)
	assert.False(t, ui.Checked)
	assert.Equal(t, 2, changes)
}

func TestCheckboxKey(t *testing.T) {
	g := testGUI(t)
	var changes int
	ui := &Checkbox{Changed: func(e *Event) { changes++ }}
	self := &Kid{UI: ui, Layout: Clean, Draw: Clean}

	r := ui.Key(g, self, ' ', mouseAt(image.ZP, 0), image.ZP)
	assert.True(t, r.Consumed)
	assert.True(t, ui.Checked)
	assert.Equal(t, 1, changes)
	assert.Equal(t, Dirty, self.Draw)

	r = ui.Key(g, self, 'x', mouseAt(image.ZP, 0), image.ZP)
	assert.False(t, r.Consumed)
	assert.True(t, ui.Checked)
}

func TestCheckboxDisabled(t *testing.T) {
	g := testGUI(t)
	ui := &Checkbox{Disabled: true, Changed: func(e *Event) { t.Fatal("changed on disabled checkbox") }}
	self := &Kid{UI: ui, Layout: Clean, Draw: Clean}

	in := image.Pt(5, 5)
	ui.Mouse(g, self, mouseAt(in, Button1), mouseAt(in, Button1), image.ZP)
	ui.Mouse(g, self, mouseAt(in, 0), mouseAt(in, Button1), image.ZP)
	ui.Key(g, self, ' ', mouseAt(image.ZP, 0), image.ZP)
	assert.False(t, ui.Checked)
}
