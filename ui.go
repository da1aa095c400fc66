package gui

import (
	"image"

	"9fans.net/go/draw"
)

const (
	BorderSize = 1 // regardless of lowDPI/hiDPI
)

const (
	Button1 = 1 << iota
	Button2
	Button3
	Button4
	Button5
)

type Halign int

const (
	HalignLeft = Halign(iota)
	HalignMiddle
	HalignRight
)

type Valign int

const (
	ValignMiddle = Valign(iota)
	ValignTop
	ValignBottom
)

// Event is returned by widget callbacks, telling the GUI what needs to happen
// after the callback changed UI state.
type Event struct {
	Consumed   bool // whether event was consumed, and should not be further handled by upper UI's
	NeedLayout bool // whether UI now needs a layout
	NeedDraw   bool // whether UI now needs a draw
}

// Result is returned by the mouse and key handlers of a UI.
type Result struct {
	Hit      UI           // the UI where the event ended up
	Consumed bool         // whether event was consumed, and should not be further handled by upper UI's
	Warp     *image.Point // if set, mouse will warp to location
}

// Colors for drawing text in a box.
type Colors struct {
	Text,
	Background,
	Border *draw.Image
}

type Colorset struct {
	Normal, Hover Colors
}

type InputType byte

const (
	InputMouse = InputType(iota)
	InputKey
	InputFunc
	InputResize
	InputError
)

// Input is a single input event, as coming in on the GUI Inputs channel.
type Input struct {
	Type  InputType
	Mouse draw.Mouse
	Key   rune
	Func  func()
	Error error
}

// State of layout/draw of a Kid.
type State byte

const (
	Dirty    = State(iota) // UI itself needs layout/draw; kids will also get a layout/draw call, with force set.
	DirtyKid               // UI itself does not need layout/draw, but one of its children does, so pass the call on.
	Clean                  // UI does not need layout/draw.

	// order is important, Clean is highest and means least amount of work
)

// UI is a widget in the UI hierarchy: Button, Checkbox, Picture, Container, etc.
type UI interface {
	// Layout lays out this UI in at most sizeAvail, storing the resulting
	// rectangle in self.R. Layout must be done again if force is set,
	// otherwise only if self or a child needs it.
	Layout(g *GUI, self *Kid, sizeAvail image.Point, force bool)

	// Draw this UI on img, with orig the origin of this UI in img
	// coordinates. Draw must be done again if force is set, otherwise only
	// if self or a child needs it.
	Draw(g *GUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool)

	// Mouse tells this UI about mouse movement or button changes.
	// Coordinates in m and origM are relative to this UI. OrigM is the mouse
	// of the last change in button state.
	Mouse(g *GUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result)

	// Key tells this UI that key k was typed, with the mouse at m, relative
	// to this UI.
	Key(g *GUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result)

	// FirstFocus returns the top-left corner where the focus should go next
	// when "tab" is hit, if anything.
	FirstFocus(g *GUI, self *Kid) (warp *image.Point)

	// Focus returns the focus-point for o, if o is this UI or a descendent.
	Focus(g *GUI, self *Kid, o UI) (warp *image.Point)

	// Mark looks for o in this UI and its children, marking it dirty for
	// layout or draw, leaving DirtyKid state on the path to it.
	Mark(self *Kid, o UI, forLayout bool) (marked bool)

	// Print a line about this UI, prefixed by indent spaces, followed by a
	// Print on each child.
	Print(self *Kid, indent int)
}
