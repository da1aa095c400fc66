package gui

import (
	"fmt"
	"image"
	"io"
	"time"

	"9fans.net/go/draw"
	"github.com/sirupsen/logrus"
)

// GUI is the top-level object: essentially a window and all the UI state,
// owning the connection to the draw backend and the root of the widget tree.
type GUI struct {
	Inputs  chan Input
	Top     Kid           // root of the UI tree; NewGUI starts it out with an empty Container
	Call    chan func()   // functions sent here will go through GUI.Inputs and run by GUI.Input() in the main event loop. for code that changes UI state.
	Done    chan struct{} // closed when window is closed
	Display *draw.Display

	Log      *logrus.Logger  // default level warn; F1/F2 raise it to debug for input/timing logging
	Textures *TextureManager // texture cache shared by Picture widgets

	Theme       Theme      // colors currently applied, see SetTheme
	DefaultFont *draw.Font // used when a widget has no font of its own; nil means the display default font

	// colors
	Disabled,
	Inverse,
	Selection,
	SelectionHover,
	Placeholder,
	Striped Colors

	// colors including hover-variants
	Regular,
	Primary,
	Secondary,
	Success,
	Danger Colorset

	BackgroundColor draw.Color
	Background      *draw.Image

	DebugDraw   int  // if 1, UIs print each draw they do, if 2, UIs print all calls to their Draw function. Cycle through 0-2 with F7
	DebugLayout int  // if 1, UIs print each Layout they do, if 2, UIs print all calls to their Layout function. Cycle through 0-2 with F8
	DebugKids   bool // whether to print distinct backgrounds in Kids* functions
	debugColors []*draw.Image

	stop        chan struct{}
	mousectl    *draw.Mousectl
	keyctl      *draw.Keyboardctl
	mouse       draw.Mouse
	origMouse   draw.Mouse
	lastMouseUI UI
	logInputs   bool
	logTiming   bool
}

func check(log *logrus.Logger, err error, msg string) {
	if err != nil {
		log.Errorf("gui: %s: %s", msg, err)
		panic(err)
	}
}

// NewGUI opens a window with the given name and dimensions (e.g. "800x600")
// and returns a GUI ready for use: empty root Container, default theme,
// texture manager attached. The caller runs the main loop, reading from
// Inputs and passing the events to Input.
func NewGUI(name, dim string) (*GUI, error) {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	errch := make(chan error, 1)
	display, err := draw.Init(errch, "", name, dim)
	if err != nil {
		return nil, fmt.Errorf("draw init: %w", err)
	}

	g := &GUI{
		mousectl: display.InitMouse(),
		keyctl:   display.InitKeyboard(),
		stop:     make(chan struct{}, 1),
		Inputs:   make(chan Input, 1),
		Call:     make(chan func(), 1),
		Done:     make(chan struct{}, 1),

		Display:  display,
		Log:      log,
		Textures: NewTextureManager(display),

		Top: Kid{UI: &Container{}},
	}
	g.SetTheme(DefaultTheme())

	makeColor := func(v draw.Color) *draw.Image {
		c, err := display.AllocImage(image.Rect(0, 0, 1, 1), draw.ARGB32, true, v)
		check(log, err, "allocimage")
		return c
	}
	g.debugColors = []*draw.Image{
		makeColor(0x40000040),
		makeColor(0x00400040),
		makeColor(0x00004040),
	}

	go func() {
		for {
			select {
			case m := <-g.mousectl.C:
				g.Inputs <- Input{Type: InputMouse, Mouse: m}
			case k := <-g.keyctl.C:
				g.Inputs <- Input{Type: InputKey, Key: k}
			case <-g.mousectl.Resize:
				g.Inputs <- Input{Type: InputResize}
			case fn := <-g.Call:
				g.Inputs <- Input{Type: InputFunc, Func: fn}
			case <-g.stop:
				return
			case e := <-errch:
				if e == io.EOF {
					// backend disappeared, typically because the window was closed (either by user, or by us)
					close(g.Done)
					return
				}
				g.Inputs <- Input{Type: InputError, Error: e}
			}
		}
	}()

	return g, nil
}

// Render calls Layout followed by Draw.
func (g *GUI) Render() {
	g.Layout()
	g.Draw()
}

// Layout the entire UI tree, as far as necessary.
func (g *GUI) Layout() {
	if g.Top.Layout == Clean {
		return
	}
	var t0 time.Time
	if g.logTiming {
		t0 = time.Now()
	}
	g.Top.UI.Layout(g, &g.Top, g.Display.ScreenImage.R.Size(), g.Top.Layout == Dirty)
	g.Top.Layout = Clean
	if g.logTiming {
		g.Log.Infof("gui: time layout: %d µs", time.Since(t0)/time.Microsecond)
	}
}

// Draw the dirty parts of the UI tree and flush the display.
func (g *GUI) Draw() {
	if g.Top.Draw == Clean {
		return
	}
	var t0, t1 time.Time
	if g.logTiming {
		t0 = time.Now()
	}
	if g.Top.Draw == Dirty {
		g.Display.ScreenImage.Draw(g.Display.ScreenImage.R, g.Background, nil, image.ZP)
	}
	g.Top.UI.Draw(g, &g.Top, g.Display.ScreenImage, image.ZP, g.mouse, g.Top.Draw == Dirty)
	g.Top.Draw = Clean
	if g.logTiming {
		t1 = time.Now()
	}
	g.Display.Flush()
	if g.logTiming {
		t2 := time.Now()
		g.Log.Infof("gui: time draw: draw %d µs flush %d µs", t1.Sub(t0)/time.Microsecond, t2.Sub(t1)/time.Microsecond)
	}
}

func (g *GUI) apply(r Result) {
	if r.Warp != nil {
		err := g.Display.MoveTo(*r.Warp)
		if err != nil {
			g.Log.Warnf("gui: warp to %v: %s", r.Warp, err)
		} else {
			g.mouse.Point = *r.Warp
			g.origMouse.Point = *r.Warp
			r = g.Top.UI.Mouse(g, &g.Top, g.mouse, g.origMouse, image.ZP)
			g.lastMouseUI = r.Hit
		}
	} else {
		if r.Hit != g.lastMouseUI {
			g.MarkDraw(r.Hit)
			g.MarkDraw(g.lastMouseUI)
		}
		g.lastMouseUI = r.Hit
	}

	g.Render()
}

// Mouse delivers a mouse event to the UI tree, as read from the Inputs channel.
func (g *GUI) Mouse(m draw.Mouse) {
	if g.logInputs {
		g.Log.Debugf("gui: mouse %v, %b", m, m.Buttons)
	}
	if m.Buttons == 0 || g.origMouse.Buttons == 0 {
		g.origMouse = m
	}
	g.mouse = m
	r := g.Top.UI.Mouse(g, &g.Top, m, g.origMouse, image.ZP)
	g.apply(r)
}

// Resize reattaches to the resized screen and lays out and draws everything.
func (g *GUI) Resize() {
	if g.logInputs {
		g.Log.Debugf("gui: resize")
	}
	check(g.Log, g.Display.Attach(draw.Refmesg), "attach after resize")
	g.Top.Layout = Dirty
	g.Top.Draw = Dirty
	g.Render()
}

// Key delivers a key event to the UI tree. The F-keys toggle debug facilities.
// An unconsumed tab moves focus to the next widget, cmd-w closes the window.
func (g *GUI) Key(k rune) {
	switch k {
	case draw.KeyFn + 1:
		g.logInputs = !g.logInputs
		g.adjustLogLevel()
		g.Log.Warnf("gui: logInputs now %v", g.logInputs)
		return
	case draw.KeyFn + 2:
		g.logTiming = !g.logTiming
		g.adjustLogLevel()
		g.Log.Warnf("gui: logTiming now %v", g.logTiming)
		return
	case draw.KeyFn + 3:
		g.Top.UI.Print(&g.Top, 0)
		return
	case draw.KeyFn + 4:
		g.Display.SetDebug(true)
		g.Log.Warnf("gui: drawdebug now on")
		return
	case draw.KeyFn + 5:
		g.DebugKids = !g.DebugKids
		g.Log.Warnf("gui: debugKids now %v", g.DebugKids)
		return
	case draw.KeyFn + 6:
		g.Log.Warnf("gui: rendering entire ui")
		g.Top.Layout = Dirty
		g.Top.Draw = Dirty
		g.Render()
		return
	case draw.KeyFn + 7:
		g.DebugDraw = (g.DebugDraw + 1) % 3
		g.Log.Warnf("gui: DebugDraw now %d", g.DebugDraw)
		return
	case draw.KeyFn + 8:
		g.DebugLayout = (g.DebugLayout + 1) % 3
		g.Log.Warnf("gui: DebugLayout now %d", g.DebugLayout)
		return
	}
	if g.logInputs {
		g.Log.Debugf("gui: key %c, %x", k, k)
	}
	r := g.Top.UI.Key(g, &g.Top, k, g.mouse, image.ZP)
	if !r.Consumed {
		switch k {
		case '\t':
			first := g.Top.UI.FirstFocus(g, &g.Top)
			if first != nil {
				r.Warp = first
				r.Consumed = true
			}
		case draw.KeyCmd + 'w':
			g.Close()
			g.Done <- struct{}{}
			return
		}
	}
	g.apply(r)
}

func (g *GUI) adjustLogLevel() {
	if g.logInputs || g.logTiming {
		g.Log.SetLevel(logrus.DebugLevel)
	} else {
		g.Log.SetLevel(logrus.WarnLevel)
	}
}

// Focus moves the mouse to the focus point of ui, if it is reachable in the
// UI tree.
func (g *GUI) Focus(ui UI) {
	p := g.Top.UI.Focus(g, &g.Top, ui)
	if p == nil {
		return
	}
	g.warp(*p)
}

func (g *GUI) warp(p image.Point) {
	err := g.Display.MoveTo(p)
	if err != nil {
		g.Log.Warnf("gui: move mouse to %v: %v", p, err)
		return
	}
	g.mouse.Point = p
	g.origMouse.Point = p
	r := g.Top.UI.Mouse(g, &g.Top, g.mouse, g.origMouse, image.ZP)
	g.apply(r)
}

func (g *GUI) debugLayout(self *Kid) {
	if g.DebugLayout > 0 {
		g.Log.Warnf("gui: Layout %v layout=%d draw=%d", self.R, self.Layout, self.Draw)
	}
}

func (g *GUI) debugDraw(self *Kid) {
	if g.DebugDraw > 0 {
		g.Log.Warnf("gui: Draw %v layout=%d draw=%d", self.R, self.Layout, self.Draw)
	}
}

// PrintUI is used by UI implementations in their Print.
func PrintUI(s string, self *Kid, indent int) {
	indentStr := ""
	if indent > 0 {
		indentStr = fmt.Sprintf("%*s", indent*2, " ")
	}
	logrus.StandardLogger().Printf("gui: %s%s r %v layout=%d draw=%d", indentStr, s, self.R, self.Layout, self.Draw)
}

func scalePt(d *draw.Display, p image.Point) image.Point {
	return p.Mul(d.DPI / 100)
}

// Scale turns a low-DPI pixel count into the equivalent for the current screen.
func (g *GUI) Scale(n int) int {
	return (g.Display.DPI / 100) * n
}

// Input processes a single input event, as read from the Inputs channel.
// All widget callbacks run from here, so code in them can change UI state
// without locking. Layout and draw happen afterwards as necessary.
func (g *GUI) Input(e Input) {
	switch e.Type {
	case InputMouse:
		g.Mouse(e.Mouse)
	case InputKey:
		g.Key(e.Key)
	case InputResize:
		g.Resize()
	case InputFunc:
		e.Func()
		g.Render()
	case InputError:
		g.Log.Fatalf("gui: error from backend: %s", e.Error)
	}
}

// MarkLayout marks ui as needing a layout. If ui is nil the entire tree is
// marked.
func (g *GUI) MarkLayout(ui UI) {
	if ui == nil {
		g.Top.Layout = Dirty
		return
	}
	if !g.Top.UI.Mark(&g.Top, ui, true) {
		g.Log.Warnf("gui: MarkLayout: %T not found", ui)
	}
}

// MarkDraw marks ui as needing to be drawn. If ui is nil the entire tree is
// marked.
func (g *GUI) MarkDraw(ui UI) {
	if ui == nil {
		g.Top.Draw = Dirty
		return
	}
	if !g.Top.UI.Mark(&g.Top, ui, false) {
		g.Log.Warnf("gui: MarkDraw: %T not found", ui)
	}
}

// Close closes the window and stops the input goroutine.
func (g *GUI) Close() {
	g.stop <- struct{}{}
	g.Display.Close()
}

// WriteSnarf writes the snarf buffer (clipboard).
func (g *GUI) WriteSnarf(buf []byte) {
	err := g.Display.WriteSnarf(buf)
	if err != nil {
		g.Log.Warnf("gui: writesnarf: %s", err)
	}
}

// ReadSnarf reads the snarf buffer (clipboard).
func (g *GUI) ReadSnarf() (buf []byte, success bool) {
	buf = make([]byte, 128)
	have, total, err := g.Display.ReadSnarf(buf)
	if err != nil {
		g.Log.Warnf("gui: readsnarf: %s", err)
		return nil, false
	}
	if have >= total {
		return buf[:have], true
	}
	buf = make([]byte, total)
	have, _, err = g.Display.ReadSnarf(buf)
	if err != nil {
		g.Log.Warnf("gui: readsnarf: %s", err)
		return nil, false
	}
	return buf[:have], true
}

func (g *GUI) ScaleSpace(s Space) Space {
	return Space{
		g.Scale(s.Top),
		g.Scale(s.Right),
		g.Scale(s.Bottom),
		g.Scale(s.Left),
	}
}

// Font returns font if non-nil, the GUI default font otherwise.
func (g *GUI) Font(font *draw.Font) *draw.Font {
	if font != nil {
		return font
	}
	if g.DefaultFont != nil {
		return g.DefaultFont
	}
	return g.Display.DefaultFont
}
