package gui

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"9fans.net/go/draw"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// testGUI returns a GUI without a display connection, enough for layout and
// event dispatch of widgets that don't measure text.
func testGUI(t *testing.T) *GUI {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &GUI{
		Top: Kid{UI: &Container{}},
		Display: &draw.Display{
			DPI:         100,
			DefaultFont: &draw.Font{Height: 13},
		},
		Log: log,
	}
}

// testTextures returns a TextureManager that fakes the display upload,
// recording frees.
func testTextures(freed *[]*draw.Image) *TextureManager {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &TextureManager{
		Log:      log,
		textures: map[string]*Texture{},
		upload: func(rgba *image.RGBA) (*draw.Image, error) {
			return &draw.Image{R: rgba.Bounds()}, nil
		},
		free: func(i *draw.Image) {
			if freed != nil {
				*freed = append(*freed, i)
			}
		},
	}
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

// stubUI is a fixed-size UI recording the events it gets.
type stubUI struct {
	size     image.Point
	focus    bool // whether it accepts tab focus
	mouses   int
	keys     []rune
	lastM    draw.Mouse
	lastOrig image.Point
}

var _ UI = &stubUI{}

func (ui *stubUI) Layout(g *GUI, self *Kid, sizeAvail image.Point, force bool) {
	self.R = rect(ui.size)
}

func (ui *stubUI) Draw(g *GUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
}

func (ui *stubUI) Mouse(g *GUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	ui.mouses++
	ui.lastM = m
	ui.lastOrig = orig
	return Result{Hit: ui, Consumed: true}
}

func (ui *stubUI) Key(g *GUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	ui.keys = append(ui.keys, k)
	return Result{Hit: ui}
}

func (ui *stubUI) FirstFocus(g *GUI, self *Kid) *image.Point {
	if !ui.focus {
		return nil
	}
	return &image.ZP
}

func (ui *stubUI) Focus(g *GUI, self *Kid, o UI) *image.Point {
	if o != ui {
		return nil
	}
	return &image.ZP
}

func (ui *stubUI) Mark(self *Kid, o UI, forLayout bool) bool {
	return self.Mark(o, forLayout)
}

func (ui *stubUI) Print(self *Kid, indent int) {
	PrintUI("stub", self, indent)
}

// holeUI is a stubUI with a hole: the left half does not take mouse hits.
type holeUI struct {
	stubUI
}

var _ MouseHitter = &holeUI{}

func (ui *holeUI) MouseHit(g *GUI, self *Kid, p image.Point) bool {
	return p.X >= ui.size.X/2
}

func (ui *holeUI) Mouse(g *GUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	r = ui.stubUI.Mouse(g, self, m, origM, orig)
	r.Hit = ui
	return
}
