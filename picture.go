package gui

import (
	"image"

	"9fans.net/go/draw"
	xdraw "golang.org/x/image/draw"
)

// Picture is a widget showing an image file, loaded through the GUI's
// TextureManager so pictures showing the same file share the texture.
// Fully transparent pixels are not part of the mouse hit area: in a
// Container, clicks on them fall through to widgets behind the picture.
type Picture struct {
	Smooth bool           // Scale with a bilinear filter instead of nearest-neighbour when drawn at a non-natural size.
	Click  func(e *Event) `json:"-"` // Called on button1 click on a non-transparent pixel.

	texture *Texture
	tm      *TextureManager
	size    image.Point // non-zero after SetSize, overriding the natural texture size
	alpha   uint8       // 255 is opaque, set by Load
	scaled  *draw.Image // owned display image, non-nil when drawn scaled or translucent
	m       draw.Mouse
}

var _ UI = &Picture{}
var _ MouseHitter = &Picture{}

// Load loads the image file at path through the GUI's texture manager,
// releasing any texture the picture held before. The picture takes its
// natural size from the texture. Mark the picture for layout afterwards.
func (ui *Picture) Load(g *GUI, path string) error {
	t, err := g.Textures.Load(path)
	if err != nil {
		return err
	}
	ui.Unload()
	ui.tm = g.Textures
	ui.texture = t
	ui.alpha = 255
	ui.size = image.ZP
	return nil
}

// Unload releases the texture. The picture draws as empty afterwards.
func (ui *Picture) Unload() {
	ui.dropScaled()
	if ui.texture != nil {
		ui.tm.Release(ui.texture)
		ui.texture = nil
	}
}

// Clone returns a new picture sharing this picture's texture, bumping its
// reference count.
func (ui *Picture) Clone() *Picture {
	n := &Picture{
		Smooth: ui.Smooth,
		Click:  ui.Click,
		tm:     ui.tm,
		size:   ui.size,
		alpha:  ui.alpha,
	}
	if ui.texture != nil {
		n.texture = ui.tm.Copy(ui.texture)
	}
	return n
}

// Path returns the path the current texture was loaded from, or empty.
func (ui *Picture) Path() string {
	if ui.texture == nil {
		return ""
	}
	return ui.texture.Path
}

// SetSize makes the picture draw at size instead of the natural texture
// size. A zero size restores the natural size.
func (ui *Picture) SetSize(size image.Point) {
	ui.size = size
	ui.dropScaled()
}

// SetAlpha sets the opacity of the picture, 255 for fully opaque.
func (ui *Picture) SetAlpha(a uint8) {
	ui.alpha = a
	ui.dropScaled()
}

// Size returns the size the picture is drawn at.
func (ui *Picture) Size() image.Point {
	if ui.texture == nil {
		return image.ZP
	}
	if ui.size != image.ZP {
		return ui.size
	}
	return ui.texture.Size()
}

func (ui *Picture) dropScaled() {
	if ui.scaled != nil {
		ui.tm.free(ui.scaled)
		ui.scaled = nil
	}
}

// render returns the display image to draw, building the scaled/translucent
// variant if needed.
func (ui *Picture) render(g *GUI) *draw.Image {
	size := ui.Size()
	natural := size == ui.texture.Size() && ui.alpha == 255
	if natural {
		return ui.texture.Image
	}
	if ui.scaled != nil {
		return ui.scaled
	}

	src := ui.texture.RGBA()
	dst := image.NewRGBA(rect(size))
	var scaler xdraw.Scaler = xdraw.NearestNeighbor
	if ui.Smooth {
		scaler = xdraw.ApproxBiLinear
	}
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	if ui.alpha < 255 {
		// pixels are alpha-premultiplied, scale all channels
		a := uint32(ui.alpha)
		for i, v := range dst.Pix {
			dst.Pix[i] = uint8(uint32(v) * a / 255)
		}
	}
	ni, err := ui.tm.upload(dst)
	if err != nil {
		g.Log.Errorf("gui: scale picture %s: %s", ui.Path(), err)
		return ui.texture.Image
	}
	ui.scaled = ni
	return ui.scaled
}

func (ui *Picture) Layout(g *GUI, self *Kid, sizeAvail image.Point, force bool) {
	g.debugLayout(self)
	self.R = rect(ui.Size())
}

func (ui *Picture) Draw(g *GUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	g.debugDraw(self)
	if ui.texture == nil {
		return
	}
	i := ui.render(g)
	// nil mask, so SoverD blends with the premultiplied src alpha
	img.Draw(rect(ui.Size()).Add(orig), i, nil, image.ZP)
}

// MouseHit reports whether p is on a non-transparent pixel of the picture.
func (ui *Picture) MouseHit(g *GUI, self *Kid, p image.Point) bool {
	if ui.texture == nil {
		return false
	}
	size := ui.Size()
	if !p.In(rect(size)) {
		return false
	}
	natural := ui.texture.Size()
	tx := p.X * natural.X / size.X
	ty := p.Y * natural.Y / size.Y
	return !ui.texture.TransparentPixel(tx, ty)
}

func (ui *Picture) Mouse(g *GUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	if ui.m.Buttons&Button1 == Button1 && m.Buttons&Button1 == 0 && ui.Click != nil && ui.MouseHit(g, self, m.Point) {
		r.Consumed = true
		var e Event
		ui.Click(&e)
		propagateEvent(self, &r, e)
	}
	ui.m = m
	return
}

func (ui *Picture) Key(g *GUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	return
}

func (ui *Picture) FirstFocus(g *GUI, self *Kid) *image.Point {
	return nil
}

func (ui *Picture) Focus(g *GUI, self *Kid, o UI) *image.Point {
	if o != ui {
		return nil
	}
	return &image.ZP
}

func (ui *Picture) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	return self.Mark(o, forLayout)
}

func (ui *Picture) Print(self *Kid, indent int) {
	PrintUI("Picture", self, indent)
}
