package gui

import (
	"image"
	"image/color"
	"testing"

	"9fans.net/go/draw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPictureGUI(t *testing.T) *GUI {
	g := testGUI(t)
	g.Textures = testTextures(nil)
	return g
}

func TestPictureLoad(t *testing.T) {
	g := testPictureGUI(t)
	dir := t.TempDir()
	path := writePNG(t, dir, "a.png", testImage(4, 3))

	ui := &Picture{}
	assert.Equal(t, image.ZP, ui.Size())
	assert.Equal(t, "", ui.Path())

	require.NoError(t, ui.Load(g, path))
	assert.Equal(t, image.Pt(4, 3), ui.Size())
	assert.NotEqual(t, "", ui.Path())

	self := &Kid{UI: ui}
	ui.Layout(g, self, image.Pt(100, 100), true)
	assert.Equal(t, image.Rect(0, 0, 4, 3), self.R)

	ui.SetSize(image.Pt(8, 6))
	assert.Equal(t, image.Pt(8, 6), ui.Size())
	ui.SetSize(image.ZP)
	assert.Equal(t, image.Pt(4, 3), ui.Size())

	// loading another file releases the previous texture
	other := writePNG(t, dir, "b.png", testImage(2, 2))
	require.NoError(t, ui.Load(g, other))
	assert.Equal(t, image.Pt(2, 2), ui.Size())
	assert.Len(t, g.Textures.textures, 1)

	ui.Unload()
	assert.Equal(t, image.ZP, ui.Size())
	assert.Empty(t, g.Textures.textures)
}

func TestPictureClone(t *testing.T) {
	g := testPictureGUI(t)
	dir := t.TempDir()
	path := writePNG(t, dir, "a.png", testImage(4, 3))

	ui := &Picture{Smooth: true}
	require.NoError(t, ui.Load(g, path))
	clone := ui.Clone()

	assert.Same(t, ui.texture, clone.texture, "clone shares the texture")
	assert.Equal(t, 2, ui.texture.refs)
	assert.True(t, clone.Smooth)

	tex := ui.texture
	ui.Unload()
	assert.Len(t, g.Textures.textures, 1, "clone still holds the texture")
	assert.Equal(t, 1, tex.refs)
	clone.Unload()
	assert.Empty(t, g.Textures.textures)
}

func TestPictureMouseHit(t *testing.T) {
	g := testPictureGUI(t)
	dir := t.TempDir()
	img := testImage(2, 2)
	img.SetRGBA(0, 0, color.RGBA{}) // transparent top-left
	path := writePNG(t, dir, "a.png", img)

	ui := &Picture{}
	require.NoError(t, ui.Load(g, path))
	self := &Kid{UI: ui}

	assert.False(t, ui.MouseHit(g, self, image.Pt(0, 0)))
	assert.True(t, ui.MouseHit(g, self, image.Pt(1, 0)))
	assert.False(t, ui.MouseHit(g, self, image.Pt(5, 5)), "outside the picture")

	// scaled up, the transparent quarter stays transparent
	ui.SetSize(image.Pt(4, 4))
	assert.False(t, ui.MouseHit(g, self, image.Pt(1, 1)))
	assert.True(t, ui.MouseHit(g, self, image.Pt(2, 1)))
}

func TestPictureClick(t *testing.T) {
	g := testPictureGUI(t)
	dir := t.TempDir()
	img := testImage(2, 2)
	img.SetRGBA(0, 0, color.RGBA{})
	path := writePNG(t, dir, "a.png", img)

	var clicks int
	ui := &Picture{Click: func(e *Event) { clicks++ }}
	require.NoError(t, ui.Load(g, path))
	self := &Kid{UI: ui}

	opaque := image.Pt(1, 1)
	ui.Mouse(g, self, mouseAt(opaque, Button1), mouseAt(opaque, Button1), image.ZP)
	r := ui.Mouse(g, self, mouseAt(opaque, 0), mouseAt(opaque, Button1), image.ZP)
	assert.True(t, r.Consumed)
	assert.Equal(t, 1, clicks)

	// release on a transparent pixel does not click
	clear := image.Pt(0, 0)
	ui.Mouse(g, self, mouseAt(clear, Button1), mouseAt(clear, Button1), image.ZP)
	r = ui.Mouse(g, self, mouseAt(clear, 0), mouseAt(clear, Button1), image.ZP)
	assert.False(t, r.Consumed)
	assert.Equal(t, 1, clicks)
}

func TestPictureAlphaPremultiplied(t *testing.T) {
	g := testPictureGUI(t)
	var uploaded []*image.RGBA
	g.Textures.upload = func(rgba *image.RGBA) (*draw.Image, error) {
		uploaded = append(uploaded, rgba)
		return &draw.Image{R: rgba.Bounds()}, nil
	}
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{200, 100, 40, 255})
	path := writePNG(t, dir, "a.png", img)

	ui := &Picture{}
	require.NoError(t, ui.Load(g, path))
	ui.SetAlpha(128)
	ui.render(g)

	// second upload is the translucent variant; all channels scaled, not
	// just alpha, keeping the pixels premultiplied
	require.Len(t, uploaded, 2)
	assert.Equal(t, []uint8{100, 50, 20, 128}, []uint8(uploaded[1].Pix))
}
