package gui

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"9fans.net/go/draw"
	"github.com/sirupsen/logrus"
)

// Texture is an image loaded through a TextureManager, shared between the
// Picture widgets that display it. The decoded pixels are kept around for
// rescaling and for transparency hit tests.
type Texture struct {
	Path  string      // Normalized (absolute) path the texture was loaded from.
	Image *draw.Image // Display image at the natural size of the texture.

	rgba *image.RGBA
	refs int
}

// Size returns the natural size of the texture.
func (t *Texture) Size() image.Point {
	return t.rgba.Bounds().Size()
}

// RGBA returns the decoded pixels. Callers must not modify them.
func (t *Texture) RGBA() *image.RGBA {
	return t.rgba
}

// TransparentPixel reports whether the pixel at x,y (in texture coordinates)
// is fully transparent. Out-of-bounds points are transparent.
func (t *Texture) TransparentPixel(x, y int) bool {
	b := t.rgba.Bounds()
	if !image.Pt(x, y).Add(b.Min).In(b) {
		return true
	}
	_, _, _, a := t.rgba.At(b.Min.X+x, b.Min.Y+y).RGBA()
	return a == 0
}

// TextureManager is a reference-counting cache of textures by file path.
// Loading a path twice shares the decoded pixels and the display image.
// Safe for concurrent use, so loads can be prepared outside the main loop
// and applied through the Call channel.
type TextureManager struct {
	Log *logrus.Logger

	mu       sync.Mutex
	textures map[string]*Texture
	upload   func(*image.RGBA) (*draw.Image, error)
	free     func(*draw.Image)
}

// NewTextureManager returns a texture manager uploading to display.
func NewTextureManager(display *draw.Display) *TextureManager {
	return &TextureManager{
		Log:      logrus.StandardLogger(),
		textures: map[string]*Texture{},
		upload: func(rgba *image.RGBA) (*draw.Image, error) {
			return UploadImage(display, rgba)
		},
		free: func(i *draw.Image) {
			i.Free()
		},
	}
}

// Load returns the texture for the image file at path, loading it if no
// other holder has it. The caller owns a reference and must Release it.
func (tm *TextureManager) Load(path string) (*Texture, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abspath %s: %w", path, err)
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	if t, ok := tm.textures[abs]; ok {
		t.refs++
		tm.Log.Debugf("gui: texture %s shared, now %d refs", abs, t.refs)
		return t, nil
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", abs, err)
	}
	defer f.Close()
	rgba, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", abs, err)
	}
	img, err := tm.upload(rgba)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", abs, err)
	}
	t := &Texture{
		Path:  abs,
		Image: img,
		rgba:  rgba,
		refs:  1,
	}
	tm.textures[abs] = t
	tm.Log.Debugf("gui: texture %s loaded, %v", abs, t.Size())
	return t, nil
}

// Copy takes another reference on t, e.g. for a cloned Picture.
func (tm *TextureManager) Copy(t *Texture) *Texture {
	if t == nil {
		return nil
	}
	tm.mu.Lock()
	defer tm.mu.Unlock()
	t.refs++
	return t
}

// Release drops a reference on t. The last release frees the display image
// and removes the texture from the cache.
func (tm *TextureManager) Release(t *Texture) {
	if t == nil {
		return
	}
	tm.mu.Lock()
	defer tm.mu.Unlock()
	t.refs--
	if t.refs > 0 {
		return
	}
	if t.refs < 0 {
		tm.Log.Errorf("gui: texture %s released more often than loaded", t.Path)
	}
	delete(tm.textures, t.Path)
	if t.Image != nil {
		tm.free(t.Image)
		t.Image = nil
	}
	tm.Log.Debugf("gui: texture %s freed", t.Path)
}
