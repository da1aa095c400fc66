package gui

import (
	"fmt"
	"image"
	imagedraw "image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"9fans.net/go/draw"
	_ "golang.org/x/image/bmp"
)

// DecodeImage decodes an image from f into RGBA, the pixel format textures
// keep for rescaling and transparency hit tests. PNG, JPEG, GIF and BMP are
// supported.
func DecodeImage(f io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rectangle{image.ZP, b.Size()})
	imagedraw.Draw(rgba, rgba.Bounds(), img, b.Min, imagedraw.Src)
	return rgba, nil
}

// ReadImage decodes an image from f for use on display. The returned image is
// ready for use in an Image UI.
func ReadImage(display *draw.Display, f io.Reader) (*draw.Image, error) {
	rgba, err := DecodeImage(f)
	if err != nil {
		return nil, err
	}
	return UploadImage(display, rgba)
}

// ReadImagePath is a convenience function that opens path and calls ReadImage.
func ReadImagePath(display *draw.Display, path string) (*draw.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadImage(display, f)
}

// UploadImage allocates a display image for rgba and loads the pixels into it.
func UploadImage(display *draw.Display, rgba *image.RGBA) (*draw.Image, error) {
	// todo: package image claims data is in r,g,b,a.  who is reversing the bytes? devdraw? will this work on big endian?
	ni, err := display.AllocImage(rgba.Bounds(), draw.ABGR32, false, draw.White)
	if err != nil {
		return nil, fmt.Errorf("allocimage: %w", err)
	}
	_, err = ni.Load(rgba.Bounds(), rgba.Pix)
	if err != nil {
		ni.Free()
		return nil, fmt.Errorf("load image: %w", err)
	}
	return ni, nil
}
