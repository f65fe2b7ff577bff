package engine

import (
	"image"
	"image/color"

	"mist/internal/util"
)

// Frame is a float RGBA framebuffer filled by the raymarcher. Rows are
// written by independent worker goroutines; no two workers touch the same
// pixel, so it needs no locking.
type Frame struct {
	Width  int
	Height int
	Pixels []Color // row-major, y*Width+x, y = 0 at the top
}

// NewFrame allocates a frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// At returns the pixel at (x, y)
func (f *Frame) At(x, y int) Color {
	return f.Pixels[y*f.Width+x]
}

// Set stores the pixel at (x, y)
func (f *Frame) Set(x, y int, c Color) {
	f.Pixels[y*f.Width+x] = c
}

// RGBA converts the float frame to an 8-bit image, clamping each channel.
// Values can transiently exceed [0,1] before display; the clamp happens here
// at the presentation boundary, not in the renderer.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(util.Clamp(c.R, 0, 1)*255 + 0.5),
				G: uint8(util.Clamp(c.G, 0, 1)*255 + 0.5),
				B: uint8(util.Clamp(c.B, 0, 1)*255 + 0.5),
				A: uint8(util.Clamp(c.A, 0, 1)*255 + 0.5),
			})
		}
	}
	return img
}
