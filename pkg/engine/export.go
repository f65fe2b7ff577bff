package engine

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrjoshuak/go-openexr/exr"
)

// WriteEXR writes the frame as an OpenEXR image, keeping the raw float
// radiance the raymarcher produced without clamping.
func WriteEXR(path string, frame *Frame) error {
	img := exr.NewRGBAImage(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := frame.At(x, y)
			img.SetRGBA(x, y, float32(c.R), float32(c.G), float32(c.B), float32(c.A))
		}
	}

	if err := exr.EncodeFile(path, img); err != nil {
		return fmt.Errorf("failed to write EXR %s: %v", path, err)
	}
	return nil
}

// WritePNG writes the frame as an 8-bit PNG, clamping each channel to [0,1]
func WritePNG(path string, frame *Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, frame.RGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG %s: %v", path, err)
	}
	return nil
}

// WriteFrame writes the frame in the format implied by the file extension
func WriteFrame(path string, frame *Frame) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".exr":
		return WriteEXR(path, frame)
	case ".png":
		return WritePNG(path, frame)
	default:
		return fmt.Errorf("unsupported frame format %q", filepath.Ext(path))
	}
}
