// Package debug provides developer tooling for the viewer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/sceneview/internal/engine/gpu"
)

// Supported screenshot formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

var encoders = map[string]func(io.Writer, image.Image) error{
	FormatPNG: png.Encode,
	FormatBMP: bmp.Encode,
}

// ScreenshotCapture writes framebuffer contents to timestamped image files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	format    string
	now       func() time.Time
	last      string
	seq       int
}

// NewScreenshotCapture creates a new screenshot capture handler.
// Unknown formats fall back to PNG.
func NewScreenshotCapture(outputDir, prefix, format string) *ScreenshotCapture {
	format = strings.ToLower(format)
	if _, ok := encoders[format]; !ok {
		format = FormatPNG
	}
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}
}

// Capture reads the current framebuffer from b and saves it.
func (sc *ScreenshotCapture) Capture(b gpu.Backend, width, height int) (string, error) {
	return sc.CaptureFromPixels(b.ReadPixels(width, height), width, height)
}

// CaptureFromPixels saves raw RGBA pixel data of width*height*4 bytes.
// Rows are flipped since OpenGL has its origin at the bottom-left.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	filename, err := sc.nextFilename()
	if err != nil {
		return "", err
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := encoders[sc.format](file, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", sc.format, err)
	}
	return filename, nil
}

// nextFilename creates the output directory and returns a fresh name.
// Captures within the same second get a numeric suffix.
func (sc *ScreenshotCapture) nextFilename() (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	stamp := sc.now().Format("2006-01-02_15-04-05")
	name := fmt.Sprintf("%s_%s.%s", sc.prefix, stamp, sc.format)
	if stamp == sc.last {
		sc.seq++
		name = fmt.Sprintf("%s_%s_%d.%s", sc.prefix, stamp, sc.seq, sc.format)
	} else {
		sc.last = stamp
		sc.seq = 0
	}
	return filepath.Join(sc.outputDir, name), nil
}
