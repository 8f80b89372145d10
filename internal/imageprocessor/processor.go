package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// ThumbnailSize is the bounding box for thumbnails.
	ThumbnailSize = 300

	// Originals larger than ResizeThreshold bytes are downscaled to
	// fit inside MaxWidth x MaxHeight.
	ResizeThreshold = 5 << 20
	MaxWidth        = 1920
	MaxHeight       = 1024

	jpegQuality = 85
)

// Result carries the processed image variants, both JPEG-encoded.
type Result struct {
	Original  []byte
	Thumbnail []byte
	Width     int
	Height    int
}

// Options overrides the processing bounds. Zero fields fall back to
// the package defaults.
type Options struct {
	ThumbnailSize   int
	ResizeThreshold int64
}

// Process runs with the package defaults.
func Process(data []byte) (*Result, error) {
	return ProcessWith(data, Options{})
}

// ProcessWith decodes the payload, builds a thumbnail bounded to the
// thumbnail size and, when the payload exceeds the resize threshold,
// downscales the original to fit inside MaxWidth x MaxHeight. Every
// output is re-encoded as JPEG regardless of the input format.
func ProcessWith(data []byte, opts Options) (*Result, error) {
	thumbSize := opts.ThumbnailSize
	if thumbSize <= 0 {
		thumbSize = ThumbnailSize
	}
	threshold := opts.ResizeThreshold
	if threshold <= 0 {
		threshold = ResizeThreshold
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty image")
	}

	if int64(len(data)) > threshold {
		img = fitInside(img, MaxWidth, MaxHeight)
		bounds = img.Bounds()
		width, height = bounds.Dx(), bounds.Dy()
	}

	original, err := encodeJPEG(img)
	if err != nil {
		return nil, err
	}

	thumbnail, err := encodeJPEG(fitInside(img, thumbSize, thumbSize))
	if err != nil {
		return nil, err
	}

	return &Result{
		Original:  original,
		Thumbnail: thumbnail,
		Width:     width,
		Height:    height,
	}, nil
}

// fitInside scales img to fit within maxW x maxH preserving aspect
// ratio. Images already inside the box are returned unchanged.
func fitInside(img image.Image, maxW, maxH int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxW && h <= maxH {
		return img
	}

	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}

	dstW := int(float64(w) * scale)
	dstH := int(float64(h) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
