package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 64, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestProcessProducesJPEGVariants(t *testing.T) {
	result, err := Process(encodePNG(t, 640, 480))
	require.NoError(t, err)

	assert.Equal(t, 640, result.Width)
	assert.Equal(t, 480, result.Height)

	orig := decodeJPEG(t, result.Original)
	assert.Equal(t, 640, orig.Bounds().Dx())
	assert.Equal(t, 480, orig.Bounds().Dy())

	thumb := decodeJPEG(t, result.Thumbnail)
	assert.LessOrEqual(t, thumb.Bounds().Dx(), ThumbnailSize)
	assert.LessOrEqual(t, thumb.Bounds().Dy(), ThumbnailSize)
}

func TestThumbnailPreservesAspectRatio(t *testing.T) {
	result, err := Process(encodePNG(t, 800, 400))
	require.NoError(t, err)

	thumb := decodeJPEG(t, result.Thumbnail)
	assert.Equal(t, 300, thumb.Bounds().Dx())
	assert.Equal(t, 150, thumb.Bounds().Dy())
}

func TestSmallImageNotUpscaled(t *testing.T) {
	result, err := Process(encodePNG(t, 120, 90))
	require.NoError(t, err)

	thumb := decodeJPEG(t, result.Thumbnail)
	assert.Equal(t, 120, thumb.Bounds().Dx())
	assert.Equal(t, 90, thumb.Bounds().Dy())
}

func TestProcessRejectsGarbage(t *testing.T) {
	_, err := Process([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestOptionsOverrideDefaults(t *testing.T) {
	data := encodePNG(t, 800, 400)

	result, err := ProcessWith(data, Options{ThumbnailSize: 100})
	require.NoError(t, err)
	thumb := decodeJPEG(t, result.Thumbnail)
	assert.Equal(t, 100, thumb.Bounds().Dx())
	assert.Equal(t, 50, thumb.Bounds().Dy())

	// A one-byte threshold forces the downscale branch even for a
	// small payload.
	result, err = ProcessWith(encodePNG(t, 2500, 2500), Options{ResizeThreshold: 1})
	require.NoError(t, err)
	orig := decodeJPEG(t, result.Original)
	assert.LessOrEqual(t, orig.Bounds().Dx(), MaxWidth)
	assert.LessOrEqual(t, orig.Bounds().Dy(), MaxHeight)
}

func TestOversizedPayloadDownscaled(t *testing.T) {
	// Random noise defeats PNG compression, pushing the payload over
	// the resize threshold.
	const side = 2200
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	seed := uint32(12345)
	for i := range img.Pix {
		seed = seed*1664525 + 1013904223
		img.Pix[i] = byte(seed >> 24)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.Greater(t, buf.Len(), ResizeThreshold)

	result, err := Process(buf.Bytes())
	require.NoError(t, err)

	orig := decodeJPEG(t, result.Original)
	assert.LessOrEqual(t, orig.Bounds().Dx(), MaxWidth)
	assert.LessOrEqual(t, orig.Bounds().Dy(), MaxHeight)
	assert.Equal(t, orig.Bounds().Dx(), result.Width)
	assert.Equal(t, orig.Bounds().Dy(), result.Height)
}
