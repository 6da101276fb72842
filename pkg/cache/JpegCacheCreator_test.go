package cache

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))

	return buf
}

func decodeJPEG(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := jpeg.Decode(f)
	require.NoError(t, err)

	return img
}

func TestCreateCacheFileScalesLongestEdge(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{"landscape", 400, 200, 100, 50},
		{"portrait", 200, 400, 50, 100},
		{"small image is not upscaled", 60, 40, 60, 40},
	}

	creator := NewJpegCacheCreator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "nested", "thumb.jpg")

			require.NoError(t, creator.CreateCacheFile(encodePNG(t, tt.width, tt.height), out, 100))
			assert.True(t, creator.DoesExist(out))

			bounds := decodeJPEG(t, out).Bounds()
			assert.Equal(t, tt.wantWidth, bounds.Dx())
			assert.Equal(t, tt.wantHeight, bounds.Dy())
		})
	}
}

func TestCreateCacheFileRejectsGarbage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "thumb.jpg")

	err := NewJpegCacheCreator().CreateCacheFile(strings.NewReader("not an image"), out, 100)

	assert.Error(t, err)
	assert.False(t, NewJpegCacheCreator().DoesExist(out))
}
