package cache

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
)

type JpegCacheCreator struct{}

func NewJpegCacheCreator() JpegCacheCreator {
	return JpegCacheCreator{}
}

func (c JpegCacheCreator) DoesExist(cacheFilePath string) bool {
	if _, err := os.Stat(cacheFilePath); err == nil {
		return true
	}

	return false
}

/*
CreateCacheFile decodes the original image, scales its longest edge down
to maxSize and writes it as a JPEG. The file is written to a temporary
name first so a concurrent reader never sees a partial thumbnail.
*/
func (c JpegCacheCreator) CreateCacheFile(original io.Reader, cacheFilePath string, maxSize uint) error {
	var (
		err error
		out *os.File
		img image.Image
	)

	if img, _, err = image.Decode(original); err != nil {
		return fmt.Errorf("error decoding image for %s: %w", cacheFilePath, err)
	}

	if err = os.MkdirAll(filepath.Dir(cacheFilePath), 0755); err != nil {
		return fmt.Errorf("error creating cache directory %s: %w", filepath.Dir(cacheFilePath), err)
	}

	if out, err = os.CreateTemp(filepath.Dir(cacheFilePath), ".thumb-*"); err != nil {
		return fmt.Errorf("error creating cache file %s: %w", cacheFilePath, err)
	}

	tmpName := out.Name()

	defer func() {
		_ = os.Remove(tmpName)
	}()

	resizedImage := c.resize(img, maxSize)

	if err = jpeg.Encode(out, resizedImage, &jpeg.Options{Quality: 85}); err != nil {
		out.Close()
		return fmt.Errorf("error encoding JPEG image %s: %w", cacheFilePath, err)
	}

	if err = out.Close(); err != nil {
		return fmt.Errorf("error closing cache file %s: %w", cacheFilePath, err)
	}

	if err = os.Rename(tmpName, cacheFilePath); err != nil {
		return fmt.Errorf("error moving cache file into place %s: %w", cacheFilePath, err)
	}

	return nil
}

func (c JpegCacheCreator) resize(img image.Image, maxSize uint) image.Image {
	var (
		newWidth, newHeight uint
	)

	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	/*
	 * Never upscale.
	 */
	if width <= maxSize && height <= maxSize {
		return img
	}

	if width > height {
		// Landscape orientation
		newWidth = maxSize
		newHeight = uint(float64(height) * (float64(maxSize) / float64(width)))
	} else {
		// Portrait orientation or square
		newHeight = maxSize
		newWidth = uint(float64(width) * (float64(maxSize) / float64(height)))
	}

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}
