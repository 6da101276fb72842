package images

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/configuration"
	"github.com/adampresley/artbrowser/pkg/cache"
	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/adampresley/artbrowser/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSettings struct{}

func (fixedSettings) Read() (*models.Settings, error) {
	settings := services.DefaultSettings()
	settings.ThumbnailSize = 32
	return settings, nil
}

func (fixedSettings) Save(settings *models.Settings) error {
	return nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 64, 48))

	for x := 0; x < 64; x++ {
		for y := 0; y < 48; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}

	b := &bytes.Buffer{}
	require.NoError(t, png.Encode(b, img))

	return b.Bytes()
}

func newController(t *testing.T, allowedHosts string) ImageController {
	return NewImageController(ImageControllerConfig{
		CacheCreator:    cache.NewJpegCacheCreator(),
		Config:          &configuration.Config{ImageHosts: allowedHosts},
		SettingsService: fixedSettings{},
		ThumbnailCache:  services.NewThumbnailCache(services.ThumbnailCacheConfig{CachePath: t.TempDir()}),
	})
}

func thumbnailRequest(src string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/thumbnail?src="+url.QueryEscape(src), nil)
}

func TestServeThumbnailCreatesAndCaches(t *testing.T) {
	body := pngBytes(t)
	hits := atomic.Int32{}

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer origin.Close()

	controller := newController(t, "127.0.0.1")
	src := origin.URL + "/image.png"

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		controller.ServeThumbnail(w, thumbnailRequest(src))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))

		img, _, err := image.Decode(w.Body)
		require.NoError(t, err)
		assert.Equal(t, 32, img.Bounds().Dx())
	}

	assert.Equal(t, int32(1), hits.Load())
}

func TestServeThumbnailRejectsForeignHost(t *testing.T) {
	controller := newController(t, "nrs.harvard.edu")

	w := httptest.NewRecorder()
	controller.ServeThumbnail(w, thumbnailRequest("https://evil.example/x.jpg"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServeThumbnailRedirectsWhenOriginFails(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer origin.Close()

	controller := newController(t, "127.0.0.1")
	src := origin.URL + "/missing.jpg"

	w := httptest.NewRecorder()
	controller.ServeThumbnail(w, thumbnailRequest(src))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, src, w.Header().Get("Location"))
}
