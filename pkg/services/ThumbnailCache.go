package services

import (
	"os"

	"github.com/adampresley/artbrowser/pkg/models"
)

type ThumbnailCacher interface {
	/*
	 * Checks if a thumbnail for the given image URL exists.
	 */
	Exists(settings *models.Settings, sourceURL string) bool

	/*
	 * Returns the full path to the thumbnail for the given image URL.
	 */
	GetFullCachePath(settings *models.Settings, sourceURL string) string
}

type ThumbnailCacheConfig struct {
	CachePath string
}

type ThumbnailCache struct {
	cachePath string
}

func NewThumbnailCache(config ThumbnailCacheConfig) ThumbnailCache {
	return ThumbnailCache{
		cachePath: config.CachePath,
	}
}

/*
Checks if a thumbnail for the given image URL exists.
*/
func (c ThumbnailCache) Exists(settings *models.Settings, sourceURL string) bool {
	var (
		err error
	)

	if _, err = os.Stat(c.GetFullCachePath(settings, sourceURL)); err == nil {
		return true
	}

	return false
}

/*
Returns the full path to the thumbnail for the given image URL.
*/
func (c ThumbnailCache) GetFullCachePath(settings *models.Settings, sourceURL string) string {
	return GetThumbnailCachePath(c.cachePath, settings.ThumbnailSize, sourceURL)
}
