package services

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strconv"
)

/*
GetThumbnailCacheDir returns the directory holding thumbnails of a given
size. Files are fanned out by the first two characters of their key.
*/
func GetThumbnailCacheDir(cachePath string, size int, key string) string {
	return filepath.Join(cachePath, "thumbnails", strconv.Itoa(size), key[:2])
}

/*
GetThumbnailCachePath returns the full path to the cached thumbnail for
a remote image URL at a given size.
*/
func GetThumbnailCachePath(cachePath string, size int, sourceURL string) string {
	key := ThumbnailKey(sourceURL)
	return filepath.Join(GetThumbnailCacheDir(cachePath, size, key), key+".jpg")
}

func ThumbnailKey(sourceURL string) string {
	sum := sha256.Sum256([]byte(sourceURL))
	return hex.EncodeToString(sum[:])
}
