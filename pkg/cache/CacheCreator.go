package cache

import "io"

type CacheCreator interface {
	DoesExist(cacheFilePath string) bool
	CreateCacheFile(original io.Reader, cacheFilePath string, maxSize uint) error
}
