package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	CacheDir() (string, error)

	FaviconCacheDir() (string, error)
}
