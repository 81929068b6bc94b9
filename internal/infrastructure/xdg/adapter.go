package xdg

import (
	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) CacheDir() (string, error) {
	return config.GetCacheDir()
}

func (a *Adapter) FaviconCacheDir() (string, error) {
	return config.GetFaviconCacheDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
