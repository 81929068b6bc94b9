package usecase

import (
	"fmt"

	"github.com/bnema/favicache/internal/application/port"
)

// LocatePathsUseCase resolves the directories favicache reads and writes.
type LocatePathsUseCase struct {
	xdg port.XDGPaths
}

// NewLocatePathsUseCase creates a new LocatePathsUseCase.
func NewLocatePathsUseCase(xdg port.XDGPaths) *LocatePathsUseCase {
	return &LocatePathsUseCase{xdg: xdg}
}

// LocatePathsOutput lists the resolved directories.
type LocatePathsOutput struct {
	ConfigDir       string
	CacheDir        string
	FaviconCacheDir string
}

// Execute resolves every directory, failing on the first error.
func (uc *LocatePathsUseCase) Execute() (*LocatePathsOutput, error) {
	if uc.xdg == nil {
		return nil, fmt.Errorf("xdg paths is nil")
	}

	configDir, err := uc.xdg.ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("config dir: %w", err)
	}
	cacheDir, err := uc.xdg.CacheDir()
	if err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	faviconDir, err := uc.xdg.FaviconCacheDir()
	if err != nil {
		return nil, fmt.Errorf("favicon cache dir: %w", err)
	}

	return &LocatePathsOutput{
		ConfigDir:       configDir,
		CacheDir:        cacheDir,
		FaviconCacheDir: faviconDir,
	}, nil
}
