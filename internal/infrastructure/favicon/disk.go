package favicon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	domainurl "github.com/bnema/favicache/internal/domain/url"
	"github.com/bnema/favicache/internal/logging"
	"github.com/bnema/favicache/internal/metrics"
)

// Directory permissions for the favicon cache. Files are created 0600 by os.CreateTemp.
const diskCacheDirPerm = 0750

// DiskStore is the durable tier: one PNG file per cache key inside a
// dedicated directory. Read and write failures degrade to misses.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the cache directory if needed and returns a store over it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: disk cache directory", ErrNilDependency)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve cache dir: %w", err)
	}
	if err := os.MkdirAll(abs, diskCacheDirPerm); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskStore{dir: abs}, nil
}

// Dir returns the cache directory.
func (d *DiskStore) Dir() string {
	return d.dir
}

// PathFor returns the file path for key. The result is always a direct
// child of the cache directory.
func (d *DiskStore) PathFor(key string) string {
	return filepath.Join(d.dir, domainurl.SanitizeKeyForPNG(domainurl.CacheKey(key)))
}

// Has reports whether a file exists for key.
func (d *DiskStore) Has(key string) bool {
	_, err := os.Stat(d.PathFor(key))
	return err == nil
}

// Read returns the stored bytes for key, or nil when the file is missing,
// unreadable or empty.
func (d *DiskStore) Read(ctx context.Context, key string) []byte {
	data, err := os.ReadFile(d.PathFor(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			metrics.RecordDiskError("read")
			logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to read cached favicon")
		}
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	return data
}

// Write atomically stores data for key. Failures are logged and swallowed.
func (d *DiskStore) Write(ctx context.Context, key string, data []byte) {
	if len(data) == 0 {
		return
	}

	if err := d.writeFile(d.PathFor(key), data); err != nil {
		metrics.RecordDiskError("write")
		logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to write cached favicon")
	}
}

// Remove deletes the key's file. A missing file is not an error;
// other failures are logged and swallowed.
func (d *DiskStore) Remove(ctx context.Context, key string) {
	err := os.Remove(d.PathFor(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		metrics.RecordDiskError("remove")
		logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to remove cached favicon")
	}
}

// Clear removes the cache directory and recreates it empty.
// Failures are logged and swallowed.
func (d *DiskStore) Clear(ctx context.Context) {
	log := logging.FromContext(ctx)

	if err := os.RemoveAll(d.dir); err != nil {
		metrics.RecordDiskError("clear")
		log.Warn().Err(err).Str("dir", d.dir).Msg("failed to remove favicon cache dir")
	}
	if err := os.MkdirAll(d.dir, diskCacheDirPerm); err != nil {
		metrics.RecordDiskError("clear")
		log.Warn().Err(err).Str("dir", d.dir).Msg("failed to recreate favicon cache dir")
	}
}

func (d *DiskStore) writeFile(finalPath string, data []byte) error {
	if filepath.Dir(finalPath) != d.dir || !strings.HasSuffix(finalPath, ".png") {
		return fmt.Errorf("path %q escapes cache dir", finalPath)
	}

	// Recreate the directory if something removed it behind our back.
	if err := os.MkdirAll(d.dir, diskCacheDirPerm); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(d.dir, ".favicon-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tempPath, finalPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
