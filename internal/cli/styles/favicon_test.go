package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/favicache/internal/application/usecase"
	"github.com/bnema/favicache/internal/cli/styles"
	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/domain/service"
	"github.com/bnema/favicache/internal/metrics"
)

func TestFaviconRenderer_RenderResult(t *testing.T) {
	r := styles.NewFaviconRenderer(styles.NewTheme())

	out := r.RenderResult("example.com", &usecase.ResolveIconOutput{
		Icon:  make([]byte, 42),
		Found: true,
		Color: entity.Color{R: 1, G: 0.5, B: 0},
		Path:  "/tmp/favicons/example.com.png",
	})

	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "42 bytes")
	assert.Contains(t, out, "#ff8000")
	assert.Contains(t, out, "rgb(255, 128, 0)")
	assert.Contains(t, out, "/tmp/favicons/example.com.png")
}

func TestFaviconRenderer_RenderResultMissing(t *testing.T) {
	r := styles.NewFaviconRenderer(styles.NewTheme())

	out := r.RenderResult("nowhere.test", &usecase.ResolveIconOutput{Color: entity.NeutralColor})

	assert.Contains(t, out, "nowhere.test")
	assert.Contains(t, out, "no icon available")
	assert.NotContains(t, out, "bytes")
}

func TestFaviconRenderer_RenderWarmSummary(t *testing.T) {
	r := styles.NewFaviconRenderer(styles.NewTheme())

	out := r.RenderWarmSummary(&usecase.WarmIconsOutput{
		Results: []usecase.WarmIconResult{
			{Identifier: "a.test", Found: true, Bytes: 10},
			{Identifier: "b.test"},
		},
		Found:   1,
		Missing: 1,
	}, []metrics.Sample{
		{Name: "favicache_cache_lookups_total", Labels: map[string]string{"tier": "memory", "result": "miss"}, Value: 9},
		{Name: "favicache_source_attempts_total", Labels: map[string]string{"source": "duckduckgo", "result": "success"}, Value: 3},
	})

	assert.Contains(t, out, "a.test")
	assert.Contains(t, out, "b.test")
	assert.Contains(t, out, "found")
	assert.Contains(t, out, "duckduckgo")
	assert.NotContains(t, out, "memory", "only source counters are listed")
}

func TestFaviconRenderer_RenderCacheInfo(t *testing.T) {
	r := styles.NewFaviconRenderer(styles.NewTheme())

	out := r.RenderCacheInfo("/cache/favicons", service.FaviconStats{MemoryEntries: 3, MemoryBytes: 1024})

	assert.Contains(t, out, "/cache/favicons")
	assert.Contains(t, out, "3 icons in memory (1024 bytes)")
}

func TestConfigRenderer_RenderConfigPath(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderConfigPath("/cfg/config.toml", true), "present")
	assert.Contains(t, r.RenderConfigPath("/cfg/config.toml", false), "using defaults")
}

func TestConfigRenderer_RenderDirs(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderDirs(&usecase.LocatePathsOutput{
		ConfigDir:       "/c/favicache",
		CacheDir:        "/k/favicache",
		FaviconCacheDir: "/k/favicache/favicons",
	})

	assert.Contains(t, out, "/c/favicache")
	assert.Contains(t, out, "/k/favicache/favicons")
}

func TestFaviconRenderer_RenderForgotten(t *testing.T) {
	r := styles.NewFaviconRenderer(styles.NewTheme())

	out := r.RenderForgotten("https://example.com/")

	assert.Contains(t, out, "Forgot")
	assert.Contains(t, out, "https://example.com/")
}
