package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/favicache/internal/application/usecase"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigPath renders the config file location and whether it exists.
func (r *ConfigRenderer) RenderConfigPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := r.theme.SuccessStyle.Render("present")
	if !exists {
		status = r.theme.WarningStyle.Render("not found, using defaults")
	}

	return fmt.Sprintf(
		"\n  %s Config %s\n    %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		status,
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderDirs renders the resolved XDG directories.
func (r *ConfigRenderer) RenderDirs(dirs *usecase.LocatePathsOutput) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Normal

	return fmt.Sprintf(
		"  %s %s %s\n  %s %s %s\n  %s %s %s",
		iconStyle.Render(IconFolder), keyStyle.Render("Config  "), valStyle.Render(dirs.ConfigDir),
		iconStyle.Render(IconFolder), keyStyle.Render("Cache   "), valStyle.Render(dirs.CacheDir),
		iconStyle.Render(IconImage), keyStyle.Render("Favicons"), valStyle.Render(dirs.FaviconCacheDir),
	)
}
