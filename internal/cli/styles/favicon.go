package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/favicache/internal/application/usecase"
	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/domain/service"
	"github.com/bnema/favicache/internal/metrics"
)

// FaviconRenderer renders favicon lookups, warm summaries and cache state.
type FaviconRenderer struct {
	theme *Theme
}

// NewFaviconRenderer creates a new favicon renderer with the given theme.
func NewFaviconRenderer(theme *Theme) *FaviconRenderer {
	return &FaviconRenderer{theme: theme}
}

// RenderSwatch renders a small block filled with the color.
func (*FaviconRenderer) RenderSwatch(c entity.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render("    ")
}

// RenderColor renders a swatch followed by the hex and RGB values.
func (r *FaviconRenderer) RenderColor(c entity.Color) string {
	red, green, blue := c.RGB8()
	return fmt.Sprintf("%s %s %s",
		r.RenderSwatch(c),
		r.theme.Highlight.Render(c.Hex()),
		r.theme.Subtle.Render(fmt.Sprintf("rgb(%d, %d, %d)", red, green, blue)),
	)
}

// RenderResult renders the outcome of a single icon lookup.
func (r *FaviconRenderer) RenderResult(identifier string, out *usecase.ResolveIconOutput) string {
	if out == nil || !out.Found {
		return fmt.Sprintf("  %s %s %s",
			r.theme.ErrorStyle.Render(IconX),
			r.theme.Normal.Render(identifier),
			r.theme.Subtle.Render("no icon available"),
		)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %s %s %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Title.Render(identifier),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d bytes", len(out.Icon))),
	))
	sb.WriteString(fmt.Sprintf("    %s\n", r.RenderColor(out.Color)))
	if out.Path != "" {
		sb.WriteString(fmt.Sprintf("    %s %s\n",
			lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconImage),
			r.theme.Subtle.Render(out.Path),
		))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderWarmSummary renders per-identifier warm results and the source counters.
func (r *FaviconRenderer) RenderWarmSummary(out *usecase.WarmIconsOutput, samples []metrics.Sample) string {
	var sb strings.Builder
	for _, res := range out.Results {
		icon := r.theme.SuccessStyle.Render(IconCheck)
		if !res.Found {
			icon = r.theme.ErrorStyle.Render(IconX)
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", icon, res.Identifier))
	}

	sb.WriteString(fmt.Sprintf("\n  %s %s found, %s missing\n",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconCache),
		r.theme.Highlight.Render(fmt.Sprintf("%d", out.Found)),
		r.theme.WarningStyle.Render(fmt.Sprintf("%d", out.Missing)),
	))

	for _, s := range samples {
		if s.Name != "favicache_source_attempts_total" {
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n",
			r.theme.Subtle.Render(s.Labels["source"]),
			r.theme.Normal.Render(s.Labels["result"]),
			r.theme.Highlight.Render(fmt.Sprintf("%.0f", s.Value)),
		))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderCacheInfo renders the disk directory and memory occupancy.
func (r *FaviconRenderer) RenderCacheInfo(dir string, stats service.FaviconStats) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("  %s %s\n  %s %s",
		iconStyle.Render(IconFolder),
		r.theme.Subtle.Render(dir),
		iconStyle.Render(IconCache),
		r.theme.Normal.Render(fmt.Sprintf("%d icons in memory (%d bytes)", stats.MemoryEntries, stats.MemoryBytes)),
	)
}

// RenderForgotten renders the confirmation after one identifier was dropped.
func (r *FaviconRenderer) RenderForgotten(identifier string) string {
	return fmt.Sprintf("  %s Forgot %s",
		r.theme.SuccessStyle.Render(IconTrash),
		r.theme.Highlight.Render(identifier),
	)
}

// RenderCleared renders the confirmation after both tiers were emptied.
func (r *FaviconRenderer) RenderCleared(dir string) string {
	return fmt.Sprintf("  %s Cleared favicon cache %s",
		r.theme.SuccessStyle.Render(IconTrash),
		r.theme.Subtle.Render(dir),
	)
}
