package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/domain/service"
)

// DefaultWarmConcurrency is used when WarmIconsInput.Concurrency is not positive.
const DefaultWarmConcurrency = 4

// WarmIconsUseCase fetches icons for many identifiers so later lookups hit the cache.
type WarmIconsUseCase struct {
	favicons      service.FaviconService
	loggerFromCtx port.LoggerFromContext
}

// NewWarmIconsUseCase creates a new WarmIconsUseCase.
func NewWarmIconsUseCase(favicons service.FaviconService, loggerFromCtx port.LoggerFromContext) *WarmIconsUseCase {
	return &WarmIconsUseCase{favicons: favicons, loggerFromCtx: loggerFromCtx}
}

// WarmIconsInput contains the identifiers to warm.
type WarmIconsInput struct {
	Identifiers []string
	// Concurrency bounds the number of fetches in flight.
	Concurrency int
}

// WarmIconResult is the outcome for one identifier.
type WarmIconResult struct {
	Identifier string
	Found      bool
	Bytes      int
}

// WarmIconsOutput holds per-identifier results in input order.
type WarmIconsOutput struct {
	Results []WarmIconResult
	Found   int
	Missing int
}

// Execute fetches every identifier, at most Concurrency at a time.
// A missing icon is a normal result; only context cancellation is an error.
func (uc *WarmIconsUseCase) Execute(ctx context.Context, input WarmIconsInput) (*WarmIconsOutput, error) {
	if uc.favicons == nil {
		return nil, fmt.Errorf("favicon service is nil")
	}

	limit := input.Concurrency
	if limit <= 0 {
		limit = DefaultWarmConcurrency
	}

	log := uc.logger(ctx)
	results := make([]WarmIconResult, len(input.Identifiers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, id := range input.Identifiers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, ok := uc.favicons.FetchIcon(gctx, id)
			results[i] = WarmIconResult{Identifier: id, Found: ok, Bytes: len(data)}
			log.Debug().Str("identifier", id).Bool("found", ok).Msg("warmed favicon")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("warm icons: %w", err)
	}
	// Fetches interrupted by cancellation report a miss, not an error.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("warm icons: %w", err)
	}

	out := &WarmIconsOutput{Results: results}
	for _, r := range results {
		if r.Found {
			out.Found++
		} else {
			out.Missing++
		}
	}
	return out, nil
}

func (uc *WarmIconsUseCase) logger(ctx context.Context) *zerolog.Logger {
	if uc.loggerFromCtx != nil {
		if log := uc.loggerFromCtx(ctx); log != nil {
			return log
		}
	}
	nop := zerolog.Nop()
	return &nop
}
