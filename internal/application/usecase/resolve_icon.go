package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/domain/service"
)

// ResolveIconUseCase returns a link's icon together with its accent color.
type ResolveIconUseCase struct {
	favicons service.FaviconService
}

// NewResolveIconUseCase creates a new ResolveIconUseCase.
func NewResolveIconUseCase(favicons service.FaviconService) *ResolveIconUseCase {
	return &ResolveIconUseCase{favicons: favicons}
}

// ResolveIconInput selects the link and whether the network may be used.
type ResolveIconInput struct {
	Identifier string
	// CachedOnly skips the network source chain.
	CachedOnly bool
}

// ResolveIconOutput carries the icon, if any, and the color to theme it with.
// Color is entity.NeutralColor when no icon was found.
type ResolveIconOutput struct {
	Icon  []byte
	Found bool
	Color entity.Color
	// Path is the disk location of the cached icon, empty when absent.
	Path string
}

// Execute looks up the icon and derives its dominant color.
func (uc *ResolveIconUseCase) Execute(ctx context.Context, input ResolveIconInput) (*ResolveIconOutput, error) {
	if uc.favicons == nil {
		return nil, fmt.Errorf("favicon service is nil")
	}

	var (
		data []byte
		ok   bool
	)
	if input.CachedOnly {
		data, ok = uc.favicons.GetCached(input.Identifier)
	} else {
		data, ok = uc.favicons.FetchIcon(ctx, input.Identifier)
	}

	out := &ResolveIconOutput{Color: entity.NeutralColor}
	if !ok {
		return out, nil
	}

	out.Icon = data
	out.Found = true
	out.Path = uc.favicons.DiskPath(input.Identifier)
	if c, decoded := uc.favicons.ExtractDominantColor(data); decoded {
		out.Color = c
	}
	return out, nil
}
