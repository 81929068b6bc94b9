package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/favicache/internal/application/usecase"
)

type stubXDG struct {
	config, cache, favicons string
	err                     error
}

func (s stubXDG) ConfigDir() (string, error)       { return s.config, nil }
func (s stubXDG) CacheDir() (string, error)        { return s.cache, s.err }
func (s stubXDG) FaviconCacheDir() (string, error) { return s.favicons, nil }

func TestLocatePathsUseCase_Execute(t *testing.T) {
	t.Run("resolves all directories", func(t *testing.T) {
		uc := usecase.NewLocatePathsUseCase(stubXDG{
			config:   "/home/u/.config/favicache",
			cache:    "/home/u/.cache/favicache",
			favicons: "/home/u/.cache/favicache/favicons",
		})

		out, err := uc.Execute()

		require.NoError(t, err)
		assert.Equal(t, "/home/u/.config/favicache", out.ConfigDir)
		assert.Equal(t, "/home/u/.cache/favicache", out.CacheDir)
		assert.Equal(t, "/home/u/.cache/favicache/favicons", out.FaviconCacheDir)
	})

	t.Run("propagates resolution errors", func(t *testing.T) {
		boom := errors.New("no home")
		uc := usecase.NewLocatePathsUseCase(stubXDG{err: boom})

		_, err := uc.Execute()

		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil port", func(t *testing.T) {
		_, err := usecase.NewLocatePathsUseCase(nil).Execute()

		assert.Error(t, err)
	})
}
