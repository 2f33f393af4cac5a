package service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/skillswap/mapgen/internal/geocoding"
	"github.com/skillswap/mapgen/internal/mapping"
	"github.com/skillswap/mapgen/internal/metrics"
	"github.com/skillswap/mapgen/internal/models"
	"github.com/skillswap/mapgen/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, repo *mocks.Interface, outputPath string) *Generator {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)
	resolution := NewResolutionService(
		logger, repo, mocks.NewProvider(t), "nominatim",
		mocks.NewResolver(t), geocoding.NewThrottle(time.Millisecond), appMetrics,
	)
	builder := mapping.NewBuilder("http://localhost:5173", "http://localhost:3000", logger)

	return NewGenerator(logger, resolution, builder, outputPath, time.Second, appMetrics)
}

func TestGenerateOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the artifact for resolved listings", func(t *testing.T) {
		mockRepo := mocks.NewInterface(t)
		outputPath := filepath.Join(t.TempDir(), "map.html")
		generator := newTestGenerator(t, mockRepo, outputPath)

		listing := models.Listing{
			ID: 1, Title: "Guitar lessons", Address: "Main St 1",
			Latitude: floatPtr(50.85), Longitude: floatPtr(4.35),
		}
		mockRepo.On("FetchActiveListings", ctx).Return([]models.Listing{listing}, nil).Once()

		path, err := generator.GenerateOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, outputPath, path)

		content, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "L.markerClusterGroup()")
		assert.Contains(t, string(content), "Guitar lessons")
	})

	t.Run("fetch failure produces no artifact", func(t *testing.T) {
		mockRepo := mocks.NewInterface(t)
		outputPath := filepath.Join(t.TempDir(), "map.html")
		generator := newTestGenerator(t, mockRepo, outputPath)

		mockRepo.On("FetchActiveListings", ctx).Return(nil, assert.AnError).Once()

		path, err := generator.GenerateOnce(ctx)

		require.Error(t, err)
		require.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, path)
		assert.NoFileExists(t, outputPath)
	})

	t.Run("run stops on context cancellation", func(t *testing.T) {
		mockRepo := mocks.NewInterface(t)
		generator := newTestGenerator(t, mockRepo, filepath.Join(t.TempDir(), "map.html"))

		tctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		generator.Run(tctx)
	})
}
