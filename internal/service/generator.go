package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/skillswap/mapgen/internal/mapping"
	"github.com/skillswap/mapgen/internal/metrics"
)

// Generator runs the full resolve-and-render sequence and writes the map
// artifact to its fixed output path.
type Generator struct {
	log        *slog.Logger       // Logger for logging service activities
	resolution *ResolutionService // Per-listing coordinate resolution
	builder    *mapping.Builder   // Map artifact rendering
	outputPath string             // Path the artifact is written to
	interval   time.Duration      // Interval for periodic regeneration
	metrics    *metrics.Metrics   // Metrics for tracking service performance
}

// NewGenerator creates a new instance of Generator.
func NewGenerator(
	log *slog.Logger,
	resolution *ResolutionService,
	builder *mapping.Builder,
	outputPath string,
	interval time.Duration,
	metrics *metrics.Metrics,
) *Generator {
	return &Generator{
		log:        log,
		resolution: resolution,
		builder:    builder,
		outputPath: outputPath,
		interval:   interval,
		metrics:    metrics,
	}
}

// OutputPath returns where the artifact is written, for co-located serving.
func (g *Generator) OutputPath() string {
	return g.outputPath
}

// GenerateOnce resolves all listings and writes the map artifact,
// returning the output path on success. The page is rendered into memory
// first so a failed run never leaves a partial artifact behind.
func (g *Generator) GenerateOnce(ctx context.Context) (string, error) {
	resolved, err := g.resolution.ResolveListings(ctx)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err = g.builder.Render(&buf, resolved); err != nil {
		return "", err
	}

	const artifactMode = 0o644
	if err = os.WriteFile(g.outputPath, buf.Bytes(), artifactMode); err != nil {
		return "", fmt.Errorf("failed to write map artifact: %w", err)
	}

	g.metrics.MapsGenerated.Inc()
	g.log.InfoContext(ctx, "Map artifact written", "path", g.outputPath, "markers", len(resolved))

	return g.outputPath, nil
}

// Run regenerates the map on a fixed interval until ctx is cancelled.
func (g *Generator) Run(ctx context.Context) {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	g.log.InfoContext(ctx, "Map generator started...")

	for {
		select {
		case <-ctx.Done():
			g.log.InfoContext(ctx, "Map generator stopped.")
			return
		case <-ticker.C:
			g.log.InfoContext(ctx, "Regenerating map...")
			if _, err := g.GenerateOnce(ctx); err != nil {
				g.log.ErrorContext(ctx, "Failed to regenerate map", "error", err)
			}
		}
	}
}
