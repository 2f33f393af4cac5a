package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/skillswap/mapgen/internal/geocoding"
	"github.com/skillswap/mapgen/internal/locality"
	"github.com/skillswap/mapgen/internal/metrics"
	"github.com/skillswap/mapgen/internal/models"
	"github.com/skillswap/mapgen/internal/repository"
)

// Outcome labels for the processed-listings metric.
const (
	statusGeolocated = "geolocated" // coordinates were already stored
	statusGeocoded   = "geocoded"   // resolved via the provider this run
	statusSkipped    = "skipped"    // no locality information at all
	statusFailed     = "failed"     // provider error or no match
)

// ResolutionService produces a final coordinate for every listing that can
// be placed on the map, persisting newly geocoded pairs back to the store
// as it goes. Processing is strictly sequential in fetch order; the single
// throttle spaces out the calls that reach the external service.
type ResolutionService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for listing store access
	provider     geocoding.Provider   // Geocoding provider for external lookups
	providerName string               // Name of the provider for metrics labeling
	localities   locality.Resolver    // Country normalization with raw fallback
	throttle     *geocoding.Throttle  // Spacing between live geocode calls
	metrics      *metrics.Metrics     // Metrics for tracking service performance
}

// NewResolutionService creates a new instance of ResolutionService.
func NewResolutionService(
	log *slog.Logger,
	repo repository.Interface,
	provider geocoding.Provider,
	providerName string,
	localities locality.Resolver,
	throttle *geocoding.Throttle,
	metrics *metrics.Metrics,
) *ResolutionService {
	return &ResolutionService{
		log:          log,
		repo:         repo,
		provider:     provider,
		providerName: providerName,
		localities:   localities,
		throttle:     throttle,
		metrics:      metrics,
	}
}

// ResolveListings fetches the active listings once and walks them in
// order. Listings that already carry coordinates pass straight through;
// the rest go through the geocoding fallback chain. Only the initial
// fetch can fail the run; every per-listing problem is contained here and
// the listing is simply left off the map.
func (rs *ResolutionService) ResolveListings(ctx context.Context) ([]models.ResolvedListing, error) {
	listings, err := rs.repo.FetchActiveListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active listings: %w", err)
	}

	rs.log.InfoContext(ctx, "Resolving listings", "count", len(listings))

	resolved := make([]models.ResolvedListing, 0, len(listings))
	for _, listing := range listings {
		if listing.Geolocated() {
			rs.metrics.ListingsProcessed.WithLabelValues(statusGeolocated).Inc()
			resolved = append(resolved, models.ResolvedListing{
				Listing: listing,
				Coords:  listing.Coordinates(),
			})
			continue
		}

		coords, ok := rs.geocodeListing(ctx, listing)
		if !ok {
			continue
		}

		listing.Latitude = &coords.Latitude
		listing.Longitude = &coords.Longitude
		resolved = append(resolved, models.ResolvedListing{Listing: listing, Coords: coords})
	}

	return resolved, nil
}

// geocodeListing runs the locality fallback chain for one listing and
// writes a successful result back to the store so later runs find the
// listing already geolocated. The boolean is false when the listing must
// be dropped from the output set.
func (rs *ResolutionService) geocodeListing(
	ctx context.Context,
	listing models.Listing,
) (models.Coordinates, bool) {
	country := listing.Country
	if country != "" {
		country = rs.localities.Resolve(country)
	}

	query := listing.LocalityQuery(country)
	if query == "" {
		rs.log.DebugContext(ctx, "Listing has no locality information, skipping", "listing", listing.ID)
		rs.metrics.ListingsProcessed.WithLabelValues(statusSkipped).Inc()
		return models.Coordinates{}, false
	}

	if err := rs.throttle.Wait(ctx); err != nil {
		rs.log.WarnContext(ctx, "Geocode throttle interrupted", "listing", listing.ID, "error", err)
		rs.metrics.ListingsProcessed.WithLabelValues(statusFailed).Inc()
		return models.Coordinates{}, false
	}

	startTime := time.Now()
	coords, err := rs.provider.Geocode(ctx, query)
	rs.metrics.RequestSeconds.WithLabelValues(rs.providerName).Observe(time.Since(startTime).Seconds())

	if err != nil {
		rs.log.WarnContext(ctx, "Failed to geocode listing",
			"listing", listing.ID, "query", query, "error", err)
		rs.metrics.ListingsProcessed.WithLabelValues(statusFailed).Inc()
		rs.metrics.GeocoderErrors.Inc()
		return models.Coordinates{}, false
	}

	if err = rs.repo.UpdateListingCoordinates(ctx, listing.ID, *coords); err != nil {
		// The pair is still good for this run; the next run simply
		// geocodes this listing again.
		rs.log.ErrorContext(ctx, "Failed to persist coordinates for listing",
			"listing", listing.ID, "error", err)
	}

	rs.metrics.ListingsProcessed.WithLabelValues(statusGeocoded).Inc()
	rs.log.DebugContext(ctx, "Listing geocoded", "listing", listing.ID, "query", query)

	return *coords, true
}
