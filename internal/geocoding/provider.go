package geocoding

import (
	"context"

	"github.com/skillswap/mapgen/internal/models"
)

// Provider is an interface that defines a method for geocoding a locality
// query. The Geocode method takes a context and a free-text query string,
// and returns the corresponding coordinates or an error when the query
// cannot be resolved to a location.
type Provider interface {
	Geocode(ctx context.Context, query string) (*models.Coordinates, error)
}
