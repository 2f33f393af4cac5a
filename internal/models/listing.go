package models

import "strings"

// Listing is one location-bearing record from the skillswap store, held as
// an in-memory copy for the duration of a run. Text fields are trimmed when
// the record is scanned, so an empty string means the field is absent.
// Latitude and Longitude are nil when the store holds no value for them.
type Listing struct {
	ID        int64    // ID is the unique identifier of the listing.
	Title     string   // Title is the display name shown in the popup.
	Address   string   // Address is the optional street address.
	City      string   // City is the optional city name.
	Country   string   // Country is the optional country value as stored.
	Latitude  *float64 // Latitude of the listing, nil when unknown.
	Longitude *float64 // Longitude of the listing, nil when unknown.
	ImageURL  string   // ImageURL is an optional image, possibly a relative path.
}

// Geolocated reports whether the listing already carries a usable
// coordinate pair. A single-sided coordinate counts as absent and the
// listing goes through resolution again.
func (l Listing) Geolocated() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Coordinates returns the stored pair. Only meaningful when Geolocated
// reports true.
func (l Listing) Coordinates() Coordinates {
	return Coordinates{Latitude: *l.Latitude, Longitude: *l.Longitude}
}

// LocalityQuery composes the free-text geocoding query from the listing's
// address, city and the given country value, in that fixed order, skipping
// absent parts. The country argument is passed in separately because the
// caller may have normalized it to a canonical name first. An empty result
// means the listing has no locality information at all.
func (l Listing) LocalityQuery(country string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{l.Address, l.City, country} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}

// ResolvedListing pairs a listing with the coordinate it will be rendered
// at, either taken from the store or freshly geocoded.
type ResolvedListing struct {
	Listing Listing
	Coords  Coordinates
}
