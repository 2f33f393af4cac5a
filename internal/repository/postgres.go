package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/skillswap/mapgen/internal/models"
)

// FetchActiveListings returns the non-deleted listings as a read-only
// snapshot for the run, in stable id order. Text fields are trimmed here so
// blank values count as absent downstream; the NUMERIC coordinate columns
// are normalized to float64 pairs at scan time. The camelCase column names
// come from the Prisma schema of the store and need quoting.
//
// Returns:
// - A slice of models.Listing for every listing not soft-deleted.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchActiveListings(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	query := `
		SELECT id, title, address, city, country, latitude, longitude, "imageUrl"
		FROM listings
		WHERE "deletedAt" IS NULL
		ORDER BY id ASC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active listings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			listing                          models.Listing
			address, city, country, imageURL *string
			latitude, longitude              pgtype.Numeric
		)
		if errScan := rows.Scan(
			&listing.ID, &listing.Title,
			&address, &city, &country,
			&latitude, &longitude, &imageURL,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", errScan)
		}

		listing.Address = trimmed(address)
		listing.City = trimmed(city)
		listing.Country = trimmed(country)
		listing.ImageURL = trimmed(imageURL)
		listing.Latitude = numericToFloat(latitude)
		listing.Longitude = numericToFloat(longitude)

		r.log.DebugContext(ctx, "Fetched active listing",
			"ID", listing.ID, "geolocated", listing.Geolocated())
		listings = append(listings, listing)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return listings, nil
}

// UpdateListingCoordinates persists a freshly geocoded pair for one
// listing. Writes are independent per listing and fire-and-forget; there is
// no verification read. It returns an error if the update fails.
func (r *Repository) UpdateListingCoordinates(
	ctx context.Context,
	listingID int64,
	coords models.Coordinates,
) error {
	query := `
		UPDATE listings
		SET
			latitude = $1,
			longitude = $2
		WHERE id = $3;
	`

	_, err := r.db.Exec(ctx, query, coords.Latitude, coords.Longitude, listingID)
	if err != nil {
		return fmt.Errorf("failed to update listing coordinates: %w", err)
	}

	return nil
}

// trimmed dereferences an optional text column, treating NULL and
// whitespace-only values as absent.
func trimmed(s *string) string {
	if s == nil {
		return ""
	}

	return strings.TrimSpace(*s)
}

// numericToFloat converts a nullable NUMERIC column to a float64 pointer.
// Values that cannot be represented as a float are treated as absent, so
// the pipeline resolves them again.
func numericToFloat(num pgtype.Numeric) *float64 {
	if !num.Valid {
		return nil
	}

	val, err := num.Float64Value()
	if err != nil || !val.Valid {
		return nil
	}

	return &val.Float64
}
