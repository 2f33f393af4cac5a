package models_test

import (
	"testing"

	"github.com/skillswap/mapgen/internal/models"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestGeolocated(t *testing.T) {
	t.Parallel()

	t.Run("both coordinates present", func(t *testing.T) {
		t.Parallel()
		listing := models.Listing{Latitude: floatPtr(50.85), Longitude: floatPtr(4.35)}

		assert.True(t, listing.Geolocated())
	})

	t.Run("both coordinates absent", func(t *testing.T) {
		t.Parallel()
		listing := models.Listing{}

		assert.False(t, listing.Geolocated())
	})

	t.Run("only latitude present counts as absent", func(t *testing.T) {
		t.Parallel()
		listing := models.Listing{Latitude: floatPtr(50.85)}

		assert.False(t, listing.Geolocated())
	})

	t.Run("only longitude present counts as absent", func(t *testing.T) {
		t.Parallel()
		listing := models.Listing{Longitude: floatPtr(4.35)}

		assert.False(t, listing.Geolocated())
	})
}

func TestCoordinates(t *testing.T) {
	t.Parallel()

	listing := models.Listing{Latitude: floatPtr(50.85), Longitude: floatPtr(4.35)}

	assert.Equal(t, models.Coordinates{Latitude: 50.85, Longitude: 4.35}, listing.Coordinates())
}

func TestLocalityQuery(t *testing.T) {
	t.Parallel()

	t.Run("all parts present", func(t *testing.T) {
		t.Parallel()
		listing := models.Listing{Address: "Main St 1", City: "Ghent", Country: "BE"}

		assert.Equal(t, "Main St 1, Ghent, Belgium", listing.LocalityQuery("Belgium"))
	})

	t.Run("city absent", func(t *testing.T) {
		t.Parallel()
		listing := models.Listing{Address: "Main St 1"}

		assert.Equal(t, "Main St 1, Belgium", listing.LocalityQuery("Belgium"))
	})

	t.Run("address absent", func(t *testing.T) {
		t.Parallel()
		listing := models.Listing{City: "Ghent"}

		assert.Equal(t, "Ghent, Belgium", listing.LocalityQuery("Belgium"))
	})

	t.Run("country only", func(t *testing.T) {
		t.Parallel()
		listing := models.Listing{}

		assert.Equal(t, "Belgium", listing.LocalityQuery("Belgium"))
	})

	t.Run("nothing present", func(t *testing.T) {
		t.Parallel()
		listing := models.Listing{}

		assert.Empty(t, listing.LocalityQuery(""))
	})
}
