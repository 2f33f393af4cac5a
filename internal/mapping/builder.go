// Package mapping renders the resolved listings into a single
// self-contained Leaflet page with clustered markers and rich popups.
package mapping

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"strings"

	"github.com/skillswap/mapgen/internal/models"
)

// Initial viewport only (Brussels); never used as a marker position.
const (
	defaultCenterLat = 50.85
	defaultCenterLng = 4.35
	defaultZoom      = 5
)

//go:embed map.tmpl
var mapTemplate string

var tmpl = template.Must(template.New("map").Parse(mapTemplate))

// Builder renders the clustered map artifact for a set of resolved
// listings.
type Builder struct {
	frontendBase string       // frontendBase is joined with /listings/{id} for detail links.
	backendBase  string       // backendBase completes relative image paths.
	log          *slog.Logger // log is the logger for logging operations.
}

// NewBuilder creates a map builder with the configured base URLs.
func NewBuilder(frontendBase, backendBase string, log *slog.Logger) *Builder {
	return &Builder{frontendBase: frontendBase, backendBase: backendBase, log: log}
}

// marker is one plotted listing; serialized into the page as JSON.
type marker struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Popup string  `json:"popup"`
}

// page is the data handed to the page template.
type page struct {
	CenterLat float64
	CenterLng float64
	Zoom      int
	Markers   []marker
}

// popupData is the data handed to the popup template. Display fields are
// already placeholder-substituted; the template only escapes them.
type popupData struct {
	Title     string
	Address   string
	City      string
	Country   string
	ImageURL  string
	DetailURL string
}

// Render writes the complete map page for the resolved listings to w, in
// input order. Missing optional fields become placeholders in the popup;
// nothing in here is expected to fail on already-resolved data.
func (b *Builder) Render(w io.Writer, resolved []models.ResolvedListing) error {
	markers := make([]marker, 0, len(resolved))
	for _, item := range resolved {
		popup, err := b.renderPopup(item.Listing)
		if err != nil {
			return fmt.Errorf("failed to render popup for listing %d: %w", item.Listing.ID, err)
		}

		markers = append(markers, marker{
			Lat:   item.Coords.Latitude,
			Lng:   item.Coords.Longitude,
			Popup: popup,
		})
	}

	data := page{
		CenterLat: defaultCenterLat,
		CenterLng: defaultCenterLng,
		Zoom:      defaultZoom,
		Markers:   markers,
	}
	if err := tmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("failed to render map page: %w", err)
	}

	b.log.Debug("Rendered map page", "markers", len(markers))

	return nil
}

// renderPopup builds the popup HTML for one listing. The address line shows
// only the real address or a dash; city and country are never substituted
// for it, and the country is shown as stored rather than the normalized
// name used for geocoding.
func (b *Builder) renderPopup(listing models.Listing) (string, error) {
	data := popupData{
		Title:     listing.Title,
		Address:   orDash(listing.Address),
		City:      orDash(listing.City),
		Country:   orDash(listing.Country),
		ImageURL:  b.imageURL(listing.ImageURL),
		DetailURL: fmt.Sprintf("%s/listings/%d", b.frontendBase, listing.ID),
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "popup", data); err != nil {
		return "", fmt.Errorf("failed to execute popup template: %w", err)
	}

	return buf.String(), nil
}

// imageURL completes a relative upload path against the backend base.
// Absolute URLs pass through unchanged; empty means no image.
func (b *Builder) imageURL(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") {
		return raw
	}

	return b.backendBase + raw
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
