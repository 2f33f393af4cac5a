package locality

import (
	"log/slog"

	"github.com/pariz/gountries"
)

// Resolver normalizes a raw country value to a canonical country name.
type Resolver interface {
	Resolve(raw string) string
}

// GountriesResolver resolves country names, ISO codes and abbreviations
// against the embedded gountries dataset.
type GountriesResolver struct {
	query *gountries.Query // query is the in-memory country database.
	log   *slog.Logger     // log is the logger for logging operations.
}

// NewResolver creates a resolver backed by the bundled country data.
func NewResolver(log *slog.Logger) *GountriesResolver {
	return &GountriesResolver{query: gountries.New(), log: log}
}

// Resolve returns the canonical country name for raw. Lookup failures are
// non-fatal: the raw value is returned unchanged so the caller can still
// geocode with whatever the operator stored.
func (gr *GountriesResolver) Resolve(raw string) string {
	if raw == "" {
		return raw
	}

	// Two and three letter values are usually ISO codes ("BE", "BEL").
	const alpha2, alpha3 = 2, 3
	if len(raw) == alpha2 || len(raw) == alpha3 {
		if country, err := gr.query.FindCountryByAlpha(raw); err == nil {
			return country.Name.Common
		}
	}

	if country, err := gr.query.FindCountryByName(raw); err == nil {
		return country.Name.Common
	}

	gr.log.Debug("Could not normalize country, using raw value", "country", raw)

	return raw
}
