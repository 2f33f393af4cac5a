package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ListingsProcessed *prometheus.CounterVec
	GeocoderErrors    prometheus.Counter
	RequestSeconds    *prometheus.HistogramVec
	MapsGenerated     prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		ListingsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "mapgen_listings_processed_total",
			Help: "Total number of listings processed, labeled by resolution outcome.",
		}, []string{"status"}),
		GeocoderErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "mapgen_geocoder_api_errors_total",
			Help: "Total number of errors received from the geocoding provider API.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mapgen_geocoder_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		MapsGenerated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "mapgen_maps_generated_total",
			Help: "Total number of map artifacts written.",
		}),
	}
}
