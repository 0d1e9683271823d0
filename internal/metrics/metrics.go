package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SeatAssignments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backoffice_seat_assignments_total",
		Help: "Seat assignment attempts by result",
	}, []string{"result"})

	SeatReleases = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_seat_releases_total",
		Help: "Seats released",
	})

	SeatIntegrityWarnings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_seat_integrity_warnings_total",
		Help: "Duplicate seat holders found while indexing a trip",
	})

	ManifestsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backoffice_manifests_generated_total",
		Help: "Manifests built by output format",
	}, []string{"format"})

	ManifestBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "backoffice_manifest_build_duration_seconds",
		Help:    "Time spent loading and ordering a manifest, PDF rendering excluded",
		Buckets: prometheus.DefBuckets,
	})
)
