package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace is the namespace all metrics are defined under.
const Namespace = "basemedia"

const subsystem = "basesets"

// Recorder records base set scan and selection metrics.
type Recorder struct {
	gatherer prometheus.Gatherer

	manifests    *prometheus.CounterVec
	sets         *prometheus.GaugeVec
	missingFiles *prometheus.GaugeVec
	corruptFiles *prometheus.GaugeVec
	selections   *prometheus.CounterVec
	scanDuration *prometheus.HistogramVec
}

// New creates a Recorder registering its collectors with reg.
func New(reg *prometheus.Registry) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		gatherer: reg,
		manifests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace, Subsystem: subsystem, Name: "manifests_total",
			Help: "Manifests processed by outcome.",
		}, []string{"kind", "outcome"}),
		sets: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace, Subsystem: subsystem, Name: "sets",
			Help: "Known sets by state.",
		}, []string{"kind", "state"}),
		missingFiles: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace, Subsystem: subsystem, Name: "active_missing_files",
			Help: "Missing files of the active set.",
		}, []string{"kind"}),
		corruptFiles: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace, Subsystem: subsystem, Name: "active_corrupt_files",
			Help: "Files of the active set with a checksum mismatch.",
		}, []string{"kind"}),
		selections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace, Subsystem: subsystem, Name: "selections_total",
			Help: "Active set selections by result.",
		}, []string{"kind", "result"}),
		scanDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace, Subsystem: subsystem, Name: "scan_duration_seconds",
			Help:    "Duration of a full scan of one kind.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"kind"}),
	}
}

// ManifestProcessed counts one manifest with its reconciliation outcome.
func (r *Recorder) ManifestProcessed(kind, outcome string) {
	r.manifests.WithLabelValues(kind, outcome).Inc()
}

// SetCounts records the number of accepted and superseded sets.
func (r *Recorder) SetCounts(kind string, accepted, superseded int) {
	r.sets.WithLabelValues(kind, "accepted").Set(float64(accepted))
	r.sets.WithLabelValues(kind, "superseded").Set(float64(superseded))
}

// ActiveProblems records the missing and corrupt file counts of the active set.
func (r *Recorder) ActiveProblems(kind string, missing, corrupt int) {
	r.missingFiles.WithLabelValues(kind).Set(float64(missing))
	r.corruptFiles.WithLabelValues(kind).Set(float64(corrupt))
}

// Selection counts a selection attempt.
func (r *Recorder) Selection(kind string, ok bool) {
	result := "selected"
	if !ok {
		result = "rejected"
	}
	r.selections.WithLabelValues(kind, result).Inc()
}

// ScanDuration observes the duration of a scan.
func (r *Recorder) ScanDuration(kind string, d time.Duration) {
	r.scanDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// Handler serves the prometheus exposition format.
func (r *Recorder) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{}))
}
