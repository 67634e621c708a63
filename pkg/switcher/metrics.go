package switcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/langswitch/pkg/locale"
)

// Switch outcomes reported in langswitch_switches_total.
const (
	resultOK          = "ok"
	resultUnsupported = "unsupported"
	resultRateLimited = "rate_limited"
	resultError       = "error"
)

// Metrics holds the switcher counters.
type Metrics struct {
	detections *prometheus.CounterVec
	switches   *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		detections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "langswitch_detections_total",
			Help: "Locale resolutions performed by the middleware, by winning source",
		}, []string{"source"}),
		switches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "langswitch_switches_total",
			Help: "Language switch attempts, by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) detection(src locale.Source) {
	m.detections.WithLabelValues(string(src)).Inc()
}

func (m *Metrics) switched(result string) {
	m.switches.WithLabelValues(result).Inc()
}

// Detections exposes the detection counter for a source.
func (m *Metrics) Detections(src locale.Source) prometheus.Counter {
	return m.detections.WithLabelValues(string(src))
}

// Switches exposes the switch counter for a result label.
func (m *Metrics) Switches(result string) prometheus.Counter {
	return m.switches.WithLabelValues(result)
}
