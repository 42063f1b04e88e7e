package client

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "rpc_client"
)

// Error kinds used as the "kind" label of Metrics.Errors.
const (
	errKindEncode        = "encode"
	errKindCommunication = "communication"
	errKindDecode        = "decode"
	errKindProtocol      = "protocol"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Number of calls made, by action.
	Requests metrics.Counter `metrics_labels:"action"`
	// Number of failed calls, by action and kind of failure.
	Errors metrics.Counter `metrics_labels:"action, kind"`
	// Time between sending a request and decoding its reply, in seconds.
	RequestDuration metrics.Histogram `metrics_labels:"action" metrics_buckettype:"exprange" metrics_bucketsizes:"0.001, 10, 8"`
}

// PrometheusMetrics returns Metrics built using the Prometheus client library.
// Optionally, labels can be provided along with their values ("foo",
// "fooValue").
func PrometheusMetrics(namespace string, labelsAndValues ...string) *Metrics {
	labels := []string{}
	for i := 0; i < len(labelsAndValues); i += 2 {
		labels = append(labels, labelsAndValues[i])
	}
	return &Metrics{
		Requests: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "requests",
			Help:      "Number of calls made, by action.",
		}, append(labels, "action")).With(labelsAndValues...),
		Errors: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "errors",
			Help:      "Number of failed calls, by action and kind of failure.",
		}, append(labels, "action", "kind")).With(labelsAndValues...),
		RequestDuration: prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "request_duration",
			Help:      "Time between sending a request and decoding its reply, in seconds.",

			Buckets: stdprometheus.ExponentialBucketsRange(0.001, 10, 8),
		}, append(labels, "action")).With(labelsAndValues...),
	}
}

func NopMetrics() *Metrics {
	return &Metrics{
		Requests:        discard.NewCounter(),
		Errors:          discard.NewCounter(),
		RequestDuration: discard.NewHistogram(),
	}
}
