// Package metrics defines the Prometheus collectors exposed on the
// admin endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var (
	// Vision
	VisionDetections = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "agent_vision_detections_total",
		Help: "Total visual ticks with a detected face",
	})
	VisionMisses = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "agent_vision_misses_total",
		Help: "Total visual ticks with no face detected",
	})

	// Uplink
	FramesUplinked = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Name: "agent_frames_uplinked_total",
		Help: "Frames sent on the uplink by kind",
	}, []string{"kind"})
	VideoFramesCoalesced = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "agent_video_frames_coalesced_total",
		Help: "Video frames skipped because of backpressure or no visible change",
	})

	// Fusion
	FusionsTotal = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "agent_fusions_total",
		Help: "Total multimodal fusion operations",
	})

	// Playback
	PlaybackQueueDepth = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Name: "agent_playback_queue_depth",
		Help: "Pending PCM chunks in the playback queue",
	})

	// Transport
	TransportState = promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
		Name: "agent_transport_state",
		Help: "Current transport connection state (1 for the active state)",
	}, []string{"state"})
)

// Handler returns the scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// SetTransportState marks state as the single active transport state.
func SetTransportState(state string, all []string) {
	for _, s := range all {
		v := 0.0
		if s == state {
			v = 1.0
		}
		TransportState.WithLabelValues(s).Set(v)
	}
}
