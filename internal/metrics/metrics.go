// Package metrics exposes Prometheus counters for the Cloud API calls and the
// recognition pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voicetranslation"

var (
	// gRPC client metrics
	ClientRPCs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "grpc_client",
			Name:      "handled_total",
			Help:      "Total number of RPCs completed by the client, by method and status code",
		},
		[]string{"method", "code"},
	)

	StreamMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "grpc_client",
			Name:      "stream_msg_sent_total",
			Help:      "Total number of stream messages sent by the client",
		},
		[]string{"method"},
	)

	StreamMessagesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "grpc_client",
			Name:      "stream_msg_received_total",
			Help:      "Total number of stream messages received by the client",
		},
		[]string{"method"},
	)

	// Speech metrics
	AudioBytesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "speech",
			Name:      "audio_bytes_sent_total",
			Help:      "Total number of audio bytes sent for recognition",
		},
	)

	RecognitionResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "speech",
			Name:      "results_total",
			Help:      "Total number of recognition results written",
		},
		[]string{"type"}, // "interim" or "final"
	)

	// Translation metrics
	Translations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "translation",
			Name:      "requests_total",
			Help:      "Total number of transcript translations",
		},
		[]string{"result"}, // "success" or "failure"
	)
)
