// Package metrics exports connection and transfer metrics to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/udpftp/udpftp/internal/qerr"
	"github.com/udpftp/udpftp/logging"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "udpftp"

var (
	connStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "connections_started_total",
			Help:      "Connections Started",
		},
		[]string{"dir"},
	)
	connClosed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "connections_closed_total",
			Help:      "Connections Closed",
		},
		[]string{"dir", "reason"},
	)
	connDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "connection_duration_seconds",
			Help:      "Duration of a Connection",
			Buckets:   prometheus.ExponentialBuckets(1.0/16, 2, 20),
		},
		[]string{"dir"},
	)
	connHandshakeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "handshake_duration_seconds",
			Help:      "Duration of the Handshake",
			Buckets:   prometheus.ExponentialBuckets(0.001, 1.3, 35),
		},
		[]string{"dir"},
	)
	messagesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "messages_sent_total",
			Help:      "Messages Sent, including those lost by the simulated lossy transport",
		},
		[]string{"dir", "type", "dropped"},
	)
	datagramsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "received_datagrams_dropped_total",
			Help:      "Received Datagrams Dropped",
		},
		[]string{"dir", "reason"},
	)
	windowsRetransmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "windows_retransmitted_total",
			Help:      "Windows Retransmitted",
		},
		[]string{"dir"},
	)
	transfers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "transfers_total",
			Help:      "Transfers, by outcome",
		},
		[]string{"dir", "outcome", "verdict"},
	)
	transferSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "transfer_size_bytes",
			Help:      "Size of a Transfer",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
		},
		[]string{"dir"},
	)
)

// DefaultTracer returns a callback that creates a metrics ConnectionTracer.
// It can be set on the udpftp.Config of both clients and servers.
func DefaultTracer() func(_ context.Context, p logging.Perspective, _ logging.ConnectionID) *logging.ConnectionTracer {
	return DefaultTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// DefaultTracerWithRegisterer returns a callback that creates a metrics ConnectionTracer
// using a given Prometheus registerer.
func DefaultTracerWithRegisterer(registerer prometheus.Registerer) func(_ context.Context, p logging.Perspective, _ logging.ConnectionID) *logging.ConnectionTracer {
	return func(_ context.Context, p logging.Perspective, _ logging.ConnectionID) *logging.ConnectionTracer {
		switch p {
		case logging.PerspectiveClient:
			return NewClientConnectionTracerWithRegisterer(registerer)
		case logging.PerspectiveServer:
			return NewServerConnectionTracerWithRegisterer(registerer)
		default:
			panic("invalid perspective")
		}
	}
}

// NewClientConnectionTracerWithRegisterer creates a new connection tracer for a connection
// dialed on the client side with a given Prometheus registerer.
func NewClientConnectionTracerWithRegisterer(registerer prometheus.Registerer) *logging.ConnectionTracer {
	return newConnectionTracerWithRegisterer(registerer, true)
}

// NewServerConnectionTracerWithRegisterer creates a new connection tracer for a connection
// accepted on the server side with a given Prometheus registerer.
func NewServerConnectionTracerWithRegisterer(registerer prometheus.Registerer) *logging.ConnectionTracer {
	return newConnectionTracerWithRegisterer(registerer, false)
}

func newConnectionTracerWithRegisterer(registerer prometheus.Registerer, isClient bool) *logging.ConnectionTracer {
	for _, c := range [...]prometheus.Collector{
		connStarted,
		connClosed,
		connDuration,
		connHandshakeDuration,
		messagesSent,
		datagramsDropped,
		windowsRetransmitted,
		transfers,
		transferSize,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	direction := "incoming"
	if isClient {
		direction = "outgoing"
	}

	var (
		startTime         time.Time
		handshakeComplete atomic.Bool
	)
	return &logging.ConnectionTracer{
		StartedConnection: func(_, _ net.Addr) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			startTime = time.Now()

			*tags = append(*tags, direction)
			connStarted.WithLabelValues(*tags...).Inc()
		},
		NegotiatedParameters: func(_, _ int, handshakeDuration time.Duration) {
			handshakeComplete.Store(true)

			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction)
			connHandshakeDuration.WithLabelValues(*tags...).Observe(handshakeDuration.Seconds())
		},
		SentMessage: func(typ logging.MessageType, _ logging.ByteCount, dropped bool) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction, typ.String(), strconv.FormatBool(dropped))
			messagesSent.WithLabelValues(*tags...).Inc()
		},
		DroppedDatagram: func(_ logging.ByteCount, reason logging.DatagramDropReason) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction, reason.String())
			datagramsDropped.WithLabelValues(*tags...).Inc()
		},
		RetransmittedWindow: func(_, _ logging.SequenceNumber, _ int) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction)
			windowsRetransmitted.WithLabelValues(*tags...).Inc()
		},
		CompletedTransfer: func(s logging.TransferSummary) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			// the verdict is only known to the receiver
			verdict := "none"
			if isClient && s.Err == nil {
				verdict = s.Verdict.String()
			}
			*tags = append(*tags, direction, transferOutcome(s.Err), verdict)
			transfers.WithLabelValues(*tags...).Inc()
			if s.Err == nil {
				transferSize.WithLabelValues(direction).Observe(float64(s.Bytes))
			}
		},
		ClosedConnection: func(e error) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction, closeReason(e))
			connClosed.WithLabelValues(*tags...).Inc()
			if handshakeComplete.Load() {
				connDuration.WithLabelValues(direction).Observe(time.Since(startTime).Seconds())
			}
		},
	}
}

func transferOutcome(err error) string {
	var (
		aborted  *qerr.TransferAbortedError
		notFound *qerr.FileNotFoundError
	)
	switch {
	case err == nil:
		return "completed"
	case errors.As(err, &aborted):
		return "aborted"
	case errors.As(err, &notFound):
		return "not_found"
	default:
		return "error"
	}
}

func closeReason(err error) string {
	var (
		handshakeTimeout *qerr.HandshakeTimeoutError
		rejected         *qerr.HandshakeRejectedError
		timeout          *qerr.TimeoutError
		transportErr     *qerr.TransportError
	)
	switch {
	case err == nil:
		return "closed"
	case errors.As(err, &handshakeTimeout):
		return "handshake_timeout"
	case errors.As(err, &rejected):
		return "rejected"
	case errors.As(err, &timeout):
		return "idle_timeout"
	case errors.As(err, &transportErr):
		return "transport_error"
	default:
		return "other"
	}
}
