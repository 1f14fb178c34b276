package app

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the room server's Prometheus collectors. A nil *Metrics is a
// valid no-op so tests and tools can skip registration.
type Metrics struct {
	rooms       prometheus.Gauge
	members     prometheus.Gauge
	connections prometheus.Gauge
	requests    *prometheus.CounterVec
	rejected    *prometheus.CounterVec
	dropped     prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "roombox",
			Name:      "rooms",
			Help:      "Number of live rooms",
		}),
		members: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "roombox",
			Name:      "room_members",
			Help:      "Number of connections that are members of a room",
		}),
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "roombox",
			Name:      "signal_connections",
			Help:      "Number of open signal connections",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roombox",
			Name:      "requests_total",
			Help:      "Inbound requests by type",
		}, []string{"type"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roombox",
			Name:      "requests_rejected_total",
			Help:      "Requests answered with an error event",
		}, []string{"type", "error"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "roombox",
			Name:      "frames_dropped_total",
			Help:      "Outbound frames not delivered to a closed or slow connection",
		}),
	}
	reg.MustRegister(m.rooms, m.members, m.connections, m.requests, m.rejected, m.dropped)
	return m
}

func (m *Metrics) SetRooms(n int) {
	if m == nil {
		return
	}
	m.rooms.Set(float64(n))
}

func (m *Metrics) SetMembers(n int) {
	if m == nil {
		return
	}
	m.members.Set(float64(n))
}

func (m *Metrics) SetConnections(n int) {
	if m == nil {
		return
	}
	m.connections.Set(float64(n))
}

func (m *Metrics) Request(kind string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(kind).Inc()
}

func (m *Metrics) Rejected(kind, errEvent string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(kind, errEvent).Inc()
}

func (m *Metrics) AddDropped(n int) {
	if m == nil || n == 0 {
		return
	}
	m.dropped.Add(float64(n))
}
