package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements Collector on a Prometheus registry.
type PrometheusCollector struct {
	streamsTotal  prometheus.Counter
	streamsActive prometheus.Gauge

	authAttemptsTotal *prometheus.CounterVec
	usersCreatedTotal prometheus.Counter
	usersDeletedTotal prometheus.Counter

	messagesAcceptedTotal   prometheus.Counter
	messagesDeliveredTotal  prometheus.Counter
	messagesReplicatedTotal *prometheus.CounterVec

	peersActive prometheus.Gauge
}

// NewPrometheusCollector registers every metric with reg.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		streamsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chat_streams_total",
			Help: "Total number of client push streams opened.",
		}),
		streamsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chat_streams_active",
			Help: "Number of currently open client push streams.",
		}),
		authAttemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_auth_attempts_total",
			Help: "Total number of authentication attempts.",
		}, []string{"result"}),
		usersCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chat_users_created_total",
			Help: "Total number of accounts created locally.",
		}),
		usersDeletedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chat_users_deleted_total",
			Help: "Total number of accounts deleted locally.",
		}),
		messagesAcceptedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chat_messages_accepted_total",
			Help: "Total number of messages accepted from local clients.",
		}),
		messagesDeliveredTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chat_messages_delivered_total",
			Help: "Total number of messages pushed to connected recipients.",
		}),
		messagesReplicatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_messages_replicated_total",
			Help: "Total number of messages received over peer firehose streams.",
		}, []string{"result"}),
		peersActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chat_peers_active",
			Help: "Number of replica peers with open streams.",
		}),
	}

	reg.MustRegister(
		c.streamsTotal,
		c.streamsActive,
		c.authAttemptsTotal,
		c.usersCreatedTotal,
		c.usersDeletedTotal,
		c.messagesAcceptedTotal,
		c.messagesDeliveredTotal,
		c.messagesReplicatedTotal,
		c.peersActive,
	)

	return c
}

func (c *PrometheusCollector) StreamOpened() {
	c.streamsTotal.Inc()
	c.streamsActive.Inc()
}

func (c *PrometheusCollector) StreamClosed() {
	c.streamsActive.Dec()
}

func (c *PrometheusCollector) AuthAttempt(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	c.authAttemptsTotal.WithLabelValues(result).Inc()
}

func (c *PrometheusCollector) UserCreated() { c.usersCreatedTotal.Inc() }
func (c *PrometheusCollector) UserDeleted() { c.usersDeletedTotal.Inc() }

func (c *PrometheusCollector) MessageAccepted()  { c.messagesAcceptedTotal.Inc() }
func (c *PrometheusCollector) MessageDelivered() { c.messagesDeliveredTotal.Inc() }

func (c *PrometheusCollector) MessageReplicated(duplicate bool) {
	result := "merged"
	if duplicate {
		result = "duplicate"
	}
	c.messagesReplicatedTotal.WithLabelValues(result).Inc()
}

func (c *PrometheusCollector) PeerAttached() { c.peersActive.Inc() }
func (c *PrometheusCollector) PeerDetached() { c.peersActive.Dec() }
