package setup

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jongio/bonsai-core/clusterurl"
)

// Metrics counts resolution outcomes.
type Metrics struct {
	resolutions     *prometheus.CounterVec
	portCorrections *prometheus.CounterVec
}

// NewMetrics registers the setup counters with reg. Registering twice against
// the same registry reuses the existing counters.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	resolutions, err := registerCounterVec(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bonsai_url_resolutions_total",
			Help: "Cluster URL resolutions by the source that was used",
		},
		[]string{"source"},
	))
	if err != nil {
		return nil, err
	}

	portCorrections, err := registerCounterVec(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bonsai_url_port_corrections_total",
			Help: "Port correction outcomes for primary cluster URLs",
		},
		[]string{"action"},
	))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		resolutions:     resolutions,
		portCorrections: portCorrections,
	}, nil
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

// observe is a no-op on a nil receiver.
func (m *Metrics) observe(res clusterurl.Resolution) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(string(res.Source)).Inc()
	if res.PrimaryUsed {
		m.portCorrections.WithLabelValues(string(res.PortAction)).Inc()
	}
}
