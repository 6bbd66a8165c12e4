package catalogue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	boardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vnfd_catalogue_packages_boarded_total",
		Help: "Number of descriptor packages accepted into the catalogue.",
	})

	rejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vnfd_catalogue_packages_rejected_total",
		Help: "Number of descriptor packages rejected at boarding.",
	}, []string{"reason"})

	packagesStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vnfd_catalogue_packages_stored",
		Help: "Number of descriptor packages currently stored.",
	})
)
