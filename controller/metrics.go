package controller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	changesTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "sections",
		Name:      "changes_total",
		Help:      "Upstream change notifications applied, by kind",
	}, []string{"controller", "kind"})

	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "sections",
		Name:      "events_total",
		Help:      "List events emitted to consumers, by kind",
	}, []string{"controller", "kind"})

	outdatedFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "sections",
		Name:      "outdated_fallback_total",
		Help:      "Removals that needed a full scan because the object's sort key had changed",
	}, []string{"controller"})

	sectionCount = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Namespace: "sections",
		Name:      "sections",
		Help:      "Number of non-empty sections",
	}, []string{"controller"})

	objectCount = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Namespace: "sections",
		Name:      "objects",
		Help:      "Number of objects across all sections",
	}, []string{"controller"})
)
