package internal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Service-level counters, exposed via promhttp on the health port.
var (
	AlertTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lineinsight_alert_transitions_total",
		Help: "Alert lifecycle transitions by operation and outcome.",
	}, []string{"operation", "outcome"})

	KpiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lineinsight_kpi_requests_total",
		Help: "KPI computations served, by KPI name.",
	}, []string{"kpi"})

	FacilityAggregationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lineinsight_facility_aggregations_total",
		Help: "Facility metric aggregations computed (cache misses).",
	})
)
