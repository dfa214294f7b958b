package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики проходов планирования.
var (
	// PlanningPassesTotal — число выполненных проходов планирования.
	PlanningPassesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "thewho_planner_planning_passes_total",
		Help: "Число выполненных проходов планирования.",
	})

	// OperationsPlannedTotal — число операций, получивших плановый интервал.
	OperationsPlannedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "thewho_planner_operations_planned_total",
		Help: "Число операций, получивших плановый интервал.",
	})

	// OperationsSkippedTotal — число пропущенных операций по причинам.
	OperationsSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thewho_planner_operations_skipped_total",
		Help: "Число операций, пропущенных проходом планирования.",
	}, []string{"reason"})

	// PlanningDuration — длительность прохода планирования в секундах.
	PlanningDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "thewho_planner_planning_duration_seconds",
		Help:    "Длительность прохода планирования.",
		Buckets: prometheus.DefBuckets,
	})

	// AlertsRaisedTotal — число сформированных алертов по важности.
	AlertsRaisedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thewho_planner_alerts_raised_total",
		Help: "Число сформированных алертов.",
	}, []string{"severity"})
)
