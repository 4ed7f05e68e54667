// Package prom exports workgroup lifecycle metrics through Prometheus.
package prom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tasksync/workgroup/workgroup"
)

// Metrics is a workgroup.Observer that publishes group and task metrics to a
// Prometheus registry.
type Metrics struct {
	groupsCreated   prometheus.Counter
	groupsCancelled prometheus.Counter
	joinWait        prometheus.Histogram
	tasksStarted    prometheus.Counter
	tasksFinished   *prometheus.CounterVec
	activeTasks     prometheus.Gauge
	taskDuration    prometheus.Histogram
}

var _ workgroup.Observer = (*Metrics)(nil)

// New creates a Metrics observer and registers its collectors with reg.
// It panics if a collector with the same name is already registered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		groupsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "workgroup",
			Name:      "groups_created_total",
			Help:      "Groups created.",
		}),
		groupsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "workgroup",
			Name:      "groups_cancelled_total",
			Help:      "Groups whose shared context was canceled by a failure or an explicit Cancel.",
		}),
		joinWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "workgroup",
			Name:      "join_wait_seconds",
			Help:      "Time Wait spent blocked joining tasks.",
			Buckets:   prometheus.DefBuckets,
		}),
		tasksStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "workgroup",
			Name:      "tasks_started_total",
			Help:      "Tasks started.",
		}),
		tasksFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workgroup",
			Name:      "tasks_finished_total",
			Help:      "Tasks finished, partitioned by outcome.",
		}, []string{"outcome"}),
		activeTasks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "workgroup",
			Name:      "tasks_active",
			Help:      "Tasks currently running.",
		}),
		taskDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "workgroup",
			Name:      "task_duration_seconds",
			Help:      "Task run time from start to return.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(
		m.groupsCreated,
		m.groupsCancelled,
		m.joinWait,
		m.tasksStarted,
		m.tasksFinished,
		m.activeTasks,
		m.taskDuration,
	)
	return m
}

// GroupCreated records group creation.
func (m *Metrics) GroupCreated(_ context.Context) { m.groupsCreated.Inc() }

// GroupCancelled records the single cancellation event of a group.
func (m *Metrics) GroupCancelled(_ context.Context, _ error) { m.groupsCancelled.Inc() }

// GroupJoined records how long Wait blocked.
func (m *Metrics) GroupJoined(_ context.Context, wait time.Duration) {
	m.joinWait.Observe(wait.Seconds())
}

// TaskStarted marks a task as running.
func (m *Metrics) TaskStarted(_ context.Context) {
	m.activeTasks.Inc()
	m.tasksStarted.Inc()
}

// TaskFinished marks a task as done and classifies its outcome.
func (m *Metrics) TaskFinished(_ context.Context, dur time.Duration, err error, panicked bool) {
	m.activeTasks.Dec()
	outcome := "ok"
	switch {
	case panicked:
		outcome = "panic"
	case err != nil:
		outcome = "error"
	}
	m.tasksFinished.WithLabelValues(outcome).Inc()
	m.taskDuration.Observe(dur.Seconds())
}
