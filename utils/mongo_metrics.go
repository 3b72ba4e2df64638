package utils

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/event"
)

var (
	mongoCommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongodb_command_duration_seconds",
			Help:    "Duration of MongoDB commands",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"command"},
	)

	mongoCommandErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongodb_command_errors_total",
			Help: "Total number of failed MongoDB commands",
		},
		[]string{"command"},
	)
)

// commandNames remembers the command name per in-flight request id so the
// succeeded/failed events can be labelled.
var commandNames sync.Map

// CommandMonitor returns an event monitor recording per-command duration and
// failures into the prometheus collectors.
func CommandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(_ context.Context, evt *event.CommandStartedEvent) {
			commandNames.Store(evt.RequestID, evt.CommandName)
		},
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			if name, ok := commandNames.LoadAndDelete(evt.RequestID); ok {
				mongoCommandDuration.WithLabelValues(name.(string)).
					Observe(time.Duration(evt.Duration).Seconds())
			}
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			if name, ok := commandNames.LoadAndDelete(evt.RequestID); ok {
				mongoCommandErrors.WithLabelValues(name.(string)).Inc()
			}
		},
	}
}
