package service

import (
	"github.com/google/uuid"

	"github.com/maxviazov/courtside-stats/internal/model"
)

// Option tweaks the collaborators a service is built with.
type Option func(*options)

type options struct {
	now     Clock
	newID   IDGenerator
	metrics Metrics
}

func WithClock(c Clock) Option             { return func(o *options) { o.now = c } }
func WithIDGenerator(g IDGenerator) Option { return func(o *options) { o.newID = g } }

// WithMetrics records domain events on m. Without it the services emit nothing.
func WithMetrics(m Metrics) Option { return func(o *options) { o.metrics = m } }

func buildOptions(opts []Option) options {
	o := options{now: systemClock, newID: uuid.NewString, metrics: noMetrics{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = noMetrics{}
	}
	return o
}

type noMetrics struct{}

func (noMetrics) ShotRecorded(model.ShotType, bool) {}
func (noMetrics) StatRecorded(model.StatKey)        {}
func (noMetrics) GameCreated()                      {}
func (noMetrics) GameCompleted()                    {}
