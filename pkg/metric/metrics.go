package metric

import "time"

type (
	Metrics interface {
		With(labels Labels) Metrics
		WithLabel(name string, value any) Metrics
		Increment(key string)
		Count(key string, count int)
		Duration(key string, duration time.Duration)
	}

	Labels map[string]any
)
