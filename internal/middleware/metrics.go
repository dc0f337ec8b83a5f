package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reelgraph_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"operation"})

	// FeedEventsWritten counts activity feed appends by event type and operation.
	FeedEventsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reelgraph_feed_events_written_total",
		Help: "Total number of feed events appended",
	}, []string{"event_type", "operation"})

	// CacheHits counts cache hits by cache name.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reelgraph_cache_hits_total",
		Help: "Total number of cache hits",
	}, []string{"cache"})

	// CacheMisses counts cache misses by cache name.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reelgraph_cache_misses_total",
		Help: "Total number of cache misses",
	}, []string{"cache"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}
