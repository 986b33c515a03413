package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EntityWrites counts successful create/update/delete operations per entity.
	EntityWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogly_entity_writes_total",
		Help: "Total number of successful entity write operations",
	}, []string{"entity", "operation"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogly_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}
