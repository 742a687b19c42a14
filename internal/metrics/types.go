package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service implements the Metrics interface backed by Prometheus.
type Service struct {
	APIRequests    prometheus.Counter
	APIFailures    prometheus.Counter
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	VerifyFailures prometheus.Counter
}
