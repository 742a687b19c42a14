package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Metrics = (*Service)(nil)

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		APIRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "brackup_api_requests_total",
			Help: "The total number of requests issued to the tournament API.",
		}),
		APIFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "brackup_api_failures_total",
			Help: "The total number of tournament API requests that failed.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "brackup_cache_hits_total",
			Help: "The total number of list reads served from a resource cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "brackup_cache_misses_total",
			Help: "The total number of list reads that went to the network.",
		}),
		VerifyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "brackup_token_verify_failures_total",
			Help: "The total number of failed token verifications.",
		}),
	}

	reg.MustRegister(
		s.APIRequests,
		s.APIFailures,
		s.CacheHits,
		s.CacheMisses,
		s.VerifyFailures,
	)

	return s
}

func (s *Service) IncAPIRequests() {
	s.APIRequests.Inc()
}

func (s *Service) IncAPIFailures() {
	s.APIFailures.Inc()
}

func (s *Service) IncCacheHits() {
	s.CacheHits.Inc()
}

func (s *Service) IncCacheMisses() {
	s.CacheMisses.Inc()
}

func (s *Service) IncVerifyFailures() {
	s.VerifyFailures.Inc()
}
