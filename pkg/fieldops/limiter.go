package fieldops

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-actor request limiters: actor id -> limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(actorID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[actorID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[actorID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(actorID string, actorRate rate.Limit, actorBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[actorID] = rate.NewLimiter(actorRate, actorBurst)
}
