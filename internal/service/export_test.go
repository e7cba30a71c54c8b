package service

import "time"

// SetClaimClock pins the orchestrator's clock in tests.
func SetClaimClock(s ClaimService, now func() time.Time) {
	if cs, ok := s.(*claimService); ok {
		cs.now = now
	}
}

// SetRateLimitClock pins the rate limiter's clock in tests.
func SetRateLimitClock(s RateLimitService, now func() time.Time) {
	if rs, ok := s.(*rateLimitService); ok {
		rs.now = now
	}
}
