package constants

import "fmt"

// Redis key layout. Everything lives under the cinebook: prefix so the
// instance can share a Redis with other services.
const (
	showDetailKeyFmt  = "cinebook:shows:detail:%s"
	movieDetailKeyFmt = "cinebook:movies:detail:%s"
	RateLimitKeyFmt   = "cinebook:ratelimit:%s:%s"
)

// ShowDetailKey returns the cache key for a show detail payload,
// including its booked-seat set. Invalidated on every new booking.
func ShowDetailKey(showID string) string {
	return fmt.Sprintf(showDetailKeyFmt, showID)
}

// MovieDetailKey returns the cache key for a movie detail payload with
// its shows grouped by theater. Invalidated when a show is scheduled.
func MovieDetailKey(movieID string) string {
	return fmt.Sprintf(movieDetailKeyFmt, movieID)
}
