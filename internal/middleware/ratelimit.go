package middleware

import (
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"summarizer/backend/internal/model"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// IPRateLimiter manages per-IP rate limiting
type IPRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
}

// NewIPRateLimiter creates a new IP-based rate limiter
func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		rate:  r,
		burst: burst,
	}
}

// GetLimiter returns the rate limiter for a given IP
func (l *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	if limiter, ok := l.limiters.Load(ip); ok {
		return limiter.(*rate.Limiter)
	}
	limiter, _ := l.limiters.LoadOrStore(ip, rate.NewLimiter(l.rate, l.burst))
	return limiter.(*rate.Limiter)
}

// DailyQuota manages global daily request quota
type DailyQuota struct {
	count   int64
	limit   int64
	resetAt time.Time
	mu      sync.Mutex
}

// NewDailyQuota creates a new daily quota manager. A non-positive limit
// returns nil, which RateLimitMiddleware treats as unlimited.
func NewDailyQuota(limit int64) *DailyQuota {
	if limit <= 0 {
		return nil
	}
	return &DailyQuota{
		limit:   limit,
		resetAt: nextMidnightUTC(),
	}
}

// Allow checks if a request is allowed and increments the counter
func (q *DailyQuota) Allow() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	// Check if we need to reset
	if time.Now().After(q.resetAt) {
		log.Printf("[QUOTA] Daily quota reset. Previous count: %d", q.count)
		q.count = 0
		q.resetAt = nextMidnightUTC()
	}

	if q.count >= q.limit {
		return false
	}
	q.count++
	return true
}

// Remaining returns the remaining quota
func (q *DailyQuota) Remaining() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.limit - q.count
}

// ResetAt returns when the counter next resets
func (q *DailyQuota) ResetAt() time.Time {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.resetAt
}

// Count returns the current count
func (q *DailyQuota) Count() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// nextMidnightUTC returns the next midnight in UTC
func nextMidnightUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
}

// RateLimitMiddleware applies the per-IP token bucket first, then the global
// daily quota, so requests throttled per IP never consume quota. Either may
// be nil to disable it. Rejections are 429 with Retry-After and the usual
// error body.
func RateLimitMiddleware(ipLimiter *IPRateLimiter, quota *DailyQuota) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reservation *rate.Reservation
		if ipLimiter != nil {
			reservation = ipLimiter.GetLimiter(c.ClientIP()).Reserve()
			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()
				c.Header("Retry-After", strconv.Itoa(int(delay.Seconds())+1))
				c.AbortWithStatusJSON(http.StatusTooManyRequests, model.ErrorResponse{
					Detail: "Too many requests. Please slow down.",
				})
				return
			}
		}

		if quota != nil && !quota.Allow() {
			// hand the token back; the request never ran
			if reservation != nil {
				reservation.Cancel()
			}
			retryAfter := int(time.Until(quota.ResetAt()).Seconds()) + 1
			log.Printf("[QUOTA] Daily quota exhausted, rejecting %s", c.ClientIP())
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, model.ErrorResponse{
				Detail: "Daily request quota exceeded. Please try again tomorrow.",
			})
			return
		}

		c.Next()
	}
}
