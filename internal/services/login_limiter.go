package services

import (
	"strings"
	"sync"
	"time"

	"github.com/praiadomeio/app-ampm/internal/logging"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// idleLimiterTTL is how long an unused per-username bucket is kept
const idleLimiterTTL = 30 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginLimiter throttles login attempts per username with a token bucket
type LoginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	now      func() time.Time
	logger   *logging.SafeLogger
}

// NewLoginLimiter allows burst attempts at once, refilled at perSecond
func NewLoginLimiter(perSecond float64, burst int) *LoginLimiter {
	return &LoginLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		now:      time.Now,
		logger:   logging.Logger.Named("login_limiter"),
	}
}

// Allow reports whether another attempt for username may proceed now
func (l *LoginLimiter) Allow(username string) bool {
	key := strings.ToLower(strings.TrimSpace(username))
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.evictIdle(now)

	entry, ok := l.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now

	if entry.limiter.AllowN(now, 1) {
		return true
	}

	l.logger.Warn("login attempt throttled", zap.String("username", key))
	return false
}

// Reset forgets the bucket for username after a successful login
func (l *LoginLimiter) Reset(username string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.limiters, strings.ToLower(strings.TrimSpace(username)))
}

func (l *LoginLimiter) evictIdle(now time.Time) {
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > idleLimiterTTL {
			delete(l.limiters, key)
		}
	}
}
