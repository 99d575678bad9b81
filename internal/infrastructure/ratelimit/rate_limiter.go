package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a refilling token bucket guarding a single user action.
type TokenBucket struct {
	tokens     int
	maxTokens  int
	refillRate int
	refillTime time.Duration
	lastRefill time.Time
	mutex      sync.Mutex
}

// RateLimiter keys token buckets by "user:action".
type RateLimiter struct {
	buckets map[string]*TokenBucket
	mutex   sync.RWMutex
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*TokenBucket),
	}
}

func NewTokenBucket(maxTokens, refillRate int, refillTime time.Duration) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
		lastRefill: time.Now(),
	}
}

// Allow consumes a token if one is available, otherwise reports how long to
// wait until the next refill.
func (tb *TokenBucket) Allow() (bool, time.Duration) {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	now := time.Now()

	elapsed := now.Sub(tb.lastRefill)
	tokensToAdd := int(elapsed/tb.refillTime) * tb.refillRate

	if tokensToAdd > 0 {
		tb.tokens += tokensToAdd
		if tb.tokens > tb.maxTokens {
			tb.tokens = tb.maxTokens
		}
		tb.lastRefill = now
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true, 0
	}

	nextRefill := tb.lastRefill.Add(tb.refillTime)
	return false, nextRefill.Sub(now)
}

// idleSince reports how long the bucket has gone without a refill. Reads of
// lastRefill must hold the bucket mutex because Allow mutates it.
func (tb *TokenBucket) idleSince(now time.Time) time.Duration {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()
	return now.Sub(tb.lastRefill)
}

func (rl *RateLimiter) Allow(userID, action string) (bool, time.Duration) {
	key := userID + ":" + action

	rl.mutex.RLock()
	bucket, exists := rl.buckets[key]
	rl.mutex.RUnlock()

	if !exists {
		rl.mutex.Lock()
		if bucket, exists = rl.buckets[key]; !exists {
			switch action {
			case "send_message":
				// 10 messages per minute
				bucket = NewTokenBucket(10, 1, 6*time.Second)
			case "typing":
				// 30 typing events per minute
				bucket = NewTokenBucket(30, 1, 2*time.Second)
			default:
				// 20 actions per minute
				bucket = NewTokenBucket(20, 1, 3*time.Second)
			}
			rl.buckets[key] = bucket
		}
		rl.mutex.Unlock()
	}

	return bucket.Allow()
}

// Cleanup drops buckets idle for over an hour.
func (rl *RateLimiter) Cleanup() {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	for key, bucket := range rl.buckets {
		if bucket.idleSince(now) > time.Hour {
			delete(rl.buckets, key)
		}
	}
}

func (rl *RateLimiter) StartCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			rl.Cleanup()
		}
	}()
}
