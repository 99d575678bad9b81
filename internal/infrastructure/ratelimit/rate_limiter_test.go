package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowExhaustsAndReportsWait(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 10; i++ {
		allowed, _ := rl.Allow("user-1", "send_message")
		assert.True(t, allowed, "token %d should be available", i)
	}

	allowed, wait := rl.Allow("user-1", "send_message")
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))
}

func TestBucketsAreIndependentPerUserAndAction(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 10; i++ {
		rl.Allow("user-1", "send_message")
	}
	allowed, _ := rl.Allow("user-1", "send_message")
	assert.False(t, allowed)

	allowed, _ = rl.Allow("user-2", "send_message")
	assert.True(t, allowed, "another user keeps a fresh bucket")

	allowed, _ = rl.Allow("user-1", "typing")
	assert.True(t, allowed, "another action keeps a fresh bucket")
}

// Cleanup sweeps buckets while Allow keeps refilling them on other goroutines;
// run with the race detector to catch unsynchronized lastRefill access.
func TestCleanupRacesAllowSafely(t *testing.T) {
	rl := NewRateLimiter()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				rl.Allow(user, "typing")
			}
		}(string(rune('a' + i)))
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			rl.Cleanup()
		}
	}()

	wg.Wait()

	allowed, _ := rl.Allow("a", "send_message")
	assert.True(t, allowed, "the limiter keeps working after concurrent sweeps")
}

func TestCleanupDropsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter()
	rl.Allow("user-1", "typing")
	rl.Allow("user-2", "typing")

	rl.mutex.Lock()
	rl.buckets["user-1:typing"].lastRefill = time.Now().Add(-2 * time.Hour)
	rl.mutex.Unlock()

	rl.Cleanup()

	rl.mutex.RLock()
	defer rl.mutex.RUnlock()
	assert.NotContains(t, rl.buckets, "user-1:typing")
	assert.Contains(t, rl.buckets, "user-2:typing")
}
