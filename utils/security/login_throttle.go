package security

import (
	"log/slog"
	"sync"
	"time"
)

// LoginThrottle tracks failed login attempts per client IP and locks an IP
// out after too many consecutive failures. A successful login clears the
// counter.
type LoginThrottle struct {
	logger       *slog.Logger
	maxFailures  int
	lockDuration time.Duration
	failures     map[string]*failureRecord
	mutex        sync.Mutex
}

type failureRecord struct {
	count       int
	lastFailure time.Time
	lockedUntil time.Time
}

const (
	defaultMaxFailures  = 5
	defaultLockDuration = 15 * time.Minute
	cleanupInterval     = 10 * time.Minute
	recordRetention     = time.Hour
)

// NewLoginThrottle creates a throttle with the default limits
func NewLoginThrottle(logger *slog.Logger) *LoginThrottle {
	t := &LoginThrottle{
		logger:       logger.With("component", "login_throttle"),
		maxFailures:  defaultMaxFailures,
		lockDuration: defaultLockDuration,
		failures:     make(map[string]*failureRecord),
	}

	go t.cleanupLoop()
	return t
}

// Allow reports whether the IP may attempt a login right now
func (t *LoginThrottle) Allow(ip string) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	record, ok := t.failures[ip]
	if !ok {
		return true
	}
	return time.Now().After(record.lockedUntil)
}

// RecordFailure registers a failed login attempt for the IP
func (t *LoginThrottle) RecordFailure(ip string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	record, ok := t.failures[ip]
	if !ok {
		record = &failureRecord{}
		t.failures[ip] = record
	}

	record.count++
	record.lastFailure = time.Now()

	if record.count >= t.maxFailures {
		record.lockedUntil = time.Now().Add(t.lockDuration)
		t.logger.Warn("client locked out after repeated login failures",
			"ip", ip,
			"failures", record.count,
			"locked_until", record.lockedUntil)
	}
}

// RecordSuccess clears the failure counter for the IP
func (t *LoginThrottle) RecordSuccess(ip string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	delete(t.failures, ip)
}

func (t *LoginThrottle) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		t.mutex.Lock()
		cutoff := time.Now().Add(-recordRetention)
		for ip, record := range t.failures {
			if record.lastFailure.Before(cutoff) && time.Now().After(record.lockedUntil) {
				delete(t.failures, ip)
			}
		}
		t.mutex.Unlock()
	}
}
