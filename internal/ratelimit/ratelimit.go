package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"hashcash/internal/config"
)

// client tracks one IP address.
type client struct {
	limiter  *rate.Limiter
	denied   int
	lastSeen time.Time
}

// IPControl limits connections per IP with a token bucket and blacklists
// addresses that keep hitting the limit.
type IPControl struct {
	mu        sync.Mutex
	clients   map[string]*client
	blacklist map[string]time.Time
	config    *config.Config
	now       func() time.Time
	done      chan struct{}
	stopOnce  sync.Once
}

// NewIPControl starts an IPControl with a background cleanup loop.
// Call Stop to end it.
func NewIPControl(cfg *config.Config) *IPControl {
	ic := newIPControl(cfg, time.Now)
	go ic.cleanupLoop(time.Minute)
	return ic
}

func newIPControl(cfg *config.Config, now func() time.Time) *IPControl {
	return &IPControl{
		clients:   make(map[string]*client),
		blacklist: make(map[string]time.Time),
		config:    cfg,
		now:       now,
		done:      make(chan struct{}),
	}
}

// IsAllowed reports whether ip may be served now
func (ic *IPControl) IsAllowed(ip string) bool {
	ic.mu.Lock()
	defer ic.mu.Unlock()

	now := ic.now()

	if bannedUntil, exists := ic.blacklist[ip]; exists {
		if now.Before(bannedUntil) {
			return false
		}
		delete(ic.blacklist, ip)
	}

	c, ok := ic.clients[ip]
	if !ok {
		c = &client{
			limiter: rate.NewLimiter(rate.Limit(ic.config.RequestsPerMinute/60.0), ic.config.Burst),
		}
		ic.clients[ip] = c
	}
	c.lastSeen = now

	if !c.limiter.AllowN(now, 1) {
		c.denied++
		if c.denied >= ic.config.BlacklistThreshold {
			ic.blacklist[ip] = now.Add(ic.config.BlacklistDuration)
			delete(ic.clients, ip)
		}
		return false
	}
	c.denied = 0
	return true
}

// Stop ends the cleanup loop
func (ic *IPControl) Stop() {
	ic.stopOnce.Do(func() { close(ic.done) })
}

func (ic *IPControl) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ic.cleanup()
		case <-ic.done:
			return
		}
	}
}

// cleanup drops expired bans and clients idle for longer than the
// blacklist duration
func (ic *IPControl) cleanup() {
	ic.mu.Lock()
	defer ic.mu.Unlock()

	now := ic.now()
	for ip, bannedUntil := range ic.blacklist {
		if now.After(bannedUntil) {
			delete(ic.blacklist, ip)
		}
	}

	cutoff := now.Add(-ic.config.BlacklistDuration)
	for ip, c := range ic.clients {
		if c.lastSeen.Before(cutoff) {
			delete(ic.clients, ip)
		}
	}
}
