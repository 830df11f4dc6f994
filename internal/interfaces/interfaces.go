package interfaces

//go:generate mockgen -source=interfaces.go -destination=../mocks/mocks.go -package=mocks

import (
	"hashcash/internal/hashcash"
)

// HashcashService creates and verifies hashcash1 proofs
type HashcashService interface {
	Create(challenge hashcash.Challenge, limit, timeoutSeconds int) (hashcash.Key, error)
	Verify(key hashcash.Key, challenge hashcash.Challenge) (int, error)
}

// RateLimiter decides whether a client address may be served
type RateLimiter interface {
	IsAllowed(ip string) bool
}

// MetricsCollector collects service counters
type MetricsCollector interface {
	IncActiveConnections()
	DecActiveConnections()
	IncTotalConnections()
	IncRejectedConnections()
	IncFailedRequests()
	AddSearch(candidates, improvements int64)
	IncVerifications()
	GetStats() map[string]int64
}

// Logger is the application logger
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
