package constants

import "os"

// GetPort returns the port the identification server listens on.
func GetPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

// RequestIDHeader carries the per-request id assigned by the server.
const RequestIDHeader = "X-Request-Id"

// Server rate limit: steady requests per second and burst size.
const (
	RateLimitPerSecond = 50
	RateLimitBurst     = 100
)
