package server

import "time"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// HTTP header names
const (
	HeaderRequestID          = "X-Request-ID"
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderXSSProtection      = "X-XSS-Protection"
	HeaderReferrerPolicy     = "Referrer-Policy"
	HeaderCacheControl       = "Cache-Control"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
	HeaderValueNoStore              = "no-store"
)

// Route paths
const (
	RouteHealthz    = "/healthz"
	RouteReadyz     = "/readyz"
	RouteVersion    = "/version"
	RouteMetrics    = "/metrics"
	RouteSwagger    = "/swagger/*"
	RouteItems      = "/items"
	RouteItemFilter = "/filter"
	RouteItemByID   = "/item/{id}"
)

// Paths skipped by the request logger
var quietPaths = []string{
	RouteHealthz,
	RouteReadyz,
	RouteMetrics,
}

// HTTP server timeouts
const (
	ReadHeaderTimeout = 5 * time.Second
	WriteTimeout      = 15 * time.Second
	IdleTimeout       = 60 * time.Second
)

// CORS preflight cache lifetime in seconds
const CORSMaxAge = 300
