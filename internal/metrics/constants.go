package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Inventory query metric names
const (
	MetricNameInventoryQueriesTotal  = "inventory_queries_total"
	MetricNameInventoryQueryDuration = "inventory_query_duration_seconds"
	MetricNameInventoryRowsReturned  = "inventory_rows_returned"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Inventory query metric help text
const (
	HelpTextInventoryQueriesTotal  = "Total number of inventory statements executed"
	HelpTextInventoryQueryDuration = "Inventory statement latency in seconds"
	HelpTextInventoryRowsReturned  = "Rows returned per inventory statement"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelKind    = "kind"
	LabelOutcome = "outcome"
)

// Outcome label values for inventory queries
const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeConnection = "connection_error"
	OutcomeQuery      = "query_error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// QueryLatencyBuckets covers single statements, from 0.5ms to 2.5s
var QueryLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// RowCountBuckets for page and filter result sizes
var RowCountBuckets = []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000}
