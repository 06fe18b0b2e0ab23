package tracing

// Context identifies a single request as it moves through the handler stack.
type Context struct {
	RequestID     string `json:"request_id"`
	RequestSource string `json:"request_source"`
}
