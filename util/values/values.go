package values

// Operation status strings carried on every server response. util.StatusCode
// maps them to HTTP status codes.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
)

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderRequestSource = "X-Request-Source"
)

type contextKey string

const (
	ContextTracingKey  = contextKey("tracing-context")
	ContextIdentityKey = contextKey("identity")
)
