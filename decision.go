package corsfilter

// A Decision is the outcome of a [Filter]'s classification of a request.
// Only [Simple] and [Preflight] result in CORS response headers;
// the filter abstains in every other case.
type Decision int

const (
	// Passthrough means that the filter holds no Config.
	Passthrough Decision = iota
	// NoOrigin means that the request carried no Origin header.
	NoOrigin
	// DisallowedOrigin means that the request's origin is not allowed.
	DisallowedOrigin
	// DisallowedMethod means that the request's own method is missing or not
	// allowed.
	DisallowedMethod
	// Simple means that the request was a simple CORS request and
	// that the filter added the corresponding response headers.
	Simple
	// NotPreflight means that the request was neither simple nor preflight.
	NotPreflight
	// DisallowedRequestMethod means that the method listed in the request's
	// Access-Control-Request-Method header is not allowed.
	DisallowedRequestMethod
	// UnsupportedRequestHeaders means that none of the names listed in the
	// request's Access-Control-Request-Headers header is supported.
	UnsupportedRequestHeaders
	// Preflight means that the request was a successful preflight request and
	// that the filter added the corresponding response headers.
	Preflight
)

// Allowed reports whether d resulted in CORS response headers.
func (d Decision) Allowed() bool {
	return d == Simple || d == Preflight
}

func (d Decision) String() string {
	switch d {
	case Passthrough:
		return "passthrough"
	case NoOrigin:
		return "no-origin"
	case DisallowedOrigin:
		return "disallowed-origin"
	case DisallowedMethod:
		return "disallowed-method"
	case Simple:
		return "simple"
	case NotPreflight:
		return "not-preflight"
	case DisallowedRequestMethod:
		return "disallowed-request-method"
	case UnsupportedRequestHeaders:
		return "unsupported-request-headers"
	case Preflight:
		return "preflight"
	default:
		return "unknown"
	}
}
