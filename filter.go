package corsfilter

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/jrfom/corsfilter/internal/headers"
	"github.com/jrfom/corsfilter/internal/methods"
)

// A Filter is a CORS filter.
// Call its [*Filter.Wrap] method to apply it to a [http.Handler].
//
// A Filter never rejects a request: it either adds CORS response headers or
// abstains, and then always delegates to the handler it wraps.
// The absence of CORS headers is itself the rejection signal to browsers,
// which then enforce the same-origin policy.
// A Filter never sets a status code and never writes a response body.
//
// The zero value is ready to use but is a mere "passthrough" filter,
// i.e. a filter that simply delegates to the handler(s) it wraps.
// To obtain a proper CORS filter, call [NewFilter] or [WideOpenFilter].
//
// A Filter must not be copied after first use.
//
// Filters are safe for concurrent use by multiple goroutines.
type Filter struct {
	cfg    atomic.Pointer[Config]
	logger atomic.Pointer[slog.Logger]
}

// NewFilter creates a CORS filter that behaves in accordance with cfg.
// The filter holds cfg itself rather than a copy of it,
// so later mutations of cfg take effect on subsequent requests.
// If cfg is nil, the result is a passthrough filter.
func NewFilter(cfg *Config) *Filter {
	var f Filter
	f.cfg.Store(cfg)
	return &f
}

// WideOpenFilter creates a CORS filter configured by [WideOpenConfig].
func WideOpenFilter() *Filter {
	return NewFilter(WideOpenConfig())
}

// Reconfigure makes f behave in accordance with cfg from now on.
// If cfg is nil, it turns f into a passthrough filter.
// You can safely reconfigure a filter even as it's concurrently processing
// requests.
func (f *Filter) Reconfigure(cfg *Config) {
	f.cfg.Store(cfg)
}

// Config returns the Config that f currently holds,
// or nil if f is a passthrough filter.
// Mutating the result alters f's behavior.
func (f *Filter) Config() *Config {
	return f.cfg.Load()
}

// SetLogger makes f trace every decision it makes to l, at debug level.
// A nil l turns tracing off, which is the default.
func (f *Filter) SetLogger(l *slog.Logger) {
	f.logger.Store(l)
}

// Logger returns the logger set by [*Filter.SetLogger], if any.
func (f *Filter) Logger() *slog.Logger {
	return f.logger.Load()
}

// Wrap applies the CORS filter to the specified handler.
// Its signature makes it usable as router middleware, e.g. with chi's Use.
func (f *Filter) Wrap(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.Apply(w.Header(), r.Method, r.Header)
		h.ServeHTTP(w, r)
	})
}

// Apply classifies a request, given its method and headers, and adds the
// corresponding CORS headers (if any) to resHdrs. It reports the decision
// it reached. Apply only ever adds values to resHdrs;
// it never overwrites values that are already present.
//
// Apply does not delegate to anything; see [*Filter.Wrap] for that.
func (f *Filter) Apply(resHdrs http.Header, method string, reqHdrs http.Header) Decision {
	cfg := f.cfg.Load()
	if cfg == nil {
		return Passthrough
	}
	origin, found := headers.First(reqHdrs, headers.Origin)
	var d Decision
	if found {
		d = cfg.decide(resHdrs, method, reqHdrs, origin)
	} else {
		// CORS only applies to requests that declare their origin.
		d = NoOrigin
	}
	if l := f.logger.Load(); l != nil {
		l.Debug("cors decision",
			"decision", d.String(),
			"method", method,
			"origin", origin,
		)
	}
	return d
}

// decide implements the CORS request-classification algorithm
// for a request that carries an Origin header.
// See https://www.w3.org/TR/2014/REC-cors-20140116/#resource-processing-model.
func (cfg *Config) decide(
	resHdrs http.Header,
	method string,
	reqHdrs http.Header,
	origin string,
) Decision {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	if !cfg.allowsOrigin(origin) {
		return DisallowedOrigin
	}
	// An empty method never is a member of the methods set,
	// so requests without one never reach the simple-request branch.
	if method == "" || !cfg.methods.Contains(method) {
		return DisallowedMethod
	}

	if methods.IsSimple(method) {
		// section 6.1, step 3
		cfg.addOriginAndCredentials(resHdrs, origin)
		// section 6.1, step 4
		if cfg.exposedHeaders.Size() > 0 {
			resHdrs.Add(headers.ACEH, cfg.exposedHeaders.String())
		}
		return Simple
	}

	acrm, found := headers.First(reqHdrs, headers.ACRM)
	if !methods.IsOptions(method) || !found {
		return NotPreflight
	}

	// section 6.2, steps 3 and 5
	if !cfg.methods.Contains(acrm) {
		return DisallowedRequestMethod
	}

	// section 6.2, steps 4 and 6
	//
	// Note that a single supported name suffices; the remaining names, if
	// any, need not be supported. Also note that a preflight request without
	// any Access-Control-Request-Headers header fails this check.
	names := headers.Elements(reqHdrs[headers.ACRH])
	if !headers.AnyIn(cfg.headers, names) {
		return UnsupportedRequestHeaders
	}

	// section 6.2, step 7
	cfg.addOriginAndCredentials(resHdrs, origin)
	// section 6.2, step 8
	if cfg.maxAge >= 0 {
		resHdrs.Add(headers.ACMA, strconv.Itoa(cfg.maxAge))
	}
	// section 6.2, step 9
	resHdrs.Add(headers.ACAM, cfg.methods.String())
	// section 6.2, step 10
	resHdrs.Add(headers.ACAH, cfg.headers.String())
	return Preflight
}

// Precondition: cfg.mu is held.
func (cfg *Config) allowsOrigin(origin string) bool {
	return cfg.origins.IsSingleton(headers.ValueWildcard) ||
		cfg.origins.Contains(origin)
}

// Precondition: cfg.mu is held.
func (cfg *Config) addOriginAndCredentials(resHdrs http.Header, origin string) {
	// The origin is reflected even when all origins are allowed,
	// because browsers reject the wildcard in credentialed responses.
	resHdrs.Add(headers.ACAO, origin)
	if cfg.credentials {
		resHdrs.Add(headers.ACAC, headers.ValueTrue)
	}
}
