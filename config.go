package corsfilter

import (
	"net/http"
	"sync"

	"github.com/jrfom/corsfilter/internal/headers"
	"github.com/jrfom/corsfilter/internal/util"
)

// A Config configures a [Filter]. The mechanics of its various settings are
// explained below.
//
// # Origins
//
// Origins are compared to the value of the request's Origin header
// byte for byte; in particular, the comparison is case-sensitive.
//
//	cfg.AddOrigin("https://example.com")
//
// A single asterisk denotes all origins, but only if it is the sole element
// of the set of origins:
//
//	cfg.SetOrigins("*")
//
// Even then, the filter reflects the request's origin in the
// Access-Control-Allow-Origin header rather than replying with an asterisk.
//
// # Methods
//
// Methods are compared case-sensitively to both the request's own method and,
// for preflight requests, the value of the Access-Control-Request-Method
// header. A request whose own method is not allowed never gets any
// CORS response headers, so OPTIONS must be allowed for preflight to succeed.
//
// # Headers
//
// Headers lists the request-header names that the server supports.
// Header names are case-insensitive and stored in lowercase.
// A preflight request succeeds as long as at least one of the names it lists
// in its Access-Control-Request-Headers header is supported.
//
// # Exposed headers
//
// Exposed headers lists the response-header names that clients are allowed
// to read. Exposing a header also marks it as supported
// (see [Config.ExposeHeader]); ceasing to support a header also stops
// exposing it (see [Config.UnsupportHeader]).
//
// # Credentials
//
// When credentials are supported (the default), the filter includes
// "Access-Control-Allow-Credentials: true" in every response to an allowed
// CORS request.
//
// # Preflight max age
//
// The preflight max age (1800 seconds by default) is the number of seconds
// browsers may cache the result of a successful preflight. A negative value
// omits the Access-Control-Max-Age header altogether.
//
// A Config is safe for concurrent use by multiple goroutines: a [Filter] may
// keep processing requests while the Config it holds is being mutated.
// A Config must not be copied after first use; use [Config.Clone] instead.
type Config struct {
	mu             sync.RWMutex
	origins        util.SortedSet
	methods        util.SortedSet
	headers        util.LowerSet
	exposedHeaders util.LowerSet
	credentials    bool
	maxAge         int
}

const (
	defaultCredentials = true
	defaultMaxAge      = 1800 // seconds
)

// NewConfig returns a Config with no origins, methods, headers or exposed
// headers, with credentials supported and a preflight max age of 1800
// seconds.
func NewConfig() *Config {
	return &Config{
		credentials: defaultCredentials,
		maxAge:      defaultMaxAge,
	}
}

// WideOpenConfig returns a very permissive Config:
// all origins; methods GET, POST, HEAD and OPTIONS;
// headers Origin, Access-Control-Request-Method,
// Access-Control-Request-Headers, Accept, X-Requested-With and Content-Type;
// default settings otherwise.
func WideOpenConfig() *Config {
	cfg := NewConfig()
	cfg.AddOrigin(headers.ValueWildcard)

	cfg.AddMethod(http.MethodGet)
	cfg.AddMethod(http.MethodPost)
	cfg.AddMethod(http.MethodHead)
	cfg.AddMethod(http.MethodOptions)

	cfg.SupportHeader(headers.Origin)
	cfg.SupportHeader(headers.ACRM)
	cfg.SupportHeader(headers.ACRH)
	cfg.SupportHeader("accept")
	cfg.SupportHeader("x-requested-with")
	cfg.SupportHeader("content-type")
	return cfg
}

// SupportHeader adds name (lowercased) to the supported request headers.
func (cfg *Config) SupportHeader(name string) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.headers.Add(name)
}

// UnsupportHeader removes name (lowercased) from the supported request
// headers. It also removes name from the exposed response headers.
func (cfg *Config) UnsupportHeader(name string) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.headers.Remove(name)
	cfg.exposedHeaders.Remove(name)
}

// ExposeHeader adds name (lowercased) to the exposed response headers
// and, if it is absent from them, to the supported request headers.
func (cfg *Config) ExposeHeader(name string) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.exposedHeaders.Add(name)
	cfg.headers.Add(name)
}

// UnexposeHeader removes name (lowercased) from the exposed response headers.
// It does not remove name from the supported request headers;
// call [Config.UnsupportHeader] for that.
func (cfg *Config) UnexposeHeader(name string) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.exposedHeaders.Remove(name)
}

// AddMethod allows method. Method names are case-sensitive.
func (cfg *Config) AddMethod(method string) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.methods.Add(method)
}

// RemoveMethod disallows method. Method names are case-sensitive.
func (cfg *Config) RemoveMethod(method string) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.methods.Remove(method)
}

// AddOrigin allows origin. Origins are case-sensitive.
// To allow any origin, add "*" and nothing else.
func (cfg *Config) AddOrigin(origin string) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.origins.Add(origin)
}

// RemoveOrigin disallows origin. Origins are case-sensitive.
func (cfg *Config) RemoveOrigin(origin string) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.origins.Remove(origin)
}

// Origins returns the allowed origins, sorted.
func (cfg *Config) Origins() []string {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.origins.ToSlice()
}

// SetOrigins replaces the allowed origins wholesale.
func (cfg *Config) SetOrigins(origins ...string) {
	set := util.NewSortedSet(origins...)
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.origins = set
}

// Methods returns the allowed methods, sorted.
func (cfg *Config) Methods() []string {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.methods.ToSlice()
}

// SetMethods replaces the allowed methods wholesale.
func (cfg *Config) SetMethods(methods ...string) {
	set := util.NewSortedSet(methods...)
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.methods = set
}

// Headers returns the supported request headers, lowercased and sorted.
func (cfg *Config) Headers() []string {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.headers.ToSlice()
}

// SetHeaders replaces the supported request headers wholesale.
// Contrary to [Config.UnsupportHeader], it leaves the exposed response
// headers untouched.
func (cfg *Config) SetHeaders(names ...string) {
	set := util.NewLowerSet(names...)
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.headers = set
}

// ExposedHeaders returns the exposed response headers, lowercased and sorted.
func (cfg *Config) ExposedHeaders() []string {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.exposedHeaders.ToSlice()
}

// SetExposedHeaders replaces the exposed response headers wholesale.
// Contrary to [Config.ExposeHeader], it leaves the supported request headers
// untouched.
func (cfg *Config) SetExposedHeaders(names ...string) {
	set := util.NewLowerSet(names...)
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.exposedHeaders = set
}

// SupportsCredentials reports whether credentials are supported.
func (cfg *Config) SupportsCredentials() bool {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.credentials
}

// SetSupportsCredentials sets whether credentials are supported.
func (cfg *Config) SetSupportsCredentials(b bool) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.credentials = b
}

// PreflightMaxAge returns the preflight max age, in seconds.
func (cfg *Config) PreflightMaxAge() int {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.maxAge
}

// SetPreflightMaxAge sets the preflight max age, in seconds.
// A negative value omits the Access-Control-Max-Age header.
func (cfg *Config) SetPreflightMaxAge(seconds int) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.maxAge = seconds
}

// Clone returns a deep copy of cfg.
// Mutating the result does not alter cfg, and vice versa.
func (cfg *Config) Clone() *Config {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return &Config{
		origins:        util.NewSortedSet(cfg.origins.ToSlice()...),
		methods:        util.NewSortedSet(cfg.methods.ToSlice()...),
		headers:        util.NewLowerSet(cfg.headers.ToSlice()...),
		exposedHeaders: util.NewLowerSet(cfg.exposedHeaders.ToSlice()...),
		credentials:    cfg.credentials,
		maxAge:         cfg.maxAge,
	}
}
