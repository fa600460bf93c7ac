package corsfilter

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jrfom/corsfilter/cfgerrors"
	"github.com/jrfom/corsfilter/internal/headers"
	"github.com/jrfom/corsfilter/internal/methods"
)

// Names of the parameters recognized by [ParseParams].
const (
	ParamAllowedOrigins     = "cors.allowed.origins"
	ParamAllowedMethods     = "cors.allowed.methods"
	ParamAllowedHeaders     = "cors.allowed.headers"
	ParamExposedHeaders     = "cors.exposed.headers"
	ParamPreflightMaxAge    = "cors.preflight.maxage"
	ParamSupportCredentials = "cors.support.credentials"
)

// Default values of the parameters recognized by [ParseParams].
const (
	DefaultAllowedOrigins     = "*"
	DefaultAllowedMethods     = "GET,POST,HEAD,OPTIONS"
	DefaultAllowedHeaders     = "origin,accept,x-requested-with,content-type,access-control-request-method,access-control-request-headers"
	DefaultExposedHeaders     = ""
	DefaultPreflightMaxAge    = "1800"
	DefaultSupportCredentials = "true"
)

// ParseParams builds a Config from named string parameters,
// such as those of a deployment descriptor or of environment variables.
// Absent parameters take their default value (see the Default constants).
//
// List-valued parameters are comma-separated; ParseParams trims whitespace
// around each element and ignores empty elements. Methods and header names
// must be valid [tokens]. The preflight max age must be an integer. Besides
// "true" and "false", the credentials flag accepts "1" and "0".
//
// ParseParams reports every problem it finds rather than just the first one.
// Use [cfgerrors.All] to inspect them individually.
// In case of failure, ParseParams returns a nil *Config.
//
// [tokens]: https://httpwg.org/specs/rfc9110.html#tokens
func ParseParams(params map[string]string) (*Config, error) {
	get := func(name, def string) string {
		if v, found := params[name]; found {
			return v
		}
		return def
	}

	var errs []error
	cfg := NewConfig()

	for _, origin := range splitList(get(ParamAllowedOrigins, DefaultAllowedOrigins)) {
		cfg.origins.Add(origin)
	}
	for _, m := range splitList(get(ParamAllowedMethods, DefaultAllowedMethods)) {
		if !methods.IsValid(m) {
			errs = append(errs, &cfgerrors.UnacceptableMethodError{Value: m})
			continue
		}
		cfg.methods.Add(m)
	}
	for _, name := range splitList(get(ParamAllowedHeaders, DefaultAllowedHeaders)) {
		if !headers.IsValid(name) {
			err := cfgerrors.UnacceptableHeaderNameError{
				Value: name,
				Type:  "allowed",
			}
			errs = append(errs, &err)
			continue
		}
		cfg.headers.Add(name)
	}
	for _, name := range splitList(get(ParamExposedHeaders, DefaultExposedHeaders)) {
		if !headers.IsValid(name) {
			err := cfgerrors.UnacceptableHeaderNameError{
				Value: name,
				Type:  "exposed",
			}
			errs = append(errs, &err)
			continue
		}
		// Exposed headers are implicitly supported.
		cfg.exposedHeaders.Add(name)
		cfg.headers.Add(name)
	}

	if err := parseMaxAge(cfg, get(ParamPreflightMaxAge, DefaultPreflightMaxAge)); err != nil {
		errs = append(errs, err)
	}
	if err := parseCredentials(cfg, get(ParamSupportCredentials, DefaultSupportCredentials)); err != nil {
		errs = append(errs, err)
	}

	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func parseMaxAge(cfg *Config, s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return &cfgerrors.MalformedMaxAgeError{Value: s}
	}
	cfg.maxAge = n
	return nil
}

func parseCredentials(cfg *Config, s string) error {
	switch strings.TrimSpace(s) {
	case "true", "1":
		cfg.credentials = true
	case "false", "0":
		cfg.credentials = false
	default:
		return &cfgerrors.MalformedCredentialsError{Value: s}
	}
	return nil
}

func splitList(s string) []string {
	var elems []string
	for elem := range strings.SplitSeq(s, ",") {
		if elem = strings.TrimSpace(elem); elem != "" {
			elems = append(elems, elem)
		}
	}
	return elems
}
