package headers

import (
	"net/http"

	"golang.org/x/net/http/httpguts"
)

// Header names in canonical format, so that they can be used as keys of a
// [http.Header]. Header names are case-insensitive on the wire;
// http.Header.Add canonicalizes them anyway.
const (
	// common request headers
	Origin = "Origin"

	// preflight-only request headers
	ACRM = "Access-Control-Request-Method"
	ACRH = "Access-Control-Request-Headers"

	// common response headers
	ACAO = "Access-Control-Allow-Origin"
	ACAC = "Access-Control-Allow-Credentials"

	// preflight-only response headers
	ACAM = "Access-Control-Allow-Methods"
	ACAH = "Access-Control-Allow-Headers"
	ACMA = "Access-Control-Max-Age"

	// simple-only response headers
	ACEH = "Access-Control-Expose-Headers"
)

const (
	ValueTrue     = "true"
	ValueWildcard = "*"
)

// IsValid reports whether name is a valid header name,
// [per the Fetch standard].
//
// [per the Fetch standard]: https://fetch.spec.whatwg.org/#header-name
func IsValid(name string) bool {
	return httpguts.ValidHeaderFieldName(name)
}

// First, if k is present in hdrs, returns the first value associated to k in
// hdrs and true; otherwise, First returns "", false.
// Precondition: k is in canonical format (see [http.CanonicalHeaderKey]).
//
// Contrary to [http.Header.Get], First distinguishes an absent header from a
// header whose value is empty.
func First(hdrs http.Header, k string) (string, bool) {
	v, found := hdrs[k]
	if !found || len(v) == 0 {
		return "", false
	}
	return v[0], true
}
