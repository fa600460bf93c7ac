package methods

import (
	"net/http"

	"github.com/jrfom/corsfilter/internal/util"
	"golang.org/x/net/http/httpguts"
)

// IsValid reports whether name is a valid method, [per the Fetch standard].
//
// [per the Fetch standard]: https://fetch.spec.whatwg.org/#concept-method
func IsValid(name string) bool {
	// Note: the production is identical to that of header names.
	return httpguts.ValidHeaderFieldName(name)
}

// IsSimple reports whether name, regardless of case, is one of the
// [simple methods] of the W3C CORS recommendation: GET, HEAD, or POST.
//
// [simple methods]: https://www.w3.org/TR/2014/REC-cors-20140116/#simple-method
func IsSimple(name string) bool {
	switch util.ByteUppercase(name) {
	case http.MethodGet, http.MethodHead, http.MethodPost:
		return true
	default:
		return false
	}
}

// IsOptions reports whether name, regardless of case, is OPTIONS.
func IsOptions(name string) bool {
	return util.ByteUppercase(name) == http.MethodOptions
}
