package headers

import (
	"strings"

	"github.com/jrfom/corsfilter/internal/util"
)

// Elements returns the non-empty elements of the [list-based field values]
// in values, trimmed of [optional whitespace] and byte-lowercased.
//
// This function's parameter is a slice of strings rather than just a string
// because, although [the Fetch standard] requires browsers to include at most
// one Access-Control-Request-Headers field line in CORS-preflight requests,
// some intermediaries split it into multiple field lines.
//
// [list-based field values]: https://httpwg.org/specs/rfc9110.html#abnf.extension
// [optional whitespace]: https://httpwg.org/specs/rfc9110.html#whitespace
// [the Fetch standard]: https://fetch.spec.whatwg.org
func Elements(values []string) []string {
	var elems []string
	for _, v := range values {
		for {
			name, rest, commaFound := strings.Cut(v, ",")
			if name = TrimOWS(name); name != "" {
				elems = append(elems, util.ByteLowercase(name))
			}
			if !commaFound {
				break
			}
			v = rest
		}
	}
	return elems
}

// AnyIn reports whether at least one of names is an element of set.
// An empty list of names matches nothing.
func AnyIn(set util.LowerSet, names []string) bool {
	for _, name := range names {
		if set.Contains(name) {
			return true
		}
	}
	return false
}
