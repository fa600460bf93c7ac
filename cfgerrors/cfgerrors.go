/*
Package cfgerrors provides functionalities for programmatically handling
configuration errors produced by [github.com/jrfom/corsfilter.ParseParams].

Most users have no use for this package. However, programs that let operators
configure CORS through startup parameters or environment variables may find
it useful: it allows them to report each parameter mistake separately,
perhaps in a format of their choosing.
*/
package cfgerrors

import (
	"fmt"
	"iter"
)

// An UnacceptableMethodError indicates a method name that is not a valid
// [token].
//
// [token]: https://httpwg.org/specs/rfc9110.html#tokens
type UnacceptableMethodError struct {
	Value string // the unacceptable value that was specified
}

func (err *UnacceptableMethodError) Error() string {
	const tmpl = "corsfilter: invalid method %q"
	return fmt.Sprintf(tmpl, err.Value)
}

// An UnacceptableHeaderNameError indicates a header name that is not a valid
// [token]. The Type field may take one of two values:
//   - "allowed": the name was listed among allowed request headers;
//   - "exposed": the name was listed among exposed response headers.
//
// [token]: https://httpwg.org/specs/rfc9110.html#tokens
type UnacceptableHeaderNameError struct {
	Value string // the unacceptable value that was specified
	Type  string // allowed | exposed
}

func (err *UnacceptableHeaderNameError) Error() string {
	const tmpl = "corsfilter: invalid %s header name %q"
	return fmt.Sprintf(tmpl, err.Type, err.Value)
}

// A MalformedMaxAgeError indicates a preflight max-age value that is not an
// integer.
type MalformedMaxAgeError struct {
	Value string // the unacceptable value that was specified
}

func (err *MalformedMaxAgeError) Error() string {
	const tmpl = "corsfilter: malformed preflight max-age %q (want an integer number of seconds; negative omits the header)"
	return fmt.Sprintf(tmpl, err.Value)
}

// A MalformedCredentialsError indicates a credentials-support flag that is
// not a boolean. Besides "true" and "false", "1" and "0" are accepted.
type MalformedCredentialsError struct {
	Value string // the unacceptable value that was specified
}

func (err *MalformedCredentialsError) Error() string {
	const tmpl = "corsfilter: malformed credentials-support flag %q (want true, false, 1, or 0)"
	return fmt.Sprintf(tmpl, err.Value)
}

// All returns an iterator over the configuration errors contained in err's
// error tree. The order is unspecified. All only supports error values
// returned by [github.com/jrfom/corsfilter.ParseParams]; it should not be
// called on any other error value.
func All(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		every(err, yield)
	}
}

func every(err error, f func(error) bool) bool {
	switch err := err.(type) {
	// Errors are only ever joined, never wrapped.
	case interface{ Unwrap() []error }:
		for _, err := range err.Unwrap() {
			if !every(err, f) {
				return false
			}
		}
		return true
	default:
		return f(err)
	}
}
