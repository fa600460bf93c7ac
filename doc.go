/*
Package corsfilter provides [net/http] middleware implementing the
[W3C CORS recommendation].

A [Filter] inspects the Origin header and the CORS request headers of every
request it sees, classifies the request as a simple CORS request,
a CORS-preflight request, or neither, adds the corresponding CORS response
headers when the request is allowed, and then delegates to the next handler
in the chain. It never rejects a request itself: browsers enforce the
same-origin policy whenever the expected CORS response headers are absent.

Even so, care is required for a CORS filter to work as intended:

  - Because [CORS-preflight requests] use [OPTIONS] as their method,
    OPTIONS requests must be allowed to reach the filter, OPTIONS must be
    one of the allowed methods, and the handler wrapped by the filter should
    answer OPTIONS requests with a 2xx status code.
  - Because [CORS-preflight requests are not authenticated], authentication
    should not take place "ahead of" a CORS filter.
  - Multiple CORS filters must not be stacked: the filter appends to the
    response headers rather than overwriting them.

A [Config] can be built programmatically or, through [ParseParams],
from string parameters such as environment variables.

This package deliberately implements the W3C recommendation only: it does
not support origin patterns, per-route configuration, or the more recent
additions of the [Fetch standard].

[CORS-preflight requests are not authenticated]: https://fetch.spec.whatwg.org/#cors-protocol-and-credentials
[CORS-preflight requests]: https://developer.mozilla.org/en-US/docs/Glossary/Preflight_request
[Fetch standard]: https://fetch.spec.whatwg.org/#http-cors-protocol
[OPTIONS]: https://developer.mozilla.org/en-US/docs/Web/HTTP/Methods/OPTIONS
[W3C CORS recommendation]: https://www.w3.org/TR/2014/REC-cors-20140116/
*/
package corsfilter
