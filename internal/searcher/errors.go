package searcher

import "errors"

// ErrStatusNotOK is returned when the search API responded with a
// non-success http status. The wrapping error carries the status code.
var ErrStatusNotOK = errors.New("search response status is not OK")
