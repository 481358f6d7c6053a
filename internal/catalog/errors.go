package catalog

import "errors"

// ErrBadRequest marks lookups that carry no usable identifying parameter or
// a malformed identifier. Handlers translate it to a 400 response.
var ErrBadRequest = errors.New("bad request")
