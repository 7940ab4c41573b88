package parse

import "errors"

// ErrParse wraps every syntax failure reported by Parse. The wrapped
// error is a *scan.Error carrying the byte offset of the failure.
var ErrParse = errors.New("parse error")
