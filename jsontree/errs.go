package jsontree

import "errors"

var (
	ErrType  = errors.New("type mismatch")
	ErrKey   = errors.New("key not found")
	ErrRange = errors.New("index out of range")
	ErrPath  = errors.New("bad path")
)
