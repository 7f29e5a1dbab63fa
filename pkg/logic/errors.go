package logic

import "errors"

var (
	// ErrMalformedNode reports a node that cannot be represented: an
	// unknown variant or a variant with missing parts.
	ErrMalformedNode = errors.New("malformed node")
)
