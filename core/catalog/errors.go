package catalog

import "errors"

var (
	ErrUnknownModel   = errors.New("unknown vehicle model")
	ErrDuplicateModel = errors.New("vehicle model already registered")
	ErrUnknownVersion = errors.New("unknown policy version")
)
