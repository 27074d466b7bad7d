package app

import "errors"

var (
	ErrCommitNotFound = errors.New("committed mapping not found")
	ErrNoHeaders      = errors.New("No valid headers found in the file")
)
