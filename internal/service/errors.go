package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
