package service

import "errors"

var (
	ErrEmptyText = errors.New("text is required")

	ErrVersionIsNotSpecified     = errors.New("app version is not specified")
	ErrServiceNameIsNotSpecified = errors.New("service name is not specified")
)
