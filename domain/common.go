package domain

import "errors"

var (
	MessageFailedBodyRequest = "failed to process request body"
	MessageUnauthorized      = "unauthorized"

	ErrUnauthorized = errors.New("unauthorized")
	ErrUpstream     = errors.New("upstream request failed")
)
