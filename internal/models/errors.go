package models

import "errors"

var (
	ErrPersonNotFound = errors.New("person not found")
	ErrItemNotFound   = errors.New("item not found")
	ErrBadPlatform    = errors.New("unknown platform")
)
