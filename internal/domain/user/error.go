package user

import "errors"

var (
	ErrExists       = errors.New("user already exists")
	ErrNotFound     = errors.New("user not found")
	ErrInvalidAuth  = errors.New("invalid credentials")
	ErrInvalidInput = errors.New("invalid input")
)
