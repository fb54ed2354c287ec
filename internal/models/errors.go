package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrRoomNotFound       = errors.New("models: room not found")
	ErrRoomieNotFound     = errors.New("models: roomie not found")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrSessionNotFound    = errors.New("models: session not found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
)
