package services

import "errors"

// Store failure kinds. Handlers match these to pick a status code; anything
// the service does not classify surfaces as-is and is treated as a server
// fault.
var (
	ErrInvalidID = errors.New("invalid expense ID format")
	ErrNotFound  = errors.New("expense not found")
	ErrDuplicate = errors.New("duplicate field value entered")
)
