package model

import "github.com/google/uuid"

// NewID returns an opaque unique id for a newly created entity.
func NewID() string {
	return uuid.NewString()
}
