package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidInput    = errors.New("invalid input")
	ErrCampaignClosed  = errors.New("campaign is not accepting donations")
	ErrEmailTaken      = errors.New("email already registered")
)
