package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrDatabaseError          = errors.New("database error")
	ErrStorageError           = errors.New("storage error")
	ErrNoItineraryLoaded      = errors.New("no itinerary loaded")
	ErrDayNotFound            = errors.New("day not found")
	ErrActivityNotFound       = errors.New("activity not found")
	ErrTripNotFound           = errors.New("trip not found")
	ErrTripNotEditable        = errors.New("trip is not editable in its current status")
	ErrAccountNotFound        = errors.New("account not found")
	ErrAccountAlreadyExists   = errors.New("account already exists")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnsupportedCurrency    = errors.New("unsupported currency")
	ErrSupersededRequest      = errors.New("request superseded by a newer one")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected AI response")
)
