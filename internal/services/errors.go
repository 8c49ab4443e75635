package services

import "errors"

// Business errors returned by the services. Handlers map these to HTTP
// statuses with errors.Is; repository lookups that miss surface as
// repositories.ErrNotFound instead.
var (
	// ErrInsufficientStock rejects a cart mutation whose requested quantity
	// exceeds the product's current stock. The cart is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrEmailInUse rejects a registration for an already registered email.
	ErrEmailInUse = errors.New("email already in use")

	// ErrInvalidCredentials is returned on any login failure. It is
	// deliberately generic so clients cannot probe which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCheckoutSession wraps a failure of the external payment provider
	// call. Stock decrements applied before the call are not rolled back.
	ErrCheckoutSession = errors.New("failed to create checkout session")
)
