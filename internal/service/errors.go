package service

import "errors"

// ErrAlreadySubscribed is returned when a signup targets an email that
// already has a subscriber record, whether caught by the pre-check or by the
// store's unique constraint during the insert race.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// ValidationError reports the first rejected field of a signup payload
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// FulfillmentError means the subscriber row was created but the brochure
// email was not accepted by the provider. The row is kept.
type FulfillmentError struct {
	Err error
}

func (e *FulfillmentError) Error() string {
	return "brochure email not sent: " + e.Err.Error()
}

func (e *FulfillmentError) Unwrap() error {
	return e.Err
}
