package order

import "fmt"

var (
	ErrOrderNotFound     = fmt.Errorf("order not found")
	ErrServiceNotFound   = fmt.Errorf("service not found or inactive")
	ErrValidationFailed  = fmt.Errorf("order request failed validation")
	ErrInvalidTransition = fmt.Errorf("transition not allowed from current order state")
	ErrBookingConflict   = fmt.Errorf("gamer already booked for an overlapping window")
	ErrPaymentFailed     = fmt.Errorf("payment could not be reserved for this order")
	ErrNotParticipant    = fmt.Errorf("user is not a participant of this order")
)
