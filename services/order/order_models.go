package order

// Order lifecycle statuses. Completed, cancelled and disputed are terminal
// for the parties; disputed orders leave only through an operator
// resolution.
const (
	StatusPending    = "pending"
	StatusAccepted   = "accepted"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusDisputed   = "disputed"
)

const (
	PaymentPending       = "pending"
	PaymentPaid          = "paid"
	PaymentRefunded      = "refunded"
	PaymentPartialRefund = "partial_refund"
)

// Cancellation reasons recorded on the order.
const (
	ReasonPaymentFailed = "payment_failed"
)
