package apistrings

const (
	/// Basic User Related Strings
	UserNotFound = "user or account does not exist"
	OperatorOnly = "this action requires an operator account"
	GamerOnly    = "this action requires a gamer account"

	/// Core Functionality Error
	ServerError = "a server error occurred, please try again later"

	/// Catalog Related Strings
	GamerNotFound      = "gamer does not exist"
	InvalidSearchInput = "invalid search parameters, please check submitted filters"
	InvalidStatusInput = "check 'is_online' or 'is_accepting_orders' keys, invalid request"

	/// Order Related Strings
	OrderNotFound       = "order does not exist"
	InvalidOrderInput   = "check 'service_id', 'duration_minutes' or 'scheduled_at' keys, invalid request"
	InvalidCancelInput  = "check 'reason' key, invalid request"
	InvalidResolveInput = "check 'outcome' key, must be 'completed' or 'cancelled'"
	ServiceUnavailable  = "service does not exist or is not currently offered"
	BookingConflict     = "gamer is already booked for an overlapping time window"
	InvalidTransition   = "action is not allowed in the order's current state"
	NotOrderParticipant = "you are not a participant of this order"
	OrderPaymentFailed  = "insufficient wallet balance, order has been cancelled"

	/// Wallet Related Strings
	UserNoWallet       = "user does not have a wallet created"
	InvalidAmountInput = "check 'amount' key, invalid request"
	InsufficientFunds  = "insufficient wallet balance"
	WalletHalted       = "wallet is locked pending review, please contact support"
	ChargeDeclined     = "payment was declined, please try another payment method"
	PayoutRejected     = "withdrawal was rejected by the payment processor"

	/// Review Related Strings
	InvalidReviewInput = "check 'order_id' or 'rating' keys, invalid request"
	AlreadyReviewed    = "this order has already been reviewed"
	ReviewNotAllowed   = "only the customer of a completed order can leave a review"
)
