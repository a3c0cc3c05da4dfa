package review

import "fmt"

var (
	ErrOrderNotFound     = fmt.Errorf("order not found")
	ErrOrderNotCompleted = fmt.Errorf("only completed orders can be reviewed")
	ErrNotOrderCustomer  = fmt.Errorf("only the order's customer can leave a review")
	ErrAlreadyReviewed   = fmt.Errorf("order has already been reviewed")
	ErrInvalidRating     = fmt.Errorf("rating must be between 1 and 5")
)
