package settlement

import "fmt"

var (
	ErrAlreadyFinalized = fmt.Errorf("order settlement already finalized, reversal refused")
	ErrAlreadyReversed  = fmt.Errorf("order settlement already reversed, finalization refused")
	ErrNotReserved      = fmt.Errorf("no reservation exists for this order")
)
