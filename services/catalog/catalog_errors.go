package catalog

import "fmt"

var (
	ErrGamerNotFound = fmt.Errorf("gamer not found")
)
