package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Roles carried in the verified token. Session issuance itself lives with
// the auth collaborator, not in this service.
const (
	RoleCustomer = "customer"
	RoleGamer    = "gamer"
	RoleOperator = "operator"
)

func GetActiveUser(ctx *gin.Context) (TokenObject, error) {
	value, exists := ctx.Get("user")
	if !exists {
		return TokenObject{}, fmt.Errorf("error occurred, not authorized to access this resource")
	}

	user, ok := value.(TokenObject)
	if !ok {
		return TokenObject{}, fmt.Errorf("an error occurred")
	}

	return user, nil
}
