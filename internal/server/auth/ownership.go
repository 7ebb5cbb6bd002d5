package auth

import (
	"fmt"

	"github.com/dmitrijs2005/gophblog/internal/common"
)

// EnsureOwner allows a mutation only when the caller owns the resource.
func EnsureOwner(ownerID, callerID int64) error {
	if ownerID != callerID {
		return fmt.Errorf("user %d does not own resource of user %d: %w", callerID, ownerID, common.ErrForbidden)
	}
	return nil
}
