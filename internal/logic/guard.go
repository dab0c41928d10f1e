package logic

import (
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/apperr"
)

// AuthorizeOwner is the ownership guard for every mutating operation. It is a
// pure predicate: callers fetch the entity chain first and pass the resolved
// owner id. An empty actorID means the request carried no identity.
func AuthorizeOwner(actorID, ownerID string) error {
	if actorID == "" {
		return apperr.Unauthenticated()
	}
	if actorID != ownerID {
		return apperr.Forbidden()
	}
	return nil
}
