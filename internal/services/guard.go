package services

import (
	"github.com/devlink/server/internal/apperr"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Authorize checks that the acting user is the owner of the resource
// being mutated. Pure comparison, no lookups; callers surface the
// returned error instead of quietly skipping the mutation.
func Authorize(actorID, ownerID primitive.ObjectID) error {
	if actorID != ownerID {
		return apperr.ErrNotAuthorized
	}
	return nil
}
