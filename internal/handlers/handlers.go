package handlers

import (
	"errors"
	"net/http"

	"github.com/devlink/server/internal/apperr"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// writeError maps a service failure onto the wire. Validation failures
// carry their field messages; taxonomy errors carry their message and
// status; anything unrecognized is recorded on the context for the
// error-handler middleware and surfaces as a generic 500.
func writeError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Errors})
		return
	}

	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(status, gin.H{"msg": err.Error()})
}

// objectID parses a path parameter as a document id. A malformed id is
// reported as the resource being absent, matching how lookups by a
// nonsense id have always behaved.
func objectID(param string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(param)
	if err != nil {
		return primitive.NilObjectID, apperr.ErrNotFound
	}
	return id, nil
}
