package services

import (
	"testing"

	"github.com/devlink/server/internal/apperr"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuthorize(t *testing.T) {
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	assert.NoError(t, Authorize(owner, owner))
	assert.ErrorIs(t, Authorize(stranger, owner), apperr.ErrNotAuthorized)
}
