package client

import (
	"testing"

	"github.com/devlink/server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUnknownActionReturnsSameStateReference(t *testing.T) {
	state := initialState()

	next := rootReducer(state, Action{Type: ActionType("SOMETHING_ELSE")})

	assert.Same(t, state, next)
	assert.Same(t, state.Auth, next.Auth)
	assert.Same(t, state.Profile, next.Profile)
	assert.Same(t, state.Post, next.Post)
}

func TestHandledActionLeavesOtherSlicesUntouched(t *testing.T) {
	state := initialState()

	posts := []*models.Post{{ID: primitive.NewObjectID(), Text: "hello"}}
	next := rootReducer(state, Action{Type: GetPosts, Payload: posts})

	require.NotSame(t, state, next)
	assert.NotSame(t, state.Post, next.Post)
	// untouched slices keep their identity for shallow-equality checks
	assert.Same(t, state.Auth, next.Auth)
	assert.Same(t, state.Profile, next.Profile)
	assert.Equal(t, posts, next.Post.Posts)
	assert.False(t, next.Post.Loading)
}

func TestProfileReducer(t *testing.T) {
	state := initialState()

	profile := &models.Profile{ID: primitive.NewObjectID(), Status: "Developer"}
	next := rootReducer(state, Action{Type: GetProfile, Payload: profile})
	assert.Same(t, profile, next.Profile.Profile)

	next = rootReducer(next, Action{Type: ProfileError, Payload: &RequestError{Message: "Not Found", StatusCode: 404}})
	assert.Nil(t, next.Profile.Profile)
	assert.Equal(t, 404, next.Profile.Error.StatusCode)

	next = rootReducer(next, Action{Type: ClearProfile})
	assert.Nil(t, next.Profile.Profile)
	assert.Nil(t, next.Profile.Repos)
}

func TestPostReducerAddAndDelete(t *testing.T) {
	state := initialState()

	older := &models.Post{ID: primitive.NewObjectID(), Text: "older"}
	next := rootReducer(state, Action{Type: GetPosts, Payload: []*models.Post{older}})

	newer := &models.Post{ID: primitive.NewObjectID(), Text: "newer"}
	next = rootReducer(next, Action{Type: AddPost, Payload: newer})
	require.Len(t, next.Post.Posts, 2)
	assert.Equal(t, "newer", next.Post.Posts[0].Text)

	next = rootReducer(next, Action{Type: DeletePost, Payload: older.ID.Hex()})
	require.Len(t, next.Post.Posts, 1)
	assert.Equal(t, "newer", next.Post.Posts[0].Text)
}

func TestPostReducerUpdateLikes(t *testing.T) {
	state := initialState()

	post := &models.Post{ID: primitive.NewObjectID(), Text: "likeable"}
	other := &models.Post{ID: primitive.NewObjectID(), Text: "other"}
	next := rootReducer(state, Action{Type: GetPosts, Payload: []*models.Post{post, other}})

	likes := []models.Like{{ID: primitive.NewObjectID(), User: primitive.NewObjectID()}}
	next = rootReducer(next, Action{Type: UpdateLikes, Payload: &LikesUpdate{PostID: post.ID.Hex(), Likes: likes}})

	require.Len(t, next.Post.Posts, 2)
	assert.Equal(t, likes, next.Post.Posts[0].Likes)
	assert.Empty(t, next.Post.Posts[1].Likes)
	// the original post value was not mutated in place
	assert.Empty(t, post.Likes)
}

func TestPostReducerComments(t *testing.T) {
	state := initialState()

	post := &models.Post{ID: primitive.NewObjectID(), Text: "commented"}
	next := rootReducer(state, Action{Type: GetPost, Payload: post})

	comment := models.Comment{ID: primitive.NewObjectID(), Text: "nice"}
	next = rootReducer(next, Action{Type: AddComment, Payload: []models.Comment{comment}})
	require.Len(t, next.Post.Post.Comments, 1)

	next = rootReducer(next, Action{Type: RemoveComment, Payload: comment.ID.Hex()})
	assert.Empty(t, next.Post.Post.Comments)
}

func TestAuthReducer(t *testing.T) {
	state := initialState()

	next := rootReducer(state, Action{Type: LoginSuccess, Payload: "token-123"})
	assert.True(t, next.Auth.IsAuthenticated)
	assert.Equal(t, "token-123", next.Auth.Token)

	user := &models.User{ID: primitive.NewObjectID(), Name: "John Doe"}
	next = rootReducer(next, Action{Type: UserLoaded, Payload: user})
	assert.Same(t, user, next.Auth.User)

	next = rootReducer(next, Action{Type: Logout})
	assert.False(t, next.Auth.IsAuthenticated)
	assert.Empty(t, next.Auth.Token)
	assert.Nil(t, next.Auth.User)
}

func TestAlertReducer(t *testing.T) {
	state := initialState()

	next := rootReducer(state, Action{Type: SetAlert, Payload: Alert{ID: "a1", Msg: "Post Created", AlertType: "success"}})
	next = rootReducer(next, Action{Type: SetAlert, Payload: Alert{ID: "a2", Msg: "Comment Added", AlertType: "success"}})
	require.Len(t, next.Alerts, 2)

	next = rootReducer(next, Action{Type: RemoveAlert, Payload: "a1"})
	require.Len(t, next.Alerts, 1)
	assert.Equal(t, "a2", next.Alerts[0].ID)

	// removing an unknown id changes nothing
	again := rootReducer(next, Action{Type: RemoveAlert, Payload: "missing"})
	assert.Same(t, next, again)
}
