package services

import (
	"context"
	"testing"
	"time"

	"github.com/devlink/server/internal/apperr"
	"github.com/devlink/server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedUser(t *testing.T, repo *memRepo, name, email string) *models.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), &models.User{
		Name:   name,
		Email:  email,
		Avatar: "https://www.gravatar.com/avatar/x?s=200&r=pg&d=mm",
	})
	require.NoError(t, err)
	return user
}

func TestCreatePostSnapshotsAuthor(t *testing.T) {
	repo := newMemRepo()
	svc := NewPostService(repo, repo)
	author := seedUser(t, repo, "John Doe", "john@example.com")

	post, err := svc.Create(context.Background(), author.ID, "hello")
	require.NoError(t, err)

	assert.Equal(t, author.ID, post.User)
	assert.Equal(t, "John Doe", post.Name)
	assert.Equal(t, author.Avatar, post.Avatar)
	assert.False(t, post.Date.IsZero())
	assert.Empty(t, post.Likes)
	assert.Empty(t, post.Comments)
}

func TestCreatePostRequiresText(t *testing.T) {
	repo := newMemRepo()
	svc := NewPostService(repo, repo)
	author := seedUser(t, repo, "John Doe", "john@example.com")

	_, err := svc.Create(context.Background(), author.ID, "   ")

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestGetAllOrdersByDateDescending(t *testing.T) {
	repo := newMemRepo()
	svc := NewPostService(repo, repo)
	author := seedUser(t, repo, "John Doe", "john@example.com")

	for i, text := range []string{"first", "second", "third"} {
		_, err := repo.CreatePost(context.Background(), &models.Post{
			User: author.ID,
			Text: text,
			Date: time.Now().Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	posts, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Text)
	assert.Equal(t, "first", posts[2].Text)
}

func TestDeletePostOwnerOnly(t *testing.T) {
	repo := newMemRepo()
	svc := NewPostService(repo, repo)
	author := seedUser(t, repo, "John Doe", "john@example.com")
	other := seedUser(t, repo, "Jane Doe", "jane@example.com")

	post, err := svc.Create(context.Background(), author.ID, "mine")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), post.ID, other.ID)
	assert.ErrorIs(t, err, apperr.ErrNotAuthorized)

	err = svc.Delete(context.Background(), post.ID, author.ID)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), post.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeletePostAbsent(t *testing.T) {
	repo := newMemRepo()
	svc := NewPostService(repo, repo)
	actor := seedUser(t, repo, "John Doe", "john@example.com")

	err := svc.Delete(context.Background(), primitive.NewObjectID(), actor.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLikeIsIdempotentPerUser(t *testing.T) {
	repo := newMemRepo()
	svc := NewPostService(repo, repo)
	author := seedUser(t, repo, "John Doe", "john@example.com")
	liker := seedUser(t, repo, "Jane Doe", "jane@example.com")

	post, err := svc.Create(context.Background(), author.ID, "like me")
	require.NoError(t, err)

	likes, err := svc.Like(context.Background(), post.ID, liker.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, liker.ID, likes[0].User)

	_, err = svc.Like(context.Background(), post.ID, liker.ID)
	assert.ErrorIs(t, err, apperr.ErrAlreadyLiked)

	// rejected call left the list untouched
	stored, err := svc.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Likes, 1)
}

func TestUnlikeWithoutLike(t *testing.T) {
	repo := newMemRepo()
	svc := NewPostService(repo, repo)
	author := seedUser(t, repo, "John Doe", "john@example.com")
	other := seedUser(t, repo, "Jane Doe", "jane@example.com")

	post, err := svc.Create(context.Background(), author.ID, "nothing here")
	require.NoError(t, err)

	_, err = svc.Unlike(context.Background(), post.ID, other.ID)
	assert.ErrorIs(t, err, apperr.ErrNotLiked)
}

func TestLikeUnlikeRoundTrip(t *testing.T) {
	repo := newMemRepo()
	svc := NewPostService(repo, repo)
	author := seedUser(t, repo, "John Doe", "john@example.com")
	u1 := seedUser(t, repo, "Jane Doe", "jane@example.com")
	u2 := seedUser(t, repo, "Jim Doe", "jim@example.com")

	post, err := svc.Create(context.Background(), author.ID, "round trip")
	require.NoError(t, err)

	_, err = svc.Like(context.Background(), post.ID, u1.ID)
	require.NoError(t, err)

	_, err = svc.Like(context.Background(), post.ID, u2.ID)
	require.NoError(t, err)

	likes, err := svc.Unlike(context.Background(), post.ID, u2.ID)
	require.NoError(t, err)

	// set membership restored to the pre-like state
	require.Len(t, likes, 1)
	assert.Equal(t, u1.ID, likes[0].User)
}

func TestAddCommentPrepends(t *testing.T) {
	repo := newMemRepo()
	svc := NewPostService(repo, repo)
	author := seedUser(t, repo, "John Doe", "john@example.com")
	commenter := seedUser(t, repo, "Jane Doe", "jane@example.com")

	post, err := svc.Create(context.Background(), author.ID, "post")
	require.NoError(t, err)

	_, err = svc.AddComment(context.Background(), post.ID, commenter.ID, "older")
	require.NoError(t, err)

	comments, err := svc.AddComment(context.Background(), post.ID, commenter.ID, "newer")
	require.NoError(t, err)

	require.Len(t, comments, 2)
	assert.Equal(t, "newer", comments[0].Text)
	assert.Equal(t, "Jane Doe", comments[0].Name)
	assert.Equal(t, commenter.ID, comments[0].User)
}

func TestAddCommentRequiresText(t *testing.T) {
	repo := newMemRepo()
	svc := NewPostService(repo, repo)
	author := seedUser(t, repo, "John Doe", "john@example.com")

	post, err := svc.Create(context.Background(), author.ID, "post")
	require.NoError(t, err)

	_, err = svc.AddComment(context.Background(), post.ID, author.ID, "")
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestRemoveCommentAuthorOnly(t *testing.T) {
	repo := newMemRepo()
	svc := NewPostService(repo, repo)
	postAuthor := seedUser(t, repo, "Post Author", "a@example.com")
	commenter := seedUser(t, repo, "Commenter", "b@example.com")

	post, err := svc.Create(context.Background(), postAuthor.ID, "hello")
	require.NoError(t, err)

	comments, err := svc.AddComment(context.Background(), post.ID, commenter.ID, "nice")
	require.NoError(t, err)
	commentID := comments[0].ID

	// owning the post does not grant deletion of someone else's comment
	_, err = svc.RemoveComment(context.Background(), post.ID, commentID, postAuthor.ID)
	assert.ErrorIs(t, err, apperr.ErrNotAuthorized)

	remaining, err := svc.RemoveComment(context.Background(), post.ID, commentID, commenter.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestRemoveCommentAbsent(t *testing.T) {
	repo := newMemRepo()
	svc := NewPostService(repo, repo)
	author := seedUser(t, repo, "John Doe", "john@example.com")

	post, err := svc.Create(context.Background(), author.ID, "hello")
	require.NoError(t, err)

	_, err = svc.RemoveComment(context.Background(), post.ID, primitive.NewObjectID(), author.ID)
	assert.ErrorIs(t, err, apperr.ErrCommentNotFound)

	_, err = svc.RemoveComment(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), author.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
