package services

import (
	"context"
	"strings"
	"time"

	"github.com/devlink/server/internal/apperr"
	"github.com/devlink/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostService struct {
	postRepo models.PostRepo
	userRepo models.UserRepo
}

func NewPostService(postRepo models.PostRepo, userRepo models.UserRepo) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create stores a new post with the author's name and avatar copied in
// at creation time.
func (ps *PostService) Create(ctx context.Context, authorID primitive.ObjectID, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("text", "Text is required")
	}

	author, err := ps.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		User:   authorID,
		Text:   text,
		Name:   author.Name,
		Avatar: author.Avatar,
		Date:   time.Now(),
	}

	return ps.postRepo.CreatePost(ctx, post)
}

func (ps *PostService) GetAll(ctx context.Context) ([]*models.Post, error) {
	return ps.postRepo.ListPosts(ctx)
}

func (ps *PostService) GetByID(ctx context.Context, postID primitive.ObjectID) (*models.Post, error) {
	return ps.postRepo.GetPostByID(ctx, postID)
}

func (ps *PostService) Delete(ctx context.Context, postID, actorID primitive.ObjectID) error {
	post, err := ps.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := Authorize(actorID, post.User); err != nil {
		return err
	}

	return ps.postRepo.DeletePost(ctx, postID)
}

// Like records one like per (post, user). A second like by the same
// user is rejected and leaves the list untouched.
func (ps *PostService) Like(ctx context.Context, postID, actorID primitive.ObjectID) ([]models.Like, error) {
	post, err := ps.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	for _, like := range post.Likes {
		if like.User == actorID {
			return nil, apperr.ErrAlreadyLiked
		}
	}

	post.Likes = append([]models.Like{{ID: primitive.NewObjectID(), User: actorID}}, post.Likes...)
	if err := ps.postRepo.UpdateLikes(ctx, postID, post.Likes); err != nil {
		return nil, err
	}

	return post.Likes, nil
}

// Unlike removes the first like matching the user, found by user
// equality rather than position.
func (ps *PostService) Unlike(ctx context.Context, postID, actorID primitive.ObjectID) ([]models.Like, error) {
	post, err := ps.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, like := range post.Likes {
		if like.User == actorID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperr.ErrNotLiked
	}

	post.Likes = append(post.Likes[:idx], post.Likes[idx+1:]...)
	if err := ps.postRepo.UpdateLikes(ctx, postID, post.Likes); err != nil {
		return nil, err
	}

	return post.Likes, nil
}

// AddComment prepends a comment with the commenter's name and avatar
// snapshotted, and returns the full comment list.
func (ps *PostService) AddComment(ctx context.Context, postID, authorID primitive.ObjectID, text string) ([]models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("text", "Text is required")
	}

	post, err := ps.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	author, err := ps.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:     primitive.NewObjectID(),
		User:   authorID,
		Text:   text,
		Name:   author.Name,
		Avatar: author.Avatar,
		Date:   time.Now(),
	}
	post.Comments = append([]models.Comment{comment}, post.Comments...)

	if err := ps.postRepo.UpdateComments(ctx, postID, post.Comments); err != nil {
		return nil, err
	}

	return post.Comments, nil
}

// RemoveComment deletes a comment by id. Only the comment's author may
// remove it; owning the post is not enough.
func (ps *PostService) RemoveComment(ctx context.Context, postID, commentID, actorID primitive.ObjectID) ([]models.Comment, error) {
	post, err := ps.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, comment := range post.Comments {
		if comment.ID == commentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperr.ErrCommentNotFound
	}

	if err := Authorize(actorID, post.Comments[idx].User); err != nil {
		return nil, err
	}

	post.Comments = append(post.Comments[:idx], post.Comments[idx+1:]...)
	if err := ps.postRepo.UpdateComments(ctx, postID, post.Comments); err != nil {
		return nil, err
	}

	return post.Comments, nil
}
