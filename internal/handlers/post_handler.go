package handlers

import (
	"net/http"

	"github.com/devlink/server/internal/apperr"
	"github.com/devlink/server/internal/middleware"
	"github.com/devlink/server/internal/models"
	"github.com/devlink/server/internal/services"
	"github.com/gin-gonic/gin"
)

func CreatePost(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		var req struct {
			Text string `json:"text"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
			return
		}

		post, err := p.Create(c.Request.Context(), userID, req.Text)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, post)
	}
}

func ListPosts(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := p.GetAll(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}

		if posts == nil {
			posts = []*models.Post{}
		}
		c.JSON(http.StatusOK, posts)
	}
}

func GetPost(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, err := objectID(c.Param("post_id"))
		if err != nil {
			writeError(c, err)
			return
		}

		post, err := p.GetByID(c.Request.Context(), postID)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, post)
	}
}

func DeletePost(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		postID, err := objectID(c.Param("post_id"))
		if err != nil {
			writeError(c, err)
			return
		}

		if err := p.Delete(c.Request.Context(), postID, userID); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"msg": "Post Deleted"})
	}
}

func LikePost(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		postID, err := objectID(c.Param("post_id"))
		if err != nil {
			writeError(c, err)
			return
		}

		likes, err := p.Like(c.Request.Context(), postID, userID)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, likes)
	}
}

func UnlikePost(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		postID, err := objectID(c.Param("post_id"))
		if err != nil {
			writeError(c, err)
			return
		}

		likes, err := p.Unlike(c.Request.Context(), postID, userID)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, likes)
	}
}

func AddComment(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		postID, err := objectID(c.Param("post_id"))
		if err != nil {
			writeError(c, err)
			return
		}

		var req struct {
			Text string `json:"text"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
			return
		}

		comments, err := p.AddComment(c.Request.Context(), postID, userID, req.Text)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, comments)
	}
}

func RemoveComment(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		postID, err := objectID(c.Param("post_id"))
		if err != nil {
			writeError(c, err)
			return
		}

		// A malformed comment id can't match any comment, which is a
		// comment-not-found, not a missing post.
		commentID, err := objectID(c.Param("comment_id"))
		if err != nil {
			writeError(c, apperr.ErrCommentNotFound)
			return
		}

		comments, err := p.RemoveComment(c.Request.Context(), postID, commentID, userID)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, comments)
	}
}
