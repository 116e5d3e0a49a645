package handlers

import (
	"net/http"

	"github.com/devlink/server/internal/middleware"
	"github.com/devlink/server/internal/models"
	"github.com/devlink/server/internal/services"
	"github.com/gin-gonic/gin"
)

func GetMyProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		profile, err := p.GetByOwner(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

func UpsertProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		var input services.ProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
			return
		}

		profile, err := p.Upsert(c.Request.Context(), userID, &input)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

func ListProfiles(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := p.ListAll(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}

		if profiles == nil {
			profiles = []*models.Profile{}
		}
		c.JSON(http.StatusOK, profiles)
	}
}

func GetProfileByUser(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, err := objectID(c.Param("user_id"))
		if err != nil {
			writeError(c, err)
			return
		}

		profile, err := p.GetByOwner(c.Request.Context(), ownerID)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// DeleteAccount runs the posts → profile → user cascade for the
// authenticated user.
func DeleteAccount(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		if err := p.DeleteCascade(c.Request.Context(), userID); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"msg": "User Deleted"})
	}
}

func AddExperience(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		var entry models.Experience
		if err := c.ShouldBindJSON(&entry); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
			return
		}

		profile, err := p.AddExperience(c.Request.Context(), userID, entry)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

func RemoveExperience(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		entryID, err := objectID(c.Param("exp_id"))
		if err != nil {
			writeError(c, err)
			return
		}

		profile, err := p.RemoveExperience(c.Request.Context(), userID, entryID)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

func AddEducation(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		var entry models.Education
		if err := c.ShouldBindJSON(&entry); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
			return
		}

		profile, err := p.AddEducation(c.Request.Context(), userID, entry)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

func RemoveEducation(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		entryID, err := objectID(c.Param("edu_id"))
		if err != nil {
			writeError(c, err)
			return
		}

		profile, err := p.RemoveEducation(c.Request.Context(), userID, entryID)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// GithubRepos passes the upstream repository listing through untouched.
func GithubRepos(g *services.GithubService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Username is required"})
			return
		}

		repos, err := g.Repos(c.Request.Context(), username)
		if err != nil {
			writeError(c, err)
			return
		}

		c.Data(http.StatusOK, "application/json", repos)
	}
}
