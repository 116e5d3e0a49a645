package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/devlink/server/internal/apperr"
	"github.com/devlink/server/internal/helpers"
	"github.com/devlink/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo models.UserRepo
}

func NewUserService(userRepo models.UserRepo) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Register creates a user with a bcrypt-hashed password and a
// gravatar-derived avatar, and returns a signed token for the new
// account.
func (us *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	if name == "" {
		return "", apperr.Validation("name", "Name field can't be empty")
	}
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return "", apperr.Validation("email", "Invalid Email")
	}
	if len(password) < 6 {
		return "", apperr.Validation("password", "Entered password length must be atleast 6 chars")
	}

	if _, err := us.userRepo.GetUserByEmail(ctx, email); err == nil {
		return "", apperr.ErrUserExists
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Avatar:   helpers.GravatarURL(email),
		Password: string(hashed),
	}

	created, err := us.userRepo.CreateUser(ctx, user)
	if err != nil {
		return "", err
	}

	return helpers.SignToken(created.ID.Hex())
}

// Login verifies credentials and returns a signed token. Unknown email
// and wrong password are indistinguishable to the caller.
func (us *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return "", apperr.Validation("email", "Invalid Email")
	}
	if password == "" {
		return "", apperr.Validation("password", "Password is required")
	}

	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return "", apperr.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", apperr.ErrInvalidCredentials
	}

	return helpers.SignToken(user.ID.Hex())
}

// Current returns the authenticated user's record, password hash
// excluded at the JSON layer.
func (us *UserService) Current(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return us.userRepo.GetUserByID(ctx, userID)
}
