package services

import (
	"context"
	"fmt"

	"github.com/devlink/server/internal/apperr"
	"github.com/devlink/server/internal/helpers"
	"github.com/devlink/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileInput is the boundary shape of a profile upsert. Skills
// arrives as either a list or a delimited string and is canonical by
// the time decoding finishes.
type ProfileInput struct {
	Company        string           `json:"company"`
	Website        string           `json:"website"`
	Location       string           `json:"location"`
	Bio            string           `json:"bio"`
	Status         string           `json:"status"`
	GithubUsername string           `json:"githubusername"`
	Skills         models.RawSkills `json:"skills"`
	Youtube        string           `json:"youtube"`
	Twitter        string           `json:"twitter"`
	Facebook       string           `json:"facebook"`
	Linkedin       string           `json:"linkedin"`
	Instagram      string           `json:"instagram"`
}

type ProfileService struct {
	profileRepo models.ProfileRepo
	postRepo    models.PostRepo
	userRepo    models.UserRepo
}

func NewProfileService(profileRepo models.ProfileRepo, postRepo models.PostRepo, userRepo models.UserRepo) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// Upsert creates or replaces the caller's profile. Website and social
// URLs are normalized to https, empty ones skipped. Idempotent: calling
// it again with the same fields is a plain replace, never an error.
func (ps *ProfileService) Upsert(ctx context.Context, ownerID primitive.ObjectID, input *ProfileInput) (*models.Profile, error) {
	if input.Status == "" {
		return nil, apperr.Validation("status", "Status is required")
	}
	if len(input.Skills) == 0 {
		return nil, apperr.Validation("skills", "Skills is required")
	}

	fields := &models.Profile{
		User:           ownerID,
		Company:        input.Company,
		Website:        helpers.NormalizeURL(input.Website),
		Location:       input.Location,
		Bio:            input.Bio,
		Status:         input.Status,
		GithubUsername: input.GithubUsername,
		Skills:         input.Skills,
		Social: models.SocialLinks{
			Youtube:   helpers.NormalizeURL(input.Youtube),
			Twitter:   helpers.NormalizeURL(input.Twitter),
			Facebook:  helpers.NormalizeURL(input.Facebook),
			Linkedin:  helpers.NormalizeURL(input.Linkedin),
			Instagram: helpers.NormalizeURL(input.Instagram),
		},
	}

	return ps.profileRepo.UpsertProfile(ctx, ownerID, fields)
}

func (ps *ProfileService) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Profile, error) {
	return ps.profileRepo.GetProfileByOwner(ctx, ownerID)
}

func (ps *ProfileService) ListAll(ctx context.Context) ([]*models.Profile, error) {
	return ps.profileRepo.ListProfiles(ctx)
}

// DeleteCascade removes the owner's posts, then the profile, then the
// user account. There is no cross-document transaction backing this
// sequence: a crash mid-way leaves a partially completed cascade. The
// ordering deletes the widest data first so a partial run never leaves
// posts pointing at a removed account, and every step is idempotent so
// re-running the cascade finishes the job without double effects.
func (ps *ProfileService) DeleteCascade(ctx context.Context, ownerID primitive.ObjectID) error {
	if err := ps.postRepo.DeletePostsByAuthor(ctx, ownerID); err != nil {
		return fmt.Errorf("cascade: deleting posts: %w", err)
	}
	if err := ps.profileRepo.DeleteProfile(ctx, ownerID); err != nil {
		return fmt.Errorf("cascade: deleting profile: %w", err)
	}
	if err := ps.userRepo.DeleteUser(ctx, ownerID); err != nil {
		return fmt.Errorf("cascade: deleting user: %w", err)
	}
	return nil
}

// AddExperience prepends the entry (most recent first) and persists the
// whole profile document.
func (ps *ProfileService) AddExperience(ctx context.Context, ownerID primitive.ObjectID, entry models.Experience) (*models.Profile, error) {
	if err := models.Validate.Struct(entry); err != nil {
		return nil, apperr.Validation("experience", "Title, company and from date are required")
	}

	profile, err := ps.profileRepo.GetProfileByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(ownerID, profile.User); err != nil {
		return nil, err
	}

	entry.ID = primitive.NewObjectID()
	profile.Experience = append([]models.Experience{entry}, profile.Experience...)

	return ps.profileRepo.ReplaceProfile(ctx, profile)
}

// RemoveExperience filters the entry out by id. An id with no match is
// a silent no-op; the write still happens.
func (ps *ProfileService) RemoveExperience(ctx context.Context, ownerID, entryID primitive.ObjectID) (*models.Profile, error) {
	profile, err := ps.profileRepo.GetProfileByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(ownerID, profile.User); err != nil {
		return nil, err
	}

	kept := make([]models.Experience, 0, len(profile.Experience))
	for _, exp := range profile.Experience {
		if exp.ID != entryID {
			kept = append(kept, exp)
		}
	}
	profile.Experience = kept

	return ps.profileRepo.ReplaceProfile(ctx, profile)
}

func (ps *ProfileService) AddEducation(ctx context.Context, ownerID primitive.ObjectID, entry models.Education) (*models.Profile, error) {
	if err := models.Validate.Struct(entry); err != nil {
		return nil, apperr.Validation("education", "School, degree, field of study and from date are required")
	}

	profile, err := ps.profileRepo.GetProfileByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(ownerID, profile.User); err != nil {
		return nil, err
	}

	entry.ID = primitive.NewObjectID()
	profile.Education = append([]models.Education{entry}, profile.Education...)

	return ps.profileRepo.ReplaceProfile(ctx, profile)
}

func (ps *ProfileService) RemoveEducation(ctx context.Context, ownerID, entryID primitive.ObjectID) (*models.Profile, error) {
	profile, err := ps.profileRepo.GetProfileByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(ownerID, profile.User); err != nil {
		return nil, err
	}

	kept := make([]models.Education, 0, len(profile.Education))
	for _, edu := range profile.Education {
		if edu.ID != entryID {
			kept = append(kept, edu)
		}
	}
	profile.Education = kept

	return ps.profileRepo.ReplaceProfile(ctx, profile)
}
