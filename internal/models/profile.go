package models

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/devlink/server/internal/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ProfileColName = "profiles"

type Experience struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Company     string             `bson:"company" json:"company" validate:"required"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	From        time.Time          `bson:"from" json:"from" validate:"required"`
	To          *time.Time         `bson:"to,omitempty" json:"to,omitempty"`
	Current     bool               `bson:"current" json:"current"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

type Education struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	School       string             `bson:"school" json:"school" validate:"required"`
	Degree       string             `bson:"degree" json:"degree" validate:"required"`
	FieldOfStudy string             `bson:"fieldofstudy" json:"fieldofstudy" validate:"required"`
	From         time.Time          `bson:"from" json:"from" validate:"required"`
	To           *time.Time         `bson:"to,omitempty" json:"to,omitempty"`
	Current      bool               `bson:"current" json:"current"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
}

type SocialLinks struct {
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

// ProfileUser is the owner's public slice joined into profile reads.
type ProfileUser struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Avatar string             `bson:"avatar" json:"avatar"`
}

type Profile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User           primitive.ObjectID `bson:"user" json:"user"`
	Company        string             `bson:"company,omitempty" json:"company,omitempty"`
	Website        string             `bson:"website,omitempty" json:"website,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Status         string             `bson:"status" json:"status" validate:"required"`
	Skills         []string           `bson:"skills" json:"skills" validate:"required,min=1"`
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	GithubUsername string             `bson:"githubusername,omitempty" json:"githubusername,omitempty"`
	Social         SocialLinks        `bson:"social,omitempty" json:"social"`
	Experience     []Experience       `bson:"experience" json:"experience"`
	Education      []Education        `bson:"education" json:"education"`
	Date           time.Time          `bson:"date,omitempty" json:"date,omitempty"`

	// Joined on reads, never persisted.
	Owner *ProfileUser `bson:"-" json:"owner,omitempty"`
}

// RawSkills accepts either a JSON array of strings or a single
// comma-delimited string. Whatever the caller sent, after decode the
// value is the one canonical list form; nothing downstream ever
// branches on the wire shape again.
type RawSkills []string

func (s *RawSkills) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	// An empty string means no skills at all, not one blank entry.
	if strings.TrimSpace(raw) == "" {
		*s = nil
		return nil
	}
	*s = helpers.SplitSkills(raw)
	return nil
}

type ProfileRepo interface {
	UpsertProfile(ctx context.Context, ownerID primitive.ObjectID, fields *Profile) (*Profile, error)
	GetProfileByOwner(ctx context.Context, ownerID primitive.ObjectID) (*Profile, error)
	ListProfiles(ctx context.Context) ([]*Profile, error)
	ReplaceProfile(ctx context.Context, profile *Profile) (*Profile, error)
	DeleteProfile(ctx context.Context, ownerID primitive.ObjectID) error
}
