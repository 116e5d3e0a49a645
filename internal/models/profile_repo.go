package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devlink/server/internal/apperr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertProfile performs the atomic find-or-create keyed by the owner.
// Repeated calls replace the writable fields in place, so the owner key
// stays unique without any extra index bookkeeping.
func (mdb *MongodbRepo) UpsertProfile(ctx context.Context, ownerID primitive.ObjectID, fields *Profile) (*Profile, error) {
	col, err := mdb.GetCollection(ctx, DbName(), ProfileColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"user": ownerID}
	update := bson.M{
		"$set": bson.M{
			"user":           ownerID,
			"company":        fields.Company,
			"website":        fields.Website,
			"location":       fields.Location,
			"status":         fields.Status,
			"skills":         fields.Skills,
			"bio":            fields.Bio,
			"githubusername": fields.GithubUsername,
			"social":         fields.Social,
		},
		"$setOnInsert": bson.M{
			"experience": []Experience{},
			"education":  []Education{},
			"date":       time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result Profile
	if err := col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return nil, fmt.Errorf("error upserting profile: %v", err)
	}

	return &result, nil
}

func (mdb *MongodbRepo) GetProfileByOwner(ctx context.Context, ownerID primitive.ObjectID) (*Profile, error) {
	col, err := mdb.GetCollection(ctx, DbName(), ProfileColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var profile Profile
	err = col.FindOne(ctx, bson.M{"user": ownerID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding profile: %v", err)
	}

	mdb.attachOwners(ctx, &profile)
	return &profile, nil
}

func (mdb *MongodbRepo) ListProfiles(ctx context.Context) ([]*Profile, error) {
	col, err := mdb.GetCollection(ctx, DbName(), ProfileColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding profiles: %v", err)
	}
	defer cursor.Close(ctx)

	var profiles []*Profile
	for cursor.Next(ctx) {
		var p Profile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding profile: %v", err)
		}
		profiles = append(profiles, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	mdb.attachOwners(ctx, profiles...)
	return profiles, nil
}

// ReplaceProfile writes the whole document back. Embedded-list
// mutations go through here, so two concurrent writers to the same
// profile race at document granularity and the later write wins.
func (mdb *MongodbRepo) ReplaceProfile(ctx context.Context, profile *Profile) (*Profile, error) {
	col, err := mdb.GetCollection(ctx, DbName(), ProfileColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	owner := profile.Owner
	profile.Owner = nil
	if _, err := col.ReplaceOne(ctx, bson.M{"user": profile.User}, profile); err != nil {
		return nil, fmt.Errorf("error replacing profile: %v", err)
	}
	profile.Owner = owner

	return profile, nil
}

// DeleteProfile is idempotent; an absent profile is not an error.
func (mdb *MongodbRepo) DeleteProfile(ctx context.Context, ownerID primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName(), ProfileColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.DeleteOne(ctx, bson.M{"user": ownerID}); err != nil {
		return fmt.Errorf("error deleting profile: %v", err)
	}
	return nil
}

// attachOwners joins the owners' public name/avatar onto the given
// profiles with a single users query. Join failures leave Owner nil
// rather than failing the read.
func (mdb *MongodbRepo) attachOwners(ctx context.Context, profiles ...*Profile) {
	if len(profiles) == 0 {
		return
	}

	users, err := mdb.GetCollection(ctx, DbName(), UserColName)
	if err != nil {
		return
	}

	ids := make([]primitive.ObjectID, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.User)
	}

	cursor, err := users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return
	}
	defer cursor.Close(ctx)

	byID := make(map[primitive.ObjectID]*ProfileUser, len(ids))
	for cursor.Next(ctx) {
		var u ProfileUser
		if err := cursor.Decode(&u); err != nil {
			continue
		}
		byID[u.ID] = &u
	}

	for _, p := range profiles {
		p.Owner = byID[p.User]
	}
}
