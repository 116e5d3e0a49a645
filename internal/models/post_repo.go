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

func (mdb *MongodbRepo) CreatePost(ctx context.Context, post *Post) (*Post, error) {
	col, err := mdb.GetCollection(ctx, DbName(), PostColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := post.BeforeCreate(); err != nil {
		return nil, err
	}

	if _, err := col.InsertOne(ctx, post); err != nil {
		return nil, fmt.Errorf("error inserting post: %v", err)
	}

	return post, nil
}

// ListPosts returns all posts most recent first.
func (mdb *MongodbRepo) ListPosts(ctx context.Context) ([]*Post, error) {
	col, err := mdb.GetCollection(ctx, DbName(), PostColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding posts: %v", err)
	}
	defer cursor.Close(ctx)

	var posts []*Post
	for cursor.Next(ctx) {
		var p Post
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding post: %v", err)
		}
		posts = append(posts, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return posts, nil
}

func (mdb *MongodbRepo) GetPostByID(ctx context.Context, id primitive.ObjectID) (*Post, error) {
	col, err := mdb.GetCollection(ctx, DbName(), PostColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var post Post
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding post by ID: %v", err)
	}

	return &post, nil
}

func (mdb *MongodbRepo) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName(), PostColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("error deleting post: %v", err)
	}
	return nil
}

// DeletePostsByAuthor removes every post by the author. First step of
// the account-removal cascade; idempotent by construction.
func (mdb *MongodbRepo) DeletePostsByAuthor(ctx context.Context, authorID primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName(), PostColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.DeleteMany(ctx, bson.M{"user": authorID}); err != nil {
		return fmt.Errorf("error deleting posts: %v", err)
	}
	return nil
}

// UpdateLikes writes the like list back as one field. The list was read
// and rewritten by the caller, so concurrent likers race and the later
// write wins; the scope of the overwrite is just this field.
func (mdb *MongodbRepo) UpdateLikes(ctx context.Context, postID primitive.ObjectID, likes []Like) error {
	return mdb.setPostField(ctx, postID, "likes", likes)
}

// UpdateComments writes the comment list back as one field, same
// semantics as UpdateLikes.
func (mdb *MongodbRepo) UpdateComments(ctx context.Context, postID primitive.ObjectID, comments []Comment) error {
	return mdb.setPostField(ctx, postID, "comments", comments)
}

func (mdb *MongodbRepo) setPostField(ctx context.Context, postID primitive.ObjectID, field string, value interface{}) error {
	col, err := mdb.GetCollection(ctx, DbName(), PostColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{"$set": bson.M{field: value, "updated_at": time.Now()}}
	res, err := col.UpdateOne(ctx, bson.M{"_id": postID}, update)
	if err != nil {
		return fmt.Errorf("error updating post %s: %v", field, err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
