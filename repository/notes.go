package repository

import (
	"context"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	OwnedRepo[model.Note]
}

func GetNotesRepo(db *mongo.Database) *NotesRepo {
	return &NotesRepo{OwnedRepo[model.Note]{
		Collection:  db.Collection("notes"),
		DefaultSort: bson.D{{Key: "created_at", Value: -1}},
	}}
}

// FindShared returns every note that is public or explicitly shared with the
// user. The filter does not exclude the requester's own notes; the shared
// view intentionally includes them.
func (r *NotesRepo) FindShared(ctx context.Context, userID primitive.ObjectID) ([]model.Note, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"is_public": true},
			{"shared_with": userID},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := make([]model.Note, 0)
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}
