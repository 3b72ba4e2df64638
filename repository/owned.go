package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound covers both a missing record and a record owned by someone
// else, so existence is never leaked to non-owners.
var ErrNotFound = errors.New("record not found")

// OwnedRepo implements the uniform CRUD pattern shared by notes, assignments,
// reminders and timetable entries. Every query and mutation carries the
// user_id filter, so no entity can forget the ownership check.
type OwnedRepo[T any] struct {
	Collection  *mongo.Collection
	DefaultSort bson.D
}

func (r *OwnedRepo[T]) ownedFilter(userID primitive.ObjectID, extra bson.M) bson.M {
	filter := bson.M{"user_id": userID}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

// FindPage returns one page of the user's records matching extra, plus the
// total match count.
func (r *OwnedRepo[T]) FindPage(ctx context.Context, userID primitive.ObjectID, extra bson.M, skip int64, limit int) ([]T, int64, error) {
	filter := r.ownedFilter(userID, extra)

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(r.DefaultSort).
		SetSkip(skip).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]T, 0, limit)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindOwnedAll returns the user's records matching extra without pagination.
// A zero limit means no limit; a nil sort falls back to the default sort.
func (r *OwnedRepo[T]) FindOwnedAll(ctx context.Context, userID primitive.ObjectID, extra bson.M, sort bson.D, limit int64) ([]T, error) {
	if sort == nil {
		sort = r.DefaultSort
	}
	opts := options.Find().SetSort(sort)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.Collection.Find(ctx, r.ownedFilter(userID, extra), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *OwnedRepo[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	result, err := r.Collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *OwnedRepo[T]) FindOwned(ctx context.Context, userID, id primitive.ObjectID) (*T, error) {
	var doc T
	err := r.Collection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// UpdateOwned applies a partial $set and returns the updated record.
// Applying the same set twice yields the same final state.
func (r *OwnedRepo[T]) UpdateOwned(ctx context.Context, userID, id primitive.ObjectID, set bson.M) (*T, error) {
	set["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := r.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": set},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *OwnedRepo[T]) DeleteOwned(ctx context.Context, userID, id primitive.ObjectID) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OwnedRepo[T]) CountOwned(ctx context.Context, userID primitive.ObjectID, extra bson.M) (int64, error) {
	return r.Collection.CountDocuments(ctx, r.ownedFilter(userID, extra))
}
