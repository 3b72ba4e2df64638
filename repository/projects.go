package repository

import (
	"context"
	"errors"
	"time"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProjectsRepo does not embed OwnedRepo: projects are readable by creator and
// members, while mutations are gated on created_by.
type ProjectsRepo struct {
	Collection *mongo.Collection
}

func GetProjectsRepo(db *mongo.Database) *ProjectsRepo {
	return &ProjectsRepo{Collection: db.Collection("projects")}
}

func visibleFilter(userID primitive.ObjectID, status string) bson.M {
	filter := bson.M{
		"$or": []bson.M{
			{"created_by": userID},
			{"members": userID},
		},
	}
	if status != "" {
		filter["status"] = status
	}
	return filter
}

// FindPageVisible returns one page of projects the user created or belongs
// to, newest first.
func (r *ProjectsRepo) FindPageVisible(ctx context.Context, userID primitive.ObjectID, status string, skip int64, limit int) ([]model.Project, int64, error) {
	filter := visibleFilter(userID, status)

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	projects := make([]model.Project, 0, limit)
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *ProjectsRepo) Insert(ctx context.Context, project *model.Project) error {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, project)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		project.ID = id
	}
	return nil
}

// FindByCreator fetches a project only when the user created it. Members and
// strangers both get ErrNotFound.
func (r *ProjectsRepo) FindByCreator(ctx context.Context, creatorID, id primitive.ObjectID) (*model.Project, error) {
	var project model.Project
	err := r.Collection.FindOne(ctx, bson.M{"_id": id, "created_by": creatorID}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectsRepo) UpdateByCreator(ctx context.Context, creatorID, id primitive.ObjectID, set bson.M) (*model.Project, error) {
	set["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var project model.Project
	err := r.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "created_by": creatorID},
		bson.M{"$set": set},
		opts,
	).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectsRepo) DeleteByCreator(ctx context.Context, creatorID, id primitive.ObjectID) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id, "created_by": creatorID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddMember appends the user to the member set. The duplicate check happens
// in the usecase before this call; $addToSet keeps the set consistent even if
// two adds race past the check.
func (r *ProjectsRepo) AddMember(ctx context.Context, id, memberID primitive.ObjectID) (*model.Project, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var project model.Project
	err := r.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$addToSet": bson.M{"members": memberID},
			"$set":      bson.M{"updated_at": time.Now()},
		},
		opts,
	).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// RemoveMember pulls the user from the member set; removing a non-member is
// a no-op.
func (r *ProjectsRepo) RemoveMember(ctx context.Context, id, memberID primitive.ObjectID) (*model.Project, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var project model.Project
	err := r.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$pull": bson.M{"members": memberID},
			"$set":  bson.M{"updated_at": time.Now()},
		},
		opts,
	).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}
