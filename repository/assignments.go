package repository

import (
	"context"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssignmentsRepo struct {
	OwnedRepo[model.Assignment]
}

func GetAssignmentsRepo(db *mongo.Database) *AssignmentsRepo {
	return &AssignmentsRepo{OwnedRepo[model.Assignment]{
		Collection:  db.Collection("assignments"),
		DefaultSort: bson.D{{Key: "created_at", Value: -1}},
	}}
}

func (r *AssignmentsRepo) CountByStatus(ctx context.Context, userID primitive.ObjectID, status string) (int64, error) {
	return r.CountOwned(ctx, userID, bson.M{"status": status})
}
