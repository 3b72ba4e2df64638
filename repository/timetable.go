package repository

import (
	"context"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TimetableRepo struct {
	OwnedRepo[model.TimetableEntry]
}

func GetTimetableRepo(db *mongo.Database) *TimetableRepo {
	return &TimetableRepo{OwnedRepo[model.TimetableEntry]{
		Collection:  db.Collection("timetable_entries"),
		DefaultSort: bson.D{{Key: "day", Value: 1}, {Key: "start_time", Value: 1}},
	}}
}

// FindByDay returns the user's entries for one weekday ordered by the
// start_time label. Labels are free text, so the order is lexicographic.
func (r *TimetableRepo) FindByDay(ctx context.Context, userID primitive.ObjectID, day string) ([]model.TimetableEntry, error) {
	return r.FindOwnedAll(ctx, userID, bson.M{"day": day},
		bson.D{{Key: "start_time", Value: 1}}, 0)
}
