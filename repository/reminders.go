package repository

import (
	"context"
	"time"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RemindersRepo struct {
	OwnedRepo[model.Reminder]
}

func GetRemindersRepo(db *mongo.Database) *RemindersRepo {
	return &RemindersRepo{OwnedRepo[model.Reminder]{
		Collection:  db.Collection("reminders"),
		DefaultSort: bson.D{{Key: "reminder_date", Value: 1}},
	}}
}

// CountUpcoming counts incomplete reminders due in [from, to].
func (r *RemindersRepo) CountUpcoming(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (int64, error) {
	return r.CountOwned(ctx, userID, bson.M{
		"is_completed":  false,
		"reminder_date": bson.M{"$gte": from, "$lte": to},
	})
}

// FindDueWithin returns incomplete reminders with strictly positive remaining
// time up to the window end, soonest first. This backs the client's recurring
// alert poll.
func (r *RemindersRepo) FindDueWithin(ctx context.Context, userID primitive.ObjectID, now, until time.Time) ([]model.Reminder, error) {
	return r.FindOwnedAll(ctx, userID, bson.M{
		"is_completed":  false,
		"reminder_date": bson.M{"$gt": now, "$lte": until},
	}, nil, 0)
}
