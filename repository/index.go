package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the collection indexes at startup. The unique email
// index also backs the duplicate-registration conflict.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("email_unique").SetUnique(true),
			},
		},
		"notes": {
			{
				Keys: bson.D{
					{Key: "user_id", Value: 1},
					{Key: "created_at", Value: -1},
				},
				Options: options.Index().SetName("user_notes_date"),
			},
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "is_public", Value: 1}},
				Options: options.Index().SetName("user_public_notes"),
			},
			{
				Keys:    bson.D{{Key: "shared_with", Value: 1}},
				Options: options.Index().SetName("shared_with"),
			},
		},
		"assignments": {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("user_assignment_status"),
			},
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "due_date", Value: 1}},
				Options: options.Index().SetName("user_assignment_due"),
			},
		},
		"reminders": {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "reminder_date", Value: 1}},
				Options: options.Index().SetName("user_reminder_date"),
			},
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "is_completed", Value: 1}},
				Options: options.Index().SetName("user_reminder_completed"),
			},
		},
		"timetable_entries": {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "day", Value: 1}},
				Options: options.Index().SetName("user_timetable_day"),
			},
		},
		"projects": {
			{
				Keys:    bson.D{{Key: "created_by", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("creator_project_status"),
			},
			{
				Keys:    bson.D{{Key: "members", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("member_project_status"),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", collection, err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
