package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Weekdays carrying timetable entries, in display order.
var TimetableDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

const DefaultEntryColor = "bg-gradient-primary"

// TimetableEntry holds free-text time labels ("9:00 AM"), not parsed clock
// values. Sorting on start_time is therefore lexicographic.
type TimetableEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Subject   string             `bson:"subject" json:"subject"`
	Day       string             `bson:"day" json:"day"`
	StartTime string             `bson:"start_time" json:"startTime"`
	EndTime   string             `bson:"end_time" json:"endTime"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Color     string             `bson:"color" json:"color"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
