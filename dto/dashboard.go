package dto

import (
	"time"

	"main/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NoteStats struct {
	Total int64 `json:"total"`
}

type AssignmentStats struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
}

type DashboardStats struct {
	Notes             NoteStats              `json:"notes"`
	Assignments       AssignmentStats        `json:"assignments"`
	UpcomingReminders int64                  `json:"upcomingReminders"`
	TodayTimetable    []model.TimetableEntry `json:"todayTimetable"`
}

// ActivityItem is one entry of the recent-activity feed, tagged with the
// entity kind it came from.
type ActivityItem struct {
	ID        primitive.ObjectID `json:"_id"`
	Title     string             `json:"title"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Type      string             `json:"type"`
}
