package usecase

import (
	"context"
	"time"

	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AlertWindow is how far ahead the client's recurring poll looks for
// reminders worth surfacing.
const AlertWindow = 24 * time.Hour

type RemindersService struct {
	RemindersRepo *repository.RemindersRepo
}

func (s *RemindersService) List(ctx context.Context, userID primitive.ObjectID, p utils.Pagination) ([]model.Reminder, int64, error) {
	return s.RemindersRepo.FindPage(ctx, userID, nil, p.Skip, p.Limit)
}

// Upcoming returns the reminders the client should surface: not completed,
// due strictly after now and within the alert window. The client recomputes
// this every poll, so an already-surfaced reminder reappears until it
// expires or is completed.
func (s *RemindersService) Upcoming(ctx context.Context, userID primitive.ObjectID, now time.Time) ([]model.Reminder, error) {
	return s.RemindersRepo.FindDueWithin(ctx, userID, now, now.Add(AlertWindow))
}

func (s *RemindersService) Create(ctx context.Context, userID primitive.ObjectID, req dto.CreateReminderRequest) (*model.Reminder, error) {
	now := time.Now()
	reminder := &model.Reminder{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		ReminderDate: req.ReminderDate.Time,
		IsCompleted:  false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.RemindersRepo.Insert(ctx, reminder)
	if err != nil {
		return nil, err
	}
	reminder.ID = id
	return reminder, nil
}

func (s *RemindersService) Update(ctx context.Context, userID, id primitive.ObjectID, req dto.UpdateReminderRequest) (*model.Reminder, error) {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.ReminderDate != nil {
		set["reminder_date"] = req.ReminderDate.Time
	}
	if req.IsCompleted != nil {
		set["is_completed"] = *req.IsCompleted
	}

	return s.RemindersRepo.UpdateOwned(ctx, userID, id, set)
}

func (s *RemindersService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	return s.RemindersRepo.DeleteOwned(ctx, userID, id)
}
