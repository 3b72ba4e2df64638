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

type TimetableService struct {
	TimetableRepo *repository.TimetableRepo
}

func (s *TimetableService) List(ctx context.Context, userID primitive.ObjectID, p utils.Pagination) ([]model.TimetableEntry, int64, error) {
	return s.TimetableRepo.FindPage(ctx, userID, nil, p.Skip, p.Limit)
}

func (s *TimetableService) Create(ctx context.Context, userID primitive.ObjectID, req dto.CreateTimetableEntryRequest) (*model.TimetableEntry, error) {
	color := req.Color
	if color == "" {
		color = model.DefaultEntryColor
	}

	now := time.Now()
	entry := &model.TimetableEntry{
		UserID:    userID,
		Subject:   req.Subject,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.TimetableRepo.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return entry, nil
}

func (s *TimetableService) Update(ctx context.Context, userID, id primitive.ObjectID, req dto.UpdateTimetableEntryRequest) (*model.TimetableEntry, error) {
	set := bson.M{}
	if req.Subject != nil {
		set["subject"] = *req.Subject
	}
	if req.Day != nil {
		set["day"] = *req.Day
	}
	if req.StartTime != nil {
		set["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		set["end_time"] = *req.EndTime
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.Color != nil {
		set["color"] = *req.Color
	}

	return s.TimetableRepo.UpdateOwned(ctx, userID, id, set)
}

func (s *TimetableService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	return s.TimetableRepo.DeleteOwned(ctx, userID, id)
}
