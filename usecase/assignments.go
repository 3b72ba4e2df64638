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

type AssignmentsService struct {
	AssignmentsRepo *repository.AssignmentsRepo
}

func (s *AssignmentsService) List(ctx context.Context, userID primitive.ObjectID, status string, p utils.Pagination) ([]model.Assignment, int64, error) {
	var extra bson.M
	if status != "" {
		extra = bson.M{"status": status}
	}
	return s.AssignmentsRepo.FindPage(ctx, userID, extra, p.Skip, p.Limit)
}

func (s *AssignmentsService) Create(ctx context.Context, userID primitive.ObjectID, req dto.CreateAssignmentRequest) (*model.Assignment, error) {
	status := req.Status
	if status == "" {
		status = model.AssignmentPending
	}
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	now := time.Now()
	assignment := &model.Assignment{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		Status:      status,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.DueDate != nil {
		assignment.DueDate = &req.DueDate.Time
	}

	id, err := s.AssignmentsRepo.Insert(ctx, assignment)
	if err != nil {
		return nil, err
	}
	assignment.ID = id
	return assignment, nil
}

func (s *AssignmentsService) Update(ctx context.Context, userID, id primitive.ObjectID, req dto.UpdateAssignmentRequest) (*model.Assignment, error) {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Subject != nil {
		set["subject"] = *req.Subject
	}
	if req.DueDate != nil {
		set["due_date"] = req.DueDate.Time
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.Priority != nil {
		set["priority"] = *req.Priority
	}

	return s.AssignmentsRepo.UpdateOwned(ctx, userID, id, set)
}

func (s *AssignmentsService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	return s.AssignmentsRepo.DeleteOwned(ctx, userID, id)
}
