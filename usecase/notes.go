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

type NotesService struct {
	NotesRepo *repository.NotesRepo
	UsersRepo *repository.UsersRepo
}

func (s *NotesService) List(ctx context.Context, userID primitive.ObjectID, p utils.Pagination) ([]model.Note, int64, error) {
	return s.NotesRepo.FindPage(ctx, userID, nil, p.Skip, p.Limit)
}

// ListShared returns public notes and notes shared with the user, the
// requester's own included, with each note's author populated.
func (s *NotesService) ListShared(ctx context.Context, userID primitive.ObjectID) ([]dto.SharedNote, error) {
	notes, err := s.NotesRepo.FindShared(ctx, userID)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]primitive.ObjectID, 0, len(notes))
	seen := make(map[primitive.ObjectID]bool, len(notes))
	for _, n := range notes {
		if !seen[n.UserID] {
			seen[n.UserID] = true
			ownerIDs = append(ownerIDs, n.UserID)
		}
	}

	owners, err := s.UsersRepo.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	shared := make([]dto.SharedNote, 0, len(notes))
	for _, n := range notes {
		owner := owners[n.UserID]
		shared = append(shared, dto.SharedNote{
			ID: n.ID,
			Author: dto.NoteAuthor{
				ID:         n.UserID,
				Name:       owner.Name,
				University: owner.University,
			},
			Title:      n.Title,
			Content:    n.Content,
			Subject:    n.Subject,
			IsPublic:   n.IsPublic,
			SharedWith: n.SharedWith,
			Tags:       n.Tags,
			CreatedAt:  n.CreatedAt,
			UpdatedAt:  n.UpdatedAt,
		})
	}
	return shared, nil
}

func (s *NotesService) Create(ctx context.Context, userID primitive.ObjectID, req dto.CreateNoteRequest) (*model.Note, error) {
	sharedWith, err := parseObjectIDs(req.SharedWith)
	if err != nil {
		return nil, err
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	note := &model.Note{
		UserID:     userID,
		Title:      req.Title,
		Content:    req.Content,
		Subject:    req.Subject,
		IsPublic:   req.IsPublic,
		SharedWith: sharedWith,
		Tags:       tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	id, err := s.NotesRepo.Insert(ctx, note)
	if err != nil {
		return nil, err
	}
	note.ID = id
	return note, nil
}

func (s *NotesService) Update(ctx context.Context, userID, id primitive.ObjectID, req dto.UpdateNoteRequest) (*model.Note, error) {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Content != nil {
		set["content"] = *req.Content
	}
	if req.Subject != nil {
		set["subject"] = *req.Subject
	}
	if req.IsPublic != nil {
		set["is_public"] = *req.IsPublic
	}
	if req.SharedWith != nil {
		sharedWith, err := parseObjectIDs(*req.SharedWith)
		if err != nil {
			return nil, err
		}
		set["shared_with"] = sharedWith
	}
	if req.Tags != nil {
		set["tags"] = *req.Tags
	}

	return s.NotesRepo.UpdateOwned(ctx, userID, id, set)
}

func (s *NotesService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	return s.NotesRepo.DeleteOwned(ctx, userID, id)
}

// parseObjectIDs converts validated hex ids; the DTO layer has already
// checked the format.
func parseObjectIDs(hexIDs []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, h := range hexIDs {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
