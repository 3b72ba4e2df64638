package usecase

import (
	"context"
	"errors"

	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrDuplicateMember = errors.New("user is already a member of this project")
	ErrInvalidID       = errors.New("invalid id format")
)

type ProjectsService struct {
	ProjectsRepo *repository.ProjectsRepo
	UsersRepo    *repository.UsersRepo
}

// List returns projects the user created or belongs to, with creator and
// member details populated from the users collection.
func (s *ProjectsService) List(ctx context.Context, userID primitive.ObjectID, status string, p utils.Pagination) ([]dto.ProjectDetails, int64, error) {
	projects, total, err := s.ProjectsRepo.FindPageVisible(ctx, userID, status, p.Skip, p.Limit)
	if err != nil {
		return nil, 0, err
	}

	refIDs := make([]primitive.ObjectID, 0, len(projects)*2)
	seen := make(map[primitive.ObjectID]bool)
	collect := func(id primitive.ObjectID) {
		if !seen[id] {
			seen[id] = true
			refIDs = append(refIDs, id)
		}
	}
	for _, project := range projects {
		collect(project.CreatedBy)
		for _, m := range project.Members {
			collect(m)
		}
	}

	users, err := s.UsersRepo.FindByIDs(ctx, refIDs)
	if err != nil {
		return nil, 0, err
	}
	ref := func(id primitive.ObjectID) dto.ProjectMember {
		u := users[id]
		return dto.ProjectMember{ID: id, Name: u.Name, Email: u.Email}
	}

	details := make([]dto.ProjectDetails, 0, len(projects))
	for _, project := range projects {
		members := make([]dto.ProjectMember, 0, len(project.Members))
		for _, m := range project.Members {
			members = append(members, ref(m))
		}
		details = append(details, dto.ProjectDetails{
			ID:          project.ID,
			Name:        project.Name,
			Description: project.Description,
			Members:     members,
			CreatedBy:   ref(project.CreatedBy),
			Status:      project.Status,
			DueDate:     project.DueDate,
			CreatedAt:   project.CreatedAt,
			UpdatedAt:   project.UpdatedAt,
		})
	}
	return details, total, nil
}

// Create persists a project with the caller as creator. The creator is
// force-added to the member set if absent.
func (s *ProjectsService) Create(ctx context.Context, userID primitive.ObjectID, req dto.CreateProjectRequest) (*model.Project, error) {
	members, err := parseObjectIDs(req.Members)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		Members:     members,
		CreatedBy:   userID,
		Status:      model.ProjectActive,
	}
	if !project.HasMember(userID) {
		project.Members = append(project.Members, userID)
	}
	if req.DueDate != nil {
		due := req.DueDate.Time
		project.DueDate = &due
	}

	if err := s.ProjectsRepo.Insert(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update succeeds only for the creator; members get the same ErrNotFound as
// strangers.
func (s *ProjectsService) Update(ctx context.Context, userID, id primitive.ObjectID, req dto.UpdateProjectRequest) (*model.Project, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.DueDate != nil {
		set["due_date"] = req.DueDate.Time
	}

	return s.ProjectsRepo.UpdateByCreator(ctx, userID, id, set)
}

func (s *ProjectsService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	return s.ProjectsRepo.DeleteByCreator(ctx, userID, id)
}

// AddMember adds a user to a project the caller created. Adding an existing
// member is a conflict. The duplicate check reads then writes without a
// transaction; $addToSet keeps the set consistent if two adds race.
func (s *ProjectsService) AddMember(ctx context.Context, userID, projectID primitive.ObjectID, memberHex string) (*model.Project, error) {
	memberID, err := primitive.ObjectIDFromHex(memberHex)
	if err != nil {
		return nil, ErrInvalidID
	}

	project, err := s.ProjectsRepo.FindByCreator(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if project.HasMember(memberID) {
		return nil, ErrDuplicateMember
	}

	return s.ProjectsRepo.AddMember(ctx, projectID, memberID)
}

// RemoveMember removes a user from a project the caller created. Removing a
// non-member succeeds without effect.
func (s *ProjectsService) RemoveMember(ctx context.Context, userID, projectID primitive.ObjectID, memberHex string) (*model.Project, error) {
	memberID, err := primitive.ObjectIDFromHex(memberHex)
	if err != nil {
		return nil, ErrInvalidID
	}

	if _, err := s.ProjectsRepo.FindByCreator(ctx, userID, projectID); err != nil {
		return nil, err
	}

	return s.ProjectsRepo.RemoveMember(ctx, projectID, memberID)
}
