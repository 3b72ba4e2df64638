package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectMember is the populated user shape of the projects list.
type ProjectMember struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// ProjectDetails is a project with creator and members populated from the
// users collection.
type ProjectDetails struct {
	ID          primitive.ObjectID `json:"_id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Members     []ProjectMember    `json:"members"`
	CreatedBy   ProjectMember      `json:"createdBy"`
	Status      string             `json:"status"`
	DueDate     *time.Time         `json:"dueDate,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description" binding:"omitempty,max=2000"`
	Members     []string `json:"members" binding:"omitempty,dive,len=24,hexadecimal"`
	DueDate     *Date    `json:"dueDate"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Status      *string `json:"status" binding:"omitempty,oneof=active completed archived"`
	DueDate     *Date   `json:"dueDate"`
}

type AddProjectMemberRequest struct {
	UserID string `json:"userId" binding:"required,len=24,hexadecimal"`
}
