package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NoteAuthor is the populated owner shape of the shared notes view.
type NoteAuthor struct {
	ID         primitive.ObjectID `json:"_id"`
	Name       string             `json:"name"`
	University string             `json:"university"`
}

// SharedNote is a note in the shared view with its author populated, keeping
// the wire shape where the user id field carries the user document.
type SharedNote struct {
	ID         primitive.ObjectID   `json:"_id"`
	Author     NoteAuthor           `json:"userId"`
	Title      string               `json:"title"`
	Content    string               `json:"content,omitempty"`
	Subject    string               `json:"subject,omitempty"`
	IsPublic   bool                 `json:"isPublic"`
	SharedWith []primitive.ObjectID `json:"sharedWith"`
	Tags       []string             `json:"tags"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

type CreateNoteRequest struct {
	Title      string   `json:"title" binding:"required,max=200"`
	Content    string   `json:"content" binding:"omitempty,max=10000"`
	Subject    string   `json:"subject" binding:"omitempty,max=100"`
	IsPublic   bool     `json:"isPublic"`
	SharedWith []string `json:"sharedWith" binding:"omitempty,dive,len=24,hexadecimal"`
	Tags       []string `json:"tags" binding:"omitempty,dive,max=50"`
}

// UpdateNoteRequest carries only the fields present in the request body;
// absent fields are left untouched.
type UpdateNoteRequest struct {
	Title      *string   `json:"title" binding:"omitempty,max=200"`
	Content    *string   `json:"content" binding:"omitempty,max=10000"`
	Subject    *string   `json:"subject" binding:"omitempty,max=100"`
	IsPublic   *bool     `json:"isPublic"`
	SharedWith *[]string `json:"sharedWith" binding:"omitempty,dive,len=24,hexadecimal"`
	Tags       *[]string `json:"tags" binding:"omitempty,dive,max=50"`
}
