package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Note struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	UserID     primitive.ObjectID   `bson:"user_id" json:"userId"`
	Title      string               `bson:"title" json:"title"`
	Content    string               `bson:"content,omitempty" json:"content,omitempty"`
	Subject    string               `bson:"subject,omitempty" json:"subject,omitempty"`
	IsPublic   bool                 `bson:"is_public" json:"isPublic"`
	SharedWith []primitive.ObjectID `bson:"shared_with" json:"sharedWith"`
	Tags       []string             `bson:"tags" json:"tags"`
	CreatedAt  time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time            `bson:"updated_at" json:"updatedAt"`
}
