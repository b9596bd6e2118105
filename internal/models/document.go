package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a teaching document owned by the tenant's document store.
type Document struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Category      string             `json:"category" bson:"category"` // lectures, assignments, syllabi, ...
	Status        string             `json:"status" bson:"status"`     // draft, review, published, archived, ...
	Content       string             `json:"content,omitempty" bson:"content,omitempty"`
	WordCount     int                `json:"wordCount" bson:"wordCount"`
	AIGenerated   bool               `json:"aiGenerated" bson:"aiGenerated"`
	Author        string             `json:"author" bson:"author"`
	Collaborators []string           `json:"collaborators,omitempty" bson:"collaborators,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
