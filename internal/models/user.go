package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email              string             `json:"email" bson:"email"`
	Name               string             `json:"name" bson:"name"`
	Picture            string             `json:"picture,omitempty" bson:"picture,omitempty"`
	Provider           string             `json:"provider" bson:"provider"` // "email" or "google"
	GoogleID           string             `json:"-" bson:"googleId,omitempty"`
	GoogleAccessToken  string             `json:"-" bson:"googleAccessToken,omitempty"`
	GoogleRefreshToken string             `json:"-" bson:"googleRefreshToken,omitempty"`
	GoogleTokenExpiry  time.Time          `json:"-" bson:"googleTokenExpiry,omitempty"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// HasMailCredential reports whether the user can be authenticated against Gmail.
func (u *User) HasMailCredential() bool {
	return u != nil && (u.GoogleAccessToken != "" || u.GoogleRefreshToken != "")
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
