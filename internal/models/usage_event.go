package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UsageEventAIReply is the event type written for every AI-generated reply.
const UsageEventAIReply = "ai_reply"

// UsageEvent is one row of the usage-event log.
type UsageEvent struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"userId"`
	Type      string             `json:"type" bson:"type"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
	Data      UsageEventData     `json:"data" bson:"data"`
}

// UsageEventData holds the generation details of an ai_reply event.
type UsageEventData struct {
	ReplyType      string  `json:"replyType,omitempty" bson:"replyType,omitempty"`
	Tone           string  `json:"tone,omitempty" bson:"tone,omitempty"`
	TemplateID     string  `json:"templateId,omitempty" bson:"templateId,omitempty"`
	GenerationTime float64 `json:"generationTime" bson:"generationTime"` // seconds
	Success        bool    `json:"success" bson:"success"`
}
