package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewEventType names a committed review mutation.
type ReviewEventType string

const (
	ReviewCreated ReviewEventType = "review.created"
	ReviewUpdated ReviewEventType = "review.updated"
	ReviewDeleted ReviewEventType = "review.deleted"
)

// ReviewEvent is published after a review mutation commits.
type ReviewEvent struct {
	Type       ReviewEventType `json:"type"`
	ReviewID   uuid.UUID       `json:"review_id"`
	EmailAutor string          `json:"email_autor"`
	RequestID  string          `json:"request_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Known reports whether t is one of the published event types.
func (t ReviewEventType) Known() bool {
	switch t {
	case ReviewCreated, ReviewUpdated, ReviewDeleted:
		return true
	}

	return false
}
