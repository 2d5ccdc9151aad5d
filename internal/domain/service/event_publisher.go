package service

import (
	"context"

	"mimapa/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReviewEvent publishes a committed review mutation
	PublishReviewEvent(ctx context.Context, event *entity.ReviewEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
