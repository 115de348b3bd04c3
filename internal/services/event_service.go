package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/giftflow/giftflow-backend/internal/models"
	"github.com/giftflow/giftflow-backend/internal/repositories"
	"github.com/giftflow/giftflow-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure EventServiceImpl implements EventService
var _ EventService = (*EventServiceImpl)(nil)

// EventServiceImpl handles event-related business logic
type EventServiceImpl struct {
	eventRepo repositories.EventRepository
}

// NewEventService creates a new EventServiceImpl
func NewEventService(eventRepo repositories.EventRepository) *EventServiceImpl {
	return &EventServiceImpl{
		eventRepo: eventRepo,
	}
}

// CreateEvent persists a new event. The currency defaults to USD and every
// event gets a generated join code.
func (s *EventServiceImpl) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.Currency == "" {
		event.Currency = "USD"
	}
	event.Code = utils.GenerateEventCode()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		slog.Error("Failed to create event", "error", err)
		return fmt.Errorf("failed to save event: %w", err)
	}

	slog.Info("Event created", "eventId", event.ID.Hex(), "code", event.Code)
	return nil
}

// GetEventByID retrieves an event by its ID
func (s *EventServiceImpl) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return event, nil
}

// ListEvents retrieves events, most recent first, bounded by limit
func (s *EventServiceImpl) ListEvents(ctx context.Context, limit int64) ([]*models.Event, error) {
	events, err := s.eventRepo.FindAll(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}
