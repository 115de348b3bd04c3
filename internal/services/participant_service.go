package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giftflow/giftflow-backend/internal/models"
	"github.com/giftflow/giftflow-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure ParticipantServiceImpl implements ParticipantService
var _ ParticipantService = (*ParticipantServiceImpl)(nil)

// ParticipantServiceImpl handles participant-related business logic
type ParticipantServiceImpl struct {
	participantRepo repositories.ParticipantRepository
	eventRepo       repositories.EventRepository
	listLimit       int64
}

// NewParticipantService creates a new ParticipantServiceImpl. listLimit
// bounds how many participants a single event listing returns.
func NewParticipantService(participantRepo repositories.ParticipantRepository, eventRepo repositories.EventRepository, listLimit int64) *ParticipantServiceImpl {
	return &ParticipantServiceImpl{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		listLimit:       listLimit,
	}
}

// RegisterParticipant adds a participant to an event. The event reference
// must name an existing event.
func (s *ParticipantServiceImpl) RegisterParticipant(ctx context.Context, participant *models.Participant) error {
	if _, err := s.eventRepo.FindByID(ctx, participant.EventID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to check event: %w", err)
	}

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		slog.Error("Failed to create participant", "error", err, "eventId", participant.EventID.Hex())
		return fmt.Errorf("failed to save participant: %w", err)
	}

	slog.Info("Participant registered", "participantId", participant.ID.Hex(), "eventId", participant.EventID.Hex())
	return nil
}

// GetParticipantByID retrieves a participant by its ID
func (s *ParticipantServiceImpl) GetParticipantByID(ctx context.Context, id primitive.ObjectID) (*models.Participant, error) {
	participant, err := s.participantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to fetch participant: %w", err)
	}
	return participant, nil
}

// ListParticipants retrieves the participants of an event
func (s *ParticipantServiceImpl) ListParticipants(ctx context.Context, eventID primitive.ObjectID) ([]*models.Participant, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to check event: %w", err)
	}

	participants, err := s.participantRepo.FindByEventID(ctx, eventID, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

// SyncWishlist replaces the participant's whole wishlist with items
func (s *ParticipantServiceImpl) SyncWishlist(ctx context.Context, id primitive.ObjectID, items []models.WishlistItem) error {
	if err := s.participantRepo.ReplaceWishlist(ctx, id, items); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrParticipantNotFound
		}
		return fmt.Errorf("failed to update wishlist: %w", err)
	}
	return nil
}

// UpdateGiftStatus overwrites the participant's gift status
func (s *ParticipantServiceImpl) UpdateGiftStatus(ctx context.Context, id primitive.ObjectID, status *models.GiftStatus) error {
	status.UpdatedAt = time.Now()
	if err := s.participantRepo.SetGiftStatus(ctx, id, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrParticipantNotFound
		}
		return fmt.Errorf("failed to update gift status: %w", err)
	}
	slog.Info("Gift status updated", "participantId", id.Hex(), "status", status.Status)
	return nil
}
