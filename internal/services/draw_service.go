package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/giftflow/giftflow-backend/internal/models"
	"github.com/giftflow/giftflow-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure DrawServiceImpl implements DrawService
var _ DrawService = (*DrawServiceImpl)(nil)

// DrawServiceImpl handles draw-related business logic
type DrawServiceImpl struct {
	eventRepo        repositories.EventRepository
	participantRepo  repositories.ParticipantRepository
	matchRepo        repositories.MatchRepository
	maxAttempts      int
	participantLimit int64
}

// NewDrawService creates a new DrawServiceImpl. maxAttempts bounds the
// shuffle retries per draw; participantLimit bounds how many participants
// one draw covers.
func NewDrawService(
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	matchRepo repositories.MatchRepository,
	maxAttempts int,
	participantLimit int64,
) *DrawServiceImpl {
	return &DrawServiceImpl{
		eventRepo:        eventRepo,
		participantRepo:  participantRepo,
		matchRepo:        matchRepo,
		maxAttempts:      maxAttempts,
		participantLimit: participantLimit,
	}
}

// RunDraw computes a fresh giver/receiver assignment for the event's
// participants and persists it. Each run is independent: drawing again
// replaces every participant's match. Two concurrent draws for the same
// event race and the last writer wins; draws are not serialized.
//
// The per-participant match updates are not transactional. If the store
// fails partway, some participants keep assignments from this run and the
// rest keep their previous ones. The match document is only written after
// all participant updates succeed, so its presence implies a fully
// applied draw.
func (s *DrawServiceImpl) RunDraw(ctx context.Context, eventID primitive.ObjectID) (*models.Match, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to check event: %w", err)
	}

	participants, err := s.participantRepo.FindByEventID(ctx, eventID, s.participantLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	if len(participants) < 2 {
		return nil, ErrInsufficientParticipants
	}

	ids := make([]string, len(participants))
	for i, p := range participants {
		ids[i] = p.ID.Hex()
	}

	pairs, err := assignReceivers(ids, s.maxAttempts)
	if err != nil {
		slog.Error("Draw computation failed", "error", err, "eventId", eventID.Hex(), "participants", len(ids))
		return nil, err
	}

	for _, pair := range pairs {
		giverID, err := primitive.ObjectIDFromHex(pair.GiverID)
		if err != nil {
			return nil, fmt.Errorf("invalid giver id %q: %w", pair.GiverID, err)
		}
		if err := s.participantRepo.SetMatch(ctx, giverID, pair.ReceiverID); err != nil {
			return nil, fmt.Errorf("failed to record match for participant %s: %w", pair.GiverID, err)
		}
	}

	match := &models.Match{
		EventID: eventID,
		Pairs:   pairs,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	slog.Info("Draw completed", "eventId", eventID.Hex(), "matchId", match.ID.Hex(), "pairs", len(pairs))
	return match, nil
}

// GetLatestMatch retrieves the most recent draw result for an event
func (s *DrawServiceImpl) GetLatestMatch(ctx context.Context, eventID primitive.ObjectID) (*models.Match, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to check event: %w", err)
	}

	match, err := s.matchRepo.FindLatestByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to fetch match: %w", err)
	}
	return match, nil
}
