package services

import (
	"context"
	"time"

	"github.com/giftflow/giftflow-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes. They mirror the Mongo implementations'
// contract: timestamps stamped on create, mongo.ErrNoDocuments on misses.

type fakeEventRepo struct {
	events []*models.Event
}

func (r *fakeEventRepo) Create(_ context.Context, event *models.Event) error {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	r.events = append(r.events, event)
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Event, error) {
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeEventRepo) FindAll(_ context.Context, limit int64) ([]*models.Event, error) {
	out := []*models.Event{}
	for i := len(r.events) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, r.events[i])
	}
	return out, nil
}

type fakeParticipantRepo struct {
	participants []*models.Participant
}

func (r *fakeParticipantRepo) Create(_ context.Context, p *models.Participant) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	if p.Wishlist == nil {
		p.Wishlist = []models.WishlistItem{}
	}
	r.participants = append(r.participants, p)
	return nil
}

func (r *fakeParticipantRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Participant, error) {
	for _, p := range r.participants {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeParticipantRepo) FindByEventID(_ context.Context, eventID primitive.ObjectID, limit int64) ([]*models.Participant, error) {
	out := []*models.Participant{}
	for _, p := range r.participants {
		if p.EventID == eventID && int64(len(out)) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeParticipantRepo) CountByEventID(_ context.Context, eventID primitive.ObjectID) (int64, error) {
	var n int64
	for _, p := range r.participants {
		if p.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (r *fakeParticipantRepo) ReplaceWishlist(ctx context.Context, id primitive.ObjectID, items []models.WishlistItem) error {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if items == nil {
		items = []models.WishlistItem{}
	}
	p.Wishlist = items
	p.UpdatedAt = time.Now()
	return nil
}

func (r *fakeParticipantRepo) SetMatch(ctx context.Context, id primitive.ObjectID, receiverID string) error {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	p.MatchID = receiverID
	p.UpdatedAt = time.Now()
	return nil
}

func (r *fakeParticipantRepo) SetGiftStatus(ctx context.Context, id primitive.ObjectID, status *models.GiftStatus) error {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	p.GiftStatus = status
	p.UpdatedAt = time.Now()
	return nil
}

type fakeMatchRepo struct {
	matches []*models.Match
}

func (r *fakeMatchRepo) Create(_ context.Context, match *models.Match) error {
	match.ID = primitive.NewObjectID()
	match.CreatedAt = time.Now()
	match.UpdatedAt = time.Now()
	r.matches = append(r.matches, match)
	return nil
}

func (r *fakeMatchRepo) FindLatestByEventID(_ context.Context, eventID primitive.ObjectID) (*models.Match, error) {
	for i := len(r.matches) - 1; i >= 0; i-- {
		if r.matches[i].EventID == eventID {
			return r.matches[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
