package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/giftflow/giftflow-backend/api/routes"
	"github.com/giftflow/giftflow-backend/internal/config"
	"github.com/giftflow/giftflow-backend/internal/handlers"
	"github.com/giftflow/giftflow-backend/internal/models"
	"github.com/giftflow/giftflow-backend/internal/services"
)

// Stub services so handler behavior is tested without a store. Unset
// function fields mean the route under test must not reach the service.

type stubEventService struct {
	createFn func(ctx context.Context, event *models.Event) error
	getFn    func(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	listFn   func(ctx context.Context, limit int64) ([]*models.Event, error)
}

func (s *stubEventService) CreateEvent(ctx context.Context, event *models.Event) error {
	return s.createFn(ctx, event)
}

func (s *stubEventService) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return s.getFn(ctx, id)
}

func (s *stubEventService) ListEvents(ctx context.Context, limit int64) ([]*models.Event, error) {
	return s.listFn(ctx, limit)
}

type stubParticipantService struct {
	registerFn   func(ctx context.Context, participant *models.Participant) error
	getFn        func(ctx context.Context, id primitive.ObjectID) (*models.Participant, error)
	listFn       func(ctx context.Context, eventID primitive.ObjectID) ([]*models.Participant, error)
	syncFn       func(ctx context.Context, id primitive.ObjectID, items []models.WishlistItem) error
	giftStatusFn func(ctx context.Context, id primitive.ObjectID, status *models.GiftStatus) error
}

func (s *stubParticipantService) RegisterParticipant(ctx context.Context, participant *models.Participant) error {
	return s.registerFn(ctx, participant)
}

func (s *stubParticipantService) GetParticipantByID(ctx context.Context, id primitive.ObjectID) (*models.Participant, error) {
	return s.getFn(ctx, id)
}

func (s *stubParticipantService) ListParticipants(ctx context.Context, eventID primitive.ObjectID) ([]*models.Participant, error) {
	return s.listFn(ctx, eventID)
}

func (s *stubParticipantService) SyncWishlist(ctx context.Context, id primitive.ObjectID, items []models.WishlistItem) error {
	return s.syncFn(ctx, id, items)
}

func (s *stubParticipantService) UpdateGiftStatus(ctx context.Context, id primitive.ObjectID, status *models.GiftStatus) error {
	return s.giftStatusFn(ctx, id, status)
}

type stubDrawService struct {
	runFn    func(ctx context.Context, eventID primitive.ObjectID) (*models.Match, error)
	latestFn func(ctx context.Context, eventID primitive.ObjectID) (*models.Match, error)
}

func (s *stubDrawService) RunDraw(ctx context.Context, eventID primitive.ObjectID) (*models.Match, error) {
	return s.runFn(ctx, eventID)
}

func (s *stubDrawService) GetLatestMatch(ctx context.Context, eventID primitive.ObjectID) (*models.Match, error) {
	return s.latestFn(ctx, eventID)
}

func newTestRouter(eventSvc services.EventService, participantSvc services.ParticipantService, drawSvc services.DrawService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"*"}
	return routes.SetupRouter(cfg, routes.HandlerDependencies{
		EventHandler:       handlers.NewEventHandler(eventSvc),
		ParticipantHandler: handlers.NewParticipantHandler(participantSvc),
		DrawHandler:        handlers.NewDrawHandler(drawSvc),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&stubEventService{}, &stubParticipantService{}, &stubDrawService{})

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "giftflow")
}

func TestCreateEvent(t *testing.T) {
	eventSvc := &stubEventService{
		createFn: func(_ context.Context, event *models.Event) error {
			event.ID = primitive.NewObjectID()
			event.Code = "GF123456"
			return nil
		},
	}
	router := newTestRouter(eventSvc, &stubParticipantService{}, &stubDrawService{})

	rec := doJSON(t, router, http.MethodPost, "/events", gin.H{
		"name":            "Office Exchange",
		"organizer_name":  "Dana",
		"organizer_email": "dana@example.com",
		"budget_min":      10,
		"budget_max":      50,
		"currency":        "USD",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Office Exchange", got.Name)
	assert.Equal(t, "GF123456", got.Code)
	assert.False(t, got.ID.IsZero())
}

func TestCreateEvent_ValidationFailures(t *testing.T) {
	eventSvc := &stubEventService{
		createFn: func(_ context.Context, _ *models.Event) error {
			t.Fatal("service must not be called for invalid input")
			return nil
		},
	}
	router := newTestRouter(eventSvc, &stubParticipantService{}, &stubDrawService{})

	cases := map[string]gin.H{
		"missing name":        {"organizer_name": "Dana", "organizer_email": "dana@example.com"},
		"malformed email":     {"name": "X", "organizer_name": "Dana", "organizer_email": "not-an-email"},
		"negative budget":     {"name": "X", "organizer_name": "Dana", "organizer_email": "dana@example.com", "budget_min": -1},
		"bad currency length": {"name": "X", "organizer_name": "Dana", "organizer_email": "dana@example.com", "currency": "EURO"},
		"inverted budgets":    {"name": "X", "organizer_name": "Dana", "organizer_email": "dana@example.com", "budget_min": 50, "budget_max": 10},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/events", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestGetEventByID_InvalidID(t *testing.T) {
	eventSvc := &stubEventService{
		getFn: func(_ context.Context, _ primitive.ObjectID) (*models.Event, error) {
			t.Fatal("service must not be called for a malformed id")
			return nil, nil
		},
	}
	router := newTestRouter(eventSvc, &stubParticipantService{}, &stubDrawService{})

	rec := doJSON(t, router, http.MethodGet, "/events/not-an-objectid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEventByID_NotFound(t *testing.T) {
	eventSvc := &stubEventService{
		getFn: func(_ context.Context, _ primitive.ObjectID) (*models.Event, error) {
			return nil, services.ErrEventNotFound
		},
	}
	router := newTestRouter(eventSvc, &stubParticipantService{}, &stubDrawService{})

	rec := doJSON(t, router, http.MethodGet, "/events/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateParticipant_UnknownEvent(t *testing.T) {
	participantSvc := &stubParticipantService{
		registerFn: func(_ context.Context, _ *models.Participant) error {
			return services.ErrEventNotFound
		},
	}
	router := newTestRouter(&stubEventService{}, participantSvc, &stubDrawService{})

	rec := doJSON(t, router, http.MethodPost, "/events/"+primitive.NewObjectID().Hex()+"/participants", gin.H{
		"name":  "Alice",
		"email": "alice@example.com",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSyncWishlist_PriceValidation(t *testing.T) {
	called := false
	participantSvc := &stubParticipantService{
		syncFn: func(_ context.Context, _ primitive.ObjectID, items []models.WishlistItem) error {
			called = true
			return nil
		},
	}
	router := newTestRouter(&stubEventService{}, participantSvc, &stubDrawService{})
	path := "/participants/" + primitive.NewObjectID().Hex() + "/wishlist"

	rec := doJSON(t, router, http.MethodPost, path, gin.H{
		"items": []gin.H{{"title": "Socks", "price": -5}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.False(t, called)

	rec = doJSON(t, router, http.MethodPost, path, gin.H{
		"items": []gin.H{{"title": "Socks", "price": 0}},
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, called)
}

func TestUpdateGiftStatus(t *testing.T) {
	var recorded *models.GiftStatus
	participantSvc := &stubParticipantService{
		giftStatusFn: func(_ context.Context, _ primitive.ObjectID, status *models.GiftStatus) error {
			recorded = status
			return nil
		},
	}
	router := newTestRouter(&stubEventService{}, participantSvc, &stubDrawService{})
	path := "/participants/" + primitive.NewObjectID().Hex() + "/gift-status"

	// Shipped with no tracking number is fine.
	rec := doJSON(t, router, http.MethodPost, path, gin.H{"status": "shipped"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, recorded)
	assert.Equal(t, models.GiftStatusShipped, recorded.Status)

	// Statuses outside the closed set are rejected.
	recorded = nil
	rec = doJSON(t, router, http.MethodPost, path, gin.H{"status": "wrapped"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Nil(t, recorded)
}

func TestUpdateGiftStatus_UnknownParticipant(t *testing.T) {
	participantSvc := &stubParticipantService{
		giftStatusFn: func(_ context.Context, _ primitive.ObjectID, _ *models.GiftStatus) error {
			return services.ErrParticipantNotFound
		},
	}
	router := newTestRouter(&stubEventService{}, participantSvc, &stubDrawService{})

	rec := doJSON(t, router, http.MethodPost, "/participants/"+primitive.NewObjectID().Hex()+"/gift-status", gin.H{"status": "requested"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRunDraw_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"event not found", services.ErrEventNotFound, http.StatusNotFound},
		{"insufficient participants", services.ErrInsufficientParticipants, http.StatusBadRequest},
		{"computation failed", services.ErrDrawComputationFailed, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			drawSvc := &stubDrawService{
				runFn: func(_ context.Context, _ primitive.ObjectID) (*models.Match, error) {
					return nil, tc.err
				},
			}
			router := newTestRouter(&stubEventService{}, &stubParticipantService{}, drawSvc)

			rec := doJSON(t, router, http.MethodPost, "/events/"+primitive.NewObjectID().Hex()+"/draw", nil)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRunDraw_ReturnsPairs(t *testing.T) {
	eventID := primitive.NewObjectID()
	drawSvc := &stubDrawService{
		runFn: func(_ context.Context, gotEventID primitive.ObjectID) (*models.Match, error) {
			assert.Equal(t, eventID, gotEventID)
			return &models.Match{
				ID:      primitive.NewObjectID(),
				EventID: gotEventID,
				Pairs: []models.Pair{
					{GiverID: "a", ReceiverID: "b"},
					{GiverID: "b", ReceiverID: "a"},
				},
			}, nil
		},
	}
	router := newTestRouter(&stubEventService{}, &stubParticipantService{}, drawSvc)

	rec := doJSON(t, router, http.MethodPost, "/events/"+eventID.Hex()+"/draw", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got models.Match
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Pairs, 2)
	assert.Equal(t, eventID, got.EventID)
}

func TestGetLatestMatch_NoDrawYet(t *testing.T) {
	drawSvc := &stubDrawService{
		latestFn: func(_ context.Context, _ primitive.ObjectID) (*models.Match, error) {
			return nil, services.ErrMatchNotFound
		},
	}
	router := newTestRouter(&stubEventService{}, &stubParticipantService{}, drawSvc)

	rec := doJSON(t, router, http.MethodGet, "/events/"+primitive.NewObjectID().Hex()+"/match", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
