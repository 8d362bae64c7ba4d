package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"brightwater/handlers"
	"brightwater/models"
	"brightwater/routes"
	"brightwater/services/intake"
	"brightwater/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeStore struct {
	mu           sync.Mutex
	contactCalls int
	bookingCalls int
	fail         bool
	connected    bool
}

func (s *fakeStore) CreateContact(ctx context.Context, sub models.ContactSubmission) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contactCalls++
	if s.fail {
		return "", errors.New("store unavailable")
	}
	return sub.ID, nil
}

func (s *fakeStore) CreateBooking(ctx context.Context, sub models.BookingSubmission) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookingCalls++
	if s.fail {
		return "", errors.New("store unavailable")
	}
	return sub.ID, nil
}

func (s *fakeStore) CheckConnection(ctx context.Context) bool {
	return s.connected
}

type fakeSender struct {
	mu    sync.Mutex
	calls int
}

func (s *fakeSender) Send(ctx context.Context, msg notification.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return nil
}

func (s *fakeSender) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestRouter(t *testing.T, store *fakeStore, sender *fakeSender, emailConfigured bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &intake.DefaultIntakeService{
		Notifier: sender,
		Config: intake.Config{
			BusinessEmail: "hello@brightwatercounselling.com.au",
			BusinessName:  "Brightwater Counselling",
			SiteBaseURL:   "https://brightwatercounselling.com.au",
		},
	}
	var healthHandler *handlers.HealthHandler
	if store != nil {
		svc.Repo = store
		healthHandler = handlers.NewHealthHandler(store, emailConfigured, "1.0.0")
	} else {
		healthHandler = handlers.NewHealthHandler(nil, emailConfigured, "1.0.0")
	}

	logger := zaptest.NewLogger(t)
	intakeHandler := handlers.NewIntakeHandler(svc, logger)

	router := gin.New()
	routes.RegisterRoutes(router, &handlers.HandlerBundle{
		SubmitContactHandler:     intakeHandler.SubmitContactHandler,
		SubmitBookingHandler:     intakeHandler.SubmitBookingHandler,
		HealthCheckHandler:       healthHandler.HealthCheckHandler,
		ReportClientErrorHandler: handlers.ReportClientErrorHandler(logger),
	})
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validContactBody = `{
	"firstName": "Jo",
	"lastName": "Lee",
	"email": "jo@example.com",
	"enquiryType": "general",
	"message": "Hello there, I have a question."
}`

const validBookingBody = `{
	"clientFirstName": "Jo",
	"clientLastName": "Lee",
	"clientEmail": "jo@example.com",
	"clientPhone": "0412345678",
	"serviceType": "individual",
	"preferredDate": "2026-10-01",
	"preferredTime": "09:30",
	"location": "telehealth"
}`

func TestSubmitContactEndpoint(t *testing.T) {
	store := &fakeStore{connected: true}
	sender := &fakeSender{}
	router := newTestRouter(t, store, sender, true)

	w := doJSON(router, http.MethodPost, "/contact", validContactBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.Message, "Thank you for your message"))
	assert.NotEmpty(t, resp.ReferenceID)
	assert.Equal(t, 2, sender.callCount())
}

func TestSubmitContactEndpointRejectsShortMessage(t *testing.T) {
	store := &fakeStore{connected: true}
	sender := &fakeSender{}
	router := newTestRouter(t, store, sender, true)

	body := strings.Replace(validContactBody, "Hello there, I have a question.", "short", 1)
	w := doJSON(router, http.MethodPost, "/contact", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Errors  []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "message", resp.Errors[0].Field)

	assert.Equal(t, 0, store.contactCalls, "no persistence on validation failure")
	assert.Equal(t, 0, sender.callCount(), "no notification on validation failure")
}

func TestSubmitContactEndpointRejectsMalformedJSON(t *testing.T) {
	router := newTestRouter(t, &fakeStore{}, &fakeSender{}, true)

	w := doJSON(router, http.MethodPost, "/contact", `{"firstName": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitBookingEndpointSurvivesStoreFailure(t *testing.T) {
	store := &fakeStore{fail: true}
	sender := &fakeSender{}
	router := newTestRouter(t, store, sender, true)

	w := doJSON(router, http.MethodPost, "/bookings", validBookingBody)
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, true, raw["success"])
	_, hasBookingID := raw["bookingId"]
	assert.False(t, hasBookingID, "bookingId is omitted when persistence fails")

	token, _ := raw["confirmationToken"].(string)
	assert.GreaterOrEqual(t, len(token), 36)
	assert.Equal(t, 1, store.bookingCalls)
	assert.Equal(t, 2, sender.callCount())
}

func TestSubmitBookingEndpointDistinctTokens(t *testing.T) {
	router := newTestRouter(t, &fakeStore{}, &fakeSender{}, true)

	first := doJSON(router, http.MethodPost, "/bookings", validBookingBody)
	second := doJSON(router, http.MethodPost, "/bookings", validBookingBody)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	var a, b models.BookingResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.NotEqual(t, a.ConfirmationToken, b.ConfirmationToken)
}

func TestHealthEndpointWithoutStore(t *testing.T) {
	router := newTestRouter(t, nil, &fakeSender{}, false)

	w := doJSON(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
		Version   string `json:"version"`
		Services  struct {
			Database string `json:"database"`
			Email    string `json:"email"`
		} `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.NotEmpty(t, resp.Timestamp)
	assert.Equal(t, "disconnected", resp.Services.Database)
	assert.Equal(t, "not configured", resp.Services.Email)
}

func TestHealthEndpointWithStoreAndEmail(t *testing.T) {
	router := newTestRouter(t, &fakeStore{connected: true}, &fakeSender{}, true)

	w := doJSON(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"connected"`)
	assert.Contains(t, w.Body.String(), `"email":"configured"`)
}

func TestErrorSinkAlwaysAcknowledges(t *testing.T) {
	router := newTestRouter(t, &fakeStore{}, &fakeSender{}, true)

	w := doJSON(router, http.MethodPost, "/errors",
		`{"message":"TypeError: x is undefined","url":"/about","userAgent":"Mozilla/5.0"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received": true}`, w.Body.String())

	w = doJSON(router, http.MethodPost, "/errors", `not json`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received": true}`, w.Body.String())
}
