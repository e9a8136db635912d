package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-gin-event-program/internal/handler"
	"go-gin-event-program/internal/model"
	repoMocks "go-gin-event-program/internal/repository/mocks"
	"go-gin-event-program/internal/service"
	"go-gin-event-program/internal/service/mocks"
	apperrors "go-gin-event-program/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var galaStart = time.Date(2025, 6, 21, 19, 0, 0, 0, time.UTC)

func setupPublicTestRouter(svc service.EventService) *gin.Engine {
	router, api := newTestRouter()
	handler.NewPublicHandler(svc).RegisterRoutes(api)
	return router
}

func galaEvent() *model.Event {
	return &model.Event{
		ID:          1,
		EventID:     uuid.New(),
		Slug:        "gala",
		Name:        "Gala",
		StartAt:     galaStart,
		IsPublished: true,
		Venue:       model.Venue{Name: "Rocher", Address: "1 quai"},
		Program: []model.ProgramStep{
			{ID: uuid.New(), Title: "Apéritif", Order: 1},
			{ID: uuid.New(), Title: "Dîner", Order: 2},
		},
		Menus: []model.MenuItem{},
		Infos: []model.InfoBlock{},
		Media: []model.MediaItem{},
	}
}

func TestPublicHandler_Time(t *testing.T) {
	mockService := mocks.NewMockEventService(t)
	router := setupPublicTestRouter(mockService)

	now := time.Date(2025, 6, 21, 18, 59, 59, 500_000_000, time.UTC)
	mockService.EXPECT().Now().Return(now).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/time", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"now":"2025-06-21T18:59:59.500Z"}`, w.Body.String())
}

func TestPublicHandler_GetPublic(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupPublicTestRouter(mockService)

		event := galaEvent()
		mockService.EXPECT().GetPublic(mock.Anything, "gala").
			Return(model.NewPublicEvent(event, true, galaStart.Add(-time.Minute)), nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/gala/public", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["locked"])
		assert.Equal(t, "gala", body["slug"])
		assert.Equal(t, "2025-06-21T18:59:00.000Z", body["now"])
		assert.NotContains(t, body, "program")
	})

	t.Run("Failed - not found", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupPublicTestRouter(mockService)

		mockService.EXPECT().GetPublic(mock.Anything, "nope").Return(nil, apperrors.ErrEventNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/nope/public", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, handler.CodeNotFound, decodeError(t, w.Body.Bytes()).Error.Code)
	})
}

func TestPublicHandler_GetFull(t *testing.T) {
	t.Run("Failed - locked", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupPublicTestRouter(mockService)

		mockService.EXPECT().GetFull(mock.Anything, "gala").Return(nil, apperrors.ErrEventLocked).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/gala/full", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, handler.CodeEventLocked, decodeError(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("Failed - unexpected error hides the cause", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupPublicTestRouter(mockService)

		mockService.EXPECT().GetFull(mock.Anything, "gala").Return(nil, assert.AnError).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/gala/full", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeError(t, w.Body.Bytes())
		assert.Equal(t, handler.CodeInternal, resp.Error.Code)
		assert.Equal(t, "Internal server error", resp.Error.Message)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

// The public view flips to unlocked once the server clock reaches startAt,
// and the full program becomes readable at the same instant.
func TestPublicHandler_UnlockAtStart(t *testing.T) {
	repo := repoMocks.NewMockEventRepository(t)
	now := galaStart.Add(-time.Second)
	svc := service.NewEventService(repo, func() time.Time { return now })
	router := setupPublicTestRouter(svc)

	repo.EXPECT().FindBySlug(mock.Anything, "gala").Return(galaEvent(), nil)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	w := get("/api/events/gala/public")
	require.Equal(t, http.StatusOK, w.Code)
	var public model.PublicEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	assert.True(t, public.Locked)
	assert.Equal(t, http.StatusForbidden, get("/api/events/gala/full").Code)

	now = galaStart

	w = get("/api/events/gala/public")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	assert.False(t, public.Locked)
	assert.Equal(t, "2025-06-21T19:00:00.000Z", public.Now)

	w = get("/api/events/gala/full")
	require.Equal(t, http.StatusOK, w.Code)
	var detail model.EventDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Len(t, detail.Program, 2)
}
