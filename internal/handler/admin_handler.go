package handler

import (
	"net/http"
	"strconv"
	"time"

	"go-gin-event-program/internal/model"
	"go-gin-event-program/internal/service"
	apperrors "go-gin-event-program/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes event management and the live step toggle.
type AdminHandler struct {
	events  service.EventService
	program service.ProgramService
}

func NewAdminHandler(events service.EventService, program service.ProgramService) *AdminHandler {
	return &AdminHandler{events: events, program: program}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	router := r.Group("admin/events", requireAdmin)
	{
		router.GET("", h.List)
		router.POST("", h.Create)
		router.GET(":slug", h.Get)
		router.PUT(":slug", h.Update)
		router.DELETE(":slug", h.Delete)
		router.GET(":slug/progress", h.Progress)
		router.PATCH(":slug/program/:stepIndex", h.SetStepCompletion)
		router.PATCH(":slug/publish", h.SetPublished)
	}
}

type CreateEventRequest struct {
	Name        string              `json:"name" binding:"required"`
	Slug        string              `json:"slug" binding:"required"`
	StartAt     *time.Time          `json:"startAt" binding:"required"`
	EndAt       *time.Time          `json:"endAt"`
	Venue       model.Venue         `json:"venue"`
	IsPublished bool                `json:"isPublished"`
	Program     []model.ProgramStep `json:"program"`
	Menus       []model.MenuItem    `json:"menus"`
	Infos       []model.InfoBlock   `json:"infos"`
	Media       []model.MediaItem   `json:"media"`
}

func (r *CreateEventRequest) toEvent() *model.Event {
	return &model.Event{
		Name:        r.Name,
		Slug:        r.Slug,
		StartAt:     *r.StartAt,
		EndAt:       r.EndAt,
		Venue:       r.Venue,
		IsPublished: r.IsPublished,
		Program:     r.Program,
		Menus:       r.Menus,
		Infos:       r.Infos,
		Media:       r.Media,
	}
}

// UpdateEventRequest is a partial update: absent fields keep their value.
type UpdateEventRequest struct {
	Name        *string              `json:"name"`
	Slug        *string              `json:"slug"`
	StartAt     *time.Time           `json:"startAt"`
	EndAt       *time.Time           `json:"endAt"`
	Venue       *model.Venue         `json:"venue"`
	IsPublished *bool                `json:"isPublished"`
	Program     *[]model.ProgramStep `json:"program"`
	Menus       *[]model.MenuItem    `json:"menus"`
	Infos       *[]model.InfoBlock   `json:"infos"`
	Media       *[]model.MediaItem   `json:"media"`
}

func (r *UpdateEventRequest) toParams() model.UpdateEventParams {
	return model.UpdateEventParams{
		Name:        r.Name,
		Slug:        r.Slug,
		StartAt:     r.StartAt,
		EndAt:       r.EndAt,
		Venue:       r.Venue,
		IsPublished: r.IsPublished,
		Program:     r.Program,
		Menus:       r.Menus,
		Infos:       r.Infos,
		Media:       r.Media,
	}
}

type StepCompletionRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type PublishRequest struct {
	IsPublished *bool `json:"isPublished" binding:"required"`
}

func (h *AdminHandler) List(c *gin.Context) {
	events, err := h.events.List(c)
	if err != nil {
		handleError(c, err, "List")
		return
	}

	summaries := make([]*model.EventSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, model.NewEventSummary(e))
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *AdminHandler) Get(c *gin.Context) {
	var uri slugUri
	if err := BindUri(c, &uri); err != nil {
		return
	}

	event, err := h.events.GetBySlug(c, uri.Slug)
	if err != nil {
		handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *AdminHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	event, err := h.events.Create(c, req.toEvent())
	if err != nil {
		handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, model.NewEventSummary(event))
}

func (h *AdminHandler) Update(c *gin.Context) {
	var uri slugUri
	if err := BindUri(c, &uri); err != nil {
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	event, err := h.events.Update(c, uri.Slug, req.toParams())
	if err != nil {
		handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event updated successfully",
		"event":   event,
	})
}

func (h *AdminHandler) Delete(c *gin.Context) {
	var uri slugUri
	if err := BindUri(c, &uri); err != nil {
		return
	}

	if err := h.events.Delete(c, uri.Slug); err != nil {
		handleError(c, err, "Delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event deleted successfully",
	})
}

func (h *AdminHandler) SetStepCompletion(c *gin.Context) {
	var uri slugUri
	if err := BindUri(c, &uri); err != nil {
		return
	}
	stepIndex, err := strconv.Atoi(c.Param("stepIndex"))
	if err != nil {
		handleError(c, apperrors.ErrInvalidStepIndex, "SetStepCompletion")
		return
	}
	var req StepCompletionRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	step, err := h.program.SetStepCompletion(c, uri.Slug, stepIndex, *req.Completed)
	if err != nil {
		handleError(c, err, "SetStepCompletion")
		return
	}
	c.JSON(http.StatusOK, step)
}

func (h *AdminHandler) Progress(c *gin.Context) {
	var uri slugUri
	if err := BindUri(c, &uri); err != nil {
		return
	}

	progress, err := h.program.Progress(c, uri.Slug)
	if err != nil {
		handleError(c, err, "Progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *AdminHandler) SetPublished(c *gin.Context) {
	var uri slugUri
	if err := BindUri(c, &uri); err != nil {
		return
	}
	var req PublishRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if err := h.events.SetPublished(c, uri.Slug, *req.IsPublished); err != nil {
		handleError(c, err, "SetPublished")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"isPublished": *req.IsPublished,
	})
}
