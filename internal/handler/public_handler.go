package handler

import (
	"net/http"

	"go-gin-event-program/internal/model"
	"go-gin-event-program/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves guests: the teaser view, the full program once the
// event is unlocked, and the server clock.
type PublicHandler struct {
	service service.EventService
}

func NewPublicHandler(service service.EventService) *PublicHandler {
	return &PublicHandler{service: service}
}

func (h *PublicHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("time", h.Time)
	r.GET("events/:slug/public", h.GetPublic)
	r.GET("events/:slug/full", h.GetFull)
}

type slugUri struct {
	Slug string `uri:"slug" binding:"required"`
}

func (h *PublicHandler) Time(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"now": model.FormatInstant(h.service.Now())})
}

func (h *PublicHandler) GetPublic(c *gin.Context) {
	var uri slugUri
	if err := BindUri(c, &uri); err != nil {
		return
	}

	event, err := h.service.GetPublic(c, uri.Slug)
	if err != nil {
		handleError(c, err, "GetPublic")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *PublicHandler) GetFull(c *gin.Context) {
	var uri slugUri
	if err := BindUri(c, &uri); err != nil {
		return
	}

	event, err := h.service.GetFull(c, uri.Slug)
	if err != nil {
		handleError(c, err, "GetFull")
		return
	}
	c.JSON(http.StatusOK, event)
}
