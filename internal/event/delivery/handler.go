package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lawdesk-backend/internal/apperr"
	eventdto "lawdesk-backend/internal/event/dto"
	"lawdesk-backend/internal/event/usecase"
)

// EventHandler handles calendar event HTTP requests
type EventHandler struct {
	eventUsecase usecase.EventUsecase
	logger       *zap.SugaredLogger
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventUsecase usecase.EventUsecase, logger *zap.SugaredLogger) *EventHandler {
	return &EventHandler{
		eventUsecase: eventUsecase,
		logger:       logger,
	}
}

// ListEvents returns all diary events
// GET /events
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventUsecase.ListEvents()
	if err != nil {
		h.fail(c, err, "list events failed")
		return
	}
	c.JSON(http.StatusOK, events)
}

// CreateEvent creates a diary event
// POST /events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req eventdto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	event, err := h.eventUsecase.CreateEvent(&req)
	if err != nil {
		h.fail(c, err, "create event failed")
		return
	}
	c.JSON(http.StatusCreated, event)
}

// GetEvent returns a single event
// GET /events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventUsecase.GetEvent(c.Param("id"))
	if err != nil {
		h.fail(c, err, "get event failed")
		return
	}
	c.JSON(http.StatusOK, event)
}

// UpdateEvent replaces an event's fields
// PUT /events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req eventdto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	event, err := h.eventUsecase.UpdateEvent(c.Param("id"), &req)
	if err != nil {
		h.fail(c, err, "update event failed")
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes an event
// DELETE /events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.eventUsecase.DeleteEvent(c.Param("id")); err != nil {
		h.fail(c, err, "delete event failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *EventHandler) fail(c *gin.Context, err error, logMsg string) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		h.logger.Errorw(logMsg, "error", err)
	}
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}
