package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	"lawdesk-backend/internal/apperr"
	clientdto "lawdesk-backend/internal/client/dto"
	"lawdesk-backend/internal/client/usecase"
)

// ClientHandler handles client, billing and case-details HTTP requests
type ClientHandler struct {
	clientUsecase usecase.ClientUsecase
	logger        *zap.SugaredLogger
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientUsecase usecase.ClientUsecase, logger *zap.SugaredLogger) *ClientHandler {
	return &ClientHandler{
		clientUsecase: clientUsecase,
		logger:        logger,
	}
}

// CreateClient creates a client, optionally with nested case details
// POST /clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req clientdto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientUsecase.CreateClient(&req)
	if err != nil {
		h.fail(c, err, "create client failed")
		return
	}
	c.JSON(http.StatusCreated, client)
}

// ListClients returns all clients, newest first
// GET /clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientUsecase.ListClients()
	if err != nil {
		h.fail(c, err, "list clients failed")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// UpdateClient applies partial updates to a client
// PATCH /clients/:id
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req clientdto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientUsecase.UpdateClient(c.Param("id"), &req)
	if err != nil {
		h.fail(c, err, "update client failed")
		return
	}
	c.JSON(http.StatusOK, client)
}

// Stats returns case counters for the dashboard
// GET /stats
func (h *ClientHandler) Stats(c *gin.Context) {
	stats, err := h.clientUsecase.Stats()
	if err != nil {
		h.fail(c, err, "stats failed")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetBilling returns the billing record for a client
// GET /clients/:id/billing
func (h *ClientHandler) GetBilling(c *gin.Context) {
	billing, err := h.clientUsecase.GetBilling(c.Param("id"))
	if err != nil {
		h.fail(c, err, "get billing failed")
		return
	}
	c.JSON(http.StatusOK, billing)
}

// CreateBilling creates the billing record for a client
// POST /clients/:id/billing
func (h *ClientHandler) CreateBilling(c *gin.Context) {
	var req clientdto.BillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	billing, err := h.clientUsecase.CreateBilling(c.Param("id"), &req)
	if err != nil {
		h.fail(c, err, "create billing failed")
		return
	}
	c.JSON(http.StatusCreated, billing)
}

// UpdateBilling replaces the amounts on the billing record
// PATCH /clients/:id/billing
func (h *ClientHandler) UpdateBilling(c *gin.Context) {
	var req clientdto.BillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	billing, err := h.clientUsecase.UpdateBilling(c.Param("id"), &req)
	if err != nil {
		h.fail(c, err, "update billing failed")
		return
	}
	c.JSON(http.StatusOK, billing)
}

// DeleteBilling removes the billing record for a client
// DELETE /clients/:id/billing
func (h *ClientHandler) DeleteBilling(c *gin.Context) {
	if err := h.clientUsecase.DeleteBilling(c.Param("id")); err != nil {
		h.fail(c, err, "delete billing failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCaseDetails returns the case details for a client
// GET /clients/:id/case-details
func (h *ClientHandler) GetCaseDetails(c *gin.Context) {
	details, err := h.clientUsecase.GetCaseDetails(c.Param("id"))
	if err != nil {
		h.fail(c, err, "get case details failed")
		return
	}
	c.JSON(http.StatusOK, details)
}

// UpsertCaseDetails creates or replaces the case details
// POST /clients/:id/case-details
func (h *ClientHandler) UpsertCaseDetails(c *gin.Context) {
	var req clientdto.CaseDetailsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details, err := h.clientUsecase.UpsertCaseDetails(c.Param("id"), &req)
	if err != nil {
		h.fail(c, err, "upsert case details failed")
		return
	}
	c.JSON(http.StatusCreated, details)
}

// UpdateCaseDetails updates existing case details
// PATCH /clients/:id/case-details
func (h *ClientHandler) UpdateCaseDetails(c *gin.Context) {
	var req clientdto.CaseDetailsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details, err := h.clientUsecase.UpdateCaseDetails(c.Param("id"), &req)
	if err != nil {
		h.fail(c, err, "update case details failed")
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *ClientHandler) fail(c *gin.Context, err error, logMsg string) {
	var verrs validation.Errors
	var verr validation.Error
	if errors.As(err, &verrs) || errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		h.logger.Errorw(logMsg, "error", err)
	}
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}
