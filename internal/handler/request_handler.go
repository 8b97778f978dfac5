package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shareit-platform/service-shareit/internal/application"
	"github.com/shareit-platform/service-shareit/internal/response"
)

// RequestHandler handles HTTP requests for the item request board.
type RequestHandler struct {
	service *application.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *application.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// RegisterRoutes registers item request routes.
func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup, sharer gin.HandlerFunc) {
	requests := r.Group("/requests")
	{
		requests.GET("/all", h.GetAllRequests)
		requests.POST("", sharer, h.CreateRequest)
		requests.GET("", sharer, h.GetOwnRequests)
		requests.GET("/:requestId", sharer, h.GetRequest)
	}
}

// CreateRequest handles POST /requests.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req application.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateRequest(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetOwnRequests handles GET /requests.
func (h *RequestHandler) GetOwnRequests(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	result, err := h.service.GetOwnRequests(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetAllRequests handles GET /requests/all.
func (h *RequestHandler) GetAllRequests(c *gin.Context) {
	result, err := h.service.GetAllRequests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetRequest handles GET /requests/:requestId.
func (h *RequestHandler) GetRequest(c *gin.Context) {
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	result, err := h.service.GetRequest(c.Request.Context(), requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
