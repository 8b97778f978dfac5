package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shareit-platform/service-shareit/internal/application"
	"github.com/shareit-platform/service-shareit/internal/response"
)

// ItemHandler handles HTTP requests for items and their comments.
type ItemHandler struct {
	service  *application.ItemService
	comments *application.CommentService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *application.ItemService, comments *application.CommentService) *ItemHandler {
	return &ItemHandler{service: service, comments: comments}
}

// RegisterRoutes registers item routes.
func (h *ItemHandler) RegisterRoutes(r *gin.RouterGroup, sharer gin.HandlerFunc) {
	items := r.Group("/items")
	{
		items.GET("/search", h.SearchItems)
		items.GET("/:itemId", h.GetItem)
		items.POST("", sharer, h.CreateItem)
		items.GET("", sharer, h.GetOwnerItems)
		items.PATCH("/:itemId", sharer, h.UpdateItem)
		items.POST("/:itemId/comment", sharer, h.AddComment)
	}
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req application.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateItem(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateItem handles PATCH /items/:itemId.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req application.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateItem(c.Request.Context(), userID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetItem handles GET /items/:itemId.
func (h *ItemHandler) GetItem(c *gin.Context) {
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	result, err := h.service.GetItem(c.Request.Context(), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOwnerItems handles GET /items.
func (h *ItemHandler) GetOwnerItems(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	result, err := h.service.GetOwnerItems(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// SearchItems handles GET /items/search?text=.
func (h *ItemHandler) SearchItems(c *gin.Context) {
	result, err := h.service.SearchItems(c.Request.Context(), c.Query("text"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AddComment handles POST /items/:itemId/comment.
func (h *ItemHandler) AddComment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req application.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.comments.AddComment(c.Request.Context(), userID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}
