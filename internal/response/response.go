// Package response writes JSON responses and maps domain errors to HTTP statuses.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shareit-platform/service-shareit/internal/domain"
)

// Success writes a 200 response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest writes a 400 response with message.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}

// Error writes the response for err. Domain errors keep their message;
// anything else is recorded on the context and hidden behind a generic 500.
func Error(c *gin.Context, err error) {
	kind, ok := domain.KindOf(err)
	if !ok {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.AbortWithStatusJSON(StatusFor(kind), gin.H{"error": err.Error()})
}

// StatusFor returns the HTTP status of a domain error kind.
func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindNotAvailable, domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindLackOfRights:
		return http.StatusForbidden
	case domain.KindDuplicateData:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
