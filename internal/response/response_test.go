package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shareit-platform/service-shareit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_MapsKinds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err     error
		status  int
		message string
	}{
		{domain.NewNotFoundError("Item", 7), http.StatusNotFound, "Item with id = 7 not found"},
		{domain.NewNotAvailableError("busy"), http.StatusBadRequest, "busy"},
		{domain.NewValidationError("bad"), http.StatusBadRequest, "bad"},
		{domain.NewLackOfRightsError("no"), http.StatusForbidden, "no"},
		{domain.NewDuplicateError("dup"), http.StatusConflict, "dup"},
		{fmt.Errorf("wrapped: %w", domain.NewLackOfRightsError("deep")), http.StatusForbidden, "wrapped: deep"},
		{errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Error(c, tc.err)

		assert.Equal(t, tc.status, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.message, body["error"])
	}
}
