package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/coworking/internal/domain/errors"
	"github.com/polkiloo/coworking/internal/server/http/dto"
	"github.com/polkiloo/coworking/internal/server/http/middleware"
)

const invalidBodyMessage = "invalid request body"

var clientErrors = []error{
	domainErrors.ErrDuplicateEmail,
	domainErrors.ErrInvalidInput,
	domainErrors.ErrNotFound,
	domainErrors.ErrInvalidCredentials,
	domainErrors.ErrInvalidSpace,
	domainErrors.ErrInvalidDateRange,
}

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(middleware.UserIDContextKey)
}

// respondError maps domain errors to HTTP statuses. Unknown errors are
// attached to the context for the request logger and hidden from the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
		return
	}
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: target.Error()})
			return
		}
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: invalidBodyMessage})
}
