package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"contabilito/internal/domain" // Domain errors

	"github.com/gin-gonic/gin" // Gin web framework
)

// respondError maps a domain failure onto its HTTP status and writes the
// JSON error body. Unexpected errors get a generic 500; the detail stays
// server-side.
func respondError(c *gin.Context, err error) {
	var conflict *domain.ConflictError
	switch {
	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrTermsNotAccepted),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Validation failure
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()}) // Uniqueness conflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()}) // Bad credentials
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"}) // Unexpected failure
	}
}
