package middleware

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"contabilito/internal/domain" // Domain errors
	"contabilito/internal/store"  // Credential store

	"github.com/gin-gonic/gin" // Gin web framework
)

// CompanyMemberMiddleware checks the role-join table on each request:
// the authenticated user must hold a role in the :companyID company.
// The role rows are the sole source of truth for membership.
func CompanyMemberMiddleware(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Parse the company ID from the route
		companyID, err := strconv.ParseUint(c.Param("companyID"), 10, 32)
		if err != nil {
			// If not a number, abort with bad request status
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID"})
			return
		}
		// Look up the user's role within the company
		role, err := st.RoleFor(c.Request.Context(), userID.(uint), uint(companyID))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// No role row means no access
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Company access required"})
				return
			}
			// Any other error is a storage failure
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.Set("companyID", uint(companyID)) // Store companyID in context
		c.Set("companyRole", role)          // Store the user's role in context
		c.Next()                            // Proceed to the next handler
	}
}
