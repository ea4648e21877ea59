package api

import (
	"net/http" // HTTP status codes

	"contabilito/internal/service" // Registration and auth services
	"contabilito/internal/utils"   // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RegisterRequest represents the registration form
type RegisterRequest struct {
	FirstName     string `json:"firstName"`     // First name
	LastName      string `json:"lastName"`      // Last name
	Username      string `json:"username"`      // Username
	Email         string `json:"email"`         // Email address
	Password      string `json:"password"`      // Plaintext password
	TermsAccepted bool   `json:"termsAccepted"` // Terms and conditions flag
	CompanyName   string `json:"companyName"`   // Optional company name
}

// RegisterHandler creates a user and, when a company name is given, the
// company and its owner role, as one atomic unit
func RegisterHandler(reg *service.Registration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Run the registration transaction
		result, err := reg.Register(c.Request.Context(), service.RegisterInput{
			FirstName:     req.FirstName,     // First name
			LastName:      req.LastName,      // Last name
			Username:      req.Username,      // Username
			Email:         req.Email,         // Email address
			Password:      req.Password,      // Plaintext password
			TermsAccepted: req.TermsAccepted, // Terms flag
			CompanyName:   req.CompanyName,   // Optional company name
		})
		// Handle registration result
		if err != nil {
			// Log the failure with context
			logrus.WithFields(logrus.Fields{
				"username": req.Username, // Attempted username
				"error":    err.Error(),  // Error message
			}).Warn("Registration failed") // Log registration failure
			respondError(c, err) // Map the failure to an HTTP status
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id":    result.UserID,    // New user ID
			"company_id": result.CompanyID, // New company ID, nil when none
		}).Info("User registered") // Log registration success
		// Return success response
		c.JSON(http.StatusCreated, gin.H{
			"message":   "User registered successfully", // Success message
			"userId":    result.UserID,                  // New user ID
			"companyId": result.CompanyID,               // New company ID or null
		})
	}
}

// LoginRequest represents the login form
type LoginRequest struct {
	Identifier string `json:"identifier"` // Email or username
	Password   string `json:"password"`   // Plaintext password
}

// LoginHandler authenticates a user and returns a session token with the
// sanitized user view
func LoginHandler(auth *service.Auth, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Verify the credentials
		user, err := auth.Login(c.Request.Context(), req.Identifier, req.Password)
		if err != nil {
			respondError(c, err) // Map the failure to an HTTP status
			return
		}
		// Generate session token
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the sanitized user and the token
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful", // Success message
			"user":    user.View(),        // Sanitized user view
			"token":   token,              // Session token
		})
	}
}
