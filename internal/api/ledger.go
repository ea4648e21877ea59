package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"time"     // Timestamps

	"contabilito/internal/domain" // Domain models
	"contabilito/internal/store"  // Credential store
	"contabilito/internal/utils"  // Cache utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// CreateAccountRequest represents a new ledger account
type CreateAccountRequest struct {
	Name           string  `json:"name" binding:"required"` // Account name, unique within the company
	InitialBalance float64 `json:"initial_balance"`         // Opening balance, defaults to zero
}

// CreateAccountHandler adds a ledger account to the company
func CreateAccountHandler(st *store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.MustGet("companyID").(uint) // Set by the membership middleware
		var req CreateAccountRequest               // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		account := &domain.Account{
			CompanyID:      companyID,          // Owning company
			Name:           req.Name,           // Account name
			InitialBalance: req.InitialBalance, // Opening balance
		}
		// Save the new account
		if err := st.InsertAccount(c.Request.Context(), account); err != nil {
			respondError(c, err) // Conflict or storage failure
			return
		}
		// Invalidate the dashboard cache, the balance changed
		_ = utils.DeleteCache(c.Request.Context(), rdb, dashboardCacheKey(companyID))
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Account created", "account": account})
	}
}

// RecordTransactionRequest represents a new financial record
type RecordTransactionRequest struct {
	AccountID       uint    `json:"account_id" binding:"required"`                       // Target account
	CategoryID      *uint   `json:"category_id"`                                         // Optional category
	Type            string  `json:"type" binding:"required,oneof=income expense"`        // Transaction type
	Amount          float64 `json:"amount" binding:"required,gt=0"`                      // Transaction amount
	Description     string  `json:"description"`                                         // Free-form description
	TransactionDate string  `json:"transaction_date"`                                    // RFC3339 date, defaults to now
}

// RecordTransactionHandler records an income or expense for the company
func RecordTransactionHandler(st *store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.MustGet("companyID").(uint) // Set by the membership middleware
		userID := c.MustGet("userID").(uint)       // Set by the JWT middleware
		var req RecordTransactionRequest           // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// The account must belong to this company
		if _, err := st.FindAccount(c.Request.Context(), companyID, req.AccountID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Unknown or foreign account, return not found
				c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
				return
			}
			respondError(c, err) // Storage failure
			return
		}
		// Parse the transaction date, defaulting to now
		txDate := time.Now()
		if req.TransactionDate != "" {
			parsed, err := time.Parse(time.RFC3339, req.TransactionDate)
			if err != nil {
				// If the date is malformed, return bad request
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction date"})
				return
			}
			txDate = parsed // Use the supplied date
		}
		tx := &domain.Transaction{
			CompanyID:       companyID,       // Owning company
			UserID:          userID,          // Recording user, for audit
			AccountID:       req.AccountID,   // Target account
			CategoryID:      req.CategoryID,  // Optional category
			Type:            req.Type,        // income or expense
			Amount:          req.Amount,      // Transaction amount
			Description:     req.Description, // Free-form description
			TransactionDate: txDate,          // Date the transaction applies to
		}
		// Save the transaction
		if err := st.InsertTransaction(c.Request.Context(), tx); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"company_id": companyID,   // Owning company
				"user_id":    userID,      // Recording user
				"amount":     req.Amount,  // Transaction amount
				"error":      err.Error(), // Error message
			}).Error("Failed to record transaction") // Log failure
			respondError(c, err) // Storage failure
			return
		}
		// Log the recorded transaction
		logrus.WithFields(logrus.Fields{
			"company_id": companyID, // Owning company
			"user_id":    userID,    // Recording user
			"amount":     req.Amount, // Transaction amount
			"type":       req.Type,  // Transaction type
		}).Info("Transaction recorded") // Log success
		// Invalidate the dashboard cache for this company
		_ = utils.DeleteCache(c.Request.Context(), rdb, dashboardCacheKey(companyID))
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Transaction recorded", "transaction": tx})
	}
}
