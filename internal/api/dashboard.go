package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"contabilito/internal/domain" // Domain models
	"contabilito/internal/store"  // Credential store
	"contabilito/internal/utils"  // Cache utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// DashboardResponse summarizes a company's books
type DashboardResponse struct {
	TotalBalance float64              `json:"total_balance"` // Sum of non-deleted account balances
	Transactions []domain.Transaction `json:"transactions"`  // Latest transactions, newest first
}

// dashboardCacheKey builds the cache key for a company's dashboard
func dashboardCacheKey(companyID uint) string {
	return "dashboard:company:" + strconv.Itoa(int(companyID))
}

// DashboardHandler returns the dashboard summary for a company the
// authenticated user belongs to
func DashboardHandler(st *store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.MustGet("companyID").(uint) // Set by the membership middleware
		ctx := c.Request.Context()                 // Request context
		cacheKey := dashboardCacheKey(companyID)   // Cache key for this company
		var cached DashboardResponse               // Struct to hold cached data
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"data": cached, "cached": true})
			return
		}
		// If not in cache, compute from the store
		balance, err := st.CompanyBalance(ctx, companyID)
		if err != nil {
			respondError(c, err) // Storage failure
			return
		}
		// Latest 5 transactions, as shown on the dashboard
		txs, err := st.LatestTransactions(ctx, companyID, 5)
		if err != nil {
			respondError(c, err) // Storage failure
			return
		}
		resp := DashboardResponse{
			TotalBalance: balance, // Aggregate balance
			Transactions: txs,     // Recent transactions
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, gin.H{"data": resp, "cached": false})  // Return dashboard data
	}
}
