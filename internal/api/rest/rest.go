package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/civicstack/token-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Token endpoints (public read access)
		v1.GET("/tokens", handler.ListTokens)
		v1.GET("/tokens/:token", handler.GetToken)
		v1.GET("/tokens/:token/entries", handler.ListEntries)
		v1.GET("/tokens/:token/balances/:identity", handler.GetBalance)

		// Holder endpoints (public read access)
		v1.GET("/holders/:identity/tokens", handler.ListHoldings)

		// Reference lookup (public read access)
		v1.GET("/references/:ref", handler.GetReference)

		// Mutations (require authentication)
		v1.POST("/tokens", middleware.Auth(authCfg), handler.CreateToken)
		v1.POST("/tokens/:token/mint", middleware.Auth(authCfg), handler.Mint)
		v1.POST("/tokens/:token/burn", middleware.Auth(authCfg), handler.Burn)
		v1.POST("/tokens/:token/transfer", middleware.Auth(authCfg), handler.Transfer)
		v1.POST("/tokens/:token/transfers/prepare", middleware.Auth(authCfg), handler.PrepareTransfer)
		v1.POST("/tokens/:token/transfers/confirm", middleware.Auth(authCfg), handler.ConfirmTransfer)
		v1.DELETE("/transfers/:reservation_id", middleware.Auth(authCfg), handler.CancelTransfer)

		// Redemption (requires API key authentication only; called by the payment backend)
		v1.POST("/tokens/:token/redeem", middleware.APIKeyAuth(authCfg), handler.Redeem)
	}
}
