package server

import (
	"github.com/gin-gonic/gin"

	model "fishmarket/internal/models"
	handler "fishmarket/services/marketplace/handler"
)

// Handlers bundles the per-concern HTTP handlers the router mounts.
type Handlers struct {
	Auth    *handler.AuthHandler
	Profile *handler.ProfileHandler
	Listing *handler.ListingHandler
	Bidding *handler.BiddingHandler
	Order   *handler.OrderHandler
	Chat    *handler.ChatHandler
	Price   *handler.PriceHandler
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(h Handlers, parser TokenParser) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Auth.RegisterHandler)
		auth.POST("/login", h.Auth.LoginHandler)
	}

	authed := router.Group("")
	authed.Use(AuthMiddleware(parser))

	profiles := authed.Group("/profiles")
	{
		profiles.GET("/me", h.Profile.GetOwnProfileHandler)
		profiles.PATCH("/me", h.Profile.UpdateProfileHandler)
		profiles.GET("/:profile_id", h.Profile.GetSafeProfileHandler)
		profiles.GET("/:profile_id/reviews", h.Profile.GetReviewsHandler)
	}

	listings := authed.Group("/listings")
	{
		listings.GET("", h.Listing.GetListingsHandler)
		listings.POST("", RequireRole(model.RoleFisherman), h.Listing.CreateListingHandler)
		listings.GET("/mine", RequireRole(model.RoleFisherman), h.Listing.GetOwnListingsHandler)
		listings.GET("/:listing_id", h.Listing.GetListingHandler)
		listings.PATCH("/:listing_id", RequireRole(model.RoleFisherman), h.Listing.EditListingHandler)
		listings.DELETE("/:listing_id", RequireRole(model.RoleFisherman), h.Listing.DeleteListingHandler)
		listings.POST("/:listing_id/sold", RequireRole(model.RoleFisherman), h.Listing.MarkListingSoldHandler)
		listings.GET("/:listing_id/bids", h.Bidding.GetBidsByListingHandler)
		listings.GET("/:listing_id/messages", h.Chat.GetConversationHandler)
	}

	bids := authed.Group("/bids")
	{
		bids.POST("", RequireBuyer(), h.Bidding.PlaceBidHandler)
		bids.GET("/mine", RequireBuyer(), h.Bidding.GetOwnBidsHandler)
		bids.GET("/received", RequireRole(model.RoleFisherman), h.Bidding.GetReceivedBidsHandler)
		bids.POST("/:bid_id/accept", RequireRole(model.RoleFisherman), h.Bidding.AcceptBidHandler)
		bids.POST("/:bid_id/reject", RequireRole(model.RoleFisherman), h.Bidding.RejectBidHandler)
	}

	orders := authed.Group("/orders")
	{
		orders.POST("/buy-now", RequireBuyer(), h.Order.BuyNowHandler)
		orders.POST("/quick", RequireBuyer(), h.Order.QuickOrderHandler)
		orders.GET("/purchases", RequireBuyer(), h.Order.GetPurchasesHandler)
		orders.GET("/sales", RequireRole(model.RoleFisherman), h.Order.GetSalesHandler)
		orders.GET("/:order_id", h.Order.GetOrderHandler)
		orders.POST("/:order_id/confirm", RequireRole(model.RoleFisherman), h.Order.ConfirmOrderHandler)
		orders.POST("/:order_id/cancel", RequireRole(model.RoleFisherman), h.Order.CancelOrderHandler)
		orders.POST("/:order_id/payment", RequireBuyer(), h.Order.RecordPaymentHandler)
		orders.POST("/:order_id/otp", RequireRole(model.RoleFisherman), h.Order.GenerateOTPHandler)
		orders.POST("/:order_id/otp/verify", h.Order.VerifyOTPHandler)
		orders.GET("/:order_id/tracking", h.Order.TrackOrderHandler)
	}

	authed.POST("/messages", h.Chat.SendMessageHandler)
	authed.POST("/interests", RequireBuyer(), h.Listing.ExpressInterestHandler)
	authed.GET("/interests", RequireRole(model.RoleFisherman), h.Listing.GetInterestsHandler)
	authed.POST("/reviews", h.Profile.SubmitReviewHandler)

	notifications := authed.Group("/notifications")
	{
		notifications.GET("", h.Profile.GetNotificationsHandler)
		notifications.POST("/:notification_id/read", h.Profile.MarkNotificationReadHandler)
	}

	fishTypes := authed.Group("/fish-types")
	{
		fishTypes.GET("", h.Listing.GetFishTypesHandler)
		fishTypes.GET("/:fish_type_id/prices", h.Price.GetPriceHistoryHandler)
	}

	authed.POST("/prices/aggregate", RequireRole(model.RoleAdmin), h.Price.AggregatePricesHandler)

	return router
}
