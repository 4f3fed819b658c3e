package server

import (
	"net/http"

	handler "sealed-auction/services/bidding/handler"
	"sealed-auction/utils"

	"github.com/gin-gonic/gin"
)

// Services groups everything the HTTP layer calls into
type Services struct {
	Auctions  handler.AuctionServiceInterface
	Bidding   handler.BiddingServiceInterface
	Users     handler.UserServiceInterface
	Payments  handler.PaymentServiceInterface
	Reporting handler.ReportingServiceInterface
}

// SetupRouter configures all Gin routes for the application.
// A nil limiter disables rate limiting.
func SetupRouter(svc Services, limiter *RateLimiter) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware)

	router.GET("/health", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"}, "service healthy")
	})

	api := router.Group("")
	if limiter != nil {
		api.Use(limiter.Middleware())
	}

	auctionHandler := handler.NewAuctionHandler(svc.Auctions, svc.Reporting)
	biddingHandler := handler.NewBiddingHandler(svc.Bidding)
	userHandler := handler.NewUserHandler(svc.Users)
	paymentHandler := handler.NewPaymentHandler(svc.Payments)

	users := api.Group("/users")
	{
		users.POST("", userHandler.RegisterUserHandler)
		users.GET("", userHandler.ListUsersHandler)
		users.GET("/:user_id", userHandler.GetUserHandler)
	}

	auctions := api.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListOpenAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/close", auctionHandler.CloseAuctionHandler)
		auctions.GET("/:auction_id/report", auctionHandler.AuctionReportHandler)

		auctions.POST("/:auction_id/bids", biddingHandler.PlaceSealedBidHandler)
		auctions.GET("/:auction_id/bids", biddingHandler.ListBidsHandler)
		auctions.GET("/:auction_id/bids/revealed", biddingHandler.ListRevealedBidsHandler)
		auctions.POST("/:auction_id/winner", biddingHandler.DeclareWinnerHandler)
	}

	bids := api.Group("/bids")
	{
		bids.POST("/:bid_id/reveal", biddingHandler.RevealBidHandler)
	}

	payments := api.Group("/payments")
	{
		payments.POST("", paymentHandler.RecordPaymentHandler)
	}

	return router
}
