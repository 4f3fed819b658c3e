package handler

import (
	"net/http"

	"sealed-auction/services/bidding/helpers"
	"sealed-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionHandler struct {
	service   AuctionServiceInterface
	reporting ReportingServiceInterface
	now       utils.Clock
}

func NewAuctionHandler(service AuctionServiceInterface, reporting ReportingServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service, reporting: reporting, now: utils.UTCNow}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	start, end, err := req.Window(h.now())
	if err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", "resolve auction window", err, map[string]any{
			"title": req.Title,
		})
		return
	}

	auction, err := h.service.Create(c.Request.Context(), req.Title, req.Description, req.ReservePrice, start, end, req.CreatedBy)
	if err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", "create auction", err, map[string]any{
			"title":      req.Title,
			"created_by": req.CreatedBy,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(auction), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":    auction.ID,
		"reserve_price": auction.ReservePrice.String(),
	})
}

// ListOpenAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListOpenAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListOpen(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListOpenAuctionsHandler", "list auctions", err, nil)
		return
	}

	resp := make([]helpers.AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		resp = append(resp, helpers.ToAuctionResponse(a))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auctions retrieved successfully")
	helpers.LogSuccess("ListOpenAuctionsHandler", "auctions retrieved successfully", map[string]any{"count": len(resp)})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.Get(c.Request.Context(), auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetAuctionHandler", "get auction", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction retrieved successfully")
}

// CloseAuctionHandler handles POST /auctions/:auction_id/close
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.Close(c.Request.Context(), auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "CloseAuctionHandler", "close auction", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction closed successfully")
	helpers.LogSuccess("CloseAuctionHandler", "auction closed successfully", map[string]any{"auction_id": auctionID})
}

// AuctionReportHandler handles GET /auctions/:auction_id/report
func (h *AuctionHandler) AuctionReportHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	report, err := h.reporting.Summary(c.Request.Context(), auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "AuctionReportHandler", "build report", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToReportResponse(report), "report generated successfully")
	helpers.LogSuccess("AuctionReportHandler", "report generated successfully", map[string]any{
		"auction_id":     auctionID,
		"total_bids":     report.TotalBids,
		"total_revealed": report.TotalRevealed,
	})
}
