package handler

import (
	"net/http"

	"sealed-auction/services/bidding/helpers"
	"sealed-auction/utils"

	"github.com/gin-gonic/gin"
)

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceSealedBidHandler handles POST /auctions/:auction_id/bids
func (h *BiddingHandler) PlaceSealedBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceSealedBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceSealedBidHandler", err)
		return
	}

	bid, err := h.service.PlaceSealed(c.Request.Context(), auctionID, req.BidderID, req.Commitment)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceSealedBidHandler", "place sealed bid", err, map[string]any{
			"auction_id": auctionID,
			"bidder_id":  req.BidderID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToSealedBidResponse(bid), "sealed bid recorded successfully")
	helpers.LogSuccess("PlaceSealedBidHandler", "sealed bid recorded successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": auctionID,
		"bidder_id":  bid.BidderID,
	})
}

// RevealBidHandler handles POST /bids/:bid_id/reveal
func (h *BiddingHandler) RevealBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")

	var req helpers.RevealBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RevealBidHandler", err)
		return
	}

	bid, err := h.service.Reveal(c.Request.Context(), bidID, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "RevealBidHandler", "reveal bid", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToRevealedBidResponse(bid), "bid revealed successfully")
	helpers.LogSuccess("RevealBidHandler", "bid revealed successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": bid.AuctionID,
		"amount":     req.Amount.String(),
	})
}

// ListBidsHandler handles GET /auctions/:auction_id/bids
func (h *BiddingHandler) ListBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.ListPublic(c.Request.Context(), auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "ListBidsHandler", "list bids", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := make([]helpers.PublicBidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.ToPublicBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// ListRevealedBidsHandler handles GET /auctions/:auction_id/bids/revealed
func (h *BiddingHandler) ListRevealedBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.ListRevealed(c.Request.Context(), auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "ListRevealedBidsHandler", "list revealed bids", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := make([]helpers.RevealedBidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.ToRevealedBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "revealed bids retrieved successfully")
	helpers.LogSuccess("ListRevealedBidsHandler", "revealed bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// DeclareWinnerHandler handles POST /auctions/:auction_id/winner
func (h *BiddingHandler) DeclareWinnerHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	winner, err := h.service.DeclareWinner(c.Request.Context(), auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "DeclareWinnerHandler", "declare winner", err, map[string]any{"auction_id": auctionID})
		return
	}

	if winner == nil {
		utils.JSONResponse(c, http.StatusOK, nil, "no winner: no revealed bid meets the reserve price")
		utils.Info("DeclareWinnerHandler: auction closed without a winner", map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToWinnerResponse(*winner), "winner declared successfully")
	helpers.LogSuccess("DeclareWinnerHandler", "winner declared successfully", map[string]any{
		"auction_id": auctionID,
		"bid_id":     winner.BidID,
		"bidder_id":  winner.BidderID,
		"amount":     winner.Amount.String(),
	})
}
