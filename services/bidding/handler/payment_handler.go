package handler

import (
	"net/http"

	"sealed-auction/services/bidding/helpers"
	"sealed-auction/utils"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service PaymentServiceInterface
}

func NewPaymentHandler(service PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// RecordPaymentHandler handles POST /payments
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	var req helpers.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordPaymentHandler", err)
		return
	}

	p, err := h.service.Record(c.Request.Context(), req.AuctionID, req.BidID, req.PayerID, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "RecordPaymentHandler", "record payment", err, map[string]any{
			"auction_id": req.AuctionID,
			"bid_id":     req.BidID,
			"payer_id":   req.PayerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToPaymentResponse(p), "payment recorded successfully")
	helpers.LogSuccess("RecordPaymentHandler", "payment recorded successfully", map[string]any{
		"payment_id": p.ID,
		"auction_id": p.AuctionID,
		"amount":     p.AmountPaid.String(),
	})
}
