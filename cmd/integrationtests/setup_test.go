package integrationtests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	auction "sealed-auction/internal/auctionService"
	"sealed-auction/internal/audit"
	bidding "sealed-auction/internal/biddingService"
	payment "sealed-auction/internal/paymentService"
	reporting "sealed-auction/internal/reportingService"
	"sealed-auction/internal/repository"
	"sealed-auction/internal/server"
	user "sealed-auction/internal/userService"
	"sealed-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetOutput(io.Discard)
}

// SetupTestRouter wires the full service graph over a fresh in-memory store.
// The store is returned so tests can inspect the audit log and payments.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	repo := repository.NewMemoryRepo()
	recorder := audit.NewStoreRecorder(repo)

	auctions := auction.NewAuctionService(repo, recorder)
	bids := bidding.NewBiddingService(repo, auctions, recorder)

	router := server.SetupRouter(server.Services{
		Auctions:  auctions,
		Bidding:   bids,
		Users:     user.NewUserService(repo, recorder),
		Payments:  payment.NewPaymentService(repo, repo, recorder),
		Reporting: reporting.NewReportingService(auctions, bids),
	}, nil)
	return router, repo
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// dataObject returns the "data" field of a response as an object
func dataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "expected object data, got %v", resp["data"])
	return data
}

// dataList returns the "data" field of a response as a list
func dataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	require.True(t, ok, "expected list data, got %v", resp["data"])
	return data
}

func registerUser(t *testing.T, router *gin.Engine, name, email string) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/users", map[string]any{"name": name, "email": email})
	require.Equal(t, http.StatusOK, w.Code)
	return dataObject(t, resp)["user_id"].(string)
}

func createAuction(t *testing.T, router *gin.Engine, sellerID, reserve string, startInMinutes int) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions", map[string]any{
		"title":            "Vintage camera",
		"description":      "Rangefinder, 1958",
		"reserve_price":    reserve,
		"created_by":       sellerID,
		"start_in_minutes": startInMinutes,
		"duration_minutes": 60,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return dataObject(t, resp)["auction_id"].(string)
}

func placeSealedBid(t *testing.T, router *gin.Engine, auctionID, bidderID string) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/"+auctionID+"/bids", map[string]any{
		"bidder_id":  bidderID,
		"commitment": "sha256:" + bidderID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return dataObject(t, resp)["bid_id"].(string)
}

func revealBid(t *testing.T, router *gin.Engine, bidID, amount string) {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/"+bidID+"/reveal", map[string]any{"amount": amount})
	require.Equal(t, http.StatusOK, w.Code)
}
