package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"sealed-auction/internal/biddingerrors"
	"sealed-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, biddingerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, biddingerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, biddingerrors.ErrInvalidAuctionWindow):
		return http.StatusBadRequest, "end must be after start"
	case errors.Is(err, biddingerrors.ErrIncompleteWindow):
		return http.StatusBadRequest, "start_time and end_time must be given together"
	case errors.Is(err, biddingerrors.ErrNegativeReserve):
		return http.StatusBadRequest, "reserve price must not be negative"
	case errors.Is(err, biddingerrors.ErrCommitmentRequired):
		return http.StatusBadRequest, "commitment required"
	case errors.Is(err, biddingerrors.ErrNonPositiveAmount):
		return http.StatusBadRequest, "amount must be positive"
	case errors.Is(err, biddingerrors.ErrInvalidPayment):
		return http.StatusBadRequest, "invalid payment"
	case errors.Is(err, biddingerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, biddingerrors.ErrAuctionNotOpen):
		return http.StatusConflict, "auction not open for bidding"
	case errors.Is(err, biddingerrors.ErrBidAlreadyRevealed):
		return http.StatusConflict, "bid already revealed"
	case errors.Is(err, biddingerrors.ErrState):
		return http.StatusConflict, "illegal state transition"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError writes the mapped error response and logs it.
// Client errors are logged at warn level, server errors at error level.
func HandleServiceError(c *gin.Context, handlerName, action string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	logFields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": failed to "+action, logFields)
		return
	}
	utils.Warn(handlerName+": failed to "+action, logFields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
