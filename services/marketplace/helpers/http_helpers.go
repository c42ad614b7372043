package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fishmarket/internal/marketerrors"
	"fishmarket/utils"
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
	case errors.Is(err, marketerrors.ErrProfileNotFound):
		return http.StatusNotFound, "profile not found"
	case errors.Is(err, marketerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, marketerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, marketerrors.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, marketerrors.ErrFishTypeNotFound):
		return http.StatusNotFound, "fish type not found"
	case errors.Is(err, marketerrors.ErrNotificationNotFound):
		return http.StatusNotFound, "notification not found"
	case errors.Is(err, marketerrors.ErrDuplicateEmail):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, marketerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, marketerrors.ErrForbidden):
		return http.StatusForbidden, "operation not permitted"
	case errors.Is(err, marketerrors.ErrQuantityExceeds):
		return http.StatusConflict, "quantity exceeds available stock"
	case errors.Is(err, marketerrors.ErrListingUnavailable):
		return http.StatusConflict, "listing is not available"
	case errors.Is(err, marketerrors.ErrBidNotPending):
		return http.StatusConflict, "bid is not pending"
	case errors.Is(err, marketerrors.ErrInvalidTransition):
		return http.StatusConflict, "order is not in a valid state for this action"
	case errors.Is(err, marketerrors.ErrInvalidOTP):
		return http.StatusBadRequest, "invalid delivery code"
	case errors.Is(err, marketerrors.ErrInvalidPayment):
		return http.StatusBadRequest, "invalid payment details"
	case errors.Is(err, marketerrors.ErrInvalidListing):
		return http.StatusBadRequest, "invalid listing details"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, marketerrors.ErrInvalidOrder):
		return http.StatusBadRequest, "invalid order details"
	case errors.Is(err, marketerrors.ErrInvalidProfile):
		return http.StatusBadRequest, "invalid profile details"
	case errors.Is(err, marketerrors.ErrInvalidReview):
		return http.StatusBadRequest, "invalid review details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError maps, responds and logs a failed service call.
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": "+message, ctx)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
