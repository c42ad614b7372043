package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "fishmarket/internal/models"
	order "fishmarket/internal/orderService"
	"fishmarket/services/marketplace/helpers"
	"fishmarket/utils"
)

type OrderServiceInterface interface {
	BuyNow(buyerID, listingID, deliveryAddress string) (model.Order, error)
	QuickOrder(buyerID, listingID string, quantityKg float64, deliveryAddress string) (model.Order, error)
	Get(actorID, orderID string) (model.Order, error)
	OrdersByBuyer(buyerID string) ([]model.Order, error)
	OrdersBySeller(sellerID string) ([]model.Order, error)
	Confirm(sellerID, orderID string) (model.Order, error)
	Cancel(sellerID, orderID string) (model.Order, error)
	RecordPayment(buyerID, orderID string, in order.PaymentInput) (order.PaymentResult, error)
	GenerateDeliveryOTP(sellerID, orderID string) (string, error)
	VerifyDeliveryOTP(actorID, orderID, otp string) (model.Order, error)
	Track(actorID, orderID string) (order.Tracking, error)
}

type OrderHandler struct {
	service OrderServiceInterface
}

func NewOrderHandler(service OrderServiceInterface) *OrderHandler {
	return &OrderHandler{service: service}
}

// BuyNowHandler handles POST /orders/buy-now
func (h *OrderHandler) BuyNowHandler(c *gin.Context) {
	buyerID := c.GetString("profile_id")

	var req helpers.BuyNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BuyNowHandler", err)
		return
	}

	o, err := h.service.BuyNow(buyerID, req.ListingID, req.DeliveryAddress)
	if err != nil {
		helpers.HandleServiceError(c, "BuyNowHandler", err, map[string]any{"listing_id": req.ListingID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, o, "order created successfully")
	helpers.LogSuccess("BuyNowHandler", "order created successfully", map[string]any{
		"order_id":     o.ID,
		"total_amount": o.TotalAmount,
	})
}

// QuickOrderHandler handles POST /orders/quick
func (h *OrderHandler) QuickOrderHandler(c *gin.Context) {
	buyerID := c.GetString("profile_id")

	var req helpers.QuickOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "QuickOrderHandler", err)
		return
	}

	o, err := h.service.QuickOrder(buyerID, req.ListingID, req.QuantityKg, req.DeliveryAddress)
	if err != nil {
		helpers.HandleServiceError(c, "QuickOrderHandler", err, map[string]any{
			"listing_id":  req.ListingID,
			"quantity_kg": req.QuantityKg,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, o, "order created successfully")
	helpers.LogSuccess("QuickOrderHandler", "order created successfully", map[string]any{
		"order_id":     o.ID,
		"quantity_kg":  o.QuantityKg,
		"total_amount": o.TotalAmount,
	})
}

// GetOrderHandler handles GET /orders/:order_id
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	actorID := c.GetString("profile_id")
	orderID := c.Param("order_id")

	o, err := h.service.Get(actorID, orderID)
	if err != nil {
		helpers.HandleServiceError(c, "GetOrderHandler", err, map[string]any{"order_id": orderID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, o, "order retrieved successfully")
}

// GetPurchasesHandler handles GET /orders/purchases
func (h *OrderHandler) GetPurchasesHandler(c *gin.Context) {
	buyerID := c.GetString("profile_id")

	orders, err := h.service.OrdersByBuyer(buyerID)
	if err != nil {
		helpers.HandleServiceError(c, "GetPurchasesHandler", err, map[string]any{"buyer_id": buyerID})
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}

	utils.JSONResponse(c, http.StatusOK, orders, "orders retrieved successfully")
}

// GetSalesHandler handles GET /orders/sales
func (h *OrderHandler) GetSalesHandler(c *gin.Context) {
	sellerID := c.GetString("profile_id")

	orders, err := h.service.OrdersBySeller(sellerID)
	if err != nil {
		helpers.HandleServiceError(c, "GetSalesHandler", err, map[string]any{"seller_id": sellerID})
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}

	utils.JSONResponse(c, http.StatusOK, orders, "orders retrieved successfully")
}

// ConfirmOrderHandler handles POST /orders/:order_id/confirm
func (h *OrderHandler) ConfirmOrderHandler(c *gin.Context) {
	sellerID := c.GetString("profile_id")
	orderID := c.Param("order_id")

	o, err := h.service.Confirm(sellerID, orderID)
	if err != nil {
		helpers.HandleServiceError(c, "ConfirmOrderHandler", err, map[string]any{"order_id": orderID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, o, "order confirmed successfully")
	helpers.LogSuccess("ConfirmOrderHandler", "order confirmed successfully", map[string]any{"order_id": orderID})
}

// CancelOrderHandler handles POST /orders/:order_id/cancel
func (h *OrderHandler) CancelOrderHandler(c *gin.Context) {
	sellerID := c.GetString("profile_id")
	orderID := c.Param("order_id")

	o, err := h.service.Cancel(sellerID, orderID)
	if err != nil {
		helpers.HandleServiceError(c, "CancelOrderHandler", err, map[string]any{"order_id": orderID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, o, "order cancelled successfully")
	helpers.LogSuccess("CancelOrderHandler", "order cancelled successfully", map[string]any{"order_id": orderID})
}

// RecordPaymentHandler handles POST /orders/:order_id/payment
func (h *OrderHandler) RecordPaymentHandler(c *gin.Context) {
	buyerID := c.GetString("profile_id")
	orderID := c.Param("order_id")

	var req helpers.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordPaymentHandler", err)
		return
	}

	result, err := h.service.RecordPayment(buyerID, orderID, order.PaymentInput{
		PaymentType:      req.PaymentType,
		Amount:           req.Amount,
		UpiTransactionID: req.UpiTransactionID,
	})
	if err != nil {
		helpers.HandleServiceError(c, "RecordPaymentHandler", err, map[string]any{
			"order_id":     orderID,
			"payment_type": req.PaymentType,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "payment recorded successfully")
	helpers.LogSuccess("RecordPaymentHandler", "payment recorded successfully", map[string]any{
		"order_id":       orderID,
		"payment_status": result.Order.PaymentStatus,
	})
}

// GenerateOTPHandler handles POST /orders/:order_id/otp
func (h *OrderHandler) GenerateOTPHandler(c *gin.Context) {
	sellerID := c.GetString("profile_id")
	orderID := c.Param("order_id")

	otp, err := h.service.GenerateDeliveryOTP(sellerID, orderID)
	if err != nil {
		helpers.HandleServiceError(c, "GenerateOTPHandler", err, map[string]any{"order_id": orderID})
		return
	}

	resp := helpers.OTPResponse{OrderID: orderID, OTP: otp}

	utils.JSONResponse(c, http.StatusOK, resp, "delivery started")
	helpers.LogSuccess("GenerateOTPHandler", "delivery started", map[string]any{"order_id": orderID})
}

// VerifyOTPHandler handles POST /orders/:order_id/otp/verify
func (h *OrderHandler) VerifyOTPHandler(c *gin.Context) {
	actorID := c.GetString("profile_id")
	orderID := c.Param("order_id")

	var req helpers.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VerifyOTPHandler", err)
		return
	}

	o, err := h.service.VerifyDeliveryOTP(actorID, orderID, req.OTP)
	if err != nil {
		helpers.HandleServiceError(c, "VerifyOTPHandler", err, map[string]any{"order_id": orderID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, o, "delivery verified successfully")
	helpers.LogSuccess("VerifyOTPHandler", "delivery verified successfully", map[string]any{"order_id": orderID})
}

// TrackOrderHandler handles GET /orders/:order_id/tracking
func (h *OrderHandler) TrackOrderHandler(c *gin.Context) {
	actorID := c.GetString("profile_id")
	orderID := c.Param("order_id")

	t, err := h.service.Track(actorID, orderID)
	if err != nil {
		helpers.HandleServiceError(c, "TrackOrderHandler", err, map[string]any{"order_id": orderID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, t, "tracking retrieved successfully")
}
