package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"fishmarket/internal/marketerrors"
	model "fishmarket/internal/models"
	order "fishmarket/internal/orderService"
	"fishmarket/services/marketplace/helpers"
)

// Test BuyNowHandler
func TestBuyNowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockOrderServiceInterface(ctrl)
	h := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/orders/buy-now", asProfile("buyer1", model.RoleHotel), h.BuyNowHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_full_listing",
			requestBody: helpers.BuyNowRequest{ListingID: "listing1", DeliveryAddress: "12 Beach Rd"},
			mockSetup: func() {
				mockService.EXPECT().
					BuyNow("buyer1", "listing1", "12 Beach Rd").
					Return(model.Order{
						ID:          "order1",
						ListingID:   "listing1",
						BuyerID:     "buyer1",
						QuantityKg:  25,
						TotalAmount: 16250,
						Status:      model.OrderPending,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "order created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "order1", data["id"])
				require.Equal(t, 16250.0, data["total_amount"])
				require.Equal(t, model.OrderPending, data["status"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "listing_already_sold",
			requestBody: helpers.BuyNowRequest{ListingID: "listing2"},
			mockSetup: func() {
				mockService.EXPECT().
					BuyNow("buyer1", "listing2", "").
					Return(model.Order{}, marketerrors.ErrListingUnavailable)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "listing is not available",
		},
		{
			name:        "listing_not_found",
			requestBody: helpers.BuyNowRequest{ListingID: "nope"},
			mockSetup: func() {
				mockService.EXPECT().
					BuyNow("buyer1", "nope", "").
					Return(model.Order{}, marketerrors.ErrListingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "listing not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w := doJSON(t, router, http.MethodPost, "/orders/buy-now", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)

			envelope := parseEnvelope(t, w)
			require.Equal(t, tc.expectedMsg, envelope["message"])

			if tc.validateData != nil {
				data, ok := envelope["data"].(map[string]any)
				require.True(t, ok, "expected data object in response")
				tc.validateData(t, data)
			}
		})
	}
}

// Test RecordPaymentHandler
func TestRecordPaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockOrderServiceInterface(ctrl)
	h := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/orders/:order_id/payment", asProfile("buyer1", model.RoleHotel), h.RecordPaymentHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "full_payment_returns_upi_uri",
			requestBody: helpers.PaymentRequest{PaymentType: model.PaymentTypeFull, Amount: 5000},
			mockSetup: func() {
				mockService.EXPECT().
					RecordPayment("buyer1", "order1", order.PaymentInput{PaymentType: model.PaymentTypeFull, Amount: 5000}).
					Return(order.PaymentResult{
						Order:  model.Order{ID: "order1", PaymentStatus: model.PaymentPaid},
						UpiURI: "upi://pay?am=5000.00&cu=INR&pa=rkumar%40upi&pn=Ravi+Kumar&tn=Order+Payment",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "payment recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				o := data["order"].(map[string]any)
				require.Equal(t, model.PaymentPaid, o["payment_status"])
				require.Contains(t, data["upi_uri"], "upi://pay?")
			},
		},
		{
			name:        "advance_payment_partially_paid",
			requestBody: helpers.PaymentRequest{PaymentType: model.PaymentTypeAdvance, Amount: 2000},
			mockSetup: func() {
				mockService.EXPECT().
					RecordPayment("buyer1", "order1", order.PaymentInput{PaymentType: model.PaymentTypeAdvance, Amount: 2000}).
					Return(order.PaymentResult{
						Order: model.Order{ID: "order1", PaymentStatus: model.PaymentPartiallyPaid, AdvanceAmount: 2000},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "payment recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				o := data["order"].(map[string]any)
				require.Equal(t, model.PaymentPartiallyPaid, o["payment_status"])
				require.Equal(t, 2000.0, o["advance_amount"])
			},
		},
		{
			name:           "unknown_payment_type_rejected",
			requestBody:    helpers.PaymentRequest{PaymentType: "cash", Amount: 5000},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "payment_on_cancelled_order",
			requestBody: helpers.PaymentRequest{PaymentType: model.PaymentTypeFull, Amount: 5000},
			mockSetup: func() {
				mockService.EXPECT().
					RecordPayment("buyer1", "order1", gomock.Any()).
					Return(order.PaymentResult{}, marketerrors.ErrInvalidTransition)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "order is not in a valid state for this action",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w := doJSON(t, router, http.MethodPost, "/orders/order1/payment", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)

			envelope := parseEnvelope(t, w)
			require.Equal(t, tc.expectedMsg, envelope["message"])

			if tc.validateData != nil {
				data, ok := envelope["data"].(map[string]any)
				require.True(t, ok, "expected data object in response")
				tc.validateData(t, data)
			}
		})
	}
}

// Test GenerateOTPHandler
func TestGenerateOTPHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockOrderServiceInterface(ctrl)
	h := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/orders/:order_id/otp", asProfile("fisher1", model.RoleFisherman), h.GenerateOTPHandler)

	t.Run("returns_code_to_seller", func(t *testing.T) {
		mockService.EXPECT().GenerateDeliveryOTP("fisher1", "order1").Return("4821", nil)

		w := doJSON(t, router, http.MethodPost, "/orders/order1/otp", nil)
		require.Equal(t, http.StatusOK, w.Code)

		envelope := parseEnvelope(t, w)
		require.Equal(t, "delivery started", envelope["message"])
		data := envelope["data"].(map[string]any)
		require.Equal(t, "order1", data["order_id"])
		require.Equal(t, "4821", data["otp"])
	})

	t.Run("rejects_unpaid_order", func(t *testing.T) {
		mockService.EXPECT().
			GenerateDeliveryOTP("fisher1", "order1").
			Return("", marketerrors.ErrInvalidTransition)

		w := doJSON(t, router, http.MethodPost, "/orders/order1/otp", nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

// Test VerifyOTPHandler
func TestVerifyOTPHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockOrderServiceInterface(ctrl)
	h := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/orders/:order_id/otp/verify", asProfile("buyer1", model.RoleHotel), h.VerifyOTPHandler)

	t.Run("correct_code_completes_order", func(t *testing.T) {
		mockService.EXPECT().
			VerifyDeliveryOTP("buyer1", "order1", "4821").
			Return(model.Order{
				ID:             "order1",
				Status:         model.OrderCompleted,
				DeliveryStatus: model.DeliveryDelivered,
			}, nil)

		w := doJSON(t, router, http.MethodPost, "/orders/order1/otp/verify", helpers.VerifyOTPRequest{OTP: "4821"})
		require.Equal(t, http.StatusOK, w.Code)

		envelope := parseEnvelope(t, w)
		data := envelope["data"].(map[string]any)
		require.Equal(t, model.OrderCompleted, data["status"])
		require.Equal(t, model.DeliveryDelivered, data["delivery_status"])
	})

	t.Run("wrong_code_rejected", func(t *testing.T) {
		mockService.EXPECT().
			VerifyDeliveryOTP("buyer1", "order1", "0000").
			Return(model.Order{}, marketerrors.ErrInvalidOTP)

		w := doJSON(t, router, http.MethodPost, "/orders/order1/otp/verify", helpers.VerifyOTPRequest{OTP: "0000"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed_code_rejected_before_service", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/orders/order1/otp/verify", helpers.VerifyOTPRequest{OTP: "12"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Test TrackOrderHandler
func TestTrackOrderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockOrderServiceInterface(ctrl)
	h := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/orders/:order_id/tracking", asProfile("buyer1", model.RoleHotel), h.TrackOrderHandler)

	t.Run("returns_route_estimate", func(t *testing.T) {
		mockService.EXPECT().
			Track("buyer1", "order1").
			Return(order.Tracking{OrderID: "order1", Status: model.OrderConfirmed, DeliveryStatus: model.DeliveryInTransit}, nil)

		w := doJSON(t, router, http.MethodGet, "/orders/order1/tracking", nil)
		require.Equal(t, http.StatusOK, w.Code)

		envelope := parseEnvelope(t, w)
		data := envelope["data"].(map[string]any)
		require.Equal(t, "order1", data["order_id"])
		require.Equal(t, model.DeliveryInTransit, data["delivery_status"])
	})

	t.Run("stranger_forbidden", func(t *testing.T) {
		mockService.EXPECT().
			Track("buyer1", "order9").
			Return(order.Tracking{}, marketerrors.ErrForbidden)

		w := doJSON(t, router, http.MethodGet, "/orders/order9/tracking", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
