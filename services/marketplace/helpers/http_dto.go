package helpers

import "time"

// Request/Response DTOs

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	State    string `json:"state"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token     string `json:"token"`
	ProfileID string `json:"profile_id"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
}

type CreateListingRequest struct {
	FishTypeID  string    `json:"fish_type_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location" binding:"required"`
	WeightKg    float64   `json:"weight_kg" binding:"required,gt=0"`
	PricePerKg  float64   `json:"price_per_kg" binding:"required,gt=0"`
	CatchDate   string    `json:"catch_date" binding:"required"`
	ExpiresAt   time.Time `json:"expires_at" binding:"required"`
	ImageURL    string    `json:"image_url"`
}

type PlaceBidRequest struct {
	ListingID  string  `json:"listing_id" binding:"required"`
	BidAmount  float64 `json:"bid_amount" binding:"required,gt=0"`
	QuantityKg float64 `json:"quantity_kg" binding:"required,gt=0"`
	Message    string  `json:"message"`
}

type BuyNowRequest struct {
	ListingID       string `json:"listing_id" binding:"required"`
	DeliveryAddress string `json:"delivery_address"`
}

type QuickOrderRequest struct {
	ListingID       string  `json:"listing_id" binding:"required"`
	QuantityKg      float64 `json:"quantity_kg" binding:"required,gt=0"`
	DeliveryAddress string  `json:"delivery_address"`
}

type PaymentRequest struct {
	PaymentType      string  `json:"payment_type" binding:"required,oneof=full advance"`
	Amount           float64 `json:"amount"`
	UpiTransactionID string  `json:"upi_transaction_id"`
}

type VerifyOTPRequest struct {
	OTP string `json:"otp" binding:"required,len=4"`
}

type SendMessageRequest struct {
	ListingID  string `json:"listing_id" binding:"required"`
	ReceiverID string `json:"receiver_id" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

type InterestRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	Message   string `json:"message"`
}

type ReviewRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type OTPResponse struct {
	OrderID string `json:"order_id"`
	OTP     string `json:"otp"`
}
