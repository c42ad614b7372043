package models

import "time"

// Role is the marketplace role attached to a profile. Fishermen sell;
// suppliers, hotels and markets buy.
type Role string

const (
	RoleFisherman Role = "fisherman"
	RoleSupplier  Role = "supplier"
	RoleHotel     Role = "hotel"
	RoleMarket    Role = "market"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the five marketplace roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFisherman, RoleSupplier, RoleHotel, RoleMarket, RoleAdmin:
		return true
	}
	return false
}

// Buyer reports whether the role purchases listings.
func (r Role) Buyer() bool {
	return r == RoleSupplier || r == RoleHotel || r == RoleMarket
}

// Listing statuses
const (
	ListingAvailable = "available"
	ListingSold      = "sold"
	ListingExpired   = "expired"
)

// Bid statuses
const (
	BidPending  = "pending"
	BidAccepted = "accepted"
	BidRejected = "rejected"
)

// Order statuses
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Payment statuses
const (
	PaymentPending       = "pending"
	PaymentPartiallyPaid = "partially_paid"
	PaymentPaid          = "paid"
	PaymentFailed        = "failed"
)

// Delivery statuses
const (
	DeliveryPending   = "pending"
	DeliveryInTransit = "in_transit"
	DeliveryDelivered = "delivered"
)

// Payment types and methods
const (
	PaymentTypeFull    = "full"
	PaymentTypeAdvance = "advance"
	PaymentMethodUPI   = "upi"
)

// Account is a sign-in identity. A profile links back to it via UserID.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is a user's marketplace identity and role.
type Profile struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	UpiID        string    `json:"upi_id,omitempty"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SafeProfile is the restricted public view of a profile, the column set
// exposed to other marketplace participants.
type SafeProfile struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	Role         Role    `json:"role"`
	City         string  `json:"city,omitempty"`
	State        string  `json:"state,omitempty"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"total_reviews"`
	IsVerified   bool    `json:"is_verified"`
}

// Safe projects the public column set of a profile.
func (p Profile) Safe() SafeProfile {
	return SafeProfile{
		ID:           p.ID,
		FullName:     p.FullName,
		Role:         p.Role,
		City:         p.City,
		State:        p.State,
		Rating:       p.Rating,
		TotalReviews: p.TotalReviews,
		IsVerified:   p.IsVerified,
	}
}

// ProfilePatch carries the settings fields a profile owner may change.
// Nil fields are left untouched.
type ProfilePatch struct {
	FullName  *string  `json:"full_name,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Address   *string  `json:"address,omitempty"`
	City      *string  `json:"city,omitempty"`
	State     *string  `json:"state,omitempty"`
	UpiID     *string  `json:"upi_id,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// FishType is a catalog entry listings reference.
type FishType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Listing is a fisherman's posted catch available for bid or purchase.
type Listing struct {
	ID          string    `json:"id"`
	FishermanID string    `json:"fisherman_id"`
	FishTypeID  string    `json:"fish_type_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	WeightKg    float64   `json:"weight_kg"`
	PricePerKg  float64   `json:"price_per_kg"`
	TotalPrice  float64   `json:"total_price"`
	Status      string    `json:"status"`
	CatchDate   string    `json:"catch_date"`
	ExpiresAt   time.Time `json:"expires_at"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListingPatch carries the editable fields of a listing. Nil fields are
// left untouched; TotalPrice is recomputed by the service when weight or
// price change.
type ListingPatch struct {
	Title       *string    `json:"title,omitempty"`
	FishTypeID  *string    `json:"fish_type_id,omitempty"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	WeightKg    *float64   `json:"weight_kg,omitempty"`
	PricePerKg  *float64   `json:"price_per_kg,omitempty"`
	CatchDate   *string    `json:"catch_date,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
}

// Bid is a buyer's offer on a listing's full or partial quantity.
// TotalBid is always BidAmount * QuantityKg, computed server-side.
type Bid struct {
	ID         string    `json:"id"`
	ListingID  string    `json:"listing_id"`
	BidderID   string    `json:"bidder_id"`
	BidAmount  float64   `json:"bid_amount"`
	QuantityKg float64   `json:"quantity_kg"`
	TotalBid   float64   `json:"total_bid"`
	Message    string    `json:"message,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Order is a committed transaction between buyer and seller derived from a
// bid or a direct purchase. The three status fields move only through the
// guarded transitions in the order service.
type Order struct {
	ID                  string     `json:"id"`
	ListingID           string     `json:"listing_id"`
	BuyerID             string     `json:"buyer_id"`
	SellerID            string     `json:"seller_id"`
	QuantityKg          float64    `json:"quantity_kg"`
	PricePerKg          float64    `json:"price_per_kg"`
	TotalAmount         float64    `json:"total_amount"`
	Status              string     `json:"status"`
	PaymentStatus       string     `json:"payment_status"`
	PaymentMethod       string     `json:"payment_method,omitempty"`
	PaymentType         string     `json:"payment_type,omitempty"`
	AdvanceAmount       float64    `json:"advance_amount,omitempty"`
	UpiTransactionID    string     `json:"upi_transaction_id,omitempty"`
	DeliveryAddress     string     `json:"delivery_address"`
	DeliveryStatus      string     `json:"delivery_status"`
	DeliveryOTP         string     `json:"-"`
	DeliveryCompletedAt *time.Time `json:"delivery_completed_at,omitempty"`
	BuyerLatitude       *float64   `json:"buyer_latitude,omitempty"`
	BuyerLongitude      *float64   `json:"buyer_longitude,omitempty"`
	FishermanLatitude   *float64   `json:"fisherman_latitude,omitempty"`
	FishermanLongitude  *float64   `json:"fisherman_longitude,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// OrderPatch carries the mutable fields of an order row. Nil fields are
// left untouched. Only the order service writes patches, inside guarded
// transitions.
type OrderPatch struct {
	Status              *string    `json:"status,omitempty"`
	PaymentStatus       *string    `json:"payment_status,omitempty"`
	PaymentMethod       *string    `json:"payment_method,omitempty"`
	PaymentType         *string    `json:"payment_type,omitempty"`
	AdvanceAmount       *float64   `json:"advance_amount,omitempty"`
	UpiTransactionID    *string    `json:"upi_transaction_id,omitempty"`
	DeliveryStatus      *string    `json:"delivery_status,omitempty"`
	DeliveryOTP         *string    `json:"delivery_otp,omitempty"`
	DeliveryCompletedAt *time.Time `json:"delivery_completed_at,omitempty"`
}

// Message is a listing-scoped chat line between two profiles.
type Message struct {
	ID         string    `json:"id"`
	ListingID  string    `json:"listing_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// Interest is a buyer's expression of interest in a listing.
type Interest struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	BuyerID   string    `json:"buyer_id"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PricePoint is one day of aggregated price stats for a fish type.
type PricePoint struct {
	ID            string    `json:"id"`
	FishTypeID    string    `json:"fish_type_id"`
	Date          string    `json:"date"`
	MinPrice      float64   `json:"min_price"`
	MaxPrice      float64   `json:"max_price"`
	AvgPrice      float64   `json:"avg_price"`
	TotalVolumeKg float64   `json:"total_volume_kg"`
	Location      string    `json:"location,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Review rates the counterparty of a completed order.
type Review struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	ReviewerID string    `json:"reviewer_id"`
	ReviewedID string    `json:"reviewed_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Notification is an in-app notice addressed to a profile.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	RelatedID string    `json:"related_id,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
