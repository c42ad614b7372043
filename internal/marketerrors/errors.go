package marketerrors

import "errors"

// Repository-level errors
var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrAccountNotFound      = errors.New("account not found")
	ErrListingNotFound      = errors.New("listing not found")
	ErrBidNotFound          = errors.New("bid not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrFishTypeNotFound     = errors.New("fish type not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrDuplicateEmail       = errors.New("email already registered")
)

// Business logic errors
var (
	ErrInvalidListing     = errors.New("invalid listing")
	ErrInvalidBid         = errors.New("invalid bid")
	ErrInvalidOrder       = errors.New("invalid order")
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrInvalidReview      = errors.New("invalid review")
	ErrQuantityExceeds    = errors.New("quantity exceeds available stock")
	ErrListingUnavailable = errors.New("listing is not available")
	ErrBidNotPending      = errors.New("bid is not pending")
	ErrInvalidTransition  = errors.New("invalid order state transition")
	ErrInvalidOTP         = errors.New("invalid delivery otp")
	ErrInvalidPayment     = errors.New("invalid payment details")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("operation not permitted for this profile")
)
