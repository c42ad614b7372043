package integrationtests

import (
	"net/http"
	"strings"
	"testing"

	model "fishmarket/internal/models"
	"fishmarket/services/marketplace/helpers"

	"github.com/stretchr/testify/require"
)

// Full bid-to-delivery lifecycle: a hotel bids on a fisherman's catch,
// the bid is accepted, the order is confirmed, paid and delivered
// against the one-time code.
func TestBidToDeliveryLifecycle(t *testing.T) {
	router, _ := SetupTestRouter()

	fisherman := registerUser(t, router, "ravi@sea.in", "Ravi Kumar", "fisherman")
	hotel := registerUser(t, router, "chef@palms.in", "Palms Kitchen", "hotel")

	// seller needs a UPI handle before payments can produce a deep link
	upi := "rkumar@upi"
	_, w := ExecuteRequestAndParse(t, router, http.MethodPatch, "/profiles/me", fisherman.Token,
		model.ProfilePatch{UpiID: &upi})
	require.Equal(t, http.StatusOK, w.Code)

	listingID := createListing(t, router, fisherman, "ft-tuna", "Fresh Tuna", 25, 650)

	// hotel bids 680/kg on the full 25kg
	bid, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", hotel.Token, helpers.PlaceBidRequest{
		ListingID:  listingID,
		BidAmount:  680,
		QuantityKg: 25,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 17000.0, bid["total_bid"])
	require.Equal(t, model.BidPending, bid["status"])
	bidID := bid["id"].(string)

	// fisherman accepts; an order for the full bid amount appears
	order, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/"+bidID+"/accept", fisherman.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 17000.0, order["total_amount"])
	require.Equal(t, model.OrderPending, order["status"])
	orderID := order["id"].(string)

	// full-quantity acceptance marks the listing sold
	listing, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/listings/"+listingID, hotel.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, model.ListingSold, listing["status"])

	// delivery cannot start before confirmation and payment
	w = ExecuteRequest(t, router, http.MethodPost, "/orders/"+orderID+"/otp", fisherman.Token, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	order, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/orders/"+orderID+"/confirm", fisherman.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, model.OrderConfirmed, order["status"])

	payment, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/orders/"+orderID+"/payment", hotel.Token,
		helpers.PaymentRequest{PaymentType: model.PaymentTypeFull, UpiTransactionID: "TXN001"})
	require.Equal(t, http.StatusOK, w.Code)
	paidOrder := payment["order"].(map[string]any)
	require.Equal(t, model.PaymentPaid, paidOrder["payment_status"])
	require.True(t, strings.HasPrefix(payment["upi_uri"].(string), "upi://pay?"))
	require.Contains(t, payment["upi_uri"], "pa=rkumar%40upi")
	require.Contains(t, payment["upi_uri"], "am=17000.00")

	// seller starts delivery and receives the code
	otpData, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/orders/"+orderID+"/otp", fisherman.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	otp := otpData["otp"].(string)
	require.Len(t, otp, 4)

	// the order never leaks the code
	order, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/orders/"+orderID, hotel.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, model.DeliveryInTransit, order["delivery_status"])
	require.NotContains(t, order, "delivery_otp")

	// a wrong code changes nothing
	wrong := "0000"
	if otp == wrong {
		wrong = "1111"
	}
	w = ExecuteRequest(t, router, http.MethodPost, "/orders/"+orderID+"/otp/verify", fisherman.Token,
		helpers.VerifyOTPRequest{OTP: wrong})
	require.Equal(t, http.StatusBadRequest, w.Code)

	order, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/orders/"+orderID, hotel.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, model.DeliveryInTransit, order["delivery_status"])

	// the right code completes the order
	order, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/orders/"+orderID+"/otp/verify", fisherman.Token,
		helpers.VerifyOTPRequest{OTP: otp})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, model.OrderCompleted, order["status"])
	require.Equal(t, model.DeliveryDelivered, order["delivery_status"])
	require.NotEmpty(t, order["delivery_completed_at"])

	// the buyer can now review the seller
	review, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/reviews", hotel.Token, helpers.ReviewRequest{
		OrderID: orderID,
		Rating:  5,
		Comment: "Fresh catch, on time",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, fisherman.ProfileID, review["reviewed_id"])

	seller, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/profiles/"+fisherman.ProfileID, hotel.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 5.0, seller["rating"])
}

// Advance payment: 2000 of a 5000 order moves payment to partially_paid,
// and the closing full payment charges only the balance.
func TestAdvanceThenBalancePayment(t *testing.T) {
	router, _ := SetupTestRouter()

	fisherman := registerUser(t, router, "mani@sea.in", "Mani Selvam", "fisherman")
	supplier := registerUser(t, router, "ops@coldchain.in", "Coldchain Ops", "supplier")

	upi := "mani@okaxis"
	_, w := ExecuteRequestAndParse(t, router, http.MethodPatch, "/profiles/me", fisherman.Token,
		model.ProfilePatch{UpiID: &upi})
	require.Equal(t, http.StatusOK, w.Code)

	listingID := createListing(t, router, fisherman, "ft-sardine", "Sardine Crates", 10, 500)

	order, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/orders/buy-now", supplier.Token,
		helpers.BuyNowRequest{ListingID: listingID, DeliveryAddress: "4 Market Lane"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 5000.0, order["total_amount"])
	orderID := order["id"].(string)

	payment, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/orders/"+orderID+"/payment", supplier.Token,
		helpers.PaymentRequest{PaymentType: model.PaymentTypeAdvance, Amount: 2000})
	require.Equal(t, http.StatusOK, w.Code)
	o := payment["order"].(map[string]any)
	require.Equal(t, model.PaymentPartiallyPaid, o["payment_status"])
	require.Equal(t, 2000.0, o["advance_amount"])
	require.Contains(t, payment["upi_uri"], "am=2000.00")

	// a second advance is rejected
	w = ExecuteRequest(t, router, http.MethodPost, "/orders/"+orderID+"/payment", supplier.Token,
		helpers.PaymentRequest{PaymentType: model.PaymentTypeAdvance, Amount: 1000})
	require.Equal(t, http.StatusConflict, w.Code)

	// the balance settles the remaining 3000
	payment, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/orders/"+orderID+"/payment", supplier.Token,
		helpers.PaymentRequest{PaymentType: model.PaymentTypeFull})
	require.Equal(t, http.StatusOK, w.Code)
	o = payment["order"].(map[string]any)
	require.Equal(t, model.PaymentPaid, o["payment_status"])
	require.Contains(t, payment["upi_uri"], "am=3000.00")
}

// Sold listings disappear from the open market but remain fetchable by id.
func TestSoldListingHiddenFromSearch(t *testing.T) {
	router, _ := SetupTestRouter()

	fisherman := registerUser(t, router, "arul@sea.in", "Arul Raj", "fisherman")
	hotel := registerUser(t, router, "buy@reef.in", "Reef House", "hotel")

	soldID := createListing(t, router, fisherman, "ft-tuna", "Morning Tuna", 20, 600)
	openID := createListing(t, router, fisherman, "ft-sardine", "Evening Sardine", 60, 200)

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/orders/buy-now", hotel.Token,
		helpers.BuyNowRequest{ListingID: soldID})
	require.Equal(t, http.StatusCreated, w.Code)

	available := ExecuteRequestAndParseList(t, router, http.MethodGet, "/listings", hotel.Token)
	require.Len(t, available, 1)
	require.Equal(t, openID, available[0].(map[string]any)["id"])

	// bulk view only shows lots at or above the threshold, sold ones never
	bulk := ExecuteRequestAndParseList(t, router, http.MethodGet, "/listings?bulk=true", hotel.Token)
	require.Len(t, bulk, 1)
	require.Equal(t, openID, bulk[0].(map[string]any)["id"])

	// direct fetch still works for order history purposes
	sold, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/listings/"+soldID, hotel.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, model.ListingSold, sold["status"])

	// and no further purchase can be made against it
	w = ExecuteRequest(t, router, http.MethodPost, "/orders/buy-now", hotel.Token,
		helpers.BuyNowRequest{ListingID: soldID})
	require.Equal(t, http.StatusConflict, w.Code)
}

// Editing an available listing round-trips and recomputes the total price.
func TestEditListingRoundTrip(t *testing.T) {
	router, _ := SetupTestRouter()

	fisherman := registerUser(t, router, "velu@sea.in", "Velu Anand", "fisherman")
	listingID := createListing(t, router, fisherman, "ft-tuna", "Dawn Catch", 30, 650)

	newPrice := 700.0
	newTitle := "Dawn Catch - Premium"
	updated, w := ExecuteRequestAndParse(t, router, http.MethodPatch, "/listings/"+listingID, fisherman.Token,
		model.ListingPatch{Title: &newTitle, PricePerKg: &newPrice})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, newTitle, updated["title"])
	require.Equal(t, 700.0, updated["price_per_kg"])
	require.Equal(t, 21000.0, updated["total_price"])

	fetched, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/listings/"+listingID, fisherman.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, newTitle, fetched["title"])
	require.Equal(t, 21000.0, fetched["total_price"])
}

// Role and auth guards on the market surface.
func TestAuthorizationGuards(t *testing.T) {
	router, _ := SetupTestRouter()

	fisherman := registerUser(t, router, "guard@sea.in", "Guard Fisher", "fisherman")
	hotel := registerUser(t, router, "guard@hotel.in", "Guard Hotel", "hotel")
	listingID := createListing(t, router, fisherman, "ft-tuna", "Guarded Tuna", 15, 600)

	t.Run("unauthenticated_request_rejected", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodGet, "/listings", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage_token_rejected", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodGet, "/listings", "not-a-jwt", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("buyer_cannot_create_listing", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/listings", hotel.Token, helpers.CreateListingRequest{})
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("fisherman_cannot_bid", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/bids", fisherman.Token, helpers.PlaceBidRequest{
			ListingID:  listingID,
			BidAmount:  600,
			QuantityKg: 5,
		})
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("buyer_cannot_accept_bids", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/bids/whatever/accept", hotel.Token, nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("only_own_listing_editable", func(t *testing.T) {
		other := registerUser(t, router, "other@sea.in", "Other Fisher", "fisherman")
		title := "Hijacked"
		w := ExecuteRequest(t, router, http.MethodPatch, "/listings/"+listingID, other.Token,
			model.ListingPatch{Title: &title})
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("stranger_cannot_view_order", func(t *testing.T) {
		orderData, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/orders/buy-now", hotel.Token,
			helpers.BuyNowRequest{ListingID: listingID})
		require.Equal(t, http.StatusCreated, w.Code)
		orderID := orderData["id"].(string)

		stranger := registerUser(t, router, "nosy@market.in", "Nosy Market", "market")
		w = ExecuteRequest(t, router, http.MethodGet, "/orders/"+orderID, stranger.Token, nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// Duplicate registration and login behaviour.
func TestAuthFlow(t *testing.T) {
	router, _ := SetupTestRouter()

	registerUser(t, router, "dup@sea.in", "First In", "fisherman")

	t.Run("duplicate_email_conflicts", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/auth/register", "", helpers.RegisterRequest{
			Email:    "dup@sea.in",
			Password: "secret123",
			FullName: "Second In",
			Role:     "hotel",
		})
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("login_returns_working_token", func(t *testing.T) {
		data, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/login", "", helpers.LoginRequest{
			Email:    "dup@sea.in",
			Password: "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		me, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/profiles/me", data["token"].(string), nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "First In", me["full_name"])
	})

	t.Run("wrong_password_unauthorized", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/auth/login", "", helpers.LoginRequest{
			Email:    "dup@sea.in",
			Password: "wrongpass",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown_role_rejected", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/auth/register", "", helpers.RegisterRequest{
			Email:    "pirate@sea.in",
			Password: "secret123",
			FullName: "Pirate",
			Role:     "pirate",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Chat threads on a listing stay private between the participants.
func TestListingConversation(t *testing.T) {
	router, _ := SetupTestRouter()

	fisherman := registerUser(t, router, "talk@sea.in", "Talk Fisher", "fisherman")
	hotelA := registerUser(t, router, "a@hotel.in", "Hotel A", "hotel")
	hotelB := registerUser(t, router, "b@hotel.in", "Hotel B", "hotel")
	listingID := createListing(t, router, fisherman, "ft-tuna", "Chatty Tuna", 12, 550)

	for _, m := range []struct {
		token, receiver, text string
	}{
		{hotelA.Token, fisherman.ProfileID, "Is this morning catch?"},
		{fisherman.Token, hotelA.ProfileID, "Yes, landed at 6am"},
		{hotelB.Token, fisherman.ProfileID, "Can you do 500/kg?"},
	} {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/messages", m.token, helpers.SendMessageRequest{
			ListingID:  listingID,
			ReceiverID: m.receiver,
			Message:    m.text,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// the seller sees every thread
	all := ExecuteRequestAndParseList(t, router, http.MethodGet, "/listings/"+listingID+"/messages", fisherman.Token)
	require.Len(t, all, 3)

	// each buyer only their own
	forA := ExecuteRequestAndParseList(t, router, http.MethodGet, "/listings/"+listingID+"/messages", hotelA.Token)
	require.Len(t, forA, 2)

	forB := ExecuteRequestAndParseList(t, router, http.MethodGet, "/listings/"+listingID+"/messages", hotelB.Token)
	require.Len(t, forB, 1)
	require.Equal(t, "Can you do 500/kg?", forB[0].(map[string]any)["message"])
}

// Quick partial orders draw down stock without closing the listing.
func TestQuickOrderPartialQuantity(t *testing.T) {
	router, _ := SetupTestRouter()

	fisherman := registerUser(t, router, "stock@sea.in", "Stock Fisher", "fisherman")
	market := registerUser(t, router, "stall@market.in", "Stall 7", "market")
	listingID := createListing(t, router, fisherman, "ft-sardine", "Sardine Heap", 40, 300)

	order, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/orders/quick", market.Token,
		helpers.QuickOrderRequest{ListingID: listingID, QuantityKg: 15})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 15.0, order["quantity_kg"])
	require.Equal(t, 4500.0, order["total_amount"])

	// listing stays available for the remainder
	listing, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/listings/"+listingID, market.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, model.ListingAvailable, listing["status"])

	// over-drawing the remaining stock is rejected
	w = ExecuteRequest(t, router, http.MethodPost, "/orders/quick", market.Token,
		helpers.QuickOrderRequest{ListingID: listingID, QuantityKg: 100})
	require.Equal(t, http.StatusConflict, w.Code)
}
