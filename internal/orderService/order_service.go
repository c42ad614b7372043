package order

import (
	"fmt"
	"net/url"
	"time"

	"fishmarket/internal/geo"
	"fishmarket/internal/marketerrors"
	model "fishmarket/internal/models"
	"fishmarket/internal/repository"
	"fishmarket/utils"
)

// OrderService owns the order lifecycle. All status, payment and
// delivery changes go through its guarded transitions; nothing else
// writes order patches.
type OrderService struct {
	repo   repository.MarketDB
	routes geo.RouteEstimator
}

// NewOrderService creates a new OrderService instance
func NewOrderService(repo repository.MarketDB, routes geo.RouteEstimator) *OrderService {
	return &OrderService{
		repo:   repo,
		routes: routes,
	}
}

// BuyNow purchases a listing's full weight at the listed price and
// marks the listing sold.
func (s *OrderService) BuyNow(buyerID, listingID, deliveryAddress string) (model.Order, error) {
	buyer, err := s.repo.GetProfile(buyerID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: failed to get profile %s: %w", buyerID, err)
	}
	if !buyer.Role.Buyer() {
		return model.Order{}, fmt.Errorf("service: %w - only buyers can place orders", marketerrors.ErrForbidden)
	}

	listing, err := s.repo.GetListing(listingID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	if listing.Status != model.ListingAvailable {
		return model.Order{}, fmt.Errorf("service: %w - listing %s", marketerrors.ErrListingUnavailable, listingID)
	}
	if listing.FishermanID == buyerID {
		return model.Order{}, fmt.Errorf("service: %w - cannot buy own listing", marketerrors.ErrForbidden)
	}

	seller, err := s.repo.GetProfile(listing.FishermanID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: failed to get profile %s: %w", listing.FishermanID, err)
	}

	if deliveryAddress == "" {
		deliveryAddress = buyer.Address
	}

	now := time.Now().UTC()
	o := model.Order{
		ID:                 utils.GenerateID(),
		ListingID:          listingID,
		BuyerID:            buyerID,
		SellerID:           listing.FishermanID,
		QuantityKg:         listing.WeightKg,
		PricePerKg:         listing.PricePerKg,
		TotalAmount:        listing.TotalPrice,
		Status:             model.OrderPending,
		PaymentStatus:      model.PaymentPending,
		DeliveryAddress:    deliveryAddress,
		DeliveryStatus:     model.DeliveryPending,
		BuyerLatitude:      buyer.Latitude,
		BuyerLongitude:     buyer.Longitude,
		FishermanLatitude:  seller.Latitude,
		FishermanLongitude: seller.Longitude,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.CreateOrder(o); err != nil {
		return model.Order{}, fmt.Errorf("service: failed to create order for listing %s: %w", listingID, err)
	}
	if err := s.repo.SetListingStatus(listingID, model.ListingSold); err != nil {
		return model.Order{}, fmt.Errorf("service: failed to mark listing %s sold: %w", listingID, err)
	}

	s.notify(o.SellerID, "New order",
		fmt.Sprintf("%s bought %s for ₹%.2f", buyer.FullName, listing.Title, o.TotalAmount), "order", o.ID)

	utils.Info("order created", map[string]any{"order_id": o.ID, "listing_id": listingID, "total_amount": o.TotalAmount})
	return o, nil
}

// QuickOrder purchases part of a listing's weight at the listed price.
// Ordering the full weight behaves like BuyNow and marks the listing
// sold.
func (s *OrderService) QuickOrder(buyerID, listingID string, quantityKg float64, deliveryAddress string) (model.Order, error) {
	buyer, err := s.repo.GetProfile(buyerID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: failed to get profile %s: %w", buyerID, err)
	}
	if !buyer.Role.Buyer() {
		return model.Order{}, fmt.Errorf("service: %w - only buyers can place orders", marketerrors.ErrForbidden)
	}
	if quantityKg <= 0 {
		return model.Order{}, fmt.Errorf("service: %w - non-positive quantity", marketerrors.ErrInvalidOrder)
	}

	listing, err := s.repo.GetListing(listingID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	if listing.Status != model.ListingAvailable {
		return model.Order{}, fmt.Errorf("service: %w - listing %s", marketerrors.ErrListingUnavailable, listingID)
	}
	if listing.FishermanID == buyerID {
		return model.Order{}, fmt.Errorf("service: %w - cannot buy own listing", marketerrors.ErrForbidden)
	}
	if quantityKg > listing.WeightKg {
		return model.Order{}, fmt.Errorf("service: %w - requested %.1fkg of %.1fkg", marketerrors.ErrQuantityExceeds, quantityKg, listing.WeightKg)
	}

	seller, err := s.repo.GetProfile(listing.FishermanID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: failed to get profile %s: %w", listing.FishermanID, err)
	}

	if deliveryAddress == "" {
		deliveryAddress = buyer.Address
	}

	now := time.Now().UTC()
	o := model.Order{
		ID:                 utils.GenerateID(),
		ListingID:          listingID,
		BuyerID:            buyerID,
		SellerID:           listing.FishermanID,
		QuantityKg:         quantityKg,
		PricePerKg:         listing.PricePerKg,
		TotalAmount:        quantityKg * listing.PricePerKg,
		Status:             model.OrderPending,
		PaymentStatus:      model.PaymentPending,
		DeliveryAddress:    deliveryAddress,
		DeliveryStatus:     model.DeliveryPending,
		BuyerLatitude:      buyer.Latitude,
		BuyerLongitude:     buyer.Longitude,
		FishermanLatitude:  seller.Latitude,
		FishermanLongitude: seller.Longitude,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.CreateOrder(o); err != nil {
		return model.Order{}, fmt.Errorf("service: failed to create order for listing %s: %w", listingID, err)
	}
	if quantityKg >= listing.WeightKg {
		if err := s.repo.SetListingStatus(listingID, model.ListingSold); err != nil {
			return model.Order{}, fmt.Errorf("service: failed to mark listing %s sold: %w", listingID, err)
		}
	}

	s.notify(o.SellerID, "New order",
		fmt.Sprintf("%s ordered %.1fkg of %s for ₹%.2f", buyer.FullName, quantityKg, listing.Title, o.TotalAmount), "order", o.ID)

	utils.Info("order created", map[string]any{"order_id": o.ID, "listing_id": listingID, "quantity_kg": quantityKg, "total_amount": o.TotalAmount})
	return o, nil
}

// Get returns an order visible to one of its parties.
func (s *OrderService) Get(actorID, orderID string) (model.Order, error) {
	return s.partyOrder(actorID, orderID)
}

// OrdersByBuyer returns a buyer's orders, newest first.
func (s *OrderService) OrdersByBuyer(buyerID string) ([]model.Order, error) {
	if buyerID == "" {
		return nil, fmt.Errorf("service: %w - empty buyer ID", marketerrors.ErrInvalidOrder)
	}
	orders, err := s.repo.OrdersByBuyer(buyerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get orders for buyer %s: %w", buyerID, err)
	}
	return orders, nil
}

// OrdersBySeller returns a seller's orders, newest first.
func (s *OrderService) OrdersBySeller(sellerID string) ([]model.Order, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("service: %w - empty seller ID", marketerrors.ErrInvalidOrder)
	}
	orders, err := s.repo.OrdersBySeller(sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get orders for seller %s: %w", sellerID, err)
	}
	return orders, nil
}

// Confirm moves a pending order to confirmed. Seller only.
func (s *OrderService) Confirm(sellerID, orderID string) (model.Order, error) {
	o, err := s.partyOrder(sellerID, orderID)
	if err != nil {
		return model.Order{}, err
	}
	if o.SellerID != sellerID {
		return model.Order{}, fmt.Errorf("service: %w - only the seller can confirm order %s", marketerrors.ErrForbidden, orderID)
	}
	if o.Status != model.OrderPending {
		return model.Order{}, fmt.Errorf("service: %w - cannot confirm order in status %s", marketerrors.ErrInvalidTransition, o.Status)
	}

	status := model.OrderConfirmed
	if err := s.repo.UpdateOrder(orderID, model.OrderPatch{Status: &status}); err != nil {
		return model.Order{}, fmt.Errorf("service: failed to confirm order %s: %w", orderID, err)
	}

	s.notify(o.BuyerID, "Order confirmed",
		fmt.Sprintf("Your order of %.1fkg was confirmed by the seller", o.QuantityKg), "order", orderID)
	return s.repo.GetOrder(orderID)
}

// Cancel moves a pending order to cancelled. Seller only; confirmed
// orders can no longer be cancelled.
func (s *OrderService) Cancel(sellerID, orderID string) (model.Order, error) {
	o, err := s.partyOrder(sellerID, orderID)
	if err != nil {
		return model.Order{}, err
	}
	if o.SellerID != sellerID {
		return model.Order{}, fmt.Errorf("service: %w - only the seller can cancel order %s", marketerrors.ErrForbidden, orderID)
	}
	if o.Status != model.OrderPending {
		return model.Order{}, fmt.Errorf("service: %w - cannot cancel order in status %s", marketerrors.ErrInvalidTransition, o.Status)
	}

	status := model.OrderCancelled
	if err := s.repo.UpdateOrder(orderID, model.OrderPatch{Status: &status}); err != nil {
		return model.Order{}, fmt.Errorf("service: failed to cancel order %s: %w", orderID, err)
	}

	s.notify(o.BuyerID, "Order cancelled",
		fmt.Sprintf("Your order of %.1fkg was cancelled by the seller", o.QuantityKg), "order", orderID)
	return s.repo.GetOrder(orderID)
}

// PaymentInput carries a payment attempt against an order.
type PaymentInput struct {
	PaymentType      string  // full or advance
	Amount           float64 // required for advance, ignored for full
	UpiTransactionID string
}

// PaymentResult is the order after payment plus the UPI deep link the
// buyer can open to pay the seller.
type PaymentResult struct {
	Order  model.Order `json:"order"`
	UpiURI string      `json:"upi_uri,omitempty"`
}

// RecordPayment records a UPI payment on an order. A full payment moves
// payment_status to paid; an advance moves it to partially_paid, and the
// balance can be settled later with a second full payment.
func (s *OrderService) RecordPayment(buyerID, orderID string, in PaymentInput) (PaymentResult, error) {
	o, err := s.partyOrder(buyerID, orderID)
	if err != nil {
		return PaymentResult{}, err
	}
	if o.BuyerID != buyerID {
		return PaymentResult{}, fmt.Errorf("service: %w - only the buyer can pay order %s", marketerrors.ErrForbidden, orderID)
	}
	if o.Status == model.OrderCancelled || o.Status == model.OrderCompleted {
		return PaymentResult{}, fmt.Errorf("service: %w - cannot pay order in status %s", marketerrors.ErrInvalidTransition, o.Status)
	}
	if o.PaymentStatus == model.PaymentPaid {
		return PaymentResult{}, fmt.Errorf("service: %w - order %s is already paid", marketerrors.ErrInvalidTransition, orderID)
	}

	method := model.PaymentMethodUPI
	patch := model.OrderPatch{
		PaymentMethod:    &method,
		UpiTransactionID: &in.UpiTransactionID,
	}
	var amount float64

	switch in.PaymentType {
	case model.PaymentTypeFull:
		paid := model.PaymentPaid
		full := model.PaymentTypeFull
		patch.PaymentStatus = &paid
		patch.PaymentType = &full
		amount = o.TotalAmount - o.AdvanceAmount
	case model.PaymentTypeAdvance:
		if o.PaymentStatus == model.PaymentPartiallyPaid {
			return PaymentResult{}, fmt.Errorf("service: %w - advance already paid on order %s", marketerrors.ErrInvalidTransition, orderID)
		}
		if in.Amount <= 0 || in.Amount >= o.TotalAmount {
			return PaymentResult{}, fmt.Errorf("service: %w - advance must be between 0 and the order total", marketerrors.ErrInvalidPayment)
		}
		partial := model.PaymentPartiallyPaid
		advance := model.PaymentTypeAdvance
		patch.PaymentStatus = &partial
		patch.PaymentType = &advance
		patch.AdvanceAmount = &in.Amount
		amount = in.Amount
	default:
		return PaymentResult{}, fmt.Errorf("service: %w - payment type must be full or advance", marketerrors.ErrInvalidPayment)
	}

	if err := s.repo.UpdateOrder(orderID, patch); err != nil {
		return PaymentResult{}, fmt.Errorf("service: failed to record payment on order %s: %w", orderID, err)
	}

	seller, err := s.repo.GetProfile(o.SellerID)
	if err != nil {
		return PaymentResult{}, fmt.Errorf("service: failed to get profile %s: %w", o.SellerID, err)
	}

	updated, err := s.repo.GetOrder(orderID)
	if err != nil {
		return PaymentResult{}, fmt.Errorf("service: failed to get order %s: %w", orderID, err)
	}

	s.notify(o.SellerID, "Payment received",
		fmt.Sprintf("₹%.2f received on order of %.1fkg", amount, o.QuantityKg), "payment", orderID)

	utils.Info("payment recorded", map[string]any{"order_id": orderID, "payment_status": updated.PaymentStatus, "amount": amount})
	return PaymentResult{Order: updated, UpiURI: upiURI(seller.UpiID, seller.FullName, amount)}, nil
}

// upiURI builds the upi://pay deep link for the given payee and amount.
func upiURI(upiID, payeeName string, amount float64) string {
	if upiID == "" {
		return ""
	}
	q := url.Values{}
	q.Set("pa", upiID)
	q.Set("pn", payeeName)
	q.Set("am", fmt.Sprintf("%.2f", amount))
	q.Set("cu", "INR")
	q.Set("tn", "Order Payment")
	return "upi://pay?" + q.Encode()
}

// GenerateDeliveryOTP starts delivery on a confirmed, fully paid order.
// The order moves to in_transit and the returned code is handed to the
// buyer out of band; regenerating replaces any earlier code.
func (s *OrderService) GenerateDeliveryOTP(sellerID, orderID string) (string, error) {
	o, err := s.partyOrder(sellerID, orderID)
	if err != nil {
		return "", err
	}
	if o.SellerID != sellerID {
		return "", fmt.Errorf("service: %w - only the seller can start delivery on order %s", marketerrors.ErrForbidden, orderID)
	}
	if o.Status != model.OrderConfirmed {
		return "", fmt.Errorf("service: %w - order must be confirmed before delivery, got %s", marketerrors.ErrInvalidTransition, o.Status)
	}
	if o.PaymentStatus != model.PaymentPaid {
		return "", fmt.Errorf("service: %w - order must be fully paid before delivery, got %s", marketerrors.ErrInvalidTransition, o.PaymentStatus)
	}
	if o.DeliveryStatus == model.DeliveryDelivered {
		return "", fmt.Errorf("service: %w - order %s is already delivered", marketerrors.ErrInvalidTransition, orderID)
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return "", fmt.Errorf("service: failed to generate delivery otp: %w", err)
	}

	inTransit := model.DeliveryInTransit
	patch := model.OrderPatch{
		DeliveryStatus: &inTransit,
		DeliveryOTP:    &otp,
	}
	if err := s.repo.UpdateOrder(orderID, patch); err != nil {
		return "", fmt.Errorf("service: failed to start delivery on order %s: %w", orderID, err)
	}

	s.notify(o.BuyerID, "Delivery started",
		"Your order is on its way. Share the delivery code only on handover.", "delivery", orderID)

	utils.Info("delivery otp generated", map[string]any{"order_id": orderID})
	return otp, nil
}

// VerifyDeliveryOTP completes an in-transit order when the code the
// buyer received matches. A mismatch changes nothing.
func (s *OrderService) VerifyDeliveryOTP(actorID, orderID, otp string) (model.Order, error) {
	o, err := s.partyOrder(actorID, orderID)
	if err != nil {
		return model.Order{}, err
	}
	if o.DeliveryStatus != model.DeliveryInTransit {
		return model.Order{}, fmt.Errorf("service: %w - order %s is not in transit", marketerrors.ErrInvalidTransition, orderID)
	}
	if otp == "" || otp != o.DeliveryOTP {
		return model.Order{}, fmt.Errorf("service: %w", marketerrors.ErrInvalidOTP)
	}

	now := time.Now().UTC()
	completed := model.OrderCompleted
	delivered := model.DeliveryDelivered
	patch := model.OrderPatch{
		Status:              &completed,
		DeliveryStatus:      &delivered,
		DeliveryCompletedAt: &now,
	}
	if err := s.repo.UpdateOrder(orderID, patch); err != nil {
		return model.Order{}, fmt.Errorf("service: failed to complete order %s: %w", orderID, err)
	}

	s.notify(o.SellerID, "Order delivered",
		fmt.Sprintf("Delivery of %.1fkg confirmed by the buyer", o.QuantityKg), "delivery", orderID)

	utils.Info("order delivered", map[string]any{"order_id": orderID})
	return s.repo.GetOrder(orderID)
}

// Tracking is the delivery progress view for an order.
type Tracking struct {
	OrderID        string     `json:"order_id"`
	Status         string     `json:"status"`
	DeliveryStatus string     `json:"delivery_status"`
	From           *geo.Point `json:"from,omitempty"`
	To             *geo.Point `json:"to,omitempty"`
	Route          *geo.Route `json:"route,omitempty"`
}

// Track returns delivery progress with a route estimate when both
// parties have coordinates on file.
func (s *OrderService) Track(actorID, orderID string) (Tracking, error) {
	o, err := s.partyOrder(actorID, orderID)
	if err != nil {
		return Tracking{}, err
	}

	t := Tracking{
		OrderID:        o.ID,
		Status:         o.Status,
		DeliveryStatus: o.DeliveryStatus,
	}
	if o.FishermanLatitude != nil && o.FishermanLongitude != nil {
		t.From = &geo.Point{Latitude: *o.FishermanLatitude, Longitude: *o.FishermanLongitude}
	}
	if o.BuyerLatitude != nil && o.BuyerLongitude != nil {
		t.To = &geo.Point{Latitude: *o.BuyerLatitude, Longitude: *o.BuyerLongitude}
	}
	if t.From != nil && t.To != nil {
		route := s.routes.Estimate(*t.From, *t.To)
		t.Route = &route
	}
	return t, nil
}

// partyOrder loads an order and verifies the actor is its buyer or
// seller.
func (s *OrderService) partyOrder(actorID, orderID string) (model.Order, error) {
	if orderID == "" || actorID == "" {
		return model.Order{}, fmt.Errorf("service: %w - missing orderID or actorID", marketerrors.ErrInvalidOrder)
	}
	o, err := s.repo.GetOrder(orderID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: failed to get order %s: %w", orderID, err)
	}
	if o.BuyerID != actorID && o.SellerID != actorID {
		return model.Order{}, fmt.Errorf("service: %w - not a party to order %s", marketerrors.ErrForbidden, orderID)
	}
	return o, nil
}

func (s *OrderService) notify(userID, title, message, kind, relatedID string) {
	note := model.Notification{
		ID:        utils.GenerateID(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      kind,
		RelatedID: relatedID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateNotification(note); err != nil {
		utils.Warn("failed to create notification", map[string]any{"user_id": userID, "error": err.Error()})
	}
}
