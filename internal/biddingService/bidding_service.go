package bidding

import (
	"fmt"
	"time"

	"fishmarket/internal/marketerrors"
	model "fishmarket/internal/models"
	"fishmarket/internal/repository"
	"fishmarket/utils"
)

// BiddingService defines the business logic for listing bids.
type BiddingService struct {
	repo repository.MarketDB
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.MarketDB) *BiddingService {
	return &BiddingService{
		repo: repo,
	}
}

// PlaceBid validates and records a buyer's offer on a listing. The bid
// total is always recomputed here from amount and quantity; client-sent
// totals are ignored.
func (s *BiddingService) PlaceBid(bidderID, listingID string, bidAmount, quantityKg float64, message string) (model.Bid, error) {
	listing, err := s.validateBid(bidderID, listingID, bidAmount, quantityKg)
	if err != nil {
		return model.Bid{}, err
	}

	now := time.Now().UTC()
	bid := model.Bid{
		ID:         utils.GenerateID(),
		ListingID:  listingID,
		BidderID:   bidderID,
		BidAmount:  bidAmount,
		QuantityKg: quantityKg,
		TotalBid:   bidAmount * quantityKg,
		Message:    message,
		Status:     model.BidPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.CreateBid(bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid for listing %s by %s: %w", listingID, bidderID, err)
	}

	s.notify(listing.FishermanID, "New bid received",
		fmt.Sprintf("Bid of ₹%.2f/kg for %.1fkg on %s", bidAmount, quantityKg, listing.Title), "bid", bid.ID)

	utils.Info("bid placed", map[string]any{"bid_id": bid.ID, "listing_id": listingID, "total_bid": bid.TotalBid})
	return bid, nil
}

// validateBid checks input validity and business rules for bidding
func (s *BiddingService) validateBid(bidderID, listingID string, bidAmount, quantityKg float64) (model.Listing, error) {
	if listingID == "" || bidderID == "" {
		return model.Listing{}, fmt.Errorf("service: %w - missing listingID or bidderID", marketerrors.ErrInvalidBid)
	}
	if bidAmount <= 0 {
		return model.Listing{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidBid)
	}
	if quantityKg <= 0 {
		return model.Listing{}, fmt.Errorf("service: %w - non-positive quantity", marketerrors.ErrInvalidBid)
	}

	bidder, err := s.repo.GetProfile(bidderID)
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to get profile %s: %w", bidderID, err)
	}
	if !bidder.Role.Buyer() {
		return model.Listing{}, fmt.Errorf("service: %w - only buyers can place bids", marketerrors.ErrForbidden)
	}

	listing, err := s.repo.GetListing(listingID)
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	if listing.Status != model.ListingAvailable {
		return model.Listing{}, fmt.Errorf("service: %w - listing %s", marketerrors.ErrListingUnavailable, listingID)
	}
	if listing.FishermanID == bidderID {
		return model.Listing{}, fmt.Errorf("service: %w - cannot bid on own listing", marketerrors.ErrForbidden)
	}
	if quantityKg > listing.WeightKg {
		return model.Listing{}, fmt.Errorf("service: %w - requested %.1fkg of %.1fkg", marketerrors.ErrQuantityExceeds, quantityKg, listing.WeightKg)
	}
	return listing, nil
}

// AcceptBid converts a pending bid into an order. The order's price per
// kg is the accepted bid amount and its total is the bid total. A bid for
// the listing's full weight also marks the listing sold.
func (s *BiddingService) AcceptBid(sellerID, bidID string) (model.Order, error) {
	bid, listing, err := s.sellerBid(sellerID, bidID)
	if err != nil {
		return model.Order{}, err
	}

	buyer, err := s.repo.GetProfile(bid.BidderID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: failed to get profile %s: %w", bid.BidderID, err)
	}
	seller, err := s.repo.GetProfile(sellerID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: failed to get profile %s: %w", sellerID, err)
	}

	now := time.Now().UTC()
	order := model.Order{
		ID:                 utils.GenerateID(),
		ListingID:          bid.ListingID,
		BuyerID:            bid.BidderID,
		SellerID:           sellerID,
		QuantityKg:         bid.QuantityKg,
		PricePerKg:         bid.BidAmount,
		TotalAmount:        bid.TotalBid,
		Status:             model.OrderPending,
		PaymentStatus:      model.PaymentPending,
		DeliveryAddress:    buyer.Address,
		DeliveryStatus:     model.DeliveryPending,
		BuyerLatitude:      buyer.Latitude,
		BuyerLongitude:     buyer.Longitude,
		FishermanLatitude:  seller.Latitude,
		FishermanLongitude: seller.Longitude,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return model.Order{}, fmt.Errorf("service: failed to create order for bid %s: %w", bidID, err)
	}
	if err := s.repo.SetBidStatus(bidID, model.BidAccepted); err != nil {
		return model.Order{}, fmt.Errorf("service: failed to accept bid %s: %w", bidID, err)
	}
	if bid.QuantityKg >= listing.WeightKg {
		if err := s.repo.SetListingStatus(listing.ID, model.ListingSold); err != nil {
			return model.Order{}, fmt.Errorf("service: failed to mark listing %s sold: %w", listing.ID, err)
		}
	}

	s.notify(bid.BidderID, "Bid accepted",
		fmt.Sprintf("Your bid on %s was accepted. Order total ₹%.2f", listing.Title, order.TotalAmount), "order", order.ID)

	utils.Info("bid accepted", map[string]any{"bid_id": bidID, "order_id": order.ID, "total_amount": order.TotalAmount})
	return order, nil
}

// RejectBid marks a pending bid rejected and notifies the bidder.
func (s *BiddingService) RejectBid(sellerID, bidID string) error {
	bid, listing, err := s.sellerBid(sellerID, bidID)
	if err != nil {
		return err
	}
	if err := s.repo.SetBidStatus(bidID, model.BidRejected); err != nil {
		return fmt.Errorf("service: failed to reject bid %s: %w", bidID, err)
	}
	s.notify(bid.BidderID, "Bid rejected",
		fmt.Sprintf("Your bid on %s was rejected", listing.Title), "bid", bidID)
	return nil
}

// sellerBid loads a pending bid and verifies the actor owns its listing.
func (s *BiddingService) sellerBid(sellerID, bidID string) (model.Bid, model.Listing, error) {
	if bidID == "" {
		return model.Bid{}, model.Listing{}, fmt.Errorf("service: %w - empty bid ID", marketerrors.ErrInvalidBid)
	}
	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return model.Bid{}, model.Listing{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if bid.Status != model.BidPending {
		return model.Bid{}, model.Listing{}, fmt.Errorf("service: %w - bid %s is %s", marketerrors.ErrBidNotPending, bidID, bid.Status)
	}
	listing, err := s.repo.GetListing(bid.ListingID)
	if err != nil {
		return model.Bid{}, model.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", bid.ListingID, err)
	}
	if listing.FishermanID != sellerID {
		return model.Bid{}, model.Listing{}, fmt.Errorf("service: %w - bid %s is on another fisherman's listing", marketerrors.ErrForbidden, bidID)
	}
	return bid, listing, nil
}

// BidsForListing returns all bids on a listing, newest first.
func (s *BiddingService) BidsForListing(listingID string) ([]model.Bid, error) {
	if listingID == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", marketerrors.ErrInvalidBid)
	}
	bids, err := s.repo.BidsByListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for listing %s: %w", listingID, err)
	}
	return bids, nil
}

// BidsByBidder returns all bids a buyer has placed.
func (s *BiddingService) BidsByBidder(bidderID string) ([]model.Bid, error) {
	if bidderID == "" {
		return nil, fmt.Errorf("service: %w - empty bidder ID", marketerrors.ErrInvalidBid)
	}
	bids, err := s.repo.BidsByBidder(bidderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for bidder %s: %w", bidderID, err)
	}
	return bids, nil
}

// BidsForSeller returns all bids across a seller's listings.
func (s *BiddingService) BidsForSeller(sellerID string) ([]model.Bid, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("service: %w - empty seller ID", marketerrors.ErrInvalidBid)
	}
	bids, err := s.repo.BidsBySeller(sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for seller %s: %w", sellerID, err)
	}
	return bids, nil
}

func (s *BiddingService) notify(userID, title, message, kind, relatedID string) {
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
