package listing

import (
	"fmt"
	"strings"
	"time"

	"fishmarket/internal/marketerrors"
	model "fishmarket/internal/models"
	"fishmarket/internal/repository"
	"fishmarket/utils"
)

// ListingService defines the business logic for catch listings.
type ListingService struct {
	repo          repository.MarketDB
	bulkMinWeight float64
}

// NewListingService creates a new ListingService instance
func NewListingService(repo repository.MarketDB, bulkMinWeight float64) *ListingService {
	return &ListingService{
		repo:          repo,
		bulkMinWeight: bulkMinWeight,
	}
}

// CreateInput carries the fields to post a new listing.
type CreateInput struct {
	FishTypeID  string
	Title       string
	Description string
	Location    string
	WeightKg    float64
	PricePerKg  float64
	CatchDate   string
	ExpiresAt   time.Time
	ImageURL    string
}

// Create posts a new catch for the given fisherman.
func (s *ListingService) Create(fishermanID string, in CreateInput) (model.Listing, error) {
	seller, err := s.repo.GetProfile(fishermanID)
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to get profile %s: %w", fishermanID, err)
	}
	if seller.Role != model.RoleFisherman && seller.Role != model.RoleAdmin {
		return model.Listing{}, fmt.Errorf("service: %w - only fishermen can post listings", marketerrors.ErrForbidden)
	}
	if err := validateListingInput(in); err != nil {
		return model.Listing{}, err
	}
	if _, err := s.fishType(in.FishTypeID); err != nil {
		return model.Listing{}, err
	}

	now := time.Now().UTC()
	l := model.Listing{
		ID:          utils.GenerateID(),
		FishermanID: fishermanID,
		FishTypeID:  in.FishTypeID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Location:    in.Location,
		WeightKg:    in.WeightKg,
		PricePerKg:  in.PricePerKg,
		TotalPrice:  in.WeightKg * in.PricePerKg,
		Status:      model.ListingAvailable,
		CatchDate:   in.CatchDate,
		ExpiresAt:   in.ExpiresAt,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateListing(l); err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to create listing: %w", err)
	}

	utils.Info("listing created", map[string]any{"listing_id": l.ID, "fisherman_id": fishermanID, "weight_kg": l.WeightKg})
	return l, nil
}

func validateListingInput(in CreateInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("service: %w - title is required", marketerrors.ErrInvalidListing)
	}
	if strings.TrimSpace(in.Location) == "" {
		return fmt.Errorf("service: %w - location is required", marketerrors.ErrInvalidListing)
	}
	if in.WeightKg <= 0 {
		return fmt.Errorf("service: %w - non-positive weight", marketerrors.ErrInvalidListing)
	}
	if in.PricePerKg <= 0 {
		return fmt.Errorf("service: %w - non-positive price", marketerrors.ErrInvalidListing)
	}
	return nil
}

func (s *ListingService) fishType(fishTypeID string) (model.FishType, error) {
	types, err := s.repo.FishTypes()
	if err != nil {
		return model.FishType{}, fmt.Errorf("service: failed to get fish types: %w", err)
	}
	for _, ft := range types {
		if ft.ID == fishTypeID {
			return ft, nil
		}
	}
	return model.FishType{}, fmt.Errorf("service: %w - %s", marketerrors.ErrFishTypeNotFound, fishTypeID)
}

// Get returns a single listing by ID.
func (s *ListingService) Get(listingID string) (model.Listing, error) {
	if listingID == "" {
		return model.Listing{}, fmt.Errorf("service: %w - empty listing ID", marketerrors.ErrInvalidListing)
	}
	l, err := s.repo.GetListing(listingID)
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	return l, nil
}

// SearchFilter narrows the available-listing feed.
type SearchFilter struct {
	Query    string // matched against title and fish type name
	Location string // substring match on listing location
	BulkOnly bool   // restrict to wholesale-sized listings
}

// Available returns available listings, newest first, with optional
// filtering. Sold and expired listings never appear.
func (s *ListingService) Available(f SearchFilter) ([]model.Listing, error) {
	minWeight := 0.0
	if f.BulkOnly {
		minWeight = s.bulkMinWeight
	}

	all, err := s.repo.AvailableListings(minWeight)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get available listings: %w", err)
	}
	if f.Query == "" && f.Location == "" {
		return all, nil
	}

	typeNames := map[string]string{}
	if f.Query != "" {
		types, err := s.repo.FishTypes()
		if err != nil {
			return nil, fmt.Errorf("service: failed to get fish types: %w", err)
		}
		for _, ft := range types {
			typeNames[ft.ID] = strings.ToLower(ft.Name)
		}
	}

	query := strings.ToLower(f.Query)
	location := strings.ToLower(f.Location)
	out := make([]model.Listing, 0, len(all))
	for _, l := range all {
		if query != "" &&
			!strings.Contains(strings.ToLower(l.Title), query) &&
			!strings.Contains(typeNames[l.FishTypeID], query) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(l.Location), location) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// ByFisherman returns all of a fisherman's listings regardless of status.
func (s *ListingService) ByFisherman(fishermanID string) ([]model.Listing, error) {
	if fishermanID == "" {
		return nil, fmt.Errorf("service: %w - empty fisherman ID", marketerrors.ErrInvalidListing)
	}
	listings, err := s.repo.ListingsByFisherman(fishermanID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get listings for fisherman %s: %w", fishermanID, err)
	}
	return listings, nil
}

// Edit applies a patch to an available listing. Only the owner may edit,
// and the stored total price follows weight and price changes.
func (s *ListingService) Edit(actorID, listingID string, patch model.ListingPatch) (model.Listing, error) {
	l, err := s.ownedListing(actorID, listingID)
	if err != nil {
		return model.Listing{}, err
	}
	if l.Status != model.ListingAvailable {
		return model.Listing{}, fmt.Errorf("service: %w - listing %s", marketerrors.ErrListingUnavailable, listingID)
	}
	if patch.WeightKg != nil && *patch.WeightKg <= 0 {
		return model.Listing{}, fmt.Errorf("service: %w - non-positive weight", marketerrors.ErrInvalidListing)
	}
	if patch.PricePerKg != nil && *patch.PricePerKg <= 0 {
		return model.Listing{}, fmt.Errorf("service: %w - non-positive price", marketerrors.ErrInvalidListing)
	}
	if patch.FishTypeID != nil {
		if _, err := s.fishType(*patch.FishTypeID); err != nil {
			return model.Listing{}, err
		}
	}

	if err := s.repo.UpdateListing(listingID, patch); err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to update listing %s: %w", listingID, err)
	}
	return s.repo.GetListing(listingID)
}

// MarkSold takes a listing off the market without an order.
func (s *ListingService) MarkSold(actorID, listingID string) error {
	l, err := s.ownedListing(actorID, listingID)
	if err != nil {
		return err
	}
	if l.Status != model.ListingAvailable {
		return fmt.Errorf("service: %w - listing %s", marketerrors.ErrListingUnavailable, listingID)
	}
	if err := s.repo.SetListingStatus(listingID, model.ListingSold); err != nil {
		return fmt.Errorf("service: failed to mark listing %s sold: %w", listingID, err)
	}
	return nil
}

// Delete removes the owner's listing.
func (s *ListingService) Delete(actorID, listingID string) error {
	if _, err := s.ownedListing(actorID, listingID); err != nil {
		return err
	}
	if err := s.repo.DeleteListing(listingID); err != nil {
		return fmt.Errorf("service: failed to delete listing %s: %w", listingID, err)
	}
	return nil
}

func (s *ListingService) ownedListing(actorID, listingID string) (model.Listing, error) {
	l, err := s.repo.GetListing(listingID)
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	if l.FishermanID != actorID {
		return model.Listing{}, fmt.Errorf("service: %w - listing %s belongs to another fisherman", marketerrors.ErrForbidden, listingID)
	}
	return l, nil
}

// FishTypes returns the catalog, sorted by name.
func (s *ListingService) FishTypes() ([]model.FishType, error) {
	types, err := s.repo.FishTypes()
	if err != nil {
		return nil, fmt.Errorf("service: failed to get fish types: %w", err)
	}
	return types, nil
}

// ExpressInterest records a buyer's interest and notifies the seller.
func (s *ListingService) ExpressInterest(buyerID, listingID, message string) (model.Interest, error) {
	buyer, err := s.repo.GetProfile(buyerID)
	if err != nil {
		return model.Interest{}, fmt.Errorf("service: failed to get profile %s: %w", buyerID, err)
	}
	if !buyer.Role.Buyer() {
		return model.Interest{}, fmt.Errorf("service: %w - only buyers can express interest", marketerrors.ErrForbidden)
	}

	l, err := s.repo.GetListing(listingID)
	if err != nil {
		return model.Interest{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	if l.Status != model.ListingAvailable {
		return model.Interest{}, fmt.Errorf("service: %w - listing %s", marketerrors.ErrListingUnavailable, listingID)
	}

	interest := model.Interest{
		ID:        utils.GenerateID(),
		ListingID: listingID,
		BuyerID:   buyerID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateInterest(interest); err != nil {
		return model.Interest{}, fmt.Errorf("service: failed to create interest for listing %s: %w", listingID, err)
	}

	note := model.Notification{
		ID:        utils.GenerateID(),
		UserID:    l.FishermanID,
		Title:     "New interest",
		Message:   fmt.Sprintf("%s is interested in %s", buyer.FullName, l.Title),
		Type:      "interest",
		RelatedID: listingID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateNotification(note); err != nil {
		utils.Warn("failed to notify seller about interest", map[string]any{"listing_id": listingID, "error": err.Error()})
	}
	return interest, nil
}

// InterestsForSeller lists interests across all of a seller's listings.
func (s *ListingService) InterestsForSeller(sellerID string) ([]model.Interest, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("service: %w - empty seller ID", marketerrors.ErrInvalidListing)
	}
	out, err := s.repo.InterestsBySeller(sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get interests for seller %s: %w", sellerID, err)
	}
	return out, nil
}
