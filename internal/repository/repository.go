package repository

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"fishmarket/internal/marketerrors"
	model "fishmarket/internal/models"
)

// MarketDB defines the storage contract for the marketplace. Table and
// column naming follows the hosted schema: profiles, listings, bids,
// orders, fish_types, messages, interests, price_history, reviews,
// notifications.
type MarketDB interface {
	// accounts and profiles
	CreateAccount(acc model.Account) error
	GetAccountByEmail(email string) (model.Account, error)
	CreateProfile(p model.Profile) error
	GetProfile(profileID string) (model.Profile, error)
	GetProfileByUserID(userID string) (model.Profile, error)
	UpdateProfile(profileID string, patch model.ProfilePatch) error
	SetProfileRating(profileID string, rating float64, totalReviews int) error

	// listings
	CreateListing(l model.Listing) error
	GetListing(listingID string) (model.Listing, error)
	ListingsByFisherman(fishermanID string) ([]model.Listing, error)
	AvailableListings(minWeightKg float64) ([]model.Listing, error)
	UpdateListing(listingID string, patch model.ListingPatch) error
	SetListingStatus(listingID, status string) error
	DeleteListing(listingID string) error

	// bids
	CreateBid(b model.Bid) error
	GetBid(bidID string) (model.Bid, error)
	BidsByListing(listingID string) ([]model.Bid, error)
	BidsByBidder(bidderID string) ([]model.Bid, error)
	BidsBySeller(sellerID string) ([]model.Bid, error)
	SetBidStatus(bidID, status string) error

	// orders
	CreateOrder(o model.Order) error
	GetOrder(orderID string) (model.Order, error)
	OrdersByBuyer(buyerID string) ([]model.Order, error)
	OrdersBySeller(sellerID string) ([]model.Order, error)
	UpdateOrder(orderID string, patch model.OrderPatch) error
	CompletedOrdersBetween(from, to time.Time) ([]model.Order, error)

	// chat and interests
	CreateMessage(m model.Message) error
	MessagesByListing(listingID string) ([]model.Message, error)
	CreateInterest(i model.Interest) error
	InterestsBySeller(sellerID string) ([]model.Interest, error)

	// catalog and price history
	AddFishType(ft model.FishType) error
	FishTypes() ([]model.FishType, error)
	RecordPricePoint(p model.PricePoint) error
	PriceHistoryByFishType(fishTypeID string, limit int) ([]model.PricePoint, error)

	// reviews and notifications
	CreateReview(r model.Review) error
	ReviewsByProfile(profileID string) ([]model.Review, error)
	CreateNotification(n model.Notification) error
	NotificationsByUser(profileID string) ([]model.Notification, error)
	MarkNotificationRead(notificationID string) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB.
type MemoryRepo struct {
	mu            sync.RWMutex
	accounts      map[string]model.Account // key: lower-cased email
	profiles      map[string]model.Profile // key: profile id
	listings      map[string]model.Listing
	bids          map[string]model.Bid
	orders        map[string]model.Order
	messages      map[string][]model.Message // key: listing id
	interests     []model.Interest
	fishTypes     map[string]model.FishType
	pricePoints   []model.PricePoint
	reviews       []model.Review
	notifications map[string]model.Notification
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		accounts:      make(map[string]model.Account),
		profiles:      make(map[string]model.Profile),
		listings:      make(map[string]model.Listing),
		bids:          make(map[string]model.Bid),
		orders:        make(map[string]model.Order),
		messages:      make(map[string][]model.Message),
		fishTypes:     make(map[string]model.FishType),
		notifications: make(map[string]model.Notification),
	}
}

func (r *MemoryRepo) CreateAccount(acc model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(acc.Email)
	if _, ok := r.accounts[key]; ok {
		return fmt.Errorf("create account %s: %w", acc.Email, marketerrors.ErrDuplicateEmail)
	}
	r.accounts[key] = acc
	return nil
}

func (r *MemoryRepo) GetAccountByEmail(email string) (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[strings.ToLower(email)]
	if !ok {
		return model.Account{}, fmt.Errorf("get account %s: %w", email, marketerrors.ErrAccountNotFound)
	}
	return acc, nil
}

func (r *MemoryRepo) CreateProfile(p model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

func (r *MemoryRepo) GetProfile(profileID string) (model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[profileID]
	if !ok {
		return model.Profile{}, fmt.Errorf("get profile %s: %w", profileID, marketerrors.ErrProfileNotFound)
	}
	return p, nil
}

func (r *MemoryRepo) GetProfileByUserID(userID string) (model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return model.Profile{}, fmt.Errorf("get profile for user %s: %w", userID, marketerrors.ErrProfileNotFound)
}

func (r *MemoryRepo) UpdateProfile(profileID string, patch model.ProfilePatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[profileID]
	if !ok {
		return fmt.Errorf("update profile %s: %w", profileID, marketerrors.ErrProfileNotFound)
	}

	if patch.FullName != nil {
		p.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.State != nil {
		p.State = *patch.State
	}
	if patch.UpiID != nil {
		p.UpiID = *patch.UpiID
	}
	if patch.Latitude != nil {
		p.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		p.Longitude = patch.Longitude
	}
	p.UpdatedAt = time.Now().UTC()
	r.profiles[profileID] = p
	return nil
}

func (r *MemoryRepo) SetProfileRating(profileID string, rating float64, totalReviews int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[profileID]
	if !ok {
		return fmt.Errorf("set rating for profile %s: %w", profileID, marketerrors.ErrProfileNotFound)
	}
	p.Rating = rating
	p.TotalReviews = totalReviews
	p.UpdatedAt = time.Now().UTC()
	r.profiles[profileID] = p
	return nil
}

func (r *MemoryRepo) CreateListing(l model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[l.FishermanID]; !ok {
		return fmt.Errorf("create listing for fisherman %s: %w", l.FishermanID, marketerrors.ErrProfileNotFound)
	}
	r.listings[l.ID] = l
	return nil
}

func (r *MemoryRepo) GetListing(listingID string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.listings[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	return l, nil
}

func (r *MemoryRepo) ListingsByFisherman(fishermanID string) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Listing
	for _, l := range r.listings {
		if l.FishermanID == fishermanID {
			out = append(out, l)
		}
	}
	sortListingsNewestFirst(out)
	return out, nil
}

// AvailableListings returns available listings weighing at least
// minWeightKg, newest first. A minWeightKg of 0 returns everything
// available.
func (r *MemoryRepo) AvailableListings(minWeightKg float64) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Listing
	for _, l := range r.listings {
		if l.Status == model.ListingAvailable && l.WeightKg >= minWeightKg {
			out = append(out, l)
		}
	}
	sortListingsNewestFirst(out)
	return out, nil
}

func (r *MemoryRepo) UpdateListing(listingID string, patch model.ListingPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[listingID]
	if !ok {
		return fmt.Errorf("update listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}

	if patch.Title != nil {
		l.Title = *patch.Title
	}
	if patch.FishTypeID != nil {
		l.FishTypeID = *patch.FishTypeID
	}
	if patch.Description != nil {
		l.Description = *patch.Description
	}
	if patch.Location != nil {
		l.Location = *patch.Location
	}
	if patch.WeightKg != nil {
		l.WeightKg = *patch.WeightKg
	}
	if patch.PricePerKg != nil {
		l.PricePerKg = *patch.PricePerKg
	}
	if patch.CatchDate != nil {
		l.CatchDate = *patch.CatchDate
	}
	if patch.ExpiresAt != nil {
		l.ExpiresAt = *patch.ExpiresAt
	}
	if patch.ImageURL != nil {
		l.ImageURL = *patch.ImageURL
	}
	l.TotalPrice = l.WeightKg * l.PricePerKg
	l.UpdatedAt = time.Now().UTC()
	r.listings[listingID] = l
	return nil
}

func (r *MemoryRepo) SetListingStatus(listingID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[listingID]
	if !ok {
		return fmt.Errorf("set status for listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	l.Status = status
	l.UpdatedAt = time.Now().UTC()
	r.listings[listingID] = l
	return nil
}

func (r *MemoryRepo) DeleteListing(listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[listingID]; !ok {
		return fmt.Errorf("delete listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	delete(r.listings, listingID)
	return nil
}

func (r *MemoryRepo) CreateBid(b model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[b.ListingID]; !ok {
		return fmt.Errorf("create bid for listing %s: %w", b.ListingID, marketerrors.ErrListingNotFound)
	}
	r.bids[b.ID] = b
	return nil
}

func (r *MemoryRepo) GetBid(bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	return b, nil
}

func (r *MemoryRepo) BidsByListing(listingID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Bid
	for _, b := range r.bids {
		if b.ListingID == listingID {
			out = append(out, b)
		}
	}
	sortBidsNewestFirst(out)
	return out, nil
}

func (r *MemoryRepo) BidsByBidder(bidderID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Bid
	for _, b := range r.bids {
		if b.BidderID == bidderID {
			out = append(out, b)
		}
	}
	sortBidsNewestFirst(out)
	return out, nil
}

// BidsBySeller returns bids placed on any listing owned by the seller.
func (r *MemoryRepo) BidsBySeller(sellerID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Bid
	for _, b := range r.bids {
		if l, ok := r.listings[b.ListingID]; ok && l.FishermanID == sellerID {
			out = append(out, b)
		}
	}
	sortBidsNewestFirst(out)
	return out, nil
}

func (r *MemoryRepo) SetBidStatus(bidID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bids[bidID]
	if !ok {
		return fmt.Errorf("set status for bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	r.bids[bidID] = b
	return nil
}

func (r *MemoryRepo) CreateOrder(o model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[o.ListingID]; !ok {
		return fmt.Errorf("create order for listing %s: %w", o.ListingID, marketerrors.ErrListingNotFound)
	}
	r.orders[o.ID] = o
	return nil
}

func (r *MemoryRepo) GetOrder(orderID string) (model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok {
		return model.Order{}, fmt.Errorf("get order %s: %w", orderID, marketerrors.ErrOrderNotFound)
	}
	return o, nil
}

func (r *MemoryRepo) OrdersByBuyer(buyerID string) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Order
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	sortOrdersNewestFirst(out)
	return out, nil
}

func (r *MemoryRepo) OrdersBySeller(sellerID string) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Order
	for _, o := range r.orders {
		if o.SellerID == sellerID {
			out = append(out, o)
		}
	}
	sortOrdersNewestFirst(out)
	return out, nil
}

func (r *MemoryRepo) UpdateOrder(orderID string, patch model.OrderPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return fmt.Errorf("update order %s: %w", orderID, marketerrors.ErrOrderNotFound)
	}

	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		o.PaymentStatus = *patch.PaymentStatus
	}
	if patch.PaymentMethod != nil {
		o.PaymentMethod = *patch.PaymentMethod
	}
	if patch.PaymentType != nil {
		o.PaymentType = *patch.PaymentType
	}
	if patch.AdvanceAmount != nil {
		o.AdvanceAmount = *patch.AdvanceAmount
	}
	if patch.UpiTransactionID != nil {
		o.UpiTransactionID = *patch.UpiTransactionID
	}
	if patch.DeliveryStatus != nil {
		o.DeliveryStatus = *patch.DeliveryStatus
	}
	if patch.DeliveryOTP != nil {
		o.DeliveryOTP = *patch.DeliveryOTP
	}
	if patch.DeliveryCompletedAt != nil {
		o.DeliveryCompletedAt = patch.DeliveryCompletedAt
	}
	o.UpdatedAt = time.Now().UTC()
	r.orders[orderID] = o
	return nil
}

func (r *MemoryRepo) CompletedOrdersBetween(from, to time.Time) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Order
	for _, o := range r.orders {
		if o.Status != model.OrderCompleted || o.DeliveryCompletedAt == nil {
			continue
		}
		at := *o.DeliveryCompletedAt
		if !at.Before(from) && at.Before(to) {
			out = append(out, o)
		}
	}
	sortOrdersNewestFirst(out)
	return out, nil
}

func (r *MemoryRepo) CreateMessage(m model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[m.ListingID]; !ok {
		return fmt.Errorf("create message for listing %s: %w", m.ListingID, marketerrors.ErrListingNotFound)
	}
	r.messages[m.ListingID] = append(r.messages[m.ListingID], m)
	return nil
}

// MessagesByListing returns the listing's chat history, oldest first.
func (r *MemoryRepo) MessagesByListing(listingID string) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := append([]model.Message(nil), r.messages[listingID]...)
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs, nil
}

func (r *MemoryRepo) CreateInterest(i model.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[i.ListingID]; !ok {
		return fmt.Errorf("create interest for listing %s: %w", i.ListingID, marketerrors.ErrListingNotFound)
	}
	r.interests = append(r.interests, i)
	return nil
}

func (r *MemoryRepo) InterestsBySeller(sellerID string) ([]model.Interest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Interest
	for _, i := range r.interests {
		if l, ok := r.listings[i.ListingID]; ok && l.FishermanID == sellerID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *MemoryRepo) AddFishType(ft model.FishType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fishTypes[ft.ID] = ft
	return nil
}

func (r *MemoryRepo) FishTypes() ([]model.FishType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.FishType, 0, len(r.fishTypes))
	for _, ft := range r.fishTypes {
		out = append(out, ft)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepo) RecordPricePoint(p model.PricePoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pricePoints = append(r.pricePoints, p)
	return nil
}

// PriceHistoryByFishType returns price points for a fish type, newest date
// first, at most limit entries (0 means no limit).
func (r *MemoryRepo) PriceHistoryByFishType(fishTypeID string, limit int) ([]model.PricePoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.PricePoint
	for _, p := range r.pricePoints {
		if p.FishTypeID == fishTypeID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) CreateReview(rv model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[rv.OrderID]; !ok {
		return fmt.Errorf("create review for order %s: %w", rv.OrderID, marketerrors.ErrOrderNotFound)
	}
	r.reviews = append(r.reviews, rv)
	return nil
}

func (r *MemoryRepo) ReviewsByProfile(profileID string) ([]model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Review
	for _, rv := range r.reviews {
		if rv.ReviewedID == profileID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *MemoryRepo) CreateNotification(n model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications[n.ID] = n
	return nil
}

func (r *MemoryRepo) NotificationsByUser(profileID string) ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Notification
	for _, n := range r.notifications {
		if n.UserID == profileID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) MarkNotificationRead(notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[notificationID]
	if !ok {
		return fmt.Errorf("mark notification %s read: %w", notificationID, marketerrors.ErrNotificationNotFound)
	}
	n.IsRead = true
	r.notifications[notificationID] = n
	return nil
}

func sortListingsNewestFirst(ls []model.Listing) {
	sort.Slice(ls, func(i, j int) bool { return ls[i].CreatedAt.After(ls[j].CreatedAt) })
}

func sortBidsNewestFirst(bs []model.Bid) {
	sort.Slice(bs, func(i, j int) bool { return bs[i].CreatedAt.After(bs[j].CreatedAt) })
}

func sortOrdersNewestFirst(os []model.Order) {
	sort.Slice(os, func(i, j int) bool { return os[i].CreatedAt.After(os[j].CreatedAt) })
}
