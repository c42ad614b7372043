package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fishmarket/internal/marketerrors"
	model "fishmarket/internal/models"
)

// Helper to create a fisherman profile
func newFisherman(id string) model.Profile {
	return model.Profile{ID: id, UserID: "acc-" + id, FullName: "Fisher " + id, Role: model.RoleFisherman}
}

// Helper to create an available listing
func newListing(id, fishermanID string, weightKg, pricePerKg float64, createdAt time.Time) model.Listing {
	return model.Listing{
		ID:          id,
		FishermanID: fishermanID,
		FishTypeID:  "ft-tuna",
		Title:       "Listing " + id,
		Location:    "Chennai",
		WeightKg:    weightKg,
		PricePerKg:  pricePerKg,
		TotalPrice:  weightKg * pricePerKg,
		Status:      model.ListingAvailable,
		CreatedAt:   createdAt,
	}
}

func seededRepo(t *testing.T) *MemoryRepo {
	t.Helper()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateProfile(newFisherman("fisher1")))
	return repo
}

// Test CreateAccount
func TestMemoryRepo_CreateAccount(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	require.NoError(t, repo.CreateAccount(model.Account{ID: "a1", Email: "R.Kumar@Example.com"}))

	// lookup is case-insensitive
	acc, err := repo.GetAccountByEmail("r.kumar@example.com")
	require.NoError(t, err)
	require.Equal(t, "a1", acc.ID)

	// duplicate email in any casing is rejected
	err = repo.CreateAccount(model.Account{ID: "a2", Email: "r.kumar@EXAMPLE.com"})
	require.ErrorIs(t, err, marketerrors.ErrDuplicateEmail)

	_, err = repo.GetAccountByEmail("nobody@example.com")
	require.ErrorIs(t, err, marketerrors.ErrAccountNotFound)
}

// Test CreateListing / AvailableListings
func TestMemoryRepo_AvailableListings(t *testing.T) {
	t.Parallel()

	repo := seededRepo(t)
	now := time.Now().UTC()

	require.NoError(t, repo.CreateListing(newListing("l1", "fisher1", 25, 650, now.Add(-2*time.Hour))))
	require.NoError(t, repo.CreateListing(newListing("l2", "fisher1", 80, 400, now.Add(-1*time.Hour))))
	sold := newListing("l3", "fisher1", 120, 300, now)
	sold.Status = model.ListingSold
	require.NoError(t, repo.CreateListing(sold))

	// unknown fisherman rejected
	err := repo.CreateListing(newListing("lx", "ghost", 10, 100, now))
	require.ErrorIs(t, err, marketerrors.ErrProfileNotFound)

	// sold listings never appear
	all, err := repo.AvailableListings(0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// newest first
	require.Equal(t, "l2", all[0].ID)
	require.Equal(t, "l1", all[1].ID)

	// weight threshold filters wholesale lots
	bulk, err := repo.AvailableListings(50)
	require.NoError(t, err)
	require.Len(t, bulk, 1)
	require.Equal(t, "l2", bulk[0].ID)
}

// Test UpdateListing
func TestMemoryRepo_UpdateListing(t *testing.T) {
	t.Parallel()

	repo := seededRepo(t)
	require.NoError(t, repo.CreateListing(newListing("l1", "fisher1", 25, 650, time.Now().UTC())))

	newTitle := "Evening catch"
	newWeight := 30.0

	tests := []struct {
		name      string
		listingID string
		patch     model.ListingPatch
		wantError bool
	}{
		{name: "update_title", listingID: "l1", patch: model.ListingPatch{Title: &newTitle}},
		{name: "update_weight_recomputes_total", listingID: "l1", patch: model.ListingPatch{WeightKg: &newWeight}},
		{name: "empty_patch_is_noop", listingID: "l1", patch: model.ListingPatch{}},
		{name: "unknown_listing", listingID: "lx", patch: model.ListingPatch{Title: &newTitle}, wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.UpdateListing(tc.listingID, tc.patch)
			if tc.wantError {
				require.ErrorIs(t, err, marketerrors.ErrListingNotFound)
				return
			}
			require.NoError(t, err)
		})
	}

	l, err := repo.GetListing("l1")
	require.NoError(t, err)
	require.Equal(t, "Evening catch", l.Title)
	require.Equal(t, 30.0, l.WeightKg)
	require.Equal(t, 650.0, l.PricePerKg)
	require.Equal(t, 19500.0, l.TotalPrice)
}

// Test bids
func TestMemoryRepo_Bids(t *testing.T) {
	t.Parallel()

	repo := seededRepo(t)
	require.NoError(t, repo.CreateProfile(newFisherman("fisher2")))
	now := time.Now().UTC()
	require.NoError(t, repo.CreateListing(newListing("l1", "fisher1", 25, 650, now)))
	require.NoError(t, repo.CreateListing(newListing("l2", "fisher2", 40, 500, now)))

	bids := []model.Bid{
		{ID: "b1", ListingID: "l1", BidderID: "buyer1", BidAmount: 660, QuantityKg: 10, TotalBid: 6600, Status: model.BidPending, CreatedAt: now.Add(-time.Minute)},
		{ID: "b2", ListingID: "l1", BidderID: "buyer2", BidAmount: 680, QuantityKg: 25, TotalBid: 17000, Status: model.BidPending, CreatedAt: now},
		{ID: "b3", ListingID: "l2", BidderID: "buyer1", BidAmount: 510, QuantityKg: 40, TotalBid: 20400, Status: model.BidPending, CreatedAt: now},
	}
	for _, b := range bids {
		require.NoError(t, repo.CreateBid(b))
	}

	// bid on a missing listing is rejected
	err := repo.CreateBid(model.Bid{ID: "bx", ListingID: "ghost"})
	require.ErrorIs(t, err, marketerrors.ErrListingNotFound)

	byListing, err := repo.BidsByListing("l1")
	require.NoError(t, err)
	require.Len(t, byListing, 2)
	require.Equal(t, "b2", byListing[0].ID) // newest first

	byBidder, err := repo.BidsByBidder("buyer1")
	require.NoError(t, err)
	require.Len(t, byBidder, 2)

	bySeller, err := repo.BidsBySeller("fisher1")
	require.NoError(t, err)
	require.Len(t, bySeller, 2)

	require.NoError(t, repo.SetBidStatus("b2", model.BidAccepted))
	b, err := repo.GetBid("b2")
	require.NoError(t, err)
	require.Equal(t, model.BidAccepted, b.Status)

	require.ErrorIs(t, repo.SetBidStatus("ghost", model.BidAccepted), marketerrors.ErrBidNotFound)
}

// Test orders
func TestMemoryRepo_Orders(t *testing.T) {
	t.Parallel()

	repo := seededRepo(t)
	now := time.Now().UTC()
	require.NoError(t, repo.CreateListing(newListing("l1", "fisher1", 25, 650, now)))

	o := model.Order{
		ID:             "o1",
		ListingID:      "l1",
		BuyerID:        "buyer1",
		SellerID:       "fisher1",
		QuantityKg:     25,
		PricePerKg:     680,
		TotalAmount:    17000,
		Status:         model.OrderPending,
		PaymentStatus:  model.PaymentPending,
		DeliveryStatus: model.DeliveryPending,
		CreatedAt:      now,
	}
	require.NoError(t, repo.CreateOrder(o))

	confirmed := model.OrderConfirmed
	require.NoError(t, repo.UpdateOrder("o1", model.OrderPatch{Status: &confirmed}))

	got, err := repo.GetOrder("o1")
	require.NoError(t, err)
	require.Equal(t, model.OrderConfirmed, got.Status)
	// untouched fields survive the patch
	require.Equal(t, 17000.0, got.TotalAmount)
	require.Equal(t, model.PaymentPending, got.PaymentStatus)

	buyerOrders, err := repo.OrdersByBuyer("buyer1")
	require.NoError(t, err)
	require.Len(t, buyerOrders, 1)

	sellerOrders, err := repo.OrdersBySeller("fisher1")
	require.NoError(t, err)
	require.Len(t, sellerOrders, 1)

	require.ErrorIs(t, repo.UpdateOrder("ghost", model.OrderPatch{}), marketerrors.ErrOrderNotFound)
}

// Test CompletedOrdersBetween
func TestMemoryRepo_CompletedOrdersBetween(t *testing.T) {
	t.Parallel()

	repo := seededRepo(t)
	now := time.Now().UTC()
	require.NoError(t, repo.CreateListing(newListing("l1", "fisher1", 25, 650, now)))

	from := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	inside := from.Add(10 * time.Hour)
	outside := from.Add(30 * time.Hour)

	mk := func(id string, completedAt *time.Time, status string) model.Order {
		return model.Order{
			ID: id, ListingID: "l1", BuyerID: "buyer1", SellerID: "fisher1",
			Status: status, DeliveryCompletedAt: completedAt, CreatedAt: now,
		}
	}
	require.NoError(t, repo.CreateOrder(mk("o1", &inside, model.OrderCompleted)))
	require.NoError(t, repo.CreateOrder(mk("o2", &outside, model.OrderCompleted)))
	require.NoError(t, repo.CreateOrder(mk("o3", nil, model.OrderPending)))

	got, err := repo.CompletedOrdersBetween(from, from.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "o1", got[0].ID)
}

// Test messages ordering
func TestMemoryRepo_Messages(t *testing.T) {
	t.Parallel()

	repo := seededRepo(t)
	now := time.Now().UTC()
	require.NoError(t, repo.CreateListing(newListing("l1", "fisher1", 25, 650, now)))

	msgs := []model.Message{
		{ID: "m2", ListingID: "l1", SenderID: "b", ReceiverID: "f", Message: "two", CreatedAt: now},
		{ID: "m1", ListingID: "l1", SenderID: "f", ReceiverID: "b", Message: "one", CreatedAt: now.Add(-time.Minute)},
	}
	for _, m := range msgs {
		require.NoError(t, repo.CreateMessage(m))
	}

	got, err := repo.MessagesByListing("l1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// oldest first, chat order
	require.Equal(t, "m1", got[0].ID)
	require.Equal(t, "m2", got[1].ID)
}

// Test notifications
func TestMemoryRepo_Notifications(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateNotification(model.Notification{ID: "n1", UserID: "p1", Title: "hi"}))

	notes, err := repo.NotificationsByUser("p1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.False(t, notes[0].IsRead)

	require.NoError(t, repo.MarkNotificationRead("n1"))
	notes, _ = repo.NotificationsByUser("p1")
	require.True(t, notes[0].IsRead)

	require.ErrorIs(t, repo.MarkNotificationRead("ghost"), marketerrors.ErrNotificationNotFound)
}

// Concurrent writers must not race or drop bids.
func TestMemoryRepo_ConcurrentBids(t *testing.T) {
	t.Parallel()

	repo := seededRepo(t)
	require.NoError(t, repo.CreateListing(newListing("l1", "fisher1", 1000, 100, time.Now().UTC())))

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			b := model.Bid{
				ID:        fmt.Sprintf("bid-%d", n),
				ListingID: "l1",
				BidderID:  "buyer1",
				Status:    model.BidPending,
				CreatedAt: time.Now().UTC(),
			}
			_ = repo.CreateBid(b)
			_, _ = repo.BidsByListing("l1")
		}(i)
	}
	wg.Wait()

	bids, err := repo.BidsByListing("l1")
	require.NoError(t, err)
	require.Len(t, bids, writers)
}
