// Package sqlitedb persists the marketplace schema in SQLite behind the
// repository.MarketDB contract.
package sqlitedb

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"fishmarket/internal/marketerrors"
	model "fishmarket/internal/models"
	"fishmarket/internal/repository"
	"fishmarket/utils"

	_ "github.com/mattn/go-sqlite3"
)

// Compile-time check: *Store must satisfy repository.MarketDB.
var _ repository.MarketDB = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS profiles (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	full_name TEXT NOT NULL,
	role TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL DEFAULT '',
	state TEXT NOT NULL DEFAULT '',
	latitude REAL,
	longitude REAL,
	upi_id TEXT NOT NULL DEFAULT '',
	rating REAL NOT NULL DEFAULT 0,
	total_reviews INTEGER NOT NULL DEFAULT 0,
	is_verified INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS fish_types (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS listings (
	id TEXT PRIMARY KEY,
	fisherman_id TEXT NOT NULL REFERENCES profiles(id),
	fish_type_id TEXT NOT NULL REFERENCES fish_types(id),
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL,
	weight_kg REAL NOT NULL,
	price_per_kg REAL NOT NULL,
	total_price REAL NOT NULL,
	status TEXT NOT NULL,
	catch_date TEXT NOT NULL,
	expires_at TIMESTAMP NOT NULL,
	image_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS bids (
	id TEXT PRIMARY KEY,
	listing_id TEXT NOT NULL REFERENCES listings(id),
	bidder_id TEXT NOT NULL REFERENCES profiles(id),
	bid_amount REAL NOT NULL,
	quantity_kg REAL NOT NULL,
	total_bid REAL NOT NULL,
	message TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS orders (
	id TEXT PRIMARY KEY,
	listing_id TEXT NOT NULL REFERENCES listings(id),
	buyer_id TEXT NOT NULL REFERENCES profiles(id),
	seller_id TEXT NOT NULL REFERENCES profiles(id),
	quantity_kg REAL NOT NULL,
	price_per_kg REAL NOT NULL,
	total_amount REAL NOT NULL,
	status TEXT NOT NULL,
	payment_status TEXT NOT NULL,
	payment_method TEXT NOT NULL DEFAULT '',
	payment_type TEXT NOT NULL DEFAULT '',
	advance_amount REAL NOT NULL DEFAULT 0,
	upi_transaction_id TEXT NOT NULL DEFAULT '',
	delivery_address TEXT NOT NULL,
	delivery_status TEXT NOT NULL,
	delivery_otp TEXT NOT NULL DEFAULT '',
	delivery_completed_at TIMESTAMP,
	buyer_latitude REAL,
	buyer_longitude REAL,
	fisherman_latitude REAL,
	fisherman_longitude REAL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	listing_id TEXT NOT NULL REFERENCES listings(id),
	sender_id TEXT NOT NULL,
	receiver_id TEXT NOT NULL,
	message TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS interests (
	id TEXT PRIMARY KEY,
	listing_id TEXT NOT NULL REFERENCES listings(id),
	buyer_id TEXT NOT NULL,
	message TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS price_history (
	id TEXT PRIMARY KEY,
	fish_type_id TEXT NOT NULL REFERENCES fish_types(id),
	date TEXT NOT NULL,
	min_price REAL NOT NULL,
	max_price REAL NOT NULL,
	avg_price REAL NOT NULL,
	total_volume_kg REAL NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS reviews (
	id TEXT PRIMARY KEY,
	order_id TEXT NOT NULL REFERENCES orders(id),
	reviewer_id TEXT NOT NULL,
	reviewed_id TEXT NOT NULL,
	rating INTEGER NOT NULL,
	comment TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS notifications (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	title TEXT NOT NULL,
	message TEXT NOT NULL,
	type TEXT NOT NULL,
	related_id TEXT NOT NULL DEFAULT '',
	is_read INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
`

// Store is a SQLite-backed MarketDB.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlitedb: database path cannot be empty")
	}

	utils.Info("opening sqlite database", map[string]any{"path": path})
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlitedb: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlitedb: ping %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlitedb: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) CreateAccount(acc model.Account) error {
	_, err := s.db.Exec(
		`INSERT INTO accounts (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		acc.ID, strings.ToLower(acc.Email), acc.PasswordHash, acc.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("create account %s: %w", acc.Email, marketerrors.ErrDuplicateEmail)
		}
		return fmt.Errorf("create account %s: %w", acc.Email, err)
	}
	return nil
}

func (s *Store) GetAccountByEmail(email string) (model.Account, error) {
	var acc model.Account
	err := s.db.QueryRow(
		`SELECT id, email, password_hash, created_at FROM accounts WHERE email = ?`,
		strings.ToLower(email),
	).Scan(&acc.ID, &acc.Email, &acc.PasswordHash, &acc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, fmt.Errorf("get account %s: %w", email, marketerrors.ErrAccountNotFound)
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("get account %s: %w", email, err)
	}
	return acc, nil
}

func (s *Store) CreateProfile(p model.Profile) error {
	_, err := s.db.Exec(
		`INSERT INTO profiles (id, user_id, full_name, role, phone, address, city, state,
			latitude, longitude, upi_id, rating, total_reviews, is_verified, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.FullName, string(p.Role), p.Phone, p.Address, p.City, p.State,
		p.Latitude, p.Longitude, p.UpiID, p.Rating, p.TotalReviews, p.IsVerified, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create profile %s: %w", p.ID, err)
	}
	return nil
}

const profileColumns = `id, user_id, full_name, role, phone, address, city, state,
	latitude, longitude, upi_id, rating, total_reviews, is_verified, created_at, updated_at`

func scanProfile(row *sql.Row) (model.Profile, error) {
	var p model.Profile
	var lat, lng sql.NullFloat64
	err := row.Scan(&p.ID, &p.UserID, &p.FullName, &p.Role, &p.Phone, &p.Address, &p.City, &p.State,
		&lat, &lng, &p.UpiID, &p.Rating, &p.TotalReviews, &p.IsVerified, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Profile{}, err
	}
	if lat.Valid {
		p.Latitude = &lat.Float64
	}
	if lng.Valid {
		p.Longitude = &lng.Float64
	}
	return p, nil
}

func (s *Store) GetProfile(profileID string) (model.Profile, error) {
	p, err := scanProfile(s.db.QueryRow(
		`SELECT `+profileColumns+` FROM profiles WHERE id = ?`, profileID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, fmt.Errorf("get profile %s: %w", profileID, marketerrors.ErrProfileNotFound)
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("get profile %s: %w", profileID, err)
	}
	return p, nil
}

func (s *Store) GetProfileByUserID(userID string) (model.Profile, error) {
	p, err := scanProfile(s.db.QueryRow(
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = ?`, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, fmt.Errorf("get profile for user %s: %w", userID, marketerrors.ErrProfileNotFound)
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("get profile for user %s: %w", userID, err)
	}
	return p, nil
}

// patchQuery builds an UPDATE statement from column/value pairs where the
// value is non-nil.
func patchQuery(table string, cols []string, vals []any, id string) (string, []any) {
	set := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(vals)+2)
	for i, c := range cols {
		set = append(set, c+" = ?")
		args = append(args, vals[i])
	}
	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(set, ", ")), args
}

func (s *Store) UpdateProfile(profileID string, patch model.ProfilePatch) error {
	var cols []string
	var vals []any
	add := func(col string, v any) { cols = append(cols, col); vals = append(vals, v) }

	if patch.FullName != nil {
		add("full_name", *patch.FullName)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.City != nil {
		add("city", *patch.City)
	}
	if patch.State != nil {
		add("state", *patch.State)
	}
	if patch.UpiID != nil {
		add("upi_id", *patch.UpiID)
	}
	if patch.Latitude != nil {
		add("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		add("longitude", *patch.Longitude)
	}

	query, args := patchQuery("profiles", cols, vals, profileID)
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("update profile %s: %w", profileID, err)
	}
	return requireRow(res, fmt.Sprintf("update profile %s", profileID), marketerrors.ErrProfileNotFound)
}

func (s *Store) SetProfileRating(profileID string, rating float64, totalReviews int) error {
	res, err := s.db.Exec(
		`UPDATE profiles SET rating = ?, total_reviews = ?, updated_at = ? WHERE id = ?`,
		rating, totalReviews, time.Now().UTC(), profileID,
	)
	if err != nil {
		return fmt.Errorf("set rating for profile %s: %w", profileID, err)
	}
	return requireRow(res, fmt.Sprintf("set rating for profile %s", profileID), marketerrors.ErrProfileNotFound)
}

func (s *Store) CreateListing(l model.Listing) error {
	_, err := s.db.Exec(
		`INSERT INTO listings (id, fisherman_id, fish_type_id, title, description, location,
			weight_kg, price_per_kg, total_price, status, catch_date, expires_at, image_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.FishermanID, l.FishTypeID, l.Title, l.Description, l.Location,
		l.WeightKg, l.PricePerKg, l.TotalPrice, l.Status, l.CatchDate, l.ExpiresAt, l.ImageURL, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create listing %s: %w", l.ID, err)
	}
	return nil
}

const listingColumns = `id, fisherman_id, fish_type_id, title, description, location,
	weight_kg, price_per_kg, total_price, status, catch_date, expires_at, image_url, created_at, updated_at`

func scanListingRows(rows *sql.Rows) ([]model.Listing, error) {
	defer rows.Close()
	var out []model.Listing
	for rows.Next() {
		var l model.Listing
		if err := rows.Scan(&l.ID, &l.FishermanID, &l.FishTypeID, &l.Title, &l.Description, &l.Location,
			&l.WeightKg, &l.PricePerKg, &l.TotalPrice, &l.Status, &l.CatchDate, &l.ExpiresAt, &l.ImageURL,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) GetListing(listingID string) (model.Listing, error) {
	var l model.Listing
	err := s.db.QueryRow(`SELECT `+listingColumns+` FROM listings WHERE id = ?`, listingID).
		Scan(&l.ID, &l.FishermanID, &l.FishTypeID, &l.Title, &l.Description, &l.Location,
			&l.WeightKg, &l.PricePerKg, &l.TotalPrice, &l.Status, &l.CatchDate, &l.ExpiresAt, &l.ImageURL,
			&l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	if err != nil {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, err)
	}
	return l, nil
}

func (s *Store) ListingsByFisherman(fishermanID string) ([]model.Listing, error) {
	rows, err := s.db.Query(
		`SELECT `+listingColumns+` FROM listings WHERE fisherman_id = ? ORDER BY created_at DESC`, fishermanID)
	if err != nil {
		return nil, fmt.Errorf("listings for fisherman %s: %w", fishermanID, err)
	}
	return scanListingRows(rows)
}

func (s *Store) AvailableListings(minWeightKg float64) ([]model.Listing, error) {
	rows, err := s.db.Query(
		`SELECT `+listingColumns+` FROM listings WHERE status = ? AND weight_kg >= ? ORDER BY created_at DESC`,
		model.ListingAvailable, minWeightKg)
	if err != nil {
		return nil, fmt.Errorf("available listings: %w", err)
	}
	return scanListingRows(rows)
}

func (s *Store) UpdateListing(listingID string, patch model.ListingPatch) error {
	l, err := s.GetListing(listingID)
	if err != nil {
		return err
	}

	var cols []string
	var vals []any
	add := func(col string, v any) { cols = append(cols, col); vals = append(vals, v) }

	weight, price := l.WeightKg, l.PricePerKg
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.FishTypeID != nil {
		add("fish_type_id", *patch.FishTypeID)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.WeightKg != nil {
		add("weight_kg", *patch.WeightKg)
		weight = *patch.WeightKg
	}
	if patch.PricePerKg != nil {
		add("price_per_kg", *patch.PricePerKg)
		price = *patch.PricePerKg
	}
	if patch.CatchDate != nil {
		add("catch_date", *patch.CatchDate)
	}
	if patch.ExpiresAt != nil {
		add("expires_at", *patch.ExpiresAt)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	add("total_price", weight*price)

	query, args := patchQuery("listings", cols, vals, listingID)
	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("update listing %s: %w", listingID, err)
	}
	return nil
}

func (s *Store) SetListingStatus(listingID, status string) error {
	res, err := s.db.Exec(
		`UPDATE listings SET status = ?, updated_at = ? WHERE id = ?`, status, time.Now().UTC(), listingID)
	if err != nil {
		return fmt.Errorf("set status for listing %s: %w", listingID, err)
	}
	return requireRow(res, fmt.Sprintf("set status for listing %s", listingID), marketerrors.ErrListingNotFound)
}

func (s *Store) DeleteListing(listingID string) error {
	res, err := s.db.Exec(`DELETE FROM listings WHERE id = ?`, listingID)
	if err != nil {
		return fmt.Errorf("delete listing %s: %w", listingID, err)
	}
	return requireRow(res, fmt.Sprintf("delete listing %s", listingID), marketerrors.ErrListingNotFound)
}

func (s *Store) CreateBid(b model.Bid) error {
	if _, err := s.GetListing(b.ListingID); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT INTO bids (id, listing_id, bidder_id, bid_amount, quantity_kg, total_bid, message, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.ListingID, b.BidderID, b.BidAmount, b.QuantityKg, b.TotalBid, b.Message, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create bid %s: %w", b.ID, err)
	}
	return nil
}

const bidColumns = `id, listing_id, bidder_id, bid_amount, quantity_kg, total_bid, message, status, created_at, updated_at`

func scanBidRows(rows *sql.Rows) ([]model.Bid, error) {
	defer rows.Close()
	var out []model.Bid
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.ID, &b.ListingID, &b.BidderID, &b.BidAmount, &b.QuantityKg, &b.TotalBid,
			&b.Message, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) GetBid(bidID string) (model.Bid, error) {
	var b model.Bid
	err := s.db.QueryRow(`SELECT `+bidColumns+` FROM bids WHERE id = ?`, bidID).
		Scan(&b.ID, &b.ListingID, &b.BidderID, &b.BidAmount, &b.QuantityKg, &b.TotalBid,
			&b.Message, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, err)
	}
	return b, nil
}

func (s *Store) BidsByListing(listingID string) ([]model.Bid, error) {
	rows, err := s.db.Query(
		`SELECT `+bidColumns+` FROM bids WHERE listing_id = ? ORDER BY created_at DESC`, listingID)
	if err != nil {
		return nil, fmt.Errorf("bids for listing %s: %w", listingID, err)
	}
	return scanBidRows(rows)
}

func (s *Store) BidsByBidder(bidderID string) ([]model.Bid, error) {
	rows, err := s.db.Query(
		`SELECT `+bidColumns+` FROM bids WHERE bidder_id = ? ORDER BY created_at DESC`, bidderID)
	if err != nil {
		return nil, fmt.Errorf("bids for bidder %s: %w", bidderID, err)
	}
	return scanBidRows(rows)
}

func (s *Store) BidsBySeller(sellerID string) ([]model.Bid, error) {
	rows, err := s.db.Query(
		`SELECT b.id, b.listing_id, b.bidder_id, b.bid_amount, b.quantity_kg, b.total_bid, b.message, b.status, b.created_at, b.updated_at
		 FROM bids b JOIN listings l ON l.id = b.listing_id
		 WHERE l.fisherman_id = ? ORDER BY b.created_at DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("bids for seller %s: %w", sellerID, err)
	}
	return scanBidRows(rows)
}

func (s *Store) SetBidStatus(bidID, status string) error {
	res, err := s.db.Exec(
		`UPDATE bids SET status = ?, updated_at = ? WHERE id = ?`, status, time.Now().UTC(), bidID)
	if err != nil {
		return fmt.Errorf("set status for bid %s: %w", bidID, err)
	}
	return requireRow(res, fmt.Sprintf("set status for bid %s", bidID), marketerrors.ErrBidNotFound)
}

func (s *Store) CreateOrder(o model.Order) error {
	_, err := s.db.Exec(
		`INSERT INTO orders (id, listing_id, buyer_id, seller_id, quantity_kg, price_per_kg, total_amount,
			status, payment_status, payment_method, payment_type, advance_amount, upi_transaction_id,
			delivery_address, delivery_status, delivery_otp, delivery_completed_at,
			buyer_latitude, buyer_longitude, fisherman_latitude, fisherman_longitude, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.ListingID, o.BuyerID, o.SellerID, o.QuantityKg, o.PricePerKg, o.TotalAmount,
		o.Status, o.PaymentStatus, o.PaymentMethod, o.PaymentType, o.AdvanceAmount, o.UpiTransactionID,
		o.DeliveryAddress, o.DeliveryStatus, o.DeliveryOTP, o.DeliveryCompletedAt,
		o.BuyerLatitude, o.BuyerLongitude, o.FishermanLatitude, o.FishermanLongitude, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create order %s: %w", o.ID, err)
	}
	return nil
}

const orderColumns = `id, listing_id, buyer_id, seller_id, quantity_kg, price_per_kg, total_amount,
	status, payment_status, payment_method, payment_type, advance_amount, upi_transaction_id,
	delivery_address, delivery_status, delivery_otp, delivery_completed_at,
	buyer_latitude, buyer_longitude, fisherman_latitude, fisherman_longitude, created_at, updated_at`

func scanOrder(scan func(dest ...any) error) (model.Order, error) {
	var o model.Order
	var completedAt sql.NullTime
	var bLat, bLng, fLat, fLng sql.NullFloat64
	err := scan(&o.ID, &o.ListingID, &o.BuyerID, &o.SellerID, &o.QuantityKg, &o.PricePerKg, &o.TotalAmount,
		&o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.PaymentType, &o.AdvanceAmount, &o.UpiTransactionID,
		&o.DeliveryAddress, &o.DeliveryStatus, &o.DeliveryOTP, &completedAt,
		&bLat, &bLng, &fLat, &fLng, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return model.Order{}, err
	}
	if completedAt.Valid {
		o.DeliveryCompletedAt = &completedAt.Time
	}
	if bLat.Valid {
		o.BuyerLatitude = &bLat.Float64
	}
	if bLng.Valid {
		o.BuyerLongitude = &bLng.Float64
	}
	if fLat.Valid {
		o.FishermanLatitude = &fLat.Float64
	}
	if fLng.Valid {
		o.FishermanLongitude = &fLng.Float64
	}
	return o, nil
}

func scanOrderRows(rows *sql.Rows) ([]model.Order, error) {
	defer rows.Close()
	var out []model.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *Store) GetOrder(orderID string) (model.Order, error) {
	o, err := scanOrder(s.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, orderID).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, fmt.Errorf("get order %s: %w", orderID, marketerrors.ErrOrderNotFound)
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("get order %s: %w", orderID, err)
	}
	return o, nil
}

func (s *Store) OrdersByBuyer(buyerID string) ([]model.Order, error) {
	rows, err := s.db.Query(
		`SELECT `+orderColumns+` FROM orders WHERE buyer_id = ? ORDER BY created_at DESC`, buyerID)
	if err != nil {
		return nil, fmt.Errorf("orders for buyer %s: %w", buyerID, err)
	}
	return scanOrderRows(rows)
}

func (s *Store) OrdersBySeller(sellerID string) ([]model.Order, error) {
	rows, err := s.db.Query(
		`SELECT `+orderColumns+` FROM orders WHERE seller_id = ? ORDER BY created_at DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("orders for seller %s: %w", sellerID, err)
	}
	return scanOrderRows(rows)
}

func (s *Store) UpdateOrder(orderID string, patch model.OrderPatch) error {
	var cols []string
	var vals []any
	add := func(col string, v any) { cols = append(cols, col); vals = append(vals, v) }

	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.PaymentStatus != nil {
		add("payment_status", *patch.PaymentStatus)
	}
	if patch.PaymentMethod != nil {
		add("payment_method", *patch.PaymentMethod)
	}
	if patch.PaymentType != nil {
		add("payment_type", *patch.PaymentType)
	}
	if patch.AdvanceAmount != nil {
		add("advance_amount", *patch.AdvanceAmount)
	}
	if patch.UpiTransactionID != nil {
		add("upi_transaction_id", *patch.UpiTransactionID)
	}
	if patch.DeliveryStatus != nil {
		add("delivery_status", *patch.DeliveryStatus)
	}
	if patch.DeliveryOTP != nil {
		add("delivery_otp", *patch.DeliveryOTP)
	}
	if patch.DeliveryCompletedAt != nil {
		add("delivery_completed_at", *patch.DeliveryCompletedAt)
	}

	query, args := patchQuery("orders", cols, vals, orderID)
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("update order %s: %w", orderID, err)
	}
	return requireRow(res, fmt.Sprintf("update order %s", orderID), marketerrors.ErrOrderNotFound)
}

func (s *Store) CompletedOrdersBetween(from, to time.Time) ([]model.Order, error) {
	rows, err := s.db.Query(
		`SELECT `+orderColumns+` FROM orders
		 WHERE status = ? AND delivery_completed_at >= ? AND delivery_completed_at < ?
		 ORDER BY created_at DESC`,
		model.OrderCompleted, from, to)
	if err != nil {
		return nil, fmt.Errorf("completed orders between %s and %s: %w", from, to, err)
	}
	return scanOrderRows(rows)
}

func (s *Store) CreateMessage(m model.Message) error {
	if _, err := s.GetListing(m.ListingID); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT INTO messages (id, listing_id, sender_id, receiver_id, message, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.ListingID, m.SenderID, m.ReceiverID, m.Message, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create message %s: %w", m.ID, err)
	}
	return nil
}

func (s *Store) MessagesByListing(listingID string) ([]model.Message, error) {
	rows, err := s.db.Query(
		`SELECT id, listing_id, sender_id, receiver_id, message, created_at
		 FROM messages WHERE listing_id = ? ORDER BY created_at ASC`, listingID)
	if err != nil {
		return nil, fmt.Errorf("messages for listing %s: %w", listingID, err)
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.ListingID, &m.SenderID, &m.ReceiverID, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) CreateInterest(i model.Interest) error {
	if _, err := s.GetListing(i.ListingID); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT INTO interests (id, listing_id, buyer_id, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		i.ID, i.ListingID, i.BuyerID, i.Message, i.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create interest %s: %w", i.ID, err)
	}
	return nil
}

func (s *Store) InterestsBySeller(sellerID string) ([]model.Interest, error) {
	rows, err := s.db.Query(
		`SELECT i.id, i.listing_id, i.buyer_id, i.message, i.created_at
		 FROM interests i JOIN listings l ON l.id = i.listing_id
		 WHERE l.fisherman_id = ? ORDER BY i.created_at DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("interests for seller %s: %w", sellerID, err)
	}
	defer rows.Close()

	var out []model.Interest
	for rows.Next() {
		var i model.Interest
		if err := rows.Scan(&i.ID, &i.ListingID, &i.BuyerID, &i.Message, &i.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (s *Store) AddFishType(ft model.FishType) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO fish_types (id, name, category, description, created_at) VALUES (?, ?, ?, ?, ?)`,
		ft.ID, ft.Name, ft.Category, ft.Description, ft.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("add fish type %s: %w", ft.Name, err)
	}
	return nil
}

func (s *Store) FishTypes() ([]model.FishType, error) {
	rows, err := s.db.Query(`SELECT id, name, category, description, created_at FROM fish_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("fish types: %w", err)
	}
	defer rows.Close()

	var out []model.FishType
	for rows.Next() {
		var ft model.FishType
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.Category, &ft.Description, &ft.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ft)
	}
	return out, rows.Err()
}

func (s *Store) RecordPricePoint(p model.PricePoint) error {
	_, err := s.db.Exec(
		`INSERT INTO price_history (id, fish_type_id, date, min_price, max_price, avg_price, total_volume_kg, location, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.FishTypeID, p.Date, p.MinPrice, p.MaxPrice, p.AvgPrice, p.TotalVolumeKg, p.Location, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record price point %s: %w", p.ID, err)
	}
	return nil
}

func (s *Store) PriceHistoryByFishType(fishTypeID string, limit int) ([]model.PricePoint, error) {
	query := `SELECT id, fish_type_id, date, min_price, max_price, avg_price, total_volume_kg, location, created_at
		FROM price_history WHERE fish_type_id = ? ORDER BY date DESC`
	args := []any{fishTypeID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("price history for fish type %s: %w", fishTypeID, err)
	}
	defer rows.Close()

	var out []model.PricePoint
	for rows.Next() {
		var p model.PricePoint
		if err := rows.Scan(&p.ID, &p.FishTypeID, &p.Date, &p.MinPrice, &p.MaxPrice, &p.AvgPrice,
			&p.TotalVolumeKg, &p.Location, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) CreateReview(r model.Review) error {
	if _, err := s.GetOrder(r.OrderID); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT INTO reviews (id, order_id, reviewer_id, reviewed_id, rating, comment, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.OrderID, r.ReviewerID, r.ReviewedID, r.Rating, r.Comment, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create review %s: %w", r.ID, err)
	}
	return nil
}

func (s *Store) ReviewsByProfile(profileID string) ([]model.Review, error) {
	rows, err := s.db.Query(
		`SELECT id, order_id, reviewer_id, reviewed_id, rating, comment, created_at
		 FROM reviews WHERE reviewed_id = ? ORDER BY created_at DESC`, profileID)
	if err != nil {
		return nil, fmt.Errorf("reviews for profile %s: %w", profileID, err)
	}
	defer rows.Close()

	var out []model.Review
	for rows.Next() {
		var r model.Review
		if err := rows.Scan(&r.ID, &r.OrderID, &r.ReviewerID, &r.ReviewedID, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) CreateNotification(n model.Notification) error {
	_, err := s.db.Exec(
		`INSERT INTO notifications (id, user_id, title, message, type, related_id, is_read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.RelatedID, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create notification %s: %w", n.ID, err)
	}
	return nil
}

func (s *Store) NotificationsByUser(profileID string) ([]model.Notification, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, title, message, type, related_id, is_read, created_at
		 FROM notifications WHERE user_id = ? ORDER BY created_at DESC`, profileID)
	if err != nil {
		return nil, fmt.Errorf("notifications for %s: %w", profileID, err)
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.RelatedID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Store) MarkNotificationRead(notificationID string) error {
	res, err := s.db.Exec(`UPDATE notifications SET is_read = 1 WHERE id = ?`, notificationID)
	if err != nil {
		return fmt.Errorf("mark notification %s read: %w", notificationID, err)
	}
	return requireRow(res, fmt.Sprintf("mark notification %s read", notificationID), marketerrors.ErrNotificationNotFound)
}

// requireRow turns a zero-row UPDATE/DELETE into the given sentinel.
func requireRow(res sql.Result, op string, sentinel error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, sentinel)
	}
	return nil
}
