package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"fishmarket/internal/marketerrors"
	model "fishmarket/internal/models"
	"fishmarket/internal/repository"
	"fishmarket/utils"
)

// ProfileService handles registration, login and profile management.
type ProfileService struct {
	repo      repository.MarketDB
	jwtSecret []byte
	jwtTTL    time.Duration
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(repo repository.MarketDB, jwtSecret string, jwtTTL time.Duration) *ProfileService {
	return &ProfileService{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		jwtTTL:    jwtTTL,
	}
}

// Claims is the JWT payload issued at login. ProfileID and Role drive
// every authorization decision downstream.
type Claims struct {
	ProfileID string     `json:"profile_id"`
	Role      model.Role `json:"role"`
	jwt.RegisteredClaims
}

// RegisterInput carries the sign-up fields.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     model.Role
	Phone    string
	City     string
	State    string
}

// Register creates an account and its marketplace profile, then issues a
// token so the caller is signed in immediately.
func (s *ProfileService) Register(in RegisterInput) (model.Profile, string, error) {
	if strings.TrimSpace(in.Email) == "" || len(in.Password) < 6 {
		return model.Profile{}, "", fmt.Errorf("service: %w - email and a password of at least 6 characters are required", marketerrors.ErrInvalidProfile)
	}
	if strings.TrimSpace(in.FullName) == "" {
		return model.Profile{}, "", fmt.Errorf("service: %w - full name is required", marketerrors.ErrInvalidProfile)
	}
	if !in.Role.Valid() {
		return model.Profile{}, "", fmt.Errorf("service: %w - unknown role %q", marketerrors.ErrInvalidProfile, in.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Profile{}, "", fmt.Errorf("service: failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	acc := model.Account{
		ID:           utils.GenerateID(),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := s.repo.CreateAccount(acc); err != nil {
		return model.Profile{}, "", fmt.Errorf("service: failed to create account: %w", err)
	}

	p := model.Profile{
		ID:        utils.GenerateID(),
		UserID:    acc.ID,
		FullName:  strings.TrimSpace(in.FullName),
		Role:      in.Role,
		Phone:     in.Phone,
		City:      in.City,
		State:     in.State,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateProfile(p); err != nil {
		return model.Profile{}, "", fmt.Errorf("service: failed to create profile for account %s: %w", acc.ID, err)
	}

	token, err := s.issueToken(p)
	if err != nil {
		return model.Profile{}, "", err
	}

	utils.Info("profile registered", map[string]any{"profile_id": p.ID, "role": p.Role})
	return p, token, nil
}

// Login verifies credentials and issues a signed token.
func (s *ProfileService) Login(email, password string) (model.Profile, string, error) {
	acc, err := s.repo.GetAccountByEmail(email)
	if err != nil {
		if errors.Is(err, marketerrors.ErrAccountNotFound) {
			return model.Profile{}, "", fmt.Errorf("service: %w", marketerrors.ErrInvalidCredentials)
		}
		return model.Profile{}, "", fmt.Errorf("service: failed to look up account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return model.Profile{}, "", fmt.Errorf("service: %w", marketerrors.ErrInvalidCredentials)
	}

	p, err := s.repo.GetProfileByUserID(acc.ID)
	if err != nil {
		return model.Profile{}, "", fmt.Errorf("service: failed to load profile for account %s: %w", acc.ID, err)
	}

	token, err := s.issueToken(p)
	if err != nil {
		return model.Profile{}, "", err
	}
	return p, token, nil
}

func (s *ProfileService) issueToken(p model.Profile) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		ProfileID: p.ID,
		Role:      p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("service: failed to sign token: %w", err)
	}
	return token, nil
}

// ParseToken validates a bearer token and returns its claims.
func (s *ProfileService) ParseToken(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, fmt.Errorf("service: %w", marketerrors.ErrInvalidCredentials)
	}
	return claims, nil
}

// GetProfile returns the caller's own full profile.
func (s *ProfileService) GetProfile(profileID string) (model.Profile, error) {
	if profileID == "" {
		return model.Profile{}, fmt.Errorf("service: %w - empty profile ID", marketerrors.ErrInvalidProfile)
	}
	p, err := s.repo.GetProfile(profileID)
	if err != nil {
		return model.Profile{}, fmt.Errorf("service: failed to get profile %s: %w", profileID, err)
	}
	return p, nil
}

// GetSafeProfile returns the restricted public view of any profile.
// Contact details, coordinates and payment handles never cross this
// boundary.
func (s *ProfileService) GetSafeProfile(profileID string) (model.SafeProfile, error) {
	p, err := s.GetProfile(profileID)
	if err != nil {
		return model.SafeProfile{}, err
	}
	return p.Safe(), nil
}

// UpdateProfile applies a settings patch to the caller's own profile.
func (s *ProfileService) UpdateProfile(profileID string, patch model.ProfilePatch) (model.Profile, error) {
	if profileID == "" {
		return model.Profile{}, fmt.Errorf("service: %w - empty profile ID", marketerrors.ErrInvalidProfile)
	}
	if patch.Latitude != nil && (*patch.Latitude < -90 || *patch.Latitude > 90) {
		return model.Profile{}, fmt.Errorf("service: %w - latitude out of range", marketerrors.ErrInvalidProfile)
	}
	if patch.Longitude != nil && (*patch.Longitude < -180 || *patch.Longitude > 180) {
		return model.Profile{}, fmt.Errorf("service: %w - longitude out of range", marketerrors.ErrInvalidProfile)
	}

	if err := s.repo.UpdateProfile(profileID, patch); err != nil {
		return model.Profile{}, fmt.Errorf("service: failed to update profile %s: %w", profileID, err)
	}
	return s.repo.GetProfile(profileID)
}

// SubmitReview records a review on a completed order and refreshes the
// counterparty's aggregate rating.
func (s *ProfileService) SubmitReview(reviewerID, orderID string, rating int, comment string) (model.Review, error) {
	if rating < 1 || rating > 5 {
		return model.Review{}, fmt.Errorf("service: %w - rating must be between 1 and 5", marketerrors.ErrInvalidReview)
	}

	o, err := s.repo.GetOrder(orderID)
	if err != nil {
		return model.Review{}, fmt.Errorf("service: failed to get order %s: %w", orderID, err)
	}
	if o.Status != model.OrderCompleted {
		return model.Review{}, fmt.Errorf("service: %w - order %s is not completed", marketerrors.ErrInvalidReview, orderID)
	}

	var reviewedID string
	switch reviewerID {
	case o.BuyerID:
		reviewedID = o.SellerID
	case o.SellerID:
		reviewedID = o.BuyerID
	default:
		return model.Review{}, fmt.Errorf("service: %w - reviewer is not a party to order %s", marketerrors.ErrForbidden, orderID)
	}

	review := model.Review{
		ID:         utils.GenerateID(),
		OrderID:    orderID,
		ReviewerID: reviewerID,
		ReviewedID: reviewedID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.CreateReview(review); err != nil {
		return model.Review{}, fmt.Errorf("service: failed to create review for order %s: %w", orderID, err)
	}

	if err := s.refreshRating(reviewedID); err != nil {
		return model.Review{}, err
	}
	return review, nil
}

// ReviewsFor lists the reviews received by a profile.
func (s *ProfileService) ReviewsFor(profileID string) ([]model.Review, error) {
	if profileID == "" {
		return nil, fmt.Errorf("service: %w - empty profile ID", marketerrors.ErrInvalidProfile)
	}
	reviews, err := s.repo.ReviewsByProfile(profileID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get reviews for profile %s: %w", profileID, err)
	}
	return reviews, nil
}

func (s *ProfileService) refreshRating(profileID string) error {
	reviews, err := s.repo.ReviewsByProfile(profileID)
	if err != nil {
		return fmt.Errorf("service: failed to get reviews for profile %s: %w", profileID, err)
	}
	if len(reviews) == 0 {
		return nil
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))

	if err := s.repo.SetProfileRating(profileID, avg, len(reviews)); err != nil {
		return fmt.Errorf("service: failed to refresh rating for profile %s: %w", profileID, err)
	}
	return nil
}

// Notifications returns a profile's notification feed, newest first.
func (s *ProfileService) Notifications(profileID string) ([]model.Notification, error) {
	if profileID == "" {
		return nil, fmt.Errorf("service: %w - empty profile ID", marketerrors.ErrInvalidProfile)
	}
	out, err := s.repo.NotificationsByUser(profileID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get notifications for %s: %w", profileID, err)
	}
	return out, nil
}

// MarkNotificationRead marks one of the caller's notifications as read.
func (s *ProfileService) MarkNotificationRead(profileID, notificationID string) error {
	notes, err := s.repo.NotificationsByUser(profileID)
	if err != nil {
		return fmt.Errorf("service: failed to get notifications for %s: %w", profileID, err)
	}
	for _, n := range notes {
		if n.ID == notificationID {
			if err := s.repo.MarkNotificationRead(notificationID); err != nil {
				return fmt.Errorf("service: failed to mark notification %s read: %w", notificationID, err)
			}
			return nil
		}
	}
	return fmt.Errorf("service: %w", marketerrors.ErrNotificationNotFound)
}
