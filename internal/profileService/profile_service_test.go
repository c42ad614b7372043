package profile

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fishmarket/internal/marketerrors"
	model "fishmarket/internal/models"
	"fishmarket/internal/repository"
)

const testSecret = "test-secret"

func newService(t *testing.T) (*ProfileService, *repository.MockMarketDB) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := repository.NewMockMarketDB(ctrl)
	return NewProfileService(mockRepo, testSecret, time.Hour), mockRepo
}

// Tests Register
func TestProfileService_Register(t *testing.T) {
	tests := []struct {
		name          string
		input         RegisterInput
		wantCreate    bool
		expectedError error
	}{
		{
			name:       "valid_fisherman",
			input:      RegisterInput{Email: "r.kumar@example.com", Password: "secret1", FullName: "R Kumar", Role: model.RoleFisherman},
			wantCreate: true,
		},
		{
			name:          "short_password",
			input:         RegisterInput{Email: "a@example.com", Password: "abc", FullName: "A", Role: model.RoleSupplier},
			expectedError: marketerrors.ErrInvalidProfile,
		},
		{
			name:          "empty_email",
			input:         RegisterInput{Email: " ", Password: "secret1", FullName: "A", Role: model.RoleSupplier},
			expectedError: marketerrors.ErrInvalidProfile,
		},
		{
			name:          "unknown_role",
			input:         RegisterInput{Email: "a@example.com", Password: "secret1", FullName: "A", Role: "wholesaler"},
			expectedError: marketerrors.ErrInvalidProfile,
		},
		{
			name:          "missing_name",
			input:         RegisterInput{Email: "a@example.com", Password: "secret1", FullName: "", Role: model.RoleHotel},
			expectedError: marketerrors.ErrInvalidProfile,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, mockRepo := newService(t)

			var storedHash string
			if tc.wantCreate {
				mockRepo.EXPECT().CreateAccount(gomock.Any()).DoAndReturn(func(acc model.Account) error {
					storedHash = acc.PasswordHash
					return nil
				})
				mockRepo.EXPECT().CreateProfile(gomock.Any()).Return(nil)
			}

			p, token, err := service.Register(tc.input)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, token)
			require.Equal(t, tc.input.Role, p.Role)

			// stored hash is bcrypt, never the plaintext
			require.NotEqual(t, tc.input.Password, storedHash)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(tc.input.Password)))

			claims, err := service.ParseToken(token)
			require.NoError(t, err)
			require.Equal(t, p.ID, claims.ProfileID)
			require.Equal(t, p.Role, claims.Role)
		})
	}
}

// Tests Login
func TestProfileService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	acc := model.Account{ID: "acc1", Email: "r.kumar@example.com", PasswordHash: string(hash)}
	p := model.Profile{ID: "prof1", UserID: "acc1", FullName: "R Kumar", Role: model.RoleFisherman}

	t.Run("valid_credentials", func(t *testing.T) {
		service, mockRepo := newService(t)
		mockRepo.EXPECT().GetAccountByEmail("r.kumar@example.com").Return(acc, nil)
		mockRepo.EXPECT().GetProfileByUserID("acc1").Return(p, nil)

		got, token, err := service.Login("r.kumar@example.com", "secret1")
		require.NoError(t, err)
		require.Equal(t, "prof1", got.ID)

		claims, err := service.ParseToken(token)
		require.NoError(t, err)
		require.Equal(t, "prof1", claims.ProfileID)
	})

	t.Run("wrong_password", func(t *testing.T) {
		service, mockRepo := newService(t)
		mockRepo.EXPECT().GetAccountByEmail("r.kumar@example.com").Return(acc, nil)

		_, _, err := service.Login("r.kumar@example.com", "wrong")
		require.ErrorIs(t, err, marketerrors.ErrInvalidCredentials)
	})

	t.Run("unknown_email", func(t *testing.T) {
		service, mockRepo := newService(t)
		mockRepo.EXPECT().GetAccountByEmail("nobody@example.com").
			Return(model.Account{}, marketerrors.ErrAccountNotFound)

		// unknown account and bad password are indistinguishable
		_, _, err := service.Login("nobody@example.com", "secret1")
		require.ErrorIs(t, err, marketerrors.ErrInvalidCredentials)
	})
}

// Tests ParseToken rejection paths
func TestProfileService_ParseToken(t *testing.T) {
	service, _ := newService(t)

	_, err := service.ParseToken("not-a-token")
	require.ErrorIs(t, err, marketerrors.ErrInvalidCredentials)

	// token signed with a different secret
	other, _ := newService(t)
	other.jwtSecret = []byte("other-secret")

	p := model.Profile{ID: "prof1", Role: model.RoleHotel}
	token, err := other.issueToken(p)
	require.NoError(t, err)

	_, err = service.ParseToken(token)
	require.ErrorIs(t, err, marketerrors.ErrInvalidCredentials)
}

// Tests GetSafeProfile
func TestProfileService_GetSafeProfile(t *testing.T) {
	service, mockRepo := newService(t)

	lat := 13.0827
	full := model.Profile{
		ID:           "prof1",
		FullName:     "R Kumar",
		Role:         model.RoleFisherman,
		Phone:        "+91 98400 00000",
		Address:      "12 Harbour Rd",
		City:         "Chennai",
		State:        "TN",
		Latitude:     &lat,
		UpiID:        "rkumar@upi",
		Rating:       4.5,
		TotalReviews: 12,
		IsVerified:   true,
	}
	mockRepo.EXPECT().GetProfile("prof1").Return(full, nil)

	safe, err := service.GetSafeProfile("prof1")
	require.NoError(t, err)
	require.Equal(t, "R Kumar", safe.FullName)
	require.Equal(t, "Chennai", safe.City)
	require.Equal(t, 4.5, safe.Rating)
	require.True(t, safe.IsVerified)
}

// Tests SubmitReview
func TestProfileService_SubmitReview(t *testing.T) {
	completed := model.Order{ID: "order1", BuyerID: "buyer1", SellerID: "fisher1", Status: model.OrderCompleted}

	t.Run("buyer_reviews_seller_and_rating_updates", func(t *testing.T) {
		service, mockRepo := newService(t)
		mockRepo.EXPECT().GetOrder("order1").Return(completed, nil)
		mockRepo.EXPECT().CreateReview(gomock.Any()).Return(nil)
		mockRepo.EXPECT().ReviewsByProfile("fisher1").Return([]model.Review{
			{Rating: 5}, {Rating: 4},
		}, nil)
		mockRepo.EXPECT().SetProfileRating("fisher1", 4.5, 2).Return(nil)

		review, err := service.SubmitReview("buyer1", "order1", 5, "excellent catch")
		require.NoError(t, err)
		require.Equal(t, "fisher1", review.ReviewedID)
	})

	t.Run("incomplete_order_rejected", func(t *testing.T) {
		service, mockRepo := newService(t)
		pending := completed
		pending.Status = model.OrderPending
		mockRepo.EXPECT().GetOrder("order1").Return(pending, nil)

		_, err := service.SubmitReview("buyer1", "order1", 5, "")
		require.ErrorIs(t, err, marketerrors.ErrInvalidReview)
	})

	t.Run("stranger_rejected", func(t *testing.T) {
		service, mockRepo := newService(t)
		mockRepo.EXPECT().GetOrder("order1").Return(completed, nil)

		_, err := service.SubmitReview("other", "order1", 5, "")
		require.ErrorIs(t, err, marketerrors.ErrForbidden)
	})

	t.Run("rating_out_of_range", func(t *testing.T) {
		service, _ := newService(t)
		_, err := service.SubmitReview("buyer1", "order1", 6, "")
		require.ErrorIs(t, err, marketerrors.ErrInvalidReview)
	})
}

// Tests MarkNotificationRead ownership check
func TestProfileService_MarkNotificationRead(t *testing.T) {
	service, mockRepo := newService(t)

	notes := []model.Notification{{ID: "n1", UserID: "prof1"}}

	mockRepo.EXPECT().NotificationsByUser("prof1").Return(notes, nil)
	mockRepo.EXPECT().MarkNotificationRead("n1").Return(nil)
	require.NoError(t, service.MarkNotificationRead("prof1", "n1"))

	// someone else's notification looks like it doesn't exist
	mockRepo.EXPECT().NotificationsByUser("prof2").Return(nil, nil)
	err := service.MarkNotificationRead("prof2", "n1")
	require.ErrorIs(t, err, marketerrors.ErrNotificationNotFound)
}
