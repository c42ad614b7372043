package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	bidding "fishmarket/internal/biddingService"
	chat "fishmarket/internal/chatService"
	"fishmarket/internal/geo"
	listing "fishmarket/internal/listingService"
	model "fishmarket/internal/models"
	order "fishmarket/internal/orderService"
	price "fishmarket/internal/priceService"
	profile "fishmarket/internal/profileService"
	"fishmarket/internal/repository"
	"fishmarket/internal/server"
	handler "fishmarket/services/marketplace/handler"
	"fishmarket/services/marketplace/helpers"
)

const (
	testJWTSecret     = "integration-test-secret"
	testBulkMinWeight = 50.0
)

// SetupTestRouter builds the full application on an in-memory repository.
func SetupTestRouter() (*gin.Engine, repository.MarketDB) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	for _, ft := range []model.FishType{
		{ID: "ft-tuna", Name: "Tuna", Category: "saltwater"},
		{ID: "ft-sardine", Name: "Sardine", Category: "saltwater"},
	} {
		_ = repo.AddFishType(ft)
	}

	profileSvc := profile.NewProfileService(repo, testJWTSecret, time.Hour)
	listingSvc := listing.NewListingService(repo, testBulkMinWeight)
	biddingSvc := bidding.NewBiddingService(repo)
	orderSvc := order.NewOrderService(repo, geo.NewHaversineEstimator())
	chatSvc := chat.NewChatService(repo)
	priceSvc := price.NewPriceService(repo)

	router := server.SetupRouter(server.Handlers{
		Auth:    handler.NewAuthHandler(profileSvc),
		Profile: handler.NewProfileHandler(profileSvc),
		Listing: handler.NewListingHandler(listingSvc),
		Bidding: handler.NewBiddingHandler(biddingSvc),
		Order:   handler.NewOrderHandler(orderSvc),
		Chat:    handler.NewChatHandler(chatSvc),
		Price:   handler.NewPriceHandler(priceSvc),
	}, profileSvc)

	return router, repo
}

// ExecuteRequest sends an HTTP request with an optional bearer token and
// returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal request body")
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse sends a request and unwraps the data field of
// the response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, token, body)

	var envelope map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "failed to unmarshal response")
	}

	data, _ := envelope["data"].(map[string]any)
	return data, w
}

// ExecuteRequestAndParseList is ExecuteRequestAndParse for list responses.
func ExecuteRequestAndParseList(t *testing.T, router *gin.Engine, method, url, token string) []any {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	if envelope["data"] == nil {
		return nil
	}
	list, ok := envelope["data"].([]any)
	require.True(t, ok, "expected list response")
	return list
}

type testUser struct {
	ProfileID string
	Token     string
}

// registerUser registers an account through the API and returns the
// profile id and bearer token.
func registerUser(t *testing.T, router *gin.Engine, email, fullName, role string) testUser {
	t.Helper()

	data, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/register", "", helpers.RegisterRequest{
		Email:    email,
		Password: "secret123",
		FullName: fullName,
		Role:     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	return testUser{
		ProfileID: data["profile_id"].(string),
		Token:     data["token"].(string),
	}
}

// createListing posts a listing as the given fisherman and returns its id.
func createListing(t *testing.T, router *gin.Engine, seller testUser, fishTypeID, title string, weightKg, pricePerKg float64) string {
	t.Helper()

	data, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/listings", seller.Token, helpers.CreateListingRequest{
		FishTypeID: fishTypeID,
		Title:      title,
		Location:   "Kasimedu Harbour",
		WeightKg:   weightKg,
		PricePerKg: pricePerKg,
		CatchDate:  time.Now().UTC().Format("2006-01-02"),
		ExpiresAt:  time.Now().UTC().Add(48 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, w.Code, "listing creation failed: %s", w.Body.String())

	return data["id"].(string)
}
