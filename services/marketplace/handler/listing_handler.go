package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	listing "fishmarket/internal/listingService"
	model "fishmarket/internal/models"
	"fishmarket/services/marketplace/helpers"
	"fishmarket/utils"
)

type ListingServiceInterface interface {
	Create(fishermanID string, in listing.CreateInput) (model.Listing, error)
	Get(listingID string) (model.Listing, error)
	Available(f listing.SearchFilter) ([]model.Listing, error)
	ByFisherman(fishermanID string) ([]model.Listing, error)
	Edit(actorID, listingID string, patch model.ListingPatch) (model.Listing, error)
	MarkSold(actorID, listingID string) error
	Delete(actorID, listingID string) error
	FishTypes() ([]model.FishType, error)
	ExpressInterest(buyerID, listingID, message string) (model.Interest, error)
	InterestsForSeller(sellerID string) ([]model.Interest, error)
}

type ListingHandler struct {
	service ListingServiceInterface
}

func NewListingHandler(service ListingServiceInterface) *ListingHandler {
	return &ListingHandler{service: service}
}

// CreateListingHandler handles POST /listings
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	fishermanID := c.GetString("profile_id")

	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	l, err := h.service.Create(fishermanID, listing.CreateInput{
		FishTypeID:  req.FishTypeID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		WeightKg:    req.WeightKg,
		PricePerKg:  req.PricePerKg,
		CatchDate:   req.CatchDate,
		ExpiresAt:   req.ExpiresAt,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateListingHandler", err, map[string]any{"fisherman_id": fishermanID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, l, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": l.ID,
		"weight_kg":  l.WeightKg,
	})
}

// GetListingsHandler handles GET /listings
// Query params: q (title/fish type search), location, bulk=true
func (h *ListingHandler) GetListingsHandler(c *gin.Context) {
	filter := listing.SearchFilter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		BulkOnly: c.Query("bulk") == "true",
	}

	listings, err := h.service.Available(filter)
	if err != nil {
		helpers.HandleServiceError(c, "GetListingsHandler", err, nil)
		return
	}
	if listings == nil {
		listings = []model.Listing{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
}

// GetListingHandler handles GET /listings/:listing_id
func (h *ListingHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	l, err := h.service.Get(listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, l, "listing retrieved successfully")
}

// GetOwnListingsHandler handles GET /listings/mine
func (h *ListingHandler) GetOwnListingsHandler(c *gin.Context) {
	fishermanID := c.GetString("profile_id")

	listings, err := h.service.ByFisherman(fishermanID)
	if err != nil {
		helpers.HandleServiceError(c, "GetOwnListingsHandler", err, map[string]any{"fisherman_id": fishermanID})
		return
	}
	if listings == nil {
		listings = []model.Listing{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
}

// EditListingHandler handles PATCH /listings/:listing_id
func (h *ListingHandler) EditListingHandler(c *gin.Context) {
	actorID := c.GetString("profile_id")
	listingID := c.Param("listing_id")

	var patch model.ListingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		helpers.HandleBindError(c, "EditListingHandler", err)
		return
	}

	l, err := h.service.Edit(actorID, listingID, patch)
	if err != nil {
		helpers.HandleServiceError(c, "EditListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, l, "listing updated successfully")
	helpers.LogSuccess("EditListingHandler", "listing updated successfully", map[string]any{"listing_id": listingID})
}

// MarkListingSoldHandler handles POST /listings/:listing_id/sold
func (h *ListingHandler) MarkListingSoldHandler(c *gin.Context) {
	actorID := c.GetString("profile_id")
	listingID := c.Param("listing_id")

	if err := h.service.MarkSold(actorID, listingID); err != nil {
		helpers.HandleServiceError(c, "MarkListingSoldHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "listing marked sold")
	helpers.LogSuccess("MarkListingSoldHandler", "listing marked sold", map[string]any{"listing_id": listingID})
}

// DeleteListingHandler handles DELETE /listings/:listing_id
func (h *ListingHandler) DeleteListingHandler(c *gin.Context) {
	actorID := c.GetString("profile_id")
	listingID := c.Param("listing_id")

	if err := h.service.Delete(actorID, listingID); err != nil {
		helpers.HandleServiceError(c, "DeleteListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "listing deleted successfully")
	helpers.LogSuccess("DeleteListingHandler", "listing deleted successfully", map[string]any{"listing_id": listingID})
}

// GetFishTypesHandler handles GET /fish-types
func (h *ListingHandler) GetFishTypesHandler(c *gin.Context) {
	types, err := h.service.FishTypes()
	if err != nil {
		helpers.HandleServiceError(c, "GetFishTypesHandler", err, nil)
		return
	}
	if types == nil {
		types = []model.FishType{}
	}

	utils.JSONResponse(c, http.StatusOK, types, "fish types retrieved successfully")
}

// ExpressInterestHandler handles POST /interests
func (h *ListingHandler) ExpressInterestHandler(c *gin.Context) {
	buyerID := c.GetString("profile_id")

	var req helpers.InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ExpressInterestHandler", err)
		return
	}

	interest, err := h.service.ExpressInterest(buyerID, req.ListingID, req.Message)
	if err != nil {
		helpers.HandleServiceError(c, "ExpressInterestHandler", err, map[string]any{"listing_id": req.ListingID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, interest, "interest recorded successfully")
	helpers.LogSuccess("ExpressInterestHandler", "interest recorded successfully", map[string]any{
		"interest_id": interest.ID,
		"listing_id":  req.ListingID,
	})
}

// GetInterestsHandler handles GET /interests
func (h *ListingHandler) GetInterestsHandler(c *gin.Context) {
	sellerID := c.GetString("profile_id")

	interests, err := h.service.InterestsForSeller(sellerID)
	if err != nil {
		helpers.HandleServiceError(c, "GetInterestsHandler", err, map[string]any{"seller_id": sellerID})
		return
	}
	if interests == nil {
		interests = []model.Interest{}
	}

	utils.JSONResponse(c, http.StatusOK, interests, "interests retrieved successfully")
}
