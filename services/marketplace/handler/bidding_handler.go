package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "fishmarket/internal/models"
	"fishmarket/services/marketplace/helpers"
	"fishmarket/utils"
)

type BiddingServiceInterface interface {
	PlaceBid(bidderID, listingID string, bidAmount, quantityKg float64, message string) (model.Bid, error)
	AcceptBid(sellerID, bidID string) (model.Order, error)
	RejectBid(sellerID, bidID string) error
	BidsForListing(listingID string) ([]model.Bid, error)
	BidsByBidder(bidderID string) ([]model.Bid, error)
	BidsForSeller(sellerID string) ([]model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	bidderID := c.GetString("profile_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(bidderID, req.ListingID, req.BidAmount, req.QuantityKg, req.Message)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"listing_id": req.ListingID,
			"bidder_id":  bidderID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.ID,
		"listing_id": bid.ListingID,
		"total_bid":  bid.TotalBid,
	})
}

// AcceptBidHandler handles POST /bids/:bid_id/accept
func (h *BiddingHandler) AcceptBidHandler(c *gin.Context) {
	sellerID := c.GetString("profile_id")
	bidID := c.Param("bid_id")

	order, err := h.service.AcceptBid(sellerID, bidID)
	if err != nil {
		helpers.HandleServiceError(c, "AcceptBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, order, "bid accepted successfully")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted successfully", map[string]any{
		"bid_id":       bidID,
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
	})
}

// RejectBidHandler handles POST /bids/:bid_id/reject
func (h *BiddingHandler) RejectBidHandler(c *gin.Context) {
	sellerID := c.GetString("profile_id")
	bidID := c.Param("bid_id")

	if err := h.service.RejectBid(sellerID, bidID); err != nil {
		helpers.HandleServiceError(c, "RejectBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid rejected successfully")
	helpers.LogSuccess("RejectBidHandler", "bid rejected successfully", map[string]any{"bid_id": bidID})
}

// GetBidsByListingHandler handles GET /listings/:listing_id/bids
func (h *BiddingHandler) GetBidsByListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	bids, err := h.service.BidsForListing(listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetBidsByListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}
	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// GetOwnBidsHandler handles GET /bids/mine
func (h *BiddingHandler) GetOwnBidsHandler(c *gin.Context) {
	bidderID := c.GetString("profile_id")

	bids, err := h.service.BidsByBidder(bidderID)
	if err != nil {
		helpers.HandleServiceError(c, "GetOwnBidsHandler", err, map[string]any{"bidder_id": bidderID})
		return
	}
	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// GetReceivedBidsHandler handles GET /bids/received
func (h *BiddingHandler) GetReceivedBidsHandler(c *gin.Context) {
	sellerID := c.GetString("profile_id")

	bids, err := h.service.BidsForSeller(sellerID)
	if err != nil {
		helpers.HandleServiceError(c, "GetReceivedBidsHandler", err, map[string]any{"seller_id": sellerID})
		return
	}
	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}
